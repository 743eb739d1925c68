// Package config provides configuration loading, merging, and validation
// facilities for memfill.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for every field they set):
//  1. Command-line flags and positional arguments
//  2. Environment variables prefixed with MEMFILL_
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry point is [GetConfig], which merges the sources and resolves
// the raw values into a typed, validated [Config].
package config
