// Package app runs a memfill controller: it keeps an allocator converging on
// its target, reports memory usage periodically, optionally serves a status
// endpoint, and releases every chunk when the run ends.
package app
