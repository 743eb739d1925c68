// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cgroup

import "errors"

var (
	// ErrControllerNotFound is returned when the process' memory controller
	// cannot be located, either in /proc/<pid>/cgroup or on the cgroup
	// filesystem.
	ErrControllerNotFound = errors.New("cgroup memory controller not found")
	// ErrReadFile wraps failures to read a controller file.
	ErrReadFile = errors.New("error reading cgroup file")
	// ErrParseFile wraps failures to parse a controller file.
	ErrParseFile = errors.New("error parsing cgroup file")
)
