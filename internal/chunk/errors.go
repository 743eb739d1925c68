// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package chunk

import "errors"

var (
	// ErrEmptyChunk is returned when a zero-sized chunk is requested.
	ErrEmptyChunk = errors.New("chunk size must be positive")
	// ErrChunkTooLarge is returned when the size does not fit the address space.
	ErrChunkTooLarge = errors.New("chunk size exceeds address space")
	// ErrNotReady is returned when a child did not report readiness in time.
	ErrNotReady = errors.New("chunk process did not become ready")
	// ErrExitedEarly is returned when a child exited before reporting readiness.
	ErrExitedEarly = errors.New("chunk process exited before becoming ready")
	// ErrPatternMismatch is returned by the child when the written pattern
	// cannot be read back.
	ErrPatternMismatch = errors.New("memory pattern assertion failed")
	// ErrInvalidChildArgs is returned for a malformed child invocation.
	ErrInvalidChildArgs = errors.New("invalid chunk child arguments")
)
