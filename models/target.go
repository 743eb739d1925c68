// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Target describes what an allocator is aiming for. For absolute mode Bytes
// is the amount memfill holds; for usage mode it is the amount of memory
// that should stay available, which may be negative when the requested size
// exceeds total memory.
type Target struct {
	Mode    AllocationMode `json:"mode"`
	Bytes   int64          `json:"bytes"`
	Percent int64          `json:"percent"`
}
