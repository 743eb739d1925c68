// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math"

// MemInfo is a point-in-time view of the memory visible to memfill, either
// system wide or limited to the enclosing cgroup.
type MemInfo struct {
	// Available is the number of bytes that can still be allocated.
	Available uint64 `json:"available"`
	// Total is the number of bytes memfill considers the whole memory.
	Total uint64 `json:"total"`
}

// AvailablePercent returns Available as a rounded percentage of Total.
func (m MemInfo) AvailablePercent() int64 {
	return PercentOf(int64(m.Available), m.Total)
}

// PercentOf returns part as a rounded percentage of total. A zero total
// yields zero.
func PercentOf(part int64, total uint64) int64 {
	if total == 0 {
		return 0
	}
	return int64(math.Round(float64(part) / float64(total) * 100.0))
}

// CgroupMemory holds the memory controller counters of a cgroup.
type CgroupMemory struct {
	// Usage is the current memory usage of the cgroup in bytes.
	Usage uint64
	// Limit is the memory limit of the cgroup in bytes. It is meaningless
	// when Unlimited is set.
	Limit uint64
	// Unlimited reports that the cgroup has no memory limit.
	Unlimited bool
}
