package models

import "time"

// Status is a point-in-time view of a running memfill controller.
type Status struct {
	Target Target `json:"target"`
	// Allocated is the number of bytes held by live chunks.
	Allocated uint64 `json:"allocated_bytes"`
	// Chunks is the number of live chunk processes.
	Chunks int `json:"chunks"`
	// AllocatedPercent is Allocated relative to total memory.
	AllocatedPercent int64   `json:"allocated_percent"`
	Memory           MemInfo `json:"memory"`
	// Deadline is when memfill releases everything and exits.
	Deadline time.Time `json:"deadline"`
}
