// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAllocationMode is returned by [ParseAllocationMode] for values
// other than "absolute" and "usage".
var ErrUnknownAllocationMode = errors.New("unknown allocation mode")

// AllocationMode selects how the requested size is interpreted.
type AllocationMode string

const (
	// AllocationModeAbsolute holds exactly the requested amount of memory.
	AllocationModeAbsolute AllocationMode = "absolute"
	// AllocationModeUsage allocates until only (total - size) memory is
	// left available, following the usage of other processes.
	AllocationModeUsage AllocationMode = "usage"
)

// ParseAllocationMode parses s case-insensitively.
func ParseAllocationMode(s string) (AllocationMode, error) {
	switch mode := AllocationMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case AllocationModeAbsolute, AllocationModeUsage:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q (expected absolute or usage)", ErrUnknownAllocationMode, s)
	}
}

func (m AllocationMode) String() string {
	return string(m)
}
