// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// OOMScoreAdjMin exempts a process from the OOM killer. Only a
	// privileged process may lower its score.
	OOMScoreAdjMin = -1000
	// OOMScoreAdjDefault is the neutral score.
	OOMScoreAdjDefault = 0

	defaultOOMScoreAdjPath = "/proc/self/oom_score_adj"
)

// OOMScoreAdjuster writes the OOM score adjustment of the current process.
// Child processes inherit the value.
type OOMScoreAdjuster struct {
	path       string
	privileged func() bool
}

// NewOOMScoreAdjuster returns an adjuster for the current process.
func NewOOMScoreAdjuster() *OOMScoreAdjuster {
	return &OOMScoreAdjuster{
		path:       defaultOOMScoreAdjPath,
		privileged: IsPrivileged,
	}
}

// Adjust writes OOMScoreAdjMin when the process runs as root (real or
// effective uid) and OOMScoreAdjDefault otherwise. It returns the value it
// tried to write.
func (a *OOMScoreAdjuster) Adjust() (int, error) {
	score := OOMScoreAdjDefault
	if a.privileged() {
		score = OOMScoreAdjMin
	}

	if err := a.write(score); err != nil {
		return score, err
	}

	return score, nil
}

// Reset writes OOMScoreAdjDefault regardless of privileges. Raising the
// score never needs privileges, so a child of an exempt process can undo
// the inherited exemption.
func (a *OOMScoreAdjuster) Reset() (int, error) {
	if err := a.write(OOMScoreAdjDefault); err != nil {
		return OOMScoreAdjDefault, err
	}
	return OOMScoreAdjDefault, nil
}

func (a *OOMScoreAdjuster) write(score int) error {
	if err := os.WriteFile(a.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("error adjusting OOM score: %w", err)
	}
	return nil
}

// IsPrivileged reports whether the real or effective user is root.
func IsPrivileged() bool {
	return os.Getuid() == 0 || os.Geteuid() == 0
}
