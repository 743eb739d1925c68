// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package meminfo

import (
	"context"
	"fmt"

	"github.com/MKhiriev/memfill/models"
	"github.com/prometheus/procfs"
)

const kibibyte = 1024

// SystemProvider reads total and available memory from /proc/meminfo.
type SystemProvider struct {
	fs procfs.FS
}

// NewSystemProvider opens the proc filesystem mounted at procRoot.
func NewSystemProvider(procRoot string) (*SystemProvider, error) {
	fs, err := procfs.NewFS(procRoot)
	if err != nil {
		return nil, fmt.Errorf("error opening procfs at %s: %w", procRoot, err)
	}
	return &SystemProvider{fs: fs}, nil
}

// MemInfo implements [Provider].
func (p *SystemProvider) MemInfo(_ context.Context) (models.MemInfo, error) {
	mi, err := p.fs.Meminfo()
	if err != nil {
		return models.MemInfo{}, fmt.Errorf("error reading meminfo: %w", err)
	}

	if mi.MemTotal == nil {
		return models.MemInfo{}, fmt.Errorf("%w: MemTotal", ErrMeminfoField)
	}
	if mi.MemAvailable == nil {
		return models.MemInfo{}, fmt.Errorf("%w: MemAvailable", ErrMeminfoField)
	}

	return models.MemInfo{
		Available: *mi.MemAvailable * kibibyte,
		Total:     *mi.MemTotal * kibibyte,
	}, nil
}
