// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package allocator

import (
	"context"

	"github.com/MKhiriev/memfill/internal/logger"
	"github.com/MKhiriev/memfill/internal/utils"
	"github.com/MKhiriev/memfill/models"
)

// Absolute holds a fixed number of bytes, resolved once against total
// memory at construction.
type Absolute struct {
	pool   *Pool
	target models.Target
}

// NewAbsolute resolves size against the current total memory.
func NewAbsolute(ctx context.Context, provider memInfoProvider, size models.Size, pool *Pool, log *logger.Logger) (*Absolute, error) {
	mem, err := currentMemInfo(ctx, provider)
	if err != nil {
		return nil, err
	}

	bytes := size.OfTotal(mem.Total)
	percent := int64(size.Percent())
	if !size.IsPercent() {
		percent = models.PercentOf(int64(bytes), mem.Total)
	}

	log.Info().
		Uint64("bytes", bytes).
		Int64("percent", percent).
		Msgf("allocating %s (%d%% of total memory)", utils.FormatBytes(bytes), percent)

	return &Absolute{
		pool: pool,
		target: models.Target{
			Mode:    models.AllocationModeAbsolute,
			Bytes:   int64(bytes),
			Percent: percent,
		},
	}, nil
}

// Update implements [Allocator].
func (a *Absolute) Update(ctx context.Context) error {
	a.pool.Check()
	a.pool.Resize(ctx, uint64(a.target.Bytes))
	return nil
}

// Size implements [Allocator].
func (a *Absolute) Size() uint64 {
	return a.pool.Size()
}

// Target implements [Allocator].
func (a *Absolute) Target() models.Target {
	return a.target
}
