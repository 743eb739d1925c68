// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package allocator

import (
	"context"

	"github.com/MKhiriev/memfill/internal/logger"
	"github.com/MKhiriev/memfill/internal/utils"
	"github.com/MKhiriev/memfill/models"
)

// Usage keeps allocating or releasing so that available memory converges on
// total - size, compensating for memory used by other processes.
type Usage struct {
	pool     *Pool
	provider memInfoProvider
	target   models.Target
}

// NewUsage computes the amount of memory that should remain available. The
// target is negative when size exceeds total memory; memfill then grows for
// as long as it can.
func NewUsage(ctx context.Context, provider memInfoProvider, size models.Size, pool *Pool, log *logger.Logger) (*Usage, error) {
	mem, err := currentMemInfo(ctx, provider)
	if err != nil {
		return nil, err
	}

	available := int64(mem.Total) - int64(size.OfTotal(mem.Total))
	percent := models.PercentOf(available, mem.Total)

	log.Info().
		Int64("available_bytes", available).
		Int64("available_percent", percent).
		Msgf("allocate until %s (%d%% of total memory) available left", utils.FormatSignedBytes(available), percent)

	return &Usage{
		pool:     pool,
		provider: provider,
		target: models.Target{
			Mode:    models.AllocationModeUsage,
			Bytes:   available,
			Percent: percent,
		},
	}, nil
}

// Update implements [Allocator].
func (u *Usage) Update(ctx context.Context) error {
	mem, err := u.provider.MemInfo(ctx)
	if err != nil {
		return err
	}

	u.pool.Check()
	u.pool.AdjustBy(ctx, int64(mem.Available)-u.target.Bytes)
	return nil
}

// Size implements [Allocator].
func (u *Usage) Size() uint64 {
	return u.pool.Size()
}

// Target implements [Allocator].
func (u *Usage) Target() models.Target {
	return u.target
}
