// Package allocator sizes memfill's allocation. A [Pool] owns the chunks;
// [Absolute] and [Usage] decide on every update how far the pool should grow
// or shrink.
package allocator

import (
	"context"
	"fmt"

	"github.com/MKhiriev/memfill/internal/logger"
	"github.com/MKhiriev/memfill/models"
)

// memInfoProvider mirrors meminfo.Provider.
type memInfoProvider interface {
	MemInfo(ctx context.Context) (models.MemInfo, error)
}

// New returns the allocator for mode.
func New(ctx context.Context, mode models.AllocationMode, provider memInfoProvider, size models.Size, pool *Pool, log *logger.Logger) (Allocator, error) {
	switch mode {
	case models.AllocationModeAbsolute:
		a, err := NewAbsolute(ctx, provider, size, pool, log)
		if err != nil {
			return nil, err
		}
		return a, nil
	case models.AllocationModeUsage:
		u, err := NewUsage(ctx, provider, size, pool, log)
		if err != nil {
			return nil, err
		}
		return u, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

func currentMemInfo(ctx context.Context, provider memInfoProvider) (models.MemInfo, error) {
	mem, err := provider.MemInfo(ctx)
	if err != nil {
		return models.MemInfo{}, fmt.Errorf("error reading memory info: %w", err)
	}
	if mem.Total == 0 {
		return models.MemInfo{}, ErrZeroTotal
	}
	return mem, nil
}
