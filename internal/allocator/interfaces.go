// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package allocator

//go:generate mockgen -source=interfaces.go -destination=../mock/allocator_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/memfill/internal/chunk"
	"github.com/MKhiriev/memfill/models"
)

// Spawner creates chunks holding a given number of bytes.
type Spawner interface {
	Spawn(ctx context.Context, size uint64) (chunk.Handle, error)
}

// Allocator drives a [Pool] towards its target.
type Allocator interface {
	// Update reaps dead chunks and adjusts the pool once.
	Update(ctx context.Context) error
	// Size returns the bytes currently held.
	Size() uint64
	// Target describes what the allocator aims for.
	Target() models.Target
}
