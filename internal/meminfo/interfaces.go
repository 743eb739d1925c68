// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package meminfo

//go:generate mockgen -source=interfaces.go -destination=../mock/meminfo_provider_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/memfill/models"
)

// Provider reports how much memory is available and what memfill treats as
// total memory.
type Provider interface {
	MemInfo(ctx context.Context) (models.MemInfo, error)
}

// CgroupReader is the part of [cgroup.Reader] the cgroup provider depends on.
type CgroupReader interface {
	Memory() (models.CgroupMemory, error)
}
