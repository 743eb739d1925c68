// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package meminfo

import (
	"context"
	"fmt"

	"github.com/MKhiriev/memfill/models"
)

// CgroupProvider scopes memory information to the process' cgroup. When the
// cgroup has no limit, system total memory is used as the total.
type CgroupProvider struct {
	cgroup CgroupReader
	system Provider
}

// NewCgroupProvider combines a cgroup reader with a system provider used as
// the fallback for unlimited cgroups.
func NewCgroupProvider(cgroup CgroupReader, system Provider) *CgroupProvider {
	return &CgroupProvider{cgroup: cgroup, system: system}
}

// MemInfo implements [Provider]. Available saturates at zero when usage
// exceeds the total.
func (p *CgroupProvider) MemInfo(ctx context.Context) (models.MemInfo, error) {
	mem, err := p.cgroup.Memory()
	if err != nil {
		return models.MemInfo{}, fmt.Errorf("error reading cgroup memory: %w", err)
	}

	total := mem.Limit
	if mem.Unlimited {
		sys, err := p.system.MemInfo(ctx)
		if err != nil {
			return models.MemInfo{}, err
		}
		total = sys.Total
	}

	var available uint64
	if total > mem.Usage {
		available = total - mem.Usage
	}

	return models.MemInfo{Available: available, Total: total}, nil
}
