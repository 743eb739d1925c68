// Package meminfo provides the memory figures memfill sizes its allocation
// against, either system wide or scoped to the enclosing cgroup.
package meminfo

import (
	"fmt"

	"github.com/MKhiriev/memfill/internal/cgroup"
)

// NewProvider returns the system provider when ignoreCgroup is set and the
// cgroup provider otherwise.
func NewProvider(ignoreCgroup bool, cgroupRoot, procRoot string, pid int) (Provider, error) {
	system, err := NewSystemProvider(procRoot)
	if err != nil {
		return nil, err
	}

	if ignoreCgroup {
		return system, nil
	}

	reader, err := cgroup.NewReader(cgroupRoot, procRoot, pid)
	if err != nil {
		return nil, fmt.Errorf("error creating cgroup reader: %w", err)
	}

	return NewCgroupProvider(reader, system), nil
}
