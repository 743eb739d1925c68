// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cgroup

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/memfill/models"
	"github.com/prometheus/procfs"
)

const (
	// DefaultRoot is where the cgroup filesystem is mounted.
	DefaultRoot = "/sys/fs/cgroup"

	v2MarkerFile  = "cgroup.controllers"
	v2MaxFile     = "memory.max"
	v2CurrentFile = "memory.current"

	v1MemoryDir   = "memory"
	v1UsageFile   = "memory.usage_in_bytes"
	v1LimitFile   = "memory.limit_in_bytes"
	v1Controller  = "memory"
	v2HierarchyID = 0

	unlimitedValue = "max"
)

// Reader resolves the memory counters of one process' cgroup.
type Reader struct {
	root     string
	proc     procfs.FS
	pid      int
	pageSize int
}

// NewReader returns a Reader for the process pid, looking up cgroup
// membership under procRoot and counters under cgroupRoot.
func NewReader(cgroupRoot, procRoot string, pid int) (*Reader, error) {
	fs, err := procfs.NewFS(procRoot)
	if err != nil {
		return nil, fmt.Errorf("error opening procfs at %s: %w", procRoot, err)
	}

	return &Reader{
		root:     cgroupRoot,
		proc:     fs,
		pid:      pid,
		pageSize: os.Getpagesize(),
	}, nil
}

// UsesV2 reports whether the cgroup filesystem is the unified hierarchy.
func (r *Reader) UsesV2() bool {
	_, err := os.Stat(filepath.Join(r.root, v2MarkerFile))
	return err == nil
}

// Memory returns usage and limit of the process' memory cgroup.
func (r *Reader) Memory() (models.CgroupMemory, error) {
	if r.UsesV2() {
		return r.readV2()
	}
	return r.readV1()
}

func (r *Reader) readV2() (models.CgroupMemory, error) {
	controller, err := r.controllerPath(func(c procfs.Cgroup) bool {
		return c.HierarchyID == v2HierarchyID
	})
	if err != nil {
		return models.CgroupMemory{}, err
	}

	// memory.max is only present below the root; walk up, at most to the
	// cgroup filesystem root, until a directory exposes both files.
	dir := filepath.Join(r.root, strings.TrimPrefix(controller, "/"))
	for {
		maxPath := filepath.Join(dir, v2MaxFile)
		currentPath := filepath.Join(dir, v2CurrentFile)

		if exists(maxPath) && exists(currentPath) {
			limit, unlimited, err := readUint(maxPath)
			if err != nil {
				return models.CgroupMemory{}, err
			}
			usage, _, err := readUint(currentPath)
			if err != nil {
				return models.CgroupMemory{}, err
			}
			return models.CgroupMemory{Usage: usage, Limit: limit, Unlimited: unlimited}, nil
		}

		parent := filepath.Dir(dir)
		if dir == filepath.Clean(r.root) || parent == dir {
			return models.CgroupMemory{}, fmt.Errorf("no %s in %s or its parents: %w", v2MaxFile, controller, ErrControllerNotFound)
		}
		dir = parent
	}
}

func (r *Reader) readV1() (models.CgroupMemory, error) {
	controller, err := r.controllerPath(func(c procfs.Cgroup) bool {
		return slices.Contains(c.Controllers, v1Controller)
	})
	if err != nil {
		return models.CgroupMemory{}, err
	}

	dir := filepath.Join(r.root, v1MemoryDir, strings.TrimPrefix(controller, "/"))

	usage, _, err := readUint(filepath.Join(dir, v1UsageFile))
	if err != nil {
		return models.CgroupMemory{}, err
	}
	limit, _, err := readUint(filepath.Join(dir, v1LimitFile))
	if err != nil {
		return models.CgroupMemory{}, err
	}

	return models.CgroupMemory{Usage: usage, Limit: limit, Unlimited: limit == v1Unlimited(r.pageSize)}, nil
}

func (r *Reader) controllerPath(match func(procfs.Cgroup) bool) (string, error) {
	p, err := r.proc.Proc(r.pid)
	if err != nil {
		return "", fmt.Errorf("error opening process %d: %w", r.pid, err)
	}

	cgroups, err := p.Cgroups()
	if err != nil {
		return "", fmt.Errorf("error reading cgroups of process %d: %w", r.pid, err)
	}

	for _, c := range cgroups {
		if match(c) {
			return c.Path, nil
		}
	}

	return "", ErrControllerNotFound
}

// v1Unlimited is the value memory.limit_in_bytes reports for an unlimited
// cgroup: the largest page-aligned int64.
func v1Unlimited(pageSize int) uint64 {
	if pageSize <= 0 {
		return 0
	}
	ps := int64(pageSize)
	return uint64((math.MaxInt64 / ps) * ps)
}

// readUint reads a single unsigned integer from path. The literal "max" is
// reported as unlimited with a zero value.
func readUint(path string) (uint64, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false, fmt.Errorf("%w %s: %w", ErrReadFile, path, err)
	}

	value := strings.TrimSpace(string(data))
	if value == unlimitedValue {
		return 0, true, nil
	}

	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w %s: %w", ErrParseFile, path, err)
	}

	return n, false, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
