// Package cgroup reads the memory controller counters of the cgroup the
// current process belongs to. Both the unified hierarchy (cgroup v2) and the
// legacy memory controller (cgroup v1) are supported; the version is detected
// from the presence of cgroup.controllers at the cgroup mount root.
//
// Membership is resolved from /proc/<pid>/cgroup via prometheus/procfs, so
// both roots can be pointed at fixtures in tests.
package cgroup
