// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable memfill reads.
const EnvPrefix = "MEMFILL_"

// StructuredConfig is the raw configuration container for memfill. It
// aggregates all sub-configurations and is populated by merging values from
// command-line flags, environment variables and an optional JSON or YAML
// file. Values are kept as written; [Resolve] turns them into a [Config].
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Fill holds the three positional arguments: size, mode and duration.
	Fill Fill `envPrefix:"FILL_"`

	// Memory selects where total and available memory are read from.
	Memory Memory `envPrefix:"MEMORY_"`

	// Chunks holds timeouts of the chunk holder processes.
	Chunks Chunks `envPrefix:"CHUNKS_"`

	// Workers holds the periods of the update and report loops.
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds the optional status endpoint settings.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. Populated via MEMFILL_CONFIG or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// Fill describes what to allocate and for how long.
type Fill struct {
	// Size is "<n>%" or a byte size such as "512M" or "2GiB".
	Size string `env:"SIZE"`
	// Mode is "absolute" or "usage".
	Mode string `env:"MODE"`
	// Duration accepts s, m, h, d and w units, e.g. "1h30m" or "2d".
	Duration string `env:"DURATION"`
}

// Memory configures the memory information source.
type Memory struct {
	// IgnoreCgroup computes total/usage from system information.
	IgnoreCgroup bool `env:"IGNORE_CGROUP"`
	// CgroupRoot is the cgroup filesystem mount point.
	CgroupRoot string `env:"CGROUP_ROOT"`
	// ProcRoot is the proc filesystem mount point.
	ProcRoot string `env:"PROC_ROOT"`
}

// Chunks configures chunk holder processes.
type Chunks struct {
	// ReadyTimeout bounds how long a new chunk may take to fill its memory.
	ReadyTimeout time.Duration `env:"READY_TIMEOUT"`
	// FreeTimeout bounds how long a released chunk may take to exit.
	FreeTimeout time.Duration `env:"FREE_TIMEOUT"`
}

// Workers configures the run loops.
type Workers struct {
	// UpdateInterval is the pause between two allocator updates.
	UpdateInterval time.Duration `env:"UPDATE_INTERVAL"`
	// ReportInterval is the pause between two memory status log lines.
	ReportInterval time.Duration `env:"REPORT_INTERVAL"`
}

// Server configures the status endpoint.
type Server struct {
	// StatusAddress is host:port to serve /status on. Empty disables it.
	StatusAddress string `env:"STATUS_ADDRESS"`
	// ShutdownTimeout bounds graceful shutdown of the status endpoint.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Log configures the logger.
type Log struct {
	// Level is a zerolog level name.
	Level string `env:"LEVEL"`
	// Format is "json" or "console".
	Format string `env:"FORMAT"`
}

// defaults returns the values used for anything no source sets.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Memory: Memory{
			CgroupRoot: "/sys/fs/cgroup",
			ProcRoot:   "/proc",
		},
		Chunks: Chunks{
			ReadyTimeout: 5 * time.Second,
			FreeTimeout:  10 * time.Second,
		},
		Workers: Workers{
			UpdateInterval: 50 * time.Millisecond,
			ReportInterval: 5 * time.Second,
		},
		Server: Server{
			ShutdownTimeout: 5 * time.Second,
		},
		Log: Log{
			Level:  "info",
			Format: "json",
		},
	}
}

// GetConfig builds the configuration from args (without the program name),
// MEMFILL_ environment variables, the optional config file and defaults, in
// that order of priority, and resolves it.
func GetConfig(args []string) (*Config, error) {
	cfg, err := newConfigBuilder().
		withFlags(args).
		withEnv().
		withFile().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return Resolve(cfg)
}
