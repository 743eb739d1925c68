// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/memfill/internal/logger"
	"github.com/MKhiriev/memfill/models"
	"github.com/rs/zerolog"
	"github.com/xhit/go-str2duration/v2"
)

// Config is the validated configuration memfill runs with.
type Config struct {
	Size     models.Size
	Mode     models.AllocationMode
	Duration time.Duration

	Memory  Memory
	Chunks  Chunks
	Workers Workers
	Server  Server

	LogLevel  zerolog.Level
	LogFormat string
}

// Resolve validates cfg and converts its raw values into a [Config].
//
// Each group is checked in turn; the first failing group is reported with its
// ErrInvalid*Configs sentinel wrapping the underlying parse error.
func Resolve(cfg *StructuredConfig) (*Config, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	size, err := models.ParseSize(cfg.Fill.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: size: %w", ErrInvalidFillConfigs, err)
	}

	mode, err := models.ParseAllocationMode(cfg.Fill.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: mode: %w", ErrInvalidFillConfigs, err)
	}

	duration, err := str2duration.ParseDuration(cfg.Fill.Duration)
	if err != nil {
		return nil, fmt.Errorf("%w: duration: %w", ErrInvalidFillConfigs, err)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %s", ErrInvalidFillConfigs, cfg.Fill.Duration)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: level: %w", ErrInvalidLogConfigs, err)
	}

	return &Config{
		Size:      size,
		Mode:      mode,
		Duration:  duration,
		Memory:    cfg.Memory,
		Chunks:    cfg.Chunks,
		Workers:   cfg.Workers,
		Server:    cfg.Server,
		LogLevel:  level,
		LogFormat: cfg.Log.Format,
	}, nil
}

// validate checks the groups that need no parsing.
func (cfg *StructuredConfig) validate() error {
	if cfg.Fill.Size == "" || cfg.Fill.Mode == "" || cfg.Fill.Duration == "" {
		return fmt.Errorf("%w: size, mode and duration are required", ErrInvalidFillConfigs)
	}

	if cfg.Memory.CgroupRoot == "" || cfg.Memory.ProcRoot == "" {
		return ErrInvalidMemoryConfigs
	}

	if cfg.Workers.UpdateInterval <= 0 || cfg.Workers.ReportInterval <= 0 ||
		cfg.Chunks.ReadyTimeout <= 0 || cfg.Chunks.FreeTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown timeout must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Server.StatusAddress != "" {
		var addr NetAddress
		if err := addr.Set(cfg.Server.StatusAddress); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
		}
	}

	if cfg.Log.Format != logger.FormatJSON && cfg.Log.Format != logger.FormatConsole {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidLogConfigs, cfg.Log.Format)
	}

	return nil
}
