// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/memfill/internal/allocator"
	"github.com/MKhiriev/memfill/internal/config"
	handler "github.com/MKhiriev/memfill/internal/handler/http"
	"github.com/MKhiriev/memfill/internal/logger"
	"github.com/MKhiriev/memfill/internal/meminfo"
	"github.com/MKhiriev/memfill/internal/server"
	"github.com/MKhiriev/memfill/internal/utils"
	"github.com/MKhiriev/memfill/internal/workers"
	"github.com/MKhiriev/memfill/models"
)

// Settings holds the timing of a run.
type Settings struct {
	Duration       time.Duration
	UpdateInterval time.Duration
	ReportInterval time.Duration
}

// App is a memfill controller.
type App struct {
	allocator allocator.Allocator
	pool      ChunkPool
	provider  meminfo.Provider
	oom       OOMScoreAdjuster
	settings  Settings

	status server.Server
	now    func() time.Time

	mu       sync.RWMutex
	deadline time.Time

	logger *logger.Logger
}

// Option customises an [App].
type Option func(*App)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// New returns a controller driving alloc. pool must be the pool alloc
// adjusts.
func New(alloc allocator.Allocator, pool ChunkPool, provider meminfo.Provider, oom OOMScoreAdjuster,
	settings Settings, log *logger.Logger, opts ...Option) (*App, error) {
	if alloc == nil || pool == nil || provider == nil || oom == nil {
		return nil, ErrNilDependency
	}
	if settings.Duration <= 0 {
		return nil, ErrNonPositiveDuration
	}

	a := &App{
		allocator: alloc,
		pool:      pool,
		provider:  provider,
		oom:       oom,
		settings:  settings,
		now:       time.Now,
		logger:    log,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// ServeStatus binds the status endpoint; it is served while Run runs.
func (a *App) ServeStatus(cfg config.Server) error {
	h, err := handler.NewHandler(a, a.logger)
	if err != nil {
		return fmt.Errorf("error creating status handler: %w", err)
	}

	srv, err := server.NewServer(h.Init(), cfg, a.logger)
	if err != nil {
		return fmt.Errorf("error creating status server: %w", err)
	}

	a.status = srv
	return nil
}

// Run holds memory until the run duration elapses or ctx is cancelled, then
// frees every chunk.
func (a *App) Run(ctx context.Context) error {
	if score, err := a.oom.Adjust(); err != nil {
		a.logger.Warn().Err(err).Int("score", score).Msg("failed to adjust OOM score")
	} else {
		a.logger.Debug().Int("score", score).Msg("OOM score adjusted")
	}

	deadline := a.now().Add(a.settings.Duration)
	a.mu.Lock()
	a.deadline = deadline
	a.mu.Unlock()

	a.logger.Info().Msgf("terminating after %ds", int64(a.settings.Duration/time.Second))

	runCtx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	err := workers.New(
		workers.Func(a.updateLoop),
		workers.Func(a.reportLoop),
		a.status,
	).Run(runCtx)

	released := a.pool.Release()
	a.logger.Info().Msgf("released %s", utils.FormatBytes(released))

	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// Status implements the status endpoint source.
func (a *App) Status(ctx context.Context) (models.Status, error) {
	mem, err := a.provider.MemInfo(ctx)
	if err != nil {
		return models.Status{}, fmt.Errorf("error reading memory info: %w", err)
	}

	a.mu.RLock()
	deadline := a.deadline
	a.mu.RUnlock()

	allocated := a.allocator.Size()
	return models.Status{
		Target:           a.allocator.Target(),
		Allocated:        allocated,
		Chunks:           a.pool.Len(),
		AllocatedPercent: models.PercentOf(int64(allocated), mem.Total),
		Memory:           mem,
		Deadline:         deadline,
	}, nil
}

func (a *App) updateLoop(ctx context.Context) error {
	ticker := time.NewTicker(a.settings.UpdateInterval)
	defer ticker.Stop()

	for {
		if err := a.allocator.Update(ctx); err != nil && ctx.Err() == nil {
			a.logger.Warn().Err(err).Msg("allocator update failed")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (a *App) reportLoop(ctx context.Context) error {
	ticker := time.NewTicker(a.settings.ReportInterval)
	defer ticker.Stop()

	for {
		a.report(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (a *App) report(ctx context.Context) {
	mem, err := a.provider.MemInfo(ctx)
	if err != nil {
		if ctx.Err() == nil {
			a.logger.Warn().Err(err).Msg("failed to read memory info")
		}
		return
	}

	allocated := a.allocator.Size()
	a.logger.Info().
		Uint64("available", mem.Available).
		Uint64("total", mem.Total).
		Uint64("allocated", allocated).
		Int("chunks", a.pool.Len()).
		Msgf("available memory: %s (%d%% of total memory); allocated by memfill: %s (%d%% of total memory)",
			utils.FormatBytes(mem.Available), mem.AvailablePercent(),
			utils.FormatBytes(allocated), models.PercentOf(int64(allocated), mem.Total))
}
