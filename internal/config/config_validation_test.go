package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/memfill/models"
)

func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.Fill = Fill{Size: "75%", Mode: "Usage", Duration: "1h30m"}
	return cfg
}

func TestResolve_Valid(t *testing.T) {
	cfg, err := Resolve(validConfig())
	require.NoError(t, err)

	assert.True(t, cfg.Size.IsPercent())
	assert.Equal(t, uint16(75), cfg.Size.Percent())
	assert.Equal(t, models.AllocationModeUsage, cfg.Mode)
	assert.Equal(t, 90*time.Minute, cfg.Duration)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "/proc", cfg.Memory.ProcRoot)
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing size",
			mutate:  func(cfg *StructuredConfig) { cfg.Fill.Size = "" },
			wantErr: ErrInvalidFillConfigs,
		},
		{
			name:    "percent above 100",
			mutate:  func(cfg *StructuredConfig) { cfg.Fill.Size = "101%" },
			wantErr: models.ErrPercentOutOfRange,
		},
		{
			name:    "bad size",
			mutate:  func(cfg *StructuredConfig) { cfg.Fill.Size = "lots" },
			wantErr: ErrInvalidFillConfigs,
		},
		{
			name:    "unknown mode",
			mutate:  func(cfg *StructuredConfig) { cfg.Fill.Mode = "relative" },
			wantErr: models.ErrUnknownAllocationMode,
		},
		{
			name:    "bad duration",
			mutate:  func(cfg *StructuredConfig) { cfg.Fill.Duration = "forever" },
			wantErr: ErrInvalidFillConfigs,
		},
		{
			name:    "zero duration",
			mutate:  func(cfg *StructuredConfig) { cfg.Fill.Duration = "0s" },
			wantErr: ErrInvalidFillConfigs,
		},
		{
			name:    "empty proc root",
			mutate:  func(cfg *StructuredConfig) { cfg.Memory.ProcRoot = "" },
			wantErr: ErrInvalidMemoryConfigs,
		},
		{
			name:    "zero update interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.UpdateInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "negative ready timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Chunks.ReadyTimeout = -time.Second },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "bad status address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.StatusAddress = "localhost" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero shutdown timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.ShutdownTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative shutdown timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.ShutdownTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unknown log format",
			mutate:  func(cfg *StructuredConfig) { cfg.Log.Format = "xml" },
			wantErr: ErrInvalidLogConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.Log.Level = "loud" },
			wantErr: ErrInvalidLogConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			resolved, err := Resolve(cfg)
			assert.Nil(t, resolved)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
