package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier config
// is not overwritten by later ones, while unset fields are filled in.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Log: Log{Level: "warn"}},
		&StructuredConfig{Log: Log{Level: "debug", Format: "console"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, Log{Level: "warn", Format: "console"}, cfg.Log)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestBuilder_FlagsOverEnvOverFileOverDefaults(t *testing.T) {
	path := writeTempConfig(t, "memfill.yaml", `
fill:
  size: 10%
  mode: usage
  duration: 1m
log:
  level: error
  format: console
workers:
  report_interval: 30s
`)
	t.Setenv("MEMFILL_CONFIG", path)
	t.Setenv("MEMFILL_FILL_MODE", "absolute")
	t.Setenv("MEMFILL_LOG_LEVEL", "warn")

	cfg, err := newConfigBuilder().
		withFlags([]string{"1G", "-log-level", "trace"}).
		withEnv().
		withFile().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "1G", cfg.Fill.Size)
	assert.Equal(t, "absolute", cfg.Fill.Mode)
	assert.Equal(t, "1m", cfg.Fill.Duration)
	assert.Equal(t, "trace", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 30*time.Second, cfg.Workers.ReportInterval)
	assert.Equal(t, 50*time.Millisecond, cfg.Workers.UpdateInterval)
	assert.Equal(t, "/sys/fs/cgroup", cfg.Memory.CgroupRoot)
}

func TestBuilder_FlagConfigPathBeatsEnv(t *testing.T) {
	flagPath := writeTempConfig(t, "flag.json", `{"log": {"level": "error"}}`)
	envPath := writeTempConfig(t, "env.json", `{"log": {"level": "warn"}}`)
	t.Setenv("MEMFILL_CONFIG", envPath)

	cfg, err := newConfigBuilder().
		withFlags([]string{"-c", flagPath}).
		withEnv().
		withFile().
		build()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestBuilder_CollectsErrors(t *testing.T) {
	t.Setenv("MEMFILL_CONFIG", "/nonexistent/memfill.json")

	_, err := newConfigBuilder().
		withFlags([]string{"a", "b", "c", "d"}).
		withEnv().
		withFile().
		build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyArguments)
}

// ── GetConfig ─────────────────────────────────────────────────────────────────

func TestGetConfig(t *testing.T) {
	cfg, err := GetConfig([]string{"512M", "absolute", "2d", "--ignore-cgroup"})
	require.NoError(t, err)

	assert.Equal(t, uint64(512_000_000), cfg.Size.Bytes())
	assert.Equal(t, "absolute", cfg.Mode.String())
	assert.Equal(t, 48*time.Hour, cfg.Duration)
	assert.True(t, cfg.Memory.IgnoreCgroup)
	assert.Equal(t, 5*time.Second, cfg.Chunks.ReadyTimeout)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestGetConfig_MissingArguments(t *testing.T) {
	_, err := GetConfig([]string{"512M"})
	assert.ErrorIs(t, err, ErrInvalidFillConfigs)
}
