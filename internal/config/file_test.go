package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── parseFile ─────────────────────────────────────────────────────────────────

func TestParseFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "memfill.json", `{
		"fill": {"size": "1G", "mode": "absolute", "duration": "10m"},
		"memory": {"ignore_cgroup": true, "proc_root": "/host/proc"},
		"chunks": {"ready_timeout": "7s", "free_timeout": 1000000000},
		"workers": {"update_interval": "25ms"},
		"server": {"status_address": ":9100"},
		"log": {"level": "warn", "format": "console"}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, Fill{Size: "1G", Mode: "absolute", Duration: "10m"}, cfg.Fill)
	assert.True(t, cfg.Memory.IgnoreCgroup)
	assert.Equal(t, "/host/proc", cfg.Memory.ProcRoot)
	assert.Empty(t, cfg.Memory.CgroupRoot)
	assert.Equal(t, 7*time.Second, cfg.Chunks.ReadyTimeout)
	assert.Equal(t, time.Second, cfg.Chunks.FreeTimeout)
	assert.Equal(t, 25*time.Millisecond, cfg.Workers.UpdateInterval)
	assert.Equal(t, ":9100", cfg.Server.StatusAddress)
	assert.Equal(t, Log{Level: "warn", Format: "console"}, cfg.Log)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_YAML(t *testing.T) {
	for _, name := range []string{"memfill.yaml", "memfill.YML"} {
		t.Run(name, func(t *testing.T) {
			path := writeTempConfig(t, name, `
fill:
  size: 50%
  mode: usage
  duration: 2d
workers:
  report_interval: 1m
  update_interval: 100000000
log:
  level: error
`)

			cfg, err := parseFile(path)
			require.NoError(t, err)

			assert.Equal(t, Fill{Size: "50%", Mode: "usage", Duration: "2d"}, cfg.Fill)
			assert.Equal(t, time.Minute, cfg.Workers.ReportInterval)
			assert.Equal(t, 100*time.Millisecond, cfg.Workers.UpdateInterval)
			assert.Equal(t, "error", cfg.Log.Level)
		})
	}
}

func TestParseFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseFile(filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeTempConfig(t, "memfill.toml", "size = 1")
		_, err := parseFile(path)
		assert.ErrorIs(t, err, ErrUnsupportedFileFormat)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeTempConfig(t, "memfill.json", "{")
		_, err := parseFile(path)
		assert.Error(t, err)
	})

	t.Run("malformed yaml duration", func(t *testing.T) {
		path := writeTempConfig(t, "memfill.yaml", "chunks:\n  ready_timeout: later\n")
		_, err := parseFile(path)
		assert.Error(t, err)
	})
}

// ── Duration ──────────────────────────────────────────────────────────────────

func TestDuration_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))

	var d Duration
	require.NoError(t, json.Unmarshal(data, &d))
	assert.Equal(t, Duration(90*time.Second), d)
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	var v struct {
		D Duration `yaml:"d"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("d: 1h"), &v))
	assert.Equal(t, Duration(time.Hour), v.D)

	require.NoError(t, yaml.Unmarshal([]byte("d: 5"), &v))
	assert.Equal(t, Duration(5), v.D)
}
