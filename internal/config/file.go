package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] with the keys used in config files.
type fileConfig struct {
	Fill struct {
		Size     string `json:"size" yaml:"size"`
		Mode     string `json:"mode" yaml:"mode"`
		Duration string `json:"duration" yaml:"duration"`
	} `json:"fill,omitempty" yaml:"fill,omitempty"`

	Memory struct {
		IgnoreCgroup bool   `json:"ignore_cgroup" yaml:"ignore_cgroup"`
		CgroupRoot   string `json:"cgroup_root" yaml:"cgroup_root"`
		ProcRoot     string `json:"proc_root" yaml:"proc_root"`
	} `json:"memory,omitempty" yaml:"memory,omitempty"`

	Chunks struct {
		ReadyTimeout Duration `json:"ready_timeout" yaml:"ready_timeout"`
		FreeTimeout  Duration `json:"free_timeout" yaml:"free_timeout"`
	} `json:"chunks,omitempty" yaml:"chunks,omitempty"`

	Workers struct {
		UpdateInterval Duration `json:"update_interval" yaml:"update_interval"`
		ReportInterval Duration `json:"report_interval" yaml:"report_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`

	Server struct {
		StatusAddress   string   `json:"status_address" yaml:"status_address"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Log struct {
		Level  string `json:"level" yaml:"level"`
		Format string `json:"format" yaml:"format"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

// parseFile reads a JSON (.json) or YAML (.yaml, .yml) config file.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileFormat, ext)
	}

	return &StructuredConfig{
		Fill: Fill{
			Size:     fileCfg.Fill.Size,
			Mode:     fileCfg.Fill.Mode,
			Duration: fileCfg.Fill.Duration,
		},
		Memory: Memory{
			IgnoreCgroup: fileCfg.Memory.IgnoreCgroup,
			CgroupRoot:   fileCfg.Memory.CgroupRoot,
			ProcRoot:     fileCfg.Memory.ProcRoot,
		},
		Chunks: Chunks{
			ReadyTimeout: time.Duration(fileCfg.Chunks.ReadyTimeout),
			FreeTimeout:  time.Duration(fileCfg.Chunks.FreeTimeout),
		},
		Workers: Workers{
			UpdateInterval: time.Duration(fileCfg.Workers.UpdateInterval),
			ReportInterval: time.Duration(fileCfg.Workers.ReportInterval),
		},
		Server: Server{
			StatusAddress:   fileCfg.Server.StatusAddress,
			ShutdownTimeout: time.Duration(fileCfg.Server.ShutdownTimeout),
		},
		Log: Log{
			Level:  fileCfg.Log.Level,
			Format: fileCfg.Log.Format,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
