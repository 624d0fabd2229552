// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audplay/pcm"
	"github.com/spf13/viper"
)

// newViper returns a viper instance reading only the given file.
func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()

	v := viper.New()
	if yaml != "" {
		path := filepath.Join(t.TempDir(), "audplay.yaml")
		if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
			t.Fatal(err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend.Name != "" || cfg.Backend.Device != "" {
		t.Errorf("backend = %+v, want empty name and device", cfg.Backend)
	}
	if cfg.Backend.Format != "S16" {
		t.Errorf("backend.format = %q, want S16", cfg.Backend.Format)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	v := newViper(t, `
backend:
  name: pipe
  device: /tmp/out.raw
  format: S24_3
decoder:
  kind: passthrough
logging:
  level: debug
  format: json
`)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend.Name != "pipe" || cfg.Backend.Device != "/tmp/out.raw" {
		t.Errorf("backend = %+v", cfg.Backend)
	}
	f, err := cfg.SampleFormat()
	if err != nil || f != pcm.S24Packed3 {
		t.Errorf("SampleFormat() = %v, %v; want S24_3", f, err)
	}
	if cfg.Decoder.Kind != "passthrough" {
		t.Errorf("decoder.kind = %q", cfg.Decoder.Kind)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("AUDPLAY_BACKEND_FORMAT", "F32")
	t.Setenv("AUDPLAY_LOGGING_LEVEL", "warn")

	cfg, err := Load(newViper(t, "backend:\n  format: S16\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend.Format != "F32" {
		t.Errorf("backend.format = %q, want F32 from the environment", cfg.Backend.Format)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("logging.level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(newViper(t, "")); err == nil {
		t.Error("Load() with a missing explicit config file error = nil")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Config{
		Backend: BackendConfig{Format: "S16"},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}

	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad format", func(c *Config) { c.Backend.Format = "U8" }, "backend.format"},
		{"unknown backend", func(c *Config) { c.Backend.Name = "alsa" }, "backend.name"},
		{"known backend", func(c *Config) { c.Backend.Name = "wav" }, ""},
		{"unknown decoder", func(c *Config) { c.Decoder.Kind = "flac" }, "decoder.kind"},
		{"known decoder", func(c *Config) { c.Decoder.Kind = "mp3" }, ""},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tt.modify(&cfg)
			err := cfg.Validate()

			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}

			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("Validate() error = %v, want *ConfigError", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cerr.Field, tt.field)
			}
		})
	}
}
