// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/ik5/audplay/backend"
	"github.com/ik5/audplay/formats"
	"github.com/ik5/audplay/pcm"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Backend selects the sink
	Backend BackendConfig `mapstructure:"backend"`

	// Decoder selects the decoding strategy
	Decoder DecoderConfig `mapstructure:"decoder"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// BackendConfig holds sink configuration
type BackendConfig struct {
	Name   string `mapstructure:"name"`   // empty for the default backend
	Device string `mapstructure:"device"` // backend-defined
	Format string `mapstructure:"format"` // F32, S32, S24, S24_3 or S16
}

// DecoderConfig holds decoder configuration
type DecoderConfig struct {
	Kind string `mapstructure:"kind"` // empty to pick by file extension
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("backend.name", "")
	v.SetDefault("backend.device", "")
	v.SetDefault("backend.format", pcm.DefaultFormat.String())
	v.SetDefault("decoder.kind", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Load reads configuration from the config file, environment variables
// (AUDPLAY_BACKEND_FORMAT and so on) and any flags already bound to v.
// A missing config file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	if v.ConfigFileUsed() == "" {
		v.SetConfigName("audplay")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.audplay")
		v.AddConfigPath("/etc/audplay")
	}

	v.SetEnvPrefix("AUDPLAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		slog.Debug("No config file found, using defaults and environment variables")
	} else {
		slog.Debug("Using config file", slog.String("file", v.ConfigFileUsed()))
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &config, nil
}

// SampleFormat returns the parsed backend format.
func (c *Config) SampleFormat() (pcm.Format, error) {
	f, err := pcm.ParseFormat(c.Backend.Format)
	if err != nil {
		return 0, &ConfigError{Field: "backend.format", Message: err.Error()}
	}
	return f, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.SampleFormat(); err != nil {
		return err
	}

	if name := c.Backend.Name; name != "" && !slices.Contains(backend.Names(), name) {
		return &ConfigError{
			Field:   "backend.name",
			Message: fmt.Sprintf("unknown backend %q (available: %s)", name, strings.Join(backend.Names(), ", ")),
		}
	}

	if kind := c.Decoder.Kind; kind != "" {
		kinds := formats.NewDefaultRegistry().Names()
		if !slices.Contains(kinds, kind) {
			return &ConfigError{
				Field:   "decoder.kind",
				Message: fmt.Sprintf("unknown decoder %q (available: %s)", kind, strings.Join(kinds, ", ")),
			}
		}
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "must be text or json"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
