// Package config handles basictext CLI configuration using Viper.
//
// Configuration sources (in priority order):
//  1. Environment variables (BASICTEXT_*)
//  2. Config file (<user config dir>/basictext/config.yaml)
//  3. Built-in defaults
package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/musher-dev/basictext/internal/paths"
)

// Config holds the basictext CLI configuration, principally the default
// transducer compatibility options applied when a command doesn't
// override them with flags.
type Config struct {
	v *viper.Viper
}

// Load reads configuration from all sources.
func Load() *Config {
	v := viper.New()

	// Defaults mirror the transducer's own option defaults (all false):
	// an unconfigured install behaves exactly like the bare library.
	v.SetDefault("compat.nel", false)
	v.SetDefault("compat.lsps", false)
	v.SetDefault("compat.crlf", false)
	v.SetDefault("compat.bom", false)
	v.SetDefault("compat.color", false)
	v.SetDefault("unicode_version", "16.0.0")

	configDir, err := paths.ConfigRoot()
	if err == nil {
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("BASICTEXT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			slog.Default().Warn("error reading config file", "component", "config", "event.type", "config.read.warning", "error", err.Error())
		}
	}

	return &Config{v: v}
}

// GetString returns a configuration value as string.
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetBool returns a configuration value as bool.
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// NELCompat reports whether U+0085 should map to U+000A instead of U+0020.
func (c *Config) NELCompat() bool { return c.GetBool("compat.nel") }

// LSPSCompat reports whether U+2028/U+2029 should map to U+000A instead of U+0020.
func (c *Config) LSPSCompat() bool { return c.GetBool("compat.lsps") }

// CRLFCompat reports whether the writer should emit CRLF line endings.
func (c *Config) CRLFCompat() bool { return c.GetBool("compat.crlf") }

// BOMCompat reports whether the writer should prepend a byte-order mark.
func (c *Config) BOMCompat() bool { return c.GetBool("compat.bom") }

// ColorEscapes reports whether SGR color escape sequences pass through.
func (c *Config) ColorEscapes() bool { return c.GetBool("compat.color") }

// UnicodeVersion returns the Unicode version the frozen tables were built against.
func (c *Config) UnicodeVersion() string { return c.GetString("unicode_version") }
