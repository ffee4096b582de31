// Package config reads the editor's settings from the environment.
//
// All settings are optional. Malformed values are ignored in favour of the
// default and reported through Config.Warnings so the caller can log them.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/fotoflex-mcp/internal/imaging"
)

// Environment variables understood by Load.
const (
	EnvLogLevel         = "FOTOFLEX_LOG_LEVEL"
	EnvPreviewMaxWidth  = "FOTOFLEX_PREVIEW_MAX_WIDTH"
	EnvPreviewMaxHeight = "FOTOFLEX_PREVIEW_MAX_HEIGHT"
	EnvJPEGQuality      = "FOTOFLEX_JPEG_QUALITY"
)

// Config holds the runtime settings.
type Config struct {
	// LogLevel is "info" (default) or "debug".
	LogLevel string

	// PreviewMaxWidth and PreviewMaxHeight bound the preview rendered after
	// every change.
	PreviewMaxWidth  int
	PreviewMaxHeight int

	// JPEGQuality is used when saving JPEG files (1-100).
	JPEGQuality int

	// Warnings lists settings that were present but unusable.
	Warnings []string
}

// Default returns the settings used when the environment is empty.
func Default() Config {
	return Config{
		LogLevel:         "info",
		PreviewMaxWidth:  imaging.DefaultPreviewWidth,
		PreviewMaxHeight: imaging.DefaultPreviewHeight,
		JPEGQuality:      imaging.DefaultJPEGQuality,
	}
}

// Load reads the settings from the process environment.
func Load() Config {
	return FromLookup(os.LookupEnv)
}

// FromLookup reads the settings through lookup, which has the signature of
// os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) Config {
	cfg := Default()

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		switch level := strings.ToLower(strings.TrimSpace(v)); level {
		case "debug", "info":
			cfg.LogLevel = level
		default:
			cfg.warnf("%s: unknown level %q, using %q", EnvLogLevel, v, cfg.LogLevel)
		}
	}

	cfg.PreviewMaxWidth = cfg.intSetting(lookup, EnvPreviewMaxWidth, cfg.PreviewMaxWidth, 1, 1<<14)
	cfg.PreviewMaxHeight = cfg.intSetting(lookup, EnvPreviewMaxHeight, cfg.PreviewMaxHeight, 1, 1<<14)
	cfg.JPEGQuality = cfg.intSetting(lookup, EnvJPEGQuality, cfg.JPEGQuality, 1, 100)

	return cfg
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}

func (c *Config) intSetting(lookup func(string) (string, bool), name string, def, min, max int) int {
	v, ok := lookup(name)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < min || n > max {
		c.warnf("%s: %q is not an integer in [%d, %d], using %d", name, v, min, max, def)
		return def
	}
	return n
}

func (c *Config) warnf(format string, args ...interface{}) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}
