// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting gateway configuration.
package appconfig

import (
	"fmt"
	"time"

	"github.com/appvector/vector-mcp/internal/upstream"
)

const (
	// DefaultPort is the inbound HTTP port when none is configured.
	DefaultPort = 3000
	// defaultRequestTimeout bounds a single upstream round trip.
	defaultRequestTimeout = 30 * time.Second
)

// Config represents the merged gateway configuration. It is read-only after
// startup; every component receives it (or values derived from it) at
// construction time rather than reading ambient state.
type Config struct {
	APIToken       string `mapstructure:"api_token"`
	Port           int    `mapstructure:"port"`
	TimeoutSeconds int    `mapstructure:"timeout"`
	LogFile        string `mapstructure:"log_file"`
	Debug          bool   `mapstructure:"debug"`

	// APIBaseURL overrides the upstream API root; tests point it at a
	// local fake.
	APIBaseURL string `mapstructure:"-"`
}

// BaseURL returns the upstream API root.
func (c Config) BaseURL() string {
	if c.APIBaseURL != "" {
		return c.APIBaseURL
	}
	return upstream.DefaultBaseURL
}

// RequestTimeout returns the timeout for upstream requests, falling back to
// the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ListenAddr returns the inbound listen address, applying the default port
// if none is set.
func (c Config) ListenAddr() string {
	port := c.Port
	if port <= 0 {
		port = DefaultPort
	}
	return fmt.Sprintf(":%d", port)
}

// LogFilePath returns the log file path; empty means stdout only.
func (c Config) LogFilePath() string {
	return c.LogFile
}
