// Package di provides dependency injection container
package di

import (
	"io"
	"log/slog"
	"os"

	"github.com/ssargent/palmdoc/pkg/config"
	"github.com/ssargent/palmdoc/pkg/metrics"
)

// Container holds all the dependencies for the application
type Container struct {
	config  *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewContainer creates a new dependency injection container with the
// default configuration and an info level logger on stderr
func NewContainer() *Container {
	return &Container{
		config:  config.DefaultConfig(),
		logger:  NewLogger(os.Stderr, slog.LevelInfo),
		metrics: metrics.New(),
	}
}

// NewLogger builds the text logger used by the CLI
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// GetConfig returns the active configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// SetConfig replaces the active configuration
func (c *Container) SetConfig(cfg *config.Config) {
	c.config = cfg
}

// GetLogger returns the logger
func (c *Container) GetLogger() *slog.Logger {
	return c.logger
}

// SetLogger allows overriding the logger (for testing)
func (c *Container) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// GetMetrics returns the metrics collector
func (c *Container) GetMetrics() *metrics.Metrics {
	return c.metrics
}
