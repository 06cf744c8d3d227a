package di

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ssargent/palmdoc/pkg/config"
)

func TestNewContainer(t *testing.T) {
	c := NewContainer()

	assert.Equal(t, config.DefaultConfig(), c.GetConfig())
	assert.NotNil(t, c.GetLogger())
	assert.NotNil(t, c.GetMetrics())
}

func TestContainer_Overrides(t *testing.T) {
	c := NewContainer()

	cfg := config.DefaultConfig()
	cfg.Verbose = true
	c.SetConfig(cfg)
	assert.True(t, c.GetConfig().Verbose)

	var buf bytes.Buffer
	c.SetLogger(NewLogger(&buf, slog.LevelWarn))
	c.GetLogger().Info("hidden")
	c.GetLogger().Warn("shown", "kind", "unmapped_rune")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=WARN msg=shown kind=unmapped_rune")
}
