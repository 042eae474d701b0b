package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, int64(1<<20), cfg.MaxPipelineBytes)
	assert.False(t, cfg.EnableEvents)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("MAX_PIPELINE_BYTES", "2048")
	t.Setenv("ENABLE_EVENTS", "true")
	t.Setenv("EVENT_BUS_NAME", "analysis-events")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, int64(2048), cfg.MaxPipelineBytes)
	assert.True(t, cfg.EnableEvents)
	assert.Equal(t, "analysis-events", cfg.EventBusName)
}

func TestValidate(t *testing.T) {
	t.Run("rejects non-positive body cap", func(t *testing.T) {
		cfg := &Config{MaxPipelineBytes: 0}
		assert.Error(t, cfg.Validate())
	})

	t.Run("events need a bus name", func(t *testing.T) {
		cfg := &Config{MaxPipelineBytes: 1, EnableEvents: true}
		assert.Error(t, cfg.Validate())
	})
}
