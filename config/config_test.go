package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poster-studio/config"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := config.Load()
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("AGENT_NAME", "Test Agent")
	t.Setenv("AGENT_PHONE", "")
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
	assert.Equal(t, "8080", cfg.Server.Port)

	// env beats yaml for the operator defaults
	assert.Equal(t, "Test Agent", cfg.Agent.Name)
	assert.NotEmpty(t, cfg.Agent.Phone)

	assert.NotEmpty(t, cfg.Fonts.RegularPath)
	assert.NotEmpty(t, cfg.Fonts.BoldPath)
}
