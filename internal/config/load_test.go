package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Note: no t.Parallel() here — these tests mutate process environment.

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CARDSMITH_LLM_GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "test-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, 3, cfg.LLM.MaxRetries)
	assert.Equal(t, 15, cfg.Generation.DefaultCardCount)
	assert.Equal(t, 3000, cfg.Generation.ChunkSize)
	assert.Equal(t, 256, cfg.Generation.MaxStoredDecks)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CARDSMITH_LLM_GEMINI_API_KEY", "test-key")
	t.Setenv("CARDSMITH_SERVER_PORT", "9999")
	t.Setenv("CARDSMITH_SERVER_LOG_LEVEL", "debug")
	t.Setenv("CARDSMITH_GENERATION_DEFAULT_CARD_COUNT", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 5, cfg.Generation.DefaultCardCount)
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("CARDSMITH_LLM_GEMINI_API_KEY", "")

	_, err := Load()
	assert.Error(t, err, "gemini_api_key is required")
}

func TestLoadInvalidValues(t *testing.T) {
	t.Setenv("CARDSMITH_LLM_GEMINI_API_KEY", "test-key")
	t.Setenv("CARDSMITH_SERVER_LOG_LEVEL", "verbose")

	_, err := Load()
	assert.Error(t, err, "log level must be one of the known levels")
}
