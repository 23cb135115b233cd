package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("SRTNR_GOOGL_API_KEY", "")
	t.Setenv("SRTNR_BITLY_TOKEN", "")

	cfg, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogDevelopment)
	assert.Empty(t, cfg.Credentials().GooGlAPIKey)
}

func TestLoadEnv_Values(t *testing.T) {
	t.Setenv("SRTNR_GOOGL_API_KEY", "g-key")
	t.Setenv("SRTNR_BITLY_TOKEN", "b-token")
	t.Setenv("SRTNR_HTTP_TIMEOUT", "15s")
	t.Setenv("SRTNR_LOG_LEVEL", "debug")
	t.Setenv("SRTNR_LOG_DEVELOPMENT", "true")

	cfg, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogDevelopment)

	creds := cfg.Credentials()
	assert.Equal(t, "g-key", creds.GooGlAPIKey)
	assert.Equal(t, "b-token", creds.BitLyToken)
}

func TestLoadEnv_Invalid(t *testing.T) {
	t.Setenv("SRTNR_HTTP_TIMEOUT", "soon")
	_, err := LoadEnv()
	assert.Error(t, err)

	t.Setenv("SRTNR_HTTP_TIMEOUT", "-1s")
	_, err = LoadEnv()
	assert.Error(t, err)
}
