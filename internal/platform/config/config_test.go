package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunnorapp/lunnor_caixa/internal/platform/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "30-M", cfg.AuthRateLimit)
	assert.Equal(t, "lunnor.notifications", cfg.AMQPExchange)
	assert.Equal(t, "fund-movements", cfg.AMQPNotifyQueue)
	assert.False(t, cfg.AMQPConfigured())
	assert.False(t, cfg.SheetsConfigured())
}

func TestLoadConfig_RateLimitFromEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT", "10-M")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "10-M", cfg.AuthRateLimit)
}
