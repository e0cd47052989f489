package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "REQUEST_TIMEOUT", "MAX_RETRIES", "TRADINGECONOMICS_API_KEY", "OPENAI_MODEL", "OPENAI_API_KEY", "OPENAI_TEMPERATURE", "SPORTS_LEAGUE"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, "guest:guest", cfg.TradingEconomicsAPIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Empty(t, cfg.OpenAIAPIKey)
	assert.Equal(t, "English Premier League", cfg.SportsLeague)
	assert.Equal(t, 0.2, cfg.OpenAITemperature)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REQUEST_TIMEOUT", "3")
	t.Setenv("MAX_RETRIES", "2")
	t.Setenv("OPENAI_TEMPERATURE", "0.7")
	t.Setenv("BATCH_CONCURRENCY", "not-a-number")
	t.Setenv("HTTP_ADDR", ":9090")

	cfg := FromEnv()

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.Timeout())
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Equal(t, 0.7, cfg.OpenAITemperature)
	assert.Equal(t, 4, cfg.BatchConcurrency, "invalid integers fall back to the default")
	assert.Equal(t, ":9090", cfg.HTTPAddr)
}
