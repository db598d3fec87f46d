// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")

	cfg, err := LoadConfig("testdata/absent.env")
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.TelegramBotToken)
	assert.Equal(t, DefaultSaiEndpoint, cfg.SaiEndpoint)
	assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5, cfg.TradesPageSize)
	assert.Equal(t, 10, cfg.PricesPageSize)
	assert.Equal(t, 100, cfg.TradesFetchLimit)
	assert.Equal(t, 200, cfg.PricesFetchLimit)
	assert.Equal(t, 50, cfg.SessionCacheSize)
	assert.Equal(t, "", cfg.RedisAddr)
	assert.Equal(t, "", cfg.DBHost)
}

func TestLoadConfigMissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	_, err := LoadConfig("testdata/absent.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("SAI_GRAPHQL_ENDPOINT", "http://localhost:8080/query")
	t.Setenv("REQUEST_TIMEOUT", "5")
	t.Setenv("TRADES_PAGE_SIZE", "3")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := LoadConfig("testdata/absent.env")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/query", cfg.SaiEndpoint)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 3, cfg.TradesPageSize)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}
