package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.APIPort)
	assert.Equal(t, "8081", cfg.WebPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "test@fina.dev", cfg.DefaultUserID)
	assert.Equal(t, 60*time.Second, cfg.CacheTTL)
	assert.False(t, cfg.IsProd())
	assert.False(t, cfg.CacheEnabled())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("CONNECTION_STRING", "fina:fina@tcp(localhost:3306)/fina?parseTime=true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("FRONTEND_URL", "https://app.fina.dev")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "https://app.fina.dev", cfg.FrontendURL)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := LoadConfig()
	assert.Error(t, err)
}
