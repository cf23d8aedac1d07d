package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "BarskieHoromi", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Database.URL)
	assert.False(t, cfg.Telegram.Configured())
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_CHAT_ID", "123456789")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("PORT", "9000")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Equal(t, int64(123456789), cfg.Telegram.AdminChatID)
	assert.True(t, cfg.Telegram.Configured())
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	t.Run("ProductionRequiresRedis", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "production")

		_, err := LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis addr is required")
	})

	t.Run("TokenWithoutAdmin", func(t *testing.T) {
		t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

		_, err := LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "admin chat id is required")
	})

	t.Run("InvalidPort", func(t *testing.T) {
		t.Setenv("PORT", "99999")

		_, err := LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid server port")
	})
}
