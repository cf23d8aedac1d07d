// Package config - конфигурация приложения.
//
// Использует Viper: YAML файл, переменные окружения, defaults.
// Приоритет (от высшего к низшему): env vars, config file, defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config - главная структура конфигурации приложения.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Database DatabaseConfig `mapstructure:"database"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
}

// AppConfig - конфигурация приложения.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"` // development, production
}

// IsProduction возвращает true если окружение production.
func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

// ServerConfig - конфигурация HTTP сервера.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// TelegramConfig - Bot API и администратор.
// Без токена и chat ID сервис поднимается, но отправка заказов и
// админские операции отвечают "Server configuration error" / 403.
type TelegramConfig struct {
	BotToken    string `mapstructure:"bot_token"`
	AdminChatID int64  `mapstructure:"admin_chat_id"`
}

// Configured возвращает true если отправка заказов настроена.
func (c *TelegramConfig) Configured() bool {
	return c.BotToken != "" && c.AdminChatID != 0
}

// RedisConfig - внешнее хранилище промокода и флага видимости.
// Пустой Addr переключает сервис на in-memory store.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DatabaseConfig - архив заказов.
// Пустой URL отключает архив: заказы только ретранслируются.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// CORSConfig - конфигурация CORS.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig - конфигурация логирования.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// Load загружает конфигурацию из файла и переменных окружения.
//
// configPath - директория с конфигурацией, configName - имя файла без
// расширения. Отсутствие файла не ошибка: достаточно env vars и defaults.
func Load(configPath, configName string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("HOROMI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadFromEnv загружает конфигурацию только из переменных окружения.
func LoadFromEnv() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("HOROMI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults устанавливает значения по умолчанию.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "BarskieHoromi")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.admin_chat_id", 0)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("database.url", "")

	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// bindEnvVars привязывает короткие имена env vars, привычные для деплоя.
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("telegram.bot_token", "HOROMI_TELEGRAM_BOT_TOKEN", "TELEGRAM_BOT_TOKEN")
	_ = v.BindEnv("telegram.admin_chat_id", "HOROMI_TELEGRAM_ADMIN_CHAT_ID", "ADMIN_CHAT_ID")
	_ = v.BindEnv("redis.addr", "HOROMI_REDIS_ADDR", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "HOROMI_REDIS_PASSWORD", "REDIS_PASSWORD")
	_ = v.BindEnv("database.url", "HOROMI_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("server.port", "HOROMI_SERVER_PORT", "PORT")
	_ = v.BindEnv("app.environment", "HOROMI_APP_ENVIRONMENT", "ENVIRONMENT", "ENV")
}

// Validate валидирует конфигурацию.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// В production полагаться на in-memory store нельзя:
	// промокод и флаг видимости должны переживать рестарты.
	if c.App.IsProduction() && c.Redis.Addr == "" {
		return fmt.Errorf("redis addr is required in production")
	}

	if c.Telegram.BotToken != "" && c.Telegram.AdminChatID == 0 {
		return fmt.Errorf("admin chat id is required when bot token is set")
	}

	return nil
}
