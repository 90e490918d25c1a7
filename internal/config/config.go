package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Name string
		Env  string
	}

	API struct {
		Host string
		Port string
	}

	DB struct {
		Host     string
		Port     int
		User     string
		Password string
		Name     string
		SSLMode  string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Gateway struct {
		URL    string
		APIKey string
	}

	Telegram struct {
		BotToken string
		ChatID   string
	}

	Dispatcher struct {
		Enabled      bool
		Interval     time.Duration
		BatchTimeout time.Duration
	}

	Outbox struct {
		MaxWorkers     int
		PerItemTimeout time.Duration
	}
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	// App
	cfg.App.Name = getEnv("APP_NAME", "blaze-bridge")
	cfg.App.Env = getEnv("APP_ENV", "development")

	// API
	cfg.API.Host = getEnv("API_HOST", "0.0.0.0")
	cfg.API.Port = getEnv("API_PORT", "8080")

	// DB
	cfg.DB.Host = getEnv("DB_HOST", "db")
	cfg.DB.Port = getInt("DB_PORT", 5432)
	cfg.DB.User = getEnv("DB_USER", "blaze")
	cfg.DB.Password = getEnv("DB_PASSWORD", "blaze")
	cfg.DB.Name = getEnv("DB_NAME", "db_blaze_bridge")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	// Redis
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "redis:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)

	// Messaging gateway
	cfg.Gateway.URL = getEnv("GATEWAY_URL", "")
	cfg.Gateway.APIKey = getEnv("GATEWAY_API_KEY", "")

	// Telegram operator relay
	cfg.Telegram.BotToken = getEnv("TELEGRAM_BOT_TOKEN", "")
	cfg.Telegram.ChatID = getEnv("TELEGRAM_CHAT_ID", "")

	// Dispatcher
	cfg.Dispatcher.Enabled = isTruthy(os.Getenv("DISPATCHER_ENABLED"))
	cfg.Dispatcher.Interval = getDuration("DISPATCHER_INTERVAL", 5*time.Second)
	cfg.Dispatcher.BatchTimeout = getDuration("DISPATCHER_BATCH_TIMEOUT", 30*time.Second)

	// Outbox delivery
	cfg.Outbox.MaxWorkers = getInt("OUTBOX_MAX_WORKERS", 4)
	cfg.Outbox.PerItemTimeout = getDuration("OUTBOX_PER_ITEM_TIMEOUT", 5*time.Second)

	return cfg
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host,
		c.DB.Port,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.SSLMode,
	)
}
