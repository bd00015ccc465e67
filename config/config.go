package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds all configuration for the bot service
type Config struct {
	Telegram  TelegramConfig
	Extractor ExtractorConfig
	Access    AccessConfig
	Health    HealthConfig
	Logging   LoggingConfig
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken string
}

// ExtractorConfig holds extraction tool configuration.
// CookieFile is the path of the materialized cookie blob, empty when
// cookie auth is not configured.
type ExtractorConfig struct {
	Path       string
	Proxy      string
	CookieFile string
}

// AccessConfig holds the optional requester allow-list.
// An empty list allows everyone.
type AccessConfig struct {
	AllowedUserIDs []int64
}

// HealthConfig holds health endpoint configuration
type HealthConfig struct {
	Port string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// Result provides config parts for fx dependency injection using fx.Out pattern
type Result struct {
	fx.Out

	Config    *Config
	Telegram  *TelegramConfig
	Extractor *ExtractorConfig
	Access    *AccessConfig
	Health    *HealthConfig
	Logging   *LoggingConfig
}

// Out loads configuration and returns Result for fx injection
func Out() (Result, error) {
	cfg, err := Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config:    cfg,
		Telegram:  &cfg.Telegram,
		Extractor: &cfg.Extractor,
		Access:    &cfg.Access,
		Health:    &cfg.Health,
		Logging:   &cfg.Logging,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	allowed, err := parseUserIDs(getEnv("ALLOWED_USER_IDS", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid ALLOWED_USER_IDS: %w", err)
	}

	cookieFile, err := materializeCookies(os.Getenv("YTDLP_COOKIES"))
	if err != nil {
		return nil, fmt.Errorf("failed to materialize cookies: %w", err)
	}

	cfg := &Config{
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		},
		Extractor: ExtractorConfig{
			Path:       getEnv("YTDLP_PATH", "yt-dlp"),
			Proxy:      getEnv("YTDLP_PROXY", ""),
			CookieFile: cookieFile,
		},
		Access: AccessConfig{
			AllowedUserIDs: allowed,
		},
		Health: HealthConfig{
			Port: getEnv("HEALTH_PORT", "8080"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	return nil
}

// parseUserIDs parses a comma-separated list of numeric user IDs
func parseUserIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("user ID %q is not numeric", part)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// materializeCookies writes the cookie blob to a private temp file once
// at startup and returns its path. Every extraction invocation
// references this file for the lifetime of the process.
func materializeCookies(blob string) (string, error) {
	if blob == "" {
		return "", nil
	}

	f, err := os.CreateTemp("", "ytdlp-cookies-*.txt")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := f.Chmod(0o600); err != nil {
		return "", err
	}
	if _, err := f.WriteString(blob); err != nil {
		return "", err
	}

	return f.Name(), nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
