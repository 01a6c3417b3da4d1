package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Values come from the environment,
// optionally seeded from a .env file.
type Config struct {
	DiscordToken      string `env:"DISCORD_TOKEN,required"`
	DeveloperID       string `env:"DEVELOPER_ID"`
	StoragePath       string `env:"STORAGE_PATH" envDefault:"datastore.json"`
	LogFile           string `env:"LOG_FILE" envDefault:"bot.log"`
	KeepAliveAddr     string `env:"KEEPALIVE_ADDR" envDefault:":5000"`
	FootballAPIKey    string `env:"FOOTBALL_API_KEY"`
	FootballAPIURL    string `env:"FOOTBALL_API_URL" envDefault:"https://v3.football.api-sports.io"`
	MaxReminderMin    int    `env:"MAX_REMINDER_MINUTES" envDefault:"1440"`
	InitSlashCommands bool   `env:"INIT_SLASH_COMMANDS" envDefault:"true"`
}

// New loads configuration from .env (if present) and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.MaxReminderMin < 1 {
		return nil, fmt.Errorf("MAX_REMINDER_MINUTES must be positive, got %d", cfg.MaxReminderMin)
	}
	return cfg, nil
}

// IsDeveloper reports whether the given user ID is the configured developer.
func (c *Config) IsDeveloper(userID string) bool {
	return c.DeveloperID != "" && c.DeveloperID == userID
}
