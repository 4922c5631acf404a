package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the bot.
type Config struct {
	TelegramToken        string `env:"TELEGRAM_BOT_TOKEN" env-required:"true"`
	GeminiAPIKey         string `env:"GOOGLE_API_KEY" env-required:"true"`
	GeminiModel          string `env:"GEMINI_MODEL" env-default:"gemini-1.5-flash-latest"`
	DatabaseURL          string `env:"DATABASE_URL" env-default:"telegram_bot.db"`
	SummaryIntervalHours int    `env:"SUMMARY_INTERVAL_HOURS" env-default:"0"`
}

// SummaryInterval returns how often balance summaries are broadcast.
// Zero disables the broadcast.
func (c Config) SummaryInterval() time.Duration {
	if c.SummaryIntervalHours <= 0 {
		return 0
	}
	return time.Duration(c.SummaryIntervalHours) * time.Hour
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (Config, error) {
	// A missing .env is fine; real deployments set variables directly.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}
