package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	DatabaseURL string `env:"DATABASE_URL"` // empty keeps everything in memory

	MaxRounds        int           `env:"MAX_ROUNDS" envDefault:"5"`
	CountdownSeconds int           `env:"COUNTDOWN_SECONDS" envDefault:"5"`
	StreakThreshold  int           `env:"STREAK_THRESHOLD" envDefault:"50"`
	QuickGuessWindow time.Duration `env:"QUICK_GUESS_WINDOW" envDefault:"10s"`
	QuickGuessBonus  int           `env:"QUICK_GUESS_BONUS" envDefault:"10"`
	LocationCacheTTL time.Duration `env:"LOCATION_CACHE_TTL" envDefault:"5m"`

	ClientMessageRate  float64 `env:"CLIENT_MESSAGE_RATE" envDefault:"20"`
	ClientMessageBurst int     `env:"CLIENT_MESSAGE_BURST" envDefault:"40"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	// A missing .env file is fine
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.MaxRounds <= 0 {
		return nil, fmt.Errorf("MAX_ROUNDS must be positive, got %d", cfg.MaxRounds)
	}
	if cfg.CountdownSeconds < 0 {
		return nil, fmt.Errorf("COUNTDOWN_SECONDS must not be negative, got %d", cfg.CountdownSeconds)
	}
	return &cfg, nil
}
