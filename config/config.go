package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all runtime configuration. Every field maps to one env var;
// a .env file is honored for local development.
type Config struct {
	Port           string
	AppMode        string // BARBER | CLINIC
	JWTSecret      string
	AssistantURL   string
	AssistantKey   string
	AssistantLimit time.Duration
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found")
	}

	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		AppMode:        getEnv("APP_MODE", "BARBER"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AssistantURL:   os.Getenv("ASSISTANT_URL"),
		AssistantKey:   os.Getenv("ASSISTANT_API_KEY"),
		AssistantLimit: 15 * time.Second,
	}
	if env := os.Getenv("ASSISTANT_TIMEOUT_SECONDS"); env != "" {
		if secs, err := strconv.Atoi(env); err == nil && secs > 0 {
			cfg.AssistantLimit = time.Duration(secs) * time.Second
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
