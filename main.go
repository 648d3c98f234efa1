package main

import (
	"os"
	"time"

	"alphaflow-backend/config"
	"alphaflow-backend/models"
	"alphaflow-backend/routes"
	"alphaflow-backend/services"
	"alphaflow-backend/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	mode := models.AppMode(cfg.AppMode)
	if mode != models.ModeBarber && mode != models.ModeClinic {
		log.Fatal().Str("mode", cfg.AppMode).Msg("APP_MODE must be BARBER or CLINIC")
	}

	st := store.New(mode)
	assistant := services.NewAssistantClient(cfg.AssistantURL, cfg.AssistantKey, cfg.AssistantLimit)

	r := routes.SetupRouter(st, assistant)

	log.Info().Str("port", cfg.Port).Str("mode", cfg.AppMode).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
