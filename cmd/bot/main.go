package main

import (
	"os"

	"github.com/tristan-derez/distance-leaderboards/internal/bot"
	"github.com/tristan-derez/distance-leaderboards/internal/config"
	"github.com/tristan-derez/distance-leaderboards/internal/logger"
)

func main() {
	log := logger.New(os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load(log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log = logger.New(cfg.LogLevel)

	b, err := bot.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}

	if err := b.Run(); err != nil {
		log.Fatal().Err(err).Msg("bot stopped")
	}
}
