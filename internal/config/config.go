package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/tristan-derez/distance-leaderboards/internal/distance"
)

type Config struct {
	DiscordToken   string            `env:"DISCORD_TOKEN,required,notEmpty"`
	DiscordGuildID string            `env:"DISCORD_GUILD_ID"`
	LogLevel       string            `env:"LOG_LEVEL" envDefault:"info"`
	CommandRate    float64           `env:"COMMAND_RATE" envDefault:"1"`
	CommandBurst   int               `env:"COMMAND_BURST" envDefault:"3"`
	DefaultMode    distance.GameMode `env:"DEFAULT_MODE" envDefault:"Sprint"`
}

// Load reads an optional .env file, then parses the environment into a Config.
func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger.Info().
		Str("guild_id", cfg.DiscordGuildID).
		Str("log_level", cfg.LogLevel).
		Float64("command_rate", cfg.CommandRate).
		Int("command_burst", cfg.CommandBurst).
		Stringer("default_mode", cfg.DefaultMode).
		Msg("configuration loaded")

	return cfg, nil
}

func (c *Config) validate() error {
	if c.CommandRate <= 0 {
		return fmt.Errorf("invalid COMMAND_RATE: %v (must be positive)", c.CommandRate)
	}

	if c.CommandBurst < 1 {
		return fmt.Errorf("invalid COMMAND_BURST: %d (must be at least 1)", c.CommandBurst)
	}

	if !c.DefaultMode.Valid() {
		return fmt.Errorf("invalid DEFAULT_MODE: %v", c.DefaultMode)
	}

	return nil
}
