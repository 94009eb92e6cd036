package config

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tristan-derez/distance-leaderboards/internal/distance"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.DiscordToken != "token" {
		t.Errorf("Expected token 'token', got '%s'", cfg.DiscordToken)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level 'info', got '%s'", cfg.LogLevel)
	}
	if cfg.CommandRate != 1 || cfg.CommandBurst != 3 {
		t.Errorf("Expected rate 1 burst 3, got %v %d", cfg.CommandRate, cfg.CommandBurst)
	}
	if cfg.DefaultMode != distance.Sprint {
		t.Errorf("Expected default mode Sprint, got %v", cfg.DefaultMode)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_GUILD_ID", "1234")
	t.Setenv("COMMAND_RATE", "0.5")
	t.Setenv("COMMAND_BURST", "10")
	t.Setenv("DEFAULT_MODE", "stunt")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.DiscordGuildID != "1234" {
		t.Errorf("Expected guild '1234', got '%s'", cfg.DiscordGuildID)
	}
	if cfg.CommandRate != 0.5 || cfg.CommandBurst != 10 {
		t.Errorf("Expected rate 0.5 burst 10, got %v %d", cfg.CommandRate, cfg.CommandBurst)
	}
	if cfg.DefaultMode != distance.Stunt {
		t.Errorf("Expected Stunt, got %v", cfg.DefaultMode)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	if _, err := Load(zerolog.Nop()); err == nil {
		t.Error("Expected error when DISCORD_TOKEN is missing")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]struct {
		key, value, want string
	}{
		"zero rate":    {"COMMAND_RATE", "0", "COMMAND_RATE"},
		"zero burst":   {"COMMAND_BURST", "0", "COMMAND_BURST"},
		"unknown mode": {"DEFAULT_MODE", "tag", "unknown game mode"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("DISCORD_TOKEN", "token")
			t.Setenv(tt.key, tt.value)

			_, err := Load(zerolog.Nop())
			if err == nil {
				t.Fatalf("Expected error for %s=%s", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error to mention %s, got %v", tt.want, err)
			}
		})
	}
}
