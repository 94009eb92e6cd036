package bot

import (
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/tristan-derez/distance-leaderboards/internal/distance"
)

func TestCommandDefinitions(t *testing.T) {
	commands := commandDefinitions(distance.Stunt)

	names := map[string]bool{}
	for _, c := range commands {
		if names[c.Name] {
			t.Errorf("Duplicate command %q", c.Name)
		}
		names[c.Name] = true
	}
	for _, want := range []string{"score", "leaderboard", "levels", "ping"} {
		if !names[want] {
			t.Errorf("Expected command %q", want)
		}
	}

	mode := commands[0].Options[1]
	if mode.Name != "mode" || mode.Description != "Game mode (defaults to Stunt)" {
		t.Errorf("Unexpected mode option: %+v", mode)
	}
	if len(mode.Choices) != len(distance.GameModes()) {
		t.Fatalf("Expected %d mode choices, got %d", len(distance.GameModes()), len(mode.Choices))
	}
	for _, choice := range mode.Choices {
		if _, err := distance.ParseGameMode(choice.Value.(string)); err != nil {
			t.Errorf("Choice %q does not parse: %v", choice.Name, err)
		}
	}
}

func TestOptionMap(t *testing.T) {
	opts := []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "level", Type: discordgo.ApplicationCommandOptionString, Value: "Dodge"},
		{Name: "mode", Type: discordgo.ApplicationCommandOptionString, Value: "Challenge"},
	}

	m := optionMap(opts)
	if m["level"].StringValue() != "Dodge" || m["mode"].StringValue() != "Challenge" {
		t.Errorf("Unexpected option map: %v", m)
	}
	if _, ok := m["author"]; ok {
		t.Error("Expected missing option to be absent")
	}
}

func TestInteractionUserID(t *testing.T) {
	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{User: &discordgo.User{ID: "member"}},
	}}
	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: &discordgo.User{ID: "dm"},
	}}

	if got := interactionUserID(guild); got != "member" {
		t.Errorf("Expected 'member', got '%s'", got)
	}
	if got := interactionUserID(dm); got != "dm" {
		t.Errorf("Expected 'dm', got '%s'", got)
	}
	if got := interactionUserID(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}); got != "" {
		t.Errorf("Expected empty id, got '%s'", got)
	}
}

func TestIsRetryable(t *testing.T) {
	restErr := func(code int) error {
		return &discordgo.RESTError{Response: &http.Response{StatusCode: code}}
	}

	tests := []struct {
		err  error
		want bool
	}{
		{restErr(http.StatusBadRequest), false},
		{restErr(http.StatusForbidden), false},
		{restErr(http.StatusTooManyRequests), true},
		{restErr(http.StatusBadGateway), true},
		{errors.New("connection reset"), true},
	}

	for _, tt := range tests {
		if got := isRetryable(tt.err); got != tt.want {
			t.Errorf("Expected isRetryable(%v) = %v, got %v", tt.err, tt.want, got)
		}
	}
}
