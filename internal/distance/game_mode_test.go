package distance

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestGameMode_IDs(t *testing.T) {
	tests := []struct {
		mode GameMode
		id   uint8
		name string
	}{
		{Sprint, 1, "Sprint"},
		{Stunt, 2, "Stunt"},
		{Challenge, 8, "Challenge"},
	}

	for _, tt := range tests {
		if tt.mode.ID() != tt.id {
			t.Errorf("Expected %s id %d, got %d", tt.name, tt.id, tt.mode.ID())
		}
		if tt.mode.Name() != tt.name {
			t.Errorf("Expected name %q, got %q", tt.name, tt.mode.Name())
		}
		if tt.mode.String() != tt.name {
			t.Errorf("Expected String() %q, got %q", tt.name, tt.mode.String())
		}
	}
}

func TestGameMode_Invalid(t *testing.T) {
	var zero GameMode
	if zero.Valid() {
		t.Error("Expected zero GameMode to be invalid")
	}
	if zero.String() != "GameMode(0)" {
		t.Errorf("Expected 'GameMode(0)', got %q", zero.String())
	}
	if _, err := zero.MarshalText(); !errors.Is(err, ErrUnknownGameMode) {
		t.Errorf("Expected ErrUnknownGameMode, got %v", err)
	}
}

func TestParseGameMode(t *testing.T) {
	for _, in := range []string{"stunt", "STUNT", " Stunt "} {
		m, err := ParseGameMode(in)
		if err != nil || m != Stunt {
			t.Errorf("Expected Stunt for %q, got %v (%v)", in, m, err)
		}
	}

	if _, err := ParseGameMode("reverse tag"); !errors.Is(err, ErrUnknownGameMode) {
		t.Errorf("Expected ErrUnknownGameMode, got %v", err)
	}
}

func TestGameModeFromID(t *testing.T) {
	for _, mode := range GameModes() {
		got, err := GameModeFromID(mode.ID())
		if err != nil || got != mode {
			t.Errorf("Expected %s for id %d, got %v (%v)", mode, mode.ID(), got, err)
		}
	}

	if _, err := GameModeFromID(3); !errors.Is(err, ErrUnknownGameMode) {
		t.Errorf("Expected ErrUnknownGameMode for id 3, got %v", err)
	}
}

func TestGameMode_JSON(t *testing.T) {
	type payload struct {
		Mode GameMode `json:"mode"`
	}

	data, err := json.Marshal(payload{Mode: Challenge})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(data) != `{"mode":"Challenge"}` {
		t.Errorf("Expected mode encoded by name, got %s", data)
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"mode":"sprint"}`), &p); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Mode != Sprint {
		t.Errorf("Expected Sprint, got %v", p.Mode)
	}

	if err := json.Unmarshal([]byte(`{"mode":"tag"}`), &p); err == nil {
		t.Error("Expected error for unknown mode name")
	}
}

func TestGameModes_Order(t *testing.T) {
	modes := GameModes()
	if len(modes) != 3 || modes[0] != Sprint || modes[1] != Stunt || modes[2] != Challenge {
		t.Errorf("Expected [Sprint Stunt Challenge], got %v", modes)
	}

	modes[0] = Challenge
	if GameModes()[0] != Sprint {
		t.Error("Expected GameModes to return a copy")
	}
}
