// Package distance formats Steam leaderboard scores and builds leaderboard keys
// for the game Distance.
package distance

import (
	"errors"
	"fmt"
	"strings"
)

// GameMode identifies one of the Distance game modes that have leaderboards.
//
// The in-memory value is not the id used by the game; use ID for that.
type GameMode int

const (
	Sprint GameMode = iota + 1
	Stunt
	Challenge
)

// ErrUnknownGameMode is returned when a value does not name a leaderboard game mode.
var ErrUnknownGameMode = errors.New("unknown game mode")

var gameModes = [...]GameMode{Sprint, Stunt, Challenge}

// GameModes returns every leaderboard game mode in declaration order.
func GameModes() []GameMode {
	modes := gameModes
	return modes[:]
}

// ID returns the game mode id as it appears in the Distance game code and in
// leaderboard keys. These values must never change.
func (m GameMode) ID() uint8 {
	switch m {
	case Sprint:
		return 1
	case Stunt:
		return 2
	case Challenge:
		return 8
	default:
		return 0
	}
}

// Name returns the English name of the game mode.
func (m GameMode) Name() string {
	switch m {
	case Sprint:
		return "Sprint"
	case Stunt:
		return "Stunt"
	case Challenge:
		return "Challenge"
	default:
		return ""
	}
}

func (m GameMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("GameMode(%d)", int(m))
	}
	return m.Name()
}

// Valid reports whether m is one of Sprint, Stunt or Challenge.
func (m GameMode) Valid() bool {
	return m.ID() != 0
}

// IsTimed reports whether scores of this mode are times in milliseconds.
func (m GameMode) IsTimed() bool {
	return m == Sprint || m == Challenge
}

func (m GameMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGameMode, int(m))
	}
	return []byte(m.Name()), nil
}

func (m *GameMode) UnmarshalText(text []byte) error {
	mode, err := ParseGameMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParseGameMode returns the game mode whose name matches s, ignoring case and
// surrounding whitespace.
func ParseGameMode(s string) (GameMode, error) {
	name := strings.TrimSpace(s)
	for _, m := range gameModes {
		if strings.EqualFold(m.Name(), name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGameMode, s)
}

// GameModeFromID returns the game mode with the given game code id.
func GameModeFromID(id uint8) (GameMode, error) {
	for _, m := range gameModes {
		if m.ID() == id {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: id %d", ErrUnknownGameMode, id)
}

// OfficialLevelNames is equivalent to calling OfficialLevelNames with m.
func (m GameMode) OfficialLevelNames() []string {
	return OfficialLevelNames(m)
}
