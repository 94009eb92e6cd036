package distance

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxLeaderboardKeyLength is the longest key, in bytes, Steam accepts.
	MaxLeaderboardKeyLength = 128
	KeySuffix               = "stable"
	KeySeparator            = "_"

	workshopFileExt = ".bytes"
)

// KeyTooLongError is returned when a leaderboard key would exceed
// MaxLeaderboardKeyLength bytes. It keeps the full key for diagnostics.
type KeyTooLongError struct {
	key string
}

func (e *KeyTooLongError) Error() string {
	return fmt.Sprintf("leaderboard key is %d bytes long, the limit is %d: %q",
		len(e.key), MaxLeaderboardKeyLength, e.key)
}

// Key returns the oversized key exactly as it was built.
func (e *KeyTooLongError) Key() string {
	return e.key
}

// Len returns the byte length of the oversized key.
func (e *KeyTooLongError) Len() int {
	return len(e.key)
}

// BuildLeaderboardKey creates the leaderboard name string used by the
// Steamworks API to look up a level's leaderboard.
//
// For official levels, level is the level's name and author must be nil. For
// workshop levels, level is the file name without the .bytes extension (which
// can differ from the level title) and author is the Steam id of its creator.
//
// Keys longer than MaxLeaderboardKeyLength bytes do not exist on Steam. They
// are reported with a *KeyTooLongError and never truncated, since a shortened
// key would address a different leaderboard.
func BuildLeaderboardKey(level string, mode GameMode, author *uint64) (string, error) {
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownGameMode, int(mode))
	}

	var sb strings.Builder
	sb.WriteString(level)
	sb.WriteString(KeySeparator)
	sb.WriteString(strconv.FormatUint(uint64(mode.ID()), 10))
	if author != nil {
		sb.WriteString(KeySeparator)
		sb.WriteString(strconv.FormatUint(*author, 10))
	}
	sb.WriteString(KeySeparator)
	sb.WriteString(KeySuffix)

	key := sb.String()
	if len(key) > MaxLeaderboardKeyLength {
		return "", &KeyTooLongError{key: key}
	}
	return key, nil
}

// OfficialLeaderboardKey builds the key of an official level.
func OfficialLeaderboardKey(level string, mode GameMode) (string, error) {
	return BuildLeaderboardKey(level, mode, nil)
}

// WorkshopLeaderboardKey builds the key of a workshop level from its file
// name. A trailing .bytes extension is removed first.
func WorkshopLeaderboardKey(fileName string, mode GameMode, author uint64) (string, error) {
	return BuildLeaderboardKey(WorkshopLevelName(fileName), mode, &author)
}

// WorkshopLevelName strips the .bytes extension from a workshop level file name.
func WorkshopLevelName(fileName string) string {
	return strings.TrimSuffix(fileName, workshopFileExt)
}
