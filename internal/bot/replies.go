package bot

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tristan-derez/distance-leaderboards/internal/distance"
	"github.com/tristan-derez/distance-leaderboards/internal/utils"
)

// Discord rejects message content longer than this.
const maxMessageLength = 2000

var (
	errScoreOutOfRange = errors.New("score out of range")
	errInvalidSteamID  = errors.New("invalid Steam id")
)

// scoreReply formats a raw Steam score given as a Discord integer option.
func scoreReply(raw int64, mode distance.GameMode) (string, error) {
	if raw < math.MinInt32 || raw > math.MaxInt32 {
		return "", fmt.Errorf("%w: %d", errScoreOutOfRange, raw)
	}

	formatted, err := distance.FormatScore(int32(raw), mode)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s score `%d` is **%s**", mode, raw, formatted), nil
}

// leaderboardReply builds the leaderboard key of an official level, or of a
// workshop level when author holds a Steam id.
func leaderboardReply(level string, mode distance.GameMode, author string) (string, error) {
	author = strings.TrimSpace(author)
	if author == "" {
		key, err := distance.OfficialLeaderboardKey(level, mode)
		if err != nil {
			return "", err
		}

		content := fmt.Sprintf("Leaderboard key: `%s`", key)
		if !distance.IsOfficialLevel(level, mode) {
			content += fmt.Sprintf("\n%q is not an official %s level. Workshop levels need an author.", level, mode)
		}
		return content, nil
	}

	steamID, err := strconv.ParseUint(author, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", errInvalidSteamID, author)
	}

	key, err := distance.WorkshopLeaderboardKey(level, mode, steamID)
	if err != nil {
		return "", err
	}

	content := fmt.Sprintf("Leaderboard key: `%s`", key)
	if role := authorRole(steamID); role != "" {
		content += fmt.Sprintf("\nAuthor is a %s.", role)
	}
	return content, nil
}

func authorRole(steamID uint64) string {
	switch {
	case distance.IsDeveloper(steamID) && distance.IsFoundingModder(steamID):
		return "Distance developer and Founding Modder"
	case distance.IsDeveloper(steamID):
		return "Distance developer"
	case distance.IsFoundingModder(steamID):
		return "Founding Modder"
	default:
		return ""
	}
}

// levelsReply lists every official level of a mode with its leaderboard key,
// split into messages Discord will accept.
func levelsReply(mode distance.GameMode) []string {
	names := distance.OfficialLevelNames(mode)
	lines := make([]string, 0, len(names))

	i := 0
	for key := range distance.OfficialLeaderboardKeys(mode) {
		lines = append(lines, fmt.Sprintf("%d. %s `%s`", i+1, names[i], key))
		i++
	}

	return utils.ChunkLines(lines, maxMessageLength)
}

// userMessage turns an error from a command into text shown to the user.
func userMessage(err error) string {
	var negErr *distance.NegativeScoreError
	var tooLong *distance.KeyTooLongError

	switch {
	case errors.As(err, &negErr):
		return fmt.Sprintf("Scores can't be negative (got %d).", negErr.Score)
	case errors.As(err, &tooLong):
		return fmt.Sprintf("That leaderboard key would be %d bytes long, Steam allows at most %d.",
			tooLong.Len(), distance.MaxLeaderboardKeyLength)
	case errors.Is(err, errScoreOutOfRange):
		return fmt.Sprintf("Scores must fit in a 32-bit integer (%d to %d).", math.MinInt32, math.MaxInt32)
	case errors.Is(err, errInvalidSteamID):
		return "The author must be a numeric Steam id, e.g. 76561197960287930."
	case errors.Is(err, distance.ErrUnknownGameMode):
		return "Unknown game mode. Use Sprint, Stunt or Challenge."
	default:
		return "Something went wrong. Please try again later."
	}
}
