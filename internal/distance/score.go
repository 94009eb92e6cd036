package distance

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// StuntUnit is appended to formatted Stunt scores.
const StuntUnit = "eV"

const (
	msPerHour   = 1000 * 60 * 60
	msPerMinute = 1000 * 60
	msPerSecond = 1000
)

// NegativeScoreError is returned by FormatScore when the score is below zero.
type NegativeScoreError struct {
	Score int32
}

func (e *NegativeScoreError) Error() string {
	return fmt.Sprintf("the score %d is invalid because it's negative", e.Score)
}

// FormatScore returns a raw leaderboard score the way it looks in-game.
//
// The Steamworks API returns scores as an int32: milliseconds for Sprint and
// Challenge, points for Stunt. Times are always rendered as HH:MM:SS.CC, and
// unlike the game the hour count does not wrap back to zero after 24 hours.
// Stunt scores are grouped with commas and suffixed with " eV".
func FormatScore(score int32, mode GameMode) (string, error) {
	if score < 0 {
		return "", &NegativeScoreError{Score: score}
	}

	switch mode {
	case Sprint, Challenge:
		return formatTime(score), nil
	case Stunt:
		return formatPoints(score), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownGameMode, int(mode))
	}
}

func formatTime(ms int32) string {
	if ms < 0 {
		panic(fmt.Sprintf("distance: formatTime called with negative score %d", ms))
	}

	hours, rem := divRem(ms, msPerHour)
	minutes, rem := divRem(rem, msPerMinute)
	seconds, rem := divRem(rem, msPerSecond)
	centiseconds := rem / 10

	return fmt.Sprintf("%02d:%02d:%02d.%02d", hours, minutes, seconds, centiseconds)
}

// The separator is fixed to a comma regardless of the host locale.
func formatPoints(points int32) string {
	if points < 0 {
		panic(fmt.Sprintf("distance: formatPoints called with negative score %d", points))
	}

	p := message.NewPrinter(language.English)
	return p.Sprintf("%d %s", points, StuntUnit)
}

func divRem(x, y int32) (int32, int32) {
	return x / y, x % y
}
