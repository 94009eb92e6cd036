package utils

import "github.com/tristan-derez/distance-leaderboards/internal/distance"

// GetModeColor returns the embed colour used for a game mode.
func GetModeColor(mode distance.GameMode) int {
	var color int

	switch mode {
	case distance.Sprint:
		color = 0x00BFFF // Light Blue
	case distance.Stunt:
		color = 0xFF00FF // Magenta
	case distance.Challenge:
		color = 0xFF4500 // Red
	default:
		color = 0xCCCCCC // Light Grey
	}
	return color
}
