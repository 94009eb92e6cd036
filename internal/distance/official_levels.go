package distance

import (
	"fmt"
	"iter"
	"slices"
)

// Official level names per game mode, in the order the game lists them.
var (
	sprintLevels = [...]string{
		"Broken Symmetry",
		"Lost Society",
		"Negative Space",
		"Departure",
		"Ground Zero",
		"Amusement",
		"The Observer Effect",
		"Uncanny Valley",
		"Aftermath",
		"Friction",
		"The Thing About Machines",
		"Corruption",
		"Dissolution",
		"Falling Through",
		"Monolith",
		"Destination Unknown",
		"Rooftops",
		"The Manor",
		"Factory",
		"Stronghold",
		"Approach",
		"Chroma",
		"Cataclysm",
		"Diversion",
		"Euphoria",
		"Entanglement",
		"Automation",
		"Abyss",
		"Embers",
		"Isolation",
		"Repulsion",
		"Compression",
		"Research",
		"Contagion",
		"Overload",
		"Ascension",
		"Forgotten Utopia",
		"A Deeper Void",
		"Eye of the Storm",
		"The Sentinel Still Watches",
		"Pulse of a Violent Heart",
		"Shadow of the Beast",
		"It Was Supposed To Be Perfect",
		"Continuum",
		"Monument",
		"Brink",
		"Virtual Rift",
		"SR Motorplex",
		"Neo Seoul II",
		"Escape",
		"COAT Speedway",
		"Incline",
		"Tharsis Tholus",
		"Le Teleputo",
		"Neo Seoul",
		"Fulcrum",
		"Hard Light Transfer",
		"Observatory",
		"Digital",
		"Iris",
		"Precept",
		"Station",
		"Resonance",
		"Deterrence",
		"Terminus",
		"Projection",
		"Eclipse",
		"Vibe",
		"Luminescence",
		"Sector 0",
		"White Lightning Returns",
		"Micro",
		"Binary Construct",
		"Candles of Hekate",
		"Cosmic Glitch",
		"Epicentre",
		"Event Horizon",
		"Fallback Protocol",
		"Forsaken Shrine",
		"Impulse",
		"Industrial Fury",
		"Inferno",
		"Instability",
		"Knowledge",
		"Method",
		"Moonlight",
		"Outrun",
		"Paradise Lost",
		"Particular Journey",
		"Past",
		"Red",
		"Ruin",
		"Sea",
		"Shafty",
		"Static Fire Signal",
		"Sword",
		"The Night Before",
		"Vector Valley",
		"Volcanic Rush",
		"Whisper",
		"White",
		"Yellow",
	}

	stuntLevels = [...]string{
		"Neon Park",
		"Quantum Core",
		"Space Skate",
		"Stunt Playground",
		"Spooky Town",
		"Atrium",
		"Stuntware 2051",
		"Syncopation",
	}

	challengeLevels = [...]string{
		"Dodge",
		"Thunder Struck",
		"Grinder",
		"Descent",
		"Detached",
		"Red Heat",
		"Disassembly Line",
		"Elevation",
		"Obsidian",
		"Variant Blue",
		"Divide",
		"Electric",
		"44 Second Theory",
		"Hexahorrific",
		"Transfer",
	}
)

func officialLevels(mode GameMode) []string {
	switch mode {
	case Sprint:
		return sprintLevels[:]
	case Stunt:
		return stuntLevels[:]
	case Challenge:
		return challengeLevels[:]
	default:
		return nil
	}
}

// OfficialLevelNames returns the name of each official level of the given
// game mode. The returned slice is a copy and may be modified by the caller.
func OfficialLevelNames(mode GameMode) []string {
	return slices.Clone(officialLevels(mode))
}

// IsOfficialLevel reports whether name is an official level of the given mode.
func IsOfficialLevel(name string, mode GameMode) bool {
	return slices.Contains(officialLevels(mode), name)
}

// OfficialLeaderboardKeys yields the leaderboard key of every official level
// of the given game mode, in table order.
//
// The tables only hold names whose keys fit within MaxLeaderboardKeyLength,
// so a failure here means the table itself is corrupt and the iterator panics.
func OfficialLeaderboardKeys(mode GameMode) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range officialLevels(mode) {
			key, err := BuildLeaderboardKey(name, mode, nil)
			if err != nil {
				panic(fmt.Errorf("distance: official %s level %q: %w", mode, name, err))
			}
			if !yield(key) {
				return
			}
		}
	}
}

// OfficialLeaderboardKeys is equivalent to calling OfficialLeaderboardKeys with m.
func (m GameMode) OfficialLeaderboardKeys() iter.Seq[string] {
	return OfficialLeaderboardKeys(m)
}
