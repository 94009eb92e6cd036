package distance

import "slices"

// Founding Modders backed Distance on Kickstarter at the $500 tier or higher.
// The ids come from game code and do not cover every such backer.
var foundingModderSteamIDs = [...]uint64{
	76561198013400757,
	76561198052975697,
	76561197972499098,
	76561197961147900,
	76561197999799296,
	76561198013194041,
	76561197961981434,
}

// Steam ids of the Distance developers, taken from game code.
var developerSteamIDs = [...]uint64{
	76561197994102448,
	76561198025607548,
	76561198112217007,
	76561198027821962,
	76561197993308241,
	76561197961146769,
	76561197961147900,
	76561198002526059,
	76561198043442345,
	76561197965077372,
}

// FoundingModderSteamIDs returns a copy of the known Founding Modder Steam ids.
func FoundingModderSteamIDs() []uint64 {
	return slices.Clone(foundingModderSteamIDs[:])
}

// DeveloperSteamIDs returns a copy of the known developer Steam ids.
func DeveloperSteamIDs() []uint64 {
	return slices.Clone(developerSteamIDs[:])
}

func IsFoundingModder(steamID uint64) bool {
	return slices.Contains(foundingModderSteamIDs[:], steamID)
}

func IsDeveloper(steamID uint64) bool {
	return slices.Contains(developerSteamIDs[:], steamID)
}
