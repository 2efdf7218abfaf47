package entity

// SoundKind selects how the sonar treats an entity
type SoundKind int

const (
	// SoundSilent entities make no sound
	SoundSilent SoundKind = iota

	// SoundTerrain entities are audible only through the wall tones
	SoundTerrain

	// SoundContinuous entities own a looping positional source
	SoundContinuous
)

// SoundProfile describes an entity's audio behavior
type SoundProfile struct {
	Kind SoundKind

	// Clip is the loop asset filename, meaningful for SoundContinuous
	Clip string

	// Range is the audible radius in tiles
	Range float64
}

// Silent is the shared no-audio profile
var Silent = SoundProfile{Kind: SoundSilent}

// Terrain is the shared wall-tone-only profile
var Terrain = SoundProfile{Kind: SoundTerrain}

// Loop builds a continuous profile for a clip at the given tile range
func Loop(clip string, tiles float64) SoundProfile {
	return SoundProfile{Kind: SoundContinuous, Clip: clip, Range: tiles}
}
