package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Sonar Ranges (tiles unless noted)
const (
	// SonarRange is the terrain ray cast reach in world units
	SonarRange = 10 * TileSize

	// EntityAudioRange is the default audible radius for continuous
	// entity sources, in tiles
	EntityAudioRange = 12.0
)

// Wall Tone Pitches (Hz), one per cardinal direction
const (
	WallToneNorth = 523.25 // C5
	WallToneEast  = 659.25 // E5
	WallToneSouth = 392.00 // G4
	WallToneWest  = 440.00 // A4
)

// Wall Tone Shape
const (
	WallToneLevel = 0.22 // unity-gain scale before distance falloff
)
