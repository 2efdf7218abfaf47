package host

import "github.com/lixenwraith/tile-sonar/geom"

// Hit is one surface intersected by a ray cast, nearest first
type Hit struct {
	Object   Object
	Distance float64
}

// World is the host game's spatial query surface
type World interface {
	// Objects enumerates all live interactive world objects
	Objects() []Object

	// MapSize returns current map dimensions in tiles
	MapSize() (w, h int)

	// OverlapPoint returns objects whose physical shape contains p
	// Shape-based, so multi-tile objects answer for all their tiles
	OverlapPoint(p geom.Point) []Object

	// RayCast returns surfaces intersected from 'from' along dir out to
	// maxRange world units, ordered near to far
	RayCast(from geom.Point, dir geom.Direction, maxRange float64) []Hit

	// Modal reports whether a dialog or cutscene has control, or the
	// world is otherwise not player-controllable
	Modal() bool
}

// Pathfinder is the host's native tile route search
// depth selects a collision layer: higher is stricter
type Pathfinder interface {
	Search(from, to geom.Tile, depth int) (waypoints []geom.Point, ok bool)
}

// Speaker is the screen-reader output sink
type Speaker interface {
	Speak(text string, interrupt bool)
}
