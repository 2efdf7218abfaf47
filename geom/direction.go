package geom

import "math"

// Direction is an octant bearing, DirNone when undefined
type Direction int

const (
	DirNone Direction = iota
	DirNorth
	DirNorthEast
	DirEast
	DirSouthEast
	DirSouth
	DirSouthWest
	DirWest
	DirNorthWest
)

var directionNames = map[Direction]string{
	DirNone:      "here",
	DirNorth:     "north",
	DirNorthEast: "north-east",
	DirEast:      "east",
	DirSouthEast: "south-east",
	DirSouth:     "south",
	DirSouthWest: "south-west",
	DirWest:      "west",
	DirNorthWest: "north-west",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// Cardinals lists the four scan directions in fixed order
var Cardinals = [4]Direction{DirNorth, DirEast, DirSouth, DirWest}

// Unit returns the direction's unit vector in world axes (Y up)
// Diagonals are normalized; DirNone is the zero vector
func (d Direction) Unit() Point {
	const diag = math.Sqrt2 / 2
	switch d {
	case DirNorth:
		return Point{0, 1}
	case DirNorthEast:
		return Point{diag, diag}
	case DirEast:
		return Point{1, 0}
	case DirSouthEast:
		return Point{diag, -diag}
	case DirSouth:
		return Point{0, -1}
	case DirSouthWest:
		return Point{-diag, -diag}
	case DirWest:
		return Point{-1, 0}
	case DirNorthWest:
		return Point{-diag, diag}
	}
	return Point{}
}

// Bearing classifies the vector from 'from' to 'to' into an octant
// Returns DirNone when the points coincide
func Bearing(from, to Point) Direction {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 && dy == 0 {
		return DirNone
	}

	// Octant centers every 45 degrees, east = 0, counter-clockwise
	angle := math.Atan2(dy, dx)
	octant := int(math.Round(angle/(math.Pi/4))) & 7

	switch octant {
	case 0:
		return DirEast
	case 1:
		return DirNorthEast
	case 2:
		return DirNorth
	case 3:
		return DirNorthWest
	case 4:
		return DirWest
	case 5:
		return DirSouthWest
	case 6:
		return DirSouth
	default:
		return DirSouthEast
	}
}

// DirectionOf classifies a raw delta vector into an octant
func DirectionOf(delta Point) Direction {
	return Bearing(Point{}, delta)
}
