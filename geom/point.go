package geom

import (
	"math"

	"github.com/lixenwraith/tile-sonar/constant"
)

// Point is a position in world units
type Point struct {
	X, Y float64
}

// Tile is a map grid cell coordinate
type Tile struct {
	X, Y int
}

// WorldToTile projects a world position onto the map grid
// The grid origin sits at the map center and the world Y axis points up
// while tile rows grow downward, hence the inversion
func WorldToTile(p Point, mapW, mapH int) Tile {
	return Tile{
		X: int(math.Floor(float64(mapW)/2 + p.X/constant.TileSize)),
		Y: int(math.Floor(float64(mapH)/2 - p.Y/constant.TileSize)),
	}
}

// TileToWorld returns the world position of a tile's center
func TileToWorld(t Tile, mapW, mapH int) Point {
	return Point{
		X: (float64(t.X) - float64(mapW)/2 + 0.5) * constant.TileSize,
		Y: (float64(mapH)/2 - float64(t.Y) - 0.5) * constant.TileSize,
	}
}

// Dist returns Euclidean distance in world units
func Dist(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// TileDist returns distance scaled to tiles
func TileDist(a, b Point) float64 {
	return Dist(a, b) / constant.TileSize
}

// Add returns a + b componentwise
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q componentwise
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both components by f
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}
