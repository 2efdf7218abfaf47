package geom

import (
	"fmt"
	"math"

	"github.com/lixenwraith/tile-sonar/constant"
)

// FormatDistance renders a world-unit distance as whole tiles
func FormatDistance(worldDist float64) string {
	tiles := int(math.Round(worldDist / constant.TileSize))
	if tiles == 1 {
		return "1 tile"
	}
	return fmt.Sprintf("%d tiles", tiles)
}

// FormatRelative renders "<distance> <direction>" from observer to target
func FormatRelative(observer, target Point) string {
	dir := Bearing(observer, target)
	if dir == DirNone {
		return "here"
	}
	return fmt.Sprintf("%s %s", FormatDistance(Dist(observer, target)), dir)
}
