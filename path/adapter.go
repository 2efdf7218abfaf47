// Package path wraps the host's native route search: it projects world
// coordinates into the host tile space, retries the search at shallower
// collision layers and neighbor tiles, and renders the resulting waypoint
// list as spoken direction runs.
package path

import (
	"github.com/lixenwraith/tile-sonar/constant"
	"github.com/lixenwraith/tile-sonar/geom"
	"github.com/lixenwraith/tile-sonar/host"
)

// Result describes one route request
type Result struct {
	Success     bool
	StepCount   int
	Description string
	Waypoints   []geom.Point
}

// Adapter translates between world coordinates and the host pathfinder
type Adapter struct {
	pf   host.Pathfinder
	mapW int
	mapH int
}

// NewAdapter creates an adapter for the current map dimensions
func NewAdapter(pf host.Pathfinder, mapW, mapH int) *Adapter {
	return &Adapter{pf: pf, mapW: mapW, mapH: mapH}
}

// FindPath searches a walking route between two world positions
// The search ladder runs from the strictest collision layer down to the
// loosest, then falls back to the eight tiles around the destination
func (a *Adapter) FindPath(from, to geom.Point) Result {
	start := geom.WorldToTile(from, a.mapW, a.mapH)
	goal := geom.WorldToTile(to, a.mapW, a.mapH)

	for depth := constant.PathMaxDepth; depth >= 1; depth-- {
		if wp, ok := a.pf.Search(start, goal, depth); ok {
			return a.describe(wp)
		}
	}

	// The destination itself may be unwalkable (chests, NPCs block their
	// own tile); a route to any adjacent tile still gets the player there
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			alt := geom.Tile{X: goal.X + dx, Y: goal.Y + dy}
			if wp, ok := a.pf.Search(start, alt, constant.PathMaxDepth); ok {
				return a.describe(wp)
			}
		}
	}

	return Result{}
}

func (a *Adapter) describe(waypoints []geom.Point) Result {
	return Result{
		Success:     true,
		StepCount:   max(len(waypoints)-1, 0),
		Description: DescribeWaypoints(waypoints),
		Waypoints:   waypoints,
	}
}
