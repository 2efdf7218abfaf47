package path

import (
	"testing"

	"github.com/lixenwraith/tile-sonar/constant"
	"github.com/lixenwraith/tile-sonar/geom"
	"github.com/lixenwraith/tile-sonar/host"
)

func worldAt(t geom.Tile) geom.Point {
	return geom.TileToWorld(t, 40, 30)
}

func TestFindPathStraightRun(t *testing.T) {
	pf := host.NewSimPathfinder(40, 30)
	a := NewAdapter(pf, 40, 30)

	res := a.FindPath(worldAt(geom.Tile{X: 10, Y: 10}), worldAt(geom.Tile{X: 15, Y: 10}))
	if !res.Success {
		t.Fatal("expected a path on an open map")
	}
	if res.StepCount != 5 {
		t.Errorf("StepCount = %d, want 5", res.StepCount)
	}
	if res.Description != "east 5" {
		t.Errorf("Description = %q, want \"east 5\"", res.Description)
	}
}

func TestFindPathSouthRun(t *testing.T) {
	pf := host.NewSimPathfinder(40, 30)
	a := NewAdapter(pf, 40, 30)

	// Larger tile Y is further south
	res := a.FindPath(worldAt(geom.Tile{X: 10, Y: 10}), worldAt(geom.Tile{X: 10, Y: 14}))
	if !res.Success {
		t.Fatal("expected a path")
	}
	if res.Description != "south 4" {
		t.Errorf("Description = %q, want \"south 4\"", res.Description)
	}
}

func TestFindPathDepthLadder(t *testing.T) {
	pf := host.NewSimPathfinder(40, 30)
	// Obstacle visible only to strict searches: passable below depth 2
	for y := 0; y < 30; y++ {
		pf.Block(geom.Tile{X: 12, Y: y}, 2)
	}
	a := NewAdapter(pf, 40, 30)

	res := a.FindPath(worldAt(geom.Tile{X: 10, Y: 10}), worldAt(geom.Tile{X: 15, Y: 10}))
	if !res.Success {
		t.Fatal("shallower depth retry should have found the route")
	}
}

func TestFindPathNeighborFallback(t *testing.T) {
	pf := host.NewSimPathfinder(40, 30)
	// Destination tile itself is hard-blocked at every depth
	pf.Block(geom.Tile{X: 15, Y: 10}, 1)
	a := NewAdapter(pf, 40, 30)

	res := a.FindPath(worldAt(geom.Tile{X: 10, Y: 10}), worldAt(geom.Tile{X: 15, Y: 10}))
	if !res.Success {
		t.Fatal("neighbor fallback should have found a route beside the target")
	}
}

func TestFindPathFailure(t *testing.T) {
	pf := host.NewSimPathfinder(40, 30)
	// Seal the start completely
	for _, d := range []geom.Tile{{X: 9, Y: 10}, {X: 11, Y: 10}, {X: 10, Y: 9}, {X: 10, Y: 11}} {
		pf.Block(d, 1)
	}
	a := NewAdapter(pf, 40, 30)

	res := a.FindPath(worldAt(geom.Tile{X: 10, Y: 10}), worldAt(geom.Tile{X: 20, Y: 10}))
	if res.Success {
		t.Error("sealed start must report failure, not a route")
	}
	if res.StepCount != 0 || len(res.Waypoints) != 0 {
		t.Errorf("failed result must be empty, got %+v", res)
	}
}

func TestDescribeWaypointsMergesRuns(t *testing.T) {
	const ts = constant.TileSize
	wp := []geom.Point{
		{X: 0, Y: 0}, {X: 0, Y: ts}, {X: 0, Y: 2 * ts}, {X: 0, Y: 3 * ts}, // north 3
		{X: ts, Y: 3 * ts}, {X: 2 * ts, Y: 3 * ts}, // east 2
	}
	got := DescribeWaypoints(wp)
	if got != "north 3, east 2" {
		t.Errorf("DescribeWaypoints = %q, want \"north 3, east 2\"", got)
	}
}

func TestDescribeWaypointsSinglePoint(t *testing.T) {
	if got := DescribeWaypoints([]geom.Point{{X: 1, Y: 1}}); got != "here" {
		t.Errorf("single waypoint = %q, want \"here\"", got)
	}
}
