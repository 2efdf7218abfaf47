package path

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/tile-sonar/constant"
	"github.com/lixenwraith/tile-sonar/geom"
)

// DescribeWaypoints renders a waypoint polyline as "<direction> <count>"
// runs, merging consecutive segments whose heading stays within the
// angular tolerance
func DescribeWaypoints(waypoints []geom.Point) string {
	if len(waypoints) < 2 {
		return "here"
	}

	var parts []string
	runStart := 0
	runAngle := segmentAngle(waypoints[0], waypoints[1])

	flush := func(end int) {
		delta := waypoints[end].Sub(waypoints[runStart])
		dir := geom.DirectionOf(delta)
		parts = append(parts, fmt.Sprintf("%s %d", dir, end-runStart))
	}

	for i := 1; i < len(waypoints)-1; i++ {
		angle := segmentAngle(waypoints[i], waypoints[i+1])
		if angleDiff(angle, runAngle) > constant.PathMergeTolerance {
			flush(i)
			runStart = i
			runAngle = angle
		}
	}
	flush(len(waypoints) - 1)

	return strings.Join(parts, ", ")
}

func segmentAngle(a, b geom.Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// angleDiff returns the absolute angular distance, wrapped to [0, pi]
func angleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}
