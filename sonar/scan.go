// Package sonar renders the spatial audio field: a cardinal terrain scan
// driving four wall tones, and a pool of looping per-entity sources with
// distance gain and stereo pan, mixed through the system speaker.
package sonar

import (
	"github.com/lixenwraith/tile-sonar/constant"
	"github.com/lixenwraith/tile-sonar/geom"
	"github.com/lixenwraith/tile-sonar/host"
	"github.com/lixenwraith/tile-sonar/navigation"
)

// DirHit is the nearest blocking surface along one cardinal direction
type DirHit struct {
	Blocked  bool
	Distance float64
}

// ScanResult holds one hit per direction, indexed like geom.Cardinals
type ScanResult [4]DirHit

// Scan casts a ray in each cardinal direction and keeps the nearest
// blocking hit
// Surfaces with no matching cache entity count as blocking: an unknown
// obstacle is safer treated as a wall than as open ground
func Scan(world host.World, cache *navigation.Cache, observer geom.Point) ScanResult {
	var res ScanResult
	for i, dir := range geom.Cardinals {
		res[i] = scanDirection(world, cache, observer, dir)
	}
	return res
}

// scanDirection degrades to "no signal" when a host read fails mid-cast
func scanDirection(world host.World, cache *navigation.Cache, observer geom.Point, dir geom.Direction) (hit DirHit) {
	defer func() {
		if recover() != nil {
			hit = DirHit{}
		}
	}()

	for _, h := range world.RayCast(observer, dir, constant.SonarRange) {
		blocking := true
		if ent := cache.FindByHostObject(h.Object); ent != nil {
			blocking = ent.Blocking()
		}
		if blocking {
			return DirHit{Blocked: true, Distance: h.Distance}
		}
	}
	return DirHit{}
}
