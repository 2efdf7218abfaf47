package sonar

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tile-sonar/constant"
	"github.com/lixenwraith/tile-sonar/entity"
	"github.com/lixenwraith/tile-sonar/geom"
	"github.com/lixenwraith/tile-sonar/host"
	"github.com/lixenwraith/tile-sonar/navigation"
)

// cardinal indices into a ScanResult, matching geom.Cardinals
const (
	north = iota
	east
	south
	west
)

type scanFixture struct {
	world    *host.SimWorld
	cache    *navigation.Cache
	observer geom.Point
}

func newScanFixture() *scanFixture {
	f := &scanFixture{world: host.NewSimWorld(40, 30)}
	f.observer = geom.TileToWorld(geom.Tile{X: 20, Y: 15}, 40, 30)
	obs := func() (geom.Point, bool) { return f.observer, true }
	f.cache = navigation.NewCache(f.world, entity.NewFactory(nil, nil), obs, zerolog.Nop())
	return f
}

// placeSolid puts a collidable object of the given kind at a tile
func (f *scanFixture) placeSolid(kind host.Kind, tile geom.Tile) *host.SimObject {
	obj := f.world.Place(kind, "", tile)
	obj.SetCollider(constant.TileSize/2, constant.TileSize/2)
	return obj
}

func TestScanReportsNearestBlockingHit(t *testing.T) {
	f := newScanFixture()
	f.placeSolid(host.KindBarrier, geom.Tile{X: 23, Y: 15}) // 3 tiles east
	f.placeSolid(host.KindBarrier, geom.Tile{X: 26, Y: 15}) // behind it
	f.cache.ForceScan()

	res := Scan(f.world, f.cache, f.observer)
	require.True(t, res[east].Blocked)
	// Collider face sits half a tile before the far center
	assert.InDelta(t, 2.5*constant.TileSize, res[east].Distance, constant.TileSize/4)

	assert.False(t, res[north].Blocked)
	assert.False(t, res[south].Blocked)
	assert.False(t, res[west].Blocked)
}

func TestScanPassesThroughNonBlockingEntities(t *testing.T) {
	f := newScanFixture()
	f.placeSolid(host.KindMapExit, geom.Tile{X: 22, Y: 15}) // exits never block
	wall := f.placeSolid(host.KindBarrier, geom.Tile{X: 25, Y: 15})
	f.cache.ForceScan()

	res := Scan(f.world, f.cache, f.observer)
	require.True(t, res[east].Blocked)
	assert.InDelta(t, 4.5*constant.TileSize, res[east].Distance, constant.TileSize/4,
		"the ray must report the wall behind the exit, not the exit")
	_ = wall
}

func TestScanTreatsUnknownSurfacesAsBlocking(t *testing.T) {
	f := newScanFixture()
	// Decorations are denied from the cache, so the ray has no entity to
	// consult and must fail toward "wall"
	f.placeSolid(host.KindDecoration, geom.Tile{X: 20, Y: 18})
	f.cache.ForceScan()

	res := Scan(f.world, f.cache, f.observer)
	assert.True(t, res[south].Blocked)
}

func TestScanRangeLimit(t *testing.T) {
	f := newScanFixture()
	f.placeSolid(host.KindBarrier, geom.Tile{X: 35, Y: 15}) // 15 tiles, past sonar reach
	f.cache.ForceScan()

	res := Scan(f.world, f.cache, f.observer)
	assert.False(t, res[east].Blocked)
}

func TestGainFalloff(t *testing.T) {
	assert.Equal(t, 1.0, gainFor(0, constant.SonarRange))
	assert.Equal(t, 0.0, gainFor(constant.SonarRange, constant.SonarRange))
	assert.Equal(t, 0.0, gainFor(2*constant.SonarRange, constant.SonarRange))

	// Quadratic: halfway is a quarter of full gain, and gain never rises
	// with distance
	assert.InDelta(t, 0.25, gainFor(constant.SonarRange/2, constant.SonarRange), 1e-9)
	prev := 1.1
	for d := 0.0; d <= constant.SonarRange; d += constant.TileSize {
		g := gainFor(d, constant.SonarRange)
		assert.LessOrEqual(t, g, prev)
		prev = g
	}
}

func TestPanClampsToFullStereo(t *testing.T) {
	assert.Equal(t, 0.0, panFor(0, 100))
	assert.InDelta(t, 0.5, panFor(50, 100), 1e-9)
	assert.Equal(t, 1.0, panFor(500, 100))
	assert.Equal(t, -1.0, panFor(-500, 100))
	assert.Equal(t, 0.0, panFor(10, 0))
}
