package navigation

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tile-sonar/entity"
	"github.com/lixenwraith/tile-sonar/geom"
	"github.com/lixenwraith/tile-sonar/host"
	"github.com/lixenwraith/tile-sonar/path"
)

type navFixture struct {
	*fixture
	nav    *Navigator
	speech *host.SpeechRecorder
}

func newNavFixture() *navFixture {
	f := newFixture()
	nf := &navFixture{fixture: f, speech: &host.SpeechRecorder{}}
	adapter := path.NewAdapter(f.pf, 40, 30)
	obs := func() (geom.Point, bool) { return f.observer, true }
	nf.nav = NewNavigator(f.cache, obs, nf.speech, adapter, zerolog.Nop())
	return nf
}

func TestListMatchesCacheUnderCategoryFilter(t *testing.T) {
	f := newNavFixture()
	f.world.Place(host.KindChest, "", geom.Tile{X: 22, Y: 15})
	f.world.Place(host.KindChest, "", geom.Tile{X: 25, Y: 15})
	f.world.Place(host.KindNPC, "villager", geom.Tile{X: 18, Y: 15})
	f.world.Place(host.KindBarrier, "wall", geom.Tile{X: 19, Y: 15})
	f.cache.ForceScan()

	// Wildcard: everything interactive, barriers never
	assert.Len(t, f.nav.List(), 3)

	f.nav.SetCategory(entity.CategoryChests)
	require.Len(t, f.nav.List(), 2)
	for _, e := range f.nav.List() {
		assert.Equal(t, entity.CategoryChests, e.Category())
	}
	assert.Equal(t, "chests, 2 found", f.speech.Last().Text)
}

func TestAutoSelectionLifecycle(t *testing.T) {
	f := newNavFixture()
	first := f.world.Place(host.KindChest, "", geom.Tile{X: 22, Y: 15})
	f.cache.ForceScan()

	require.NotNil(t, f.nav.Selected())
	assert.Equal(t, host.Object(first), f.nav.Selected().Host(), "first add auto-selects")

	second := f.world.Place(host.KindChest, "", geom.Tile{X: 25, Y: 15})
	f.cache.ForceScan()
	assert.Equal(t, host.Object(first), f.nav.Selected().Host(), "later adds keep the selection")

	f.world.Remove(first)
	f.cache.ForceScan()
	require.NotNil(t, f.nav.Selected())
	assert.Equal(t, host.Object(second), f.nav.Selected().Host(), "removing the selection falls back to first")

	f.world.Remove(second)
	f.cache.ForceScan()
	assert.Nil(t, f.nav.Selected())
}

func TestCycleOrdersByDistance(t *testing.T) {
	f := newNavFixture()
	near := f.world.Place(host.KindChest, "", geom.Tile{X: 22, Y: 15}) // 2 tiles
	far := f.world.Place(host.KindChest, "", geom.Tile{X: 28, Y: 15})  // 8 tiles
	mid := f.world.Place(host.KindChest, "", geom.Tile{X: 25, Y: 15})  // 5 tiles
	f.cache.ForceScan()

	// Selection starts at the first-added entity (near); cycling walks
	// the distance order near -> mid -> far -> near
	require.True(t, f.nav.CycleNext())
	assert.Equal(t, host.Object(mid), f.nav.Selected().Host())
	require.True(t, f.nav.CycleNext())
	assert.Equal(t, host.Object(far), f.nav.Selected().Host())
	require.True(t, f.nav.CycleNext())
	assert.Equal(t, host.Object(near), f.nav.Selected().Host())

	require.True(t, f.nav.CyclePrevious())
	assert.Equal(t, host.Object(far), f.nav.Selected().Host())
}

func TestCycleStableSortOnTies(t *testing.T) {
	f := newNavFixture()
	// Distances 5, 3, 3, 8: the two distance-3 entities must keep their
	// relative order through every resort
	f.world.Place(host.KindChest, "", geom.Tile{X: 25, Y: 15})         // 5 east
	tieA := f.world.Place(host.KindChest, "", geom.Tile{X: 23, Y: 15}) // 3 east
	tieB := f.world.Place(host.KindChest, "", geom.Tile{X: 20, Y: 12}) // 3 north
	f.world.Place(host.KindChest, "", geom.Tile{X: 28, Y: 15})         // 8 east
	f.cache.ForceScan()

	require.True(t, f.nav.CycleNext())
	list := f.nav.List()
	require.Len(t, list, 4)
	assert.Equal(t, host.Object(tieA), list[0].Host())
	assert.Equal(t, host.Object(tieB), list[1].Host())

	// Resorting again must not swap the tie
	require.True(t, f.nav.CycleNext())
	list = f.nav.List()
	assert.Equal(t, host.Object(tieA), list[0].Host())
	assert.Equal(t, host.Object(tieB), list[1].Host())
}

func TestCycleTermination(t *testing.T) {
	f := newNavFixture()
	for i := 0; i < 4; i++ {
		f.world.Place(host.KindChest, "", geom.Tile{X: 22 + i, Y: 15})
	}
	f.cache.ForceScan()

	start := f.nav.Selected()
	for i := 0; i < len(f.nav.List()); i++ {
		require.True(t, f.nav.CycleNext())
	}
	assert.Equal(t, start, f.nav.Selected(), "a full lap returns to the origin")
}

func TestCycleSkipsUnreachable(t *testing.T) {
	f := newNavFixture()
	f.world.Place(host.KindChest, "", geom.Tile{X: 22, Y: 15})
	walled := f.world.Place(host.KindChest, "", geom.Tile{X: 25, Y: 10})
	f.world.Place(host.KindChest, "", geom.Tile{X: 28, Y: 15})
	f.cache.ForceScan()

	// Seal the second chest behind hard walls, including its own tile
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			f.pf.Block(geom.Tile{X: 25 + dx, Y: 10 + dy}, 1)
		}
	}

	seen := make(map[uint64]bool)
	for i := 0; i < 3; i++ {
		require.True(t, f.nav.CycleNext())
		seen[f.nav.Selected().Host().ID()] = true
	}
	assert.False(t, seen[walled.ID()], "cycling must never land on an unreachable entity")

	// With the filter off the walled chest is fair game again
	f.nav.SetReachabilityEnabled(false)
	assert.Equal(t, "Path filter off", f.speech.Last().Text)
	seen = make(map[uint64]bool)
	for i := 0; i < 3; i++ {
		require.True(t, f.nav.CycleNext())
		seen[f.nav.Selected().Host().ID()] = true
	}
	assert.True(t, seen[walled.ID()])
}

func TestCycleEmptySpeaksFeedback(t *testing.T) {
	f := newNavFixture()
	assert.False(t, f.nav.CycleNext())
	assert.Equal(t, "No entities nearby", f.speech.Last().Text)
}

func TestCycleAllFilteredSpeaksFeedback(t *testing.T) {
	f := newNavFixture()
	chest := f.world.Place(host.KindChest, "", geom.Tile{X: 25, Y: 10})
	f.cache.ForceScan()

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			f.pf.Block(geom.Tile{X: 25 + dx, Y: 10 + dy}, 1)
		}
	}
	_ = chest

	assert.False(t, f.nav.CycleNext())
	assert.Equal(t, "No pathable entities found", f.speech.Last().Text)
}

type panicFilter struct{}

func (panicFilter) Name() string                 { return "broken" }
func (panicFilter) Timing() Timing               { return TimingOnCycle }
func (panicFilter) Enabled() bool                { return true }
func (panicFilter) Passes(entity.Navigable) bool { panic("boom") }

func TestBrokenFilterDoesNotStallPipeline(t *testing.T) {
	f := newNavFixture()
	f.world.Place(host.KindChest, "", geom.Tile{X: 22, Y: 15})
	f.cache.ForceScan()
	f.nav.AddFilter(panicFilter{})

	assert.NotPanics(t, func() {
		assert.False(t, f.nav.CycleNext(), "a filter that always panics fails every candidate")
	})
	assert.Equal(t, "No pathable entities found", f.speech.Last().Text)
}

func TestAnnouncePathToSelected(t *testing.T) {
	f := newNavFixture()
	f.world.Place(host.KindChest, "", geom.Tile{X: 25, Y: 15})
	f.cache.ForceScan()

	require.True(t, f.nav.AnnouncePathToSelected())
	assert.Equal(t, "east 5", f.speech.Last().Text)

	// Wall the chest in completely; the answer is spoken, not silent
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			f.pf.Block(geom.Tile{X: 25 + dx, Y: 15 + dy}, 1)
		}
	}
	assert.False(t, f.nav.AnnouncePathToSelected())
	assert.Equal(t, "no path", f.speech.Last().Text)
}

func TestGroupedExitInNavigatorList(t *testing.T) {
	f := newNavFixture()
	f.cache.SetStrategyEnabled("exit-destination", true)
	f.placeExit(geom.Tile{X: 22, Y: 15}, 7)
	f.placeExit(geom.Tile{X: 25, Y: 15}, 7)
	f.cache.ForceScan()

	f.nav.SetCategory(entity.CategoryMapExits)
	require.Len(t, f.nav.List(), 1, "a group is one navigable target")

	require.True(t, f.nav.CycleNext())
	assert.Contains(t, f.speech.Last().Text, "2 nearby")
}
