package sonar

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tile-sonar/entity"
	"github.com/lixenwraith/tile-sonar/geom"
	"github.com/lixenwraith/tile-sonar/host"
)

func newEngineFixture() (*scanFixture, *Engine) {
	f := newScanFixture()
	obs := func() (geom.Point, bool) { return f.observer, true }
	eng := NewEngine(f.world, f.cache, obs, "testdata", 1.0, zerolog.Nop())
	return f, eng
}

func TestEngineSafeWithoutInit(t *testing.T) {
	f, eng := newEngineFixture()
	f.placeSolid(host.KindBarrier, geom.Tile{X: 22, Y: 15})
	f.cache.ForceScan()

	// Headless hosts never get past Init; every entry point must still
	// be a harmless no-op
	assert.NotPanics(t, func() {
		eng.Update()
		eng.SetMasterVolume(0.5)
		eng.ToggleMute()
		eng.Close()
	})
	assert.False(t, eng.IsRunning())
}

func TestEngineVolumeClamped(t *testing.T) {
	_, eng := newEngineFixture()
	eng.SetMasterVolume(3)
	assert.Equal(t, 1.0, eng.MasterVolume())
	eng.SetMasterVolume(-1)
	assert.Equal(t, 0.0, eng.MasterVolume())
}

func TestEngineSilencesOnModalAndMute(t *testing.T) {
	f, eng := newEngineFixture()
	if err := eng.Init(); err != nil {
		t.Logf("no audio device, skipping live engine test: %v", err)
		return
	}
	defer eng.Close()

	f.placeSolid(host.KindBarrier, geom.Tile{X: 22, Y: 15})
	f.cache.ForceScan()

	eng.Update()
	require.False(t, eng.walls[east].vol.Silent, "a nearby wall must drive its tone")

	f.world.SetModal(true)
	eng.Update()
	for _, w := range eng.walls {
		assert.True(t, w.vol.Silent, "modal state silences the whole field")
	}

	f.world.SetModal(false)
	eng.ToggleMute()
	eng.Update()
	for _, w := range eng.walls {
		assert.True(t, w.vol.Silent, "mute silences the whole field")
	}

	eng.ToggleMute()
	eng.Update()
	assert.False(t, eng.walls[east].vol.Silent)
}

func TestEngineMissingClipLoggedOnce(t *testing.T) {
	f, eng := newEngineFixture()
	if err := eng.Init(); err != nil {
		t.Logf("no audio device, skipping live engine test: %v", err)
		return
	}
	defer eng.Close()

	exit := f.world.Place(host.KindMapExit, "", geom.Tile{X: 22, Y: 15})
	exit.SetAttr("destination", 7)
	f.cache.ForceScan()

	// exit.wav does not exist under testdata; the entity degrades to
	// silence and the load is not retried
	eng.Update()
	eng.Update()
	assert.Empty(t, eng.sources)
	assert.True(t, eng.failed["exit.wav"])
}

func TestSoundGuardsSurviveHostPanics(t *testing.T) {
	var broken entity.Navigable = panicNavigable{}

	_, ok := soundOf(broken)
	assert.False(t, ok)
	_, ok = positionOf(broken)
	assert.False(t, ok)
}

type panicNavigable struct{}

func (panicNavigable) Host() host.Object            { return nil }
func (panicNavigable) Category() entity.Category    { panic("host gone") }
func (panicNavigable) Priority() int                { return 0 }
func (panicNavigable) Blocking() bool               { return false }
func (panicNavigable) Interactive() bool            { return false }
func (panicNavigable) Position() (geom.Point, bool) { panic("host gone") }
func (panicNavigable) Name() string                 { return "" }
func (panicNavigable) TypeLabel() string            { return "" }
func (panicNavigable) Sound() entity.SoundProfile   { panic("host gone") }
