package sonar

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tile-sonar/constant"
	"github.com/lixenwraith/tile-sonar/entity"
	"github.com/lixenwraith/tile-sonar/geom"
	"github.com/lixenwraith/tile-sonar/host"
	"github.com/lixenwraith/tile-sonar/navigation"
)

// wallTone is one cardinal terrain voice, fixed in the mixer for the
// engine's lifetime
type wallTone struct {
	pan *effects.Pan
	vol *effects.Volume
}

// Engine owns the speaker and the full mixer graph: four wall tones
// plus one pooled source per audible entity
// A failed Init leaves the engine permanently disabled; every method
// stays callable and does nothing
type Engine struct {
	world    host.World
	cache    *navigation.Cache
	observer entity.ObserverFunc
	assetDir string
	log      zerolog.Logger

	mu          sync.Mutex
	initialized bool
	muted       bool
	master      float64
	rate        beep.SampleRate

	mixer   *beep.Mixer
	walls   [4]*wallTone
	sources map[entity.Navigable]*entitySource
	failed  map[string]bool
}

func NewEngine(world host.World, cache *navigation.Cache, observer entity.ObserverFunc, assetDir string, master float64, log zerolog.Logger) *Engine {
	return &Engine{
		world:    world,
		cache:    cache,
		observer: observer,
		assetDir: assetDir,
		master:   clampGain(master),
		log:      log,
		sources:  make(map[entity.Navigable]*entitySource),
		failed:   make(map[string]bool),
	}
}

// Init opens the audio device and installs the wall tones
// On headless or device-less hosts this fails; the error is logged and
// the rest of the program runs without sound
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	e.rate = beep.SampleRate(constant.AudioSampleRate)
	if err := speaker.Init(e.rate, e.rate.N(constant.AudioBufferDuration)); err != nil {
		e.log.Error().Err(err).Msg("audio device unavailable, sonar disabled")
		return err
	}

	pitches := [4]float64{constant.WallToneNorth, constant.WallToneEast, constant.WallToneSouth, constant.WallToneWest}
	pans := [4]float64{0, 1, 0, -1}

	e.mixer = &beep.Mixer{}
	for i := range e.walls {
		pan := &effects.Pan{Streamer: newTone(pitches[i], e.rate), Pan: pans[i]}
		vol := newVolume(pan, 0)
		e.walls[i] = &wallTone{pan: pan, vol: vol}
		e.mixer.Add(vol)
	}

	speaker.Play(e.mixer)
	e.initialized = true
	e.log.Info().Int("rate", constant.AudioSampleRate).Msg("sonar engine started")
	return nil
}

// Update recomputes every voice from the current world state
// Mute, a missing observer, or a modal dialog silences the whole field
// in a single pass before anything else plays
func (e *Engine) Update() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	obs, haveObs := e.observer()
	if e.muted || !haveObs || e.modal() {
		e.silenceAll()
		return
	}

	scan := Scan(e.world, e.cache, obs)
	speaker.Lock()
	for i, hit := range scan {
		gain := 0.0
		if hit.Blocked {
			gain = gainFor(hit.Distance, constant.SonarRange) * constant.WallToneLevel * e.master
		}
		setVolume(e.walls[i].vol, gain)
	}
	speaker.Unlock()

	e.updateEntitySources(obs)
}

// updateEntitySources runs the touch bracket: every audible entity
// marks its source, everything unmarked afterwards is paused
func (e *Engine) updateEntitySources(obs geom.Point) {
	touched := make(map[entity.Navigable]bool)

	for _, ent := range e.cache.Distinct() {
		profile, ok := soundOf(ent)
		if !ok || profile.Kind != entity.SoundContinuous {
			continue
		}
		pos, ok := positionOf(ent)
		if !ok {
			continue
		}

		dist := geom.TileDist(obs, pos)
		if dist > profile.Range {
			continue
		}

		src := e.sources[ent]
		if src == nil {
			src = e.newSource(profile.Clip)
			if src == nil {
				continue
			}
			e.sources[ent] = src
		}
		touched[ent] = true

		gain := gainFor(dist, profile.Range) * e.master
		pan := panFor(pos.X-obs.X, profile.Range*constant.TileSize)

		speaker.Lock()
		src.ctrl.Paused = false
		src.pan.Pan = pan
		setVolume(src.vol, gain)
		speaker.Unlock()
	}

	speaker.Lock()
	for ent, src := range e.sources {
		if !touched[ent] {
			src.ctrl.Paused = true
			setVolume(src.vol, 0)
		}
	}
	speaker.Unlock()
}

// newSource builds the ctrl/pan/volume chain for one clip and hooks it
// into the mixer
// A clip that cannot be loaded degrades the entity to silence; the
// failure is logged once per clip name, not per tick
func (e *Engine) newSource(clip string) *entitySource {
	if clip == "" || e.failed[clip] {
		return nil
	}

	s, err := loadClip(e.assetDir, clip, e.rate)
	if err != nil {
		e.failed[clip] = true
		e.log.Warn().Str("clip", clip).Err(err).Msg("sound asset unavailable, entity silent")
		return nil
	}

	ctrl := &beep.Ctrl{Streamer: s}
	pan := &effects.Pan{Streamer: ctrl}
	vol := newVolume(pan, 0)

	speaker.Lock()
	e.mixer.Add(vol)
	speaker.Unlock()

	return &entitySource{ctrl: ctrl, pan: pan, vol: vol}
}

// silenceAll zeroes every voice under one speaker lock
// Caller holds e.mu
func (e *Engine) silenceAll() {
	speaker.Lock()
	defer speaker.Unlock()

	for _, w := range e.walls {
		if w != nil {
			setVolume(w.vol, 0)
		}
	}
	for _, src := range e.sources {
		src.ctrl.Paused = true
		setVolume(src.vol, 0)
	}
}

// modal treats an unreadable host as modal: silence over noise
func (e *Engine) modal() (m bool) {
	defer func() {
		if recover() != nil {
			m = true
		}
	}()
	return e.world.Modal()
}

// Close tears the mixer down and releases the source pool
// Device errors during shutdown are swallowed
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	for _, src := range e.sources {
		src.ctrl.Paused = true
	}
	e.mixer.Clear()
	speaker.Unlock()

	e.sources = make(map[entity.Navigable]*entitySource)
	e.walls = [4]*wallTone{}
	e.initialized = false
	e.log.Info().Msg("sonar engine stopped")
}

// ToggleMute flips the mute state and reports the new value
// The next Update applies it; callers needing immediate silence call
// Update themselves
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = !e.muted
	return e.muted
}

func (e *Engine) IsMuted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

func (e *Engine) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialized
}

// SetMasterVolume scales every voice; values clamp to [0, 1]
func (e *Engine) SetMasterVolume(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.master = clampGain(v)
}

func (e *Engine) MasterVolume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.master
}

func clampGain(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// soundOf guards the host-backed profile read
func soundOf(ent entity.Navigable) (p entity.SoundProfile, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return ent.Sound(), true
}

// positionOf guards the host-backed position read
func positionOf(ent entity.Navigable) (pos geom.Point, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return ent.Position()
}
