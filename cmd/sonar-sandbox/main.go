// Command sonar-sandbox is an interactive test arena: a scripted map you
// can walk through with the full navigation and sonar stack live, speech
// rendered to the status area instead of a screen reader.
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tile-sonar/config"
	"github.com/lixenwraith/tile-sonar/constant"
	"github.com/lixenwraith/tile-sonar/entity"
	"github.com/lixenwraith/tile-sonar/geom"
	"github.com/lixenwraith/tile-sonar/host"
	"github.com/lixenwraith/tile-sonar/navigation"
	"github.com/lixenwraith/tile-sonar/path"
	"github.com/lixenwraith/tile-sonar/sonar"
)

const (
	mapW = 40
	mapH = 24

	prefsFile = "sonar-prefs.toml"
	logFile   = "sonar-sandbox.log"
)

// speechLog renders Speak calls to the status area
type speechLog struct {
	mu    sync.Mutex
	lines []string
}

func (s *speechLog) Speak(text string, interrupt bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, text)
	if len(s.lines) > 4 {
		s.lines = s.lines[len(s.lines)-4:]
	}
}

func (s *speechLog) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

type Sandbox struct {
	screen tcell.Screen
	log    zerolog.Logger

	world  *host.SimWorld
	pf     *host.SimPathfinder
	cache  *navigation.Cache
	nav    *navigation.Navigator
	engine *sonar.Engine
	store  *config.Store
	speech *speechLog

	observer geom.Tile
	catIndex int
}

func NewSandbox() (*Sandbox, error) {
	store, err := config.Load(prefsFile)
	if err != nil {
		return nil, err
	}
	settings := store.Settings()

	out, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	log := config.NewLogger(settings.LogLevel, out)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	s := &Sandbox{
		screen:   screen,
		log:      log,
		world:    host.NewSimWorld(mapW, mapH),
		pf:       host.NewSimPathfinder(mapW, mapH),
		store:    store,
		speech:   &speechLog{},
		observer: geom.Tile{X: mapW / 2, Y: mapH / 2},
		catIndex: len(entity.Categories) - 1, // start on "everything"
	}
	s.populate()

	obs := func() (geom.Point, bool) {
		return geom.TileToWorld(s.observer, mapW, mapH), true
	}

	factory := entity.NewFactory(mapName, nil)
	s.cache = navigation.NewCache(s.world, factory, obs, log)
	s.cache.RegisterStrategy(navigation.ExitDestinationStrategy{}, settings.GroupExits)

	adapter := path.NewAdapter(s.pf, mapW, mapH)
	s.nav = navigation.NewNavigator(s.cache, obs, s.speech, adapter, log)
	s.nav.SetReachabilityEnabled(settings.ReachabilityFilter)

	s.engine = sonar.NewEngine(s.world, s.cache, obs, settings.AssetDir, settings.MasterVolume, log)
	if err := s.engine.Init(); err != nil {
		// Runs fine without a device; the map and speech still work
		log.Warn().Err(err).Msg("running without audio")
	}

	s.cache.ForceScan()
	return s, nil
}

// mapName resolves exit destination ids for the scripted arena
func mapName(id int) string {
	switch id {
	case 1:
		return "Harbor Town"
	case 2:
		return "Deep Forest"
	}
	return ""
}

// populate scripts the arena: a walled room with a doorway gap, two
// exits into the same map, and a scatter of targets
func (s *Sandbox) populate() {
	wall := func(t geom.Tile) {
		obj := s.world.Place(host.KindBarrier, "wall", t)
		obj.SetCollider(constant.TileSize/2, constant.TileSize/2)
		s.pf.Block(t, 1)
	}

	// Room outline around the starting position, door gap on the east
	for x := 14; x <= 26; x++ {
		wall(geom.Tile{X: x, Y: 8})
		wall(geom.Tile{X: x, Y: 16})
	}
	for y := 9; y <= 15; y++ {
		wall(geom.Tile{X: 14, Y: y})
		if y != 12 {
			wall(geom.Tile{X: 26, Y: y})
		}
	}

	s.world.Place(host.KindChest, "", geom.Tile{X: 17, Y: 10})
	s.world.Place(host.KindChest, "", geom.Tile{X: 24, Y: 14})
	s.world.Place(host.KindNPC, "Mira", geom.Tile{X: 19, Y: 14}).SetFlag("shop", true)
	s.world.Place(host.KindSavePoint, "", geom.Tile{X: 21, Y: 10})

	// Outside the room
	s.world.Place(host.KindNPC, "Wanderer", geom.Tile{X: 31, Y: 12})
	s.world.Place(host.KindVehicle, "", geom.Tile{X: 33, Y: 18}).SetAttr("transport", 1)
	s.world.Place(host.KindHazard, "spikes", geom.Tile{X: 29, Y: 9})

	east := s.world.Place(host.KindMapExit, "", geom.Tile{X: 37, Y: 11})
	east.SetAttr("destination", 1)
	south := s.world.Place(host.KindMapExit, "", geom.Tile{X: 37, Y: 13})
	south.SetAttr("destination", 1)
	forest := s.world.Place(host.KindMapExit, "", geom.Tile{X: 20, Y: 2})
	forest.SetAttr("destination", 2)
}

func (s *Sandbox) moveObserver(dx, dy int) {
	next := geom.Tile{X: s.observer.X + dx, Y: s.observer.Y + dy}
	if next.X < 0 || next.X >= mapW || next.Y < 0 || next.Y >= mapH {
		return
	}
	s.observer = next
}

func (s *Sandbox) cycleCategory() {
	s.catIndex = (s.catIndex + 1) % len(entity.Categories)
	s.nav.SetCategory(entity.Categories[s.catIndex])
}

func (s *Sandbox) toggleGrouping() {
	on := !s.store.Settings().GroupExits
	s.cache.SetStrategyEnabled("exit-destination", on)
	s.store.SetGroupExits(on)
	s.persist()
	if on {
		s.speech.Speak("Exit grouping on", true)
	} else {
		s.speech.Speak("Exit grouping off", true)
	}
}

func (s *Sandbox) toggleReachability() {
	on := !s.nav.ReachabilityEnabled()
	s.nav.SetReachabilityEnabled(on)
	s.store.SetReachabilityFilter(on)
	s.persist()
}

func (s *Sandbox) persist() {
	if err := s.store.Save(); err != nil {
		s.log.Warn().Err(err).Msg("preference save failed")
	}
}

func (s *Sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			s.moveObserver(0, -1)
		case tcell.KeyDown:
			s.moveObserver(0, 1)
		case tcell.KeyLeft:
			s.moveObserver(-1, 0)
		case tcell.KeyRight:
			s.moveObserver(1, 0)
		case tcell.KeyTab:
			s.nav.CycleNext()
		case tcell.KeyBacktab:
			s.nav.CyclePrevious()
		case tcell.KeyEnter:
			s.nav.AnnounceSelected()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				s.moveObserver(-1, 0)
			case 'j':
				s.moveObserver(0, 1)
			case 'k':
				s.moveObserver(0, -1)
			case 'l':
				s.moveObserver(1, 0)
			case 'c':
				s.cycleCategory()
			case 'p':
				s.nav.AnnouncePathToSelected()
			case 'g':
				s.toggleGrouping()
			case 'r':
				s.toggleReachability()
			case 'm':
				if s.engine.ToggleMute() {
					s.speech.Speak("Sonar muted", true)
				} else {
					s.speech.Speak("Sonar on", true)
				}
			}
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

func glyphFor(kind host.Kind) rune {
	switch kind {
	case host.KindBarrier:
		return '#'
	case host.KindChest:
		return 'C'
	case host.KindNPC:
		return 'N'
	case host.KindMapExit:
		return 'E'
	case host.KindVehicle:
		return 'V'
	case host.KindSavePoint:
		return 'S'
	case host.KindHazard:
		return '~'
	}
	return '?'
}

func (s *Sandbox) draw() {
	s.screen.Clear()
	plain := tcell.StyleDefault
	dim := plain.Foreground(tcell.ColorGray)

	for y := 0; y < mapH; y++ {
		for x := 0; x < mapW; x++ {
			s.screen.SetContent(x, y, '.', nil, dim)
		}
	}

	var selectedTile *geom.Tile
	if sel := s.nav.Selected(); sel != nil {
		if pos, ok := sel.Position(); ok {
			t := geom.WorldToTile(pos, mapW, mapH)
			selectedTile = &t
		}
	}

	for _, obj := range s.world.Objects() {
		pos, ok := obj.Position()
		if !ok {
			continue
		}
		t := geom.WorldToTile(pos, mapW, mapH)
		style := plain
		if selectedTile != nil && t == *selectedTile {
			style = style.Reverse(true)
		}
		s.screen.SetContent(t.X, t.Y, glyphFor(obj.Kind()), nil, style)
	}

	s.screen.SetContent(s.observer.X, s.observer.Y, '@', nil, plain.Bold(true))

	status := fmt.Sprintf("category: %s | path filter: %v | exit groups: %v | mute: %v | targets: %d",
		entity.Categories[s.catIndex], s.nav.ReachabilityEnabled(),
		s.store.Settings().GroupExits, s.engine.IsMuted(), len(s.nav.List()))
	drawText(s.screen, 0, mapH+1, plain, status)
	drawText(s.screen, 0, mapH+2, dim, "arrows/hjkl move | tab cycle | enter where | p path | c category | g group | r reach | m mute | q quit")

	for i, line := range s.speech.Lines() {
		drawText(s.screen, 0, mapH+4+i, plain, line)
	}

	s.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func (s *Sandbox) run() {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- s.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			if !s.handleInput(ev) {
				return
			}
		case <-ticker.C:
			s.cache.Update(time.Now())
			s.engine.Update()
			s.draw()
		}
	}
}

func (s *Sandbox) shutdown() {
	s.engine.Close()
	s.screen.Fini()
}

func main() {
	s, err := NewSandbox()
	if err != nil {
		fmt.Fprintln(os.Stderr, "sonar-sandbox:", err)
		os.Exit(1)
	}
	defer s.shutdown()
	s.run()
}
