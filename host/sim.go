package host

import (
	"sync"

	"github.com/lixenwraith/tile-sonar/constant"
	"github.com/lixenwraith/tile-sonar/geom"
)

// Rect is a world-space axis-aligned box used by sim colliders
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether p lies inside the rect (inclusive)
func (r Rect) Contains(p geom.Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// SimObject is a scriptable world object for tests and sandboxes
type SimObject struct {
	id       uint64
	kind     Kind
	label    string
	pos      geom.Point
	active   bool
	gone     bool
	parent   Object
	flags    map[string]bool
	attrs    map[string]int
	collider *Rect
}

func (o *SimObject) ID() uint64     { return o.id }
func (o *SimObject) Kind() Kind     { return o.kind }
func (o *SimObject) Active() bool   { return o.active && !o.gone }
func (o *SimObject) Parent() Object { return o.parent }
func (o *SimObject) Label() string  { return o.label }

func (o *SimObject) Position() (geom.Point, bool) {
	if o.gone {
		return geom.Point{}, false
	}
	return o.pos, true
}

func (o *SimObject) Flag(name string) bool { return o.flags[name] }
func (o *SimObject) Attr(name string) int  { return o.attrs[name] }

// MoveTo relocates the object
func (o *SimObject) MoveTo(p geom.Point) { o.pos = p }

// SetFlag updates a boolean property
func (o *SimObject) SetFlag(name string, v bool) { o.flags[name] = v }

// SetAttr updates an integer property
func (o *SimObject) SetAttr(name string, v int) { o.attrs[name] = v }

// SetParent attaches the object under a containment parent
func (o *SimObject) SetParent(p Object) { o.parent = p }

// SetCollider gives the object a physical shape centered on pos
func (o *SimObject) SetCollider(halfW, halfH float64) {
	o.collider = &Rect{
		MinX: o.pos.X - halfW, MinY: o.pos.Y - halfH,
		MaxX: o.pos.X + halfW, MaxY: o.pos.Y + halfH,
	}
}

// Destroy makes every subsequent read report the object as gone
func (o *SimObject) Destroy() { o.gone = true }

// Revive undoes Destroy
func (o *SimObject) Revive() { o.gone = false }

// SimWorld implements World over scripted objects and a tile grid
type SimWorld struct {
	w, h    int
	objects []*SimObject
	modal   bool
	nextID  uint64
}

// NewSimWorld creates an empty world of w x h tiles
func NewSimWorld(w, h int) *SimWorld {
	return &SimWorld{w: w, h: h, nextID: 1}
}

// Place adds an object of the given kind at a tile and returns it
func (s *SimWorld) Place(kind Kind, label string, tile geom.Tile) *SimObject {
	obj := &SimObject{
		id:     s.nextID,
		kind:   kind,
		label:  label,
		pos:    geom.TileToWorld(tile, s.w, s.h),
		active: true,
		flags:  make(map[string]bool),
		attrs:  make(map[string]int),
	}
	s.nextID++
	s.objects = append(s.objects, obj)
	return obj
}

// Remove drops an object from the live set entirely
func (s *SimWorld) Remove(obj *SimObject) {
	for i, o := range s.objects {
		if o == obj {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return
		}
	}
}

// SetModal scripts the dialog/cutscene state
func (s *SimWorld) SetModal(v bool) { s.modal = v }

func (s *SimWorld) Modal() bool         { return s.modal }
func (s *SimWorld) MapSize() (int, int) { return s.w, s.h }

func (s *SimWorld) Objects() []Object {
	out := make([]Object, 0, len(s.objects))
	for _, o := range s.objects {
		if o.Active() {
			out = append(out, o)
		}
	}
	return out
}

func (s *SimWorld) OverlapPoint(p geom.Point) []Object {
	var out []Object
	for _, o := range s.objects {
		if !o.Active() || o.collider == nil {
			continue
		}
		if o.collider.Contains(p) {
			out = append(out, o)
		}
	}
	return out
}

func (s *SimWorld) RayCast(from geom.Point, dir geom.Direction, maxRange float64) []Hit {
	unit := dir.Unit()
	if unit == (geom.Point{}) {
		return nil
	}

	const step = constant.TileSize / 8
	seen := make(map[uint64]bool)
	var hits []Hit

	for d := step; d <= maxRange; d += step {
		probe := from.Add(unit.Scale(d))
		for _, o := range s.objects {
			if !o.Active() || o.collider == nil || seen[o.id] {
				continue
			}
			if o.collider.Contains(probe) {
				seen[o.id] = true
				hits = append(hits, Hit{Object: o, Distance: d})
			}
		}
	}
	return hits
}

// SimPathfinder is a BFS route search over the sim grid
// A tile with block level v obstructs searches at depth >= v, so shallower
// depths see fewer obstacles
type SimPathfinder struct {
	w, h    int
	blocked map[geom.Tile]int
}

// NewSimPathfinder creates a pathfinder for a w x h grid
func NewSimPathfinder(w, h int) *SimPathfinder {
	return &SimPathfinder{w: w, h: h, blocked: make(map[geom.Tile]int)}
}

// Block marks a tile obstructed for searches at the given depth or deeper
func (p *SimPathfinder) Block(t geom.Tile, level int) { p.blocked[t] = level }

// Unblock clears a tile
func (p *SimPathfinder) Unblock(t geom.Tile) { delete(p.blocked, t) }

func (p *SimPathfinder) passable(t geom.Tile, depth int) bool {
	if t.X < 0 || t.X >= p.w || t.Y < 0 || t.Y >= p.h {
		return false
	}
	v, ok := p.blocked[t]
	return !ok || depth < v
}

func (p *SimPathfinder) Search(from, to geom.Tile, depth int) ([]geom.Point, bool) {
	if !p.passable(to, depth) || !p.passable(from, depth) {
		return nil, false
	}
	if from == to {
		return []geom.Point{geom.TileToWorld(from, p.w, p.h)}, true
	}

	prev := map[geom.Tile]geom.Tile{from: from}
	queue := []geom.Tile{from}
	steps := [4]geom.Tile{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			break
		}
		for _, d := range steps {
			next := geom.Tile{X: cur.X + d.X, Y: cur.Y + d.Y}
			if _, seen := prev[next]; seen || !p.passable(next, depth) {
				continue
			}
			prev[next] = cur
			queue = append(queue, next)
		}
	}

	if _, ok := prev[to]; !ok {
		return nil, false
	}

	var tiles []geom.Tile
	for t := to; t != from; t = prev[t] {
		tiles = append(tiles, t)
	}
	tiles = append(tiles, from)

	waypoints := make([]geom.Point, 0, len(tiles))
	for i := len(tiles) - 1; i >= 0; i-- {
		waypoints = append(waypoints, geom.TileToWorld(tiles[i], p.w, p.h))
	}
	return waypoints, true
}

// Utterance is one recorded Speak call
type Utterance struct {
	Text      string
	Interrupt bool
}

// SpeechRecorder captures speech for assertions
type SpeechRecorder struct {
	mu      sync.Mutex
	entries []Utterance
}

func (r *SpeechRecorder) Speak(text string, interrupt bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Utterance{Text: text, Interrupt: interrupt})
}

// Last returns the most recent utterance, empty when none
func (r *SpeechRecorder) Last() Utterance {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return Utterance{}
	}
	return r.entries[len(r.entries)-1]
}

// All returns a copy of every recorded utterance
func (r *SpeechRecorder) All() []Utterance {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Utterance, len(r.entries))
	copy(out, r.entries)
	return out
}

// Reset clears the log
func (r *SpeechRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = r.entries[:0]
}
