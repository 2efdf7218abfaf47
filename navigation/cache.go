// Package navigation maintains the live set of navigable entities: an
// incrementally reconciled cache over the host's world objects, grouping
// strategies, a filter pipeline and a distance-sorted cyclic navigator.
package navigation

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/tile-sonar/constant"
	"github.com/lixenwraith/tile-sonar/entity"
	"github.com/lixenwraith/tile-sonar/geom"
	"github.com/lixenwraith/tile-sonar/host"
)

type groupKey struct {
	strategy string
	key      string
}

// Cache reconciles the live world-object set against wrapped entities
// It owns the grouping lifecycle and the add/remove event stream; all
// mutation happens synchronously inside the host's update call
type Cache struct {
	world    host.World
	factory  *entity.Factory
	observer entity.ObserverFunc
	log      zerolog.Logger

	entries   map[host.Object]entity.Navigable
	groups    map[groupKey]*entity.Group
	groupKeys map[*entity.Group]groupKey

	strategies []GroupingStrategy
	enabled    map[string]bool

	lastScan time.Time
	scanned  bool

	added   []func(entity.Navigable)
	removed []func(entity.Navigable)
}

// NewCache creates an empty cache bound to a world and observer source
func NewCache(world host.World, factory *entity.Factory, observer entity.ObserverFunc, log zerolog.Logger) *Cache {
	return &Cache{
		world:     world,
		factory:   factory,
		observer:  observer,
		log:       log,
		entries:   make(map[host.Object]entity.Navigable),
		groups:    make(map[groupKey]*entity.Group),
		groupKeys: make(map[*entity.Group]groupKey),
		enabled:   make(map[string]bool),
	}
}

// OnAdded registers a synchronous add subscriber
func (c *Cache) OnAdded(fn func(entity.Navigable)) {
	c.added = append(c.added, fn)
}

// OnRemoved registers a synchronous remove subscriber
func (c *Cache) OnRemoved(fn func(entity.Navigable)) {
	c.removed = append(c.removed, fn)
}

// RegisterStrategy adds a grouping strategy in evaluation order
func (c *Cache) RegisterStrategy(s GroupingStrategy, enabled bool) {
	c.strategies = append(c.strategies, s)
	c.enabled[s.Name()] = enabled
}

// Update runs a reconciliation pass unless one ran within ScanInterval
// Returns true when a scan actually happened
func (c *Cache) Update(now time.Time) bool {
	if c.scanned && now.Sub(c.lastScan) < constant.ScanInterval {
		return false
	}
	c.scan()
	c.lastScan = now
	c.scanned = true
	return true
}

// ForceScan reconciles immediately, bypassing the interval throttle
// Callers rescanning after a map transition schedule their own settle
// delay first; the cache never sleeps
func (c *Cache) ForceScan() {
	c.scan()
}

// scan diffs the live object set against the cache
func (c *Cache) scan() {
	live := c.liveObjects()
	liveSet := make(map[host.Object]bool, len(live))
	for _, obj := range live {
		liveSet[obj] = true
	}

	var stale []host.Object
	for obj := range c.entries {
		if !liveSet[obj] {
			stale = append(stale, obj)
		}
	}
	sortObjects(stale)
	for _, obj := range stale {
		c.removeObject(obj)
	}

	for _, obj := range live {
		if _, cached := c.entries[obj]; !cached {
			c.addObject(obj)
		}
	}
}

// liveObjects reads the world's object list, dropping anything whose
// liveness or position cannot be read this cycle
func (c *Cache) liveObjects() []host.Object {
	var raw []host.Object
	func() {
		defer func() {
			if r := recover(); r != nil {
				c.log.Debug().Interface("panic", r).Msg("world object enumeration failed")
			}
		}()
		raw = c.world.Objects()
	}()

	live := make([]host.Object, 0, len(raw))
	for _, obj := range raw {
		if objectAlive(obj) {
			live = append(live, obj)
		}
	}
	sortObjects(live)
	return live
}

// objectAlive reads liveness defensively; a panicking host read means
// the object is absent for this cycle
func objectAlive(obj host.Object) (alive bool) {
	defer func() {
		if recover() != nil {
			alive = false
		}
	}()
	if obj == nil || !obj.Active() {
		return false
	}
	_, ok := obj.Position()
	return ok
}

func sortObjects(objs []host.Object) {
	sort.Slice(objs, func(i, j int) bool { return objs[i].ID() < objs[j].ID() })
}

func (c *Cache) addObject(obj host.Object) {
	e := c.factory.Classify(obj)
	if e == nil {
		return
	}
	c.place(obj, e)
}

// place stores an entity, routing it through enabled grouping strategies
// Joining an existing group fires nothing; creating one fires a single
// add for the group itself
func (c *Cache) place(obj host.Object, e entity.Navigable) {
	for _, s := range c.strategies {
		if !c.enabled[s.Name()] {
			continue
		}
		key, ok := s.GroupKey(e)
		if !ok {
			continue
		}

		gk := groupKey{strategy: s.Name(), key: key}
		if g, exists := c.groups[gk]; exists {
			if g.Add(e) {
				c.entries[obj] = g
				return
			}
			continue
		}

		g := entity.NewGroup(c.observer)
		g.Add(e)
		c.groups[gk] = g
		c.groupKeys[g] = gk
		c.entries[obj] = g
		c.fireAdded(g)
		return
	}

	c.entries[obj] = e
	c.fireAdded(e)
}

// removeObject drops a stale host object
// A group only fires remove once it loses its last member; a group that
// shrinks to one member stays a group
func (c *Cache) removeObject(obj host.Object) {
	ent, ok := c.entries[obj]
	if !ok {
		return
	}
	delete(c.entries, obj)

	g, isGroup := ent.(*entity.Group)
	if !isGroup {
		c.fireRemoved(ent)
		return
	}

	for _, m := range g.Members() {
		if m.Host() == obj {
			g.Remove(m)
			break
		}
	}
	if g.Len() == 0 {
		gk := c.groupKeys[g]
		delete(c.groups, gk)
		delete(c.groupKeys, g)
		c.fireRemoved(g)
	}
}

// SetStrategyEnabled flips a grouping strategy at runtime
// Both directions emit matched remove/add pairs so subscribers never see
// a dangling reference
func (c *Cache) SetStrategyEnabled(name string, on bool) {
	if c.enabled[name] == on {
		return
	}
	c.enabled[name] = on

	if on {
		c.regroup(name)
	} else {
		c.dissolve(name)
	}
}

// regroup routes existing standalone entities into the newly enabled
// strategy's groups
func (c *Cache) regroup(name string) {
	var strat GroupingStrategy
	for _, s := range c.strategies {
		if s.Name() == name {
			strat = s
			break
		}
	}
	if strat == nil {
		return
	}

	var candidates []host.Object
	for obj, ent := range c.entries {
		if _, isGroup := ent.(*entity.Group); isGroup {
			continue
		}
		if _, ok := strat.GroupKey(ent); ok {
			candidates = append(candidates, obj)
		}
	}
	sortObjects(candidates)

	for _, obj := range candidates {
		ent := c.entries[obj]
		delete(c.entries, obj)
		c.fireRemoved(ent)
		c.place(obj, ent)
	}
}

// dissolve breaks up all groups owned by a disabled strategy and
// restores their members as individuals
func (c *Cache) dissolve(name string) {
	var keys []groupKey
	for gk := range c.groups {
		if gk.strategy == name {
			keys = append(keys, gk)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].key < keys[j].key })

	for _, gk := range keys {
		g := c.groups[gk]
		delete(c.groups, gk)
		delete(c.groupKeys, g)

		members := append([]entity.Navigable(nil), g.Members()...)
		for _, m := range members {
			delete(c.entries, m.Host())
		}
		c.fireRemoved(g)

		for _, m := range members {
			c.place(m.Host(), m)
		}
	}
}

// FindByHostObject resolves which entity owns a host object, walking the
// containment hierarchy upward until a cached ancestor matches
func (c *Cache) FindByHostObject(obj host.Object) entity.Navigable {
	for o := obj; o != nil; o = parentOf(o) {
		if ent, ok := c.entries[o]; ok {
			return ent
		}
	}
	return nil
}

func parentOf(obj host.Object) (parent host.Object) {
	defer func() {
		if recover() != nil {
			parent = nil
		}
	}()
	return obj.Parent()
}

// FindAtPosition locates entities occupying a world point: first by
// physical overlap (multi-tile shapes answer correctly), then by tile
// equality for collider-less entities, deduplicated across both phases
func (c *Cache) FindAtPosition(p geom.Point) []entity.Navigable {
	seen := make(map[entity.Navigable]bool)
	var out []entity.Navigable

	var overlapping []host.Object
	func() {
		defer func() {
			if r := recover(); r != nil {
				c.log.Debug().Interface("panic", r).Msg("overlap query failed")
			}
		}()
		overlapping = c.world.OverlapPoint(p)
	}()
	for _, obj := range overlapping {
		if e := c.FindByHostObject(obj); e != nil && !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}

	w, h := c.world.MapSize()
	tile := geom.WorldToTile(p, w, h)
	for _, obj := range c.sortedEntryObjects() {
		e := c.entries[obj]
		if seen[e] {
			continue
		}
		pos, ok := safePosition(obj)
		if !ok {
			continue
		}
		if geom.WorldToTile(pos, w, h) == tile {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}

func safePosition(obj host.Object) (pos geom.Point, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return obj.Position()
}

func (c *Cache) sortedEntryObjects() []host.Object {
	objs := make([]host.Object, 0, len(c.entries))
	for obj := range c.entries {
		objs = append(objs, obj)
	}
	sortObjects(objs)
	return objs
}

// Distinct returns the current logical entities: standalone entities plus
// each group once, in host-ID order of first appearance
func (c *Cache) Distinct() []entity.Navigable {
	seen := make(map[entity.Navigable]bool)
	var out []entity.Navigable
	for _, obj := range c.sortedEntryObjects() {
		e := c.entries[obj]
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}

// CountByCategory counts logical entities of one category, or all of
// them for CategoryAll
func (c *Cache) CountByCategory(cat entity.Category) int {
	n := 0
	for _, e := range c.Distinct() {
		if cat == entity.CategoryAll || e.Category() == cat {
			n++
		}
	}
	return n
}

func (c *Cache) fireAdded(e entity.Navigable) {
	for _, fn := range c.added {
		fn(e)
	}
}

func (c *Cache) fireRemoved(e entity.Navigable) {
	for _, fn := range c.removed {
		fn(e)
	}
}
