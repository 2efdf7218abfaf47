package navigation

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/tile-sonar/entity"
	"github.com/lixenwraith/tile-sonar/host"
	"github.com/lixenwraith/tile-sonar/path"
)

// Navigator keeps a distance-sorted view over the cache's entities with
// a cursor the user cycles through
// OnAdd filters gate list membership; OnCycle filters gate each cursor
// step, so expensive dynamic checks only run along the walked path
type Navigator struct {
	cache    *Cache
	observer entity.ObserverFunc
	speaker  host.Speaker
	adapter  *path.Adapter
	log      zerolog.Logger

	category *CategoryFilter
	reach    *ReachabilityFilter
	filters  []Filter

	list     []entity.Navigable
	selected entity.Navigable
}

// NewNavigator wires a navigator to the cache's event stream
func NewNavigator(cache *Cache, observer entity.ObserverFunc, speaker host.Speaker, adapter *path.Adapter, log zerolog.Logger) *Navigator {
	n := &Navigator{
		cache:    cache,
		observer: observer,
		speaker:  speaker,
		adapter:  adapter,
		log:      log,
		category: NewCategoryFilter(entity.CategoryAll),
	}
	n.reach = NewReachabilityFilter(adapter, observer)
	n.filters = []Filter{n.category, n.reach}

	cache.OnAdded(n.handleAdded)
	cache.OnRemoved(n.handleRemoved)
	return n
}

// AddFilter appends a custom filter to the pipeline
func (n *Navigator) AddFilter(f Filter) {
	n.filters = append(n.filters, f)
}

// Selected returns the current cursor entity, nil when the list is empty
func (n *Navigator) Selected() entity.Navigable { return n.selected }

// List exposes the current filtered list; callers must not mutate it
func (n *Navigator) List() []entity.Navigable { return n.list }

// Category returns the active category target
func (n *Navigator) Category() entity.Category { return n.category.Target() }

// ReachabilityEnabled reports the path filter toggle
func (n *Navigator) ReachabilityEnabled() bool { return n.reach.Enabled() }

// SetReachabilityEnabled toggles the path filter and announces the state
// OnCycle timing means no rebuild is needed
func (n *Navigator) SetReachabilityEnabled(on bool) {
	n.reach.SetEnabled(on)
	if on {
		n.speaker.Speak("Path filter on", true)
	} else {
		n.speaker.Speak("Path filter off", true)
	}
}

// SetCategory retargets the category filter, rebuilds the list and
// announces the result
func (n *Navigator) SetCategory(cat entity.Category) {
	n.category.SetTarget(cat)
	n.rebuild()
	n.speaker.Speak(fmt.Sprintf("%s, %d found", cat, len(n.list)), true)
}

// rebuild recomputes the filtered list from the cache, preserving the
// selection by identity where possible
func (n *Navigator) rebuild() {
	prev := n.selected

	n.list = n.list[:0]
	for _, e := range n.cache.Distinct() {
		if n.passesTimed(e, TimingOnAdd) {
			n.list = append(n.list, e)
		}
	}
	n.sortByDistance()

	n.selected = nil
	for _, e := range n.list {
		if e == prev {
			n.selected = prev
			break
		}
	}
	if n.selected == nil && len(n.list) > 0 {
		n.selected = n.list[0]
	}
}

// handleAdded admits a new cache entity through the OnAdd filters and
// insertion-sorts it by current distance
func (n *Navigator) handleAdded(e entity.Navigable) {
	if !n.passesTimed(e, TimingOnAdd) {
		return
	}

	d := n.distanceTo(e)
	idx := len(n.list)
	for i, x := range n.list {
		if n.distanceTo(x) > d {
			idx = i
			break
		}
	}
	n.list = append(n.list, nil)
	copy(n.list[idx+1:], n.list[idx:])
	n.list[idx] = e

	if n.selected == nil {
		n.selected = e
	}
}

func (n *Navigator) handleRemoved(e entity.Navigable) {
	for i, x := range n.list {
		if x == e {
			n.list = append(n.list[:i], n.list[i+1:]...)
			break
		}
	}
	if n.selected == e {
		if len(n.list) > 0 {
			n.selected = n.list[0]
		} else {
			n.selected = nil
		}
	}
}

// CycleNext advances the cursor to the next OnCycle-passing entity by
// distance, wrapping around; false when nothing in a full lap passes
func (n *Navigator) CycleNext() bool { return n.cycle(1) }

// CyclePrevious is CycleNext walking the other way
func (n *Navigator) CyclePrevious() bool { return n.cycle(-1) }

func (n *Navigator) cycle(step int) bool {
	// Entities move every frame; the order can be stale by now
	n.sortByDistance()

	if len(n.list) == 0 {
		n.speaker.Speak("No entities nearby", true)
		return false
	}

	idx := -1
	for i, e := range n.list {
		if e == n.selected {
			idx = i
			break
		}
	}
	count := len(n.list)
	start := idx
	if idx == -1 {
		// Lost selection: enter the lap from the edge so the walk still
		// visits every entity once
		if step > 0 {
			start = -1
		} else {
			start = count
		}
	}

	for k := 1; k <= count; k++ {
		i := ((start+step*k)%count + count) % count
		cand := n.list[i]
		if !n.passesTimed(cand, TimingOnCycle) {
			continue
		}
		n.selected = cand
		obs, _ := n.observer()
		n.speaker.Speak(entity.Describe(cand, obs), true)
		return true
	}

	n.speaker.Speak("No pathable entities found", true)
	return false
}

// AnnounceSelected re-speaks the current selection
func (n *Navigator) AnnounceSelected() {
	if n.selected == nil {
		n.speaker.Speak("No entities nearby", true)
		return
	}
	obs, _ := n.observer()
	n.speaker.Speak(entity.Describe(n.selected, obs), true)
}

// AnnouncePathToSelected runs the path adapter against the selection and
// speaks the route or "no path"
func (n *Navigator) AnnouncePathToSelected() bool {
	if n.selected == nil {
		n.speaker.Speak("No entities nearby", true)
		return false
	}
	obs, haveObs := n.observer()
	pos, ok := n.selected.Position()
	if !haveObs || !ok {
		n.speaker.Speak("no path", true)
		return false
	}
	res := n.adapter.FindPath(obs, pos)
	if !res.Success {
		n.speaker.Speak("no path", true)
		return false
	}
	n.speaker.Speak(res.Description, true)
	return true
}

// passesTimed runs every enabled filter of the given timing (and TimingAll)
func (n *Navigator) passesTimed(e entity.Navigable, timing Timing) bool {
	for _, f := range n.filters {
		if !f.Enabled() {
			continue
		}
		if f.Timing() != timing && f.Timing() != TimingAll {
			continue
		}
		if !runFilter(f, e, n.log) {
			return false
		}
	}
	return true
}

// sortByDistance stably re-sorts the list by live distance; equidistant
// entities keep their relative order
func (n *Navigator) sortByDistance() {
	type keyed struct {
		e entity.Navigable
		d float64
	}
	keys := make([]keyed, len(n.list))
	for i, e := range n.list {
		keys[i] = keyed{e: e, d: n.distanceTo(e)}
	}
	sort.SliceStable(keys, func(i, j int) bool { return keys[i].d < keys[j].d })
	for i, k := range keys {
		n.list[i] = k.e
	}
}

// distanceTo reads live distance; unreadable positions sort last
func (n *Navigator) distanceTo(e entity.Navigable) float64 {
	obs, haveObs := n.observer()
	if !haveObs {
		return math.Inf(1)
	}
	pos, ok := e.Position()
	if !ok {
		return math.Inf(1)
	}
	dx := pos.X - obs.X
	dy := pos.Y - obs.Y
	return math.Sqrt(dx*dx + dy*dy)
}
