package entity

import (
	"math"

	"github.com/lixenwraith/tile-sonar/geom"
	"github.com/lixenwraith/tile-sonar/host"
)

// ObserverFunc supplies the current observer position
// ok=false means no observer is available (e.g. between maps)
type ObserverFunc func() (geom.Point, bool)

// Group collapses several same-category entities into one logical target
// It is a live view: every property delegates to whichever member is
// currently nearest the observer, re-selected on each access
type Group struct {
	members  []Navigable
	category Category
	observer ObserverFunc
}

// NewGroup creates an empty group bound to an observer source
func NewGroup(observer ObserverFunc) *Group {
	return &Group{observer: observer}
}

// Add appends a member; the first member fixes the group's category and
// later mismatching adds are refused
func (g *Group) Add(e Navigable) bool {
	if len(g.members) == 0 {
		g.category = e.Category()
	} else if e.Category() != g.category {
		return false
	}
	g.members = append(g.members, e)
	return true
}

// Remove drops a member by identity, reporting whether it was present
func (g *Group) Remove(e Navigable) bool {
	for i, m := range g.members {
		if m == e {
			g.members = append(g.members[:i], g.members[i+1:]...)
			return true
		}
	}
	return false
}

// Members returns the insertion-ordered member slice
func (g *Group) Members() []Navigable { return g.members }

// Len returns the member count
func (g *Group) Len() int { return len(g.members) }

// Contains reports whether any member wraps the given host object
func (g *Group) Contains(obj host.Object) bool {
	for _, m := range g.members {
		if m.Host() == obj {
			return true
		}
	}
	return false
}

// representative picks the member nearest the observer, preferring
// members with a readable position; nil only when the group is empty
func (g *Group) representative() Navigable {
	if len(g.members) == 0 {
		return nil
	}

	obs, haveObs := geom.Point{}, false
	if g.observer != nil {
		obs, haveObs = g.observer()
	}
	if !haveObs {
		return g.members[0]
	}

	var best Navigable
	bestDist := math.Inf(1)
	for _, m := range g.members {
		pos, ok := m.Position()
		if !ok {
			continue
		}
		if d := geom.Dist(obs, pos); d < bestDist {
			best = m
			bestDist = d
		}
	}
	if best == nil {
		return g.members[0]
	}
	return best
}

func (g *Group) Host() host.Object {
	if r := g.representative(); r != nil {
		return r.Host()
	}
	return nil
}

func (g *Group) Category() Category { return g.category }

func (g *Group) Priority() int {
	if r := g.representative(); r != nil {
		return r.Priority()
	}
	return 0
}

func (g *Group) Blocking() bool {
	if r := g.representative(); r != nil {
		return r.Blocking()
	}
	return false
}

func (g *Group) Interactive() bool {
	if r := g.representative(); r != nil {
		return r.Interactive()
	}
	return false
}

func (g *Group) Position() (geom.Point, bool) {
	if r := g.representative(); r != nil {
		return r.Position()
	}
	return geom.Point{}, false
}

func (g *Group) Name() string {
	if r := g.representative(); r != nil {
		return r.Name()
	}
	return "Unknown"
}

func (g *Group) TypeLabel() string {
	if r := g.representative(); r != nil {
		return r.TypeLabel()
	}
	return "group"
}

func (g *Group) Sound() SoundProfile {
	if r := g.representative(); r != nil {
		return r.Sound()
	}
	return Silent
}
