// Package entity wraps raw host world objects into typed navigable
// entities: a closed variant set with per-type naming, priorities, audio
// profiles and interactivity, plus live-view groups and the classifying
// factory.
package entity

import (
	"fmt"

	"github.com/lixenwraith/tile-sonar/geom"
	"github.com/lixenwraith/tile-sonar/host"
)

// Navigable is a typed view over a live host object
// The host reference never changes, but derived state (position, opened,
// interactivity) is always read live and can report the object as gone
type Navigable interface {
	// Host returns the wrapped object handle
	Host() host.Object

	Category() Category

	// Priority breaks ties when several entities share a tile, lower first
	Priority() int

	// Blocking reports whether the entity obstructs pathing
	Blocking() bool

	// Interactive reports whether the entity currently responds to the
	// player, e.g. an opened chest no longer does
	Interactive() bool

	// Position reads the live world position, ok=false when the host
	// object is gone
	Position() (geom.Point, bool)

	// Name is the display name, "Unknown" when host data is unavailable
	Name() string

	// TypeLabel is the spoken type suffix ("chest", "exit", ...)
	TypeLabel() string

	Sound() SoundProfile
}

// Describe renders the standard spoken form relative to an observer:
// "<name> (<distance> <direction>) - <type>"
// Groups with more than one member get a count suffix
func Describe(e Navigable, observer geom.Point) string {
	pos, ok := e.Position()
	if !ok {
		return fmt.Sprintf("%s (gone) - %s", e.Name(), e.TypeLabel())
	}
	desc := fmt.Sprintf("%s (%s) - %s", e.Name(), geom.FormatRelative(observer, pos), e.TypeLabel())
	if g, isGroup := e.(*Group); isGroup && g.Len() > 1 {
		desc = fmt.Sprintf("%s, %d nearby", desc, g.Len())
	}
	return desc
}

// base carries the pieces every variant shares
type base struct {
	obj      host.Object
	category Category
	priority int
}

func (b *base) Host() host.Object  { return b.obj }
func (b *base) Category() Category { return b.category }
func (b *base) Priority() int      { return b.priority }

func (b *base) Position() (geom.Point, bool) {
	if b.obj == nil || !b.obj.Active() {
		return geom.Point{}, false
	}
	return b.obj.Position()
}

// label returns the host display name with the Unknown fallback
func (b *base) label() string {
	if b.obj == nil {
		return "Unknown"
	}
	if l := b.obj.Label(); l != "" {
		return l
	}
	return "Unknown"
}
