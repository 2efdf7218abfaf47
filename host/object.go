// Package host declares the query surfaces this module consumes from the
// running game: world objects, collision, pathfinding and speech output.
// The game side implements these; SimWorld provides a scriptable stand-in
// for tests and sandboxes.
package host

import "github.com/lixenwraith/tile-sonar/geom"

// Kind is the host-side type tag of a world object
type Kind int

const (
	KindUnknown Kind = iota

	// Navigable kinds
	KindChest
	KindNPC
	KindMapExit
	KindSavePoint
	KindDoor
	KindEvent
	KindTeleport
	KindVehicle
	KindBarrier
	KindHazard

	// Decorative kinds, invisible to navigation
	KindEffectMarker
	KindScreenEffect
	KindAreaConstraint
	KindDecoration
)

// Object is a non-owning handle to a live world object
// The underlying object can be destroyed by the host at any moment, so
// Position reports ok=false rather than erroring when the read fails
type Object interface {
	// ID is stable for the object's lifetime and unique within the world
	ID() uint64

	Kind() Kind

	// Position reads the live world position; ok=false means the object
	// is gone or unreadable this instant
	Position() (geom.Point, bool)

	// Active reports whether the object participates in the world
	Active() bool

	// Parent returns the containment parent, nil at the hierarchy root
	Parent() Object

	// Label is the host's display name, may be empty
	Label() string

	// Flag reads a named boolean property, false when absent
	Flag(name string) bool

	// Attr reads a named integer property, 0 when absent
	Attr(name string) int
}
