package entity

import (
	"github.com/lixenwraith/tile-sonar/constant"
	"github.com/lixenwraith/tile-sonar/host"
)

// Event is a scripted map event; the catch-all variant for anything the
// factory cannot classify more precisely
type Event struct {
	base
	teleport bool
}

// NewEvent wraps a generic event object
func NewEvent(obj host.Object) *Event {
	return &Event{base: base{obj: obj, category: CategoryEvents, priority: constant.PriorityEvent}}
}

// NewTeleport wraps a teleporting event
func NewTeleport(obj host.Object) *Event {
	return &Event{
		base:     base{obj: obj, category: CategoryEvents, priority: constant.PriorityEvent},
		teleport: true,
	}
}

// Teleport reports whether activating the event moves the player
func (e *Event) Teleport() bool { return e.teleport }

func (e *Event) Blocking() bool    { return false }
func (e *Event) Interactive() bool { return true }

func (e *Event) TypeLabel() string {
	if e.teleport {
		return "teleport"
	}
	return "event"
}

func (e *Event) Name() string { return e.label() }

func (e *Event) Sound() SoundProfile {
	if e.teleport {
		return Loop("exit.wav", constant.EntityAudioRange)
	}
	return Silent
}
