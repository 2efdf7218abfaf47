package entity

import (
	"github.com/lixenwraith/tile-sonar/constant"
	"github.com/lixenwraith/tile-sonar/host"
)

// MapExit leads to another map
type MapExit struct {
	base
	resolve func(id int) string
}

// NewMapExit wraps an exit object; resolve turns the destination map id
// into a display name and may be nil
func NewMapExit(obj host.Object, resolve func(id int) string) *MapExit {
	return &MapExit{
		base:    base{obj: obj, category: CategoryMapExits, priority: constant.PriorityMapExit},
		resolve: resolve,
	}
}

// Destination returns the target map id
func (m *MapExit) Destination() int {
	if m.obj == nil {
		return 0
	}
	return m.obj.Attr("destination")
}

func (m *MapExit) Blocking() bool    { return false }
func (m *MapExit) Interactive() bool { return true }
func (m *MapExit) TypeLabel() string { return "exit" }

func (m *MapExit) Name() string {
	if m.resolve != nil {
		if name := m.resolve(m.Destination()); name != "" {
			return "Exit to " + name
		}
	}
	return "Exit"
}

func (m *MapExit) Sound() SoundProfile {
	return Loop("exit.wav", constant.EntityAudioRange)
}
