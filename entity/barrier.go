package entity

import (
	"github.com/lixenwraith/tile-sonar/constant"
	"github.com/lixenwraith/tile-sonar/host"
)

// Barrier always blocks and is never interactive; it exists so the sonar
// can tell walls from walkable clutter
type Barrier struct {
	base
}

func NewBarrier(obj host.Object) *Barrier {
	return &Barrier{base{obj: obj, category: CategoryBarriers, priority: constant.PriorityBarrier}}
}

func (b *Barrier) Blocking() bool      { return true }
func (b *Barrier) Interactive() bool   { return false }
func (b *Barrier) TypeLabel() string   { return "barrier" }
func (b *Barrier) Name() string        { return b.label() }
func (b *Barrier) Sound() SoundProfile { return Terrain }

// Hazard is dangerous ground worth announcing but not touching
type Hazard struct {
	base
}

func NewHazard(obj host.Object) *Hazard {
	return &Hazard{base{obj: obj, category: CategoryHazards, priority: constant.PriorityHazard}}
}

func (h *Hazard) Blocking() bool    { return false }
func (h *Hazard) Interactive() bool { return false }
func (h *Hazard) TypeLabel() string { return "hazard" }

func (h *Hazard) Name() string {
	if l := h.obj.Label(); l != "" {
		return l
	}
	return "Hazard"
}

func (h *Hazard) Sound() SoundProfile {
	return Loop("hazard.wav", constant.EntityAudioRange)
}
