package entity

import (
	"github.com/lixenwraith/tile-sonar/constant"
	"github.com/lixenwraith/tile-sonar/host"
)

// SavePoint is a save trigger
type SavePoint struct {
	base
}

func NewSavePoint(obj host.Object) *SavePoint {
	return &SavePoint{base{obj: obj, category: CategoryEvents, priority: constant.PrioritySavePoint}}
}

func (s *SavePoint) Blocking() bool    { return false }
func (s *SavePoint) Interactive() bool { return true }
func (s *SavePoint) TypeLabel() string { return "save point" }
func (s *SavePoint) Name() string      { return "Save point" }

func (s *SavePoint) Sound() SoundProfile {
	return Loop("save.wav", constant.EntityAudioRange)
}

// DoorTrigger is an openable door tile
type DoorTrigger struct {
	base
}

func NewDoorTrigger(obj host.Object) *DoorTrigger {
	return &DoorTrigger{base{obj: obj, category: CategoryEvents, priority: constant.PriorityDoor}}
}

// Open reads the live door state
func (d *DoorTrigger) Open() bool {
	return d.obj != nil && d.obj.Flag("open")
}

func (d *DoorTrigger) Blocking() bool    { return !d.Open() }
func (d *DoorTrigger) Interactive() bool { return true }
func (d *DoorTrigger) TypeLabel() string { return "door" }
func (d *DoorTrigger) Name() string      { return "Door" }

func (d *DoorTrigger) Sound() SoundProfile {
	return Loop("door.wav", constant.EntityAudioRange)
}
