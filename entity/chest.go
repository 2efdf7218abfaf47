package entity

import (
	"github.com/lixenwraith/tile-sonar/constant"
	"github.com/lixenwraith/tile-sonar/host"
)

// Chest is a lootable container
// Opened chests go silent and stop being interactive but stay in the
// world, so they remain visible to the navigator as inert landmarks
type Chest struct {
	base
}

// NewChest wraps a chest object
func NewChest(obj host.Object) *Chest {
	return &Chest{base{obj: obj, category: CategoryChests, priority: constant.PriorityChest}}
}

// Opened reads the live opened flag
func (c *Chest) Opened() bool {
	return c.obj != nil && c.obj.Flag("opened")
}

func (c *Chest) Blocking() bool    { return true }
func (c *Chest) Interactive() bool { return !c.Opened() }
func (c *Chest) TypeLabel() string { return "chest" }

func (c *Chest) Name() string {
	if l := c.obj.Label(); l != "" {
		return l
	}
	return "Chest"
}

func (c *Chest) Sound() SoundProfile {
	if c.Opened() {
		return Silent
	}
	return Loop("chest.wav", constant.EntityAudioRange)
}
