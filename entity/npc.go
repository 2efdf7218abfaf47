package entity

import (
	"github.com/lixenwraith/tile-sonar/constant"
	"github.com/lixenwraith/tile-sonar/host"
)

// NPC movement behaviors as reported by the host
const (
	MoveFixed = iota
	MoveRandom
	MoveApproach
	MoveRoute
)

// NPC is a character on the map
type NPC struct {
	base
	knownName string
}

// NewNPC wraps a character object; knownName overrides the host label
// when the recognizer identified the character, empty otherwise
func NewNPC(obj host.Object, knownName string) *NPC {
	return &NPC{
		base:      base{obj: obj, category: CategoryNPCs, priority: constant.PriorityNPC},
		knownName: knownName,
	}
}

// Shop reports whether talking to this character opens a shop
func (n *NPC) Shop() bool {
	return n.obj != nil && n.obj.Flag("shop")
}

// Movement returns the host movement behavior
func (n *NPC) Movement() int {
	if n.obj == nil {
		return MoveFixed
	}
	return n.obj.Attr("movement")
}

func (n *NPC) Blocking() bool    { return true }
func (n *NPC) Interactive() bool { return true }

func (n *NPC) TypeLabel() string {
	if n.Shop() {
		return "shopkeeper"
	}
	return "character"
}

func (n *NPC) Name() string {
	if n.knownName != "" {
		return n.knownName
	}
	return n.label()
}

func (n *NPC) Sound() SoundProfile {
	return Loop("npc.wav", constant.EntityAudioRange)
}
