package entity

import "github.com/lixenwraith/tile-sonar/host"

// denied lists host kinds that are decorative or physics-only noise and
// must never surface in navigation
var denied = map[host.Kind]bool{
	host.KindEffectMarker:   true,
	host.KindScreenEffect:   true,
	host.KindAreaConstraint: true,
	host.KindDecoration:     true,
}

// Factory classifies raw host objects into navigable entities
type Factory struct {
	resolveMap func(id int) string
	knownNames map[string]string
}

// NewFactory creates a factory
// resolveMap turns destination map ids into names and may be nil;
// knownNames maps host labels to recognized character names
func NewFactory(resolveMap func(id int) string, knownNames map[string]string) *Factory {
	return &Factory{resolveMap: resolveMap, knownNames: knownNames}
}

// Classify wraps a host object, or returns nil for objects invisible to
// navigation (inactive, destroyed, denied kinds)
// Unrecognized kinds classify as generic events rather than vanishing
func (f *Factory) Classify(obj host.Object) Navigable {
	if obj == nil || !obj.Active() {
		return nil
	}
	if _, ok := obj.Position(); !ok {
		return nil
	}
	if denied[obj.Kind()] {
		return nil
	}

	switch obj.Kind() {
	case host.KindChest:
		return NewChest(obj)
	case host.KindNPC:
		return NewNPC(obj, f.knownNames[obj.Label()])
	case host.KindMapExit:
		return NewMapExit(obj, f.resolveMap)
	case host.KindSavePoint:
		return NewSavePoint(obj)
	case host.KindDoor:
		return NewDoorTrigger(obj)
	case host.KindTeleport:
		return NewTeleport(obj)
	case host.KindVehicle:
		return NewVehicle(obj)
	case host.KindBarrier:
		return NewBarrier(obj)
	case host.KindHazard:
		return NewHazard(obj)
	default:
		return NewEvent(obj)
	}
}
