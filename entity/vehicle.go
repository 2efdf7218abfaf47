package entity

import (
	"github.com/lixenwraith/tile-sonar/constant"
	"github.com/lixenwraith/tile-sonar/host"
)

// Transportation type ids as reported by the host
var transportNames = map[int]string{
	1: "Boat",
	2: "Ship",
	3: "Airship",
}

// Vehicle is a boardable transport
type Vehicle struct {
	base
}

func NewVehicle(obj host.Object) *Vehicle {
	return &Vehicle{base{obj: obj, category: CategoryVehicles, priority: constant.PriorityVehicle}}
}

func (v *Vehicle) Blocking() bool    { return true }
func (v *Vehicle) Interactive() bool { return true }
func (v *Vehicle) TypeLabel() string { return "vehicle" }

func (v *Vehicle) Name() string {
	if v.obj != nil {
		if name, ok := transportNames[v.obj.Attr("transport")]; ok {
			return name
		}
	}
	return "Vehicle"
}

func (v *Vehicle) Sound() SoundProfile {
	return Loop("vehicle.wav", constant.EntityAudioRange)
}
