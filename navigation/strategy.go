package navigation

import (
	"strconv"

	"github.com/lixenwraith/tile-sonar/entity"
)

// GroupingStrategy decides which entities collapse into one logical
// target; returning ok=false leaves the entity ungrouped
type GroupingStrategy interface {
	Name() string
	GroupKey(e entity.Navigable) (key string, ok bool)
}

// ExitDestinationStrategy groups map exits by destination map id, so a
// row of doorways into the same building reads as a single exit
type ExitDestinationStrategy struct{}

func (ExitDestinationStrategy) Name() string { return "exit-destination" }

func (ExitDestinationStrategy) GroupKey(e entity.Navigable) (string, bool) {
	exit, ok := e.(*entity.MapExit)
	if !ok {
		return "", false
	}
	return strconv.Itoa(exit.Destination()), true
}
