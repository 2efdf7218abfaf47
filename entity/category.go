package entity

// Category classifies navigable entities for filtering and announcements
type Category int

const (
	CategoryAll Category = iota
	CategoryChests
	CategoryNPCs
	CategoryMapExits
	CategoryEvents
	CategoryVehicles
	CategoryBarriers
	CategoryHazards
)

// Categories lists every concrete category in cycle order
var Categories = []Category{
	CategoryChests,
	CategoryNPCs,
	CategoryMapExits,
	CategoryEvents,
	CategoryVehicles,
	CategoryHazards,
	CategoryAll,
}

func (c Category) String() string {
	switch c {
	case CategoryAll:
		return "everything"
	case CategoryChests:
		return "chests"
	case CategoryNPCs:
		return "characters"
	case CategoryMapExits:
		return "exits"
	case CategoryEvents:
		return "events"
	case CategoryVehicles:
		return "vehicles"
	case CategoryBarriers:
		return "barriers"
	case CategoryHazards:
		return "hazards"
	}
	return "unknown"
}

// Interactive reports whether the category participates in navigation
// Barriers exist for the sonar only
func (c Category) Interactive() bool {
	return c != CategoryBarriers
}
