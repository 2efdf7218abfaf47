package constant

import "time"

// World Grid
const (
	// TileSize is the width of one map tile in world units
	TileSize = 16.0
)

// Entity Cache
const (
	// ScanInterval is the minimum time between cache reconciliation passes
	ScanInterval = 1 * time.Second

	// MapTransitionSettle is the recommended delay before a forced rescan
	// after a map change, applied by the host integration, not the cache
	MapTransitionSettle = 500 * time.Millisecond
)

// Entity Priorities (lower = announced first on shared tiles)
const (
	PriorityChest     = 1
	PriorityNPC       = 2
	PriorityVehicle   = 3
	PriorityMapExit   = 4
	PrioritySavePoint = 5
	PriorityDoor      = 6
	PriorityEvent     = 7
	PriorityHazard    = 8
	PriorityBarrier   = 9
)

// Pathfinding
const (
	// PathMaxDepth is the deepest collision layer tried before the
	// shallower-layer ladder kicks in
	PathMaxDepth = 3

	// PathMergeTolerance is the angular slack (radians) under which
	// consecutive waypoint segments merge into one spoken run
	PathMergeTolerance = 0.26
)
