package navigation

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tile-sonar/entity"
	"github.com/lixenwraith/tile-sonar/path"
)

// Timing decides when a filter runs: once when an entity joins the list,
// on every cycle step, or both
type Timing int

const (
	TimingOnAdd Timing = iota
	TimingOnCycle
	TimingAll
)

// Filter gates entities in and out of the navigable list
type Filter interface {
	Name() string
	Timing() Timing
	Enabled() bool
	Passes(e entity.Navigable) bool
}

// runFilter invokes a filter defensively: a panicking filter counts as a
// fail for this candidate instead of taking the pipeline down
func runFilter(f Filter, e entity.Navigable, log zerolog.Logger) (passed bool) {
	defer func() {
		if r := recover(); r != nil {
			passed = false
			log.Warn().Str("filter", f.Name()).Interface("panic", r).
				Msg("filter panicked, treating candidate as filtered out")
		}
	}()
	return f.Passes(e)
}

// CategoryFilter keeps only entities of the target category
// Non-interactive categories never pass, whatever the target
type CategoryFilter struct {
	target entity.Category
}

// NewCategoryFilter creates the filter with an initial target
func NewCategoryFilter(target entity.Category) *CategoryFilter {
	return &CategoryFilter{target: target}
}

// SetTarget retargets the filter; the navigator rebuilds afterwards
func (f *CategoryFilter) SetTarget(c entity.Category) { f.target = c }

// Target returns the current target category
func (f *CategoryFilter) Target() entity.Category { return f.target }

func (f *CategoryFilter) Name() string   { return "category" }
func (f *CategoryFilter) Timing() Timing { return TimingOnAdd }
func (f *CategoryFilter) Enabled() bool  { return true }

func (f *CategoryFilter) Passes(e entity.Navigable) bool {
	if !e.Category().Interactive() {
		return false
	}
	return f.target == entity.CategoryAll || e.Category() == f.target
}

// ReachabilityFilter keeps only entities the pathfinder can currently
// reach from the observer
// OnCycle timing: reachability shifts as the world changes, and the check
// is too expensive to run on every list insert
type ReachabilityFilter struct {
	adapter  *path.Adapter
	observer entity.ObserverFunc
	enabled  bool
}

// NewReachabilityFilter creates the filter, enabled by default
func NewReachabilityFilter(adapter *path.Adapter, observer entity.ObserverFunc) *ReachabilityFilter {
	return &ReachabilityFilter{adapter: adapter, observer: observer, enabled: true}
}

// SetEnabled toggles the filter without touching the base list
func (f *ReachabilityFilter) SetEnabled(v bool) { f.enabled = v }

func (f *ReachabilityFilter) Name() string   { return "reachability" }
func (f *ReachabilityFilter) Timing() Timing { return TimingOnCycle }
func (f *ReachabilityFilter) Enabled() bool  { return f.enabled }

func (f *ReachabilityFilter) Passes(e entity.Navigable) bool {
	obs, haveObs := f.observer()
	if !haveObs {
		return false
	}
	pos, ok := e.Position()
	if !ok {
		return false
	}
	return f.adapter.FindPath(obs, pos).Success
}
