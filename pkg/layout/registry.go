package layout

import (
	"maps"
	"slices"
)

// Func is a layout strategy: a pure function from items, links and config
// to a fresh position map with one entry per distinct item id.
type Func func(items []Item, links []Link, cfg Config) Positions

// Strategy names accepted by Select.
const (
	NameHierarchy      = "hierarchy"
	NameCircular       = "circular"
	NameGrouped        = "grouped"
	NamePeacock        = "peacock"
	NameCompactPeacock = "compactPeacock"
	NameGrid           = "grid"
	NameForce          = "force"
	NameTimeline       = "timeline"
	NameStar           = "star"
	NameTree           = "tree"
	NameSpread         = "spread"
)

// DefaultName is the strategy used for empty or unknown names.
const DefaultName = NameHierarchy

var strategies = map[string]Func{
	NameHierarchy:      Hierarchy,
	NameCircular:       Circular,
	NameGrouped:        Grouped,
	NamePeacock:        Peacock,
	NameCompactPeacock: CompactPeacock,
	NameGrid:           Grid,
	NameForce:          Force,
	NameTimeline:       Timeline,
	NameStar:           Star,
	NameTree:           Tree,
	NameSpread:         Spread,
}

// Select returns the strategy registered under name, or Hierarchy when the
// name is empty or unknown. It never fails.
func Select(name string) Func {
	if fn, ok := strategies[name]; ok {
		return fn
	}
	return strategies[DefaultName]
}

// SelectSeeded is Select with the force layout pinned to seed. A zero seed
// keeps the nondeterministic default.
func SelectSeeded(name string, seed uint64) Func {
	if name == NameForce && seed != 0 {
		return NewForce(seed)
	}
	return Select(name)
}

// Known reports whether name is registered, letting callers warn before
// Select falls back to Hierarchy.
func Known(name string) bool {
	_, ok := strategies[name]
	return ok
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(strategies))
}

// Deterministic reports whether the named strategy always produces the same
// output for the same input. Only an unseeded force layout does not.
func Deterministic(name string, seed uint64) bool {
	return name != NameForce || seed != 0
}
