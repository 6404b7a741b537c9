package layout

import "slices"

// timelineBands is the number of staggered rows adjacent labels cycle through.
const timelineBands = 3

// Timeline lays items out left to right in time order. Items with a
// timestamp come first, oldest to newest; items without one follow in input
// order. Consecutive items are staggered over three bands half a vertical
// spacing apart.
func Timeline(items []Item, _ []Link, cfg Config) Positions {
	items = distinct(items)
	if len(items) == 0 {
		return Positions{}
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, compareTimestamps)

	pl := newPlacement(len(sorted))
	for i, it := range sorted {
		pl.set(it.ID, float64(i)*cfg.NodeSpacingX, float64(i%timelineBands)*cfg.NodeSpacingY*0.5)
	}
	return pl.finish(cfg)
}

func compareTimestamps(a, b Item) int {
	switch {
	case a.Timestamp == nil && b.Timestamp == nil:
		return 0
	case a.Timestamp == nil:
		return 1
	case b.Timestamp == nil:
		return -1
	default:
		return a.Timestamp.Compare(*b.Timestamp)
	}
}
