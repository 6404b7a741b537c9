package layout

import "math"

// defaultGroup collects items with an empty Type.
const defaultGroup = "other"

// Grouped clusters items by Type. Group centers sit on an outer ring in
// order of first appearance; a lone member sits on its center and larger
// groups form a small ring around it.
func Grouped(items []Item, _ []Link, cfg Config) Positions {
	items = distinct(items)
	if len(items) == 0 {
		return Positions{}
	}

	var order []string
	groups := make(map[string][]Item)
	for _, it := range items {
		key := it.Type
		if key == "" {
			key = defaultGroup
		}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], it)
	}

	sf := cfg.SpacingFactor()
	groupRadius := math.Max(400, float64(len(order))*120) * sf

	pl := newPlacement(len(items))
	for gi, key := range order {
		cx, cy := ringPoint(0, 0, groupRadius, gi, len(order), topOffset)
		members := groups[key]
		if len(members) == 1 {
			pl.set(members[0].ID, cx, cy)
			continue
		}

		inner := math.Max(100, float64(len(members))*60/(2*math.Pi)) * sf
		for i, it := range members {
			x, y := ringPoint(cx, cy, inner, i, len(members), 0)
			pl.set(it.ID, x, y)
		}
	}
	return pl.finish(cfg)
}
