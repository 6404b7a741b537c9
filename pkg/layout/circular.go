package layout

import "math"

// topOffset rotates ring slot 0 to twelve o'clock.
const topOffset = -math.Pi / 2

// ringPoint returns slot i of n evenly spaced slots on a circle of radius r
// around (cx, cy), starting at angle offset. n is floored at 1.
func ringPoint(cx, cy, r float64, i, n int, offset float64) (float64, float64) {
	angle := float64(i)/float64(max(n, 1))*2*math.Pi + offset
	return cx + r*math.Cos(angle), cy + r*math.Sin(angle)
}

// Circular places every item on one ring, item 0 at the top and the rest
// clockwise. The ring grows with the item count.
func Circular(items []Item, _ []Link, cfg Config) Positions {
	items = distinct(items)
	if len(items) == 0 {
		return Positions{}
	}

	n := len(items)
	radius := math.Max(200, float64(n)*80/(2*math.Pi)) * cfg.SpacingFactor()

	pl := newPlacement(n)
	for i, it := range items {
		x, y := ringPoint(0, 0, radius, i, n, topOffset)
		pl.set(it.ID, x, y)
	}
	return pl.finish(cfg)
}

// Star puts the first item at the origin and the rest on a fixed ring.
func Star(items []Item, _ []Link, cfg Config) Positions {
	items = distinct(items)
	if len(items) == 0 {
		return Positions{}
	}

	pl := newPlacement(len(items))
	pl.set(items[0].ID, 0, 0)

	outer := items[1:]
	radius := 300 * cfg.SpacingFactor()
	for i, it := range outer {
		x, y := ringPoint(0, 0, radius, i, len(outer), topOffset)
		pl.set(it.ID, x, y)
	}
	return pl.finish(cfg)
}
