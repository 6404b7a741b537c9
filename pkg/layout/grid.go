package layout

import "math"

// Grid fills a near-square grid row by row, centered on X around 0.
func Grid(items []Item, _ []Link, cfg Config) Positions {
	items = distinct(items)
	if len(items) == 0 {
		return Positions{}
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(items)))))
	offset := float64(cols-1) * cfg.NodeSpacingX / 2

	pl := newPlacement(len(items))
	for i, it := range items {
		col, row := i%cols, i/cols
		pl.set(it.ID, float64(col)*cfg.NodeSpacingX-offset, float64(row)*cfg.NodeSpacingY)
	}
	return pl.finish(cfg)
}
