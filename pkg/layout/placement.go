package layout

// placement is the per-call arena a strategy writes into. It remembers the
// order in which positions were first set so the overlap pass visits pairs
// in the same order the strategy placed them.
type placement struct {
	pos   Positions
	order []ID
}

func newPlacement(n int) *placement {
	return &placement{
		pos:   make(Positions, n),
		order: make([]ID, 0, n),
	}
}

func (pl *placement) set(id ID, x, y float64) {
	if _, ok := pl.pos[id]; !ok {
		pl.order = append(pl.order, id)
	}
	pl.pos[id] = Position{X: x, Y: y}
}

// finish runs the overlap pass and hands the map to the caller.
func (pl *placement) finish(cfg Config) Positions {
	resolveOverlaps(pl.pos, pl.order, cfg)
	return pl.pos
}

// distinct drops items whose id was already seen, keeping the first.
func distinct(items []Item) []Item {
	seen := make(map[ID]bool, len(items))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	return out
}

// indexOf returns the set of ids present in items.
func indexOf(items []Item) map[ID]bool {
	known := make(map[ID]bool, len(items))
	for _, it := range items {
		known[it.ID] = true
	}
	return known
}
