package layout

import "slices"

// degrees counts links per item, one for each endpoint that is a known item.
func degrees(items []Item, links []Link) map[ID]int {
	known := indexOf(items)
	deg := make(map[ID]int, len(items))
	for _, l := range links {
		if known[l.From] {
			deg[l.From]++
		}
		if known[l.To] {
			deg[l.To]++
		}
	}
	return deg
}

// hub returns the item with the strictly greatest degree, the first item
// winning ties (including the all-zero case).
func hub(items []Item, deg map[ID]int) Item {
	center := items[0]
	best := 0
	for _, it := range items {
		if deg[it.ID] > best {
			best = deg[it.ID]
			center = it
		}
	}
	return center
}

// Peacock centers the best-connected item, puts its direct neighbours on an
// inner ring and everything else on an outer ring.
func Peacock(items []Item, links []Link, cfg Config) Positions {
	items = distinct(items)
	if len(items) == 0 {
		return Positions{}
	}

	center := hub(items, degrees(items, links))

	neighbour := make(map[ID]bool)
	for _, l := range links {
		if l.From == center.ID {
			neighbour[l.To] = true
		}
		if l.To == center.ID {
			neighbour[l.From] = true
		}
	}

	var inner, outer []ID
	for _, it := range items {
		if it.ID == center.ID {
			continue
		}
		if neighbour[it.ID] {
			inner = append(inner, it.ID)
		} else {
			outer = append(outer, it.ID)
		}
	}

	sf := cfg.SpacingFactor()
	pl := newPlacement(len(items))
	pl.set(center.ID, 0, 0)
	for i, id := range inner {
		x, y := ringPoint(0, 0, 250*sf, i, len(inner), topOffset)
		pl.set(id, x, y)
	}
	for i, id := range outer {
		x, y := ringPoint(0, 0, 450*sf, i, len(outer), topOffset)
		pl.set(id, x, y)
	}
	return pl.finish(cfg)
}

// adjacency is an undirected neighbour list that keeps first-insertion
// order and drops repeats.
type adjacency struct {
	next map[ID][]ID
	seen map[[2]ID]bool
}

func buildAdjacency(items []Item, links []Link) adjacency {
	known := indexOf(items)
	adj := adjacency{
		next: make(map[ID][]ID, len(items)),
		seen: make(map[[2]ID]bool),
	}
	for _, l := range links {
		if !known[l.From] || !known[l.To] {
			continue
		}
		adj.add(l.From, l.To)
		adj.add(l.To, l.From)
	}
	return adj
}

func (a adjacency) add(from, to ID) {
	key := [2]ID{from, to}
	if a.seen[key] {
		return
	}
	a.seen[key] = true
	a.next[from] = append(a.next[from], to)
}

// CompactPeacock arranges items in concentric tiers by breadth-first
// distance from the best-connected item. Within a tier, members with more
// links into the previous tier come first so they land next to each other,
// which keeps edge crossings down. Items in other components share one
// final tier.
func CompactPeacock(items []Item, links []Link, cfg Config) Positions {
	items = distinct(items)
	if len(items) == 0 {
		return Positions{}
	}

	deg := degrees(items, links)
	adj := buildAdjacency(items, links)

	byDegree := slices.Clone(items)
	slices.SortStableFunc(byDegree, func(a, b Item) int {
		return deg[b.ID] - deg[a.ID]
	})
	center := byDegree[0].ID

	placed := map[ID]bool{center: true}
	tiers := [][]ID{{center}}
	for len(placed) < len(items) {
		var tier []ID
		for _, id := range tiers[len(tiers)-1] {
			for _, n := range adj.next[id] {
				if !placed[n] {
					placed[n] = true
					tier = append(tier, n)
				}
			}
		}
		if len(tier) == 0 {
			for _, it := range items {
				if !placed[it.ID] {
					placed[it.ID] = true
					tier = append(tier, it.ID)
				}
			}
		}
		tiers = append(tiers, tier)
	}

	sf := cfg.SpacingFactor()
	pl := newPlacement(len(items))
	pl.set(center, 0, 0)
	for k := 1; k < len(tiers); k++ {
		prev := make(map[ID]bool, len(tiers[k-1]))
		for _, id := range tiers[k-1] {
			prev[id] = true
		}
		inner := func(id ID) int {
			n := 0
			for _, nb := range adj.next[id] {
				if prev[nb] {
					n++
				}
			}
			return n
		}

		tier := tiers[k]
		slices.SortStableFunc(tier, func(a, b ID) int {
			return inner(b) - inner(a)
		})

		radius := (120 + float64(k)*100) * sf
		for i, id := range tier {
			x, y := ringPoint(0, 0, radius, i, len(tier), topOffset)
			pl.set(id, x, y)
		}
	}
	return pl.finish(cfg)
}
