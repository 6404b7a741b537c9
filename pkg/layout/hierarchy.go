package layout

// forest is the parent/child view of a link set shared by the hierarchy and
// tree layouts. Only links between known items contribute.
type forest struct {
	children map[ID][]ID
	roots    []ID
}

func buildForest(items []Item, links []Link) forest {
	known := indexOf(items)
	children := make(map[ID][]ID, len(items))
	hasParent := make(map[ID]bool)
	for _, l := range links {
		if !known[l.From] || !known[l.To] {
			continue
		}
		children[l.From] = append(children[l.From], l.To)
		hasParent[l.To] = true
	}

	var roots []ID
	for _, it := range items {
		if !hasParent[it.ID] {
			roots = append(roots, it.ID)
		}
	}
	// Every item has a parent, so the graph is cyclic; start from the first.
	if len(roots) == 0 && len(items) > 0 {
		roots = []ID{items[0].ID}
	}
	return forest{children: children, roots: roots}
}

// Hierarchy places items in levels by depth from the roots of the link
// forest. A node reached along several paths keeps the depth of the first
// visit; items unreachable from any root share the level below the deepest
// one. Each level is spread on X around 0 and sits at depth*NodeSpacingY.
func Hierarchy(items []Item, links []Link, cfg Config) Positions {
	items = distinct(items)
	if len(items) == 0 {
		return Positions{}
	}

	f := buildForest(items, links)
	levels := assignLevels(f)

	visited := make(map[ID]bool, len(items))
	for _, ids := range levels {
		for _, id := range ids {
			visited[id] = true
		}
	}
	orphanDepth := len(levels)
	for _, it := range items {
		if visited[it.ID] {
			continue
		}
		if len(levels) == orphanDepth {
			levels = append(levels, nil)
		}
		levels[orphanDepth] = append(levels[orphanDepth], it.ID)
	}

	pl := newPlacement(len(items))
	for depth, ids := range levels {
		startX := -float64(len(ids)-1) * cfg.NodeSpacingX / 2
		for i, id := range ids {
			pl.set(id, startX+float64(i)*cfg.NodeSpacingX, float64(depth)*cfg.NodeSpacingY)
		}
	}
	return pl.finish(cfg)
}

// assignLevels walks the forest depth-first from each root in order and
// returns the ids at each depth in visit order.
func assignLevels(f forest) [][]ID {
	type frame struct {
		id    ID
		depth int
	}

	visited := make(map[ID]bool)
	var levels [][]ID
	for _, root := range f.roots {
		stack := []frame{{root, 0}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[top.id] {
				continue
			}
			visited[top.id] = true

			for len(levels) <= top.depth {
				levels = append(levels, nil)
			}
			levels[top.depth] = append(levels[top.depth], top.id)

			kids := f.children[top.id]
			for i := len(kids) - 1; i >= 0; i-- {
				if !visited[kids[i]] {
					stack = append(stack, frame{kids[i], top.depth + 1})
				}
			}
		}
	}
	return levels
}

// Spread is Hierarchy with doubled horizontal and vertical spacing.
func Spread(items []Item, links []Link, cfg Config) Positions {
	return Hierarchy(items, links, cfg.withSpacing(2))
}
