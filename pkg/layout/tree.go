package layout

// Tree is a tidy-tree layout over the same forest as Hierarchy. Leaves take
// consecutive columns NodeSpacingX apart and every parent is centered over
// the mean X of its children. Items never reached from a root are appended
// to the right of all trees on the top row.
func Tree(items []Item, links []Link, cfg Config) Positions {
	items = distinct(items)
	if len(items) == 0 {
		return Positions{}
	}

	f := buildForest(items, links)
	pl := newPlacement(len(items))
	t := &treeWalk{
		forest:  f,
		cfg:     cfg,
		pl:      pl,
		visited: make(map[ID]bool, len(items)),
	}
	for _, root := range f.roots {
		t.place(root)
	}

	for _, it := range items {
		if !t.visited[it.ID] {
			pl.set(it.ID, t.cursor, 0)
			t.cursor += cfg.NodeSpacingX
		}
	}
	return pl.finish(cfg)
}

type treeWalk struct {
	forest  forest
	cfg     Config
	pl      *placement
	visited map[ID]bool
	cursor  float64
}

// treeFrame is a parent waiting for the X of its pending children.
type treeFrame struct {
	id      ID
	depth   int
	pending []ID
	xs      []float64
}

// open marks id visited and either places it as a leaf, returning its X, or
// returns a frame for its unvisited children.
func (t *treeWalk) open(id ID, depth int) (float64, *treeFrame) {
	t.visited[id] = true

	var pending []ID
	for _, c := range t.forest.children[id] {
		if !t.visited[c] {
			pending = append(pending, c)
		}
	}
	if len(pending) == 0 {
		x := t.cursor
		t.pl.set(id, x, float64(depth)*t.cfg.NodeSpacingY)
		t.cursor += t.cfg.NodeSpacingX
		return x, nil
	}
	return 0, &treeFrame{id: id, depth: depth, pending: pending, xs: make([]float64, 0, len(pending))}
}

// place lays out the subtree under root in post-order. A child that an
// earlier sibling's subtree already claimed counts as X 0 in its parent's
// mean.
func (t *treeWalk) place(root ID) {
	if t.visited[root] {
		return
	}
	_, f := t.open(root, 0)
	if f == nil {
		return
	}

	stack := []*treeFrame{f}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if len(top.xs) == len(top.pending) {
			x := mean(top.xs)
			t.pl.set(top.id, x, float64(top.depth)*t.cfg.NodeSpacingY)
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.xs = append(parent.xs, x)
			}
			continue
		}

		child := top.pending[len(top.xs)]
		if t.visited[child] {
			top.xs = append(top.xs, 0)
			continue
		}
		x, cf := t.open(child, top.depth+1)
		if cf == nil {
			top.xs = append(top.xs, x)
		} else {
			stack = append(stack, cf)
		}
	}
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
