package layout

import (
	"fmt"
	"math"
	"testing"
)

func collides(a, b Position, cfg Config) bool {
	return math.Abs(b.X-a.X) < cfg.NodeWidth+cfg.MinNodePadding &&
		math.Abs(b.Y-a.Y) < cfg.NodeHeight+cfg.MinNodePadding
}

func TestResolveOverlapsCoincident(t *testing.T) {
	cfg := DefaultConfig()
	p := Positions{"a": {}, "b": {}}
	ResolveOverlaps(p, cfg)

	// The Y overlap (100) is smaller than the X overlap (180).
	if p["a"] != (Position{X: 0, Y: -51}) || p["b"] != (Position{X: 0, Y: 51}) {
		t.Errorf("got a=%v b=%v", p["a"], p["b"])
	}
}

func TestResolveOverlapsKeepsAxisOrder(t *testing.T) {
	cfg := DefaultConfig()
	p := Positions{"a": {X: 0, Y: 0}, "b": {X: -170, Y: 0}}
	ResolveOverlaps(p, cfg)

	if p["a"].X != 6 || p["b"].X != -176 {
		t.Errorf("got a=%v b=%v", p["a"], p["b"])
	}
	if p["a"].Y != 0 || p["b"].Y != 0 {
		t.Errorf("Y changed: a=%v b=%v", p["a"], p["b"])
	}
}

func TestResolveOverlapsLeavesSeparatedAlone(t *testing.T) {
	cfg := DefaultConfig()
	p := Positions{"a": {X: 0, Y: 0}, "b": {X: 180, Y: 0}, "c": {X: 0, Y: 100}}
	want := Positions{"a": p["a"], "b": p["b"], "c": p["c"]}
	if passes := resolveOverlaps(p, []ID{"a", "b", "c"}, cfg); passes != 1 {
		t.Errorf("passes = %d, want 1", passes)
	}
	for id, pos := range want {
		if p[id] != pos {
			t.Errorf("%s moved to %v", id, p[id])
		}
	}
}

func TestResolveOverlapsBounded(t *testing.T) {
	cfg := DefaultConfig()
	p := make(Positions)
	order := make([]ID, 0, 40)
	for i := range 40 {
		id := ID(fmt.Sprint(i))
		p[id] = Position{}
		order = append(order, id)
	}

	passes := resolveOverlaps(p, order, cfg)
	if passes > maxOverlapPasses {
		t.Fatalf("passes = %d, want <= %d", passes, maxOverlapPasses)
	}
	if len(p) != 40 {
		t.Errorf("len = %d, want 40", len(p))
	}
}

func TestResolveOverlapsConverged(t *testing.T) {
	cfg := DefaultConfig()
	p := Positions{
		"a": {X: 0, Y: 0},
		"b": {X: 30, Y: 10},
		"c": {X: 60, Y: -20},
		"d": {X: 500, Y: 500},
	}
	order := []ID{"a", "b", "c", "d"}
	passes := resolveOverlaps(p, order, cfg)
	if passes >= maxOverlapPasses {
		t.Skipf("did not converge in %d passes", passes)
	}
	for i := range order {
		for j := i + 1; j < len(order); j++ {
			if collides(p[order[i]], p[order[j]], cfg) {
				t.Errorf("%s and %s still overlap: %v %v", order[i], order[j], p[order[i]], p[order[j]])
			}
		}
	}
}

func TestResolveOverlapsEmpty(t *testing.T) {
	p := ResolveOverlaps(Positions{}, DefaultConfig())
	if len(p) != 0 {
		t.Errorf("got %v", p)
	}
}
