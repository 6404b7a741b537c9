package layout

import (
	"reflect"
	"slices"
	"testing"
)

func TestSelectFallback(t *testing.T) {
	cfg := DefaultConfig()
	in := items("r", "a", "b")
	links := []Link{link("r", "a"), link("a", "b")}
	want := Hierarchy(in, links, cfg)

	for _, name := range []string{"", "bogus", "Hierarchy", "COMPACTPEACOCK"} {
		if got := Select(name)(in, links, cfg); !reflect.DeepEqual(got, want) {
			t.Errorf("Select(%q) did not fall back to hierarchy", name)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{
		NameCircular, NameCompactPeacock, NameForce, NameGrid, NameGrouped,
		NameHierarchy, NamePeacock, NameSpread, NameStar, NameTimeline, NameTree,
	}
	if !slices.Equal(names, want) {
		t.Errorf("Names() = %v, want %v", names, want)
	}
	for _, n := range names {
		if !Known(n) {
			t.Errorf("Known(%q) = false", n)
		}
	}
	if Known("bogus") {
		t.Error(`Known("bogus") = true`)
	}
}

func TestSelectSeeded(t *testing.T) {
	cfg := DefaultConfig()
	in := items("a", "b", "c")
	a := SelectSeeded(NameForce, 11)(in, nil, cfg)
	b := SelectSeeded(NameForce, 11)(in, nil, cfg)
	if !reflect.DeepEqual(a, b) {
		t.Error("seeded force differs between calls")
	}

	g := SelectSeeded(NameGrid, 11)(in, nil, cfg)
	if !reflect.DeepEqual(g, Grid(in, nil, cfg)) {
		t.Error("seed changed a deterministic layout")
	}
}

func TestDeterministic(t *testing.T) {
	tests := []struct {
		name string
		seed uint64
		want bool
	}{
		{NameForce, 0, false},
		{NameForce, 5, true},
		{NameGrid, 0, true},
		{"bogus", 0, true},
	}
	for _, tt := range tests {
		if got := Deterministic(tt.name, tt.seed); got != tt.want {
			t.Errorf("Deterministic(%q, %d) = %v, want %v", tt.name, tt.seed, got, tt.want)
		}
	}
}
