package layout_test

import (
	"fmt"

	"github.com/matzehuels/linkchart/pkg/layout"
)

func ExampleGrid() {
	items := []layout.Item{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	pos := layout.Grid(items, nil, layout.DefaultConfig())

	for _, id := range []layout.ID{"a", "b", "c", "d"} {
		fmt.Printf("%s: (%.0f, %.0f)\n", id, pos[id].X, pos[id].Y)
	}
	// Output:
	// a: (-110, 0)
	// b: (110, 0)
	// c: (-110, 140)
	// d: (110, 140)
}

func ExampleSelect() {
	items := []layout.Item{{ID: "root"}, {ID: "child"}}
	links := []layout.Link{{From: "root", To: "child"}}

	// Unknown names fall back to the hierarchy layout.
	pos := layout.Select("no-such-layout")(items, links, layout.DefaultConfig())
	fmt.Println(pos["root"], pos["child"])
	// Output: {0 0} {0 140}
}

func ExampleFit() {
	cfg := layout.DefaultConfig()
	pos := layout.Positions{"only": {X: 0, Y: 0}}

	tr := layout.Fit(pos, 1000, 1000, cfg)
	fmt.Printf("zoom=%.1f pan=(%.0f, %.0f)\n", tr.Zoom, tr.PanX, tr.PanY)
	// Output: zoom=1.5 pan=(380, 440)
}
