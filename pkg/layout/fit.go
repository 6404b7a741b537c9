package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Fit computes the zoom and pan that center p inside a width x height
// viewport. The bounding box covers whole node boxes and is padded by
// FitPadding on every side. Zoom is clamped to [MinZoom, FitMaxZoom], so small
// charts are never blown up past FitMaxZoom. An empty map yields the
// identity transform.
func Fit(p Positions, width, height float64, cfg Config) Transform {
	if len(p) == 0 {
		return Transform{Zoom: 1}
	}

	box := bounds(p, cfg)
	size := r2.Sub(box.Max, box.Min)
	contentW := size.X + 2*cfg.FitPadding
	contentH := size.Y + 2*cfg.FitPadding

	zoom := math.Min(width/contentW, height/contentH)
	zoom = math.Max(cfg.MinZoom, math.Min(zoom, cfg.FitMaxZoom))

	center := r2.Scale(0.5, r2.Add(box.Min, box.Max))
	return Transform{
		Zoom: zoom,
		PanX: width/2 - center.X*zoom,
		PanY: height/2 - center.Y*zoom,
	}
}

// bounds returns the box enclosing every node of p.
func bounds(p Positions, cfg Config) r2.Box {
	box := r2.Box{
		Min: r2.Vec{X: math.Inf(1), Y: math.Inf(1)},
		Max: r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, pos := range p {
		box.Min.X = math.Min(box.Min.X, pos.X)
		box.Min.Y = math.Min(box.Min.Y, pos.Y)
		box.Max.X = math.Max(box.Max.X, pos.X+cfg.NodeWidth)
		box.Max.Y = math.Max(box.Max.Y, pos.Y+cfg.NodeHeight)
	}
	return box
}
