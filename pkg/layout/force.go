package layout

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"
)

// Simulation constants. The iteration count is a hard latency cap.
const (
	forceIterations = 50
	forceRepulsion  = 5000 // scaled by SpacingFactor squared
	forceAttraction = 0.1
	forceDamping    = 0.9
	forceJitter     = 50 // total spread of the initial jitter per axis
)

// Force runs a spring-electrical simulation from a jittered ring. The jitter
// comes from a freshly seeded source, so repeated calls differ; use NewForce
// or ForceWithRand when reproducible output is required.
func Force(items []Item, links []Link, cfg Config) Positions {
	return ForceWithRand(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))(items, links, cfg)
}

// NewForce returns a force layout whose jitter is derived from seed. Equal
// seeds and inputs give equal positions.
func NewForce(seed uint64) Func {
	return func(items []Item, links []Link, cfg Config) Positions {
		return ForceWithRand(rand.New(rand.NewPCG(seed, seed^0xdeadbeef)))(items, links, cfg)
	}
}

// ForceWithRand returns a force layout drawing its jitter from rng. The
// returned function consumes rng, so it must not be shared between
// goroutines.
func ForceWithRand(rng *rand.Rand) Func {
	return func(items []Item, links []Link, cfg Config) Positions {
		return simulate(items, links, cfg, rng)
	}
}

func simulate(items []Item, links []Link, cfg Config, rng *rand.Rand) Positions {
	items = distinct(items)
	if len(items) == 0 {
		return Positions{}
	}

	n := len(items)
	sf := cfg.SpacingFactor()
	index := make(map[ID]int, n)
	for i, it := range items {
		index[it.ID] = i
	}

	pos := make([]r2.Vec, n)
	ringRadius := 200 * sf
	for i := range items {
		x, y := ringPoint(0, 0, ringRadius, i, n, 0)
		pos[i] = r2.Vec{
			X: x + (rng.Float64()-0.5)*forceJitter,
			Y: y + (rng.Float64()-0.5)*forceJitter,
		}
	}

	// Parallel links count once per occurrence, as springs in parallel.
	neighbours := make([][]int, n)
	for _, l := range links {
		from, okF := index[l.From]
		to, okT := index[l.To]
		if !okF || !okT {
			continue
		}
		neighbours[from] = append(neighbours[from], to)
		neighbours[to] = append(neighbours[to], from)
	}

	repulsion := forceRepulsion * sf * sf
	vel := make([]r2.Vec, n)
	for range forceIterations {
		for i := range pos {
			var force r2.Vec
			for j := range pos {
				if i == j {
					continue
				}
				d := r2.Sub(pos[i], pos[j])
				dist := math.Max(r2.Norm(d), 1)
				force = r2.Add(force, r2.Scale(repulsion/(dist*dist*dist), d))
			}
			for _, j := range neighbours[i] {
				force = r2.Add(force, r2.Scale(forceAttraction, r2.Sub(pos[j], pos[i])))
			}
			vel[i] = r2.Scale(forceDamping, r2.Add(vel[i], force))
		}
		for i := range pos {
			pos[i] = r2.Add(pos[i], vel[i])
		}
	}

	pl := newPlacement(n)
	for i, it := range items {
		pl.set(it.ID, pos[i].X, pos[i].Y)
	}
	return pl.finish(cfg)
}
