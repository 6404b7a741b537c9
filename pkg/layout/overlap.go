package layout

import (
	"math"
	"slices"
)

// maxOverlapPasses bounds the relaxation. It is a latency cap, not a
// convergence target: dense clusters may still overlap after the last pass.
const maxOverlapPasses = 10

// ResolveOverlaps pushes colliding node boxes apart in place and returns p.
//
// Each pass visits every unordered pair once. Two boxes collide when their
// centers are closer than NodeWidth+MinNodePadding horizontally and
// NodeHeight+MinNodePadding vertically. A collision is resolved along the
// axis with the smaller overlap, moving each node half the overlap plus one
// unit away from the other without swapping their order on that axis.
// Coincident nodes move in the positive direction. Relaxation stops after a
// clean pass or after ten passes, whichever comes first.
//
// Pairs are visited in id order. Keys are never added or removed.
func ResolveOverlaps(p Positions, cfg Config) Positions {
	ids := make([]ID, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	resolveOverlaps(p, ids, cfg)
	return p
}

// resolveOverlaps relaxes p visiting pairs in the given order and reports how
// many passes ran.
func resolveOverlaps(p Positions, order []ID, cfg Config) int {
	reqX := cfg.NodeWidth + cfg.MinNodePadding
	reqY := cfg.NodeHeight + cfg.MinNodePadding

	passes := 0
	for passes < maxOverlapPasses {
		passes++
		collided := false

		for i := 0; i < len(order); i++ {
			for j := i + 1; j < len(order); j++ {
				a, okA := p[order[i]]
				b, okB := p[order[j]]
				if !okA || !okB {
					continue
				}

				dx := b.X - a.X
				dy := b.Y - a.Y
				overlapX := reqX - math.Abs(dx)
				overlapY := reqY - math.Abs(dy)
				if overlapX <= 0 || overlapY <= 0 {
					continue
				}
				collided = true

				if overlapX < overlapY {
					push := overlapX/2 + 1
					if dx < 0 {
						push = -push
					}
					a.X -= push
					b.X += push
				} else {
					push := overlapY/2 + 1
					if dy < 0 {
						push = -push
					}
					a.Y -= push
					b.Y += push
				}
				p[order[i]] = a
				p[order[j]] = b
			}
		}

		if !collided {
			break
		}
	}
	return passes
}
