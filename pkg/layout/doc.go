// Package layout computes node positions for link-analysis charts.
//
// Every strategy is a [Func]: it takes an ordered slice of [Item], a slice of
// directed [Link] and a [Config], and returns a fresh [Positions] map with
// exactly one finite entry per distinct item id. Links that reference
// unknown ids are ignored and an empty item slice yields an empty map;
// strategies never return errors.
//
// # Strategies
//
//	hierarchy       levels by depth from the link forest roots (default)
//	spread          hierarchy with doubled spacing
//	tree            tidy tree, parents centered over their children
//	circular        one ring, item 0 at the top
//	star            first item at the center, the rest on a ring
//	grouped         one cluster per item type
//	peacock         best-connected item at the center, neighbours on an inner ring
//	compactPeacock  concentric breadth-first tiers around the best-connected item
//	grid            near-square grid
//	timeline        left to right by timestamp
//	force           spring-electrical simulation, 50 iterations
//
// [Select] maps a name to its strategy and falls back to [Hierarchy] for
// unknown names.
//
// # Post-processing
//
// Every strategy finishes with the same overlap pass ([ResolveOverlaps]),
// which nudges colliding node boxes apart for at most ten passes. [Fit]
// turns a finished layout into a zoom and pan that frame it in a viewport.
//
// # Determinism
//
// All strategies except force are deterministic. The force layout jitters
// its starting ring; [NewForce] and [ForceWithRand] pin the random source.
//
// # Concurrency
//
// Strategies share no mutable state and can run concurrently. A [Func]
// returned by [ForceWithRand] owns its source and must not be shared.
package layout
