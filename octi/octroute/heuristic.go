package octroute

import (
	"math"

	"github.com/transitdraw/linemap/octi/gridgraph"
)

// OctileDistance is the minimum-cost distance between two grid cells
// under 8-direction movement with unit orthogonal step cost: diagonal
// steps cost the same as orthogonal ones here (gridgraph.Grid's
// inter-cell hops are all cost 1), so octile distance reduces to
// Chebyshev distance. Kept as its own function (rather than inlined)
// because it is the admissible lower bound A* relies on.
func OctileDistance(dx, dy int) float64 {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx < dy {
		dx, dy = dy, dx
	}
	return float64(dx)
}

// BaseGraphHeur builds an admissible heuristic: for any node, the
// minimum over every target cell's octile distance,
// plus the cheapest sink-edge cost among targets (the sink is
// traversed exactly once to reach a target's parent node). This
// underestimates the true cost because (a) octile distance lower-bounds
// grid distance when all non-negative turn costs can only add to the
// unit hop cost and (b) every path to a sink pays for its own sink edge
// exactly once, so using the cheapest one available never overstates
// the remaining cost.
func BaseGraphHeur(g *gridgraph.Grid, targets []gridgraph.NodeID) Heuristic {
	type target struct{ x, y int }
	ts := make([]target, 0, len(targets))
	for _, t := range targets {
		x, y, _ := g.Decode(t)
		ts = append(ts, target{x: x, y: y})
	}
	minSink := gridgraph.BaseSinkCost
	if len(ts) == 0 {
		minSink = 0
	}

	return func(n gridgraph.NodeID) float64 {
		x, y, _ := g.Decode(n)
		best := math.Inf(1)
		for _, t := range ts {
			d := OctileDistance(t.x-x, t.y-y)
			if d < best {
				best = d
			}
		}
		if math.IsInf(best, 1) {
			return 0
		}
		return best + minSink
	}
}
