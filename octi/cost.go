package octi

import (
	"math"

	"github.com/transitdraw/linemap/geom"
	"github.com/transitdraw/linemap/octi/gridgraph"
)

// desiredAngle returns the reference polyline's local tangent direction
// at its midpoint, in radians, or 0 if the edge has no geometry.
func desiredAngle(pl geom.Polyline) float64 {
	if pl == nil {
		return 0
	}
	t := pl.TangentAt(0.5 * pl.Length())
	if t.X == 0 && t.Y == 0 {
		return 0
	}
	return math.Atan2(t.Y, t.X)
}

// geoPenalty is the per-direction bias applied during routing: a
// penalty proportional to the angular deviation between a candidate
// grid hop
// direction and the reference polyline's local tangent, weighted by
// enfGeoCourse. It is applied only to inter-cell hops: edgeCostFunc
// skips intra-cell bends and sink edges, which have no compass
// direction to penalize.
func geoPenalty(want float64, port gridgraph.Port, weight float64) float64 {
	dx, dy := port.Vector()
	got := math.Atan2(dy, dx)
	delta := math.Abs(got - want)
	for delta > math.Pi {
		delta = math.Abs(delta - 2*math.Pi)
	}
	return weight * delta / math.Pi
}

// edgeCostFunc builds the octroute.CostFunc for routing ce: GridCost
// plus, when enfGeoCourse > 0, the geo-penalty of the direction each
// inter-cell hop travels (the "GridCost(e) = e.cost; with
// geo-penalties, add geoPens[e.id]").
func edgeCostFunc(g *gridgraph.Grid, ce *CombEdge, enfGeoCourse float64) func(from, to gridgraph.NodeID, base float64) float64 {
	want := desiredAngle(ce.Geom)
	return func(from, to gridgraph.NodeID, base float64) float64 {
		if enfGeoCourse <= 0 {
			return base
		}
		fx, fy, _ := g.Decode(from)
		tx, ty, _ := g.Decode(to)
		if fx == tx && fy == ty {
			return base // bend or sink edge: no inter-cell direction to penalize
		}
		dx, dy := tx-fx, ty-fy
		port := directionPort(dx, dy)
		return base + geoPenalty(want, port, enfGeoCourse)
	}
}

// directionPort maps a unit (dx,dy) cell offset back to its compass port.
func directionPort(dx, dy int) gridgraph.Port {
	switch {
	case dx == 0 && dy < 0:
		return gridgraph.North
	case dx > 0 && dy < 0:
		return gridgraph.NorthEast
	case dx > 0 && dy == 0:
		return gridgraph.East
	case dx > 0 && dy > 0:
		return gridgraph.SouthEast
	case dx == 0 && dy > 0:
		return gridgraph.South
	case dx < 0 && dy > 0:
		return gridgraph.SouthWest
	case dx < 0 && dy == 0:
		return gridgraph.West
	default:
		return gridgraph.NorthWest
	}
}
