package linegraph

import (
	"math"
	"sort"

	"github.com/transitdraw/linemap/geom"
)

// frontClusterAngle is the maximum angular gap (radians) between two
// incident edges' tangents for them to be considered part of the same
// NodeFront. ~34 degrees groups edges arriving from roughly the same
// direction without over-merging a node's distinct approach directions.
const frontClusterAngle = 0.6

// NodeFront bundles the incident edges that arrive at a node from
// roughly the same direction, plus the polyline arc on which line
// ribbons for those edges are laid out.
type NodeFront struct {
	Edges []EdgeID
	Arc   geom.Polyline

	// order is the position of each line, keyed by (route) -> position
	// on Arc, populated by the optimizer's writeHierarch step; absent
	// until an ordering has been written back.
	order map[string]int
}

// HasRoute reports whether route L has a known position on this front,
// 's requirement that callers pre-verify presence before
// calling TripOccPos.
func (f *NodeFront) HasRoute(lineID string) bool {
	_, ok := f.order[lineID]
	return ok
}

// TripOccPos returns the ribbon position of lineID on this front.
// Precondition: HasRoute(lineID) must be true. Per the open
// question on NodeFront::getTripOccPos, an absent route is a caller
// contract violation, not a recoverable error: it panics rather than
// returning an undefined position.
func (f *NodeFront) TripOccPos(lineID string) int {
	pos, ok := f.order[lineID]
	if !ok {
		panic("linegraph: TripOccPos: route " + lineID + " not present on this front; caller must check HasRoute first")
	}
	return pos
}

// SetTripOccPos records lineID's ribbon position on this front
// (called by the optimizer's writeHierarch step).
func (f *NodeFront) SetTripOccPos(lineID string, pos int) {
	if f.order == nil {
		f.order = make(map[string]int)
	}
	f.order[lineID] = pos
}

// NodeFronts partitions the edges incident to n into fronts by
// clustering incoming polyline tangents, and caches the result on the
// node. Each front's arc is the portion of a circle of radius r cut by
// the two outermost tangents in that cluster.
//
// r is supplied by the caller as a function of node width (e.g. derived
// from config.LineWidth * max RenderWidth among incident edges); this
// package has no opinion on that sizing policy, it only consumes the
// radius.
func (g *Graph) NodeFronts(id NodeID, r float64) ([]NodeFront, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, err := g.nodeLocked(id)
	if err != nil {
		return nil, err
	}
	if n.frontsSet {
		return n.fronts, nil
	}

	incident, err := g.incidentLocked(id)
	if err != nil {
		return nil, err
	}
	if len(incident) == 0 {
		n.fronts = nil
		n.frontsSet = true
		return nil, nil
	}

	type tangentEdge struct {
		edge  EdgeID
		angle float64
	}
	tangents := make([]tangentEdge, 0, len(incident))
	for _, eid := range incident {
		e, err := g.edgeLocked(eid)
		if err != nil {
			return nil, err
		}
		tangents = append(tangents, tangentEdge{edge: eid, angle: edgeTangentAngle(e, n, id)})
	}
	sort.Slice(tangents, func(i, j int) bool { return tangents[i].angle < tangents[j].angle })

	var fronts []NodeFront
	clusterStart := 0
	for i := 1; i <= len(tangents); i++ {
		var gap float64
		if i < len(tangents) {
			gap = angularGap(tangents[i-1].angle, tangents[i].angle)
		}
		if i == len(tangents) || gap > frontClusterAngle {
			cluster := tangents[clusterStart:i]
			edges := make([]EdgeID, len(cluster))
			for j, c := range cluster {
				edges[j] = c.edge
			}
			fronts = append(fronts, NodeFront{
				Edges: edges,
				Arc:   buildFrontArc(n, r, cluster[0].angle, cluster[len(cluster)-1].angle),
			})
			clusterStart = i
		}
	}

	n.fronts = fronts
	n.frontsSet = true
	return fronts, nil
}

func edgeTangentAngle(e *Edge, n *Node, at NodeID) float64 {
	if len(e.Geoms) == 0 || e.Geoms[0].Geom == nil {
		return 0
	}
	g := e.Geoms[0].Geom
	var tangent geom.Point
	if at == e.To {
		tangent = g.TangentAt(g.Length())
		tangent = geom.Point{X: -tangent.X, Y: -tangent.Y}
	} else {
		tangent = g.TangentAt(0)
	}
	return math.Atan2(tangent.Y, tangent.X)
}

func angularGap(a, b float64) float64 {
	d := b - a
	for d < 0 {
		d += 2 * math.Pi
	}
	for d > 2*math.Pi {
		d -= 2 * math.Pi
	}
	return d
}

// buildFrontArc returns the circular-arc polyline of radius r spanning
// [fromAngle, toAngle] centered at n, sampled at a fixed resolution.
func buildFrontArc(n *Node, r, fromAngle, toAngle float64) geom.Polyline {
	const samples = 8
	span := toAngle - fromAngle
	pts := make([]geom.Point, 0, samples+1)
	for i := 0; i <= samples; i++ {
		a := fromAngle + span*float64(i)/float64(samples)
		pts = append(pts, geom.Point{
			X: n.X + r*math.Cos(a),
			Y: n.Y + r*math.Sin(a),
		})
	}
	return geom.NewSimple(pts...)
}
