package octi

import (
	"github.com/transitdraw/linemap/geom"
	"github.com/transitdraw/linemap/linegraph"
)

// BuildCombGraph derives a CombGraph from lg: one CombNode per
// LineGraph node, one CombEdge per LineGraph edge carrying the
// averaged reference polyline across its geoms and the cyclic order of
// the distinct lines it carries.
func BuildCombGraph(lg *linegraph.Graph) *CombGraph {
	cg := &CombGraph{
		byNode:   make(map[int]*CombNode),
		byEdge:   make(map[int]*CombEdge),
		incident: make(map[int][]*CombEdge),
	}

	for _, n := range lg.Nodes() {
		cn := &CombNode{ID: int(n.ID), X: n.X, Y: n.Y, Degree: n.Degree(), lgID: n.ID}
		cg.Nodes = append(cg.Nodes, cn)
		cg.byNode[cn.ID] = cn
	}

	for _, e := range lg.Edges() {
		polylines := make([]geom.Polyline, 0, len(e.Geoms))
		var lines []string
		seen := make(map[string]bool)
		for _, g := range e.Geoms {
			polylines = append(polylines, g.Geom)
			for _, occ := range g.Bag {
				if !seen[occ.Line.ID] {
					seen[occ.Line.ID] = true
					lines = append(lines, occ.Line.ID)
				}
			}
		}
		var ref geom.Polyline
		if len(polylines) == 1 {
			ref = polylines[0]
		} else if len(polylines) > 1 {
			ref = geom.Average(polylines...)
		}

		ce := &CombEdge{ID: int(e.ID), From: int(e.From), To: int(e.To), Geom: ref, Lines: lines, lgID: e.ID}
		cg.Edges = append(cg.Edges, ce)
		cg.byEdge[ce.ID] = ce
		cg.incident[ce.From] = append(cg.incident[ce.From], ce)
		cg.incident[ce.To] = append(cg.incident[ce.To], ce)
	}

	return cg
}
