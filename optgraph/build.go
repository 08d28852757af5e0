package optgraph

import "github.com/transitdraw/linemap/linegraph"

// Build contracts lg's degree-2 chains (the contraction pass feeding
// OptGraph) and returns the resulting OptGraph view.
// lg is mutated in place: after Build returns, every node remaining in
// lg is either a stop or has degree != 2.
func Build(lg *linegraph.Graph) (*Graph, error) {
	if err := lg.ContractDegree2Nodes(); err != nil {
		return nil, err
	}

	g := &Graph{
		lg:    lg,
		nodes: make(map[linegraph.NodeID]*OptNode),
		edges: make(map[linegraph.EdgeID]*OptEdge),
	}

	for _, n := range lg.Nodes() {
		incident, err := lg.IncidentEdges(n.ID)
		if err != nil {
			return nil, err
		}
		g.nodes[n.ID] = &OptNode{ID: n.ID, Edges: incident}
	}

	for _, e := range lg.Edges() {
		oe := &OptEdge{ID: e.ID, From: e.From, To: e.To}
		seen := make(map[string]bool)
		repeats := make(map[string]int)

		for gi, etg := range e.Geoms {
			for oi, occ := range etg.Bag {
				oe.Etgs = append(oe.Etgs, EtgRef{GeomIndex: gi, OrderIndex: oi, Dir: occ.Dir})
				if !seen[occ.Line.ID] {
					seen[occ.Line.ID] = true
					oe.Lines = append(oe.Lines, occ.Line)
				}
				repeats[occ.Line.ID]++
				if repeats[occ.Line.ID] > 1 {
					oe.WasCut = true
				}
			}
		}

		g.edges[e.ID] = oe
	}

	return g, nil
}
