package linegraph

import "github.com/transitdraw/linemap/geom"

// invalidEdgeID is the handle AddEdge returns for a rejected self-loop.
const invalidEdgeID = EdgeID(invalidID)

// AddNode creates a new node at (x, y), optionally tagged with stops,
// and returns its handle. Complexity: O(1) amortized (arena append).
func (g *Graph) AddNode(x, y float64, stops ...Stop) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := NodeID(len(g.nodes))
	n := &Node{
		ID:       id,
		X:        x,
		Y:        y,
		Stops:    append([]Stop(nil), stops...),
		occConns: make(map[string][]ConnWitness),
	}
	g.nodes = append(g.nodes, n)
	return id
}

// AddEdge creates an undirected edge u<->v with the given reference
// geometry and returns its handle. Self-loops are rejected silently —
// AddEdge returns invalidID, nil for u == v rather than an error,
// since a self-loop is disallowed input, not an exceptional one.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v NodeID, ref geom.Polyline) (EdgeID, error) {
	if u == v {
		return invalidID, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	un, err := g.nodeLocked(u)
	if err != nil {
		return invalidID, err
	}
	vn, err := g.nodeLocked(v)
	if err != nil {
		return invalidID, err
	}

	id := EdgeID(len(g.edges))
	e := &Edge{
		ID:   id,
		From: u,
		To:   v,
	}
	if ref != nil {
		e.Geoms = []EdgeTripGeom{{Geom: ref, GeomDir: v}}
	}
	g.edges = append(g.edges, e)

	un.out = append(un.out, id)
	vn.in = append(vn.in, id)

	return id, nil
}

// AddLineOnEdge records that line L traverses edge e with the given
// direction, appending to e's last geom if one exists or creating a
// fresh geom otherwise. Returns ErrDuplicateLine if L already appears
// on e in that exact direction (the "at-most-once per edge per
// direction" invariant).
//
// Complexity: O(k) where k is the number of existing occurrences on
// this edge's geoms (small in practice: one transit corridor rarely
// bundles more than a handful of lines).
func (g *Graph) AddLineOnEdge(eid EdgeID, l Line, dir Direction) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, err := g.edgeLocked(eid)
	if err != nil {
		return err
	}
	l = g.lines.Intern(l)

	if len(e.Geoms) == 0 {
		e.Geoms = []EdgeTripGeom{{GeomDir: e.To}}
	}
	geomIdx := len(e.Geoms) - 1
	for i := range e.Geoms {
		for _, occ := range e.Geoms[i].Bag {
			if SameLine(occ.Line, l) && occ.Dir == dir {
				return ErrDuplicateLine
			}
		}
	}
	e.Geoms[geomIdx].Bag = append(e.Geoms[geomIdx].Bag, occurrence{Line: l, Dir: dir})

	return nil
}

// RenderWidth returns the draw width of the edge: lineCount*lineWidth +
// (lineCount-1)*lineSpacing. lineWidth/lineSpacing come from the
// caller's resolved config rather than package-level globals.
func (e *Edge) RenderWidth(lineWidth, lineSpacing float64) float64 {
	n := e.LineCount()
	if n == 0 {
		return 0
	}
	return float64(n)*lineWidth + float64(n-1)*lineSpacing
}
