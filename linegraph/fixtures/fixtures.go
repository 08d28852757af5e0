// Package fixtures builds canonical LineGraph topologies for tests:
// cycles, paths, grids and triangles, each carrying one line that
// traverses every edge in order. The constructors follow a
// deterministic-vertex-ID, stable-edge-emission-order shape, with a
// single method-tag-prefixed sentinel error on invalid input.
package fixtures

import (
	"fmt"
	"math"

	"github.com/transitdraw/linemap/errs"
	"github.com/transitdraw/linemap/geom"
	"github.com/transitdraw/linemap/linegraph"
)

// File-local constants: method tags and parameter minima (no magic
// numbers scattered through the bodies).
const (
	methodCycle    = "fixtures.Cycle"
	methodPath     = "fixtures.Path"
	methodGrid     = "fixtures.Grid"
	methodTriangle = "fixtures.Triangle"

	minCycleNodes = 3
	minPathNodes  = 2
	minGridDim    = 1
)

// DefaultLine is the single line used to stamp every edge a fixture
// constructor emits, unless the caller overrides it via the *WithLine
// variant.
var DefaultLine = linegraph.Line{ID: "fixture", Label: "Fixture Line", Color: "#888888"}

// Cycle returns an n-node ring C_n laid out on a unit circle, with
// DefaultLine traversing every edge in ascending index order.
func Cycle(n int) (*linegraph.Graph, error) {
	return CycleWithLine(n, DefaultLine)
}

// CycleWithLine is Cycle with an explicit line.
func CycleWithLine(n int, line linegraph.Line) (*linegraph.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, &errs.BadInput{OffendingID: "n", Reason: "too few vertices for a cycle"})
	}

	g := linegraph.NewGraph()

	// Place vertices on a unit circle, ascending index order, so
	// adjacent vertices are geometrically adjacent too.
	ids := make([]linegraph.NodeID, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		ids[i] = g.AddNode(math.Cos(angle), math.Sin(angle))
	}

	// Emit ring edges i -> (i+1)%n in ascending i, closing the loop.
	edges := make([]linegraph.EdgeID, n)
	for i := 0; i < n; i++ {
		u := ids[i]
		v := ids[(i+1)%n]
		eid, err := addLineEdge(g, u, v, line)
		if err != nil {
			return nil, fmt.Errorf("%s: edge %d->%d: %w", methodCycle, i, (i+1)%n, err)
		}
		edges[i] = eid
	}

	// line runs all the way around the ring, so every vertex witnesses a
	// continuation from the edge behind it to the edge ahead of it.
	for i := 0; i < n; i++ {
		prev := edges[(i-1+n)%n]
		if err := g.RecordContinuation(ids[i], line.ID, prev, edges[i]); err != nil {
			return nil, fmt.Errorf("%s: continuation at %d: %w", methodCycle, i, err)
		}
	}

	return g, nil
}

// Path returns a simple path P_n of n nodes laid out on the x-axis,
// with DefaultLine traversing every edge in ascending index order.
func Path(n int) (*linegraph.Graph, error) {
	return PathWithLine(n, DefaultLine)
}

// PathWithLine is Path with an explicit line.
func PathWithLine(n int, line linegraph.Line) (*linegraph.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, &errs.BadInput{OffendingID: "n", Reason: "too few vertices for a path"})
	}

	g := linegraph.NewGraph()
	ids := make([]linegraph.NodeID, n)
	for i := 0; i < n; i++ {
		ids[i] = g.AddNode(float64(i), 0)
	}

	edges := make([]linegraph.EdgeID, n-1)
	for i := 1; i < n; i++ {
		eid, err := addLineEdge(g, ids[i-1], ids[i], line)
		if err != nil {
			return nil, fmt.Errorf("%s: edge %d->%d: %w", methodPath, i-1, i, err)
		}
		edges[i-1] = eid
	}

	// Every interior vertex witnesses the line continuing from the edge
	// behind it to the edge ahead of it; the two endpoints have only one
	// incident edge each and record nothing.
	for i := 1; i < n-1; i++ {
		if err := g.RecordContinuation(ids[i], line.ID, edges[i-1], edges[i]); err != nil {
			return nil, fmt.Errorf("%s: continuation at %d: %w", methodPath, i, err)
		}
	}

	return g, nil
}

// Grid returns a rows x cols orthogonal grid (4-neighborhood: right and
// bottom edges per cell), each cell placed at integer coordinates
// (c, r). A single DefaultLine snakes the entire grid edge set, in the
// same row-major, right-then-bottom emission order as the vertex grid
// itself so the result is deterministic.
func Grid(rows, cols int) (*linegraph.Graph, error) {
	return GridWithLine(rows, cols, DefaultLine)
}

// GridWithLine is Grid with an explicit line.
func GridWithLine(rows, cols int, line linegraph.Line) (*linegraph.Graph, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w", methodGrid, rows, cols, minGridDim, &errs.BadInput{OffendingID: "rows,cols", Reason: "grid dimension too small"})
	}

	g := linegraph.NewGraph()

	// Row-major placement; ids[r][c] holds the node handle for cell (r,c).
	ids := make([][]linegraph.NodeID, rows)
	for r := 0; r < rows; r++ {
		ids[r] = make([]linegraph.NodeID, cols)
		for c := 0; c < cols; c++ {
			ids[r][c] = g.AddNode(float64(c), float64(r))
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if _, err := addLineEdge(g, ids[r][c], ids[r][c+1], line); err != nil {
					return nil, fmt.Errorf("%s: right edge (%d,%d): %w", methodGrid, r, c, err)
				}
			}
			if r+1 < rows {
				if _, err := addLineEdge(g, ids[r][c], ids[r+1][c], line); err != nil {
					return nil, fmt.Errorf("%s: bottom edge (%d,%d): %w", methodGrid, r, c, err)
				}
			}
		}
	}

	return g, nil
}

// Triangle returns three mutually-adjacent stop nodes forming a
// clique, the canonical shape MergeMetaNodes is expected to collapse.
// Each node carries one stop named "sN".
func Triangle() (*linegraph.Graph, error) {
	g := linegraph.NewGraph()
	a := g.AddNode(0, 0, linegraph.Stop{ID: "s1", Name: "Platform 1"})
	b := g.AddNode(1, 0, linegraph.Stop{ID: "s2", Name: "Platform 2"})
	c := g.AddNode(0, 1, linegraph.Stop{ID: "s3", Name: "Platform 3"})

	eAB, err := addLineEdge(g, a, b, DefaultLine)
	if err != nil {
		return nil, fmt.Errorf("%s: edge s1->s2: %w", methodTriangle, err)
	}
	eBC, err := addLineEdge(g, b, c, DefaultLine)
	if err != nil {
		return nil, fmt.Errorf("%s: edge s2->s3: %w", methodTriangle, err)
	}
	eCA, err := addLineEdge(g, c, a, DefaultLine)
	if err != nil {
		return nil, fmt.Errorf("%s: edge s3->s1: %w", methodTriangle, err)
	}

	// DefaultLine rings the whole clique, so each stop witnesses the
	// line continuing from the edge behind it to the edge ahead of it.
	if err := g.RecordContinuation(a, DefaultLine.ID, eCA, eAB); err != nil {
		return nil, fmt.Errorf("%s: continuation at s1: %w", methodTriangle, err)
	}
	if err := g.RecordContinuation(b, DefaultLine.ID, eAB, eBC); err != nil {
		return nil, fmt.Errorf("%s: continuation at s2: %w", methodTriangle, err)
	}
	if err := g.RecordContinuation(c, DefaultLine.ID, eBC, eCA); err != nil {
		return nil, fmt.Errorf("%s: continuation at s3: %w", methodTriangle, err)
	}

	return g, nil
}

// addLineEdge adds an edge u->v with a straight reference polyline and
// stamps it with line in the forward direction, returning the new
// edge's handle so callers can wire up RecordContinuation afterward.
func addLineEdge(g *linegraph.Graph, u, v linegraph.NodeID, line linegraph.Line) (linegraph.EdgeID, error) {
	un, err := g.Node(u)
	if err != nil {
		return 0, err
	}
	vn, err := g.Node(v)
	if err != nil {
		return 0, err
	}
	ref := geom.NewSimple(geom.Point{X: un.X, Y: un.Y}, geom.Point{X: vn.X, Y: vn.Y})
	eid, err := g.AddEdge(u, v, ref)
	if err != nil {
		return 0, err
	}
	if err := g.AddLineOnEdge(eid, line, linegraph.Forward); err != nil {
		return 0, err
	}
	return eid, nil
}
