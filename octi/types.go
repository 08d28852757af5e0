// Package octi implements the octilinearizer: it embeds a combinatorial
// graph derived from the LineGraph onto a regular grid whose edges only
// use the 8 compass directions, minimizing a weighted sum of bend,
// direction-deviation, and grid-traversal costs.
//
// Embed's drawing loop — getOrdering, getCands, iterated
// octroute.ShortestPath, settleRes, local search over settlements —
// follows the general "build an auxiliary structure, run a graph
// algorithm over it repeatedly, accumulate a result" shape, with
// octroute.ShortestPath filling the "graph algorithm" role.
package octi

import (
	"github.com/transitdraw/linemap/geom"
	"github.com/transitdraw/linemap/linegraph"
	"github.com/transitdraw/linemap/octi/gridgraph"
)

// CombNode is one station in the combinatorial graph being embedded —
// one per LineGraph node.
type CombNode struct {
	ID     int
	X, Y   float64
	Degree int

	lgID linegraph.NodeID
}

// CombEdge is one line bundle between two CombNodes — one per
// LineGraph edge, annotated with the reference polyline and the cyclic
// order of lines it carries.
type CombEdge struct {
	ID       int
	From, To int
	Geom     geom.Polyline
	Lines    []string

	lgID linegraph.EdgeID
}

// CombGraph is the octilinearizer's input: the graph to embed.
type CombGraph struct {
	Nodes []*CombNode
	Edges []*CombEdge

	byNode   map[int]*CombNode
	byEdge   map[int]*CombEdge
	incident map[int][]*CombEdge
}

// Node returns the CombNode with the given ID, or nil.
func (cg *CombGraph) Node(id int) *CombNode { return cg.byNode[id] }

// Edge returns the CombEdge with the given ID, or nil.
func (cg *CombGraph) Edge(id int) *CombEdge { return cg.byEdge[id] }

// Incident returns every CombEdge touching node id.
func (cg *CombGraph) Incident(id int) []*CombEdge { return cg.incident[id] }

// Drawing is the embedding result: one grid path per routed CombEdge,
// plus the summed total cost ( "Drawing").
type Drawing struct {
	Paths     map[int][]gridgraph.NodeID
	Costs     map[int]float64 // per-CombEdge path cost, kept so local search can recompute TotalCost incrementally
	Positions map[int][2]int  // settled cell (x,y) per CombNode
	TotalCost float64
}
