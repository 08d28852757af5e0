// Package linegraph implements the LineGraph: an
// undirected multigraph whose edges each carry the set of transit lines
// traversing them plus a reference polyline, and whose nodes carry stop
// info and an ordered set of NodeFronts (port directions) used later to
// lay out ribbons.
//
// Vertices and edges are addressed by stable integer handles (NodeID/
// EdgeID) rather than pointers. A single sync.RWMutex guards mutation,
// since LineGraph mutation is front-loaded before the read-only
// optimize/octilinearize phases; every read-returning method produces a
// deterministic, ID-sorted result.
package linegraph

import (
	"errors"
	"sync"

	"github.com/transitdraw/linemap/geom"
)

// Sentinel errors for LineGraph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("linegraph: node not found")
	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("linegraph: edge not found")
	// ErrLineNotFound indicates an operation referenced a non-interned line.
	ErrLineNotFound = errors.New("linegraph: line not found")
	// ErrDuplicateLine indicates AddLineOnEdge was called twice for the
	// same (edge, line, direction) — violates the at-most-once-per-edge-
	// per-direction invariant.
	ErrDuplicateLine = errors.New("linegraph: line already recorded on edge in that direction")
	// ErrNotIncident indicates RecordContinuation was given an edge that
	// is not actually incident to the node it's supposed to witness.
	ErrNotIncident = errors.New("linegraph: edge not incident to node")
)

// Direction encodes how a line traverses an edge relative to the edge's
// canonical (from, to) orientation.
type Direction int

const (
	// Forward means the line points toward edge.To.
	Forward Direction = iota
	// Backward means the line points toward edge.From.
	Backward
	// None means the line is undirected on this edge.
	None
)

// NodeID addresses a Node within a Graph's arena.
type NodeID int

// EdgeID addresses an Edge within a Graph's arena.
type EdgeID int

// invalidID marks an unset handle, in the arena-allocate-by-index style
// used throughout this package.
const invalidID = -1

// Stop is the minimal identity of a physical transit stop. A Node may
// have zero stops (a synthetic junction) or several (a merged meta-node).
type Stop struct {
	ID   string
	Name string
}

// ConnWitness records that some route was observed passing through a
// node via edge FromEdge and leaving via edge ToEdge — the "occurring
// connection" that distinguishes a legal line-continuation from an
// incidental crossing.
type ConnWitness struct {
	FromEdge EdgeID
	ToEdge   EdgeID
}

// Node is a point in the plane, optionally tied to one or more Stops,
// with an ordered list of NodeFronts built lazily by NodeFronts.
type Node struct {
	ID NodeID
	X  float64
	Y  float64

	Stops []Stop

	out []EdgeID // owned outgoing edge handles
	in  []EdgeID // non-owning back-references

	// occConns[routeID] is the list of witnessed legal continuations for
	// that route through this node — populated by RecordContinuation and
	// folded across every mutation that changes incidence:
	// ContractDegree2Nodes and meta-node merge.
	occConns map[string][]ConnWitness

	fronts    []NodeFront
	frontsSet bool

	// footprint is the buffered convex-hull polygon recorded for this
	// node by MergeMetaNodes; nil for ordinary (non-merged) nodes.
	footprint []geom.Point
}

// IsStop reports whether this node represents at least one physical stop.
func (n *Node) IsStop() bool { return len(n.Stops) > 0 }

// Degree returns the total incident edge count (out+in), used by
// ContractDegree2Nodes to find degree-2 non-stop nodes.
func (n *Node) Degree() int { return len(n.out) + len(n.in) }

// occurrence is one (line, direction) record for a bag on an edge.
type occurrence struct {
	Line Line
	Dir  Direction
}

// EdgeTripGeom (ETG) is one geometric "bundle" drawn for one geometry
// variant on an edge. Its cardinality is len(Bag); its order, for
// optimizer purposes, is a permutation of Bag's lines.
type EdgeTripGeom struct {
	Geom    geom.Polyline
	GeomDir NodeID // after canonicalization, Geom is oriented so GeomDir == edge.To
	Bag     []occurrence
}

// Lines returns the Line of every occurrence in this geom's bag, in
// current bag order (insertion order until ApplyOrdering permutes the
// bag). A line carried in both directions appears twice.
func (g *EdgeTripGeom) Lines() []Line {
	out := make([]Line, len(g.Bag))
	for i, o := range g.Bag {
		out[i] = o.Line
	}
	return out
}

// Edge is an undirected connection between two Nodes, carrying a list of
// EdgeTripGeoms. After canonicalization every geom's polyline
// is oriented so geomDir == e.To.
type Edge struct {
	ID   EdgeID
	From NodeID
	To   NodeID

	Geoms []EdgeTripGeom
}

// LineCount returns the number of distinct (line, direction) pairs on
// this edge — used by RenderWidth. A line recorded in the same direction
// on several geoms (as on an edge merged by ContractDegree2Nodes) counts
// once.
func (e *Edge) LineCount() int {
	type lineDir struct {
		id  string
		dir Direction
	}
	seen := make(map[lineDir]bool)
	for _, g := range e.Geoms {
		for _, occ := range g.Bag {
			seen[lineDir{occ.Line.ID, occ.Dir}] = true
		}
	}
	return len(seen)
}

// Other returns the endpoint of e that is not n, assuming n is one of
// e's endpoints (callers in this package always satisfy this).
func (e *Edge) Other(n NodeID) NodeID {
	if e.From == n {
		return e.To
	}
	return e.From
}

// Graph is the LineGraph itself: an arena of Nodes and Edges addressed
// by handle, guarded by a single RWMutex (mutation confined
// to construction/contraction; read-only during optimize/octilinearize).
type Graph struct {
	mu sync.RWMutex

	nodes []*Node
	edges []*Edge

	lines *LineSet
}

// NewGraph returns an empty LineGraph with its own Line interning table.
func NewGraph() *Graph {
	return &Graph{lines: NewLineSet()}
}

// Lines exposes the graph's Line interning table: lines are interned
// and compared by identity, never by value.
func (g *Graph) Lines() *LineSet { return g.lines }

// NodeCount returns the number of nodes in the arena.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of edges in the arena.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Node returns the node with the given handle, or ErrNodeNotFound if out
// of range.
func (g *Graph) Node(id NodeID) (*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodeLocked(id)
}

func (g *Graph) nodeLocked(id NodeID) (*Node, error) {
	if id < 0 || int(id) >= len(g.nodes) || g.nodes[id] == nil {
		return nil, ErrNodeNotFound
	}
	return g.nodes[id], nil
}

// Edge returns the edge with the given handle, or ErrEdgeNotFound if out
// of range.
func (g *Graph) Edge(id EdgeID) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edgeLocked(id)
}

func (g *Graph) edgeLocked(id EdgeID) (*Edge, error) {
	if id < 0 || int(id) >= len(g.edges) || g.edges[id] == nil {
		return nil, ErrEdgeNotFound
	}
	return g.edges[id], nil
}

// Nodes returns every live node, in handle order (a stable,
// deterministic iteration order).
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Edges returns every live edge, in handle order.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// IncidentEdges returns the handles of every edge touching node id
// (outgoing first, then incoming), used by NodeFronts and contraction.
func (g *Graph) IncidentEdges(id NodeID) ([]EdgeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, err := g.nodeLocked(id)
	if err != nil {
		return nil, err
	}
	out := make([]EdgeID, 0, len(n.out)+len(n.in))
	out = append(out, n.out...)
	out = append(out, n.in...)
	return out, nil
}
