// Package gridgraph implements the octilinearizer's base grid graph: a
// rectangular cell lattice where each cell carries 8 compass ports,
// inter-cell hop edges, intra-cell bend edges, and a sink edge into the
// cell's parent node.
//
// Grid follows a Connectivity enum (GRID/OCTIGRID) backed by a
// precomputed NeighborOffsets table and a row-major cell index/
// coordinate convention, extended with per-cell ports, bend costs, and
// occupancy/settlement state beyond what a plain walkability lattice
// would need.
package gridgraph

import (
	"errors"
	"math"
)

// Sentinel errors for Grid construction and queries.
var (
	// ErrEmptyGrid indicates a bounding box that produced zero rows or columns.
	ErrEmptyGrid = errors.New("gridgraph: grid has no rows or no columns")
	// ErrCellOutOfRange indicates a cell coordinate outside the grid.
	ErrCellOutOfRange = errors.New("gridgraph: cell coordinates out of range")
)

// Connectivity selects which compass directions cells may connect
// through (the OCTIGRID/GRID base-graph variants).
type Connectivity int

const (
	// OCTIGRID allows all 8 compass directions, including 45° diagonals.
	OCTIGRID Connectivity = iota
	// GRID restricts inter-cell connections to the 4 orthogonal directions.
	GRID
)

// Port names one of a cell's 8 compass half-edges, numbered clockwise
// from north so that |i-j| mod 8 measures the turn angle in 45° steps.
type Port int

const (
	North Port = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// offsets[p] is the (dx, dy) unit step a hop through port p takes.
var offsets = [8][2]int{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

// Opposite returns the port facing the opposite compass direction.
func (p Port) Opposite() Port { return (p + 4) % 8 }

// Vector returns the unit (dx, dy) direction p points in, in the same
// planar coordinate system as Grid's cell centers.
func (p Port) Vector() (dx, dy float64) {
	o := offsets[p]
	return float64(o[0]), float64(o[1])
}

// CombNodeID is an opaque identity octi.CombGraph hands to Grid to mark
// cell occupancy; gridgraph never interprets it.
type CombNodeID int

// Cell is one lattice position: a parent node plus 8 ports, occupancy
// and settlement state (the "settled/closed flag and the
// identity of the CombNode currently occupying it").
type Cell struct {
	X, Y int

	Settled  bool
	Occupant CombNodeID
	occupied bool

	// portOwner[p], if assigned, is the CombEdge occupying that port
	// once the node at this cell has settled ( "bend handling
	// at a node").
	portOwner    [8]int
	portAssigned [8]bool

	// congestion[p] accumulates the congestion penalty settleRes adds
	// to every cell a settled path passes through.
	congestion [8]float64
}

// NodeID addresses one (cell, port) pair, or a cell's parent pseudo-port
// (port == parentPort), flattened to a dense integer for octroute's
// priority queue.
type NodeID int

const parentPort = 8 // the 9th "port" representing a cell's parent node

// Edge is one directed hop octroute.ShortestPath may traverse, with its
// base (un-penalized) cost; GeoPen/congestion terms are layered on top
// by the caller's cost function ( "GridCost(e) = e.cost").
type Edge struct {
	To   NodeID
	Cost float64
}

// bendCost[i][j] is the cost of turning from port i to port j within
// the same cell, indexed by |i-j| mod 8 (the 0/45/90/135/180
// cost bands). 180° is infinite: a U-turn within one cell is forbidden.
var bendCost = [5]float64{
	0: 0,           // 0deg: same port, not a real bend
	1: 0.1,         // 45deg
	2: 0.5,         // 90deg
	3: 1.5,         // 135deg
	4: math.Inf(1), // 180deg: forbidden
}
