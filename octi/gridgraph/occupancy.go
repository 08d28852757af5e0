package gridgraph

import "github.com/transitdraw/linemap/geom"

// pointInPolygon is the standard ray-casting test, used by MarkObstacle
// to decide whether a cell center lies inside an obstacle polygon.
func pointInPolygon(x, y float64, poly []geom.Point) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > y) != (pj.Y > y) {
			xCross := (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if x < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// Occupy marks cell (x,y) as claimed by a CombNode, pending settlement.
func (g *Grid) Occupy(x, y int, id CombNodeID) {
	c := &g.cells[g.index(x, y)]
	c.occupied = true
	c.Occupant = id
}

// IsOccupied reports whether cell (x,y) is claimed by any CombNode.
func (g *Grid) IsOccupied(x, y int) bool {
	return g.cells[g.index(x, y)].occupied
}

// Release clears occupancy and settlement of cell (x,y), freeing it
// for another CombNode to claim (used by local search when relocating
// a settled node to a neighboring cell).
func (g *Grid) Release(x, y int) {
	c := &g.cells[g.index(x, y)]
	c.occupied = false
	c.Settled = false
	c.Occupant = 0
}

// Settle marks cell (x,y) as settled for CombNode id — its position is
// now final for the remainder of this drawing attempt.
func (g *Grid) Settle(x, y int, id CombNodeID) {
	c := &g.cells[g.index(x, y)]
	c.occupied = true
	c.Settled = true
	c.Occupant = id
}

// AssignPort binds port p of cell (x,y) to combEdgeID, the first
// CombEdge to claim it ( "bend handling at a node"). Returns
// false if the port was already bound to a different edge.
func (g *Grid) AssignPort(x, y int, p Port, combEdgeID int) bool {
	c := &g.cells[g.index(x, y)]
	if c.portAssigned[p] {
		return c.portOwner[p] == combEdgeID
	}
	c.portAssigned[p] = true
	c.portOwner[p] = combEdgeID
	return true
}

// RaiseCongestion adds delta to every port of cell (x,y)'s sink cost —
// the congestion penalty settleRes applies to each cell of a settled
// path.
func (g *Grid) RaiseCongestion(x, y int, delta float64) {
	c := &g.cells[g.index(x, y)]
	for p := 0; p < 8; p++ {
		c.congestion[p] += delta
	}
}

// Reset clears occupancy, settlement, port assignment and congestion
// state for every cell (a fresh grid is usually built instead, but
// Reset lets a caller reuse one Grid across attempts without
// re-running obstacle marking).
func (g *Grid) Reset() {
	for i := range g.cells {
		c := &g.cells[i]
		c.occupied = false
		c.Settled = false
		c.Occupant = 0
		c.portAssigned = [8]bool{}
		c.portOwner = [8]int{}
		c.congestion = [8]float64{}
	}
}
