package gridgraph

import "github.com/transitdraw/linemap/geom"

// Grid is an axis-aligned cell lattice over [MinX,MinY]-[MaxX,MaxY],
// subdivided into square cells of side GridSize, built over a bounding
// box inflated by borderRad. It is mutated in place during one
// octilinearization attempt and rebuilt from scratch for the next —
// there is no cross-attempt shared mutable state.
type Grid struct {
	Width, Height int
	GridSize      float64
	MinX, MinY    float64
	Conn          Connectivity

	cells []Cell

	// obstacleHop[cellIndex] marks an inter-cell edge leaving this cell
	// in direction p as impassable; MarkObstacle sets it for every hop
	// into or out of a cell whose center lies inside an obstacle.
	obstacleHop [][8]bool
}

// NewGrid builds an empty Grid covering [minX-borderRad, maxX+borderRad]
// x [minY-borderRad, maxY+borderRad] at the given cell size.
func NewGrid(minX, minY, maxX, maxY, gridSize, borderRad float64, conn Connectivity) (*Grid, error) {
	minX -= borderRad
	minY -= borderRad
	maxX += borderRad
	maxY += borderRad

	w := int((maxX-minX)/gridSize) + 1
	h := int((maxY-minY)/gridSize) + 1
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		Width: w, Height: h,
		GridSize: gridSize,
		MinX:     minX, MinY: minY,
		Conn:        conn,
		cells:       make([]Cell, w*h),
		obstacleHop: make([][8]bool, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.cells[g.index(x, y)] = Cell{X: x, Y: y}
		}
	}
	return g, nil
}

func (g *Grid) index(x, y int) int { return y*g.Width + x }

// InBounds reports whether (x,y) lies within the grid's cell lattice.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// CellAt returns the cell at (x,y), or false if out of range.
func (g *Grid) CellAt(x, y int) (*Cell, bool) {
	if !g.InBounds(x, y) {
		return nil, false
	}
	return &g.cells[g.index(x, y)], true
}

// Center returns the planar coordinate of cell (x,y)'s center.
func (g *Grid) Center(x, y int) (cx, cy float64) {
	return g.MinX + (float64(x)+0.5)*g.GridSize, g.MinY + (float64(y)+0.5)*g.GridSize
}

// NearestCell returns the cell whose center is closest to (x,y),
// clamped to the grid's bounds.
func (g *Grid) NearestCell(x, y float64) (int, int) {
	cx := int((x - g.MinX) / g.GridSize)
	cy := int((y - g.MinY) / g.GridSize)
	if cx < 0 {
		cx = 0
	}
	if cx >= g.Width {
		cx = g.Width - 1
	}
	if cy < 0 {
		cy = 0
	}
	if cy >= g.Height {
		cy = g.Height - 1
	}
	return cx, cy
}

// PortNode returns the NodeID for cell (x,y)'s port p.
func (g *Grid) PortNode(x, y int, p Port) NodeID {
	return NodeID(g.index(x, y)*9 + int(p))
}

// ParentNode returns the NodeID for cell (x,y)'s parent pseudo-node.
func (g *Grid) ParentNode(x, y int) NodeID {
	return NodeID(g.index(x, y)*9 + parentPort)
}

// Decode splits a NodeID back into its cell coordinates and port (or
// parentPort if it addresses the cell's parent).
func (g *Grid) Decode(n NodeID) (x, y int, port int) {
	cellIdx := int(n) / 9
	return cellIdx % g.Width, cellIdx / g.Width, int(n) % 9
}

// MarkObstacle makes impassable every inter-cell hop into or out of a
// cell whose center lies inside polygon obstacle. A hop between two
// cells whose centers both lie outside the polygon stays passable even
// where its segment crosses the polygon, so an obstacle that contains
// no cell center blocks nothing.
func (g *Grid) MarkObstacle(obstacle []geom.Point) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cx, cy := g.Center(x, y)
			if !pointInPolygon(cx, cy, obstacle) {
				continue
			}
			idx := g.index(x, y)
			for p := 0; p < 8; p++ {
				g.obstacleHop[idx][p] = true
				nx, ny := x+offsets[p][0], y+offsets[p][1]
				if g.InBounds(nx, ny) {
					g.obstacleHop[g.index(nx, ny)][Port(p).Opposite()] = true
				}
			}
		}
	}
}

// Edges returns every outgoing edge from n: inter-cell hops (if n
// addresses a port and the neighbor in that direction is in range and
// not obstacle-blocked), intra-cell bends to every other port on the
// same cell, and — if n addresses a port — the sink edge into the
// cell's parent (and vice versa).
func (g *Grid) Edges(n NodeID) []Edge {
	x, y, port := g.Decode(n)
	var out []Edge

	if port == parentPort {
		// Parent -> every port of the same cell, sink cost only.
		for p := 0; p < 8; p++ {
			out = append(out, Edge{To: g.PortNode(x, y, Port(p)), Cost: g.sinkCost(x, y, Port(p))})
		}
		return out
	}

	p := Port(port)
	idx := g.index(x, y)

	// Inter-cell hop.
	if !g.obstacleHop[idx][p] {
		allowed := g.Conn == OCTIGRID || p%2 == 0 // GRID: only N/E/S/W (even ports)
		if allowed {
			nx, ny := x+offsets[p][0], y+offsets[p][1]
			if g.InBounds(nx, ny) {
				out = append(out, Edge{To: g.PortNode(nx, ny, p.Opposite()), Cost: 1.0})
			}
		}
	}

	// Intra-cell bends to every other port.
	for q := 0; q < 8; q++ {
		if Port(q) == p {
			continue
		}
		if g.Conn == GRID && q%2 != 0 {
			continue
		}
		out = append(out, Edge{To: g.PortNode(x, y, Port(q)), Cost: BendCost(int(p), q)})
	}

	// Sink edge into the cell's parent.
	out = append(out, Edge{To: g.ParentNode(x, y), Cost: g.sinkCost(x, y, p)})

	return out
}

// BaseSinkCost is the congestion-free floor of a port<->parent edge,
// exported so octroute's admissible heuristic can account for "the
// sink is traversed exactly once" without reaching into Grid's private
// congestion state.
const BaseSinkCost = 0.01

// sinkCost is the congestion-weighted cost of a port<->parent edge: it
// increases when a port is close to another settled route.
func (g *Grid) sinkCost(x, y int, p Port) float64 {
	return BaseSinkCost + g.cells[g.index(x, y)].congestion[p]
}

// BendCost returns the intra-cell turn cost between ports i and j
// (the 0/45/90/135/180 cost bands).
func BendCost(i, j int) float64 {
	diff := i - j
	if diff < 0 {
		diff = -diff
	}
	if diff > 4 {
		diff = 8 - diff
	}
	return bendCost[diff]
}
