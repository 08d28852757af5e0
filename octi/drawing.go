package octi

import (
	"math"
	"math/rand"
	"sort"

	"github.com/transitdraw/linemap/config"
	"github.com/transitdraw/linemap/errs"
	"github.com/transitdraw/linemap/geom"
	"github.com/transitdraw/linemap/octi/gridgraph"
	"github.com/transitdraw/linemap/octi/octroute"
	"github.com/transitdraw/linemap/telemetry"
)

// maxOrderingAttempts bounds the outer retry loop of Embed: the first
// attempt uses the deterministic ordering, every subsequent attempt
// reshuffles it ( "all orderings fail -> signal
// NoEmbeddingFound").
const maxOrderingAttempts = 8

// Embed runs the Octilinearizer's drawing loop followed by an optional
// local-search pass, producing a Drawing or *errs.NoEmbeddingFound if
// every candidate ordering fails to route some edge.
func Embed(cg *CombGraph, cfg config.Config, obstacles [][]geom.Point, hooks *telemetry.Hooks) (Drawing, error) {
	rng := rand.New(rand.NewSource(int64(cfg.Seed)))
	conn := gridgraph.OCTIGRID
	if cfg.BaseGraph == config.GRID {
		conn = gridgraph.GRID
	}

	ordering := getOrdering(cg, false, rng)

	for attempt := 0; attempt < maxOrderingAttempts; attempt++ {
		if attempt > 0 {
			ordering = getOrdering(cg, true, rng)
		}

		grid, err := buildGrid(cg, cfg, conn, obstacles)
		if err != nil {
			return Drawing{}, err
		}

		drawing, ok := drawOnce(cg, grid, ordering, cfg, hooks, attempt)
		if ok {
			if cfg.RestrLocSearch {
				localSearch(cg, grid, &drawing, cfg)
			}
			return drawing, nil
		}
	}

	return Drawing{}, &errs.NoEmbeddingFound{OrderingsTried: maxOrderingAttempts}
}

func buildGrid(cg *CombGraph, cfg config.Config, conn gridgraph.Connectivity, obstacles [][]geom.Point) (*gridgraph.Grid, error) {
	minX, minY := cg.Nodes[0].X, cg.Nodes[0].Y
	maxX, maxY := minX, minY
	for _, n := range cg.Nodes {
		if n.X < minX {
			minX = n.X
		}
		if n.X > maxX {
			maxX = n.X
		}
		if n.Y < minY {
			minY = n.Y
		}
		if n.Y > maxY {
			maxY = n.Y
		}
	}
	grid, err := gridgraph.NewGrid(minX, minY, maxX, maxY, cfg.GridSize, cfg.BorderRad, conn)
	if err != nil {
		return nil, err
	}
	for _, obstacle := range obstacles {
		grid.MarkObstacle(obstacle)
	}
	return grid, nil
}

// getOrdering sorts CombEdges by priority: endpoints of larger degree
// first, longer edges before shorter, with an optional
// deterministic-seed randomization pass afterward.
func getOrdering(cg *CombGraph, randomize bool, rng *rand.Rand) []*CombEdge {
	out := append([]*CombEdge(nil), cg.Edges...)
	sort.Slice(out, func(i, j int) bool {
		di := maxDegree(cg, out[i])
		dj := maxDegree(cg, out[j])
		if di != dj {
			return di > dj
		}
		return edgeLength(out[i]) > edgeLength(out[j])
	})
	if randomize {
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	}
	return out
}

func maxDegree(cg *CombGraph, ce *CombEdge) int {
	a, b := cg.Node(ce.From).Degree, cg.Node(ce.To).Degree
	if a > b {
		return a
	}
	return b
}

func edgeLength(ce *CombEdge) float64 {
	if ce.Geom == nil {
		return 0
	}
	return ce.Geom.Length()
}

// drawOnce runs the drawing loop once for a fixed ordering over a
// freshly built grid (the pseudocode).
func drawOnce(cg *CombGraph, grid *gridgraph.Grid, ordering []*CombEdge, cfg config.Config, hooks *telemetry.Hooks, orderingIndex int) (Drawing, bool) {
	drawing := Drawing{
		Paths:     make(map[int][]gridgraph.NodeID),
		Costs:     make(map[int]float64),
		Positions: make(map[int][2]int),
	}

	for _, ce := range ordering {
		fromNode := cg.Node(ce.From)
		toNode := cg.Node(ce.To)

		sourceCands := getCands(grid, drawing, fromNode, cfg.MaxGridDist)
		sinkCands := getCands(grid, drawing, toNode, cfg.MaxGridDist)
		if len(sourceCands) == 0 || len(sinkCands) == 0 {
			hooks.EmitEmbedAttempt(orderingIndex, false)
			return Drawing{}, false
		}

		sources := toParentNodes(grid, sourceCands)
		sinks := toParentNodes(grid, sinkCands)
		cost := edgeCostFunc(grid, ce, cfg.EnfGeoCourse)
		heur := octroute.BaseGraphHeur(grid, sinks)

		path, total, ok := octroute.ShortestPath(grid, sources, sinks, cost, heur)
		if !ok {
			hooks.EmitEmbedAttempt(orderingIndex, false)
			return Drawing{}, false
		}

		if !settleRes(grid, drawing, ce, path) {
			hooks.EmitEmbedAttempt(orderingIndex, false)
			return Drawing{}, false
		}
		drawing.Paths[ce.ID] = path
		drawing.Costs[ce.ID] = total
		drawing.TotalCost += total
		hooks.EmitRouteSettled(ce.ID, len(path), total)
	}

	hooks.EmitEmbedAttempt(orderingIndex, true)
	return drawing, true
}

// getCands returns the grid cells within maxDist of n's desired
// position that are unclaimed, or the singleton already-settled cell
// if n has settled.
func getCands(grid *gridgraph.Grid, drawing Drawing, n *CombNode, maxDist float64) [][2]int {
	if pos, ok := drawing.Positions[n.ID]; ok {
		return [][2]int{pos}
	}

	cx, cy := grid.NearestCell(n.X, n.Y)
	radius := int(maxDist/grid.GridSize) + 1

	var out [][2]int
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x, y := cx+dx, cy+dy
			if !grid.InBounds(x, y) {
				continue
			}
			px, py := grid.Center(x, y)
			if dist(px, py, n.X, n.Y) > maxDist {
				continue
			}
			if grid.IsOccupied(x, y) {
				continue
			}
			out = append(out, [2]int{x, y})
		}
	}
	return out
}

func dist(x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	return math.Sqrt(dx*dx + dy*dy)
}

// settleRes marks path's endpoints as settled by ce's from/to
// CombNodes, assigns their grid ports, and raises congestion on the
// cells the path passes through. Returns false if either endpoint's
// port was already bound to a different CombEdge — a cyclic-ordering
// conflict the caller must treat as a failed attempt, same as an
// unroutable path, rather than silently overwriting the existing claim.
func settleRes(grid *gridgraph.Grid, drawing Drawing, ce *CombEdge, path []gridgraph.NodeID) bool {
	if len(path) == 0 {
		return true
	}
	// path's endpoints are the cells' parent nodes (sources/sinks are
	// addressed as ParentNode); the port actually used to leave/enter
	// the cell is the adjacent element, when the path is long enough to
	// have left the cell at all.
	fx, fy, _ := grid.Decode(path[0])
	tx, ty, _ := grid.Decode(path[len(path)-1])

	grid.Settle(fx, fy, combNodeID(ce.From))
	grid.Settle(tx, ty, combNodeID(ce.To))
	ok := true
	if len(path) > 1 {
		_, _, fp := grid.Decode(path[1])
		if fp != 8 && !grid.AssignPort(fx, fy, gridgraph.Port(fp), ce.ID) {
			ok = false
		}
	}
	if len(path) > 2 {
		_, _, tp := grid.Decode(path[len(path)-2])
		if tp != 8 && !grid.AssignPort(tx, ty, gridgraph.Port(tp), ce.ID) {
			ok = false
		}
	}

	drawing.Positions[ce.From] = [2]int{fx, fy}
	drawing.Positions[ce.To] = [2]int{tx, ty}

	for _, n := range path {
		x, y, _ := grid.Decode(n)
		grid.RaiseCongestion(x, y, 0.05)
	}

	return ok
}

func combNodeID(id int) gridgraph.CombNodeID { return gridgraph.CombNodeID(id) }

func toParentNodes(grid *gridgraph.Grid, cells [][2]int) []gridgraph.NodeID {
	out := make([]gridgraph.NodeID, len(cells))
	for i, c := range cells {
		out[i] = grid.ParentNode(c[0], c[1])
	}
	return out
}
