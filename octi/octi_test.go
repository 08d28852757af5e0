package octi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdraw/linemap/config"
	"github.com/transitdraw/linemap/geom"
	"github.com/transitdraw/linemap/octi/gridgraph"
)

// fourCycle builds a 4-node square CombGraph: (0,0)-(1,0)-(1,1)-(0,1)-(0,0).
func fourCycle() *CombGraph {
	cg := &CombGraph{
		byNode:   make(map[int]*CombNode),
		byEdge:   make(map[int]*CombEdge),
		incident: make(map[int][]*CombEdge),
	}
	coords := [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i, c := range coords {
		n := &CombNode{ID: i, X: c[0], Y: c[1], Degree: 2}
		cg.Nodes = append(cg.Nodes, n)
		cg.byNode[n.ID] = n
	}
	for i := 0; i < 4; i++ {
		from, to := i, (i+1)%4
		e := &CombEdge{ID: i, From: from, To: to}
		cg.Edges = append(cg.Edges, e)
		cg.byEdge[e.ID] = e
		cg.incident[from] = append(cg.incident[from], e)
		cg.incident[to] = append(cg.incident[to], e)
	}
	return cg
}

// hasBend reports whether path turns within any single cell: two
// consecutive port addresses sharing the same (x,y) but not en route
// through that cell's parent.
func hasBend(g *gridgraph.Grid, path []gridgraph.NodeID) bool {
	for i := 0; i+1 < len(path); i++ {
		x1, y1, p1 := g.Decode(path[i])
		x2, y2, p2 := g.Decode(path[i+1])
		if x1 == x2 && y1 == y2 && p1 != 8 && p2 != 8 && p1 != p2 {
			return true
		}
	}
	return false
}

func TestEmbedFourCycleWithoutObstacleRoutesWithoutBends(t *testing.T) {
	cg := fourCycle()
	cfg := config.Default(config.WithGrid(0.5, 0.5, 4, config.OCTIGRID))

	drawing, err := Embed(cg, cfg, nil, nil)
	require.NoError(t, err)
	assert.Len(t, drawing.Paths, 4)

	conn := gridgraph.OCTIGRID
	grid, err := buildGrid(cg, cfg, conn, nil)
	require.NoError(t, err)
	for _, ce := range cg.Edges {
		assert.False(t, hasBend(grid, drawing.Paths[ce.ID]), "edge %d should route straight with no bends", ce.ID)
	}
}

func TestEmbedFourCycleWithObstacleRoutesWithBendAndHigherCost(t *testing.T) {
	cg := fourCycle()
	cfg := config.Default(config.WithGrid(0.5, 0.5, 4, config.OCTIGRID))

	baseline, err := Embed(cg, cfg, nil, nil)
	require.NoError(t, err)

	obstacle := [][]geom.Point{{
		{X: 0.4, Y: 0.4},
		{X: 0.6, Y: 0.4},
		{X: 0.6, Y: 0.6},
		{X: 0.4, Y: 0.6},
	}}
	obstructed, err := Embed(cg, cfg, obstacle, nil)
	require.NoError(t, err)
	assert.Len(t, obstructed.Paths, 4)

	assert.Greater(t, obstructed.TotalCost, baseline.TotalCost)

	grid, err := buildGrid(cg, cfg, gridgraph.OCTIGRID, obstacle)
	require.NoError(t, err)
	anyBend := false
	for _, ce := range cg.Edges {
		if hasBend(grid, obstructed.Paths[ce.ID]) {
			anyBend = true
		}
	}
	assert.True(t, anyBend, "routing around the obstacle should require at least one bend")
}

func TestEmbedFailsWhenEveryCellIsObstructed(t *testing.T) {
	cg := fourCycle()
	cfg := config.Default(config.WithGrid(0.5, 0.5, 4, config.OCTIGRID))

	// A polygon covering the whole grid marks every inter-cell hop
	// impassable, so no ordering can route any edge.
	everything := [][]geom.Point{{
		{X: -5, Y: -5},
		{X: 5, Y: -5},
		{X: 5, Y: 5},
		{X: -5, Y: 5},
	}}

	_, err := Embed(cg, cfg, everything, nil)
	assert.Error(t, err)
}
