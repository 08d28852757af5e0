package octi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdraw/linemap/config"
	"github.com/transitdraw/linemap/octi/gridgraph"
)

// adjacentPath is a minimal two-cell path (0,0)->(1,0) that exercises
// both of settleRes's port assignments: leaving (0,0) via East and
// entering (1,0) via West.
func adjacentPath(grid *gridgraph.Grid) []gridgraph.NodeID {
	return []gridgraph.NodeID{
		grid.ParentNode(0, 0),
		grid.PortNode(0, 0, gridgraph.East),
		grid.PortNode(1, 0, gridgraph.West),
		grid.ParentNode(1, 0),
	}
}

func TestSettleResSucceedsOnFirstClaim(t *testing.T) {
	grid, err := gridgraph.NewGrid(0, 0, 3, 3, 1, 0, gridgraph.OCTIGRID)
	require.NoError(t, err)

	ce := &CombEdge{ID: 1, From: 10, To: 11}
	drawing := Drawing{Positions: make(map[int][2]int)}

	assert.True(t, settleRes(grid, drawing, ce, adjacentPath(grid)))
}

func TestSettleResFailsWhenAnotherCombEdgeHoldsThePort(t *testing.T) {
	grid, err := gridgraph.NewGrid(0, 0, 3, 3, 1, 0, gridgraph.OCTIGRID)
	require.NoError(t, err)

	path := adjacentPath(grid)

	first := &CombEdge{ID: 1, From: 10, To: 11}
	require.True(t, settleRes(grid, Drawing{Positions: make(map[int][2]int)}, first, path))

	second := &CombEdge{ID: 2, From: 20, To: 21}
	ok := settleRes(grid, Drawing{Positions: make(map[int][2]int)}, second, path)
	assert.False(t, ok, "a conflicting CombEdge must not silently win the already-assigned ports")
}

func TestSettleResConflictForcesDrawOnceToFail(t *testing.T) {
	cg := fourCycle()
	cfg := config.Default(config.WithGrid(0.5, 0.5, 4, config.OCTIGRID))
	conn := gridgraph.OCTIGRID
	grid, err := buildGrid(cg, cfg, conn, nil)
	require.NoError(t, err)

	// Pre-claim the port the first ordered edge needs to leave its
	// source cell, on behalf of some unrelated CombEdge ID, so drawOnce
	// hits the conflict branch of settleRes on its very first edge.
	ordering := getOrdering(cg, false, nil)
	require.NotEmpty(t, ordering)
	first := ordering[0]
	fromNode := cg.Node(first.From)
	cx, cy := grid.NearestCell(fromNode.X, fromNode.Y)
	for p := gridgraph.Port(0); p < 8; p++ {
		grid.AssignPort(cx, cy, p, first.ID+1000)
	}

	_, ok := drawOnce(cg, grid, ordering, cfg, nil, 0)
	assert.False(t, ok, "every outbound port from the source cell is already owned by a different CombEdge")
}
