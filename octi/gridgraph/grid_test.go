package gridgraph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdraw/linemap/geom"
)

func TestNewGridRejectsDegenerateBox(t *testing.T) {
	_, err := NewGrid(0, 0, 0, 0, 0, 0, OCTIGRID)
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

func TestBendCostIsSymmetricAndBandsMatchSpec(t *testing.T) {
	assert.Equal(t, 0.0, BendCost(0, 0))
	assert.True(t, BendCost(0, 1) < BendCost(0, 2))
	assert.True(t, BendCost(0, 2) < BendCost(0, 3))
	assert.True(t, math.IsInf(BendCost(0, 4), 1))
	assert.Equal(t, BendCost(1, 3), BendCost(3, 1))
}

func TestEdgesExcludeDiagonalHopsUnderGRIDConnectivity(t *testing.T) {
	g, err := NewGrid(0, 0, 10, 10, 1, 0, GRID)
	require.NoError(t, err)

	n := g.PortNode(5, 5, NorthEast)
	for _, e := range g.Edges(n) {
		x, y, port := g.Decode(e.To)
		if port == parentPort {
			continue
		}
		assert.Equal(t, [2]int{5, 5}, [2]int{x, y}, "GRID connectivity should not hop diagonally")
	}
}

func TestMarkObstacleBlocksHopsThroughIt(t *testing.T) {
	g, err := NewGrid(0, 0, 10, 10, 1, 0, OCTIGRID)
	require.NoError(t, err)

	cx, cy := g.NearestCell(5, 5)
	px, py := g.Center(cx, cy)
	g.MarkObstacle([]geom.Point{
		{X: px - 0.5, Y: py - 0.5},
		{X: px + 0.5, Y: py - 0.5},
		{X: px + 0.5, Y: py + 0.5},
		{X: px - 0.5, Y: py + 0.5},
	})

	for p := 0; p < 8; p++ {
		n := g.PortNode(cx, cy, Port(p))
		for _, e := range g.Edges(n) {
			x, y, port := g.Decode(e.To)
			if port == parentPort || (x == cx && y == cy) {
				continue // sink and intra-cell bends are untouched by obstacle marking
			}
			assert.Failf(t, "unexpected inter-cell edge out of obstructed cell", "port %d -> (%d,%d)", p, x, y)
		}
	}
}

func TestOccupySettleReleaseRoundtrip(t *testing.T) {
	g, err := NewGrid(0, 0, 10, 10, 1, 0, OCTIGRID)
	require.NoError(t, err)

	g.Settle(2, 3, CombNodeID(7))
	assert.True(t, g.IsOccupied(2, 3))
	g.Release(2, 3)
	assert.False(t, g.IsOccupied(2, 3))
}

func TestAssignPortIsIdempotentForSameOwner(t *testing.T) {
	g, err := NewGrid(0, 0, 10, 10, 1, 0, OCTIGRID)
	require.NoError(t, err)

	assert.True(t, g.AssignPort(1, 1, North, 42))
	assert.True(t, g.AssignPort(1, 1, North, 42))
	assert.False(t, g.AssignPort(1, 1, North, 99))
}
