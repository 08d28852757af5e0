package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycle(t *testing.T) {
	g, err := Cycle(5)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 5, g.EdgeCount())

	_, err = Cycle(2)
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	g, err := Path(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())

	_, err = Path(1)
	assert.Error(t, err)
}

func TestGrid(t *testing.T) {
	g, err := Grid(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, g.NodeCount())
	// Interior edge count for a 3x4 grid: 3*3 horizontal + 2*4 vertical.
	assert.Equal(t, 9+8, g.EdgeCount())

	_, err = Grid(0, 4)
	assert.Error(t, err)
}

func TestTriangle(t *testing.T) {
	g, err := Triangle()
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	for _, n := range g.Nodes() {
		assert.True(t, n.IsStop())
	}
}
