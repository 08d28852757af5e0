package octi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdraw/linemap/geom"
	"github.com/transitdraw/linemap/linegraph"
)

func straightLine(x1, y1, x2, y2 float64) geom.Polyline {
	return geom.NewSimple(geom.Point{X: x1, Y: y1}, geom.Point{X: x2, Y: y2})
}

func TestBuildCombGraphMirrorsLineGraphTopology(t *testing.T) {
	lg := linegraph.NewGraph()
	a := lg.AddNode(0, 0, linegraph.Stop{ID: "a", Name: "A"})
	b := lg.AddNode(10, 0, linegraph.Stop{ID: "b", Name: "B"})

	e, err := lg.AddEdge(a, b, straightLine(0, 0, 10, 0))
	require.NoError(t, err)
	require.NoError(t, lg.AddLineOnEdge(e, linegraph.Line{ID: "red"}, linegraph.Forward))
	require.NoError(t, lg.AddLineOnEdge(e, linegraph.Line{ID: "blue"}, linegraph.Forward))

	cg := BuildCombGraph(lg)

	require.Len(t, cg.Nodes, 2)
	require.Len(t, cg.Edges, 1)

	ce := cg.Edges[0]
	assert.ElementsMatch(t, []string{"red", "blue"}, ce.Lines)
	assert.Equal(t, int(a), ce.From)
	assert.Equal(t, int(b), ce.To)

	assert.Len(t, cg.Incident(int(a)), 1)
	assert.Len(t, cg.Incident(int(b)), 1)
}

func TestBuildCombGraphKeepsParallelEdgesSeparateWithGeoms(t *testing.T) {
	lg := linegraph.NewGraph()
	a := lg.AddNode(0, 0)
	b := lg.AddNode(10, 0)

	e1, err := lg.AddEdge(a, b, straightLine(0, 0, 10, 0))
	require.NoError(t, err)
	require.NoError(t, lg.AddLineOnEdge(e1, linegraph.Line{ID: "red"}, linegraph.Forward))

	e2, err := lg.AddEdge(a, b, straightLine(0, 2, 10, 2))
	require.NoError(t, err)
	require.NoError(t, lg.AddLineOnEdge(e2, linegraph.Line{ID: "blue"}, linegraph.Forward))

	cg := BuildCombGraph(lg)
	require.Len(t, cg.Edges, 2)
	for _, ce := range cg.Edges {
		assert.NotNil(t, ce.Geom)
	}
}
