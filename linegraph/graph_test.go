package linegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdraw/linemap/geom"
)

func straightLine(x1, y1, x2, y2 float64) geom.Polyline {
	return geom.NewSimple(geom.Point{X: x1, Y: y1}, geom.Point{X: x2, Y: y2})
}

func TestAddNodeAndEdge(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(0, 0, Stop{ID: "s1", Name: "Alpha"})
	b := g.AddNode(10, 0)

	eid, err := g.AddEdge(a, b, straightLine(0, 0, 10, 0))
	require.NoError(t, err)

	e, err := g.Edge(eid)
	require.NoError(t, err)
	assert.Equal(t, a, e.From)
	assert.Equal(t, b, e.To)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdgeSelfLoopIsNoop(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(0, 0)
	id, err := g.AddEdge(a, a, nil)
	require.NoError(t, err)
	assert.Equal(t, invalidEdgeID, id)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdgeUnknownNode(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(0, 0)
	_, err := g.AddEdge(a, NodeID(99), nil)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestAddLineOnEdgeAndDuplicate(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(0, 0)
	b := g.AddNode(10, 0)
	eid, err := g.AddEdge(a, b, straightLine(0, 0, 10, 0))
	require.NoError(t, err)

	red := Line{ID: "red", Label: "Red Line", Color: "#ff0000"}
	require.NoError(t, g.AddLineOnEdge(eid, red, Forward))

	err = g.AddLineOnEdge(eid, red, Forward)
	assert.ErrorIs(t, err, ErrDuplicateLine)

	// Same line, opposite direction is legal.
	assert.NoError(t, g.AddLineOnEdge(eid, red, Backward))

	e, err := g.Edge(eid)
	require.NoError(t, err)
	assert.Equal(t, 2, e.LineCount())
}

func TestRenderWidth(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(0, 0)
	b := g.AddNode(10, 0)
	eid, err := g.AddEdge(a, b, straightLine(0, 0, 10, 0))
	require.NoError(t, err)

	require.NoError(t, g.AddLineOnEdge(eid, Line{ID: "red"}, Forward))
	require.NoError(t, g.AddLineOnEdge(eid, Line{ID: "blue"}, Forward))

	e, err := g.Edge(eid)
	require.NoError(t, err)
	assert.InDelta(t, 2*4.0+1*1.0, e.RenderWidth(4.0, 1.0), 1e-9)
}

func TestLineSetInterningFirstWriteWins(t *testing.T) {
	s := NewLineSet()
	a := s.Intern(Line{ID: "red", Label: "Red Line"})
	b := s.Intern(Line{ID: "red", Label: "Renamed"})
	assert.Equal(t, a, b)
	assert.Equal(t, "Red Line", b.Label)
	assert.Equal(t, 1, s.Len())
}
