package fgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghartke/fchoosability/fgraph"
)

func triangle(t *testing.T) *fgraph.Graph {
	t.Helper()
	g, err := fgraph.New(3, []int{2, 2, 2}, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)
	return g
}

func TestNew_Triangle(t *testing.T) {
	g := triangle(t)
	assert.Equal(t, 3, g.N)
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(0, 0))
}

func TestNew_PrevNeighbors(t *testing.T) {
	g := triangle(t)
	// vertex 2's prev_neighbors are those with smaller index: {0,1}.
	assert.True(t, g.PrevNeighbors[2].Has(0))
	assert.True(t, g.PrevNeighbors[2].Has(1))
	// vertex 0 has no prev_neighbors.
	assert.True(t, g.PrevNeighbors[0].Empty())
}

func TestNew_RejectsNonPositiveF(t *testing.T) {
	_, err := fgraph.New(2, []int{1, 0}, nil)
	assert.ErrorIs(t, err, fgraph.ErrInvalidF)
}

func TestNew_RejectsSelfLoop(t *testing.T) {
	_, err := fgraph.New(2, []int{1, 1}, [][2]int{{0, 0}})
	assert.ErrorIs(t, err, fgraph.ErrSelfLoop)
}

func TestNew_RejectsOutOfRangeVertex(t *testing.T) {
	_, err := fgraph.New(2, []int{1, 1}, [][2]int{{0, 5}})
	assert.ErrorIs(t, err, fgraph.ErrVertexRange)
}

func TestNew_RejectsTooManyVertices(t *testing.T) {
	_, err := fgraph.New(64, make([]int, 64), nil)
	assert.ErrorIs(t, err, fgraph.ErrTooManyVertices)
}

func TestClone_IsIndependent(t *testing.T) {
	g := triangle(t)
	clone := g.Clone()
	clone.F[0] = 99
	assert.NotEqual(t, g.F[0], clone.F[0])
}
