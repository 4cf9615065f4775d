package layered_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/layerpath/layered"
)

// TestAddRow_IDsAndShape verifies rows get consecutive IDs in order.
func TestAddRow_IDsAndShape(t *testing.T) {
	g := layered.NewGraph()
	r0, err := g.AddRow(2)
	require.NoError(t, err)
	r1, err := g.AddRow(3)
	require.NoError(t, err)

	assert.Equal(t, []layered.NodeID{0, 1}, r0)
	assert.Equal(t, []layered.NodeID{2, 3, 4}, r1)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 5, g.Len())
	assert.Equal(t, r1, g.Row(1))
	assert.Nil(t, g.Row(2), "missing row yields nil")
	assert.Nil(t, g.Row(-1))

	row, ok := g.RowOf(r1[2])
	assert.True(t, ok)
	assert.Equal(t, 1, row)
}

// TestAddRow_NegativeSize ensures negative sizes are rejected.
func TestAddRow_NegativeSize(t *testing.T) {
	g := layered.NewGraph()
	_, err := g.AddRow(-1)
	assert.ErrorIs(t, err, layered.ErrBadSize)
	assert.Equal(t, 0, g.Rows(), "failed AddRow must not add a row")
}

// TestAddRow_ReturnsCopy ensures callers cannot corrupt the row table.
func TestAddRow_ReturnsCopy(t *testing.T) {
	g := layered.NewGraph()
	ids, _ := g.AddRow(2)
	ids[0] = 99

	assert.Equal(t, []layered.NodeID{0, 1}, g.Row(0))
}

// TestAddNode appends to existing rows only.
func TestAddNode(t *testing.T) {
	g := layered.NewGraph()
	_, _ = g.AddRow(1)
	_, _ = g.AddRow(1)

	id, err := g.AddNode(0)
	require.NoError(t, err)
	assert.Equal(t, layered.NodeID(2), id)
	assert.Equal(t, []layered.NodeID{0, 2}, g.Row(0))

	_, err = g.AddNode(2)
	assert.ErrorIs(t, err, layered.ErrRowNotFound)
	_, err = g.AddNode(-1)
	assert.ErrorIs(t, err, layered.ErrRowNotFound)
}

// TestAddEdge_Validation covers unknown nodes and non-adjacent rows.
func TestAddEdge_Validation(t *testing.T) {
	g := layered.NewGraph()
	r0, _ := g.AddRow(2)
	r1, _ := g.AddRow(1)
	r2, _ := g.AddRow(1)

	require.NoError(t, g.AddEdge(r0[0], r1[0], 3))
	assert.Equal(t, []layered.Edge{{Weight: 3, To: r1[0]}}, g.Edges(r0[0]))

	assert.ErrorIs(t, g.AddEdge(42, r1[0], 1), layered.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddEdge(r0[0], -1, 1), layered.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddEdge(r0[0], r2[0], 1), layered.ErrNotAdjacentRow, "skipping a row")
	assert.ErrorIs(t, g.AddEdge(r1[0], r0[1], 1), layered.ErrNotAdjacentRow, "backwards")
	assert.ErrorIs(t, g.AddEdge(r0[0], r0[1], 1), layered.ErrNotAdjacentRow, "same row")
	assert.Len(t, g.Edges(r0[0]), 1, "rejected edges must not be stored")
}

// TestAddEdge_Unchecked allows malformed topology but still rejects unknown IDs.
func TestAddEdge_Unchecked(t *testing.T) {
	g := layered.NewGraph(layered.WithUncheckedEdges())
	r0, _ := g.AddRow(1)
	_, _ = g.AddRow(1)
	r2, _ := g.AddRow(1)

	assert.NoError(t, g.AddEdge(r0[0], r2[0], 1))
	assert.NoError(t, g.AddEdge(r2[0], r0[0], 1))
	assert.ErrorIs(t, g.AddEdge(r0[0], 7, 1), layered.ErrNodeNotFound)
}

// TestEdges_ParallelEdgesKept verifies parallel edges are stored in order.
func TestEdges_ParallelEdgesKept(t *testing.T) {
	g := layered.NewGraph()
	r0, _ := g.AddRow(1)
	r1, _ := g.AddRow(1)
	require.NoError(t, g.AddEdge(r0[0], r1[0], 9))
	require.NoError(t, g.AddEdge(r0[0], r1[0], 4))

	assert.Equal(t, []layered.Edge{{Weight: 9, To: r1[0]}, {Weight: 4, To: r1[0]}}, g.Edges(r0[0]))

	cost, ok := layered.MinPathCost(g)
	assert.True(t, ok)
	assert.Equal(t, uint64(4), cost)
}

// TestAccessors_UnknownID verifies accessors tolerate unknown IDs.
func TestAccessors_UnknownID(t *testing.T) {
	g := layered.NewGraph()
	_, ok := g.RowOf(3)
	assert.False(t, ok)
	assert.Nil(t, g.Edges(3))
	_, ok = g.MinPath(3)
	assert.False(t, ok)
}

// TestWithRowCapacity_Panics ensures negative capacity is a programmer error.
func TestWithRowCapacity_Panics(t *testing.T) {
	assert.Panics(t, func() { layered.WithRowCapacity(-1) })
	assert.NotPanics(t, func() { layered.NewGraph(layered.WithRowCapacity(8)) })
}
