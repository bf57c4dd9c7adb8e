package roadgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPath(graph *Graph, distance float64, time int64, weight float64, edges ...EdgeID) *Path {
	path := NewPath(graph)
	path.SetFromNode(0)
	path.SetEndNode(2)
	for _, edge := range edges {
		path.AddEdge(edge)
	}
	path.SetDistance(distance)
	path.SetTime(time)
	path.SetWeight(weight)
	return path
}

func TestCalcNodes(t *testing.T) {
	graph, ids := triangleGraph(t)
	path := newTestPath(graph, 20, 0, 0, ids[0], ids[1])
	nodes, err := path.CalcNodes()
	require.NoError(t, err)
	assert.Equal(t, []NodeID{0, 1, 2}, nodes)

	distance, err := path.CalcEdgeDistance()
	require.NoError(t, err)
	assert.InDelta(t, 20.0, distance, 1e-9)

	broken := newTestPath(graph, 0, 0, 0, ids[1])
	_, err = broken.CalcNodes()
	assert.ErrorIs(t, err, ErrInvalidArgument)

	empty := NewPath(graph)
	nodes, err = empty.CalcNodes()
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestComparePaths(t *testing.T) {
	graph, ids := triangleGraph(t)
	refPath := newTestPath(graph, 20, 10000, 10, ids[0], ids[1])

	t.Run("equal aggregates", func(t *testing.T) {
		violations, err := ComparePaths(refPath, newTestPath(graph, 20, 10000, 10, ids[2]), 0, 2, 42)
		require.NoError(t, err)
		assert.Empty(t, violations)
	})

	t.Run("within tolerances", func(t *testing.T) {
		violations, err := ComparePaths(refPath, newTestPath(graph, 20.05, 10050, 10.005, ids[2]), 0, 2, 42)
		require.NoError(t, err)
		assert.Empty(t, violations)
	})

	t.Run("wrong distance", func(t *testing.T) {
		violations, err := ComparePaths(refPath, newTestPath(graph, 30, 10000, 10, ids[2]), 0, 2, 42)
		require.NoError(t, err)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "wrong distance 0->2")
	})

	t.Run("wrong time", func(t *testing.T) {
		violations, err := ComparePaths(refPath, newTestPath(graph, 20, 10051, 10, ids[2]), 0, 2, 42)
		require.NoError(t, err)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "wrong time 0->2")
	})

	t.Run("wrong distance and time", func(t *testing.T) {
		violations, err := ComparePaths(refPath, newTestPath(graph, 30, 9000, 10, ids[2]), 0, 2, 42)
		require.NoError(t, err)
		require.Len(t, violations, 2)
		assert.Contains(t, violations[0], "wrong distance")
		assert.Contains(t, violations[1], "wrong time")
	})

	t.Run("wrong weight", func(t *testing.T) {
		_, err := ComparePaths(refPath, newTestPath(graph, 20, 10000, 10.02, ids[2]), 0, 2, 42)
		require.ErrorIs(t, err, ErrStructuralMismatch)
		assert.Contains(t, err.Error(), "wrong weight")
		assert.Contains(t, err.Error(), "seed: 42")
	})

	t.Run("wrong endpoints", func(t *testing.T) {
		_, err := ComparePaths(refPath, newTestPath(graph, 20, 10000, 10, ids[2]), 0, 1, 42)
		assert.ErrorIs(t, err, ErrStructuralMismatch)
	})

	t.Run("different graphs", func(t *testing.T) {
		other, err := NewGraph(nil)
		require.NoError(t, err)
		_, err = other.CreateEdge(0, 2)
		require.NoError(t, err)
		_, err = ComparePaths(refPath, newTestPath(other, 20, 10000, 10, 0), 0, 2, 42)
		assert.ErrorIs(t, err, ErrStructuralMismatch)
	})

	t.Run("same identity space", func(t *testing.T) {
		copied, copiedIDs := triangleGraph(t)
		violations, err := ComparePaths(refPath, newTestPath(copied, 20, 10000, 10, copiedIDs[2]), 0, 2, 42)
		require.NoError(t, err)
		assert.Empty(t, violations)
	})

	t.Run("nil path", func(t *testing.T) {
		_, err := ComparePaths(refPath, nil, 0, 2, 42)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}
