package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollgrid/core"
	"github.com/katalvlaran/tollgrid/dijkstra"
)

func sample(t *testing.T) *core.Graph[string] {
	t.Helper()
	g, err := core.Build([]core.Edge[string]{
		{From: "A", To: "B", Distance: 10},
		{From: "B", To: "C", Distance: 5},
		{From: "A", To: "C", Distance: 20},
		{From: "X", To: "Y", Distance: 1},
	})
	require.NoError(t, err)

	return g
}

func TestDijkstra_Distances(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(sample(t), "A")
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, 0.0, dist["A"])
	assert.Equal(t, 10.0, dist["B"])
	assert.Equal(t, 15.0, dist["C"])
	assert.True(t, math.IsInf(dist["X"], 1))
}

func TestDijkstra_MaxDistance(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(sample(t), "A", dijkstra.WithMaxDistance(12))
	require.NoError(t, err)
	assert.Equal(t, 10.0, dist["B"])
	assert.True(t, math.IsInf(dist["C"], 1))

	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
}

func TestPath(t *testing.T) {
	g := sample(t)

	path, d, err := dijkstra.Path(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
	assert.Equal(t, 15.0, d)

	path, d, err = dijkstra.Path(g, "B", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, path)
	assert.Zero(t, d)

	_, _, err = dijkstra.Path(g, "A", "Y")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
	_, _, err = dijkstra.Path(g, "A", "Q")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, _, err = dijkstra.Path(g, "Q", "A")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, _, err = dijkstra.Path[string](nil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}
