package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollgrid/dijkstra"
	"github.com/katalvlaran/tollgrid/matrix"
)

// TestClosure_AgreesWithDijkstra compares every closed row with an
// independent single-source run on sparse random graphs, unreachable cells included.
func TestClosure_AgreesWithDijkstra(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		g := randomGraph(t, seed, 25, 0.08)
		dm, err := matrix.Closure(g)
		require.NoError(t, err)

		for _, src := range dm.IDs() {
			dist, _, err := dijkstra.Dijkstra(g, src)
			require.NoError(t, err)
			for _, dst := range dm.IDs() {
				got, err := dm.At(src, dst)
				require.NoError(t, err)
				want := dist[dst]
				if math.IsInf(want, 1) {
					require.False(t, got.Reachable(), "seed=%d %d→%d", seed, src, dst)
					continue
				}
				gv, ok := got.Value()
				require.True(t, ok, "seed=%d %d→%d", seed, src, dst)
				require.InDelta(t, want, gv, 1e-9, "seed=%d %d→%d", seed, src, dst)
			}
		}
	}
}
