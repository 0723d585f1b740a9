package matrix_test

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/tollgrid/core"
	"github.com/katalvlaran/tollgrid/matrix"
)

// hide wraps a Matrix to force the interface fallback path of FloydWarshall.
type hide struct{ matrix.Matrix }

// MustSet fails the test immediately when Set returns an error.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// AssertErrorIs fails when err does not match target via errors.Is.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error = %v; want errors.Is(..., %v)", err, target)
	}
}

// fillInfOffDiagZeroDiag initializes a distance fixture: diagonal 0, off-diagonal +Inf.
func fillInfOffDiagZeroDiag(t *testing.T, d *matrix.Dense) {
	t.Helper()

	n := d.Rows()
	if n != d.Cols() {
		t.Fatalf("fixture matrix must be square, got %dx%d", d.Rows(), d.Cols())
	}
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				data[i*n+j] = math.Inf(1)
			}
		}
	}
	if err := d.Fill(data); err != nil {
		t.Fatalf("Fill(row-major): %v", err)
	}
}

// randomGraph builds a reproducible graph over n integer ids with roughly
// density*n*(n-1)/2 undirected rows of integer-valued length in [1, 100].
func randomGraph(t testing.TB, seed uint64, n int, density float64) *core.Graph[int] {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph[int]()
	for i := 0; i < n; i++ {
		if err := g.AddEdge(core.Edge[int]{From: i, To: i}); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", i, i, err)
		}
		for j := i + 1; j < n; j++ {
			if rng.Float64() >= density {
				continue
			}
			d := float64(1 + rng.Intn(100))
			if err := g.AddEdge(core.Edge[int]{From: i, To: j, Distance: d}); err != nil {
				t.Fatalf("AddEdge(%d,%d): %v", i, j, err)
			}
		}
	}

	return g
}

// lineGraph is the A–B–C fixture from the scenario tests.
func lineGraph(t *testing.T) *core.Graph[string] {
	t.Helper()

	g, err := core.Build([]core.Edge[string]{
		{From: "A", To: "B", Distance: 10},
		{From: "B", To: "C", Distance: 5},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	return g
}
