package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tollgrid/matrix"
)

func TestFloydWarshall_Errors(t *testing.T) {
	t.Parallel()

	AssertErrorIs(t, matrix.FloydWarshall(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	AssertErrorIs(t, matrix.FloydWarshall(typedNil), matrix.ErrNilMatrix)

	ns, _ := matrix.NewDense(3, 4)
	AssertErrorIs(t, matrix.FloydWarshall(ns), matrix.ErrNonSquare)
}

// Classic CLRS example (5×5, directed, with negative edges but no negative cycles).
func TestFloydWarshall_CLRS_5x5_FastPath_Correctness(t *testing.T) {
	t.Parallel()

	const n = 5
	A, _ := matrix.NewPreparedDense(n, n, matrix.WithAllowInfDistances())
	fillInfOffDiagZeroDiag(t, A)
	MustSet(t, A, 0, 1, 3)
	MustSet(t, A, 0, 2, 8)
	MustSet(t, A, 0, 4, -4)
	MustSet(t, A, 1, 3, 1)
	MustSet(t, A, 1, 4, 7)
	MustSet(t, A, 2, 1, 4)
	MustSet(t, A, 3, 0, 2)
	MustSet(t, A, 3, 2, -5)
	MustSet(t, A, 4, 3, 6)

	if err := matrix.FloydWarshall(A); err != nil {
		t.Fatalf("FloydWarshall(%v): %v", A, err)
	}

	exp := [][]float64{
		{0, 1, -3, 2, -4},
		{3, 0, -4, 1, -1},
		{7, 4, 0, 5, 3},
		{2, -1, -5, 0, -2},
		{8, 5, 1, 6, 0},
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			got, _ := A.At(i, j)
			if got != exp[i][j] {
				t.Fatalf("dist[%d,%d]=%v; want %v", i, j, got, exp[i][j])
			}
		}
	}
}

// The interface fallback must match the *Dense fast path element by element.
func TestFloydWarshall_Fallback_MatchesFast(t *testing.T) {
	t.Parallel()

	const n = 4
	build := func() *matrix.Dense {
		M, _ := matrix.NewPreparedDense(n, n, matrix.WithAllowInfDistances())
		fillInfOffDiagZeroDiag(t, M)
		for _, e := range [][3]float64{{0, 1, 2}, {1, 0, 2}, {1, 2, 3}, {2, 1, 3}, {2, 3, 1}, {3, 2, 1}} {
			MustSet(t, M, int(e[0]), int(e[1]), e[2])
		}
		return M
	}

	fast := build()
	slow := build()
	if err := matrix.FloydWarshall(fast); err != nil {
		t.Fatalf("FloydWarshall(fast): %v", err)
	}
	if err := matrix.FloydWarshall(hide{slow}); err != nil {
		t.Fatalf("FloydWarshall(slow): %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a, _ := fast.At(i, j)
			b, _ := slow.At(i, j)
			if a != b {
				t.Fatalf("mismatch at dist[%d,%d]=%v; want %v", i, j, b, a)
			}
		}
	}
}

// Unreachable nodes remain at +Inf and the closure is idempotent.
func TestFloydWarshall_Unreachable_Idempotent(t *testing.T) {
	t.Parallel()

	const n = 4
	D, _ := matrix.NewPreparedDense(n, n, matrix.WithAllowInfDistances())
	fillInfOffDiagZeroDiag(t, D)
	MustSet(t, D, 0, 1, 2)
	MustSet(t, D, 1, 0, 2)
	MustSet(t, D, 1, 2, 3)
	MustSet(t, D, 2, 1, 3)

	if err := matrix.FloydWarshall(D); err != nil {
		t.Fatalf("FloydWarshall: %v", err)
	}
	for i := 0; i < 3; i++ {
		v, _ := D.At(i, 3)
		if !math.IsInf(v, 1) {
			t.Fatalf("dist[%d,3]=%v; want +Inf", i, v)
		}
	}
	if v, _ := D.At(0, 2); v != 5 {
		t.Fatalf("dist[0,2]=%v; want 5", v)
	}

	before := D.Clone()
	if err := matrix.FloydWarshall(D); err != nil {
		t.Fatalf("FloydWarshall (second run): %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a, _ := before.At(i, j)
			b, _ := D.At(i, j)
			if a != b {
				t.Fatalf("idempotency mismatch at [%d,%d]=%v; want %v", i, j, b, a)
			}
		}
	}
}
