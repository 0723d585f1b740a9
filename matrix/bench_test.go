package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/tollgrid/matrix"
)

// BenchmarkClosure measures the O(n³) closure at a few identifier counts.
func BenchmarkClosure(b *testing.B) {
	for _, n := range []int{50, 100, 200} {
		g := randomGraph(b, 42, n, 0.1)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := matrix.Closure(g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
