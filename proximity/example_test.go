package proximity_test

import (
	"fmt"

	"github.com/katalvlaran/tollgrid/matrix"
	"github.com/katalvlaran/tollgrid/proximity"
)

func ExampleWithin() {
	rows := []matrix.UnrolledEdge[int]{
		{Start: 1, End: 2, Distance: 10},
		{Start: 1, End: 3, Distance: 15},
		{Start: 1, End: 4, Distance: 20},
	}

	res, err := proximity.Within(rows, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("avg=%.1f bounds=[%.1f, %.1f] ids=%v\n", res.Average, res.Lower, res.Upper, res.IDs)
	// Output: avg=15.0 bounds=[13.5, 16.5] ids=[3]
}
