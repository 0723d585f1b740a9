package toll_test

import (
	"fmt"

	"github.com/katalvlaran/tollgrid/matrix"
	"github.com/katalvlaran/tollgrid/toll"
)

// ExampleAdjust prices one 15-unit edge for motorcycles across the week.
func ExampleAdjust() {
	base := toll.Calculate([]matrix.UnrolledEdge[string]{{Start: "A", End: "B", Distance: 15}}, toll.DefaultCoefficients)
	rows, err := toll.Adjust(base, toll.DefaultSchedule())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range rows {
		fmt.Printf("%s-%s %s-%s moto=%.1f\n", r.StartDay, r.EndDay, r.StartTime, r.EndTime, r.Rates.Moto)
	}
	// Output:
	// Monday-Friday 00:00:00-10:00:00 moto=9.6
	// Monday-Friday 10:00:00-18:00:00 moto=14.4
	// Monday-Friday 18:00:00-23:59:59 moto=9.6
	// Saturday-Saturday 00:00:00-23:59:59 moto=8.4
	// Sunday-Sunday 00:00:00-23:59:59 moto=8.4
}
