// SPDX-License-Identifier: MIT

package toll

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/tollgrid/matrix"
)

// VehicleClass names one of the five tolled vehicle categories.
type VehicleClass int

const (
	Moto VehicleClass = iota
	Car
	RV
	Bus
	Truck
)

// Classes lists every VehicleClass in column order.
var Classes = []VehicleClass{Moto, Car, RV, Bus, Truck}

// String returns the lowercase column name ("moto", "car", "rv", "bus", "truck").
func (c VehicleClass) String() string {
	switch c {
	case Moto:
		return "moto"
	case Car:
		return "car"
	case RV:
		return "rv"
	case Bus:
		return "bus"
	case Truck:
		return "truck"
	default:
		return fmt.Sprintf("VehicleClass(%d)", int(c))
	}
}

// Rates holds one value per vehicle class. It is used both for the per-unit
// coefficients and for the resulting tolls.
type Rates struct {
	Moto  float64
	Car   float64
	RV    float64
	Bus   float64
	Truck float64
}

// DefaultCoefficients are the reference per-unit-distance rates.
var DefaultCoefficients = Rates{Moto: 0.8, Car: 1.2, RV: 1.5, Bus: 2.2, Truck: 3.6}

// Scale returns r with every class multiplied by f.
func (r Rates) Scale(f float64) Rates {
	return Rates{
		Moto:  r.Moto * f,
		Car:   r.Car * f,
		RV:    r.RV * f,
		Bus:   r.Bus * f,
		Truck: r.Truck * f,
	}
}

// Get returns the value for class c (0 for an unknown class).
func (r Rates) Get(c VehicleClass) float64 {
	switch c {
	case Moto:
		return r.Moto
	case Car:
		return r.Car
	case RV:
		return r.RV
	case Bus:
		return r.Bus
	case Truck:
		return r.Truck
	default:
		return 0
	}
}

// ValidateCoefficients rejects negative, NaN and Inf coefficients.
func ValidateCoefficients(c Rates) error {
	for _, cls := range Classes {
		v := c.Get(cls)
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("ValidateCoefficients: %s=%v: %w", cls, v, ErrBadCoefficient)
		}
	}

	return nil
}

// Row is an unrolled edge with its base toll per vehicle class.
type Row[ID constraints.Ordered] struct {
	Start    ID
	End      ID
	Distance float64
	Rates    Rates
}

// Calculate multiplies every edge distance by coeff.
// Rows keep the input order. Complexity: O(E).
func Calculate[ID constraints.Ordered](edges []matrix.UnrolledEdge[ID], coeff Rates) []Row[ID] {
	out := make([]Row[ID], len(edges))
	for i, e := range edges {
		out[i] = Row[ID]{Start: e.Start, End: e.End, Distance: e.Distance, Rates: coeff.Scale(e.Distance)}
	}

	return out
}

// ContextRow is a toll-context record handed over by the input collaborator:
// an edge plus the time window it was reported for. Adjust replaces the window
// with band boundaries; it is kept here so callers can audit the input.
type ContextRow[ID constraints.Ordered] struct {
	Start     ID
	End       ID
	Distance  float64
	StartDay  time.Weekday
	StartTime Clock
	EndDay    time.Weekday
	EndTime   Clock
}

// Edge returns the unrolled edge carried by r.
func (r ContextRow[ID]) Edge() matrix.UnrolledEdge[ID] {
	return matrix.UnrolledEdge[ID]{Start: r.Start, End: r.End, Distance: r.Distance}
}

// FromContext computes base tolls for context rows.
func FromContext[ID constraints.Ordered](rows []ContextRow[ID], coeff Rates) []Row[ID] {
	edges := make([]matrix.UnrolledEdge[ID], len(rows))
	for i, r := range rows {
		edges[i] = r.Edge()
	}

	return Calculate(edges, coeff)
}
