package toll_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollgrid/matrix"
	"github.com/katalvlaran/tollgrid/toll"
)

const eps = 1e-9

// TestCalculate_Coefficients: distance 15 ⇒ 12 / 18 / 22.5 / 33 / 54.
func TestCalculate_Coefficients(t *testing.T) {
	rows := toll.Calculate([]matrix.UnrolledEdge[int]{{Start: 1, End: 2, Distance: 15}}, toll.DefaultCoefficients)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, 1, r.Start)
	assert.Equal(t, 2, r.End)
	assert.InDelta(t, 15.0, r.Distance, eps)
	assert.InDelta(t, 12.0, r.Rates.Moto, eps)
	assert.InDelta(t, 18.0, r.Rates.Car, eps)
	assert.InDelta(t, 22.5, r.Rates.RV, eps)
	assert.InDelta(t, 33.0, r.Rates.Bus, eps)
	assert.InDelta(t, 54.0, r.Rates.Truck, eps)
}

// TestCalculate_PreservesOrder checks that rows keep input order and count.
func TestCalculate_PreservesOrder(t *testing.T) {
	in := []matrix.UnrolledEdge[string]{
		{Start: "B", End: "A", Distance: 3},
		{Start: "A", End: "B", Distance: 3},
		{Start: "A", End: "C", Distance: 0},
	}
	rows := toll.Calculate(in, toll.DefaultCoefficients)
	require.Len(t, rows, 3)
	for i := range in {
		assert.Equal(t, in[i].Start, rows[i].Start)
		assert.Equal(t, in[i].End, rows[i].End)
	}
	assert.Zero(t, rows[2].Rates.Truck)
	assert.Empty(t, toll.Calculate[string](nil, toll.DefaultCoefficients))
}

func TestValidateCoefficients(t *testing.T) {
	require.NoError(t, toll.ValidateCoefficients(toll.DefaultCoefficients))
	require.NoError(t, toll.ValidateCoefficients(toll.Rates{}))

	for name, c := range map[string]toll.Rates{
		"negative": {Moto: -1},
		"nan":      {Bus: math.NaN()},
		"inf":      {Truck: math.Inf(1)},
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, toll.ValidateCoefficients(c), toll.ErrBadCoefficient)
		})
	}
}

func TestVehicleClass_String(t *testing.T) {
	var names []string
	for _, c := range toll.Classes {
		names = append(names, c.String())
	}
	assert.Equal(t, []string{"moto", "car", "rv", "bus", "truck"}, names)
	assert.Equal(t, "VehicleClass(9)", toll.VehicleClass(9).String())
	assert.Zero(t, toll.DefaultCoefficients.Get(toll.VehicleClass(9)))
}

func TestFromContext(t *testing.T) {
	rows := toll.FromContext([]toll.ContextRow[int]{{
		Start: 1, End: 2, Distance: 10,
		StartDay: time.Monday, StartTime: toll.Midnight,
		EndDay: time.Monday, EndTime: toll.LastSecond,
	}}, toll.DefaultCoefficients)
	require.Len(t, rows, 1)
	assert.InDelta(t, 12.0, rows[0].Rates.Car, eps)
}
