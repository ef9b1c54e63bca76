package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanhuang116/geofield/grid"
	"github.com/alanhuang116/geofield/sample"
)

func triangleSet() *sample.Set {
	return sample.New(
		[]float64{0, 1, 0},
		[]float64{0, 0, 1},
		[]float64{1, 2, 3},
	)
}

func TestNewIDWValidation(t *testing.T) {
	_, err := NewIDW(0, 0)
	assert.Error(t, err)
	var cfg *ConfigError
	assert.ErrorAs(t, err, &cfg, "non-positive power is a config error")

	_, err = NewIDW(2, -1)
	assert.ErrorAs(t, err, &cfg, "negative smoothing is a config error")

	_, err = NewIDW(2, 0)
	assert.NoError(t, err)
}

func TestIDWExactAtSampleLocations(t *testing.T) {
	s := triangleSet()
	// Explicit bounds put grid corners exactly on the samples at (0,0),
	// (1,0) and (0,1).
	g := grid.New(grid.Bounds{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, 2)

	for _, power := range []float64{0.5, 1, 2, 10} {
		m := &IDW{Power: power}
		zs, err := m.Interpolate(s, g)
		require.NoError(t, err)
		assert.Equal(t, 1.0, zs[0][0], "power %g at (0,0)", power)
		assert.Equal(t, 2.0, zs[0][1], "power %g at (1,0)", power)
		assert.Equal(t, 3.0, zs[1][0], "power %g at (0,1)", power)
	}
}

func TestIDWHighPowerApproachesNearestNeighbor(t *testing.T) {
	s := triangleSet()
	g := grid.New(grid.Bounds{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, 5)

	// The cell at (0.25, 0) is much closer to the sample at (0,0) than to
	// the others; as the power grows the estimate converges to its value.
	m := &IDW{Power: 40}
	zs, err := m.Interpolate(s, g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, zs[0][1], 1e-6)
}

func TestIDWScenarioTriangle(t *testing.T) {
	// Samples {(0,0,1), (1,0,2), (0,1,3)}, method idw, power 2,
	// resolution 4: the derived grid covers [-0.05,1.05] on both axes,
	// the cell nearest (0,0) is close to 1, and no cell is NaN.
	s := triangleSet()
	g := grid.FromSamples(s, 4)

	assert.InDelta(t, -0.05, g.XS[0], 1e-12)
	assert.InDelta(t, 1.05, g.XS[3], 1e-12)
	assert.InDelta(t, -0.05, g.YS[0], 1e-12)
	assert.InDelta(t, 1.05, g.YS[3], 1e-12)

	m := &IDW{Power: 2}
	zs, err := m.Interpolate(s, g)
	require.NoError(t, err)
	for i := range zs {
		for j := range zs[i] {
			require.False(t, math.IsNaN(zs[i][j]), "cell (%d,%d)", i, j)
		}
	}
	assert.InDelta(t, 1.0, zs[0][0], 0.25, "cell nearest (0,0)")
}

func TestIDWSmoothingKeepsEstimatesFinite(t *testing.T) {
	s := triangleSet()
	g := grid.New(grid.Bounds{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, 3)

	m := &IDW{Power: 2, Smoothing: 0.1}
	zs, err := m.Interpolate(s, g)
	require.NoError(t, err)
	for i := range zs {
		for j := range zs[i] {
			assert.False(t, math.IsNaN(zs[i][j]))
			assert.False(t, math.IsInf(zs[i][j], 0))
		}
	}
}

func TestIDWTieBreaksByIndexOrder(t *testing.T) {
	// Two samples at the same location with different values: the cell on
	// top of them takes the first one's value.
	s := sample.New(
		[]float64{0, 0, 1},
		[]float64{0, 0, 1},
		[]float64{5, 9, 1},
	)
	g := grid.New(grid.Bounds{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, 2)

	m := &IDW{Power: 2}
	zs, err := m.Interpolate(s, g)
	require.NoError(t, err)
	assert.Equal(t, 5.0, zs[0][0])
}
