package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanhuang116/geofield/sample"
)

func TestPaddedBounds(t *testing.T) {
	// Samples spanning x in [-95, -94], y in [29.5, 30.5] get 5% padding
	// per axis on both sides.
	s := sample.New(
		[]float64{-95, -94.2, -94},
		[]float64{29.5, 30.5, 30},
		[]float64{1, 2, 3},
	)
	b := PaddedBounds(s)
	assert.InDelta(t, -95.05, b.MinX, 1e-12)
	assert.InDelta(t, -93.95, b.MaxX, 1e-12)
	assert.InDelta(t, 29.45, b.MinY, 1e-12)
	assert.InDelta(t, 30.55, b.MaxY, 1e-12)
}

func TestAxesStrictlyIncreasing(t *testing.T) {
	s := sample.New(
		[]float64{0, 1, 0.5},
		[]float64{0, 1, 0.25},
		[]float64{1, 2, 3},
	)
	for _, res := range []int{2, 3, 7, 100} {
		g := FromSamples(s, res)
		require.Equal(t, res, g.Resolution())
		require.Len(t, g.XS, res)
		require.Len(t, g.YS, res)
		for i := 1; i < res; i++ {
			require.Greater(t, g.XS[i], g.XS[i-1])
			require.Greater(t, g.YS[i], g.YS[i-1])
		}
	}
}

func TestExplicitBoundsVerbatim(t *testing.T) {
	g := New(Bounds{MinX: -1, MinY: 2, MaxX: 3, MaxY: 4}, 5)
	assert.Equal(t, -1.0, g.XS[0])
	assert.Equal(t, 3.0, g.XS[4])
	assert.Equal(t, 2.0, g.YS[0])
	assert.Equal(t, 4.0, g.YS[4])
}

func TestDegenerateAxis(t *testing.T) {
	// All samples share the same x: zero padding, zero axis width,
	// no panic.
	s := sample.New(
		[]float64{2, 2, 2},
		[]float64{0, 1, 2},
		[]float64{1, 2, 3},
	)
	g := FromSamples(s, 4)
	for _, x := range g.XS {
		assert.Equal(t, 2.0, x)
	}
	assert.InDelta(t, -0.1, g.YS[0], 1e-12)
	assert.InDelta(t, 2.1, g.YS[3], 1e-12)
}

func TestNewPanicsOnBadResolution(t *testing.T) {
	assert.Panics(t, func() { New(Bounds{MaxX: 1, MaxY: 1}, 1) })
}

func TestMesh(t *testing.T) {
	g := New(Bounds{MinX: 0, MinY: 10, MaxX: 1, MaxY: 11}, 3)
	xi, yi := g.Mesh()
	require.Len(t, xi, 3)
	require.Len(t, yi, 3)
	// Row = y axis, column = x axis.
	assert.Equal(t, []float64{0, 0.5, 1}, xi[2])
	assert.Equal(t, []float64{10.5, 10.5, 10.5}, yi[1])
}

func TestResultCloneAndSentinels(t *testing.T) {
	g := New(Bounds{MaxX: 1, MaxY: 1}, 2)
	r := NewResult(g)
	r.ZS[0][0] = 7
	r.ZS[1][1] = math.NaN()

	c := r.Clone()
	c.ZS[0][0] = -7
	assert.Equal(t, 7.0, r.ZS[0][0], "clone does not alias the input")
	assert.Equal(t, 1, r.SentinelCount())
}
