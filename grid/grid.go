/*package grid derives regular rectangular target grids from sample bounds
and holds the interpolated results produced on them.
*/
package grid

import (
	"fmt"
	"math"

	"github.com/alanhuang116/geofield/sample"
)

// PadFraction is the fraction of each axis's extent added on both sides when
// bounds are derived from sample data rather than supplied explicitly.
const PadFraction = 0.05

// Bounds is an axis-aligned rectangle in sample coordinates.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Grid is a regular square mesh described by its two axis coordinate
// sequences. The full mesh point (i, j) is (XS[j], YS[i]).
type Grid struct {
	XS, YS []float64
}

// New creates a resolution×resolution grid covering the given bounds exactly,
// with no padding. resolution must be at least 2.
func New(b Bounds, resolution int) *Grid {
	if resolution < 2 {
		panic(fmt.Sprintf("Resolution given to New() is %d.", resolution))
	}
	return &Grid{
		XS: linspace(b.MinX, b.MaxX, resolution),
		YS: linspace(b.MinY, b.MaxY, resolution),
	}
}

// FromSamples creates a grid covering the Set's bounding box expanded by
// PadFraction of each axis's extent on both sides. An axis along which all
// samples coincide gets zero padding and zero width.
func FromSamples(s *sample.Set, resolution int) *Grid {
	return New(PaddedBounds(s), resolution)
}

// PaddedBounds returns the Set's bounding box expanded by PadFraction of
// each axis's extent on both sides.
func PaddedBounds(s *sample.Set) Bounds {
	minX, minY, maxX, maxY := s.Bounds()
	padX := (maxX - minX) * PadFraction
	padY := (maxY - minY) * PadFraction
	return Bounds{
		MinX: minX - padX, MinY: minY - padY,
		MaxX: maxX + padX, MaxY: maxY + padY,
	}
}

// Resolution returns the number of grid points per axis.
func (g *Grid) Resolution() int { return len(g.XS) }

// Mesh materializes the full Cartesian mesh as two resolution×resolution
// matrices, row = y axis, column = x axis.
func (g *Grid) Mesh() (xi, yi [][]float64) {
	res := g.Resolution()
	xi = make([][]float64, res)
	yi = make([][]float64, res)
	for i := 0; i < res; i++ {
		xi[i] = make([]float64, res)
		yi[i] = make([]float64, res)
		copy(xi[i], g.XS)
		for j := 0; j < res; j++ {
			yi[i][j] = g.YS[i]
		}
	}
	return xi, yi
}

func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + dx*float64(i)
	}
	xs[n-1] = hi
	return xs
}

// Result is a grid of estimates. ZS[i][j] is the estimate at (XS[j], YS[i]);
// NaN cells carry no estimate.
type Result struct {
	XS, YS []float64
	ZS     [][]float64
}

// NewResult allocates a zeroed Result over the given grid. The coordinate
// slices are shared with the grid, not copied.
func NewResult(g *Grid) *Result {
	res := g.Resolution()
	zs := make([][]float64, res)
	for i := range zs {
		zs[i] = make([]float64, res)
	}
	return &Result{XS: g.XS, YS: g.YS, ZS: zs}
}

// Clone returns a deep copy of the Result's value matrix. The coordinate
// slices are shared, since they are never written after construction.
func (r *Result) Clone() *Result {
	zs := make([][]float64, len(r.ZS))
	for i := range zs {
		zs[i] = make([]float64, len(r.ZS[i]))
		copy(zs[i], r.ZS[i])
	}
	return &Result{XS: r.XS, YS: r.YS, ZS: zs}
}

// SentinelCount returns the number of cells holding no estimate.
func (r *Result) SentinelCount() int {
	n := 0
	for i := range r.ZS {
		for j := range r.ZS[i] {
			if math.IsNaN(r.ZS[i][j]) {
				n++
			}
		}
	}
	return n
}
