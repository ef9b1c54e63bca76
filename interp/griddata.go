package interp

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/alanhuang116/geofield/grid"
	"github.com/alanhuang116/geofield/sample"
)

// NearestNeighbor assigns each grid cell the value of the closest sample.
type NearestNeighbor struct{}

func (NearestNeighbor) Interpolate(
	s *sample.Set, g *grid.Grid,
) ([][]float64, error) {
	tree := s.Tree()
	zs := evalRows(g, func(gx, gy float64) float64 {
		c, _ := tree.Nearest(sample.Point{X: gx, Y: gy, Idx: -1})
		return s.Z[c.(sample.Point).Idx]
	})
	return zs, nil
}

// LocalFit estimates each cell from a distance-weighted least-squares
// polynomial fit over the cell's nearest samples: a plane for Degree 1, a
// full bivariate cubic for Degree 3. Neighborhoods too small or too
// degenerate for the requested degree shrink to a lower degree, down to the
// weighted neighborhood mean.
type LocalFit struct {
	Degree int
}

// Neighborhood sizes per degree. A degree-d bivariate polynomial has
// (d+1)(d+2)/2 coefficients; the fit needs headroom beyond that.
func (m *LocalFit) neighbors() int {
	if m.Degree >= 3 {
		return 16
	}
	return 8
}

func (m *LocalFit) Interpolate(
	s *sample.Set, g *grid.Grid,
) ([][]float64, error) {
	tree := s.Tree()
	k := m.neighbors()
	if k > s.Len() {
		k = s.Len()
	}

	zs := evalRows(g, func(gx, gy float64) float64 {
		keep := kdtree.NewNKeeper(k)
		tree.NearestSet(keep, sample.Point{X: gx, Y: gy, Idx: -1})

		idxs := make([]int, 0, k)
		dists := make([]float64, 0, k)
		for _, cd := range keep.Heap {
			if cd.Comparable == nil {
				continue
			}
			idxs = append(idxs, cd.Comparable.(sample.Point).Idx)
			dists = append(dists, math.Sqrt(cd.Dist))
		}
		return m.fit(s, idxs, dists, gx, gy)
	})
	return zs, nil
}

// fit solves the weighted least-squares system for the highest degree the
// neighborhood supports and evaluates it at the cell center. The basis is
// centered on the cell, so the constant coefficient is the estimate.
func (m *LocalFit) fit(
	s *sample.Set, idxs []int, dists []float64, gx, gy float64,
) float64 {
	deg := m.Degree
	for {
		p := basisSize(deg)
		if deg == 0 || len(idxs) >= p+1 {
			if deg == 0 {
				return weightedMean(s, idxs, dists)
			}

			a := mat.NewDense(len(idxs), p, nil)
			b := mat.NewVecDense(len(idxs), nil)
			for r, k := range idxs {
				// Rows are scaled by the square root of the weight, which
				// turns the plain QR solve into a weighted one.
				sw := math.Sqrt(1 / (dists[r] + ExactMatchEps))
				row := basis(s.X[k]-gx, s.Y[k]-gy, deg)
				for c, v := range row {
					a.Set(r, c, sw*v)
				}
				b.SetVec(r, sw*s.Z[k])
			}

			var qr mat.QR
			qr.Factorize(a)
			coef := mat.NewVecDense(p, nil)
			err := qr.SolveVecTo(coef, false, b)
			c0 := coef.AtVec(0)
			if err == nil && !math.IsNaN(c0) && !math.IsInf(c0, 0) {
				return c0
			}
			// Degenerate neighborhood geometry; retry flatter.
		}
		deg--
	}
}

func basisSize(deg int) int { return (deg + 1) * (deg + 2) / 2 }

// basis evaluates the bivariate monomials up to the given total degree at
// (dx, dy), constant term first.
func basis(dx, dy float64, deg int) []float64 {
	out := make([]float64, 0, basisSize(deg))
	for d := 0; d <= deg; d++ {
		for i := 0; i <= d; i++ {
			out = append(out, math.Pow(dx, float64(d-i))*math.Pow(dy, float64(i)))
		}
	}
	return out
}

func weightedMean(s *sample.Set, idxs []int, dists []float64) float64 {
	num, den := 0.0, 0.0
	for r, k := range idxs {
		w := 1 / (dists[r] + ExactMatchEps)
		num += w * s.Z[k]
		den += w
	}
	return num / den
}
