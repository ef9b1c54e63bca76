package interp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/alanhuang116/geofield/grid"
	"github.com/alanhuang116/geofield/sample"
)

// RBFKernel identifies the radial kernel an RBF estimator is built from.
type RBFKernel int

const (
	Multiquadric RBFKernel = iota
	GaussianKernel
	ThinPlate
	LinearKernel
)

func (k RBFKernel) String() string {
	switch k {
	case Multiquadric:
		return "multiquadric"
	case GaussianKernel:
		return "gaussian"
	case ThinPlate:
		return "thin_plate"
	case LinearKernel:
		return "linear"
	}
	return fmt.Sprintf("RBFKernel(%d)", int(k))
}

// RBF fits a weighted sum of kernel functions centered at the samples by
// solving the pairwise kernel system, then evaluates the fitted interpolant
// at every grid cell. Smooth relaxes exact interpolation at the samples.
//
// The solve can be ill-conditioned for near-duplicate or collinear samples;
// in that case Interpolate returns an error and the engine falls back to
// IDW.
type RBF struct {
	Kernel RBFKernel
	Smooth float64
}

func (m *RBF) Interpolate(s *sample.Set, g *grid.Grid) ([][]float64, error) {
	n := s.Len()
	eps := meanNearestSpacing(s)

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			dx, dy := s.X[i]-s.X[j], s.Y[i]-s.Y[j]
			v := kernel(m.Kernel, math.Sqrt(dx*dx+dy*dy), eps)
			a.Set(i, j, v)
			a.Set(j, i, v)
		}
	}
	// Smoothing relaxes the diagonal, trading exactness at the samples for
	// stability.
	for i := 0; i < n; i++ {
		a.Set(i, i, a.At(i, i)-m.Smooth)
	}

	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		b.SetVec(i, s.Z[i])
	}

	var qr mat.QR
	qr.Factorize(a)
	w := mat.NewVecDense(n, nil)
	if err := qr.SolveVecTo(w, false, b); err != nil {
		return nil, fmt.Errorf("rbf %v: singular kernel system: %w",
			m.Kernel, err)
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(w.AtVec(i)) || math.IsInf(w.AtVec(i), 0) {
			return nil, fmt.Errorf(
				"rbf %v: kernel system produced non-finite weights", m.Kernel)
		}
	}

	zs := evalRows(g, func(gx, gy float64) float64 {
		sum := 0.0
		for k := 0; k < n; k++ {
			dx, dy := s.X[k]-gx, s.Y[k]-gy
			sum += w.AtVec(k) * kernel(m.Kernel, math.Sqrt(dx*dx+dy*dy), eps)
		}
		return sum
	})
	return zs, nil
}

func kernel(k RBFKernel, r, eps float64) float64 {
	switch k {
	case Multiquadric:
		return math.Sqrt((r/eps)*(r/eps) + 1)
	case GaussianKernel:
		return math.Exp(-(r / eps) * (r / eps))
	case ThinPlate:
		if r == 0 {
			return 0
		}
		return r * r * math.Log(r)
	default: // LinearKernel
		return r
	}
}

// meanNearestSpacing estimates the kernel shape parameter as the mean
// distance from each sample to its nearest other sample. Degenerate sets
// (all points coincident) get a spacing of 1 so kernel evaluation stays
// finite; the solve will fail and be reported instead.
func meanNearestSpacing(s *sample.Set) float64 {
	tree := s.Tree()
	sum, cnt := 0.0, 0
	for _, p := range s.Points() {
		keep := kdtree.NewNKeeper(2)
		tree.NearestSet(keep, p)
		for _, cd := range keep.Heap {
			if cd.Comparable == nil {
				continue
			}
			if cd.Comparable.(sample.Point).Idx == p.Idx {
				continue
			}
			sum += math.Sqrt(cd.Dist)
			cnt++
		}
	}
	if cnt == 0 || sum == 0 {
		return 1
	}
	return sum / float64(cnt)
}
