package interp

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/alanhuang116/geofield/grid"
	"github.com/alanhuang116/geofield/sample"
)

// ExactMatchEps is the distance under which a grid cell is treated as
// coinciding with a sample location, in which case the cell takes that
// sample's value exactly. Changing it changes observable output at sample
// locations, so it stays fixed.
const ExactMatchEps = 1e-10

// IDW is an inverse-distance-weighting estimator. Each cell's estimate is
// the average of all sample values weighted by distance to the negative
// Power, after adding Smoothing to every distance.
type IDW struct {
	Power     float64
	Smoothing float64
}

// NewIDW creates an IDW estimator, rejecting out-of-domain parameters.
// Power must be positive and Smoothing non-negative.
func NewIDW(power, smoothing float64) (*IDW, error) {
	if !(power > 0) {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("IDW power must be positive, got %g", power),
		}
	}
	if smoothing < 0 || math.IsNaN(smoothing) {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("IDW smoothing must be non-negative, got %g",
				smoothing),
		}
	}
	return &IDW{Power: power, Smoothing: smoothing}, nil
}

// DefaultIDW returns the estimator used by the engine's fallback policy:
// power 2, no smoothing.
func DefaultIDW() *IDW { return &IDW{Power: 2, Smoothing: 0} }

// Interpolate evaluates the estimator at every grid cell. Cells are
// independent; rows are split across workers.
func (m *IDW) Interpolate(s *sample.Set, g *grid.Grid) ([][]float64, error) {
	zs := evalRows(g, func(gx, gy float64) float64 {
		return m.estimate(s, gx, gy)
	})
	return zs, nil
}

func (m *IDW) estimate(s *sample.Set, gx, gy float64) float64 {
	// A cell numerically indistinguishable from a sample location
	// reproduces that sample's value exactly, regardless of Power. Ties go
	// to the lowest index.
	nearest, nearestDist := 0, math.Inf(1)
	for k := range s.X {
		dx, dy := s.X[k]-gx, s.Y[k]-gy
		d := math.Sqrt(dx*dx+dy*dy) + m.Smoothing
		if d < nearestDist {
			nearest, nearestDist = k, d
		}
	}
	if nearestDist < ExactMatchEps {
		return s.Z[nearest]
	}

	num, den := 0.0, 0.0
	for k := range s.X {
		dx, dy := s.X[k]-gx, s.Y[k]-gy
		d := math.Sqrt(dx*dx+dy*dy) + m.Smoothing
		w := math.Pow(d, -m.Power)
		num += w * s.Z[k]
		den += w
	}
	return num / den
}

// evalRows fills a resolution×resolution matrix by evaluating f at every
// cell, splitting rows across runtime.NumCPU() workers. f must be safe for
// concurrent calls; each cell is written exactly once.
func evalRows(g *grid.Grid, f func(gx, gy float64) float64) [][]float64 {
	res := g.Resolution()
	zs := make([][]float64, res)
	for i := range zs {
		zs[i] = make([]float64, res)
	}

	workers := runtime.NumCPU()
	if workers > res {
		workers = res
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(off int) {
			defer wg.Done()
			for i := off; i < res; i += workers {
				gy := g.YS[i]
				row := zs[i]
				for j := 0; j < res; j++ {
					row[j] = f(g.XS[j], gy)
				}
			}
		}(w)
	}
	wg.Wait()

	return zs
}
