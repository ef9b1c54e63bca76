package geostat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/alanhuang116/geofield/grid"
	"github.com/alanhuang116/geofield/sample"
)

// Provider hands out kriging estimators for a chosen variogram model. A nil
// Provider passed to the method registry stands for "no geostatistics
// backend available".
type Provider struct {
	model Model
}

// NewProvider creates a Provider fitting the named variogram model.
func NewProvider(model string) (*Provider, error) {
	m, err := ParseModel(model)
	if err != nil {
		return nil, err
	}
	return &Provider{model: m}, nil
}

// Ordinary returns an ordinary-kriging estimator.
func (p *Provider) Ordinary() *Kriging {
	return &Kriging{model: p.model}
}

// Universal returns a universal-kriging estimator with a linear drift in x
// and y.
func (p *Provider) Universal() *Kriging {
	return &Kriging{model: p.model, universal: true}
}

// Kriging estimates the field as the best linear unbiased predictor under a
// fitted variogram. Every estimate solves the kriging system: pairwise
// sample semivariances on the left, target semivariances on the right, plus
// unbiasedness constraint rows (one for ordinary kriging, three for the
// linear-drift universal variant).
//
// Any system that cannot be solved, or that produces non-finite estimates,
// is reported as an error; the caller owns recovery.
type Kriging struct {
	model     Model
	universal bool
}

func (k *Kriging) Interpolate(
	s *sample.Set, g *grid.Grid,
) ([][]float64, error) {
	v, err := fitVariogram(s, k.model)
	if err != nil {
		return nil, fmt.Errorf("kriging %v: %w", k.model, err)
	}

	n := s.Len()
	drift := 1
	if k.universal {
		drift = 3
	}
	dim := n + drift

	a := mat.NewDense(dim, dim, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx, dy := s.X[i]-s.X[j], s.Y[i]-s.Y[j]
			gamma := v.at(math.Sqrt(dx*dx + dy*dy))
			a.Set(i, j, gamma)
			a.Set(j, i, gamma)
		}
	}
	for i := 0; i < n; i++ {
		a.Set(i, n, 1)
		a.Set(n, i, 1)
		if k.universal {
			a.Set(i, n+1, s.X[i])
			a.Set(n+1, i, s.X[i])
			a.Set(i, n+2, s.Y[i])
			a.Set(n+2, i, s.Y[i])
		}
	}

	var qr mat.QR
	qr.Factorize(a)

	// The left-hand side is shared by every cell; each grid row is solved
	// as one multi-target system.
	res := g.Resolution()
	zs := make([][]float64, res)
	b := mat.NewDense(dim, res, nil)
	w := mat.NewDense(dim, res, nil)
	for i := 0; i < res; i++ {
		gy := g.YS[i]
		for j := 0; j < res; j++ {
			gx := g.XS[j]
			for p := 0; p < n; p++ {
				dx, dy := s.X[p]-gx, s.Y[p]-gy
				b.Set(p, j, v.at(math.Sqrt(dx*dx+dy*dy)))
			}
			b.Set(n, j, 1)
			if k.universal {
				b.Set(n+1, j, gx)
				b.Set(n+2, j, gy)
			}
		}

		if err := qr.SolveTo(w, false, b); err != nil {
			return nil, fmt.Errorf(
				"kriging %v: singular system: %w", k.model, err)
		}

		row := make([]float64, res)
		for j := 0; j < res; j++ {
			est := 0.0
			for p := 0; p < n; p++ {
				est += w.At(p, j) * s.Z[p]
			}
			if math.IsNaN(est) || math.IsInf(est, 0) {
				return nil, fmt.Errorf(
					"kriging %v: non-finite estimate at cell (%d, %d)",
					k.model, i, j)
			}
			row[j] = est
		}
		zs[i] = row
	}

	return zs, nil
}
