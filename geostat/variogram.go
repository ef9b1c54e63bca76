/*package geostat provides the kriging-family estimators: variogram fitting
and ordinary/universal kriging over scattered 2D samples.
*/
package geostat

import (
	"fmt"
	"math"

	"github.com/alanhuang116/geofield/sample"
)

// Model identifies a variogram model.
type Model int

const (
	Gaussian Model = iota
	Exponential
	Spherical
	Linear
)

func (m Model) String() string {
	switch m {
	case Gaussian:
		return "gaussian"
	case Exponential:
		return "exponential"
	case Spherical:
		return "spherical"
	case Linear:
		return "linear"
	}
	return fmt.Sprintf("Model(%d)", int(m))
}

// ParseModel resolves a variogram model name.
func ParseModel(name string) (Model, error) {
	switch name {
	case "gaussian":
		return Gaussian, nil
	case "exponential":
		return Exponential, nil
	case "spherical":
		return Spherical, nil
	case "linear":
		return Linear, nil
	}
	return 0, fmt.Errorf(
		"unknown variogram model %q, available: gaussian, exponential, spherical, linear",
		name)
}

// variogram is a fitted semivariance function gamma(h).
type variogram struct {
	model             Model
	sill, rng, nugget float64
	slope             float64 // Linear model only
}

func (v variogram) at(h float64) float64 {
	if h == 0 {
		return 0
	}
	gamma := v.nugget
	switch v.model {
	case Spherical:
		if h < v.rng {
			r := h / v.rng
			gamma += v.sill * (1.5*r - 0.5*r*r*r)
		} else {
			gamma += v.sill
		}
	case Exponential:
		gamma += v.sill * (1 - math.Exp(-3*h/v.rng))
	case Gaussian:
		gamma += v.sill * (1 - math.Exp(-3*h*h/(v.rng*v.rng)))
	case Linear:
		gamma += v.slope * h
	}
	return gamma
}

// semivariogramBins is the number of lag bins used for the empirical
// semivariogram.
const semivariogramBins = 10

// empiricalSemivariogram bins half squared value differences by pair
// distance. Returned slices hold bin-center lags and mean semivariances;
// empty bins are dropped.
func empiricalSemivariogram(s *sample.Set) (lags, gammas []float64) {
	maxLag := 0.0
	for i := 0; i < s.Len(); i++ {
		for j := i + 1; j < s.Len(); j++ {
			dx, dy := s.X[i]-s.X[j], s.Y[i]-s.Y[j]
			maxLag = math.Max(maxLag, math.Sqrt(dx*dx+dy*dy))
		}
	}
	if maxLag == 0 {
		return nil, nil
	}

	width := maxLag / semivariogramBins
	sums := make([]float64, semivariogramBins)
	counts := make([]int, semivariogramBins)
	for i := 0; i < s.Len(); i++ {
		for j := i + 1; j < s.Len(); j++ {
			dx, dy := s.X[i]-s.X[j], s.Y[i]-s.Y[j]
			h := math.Sqrt(dx*dx + dy*dy)
			bin := int(h / width)
			if bin >= semivariogramBins {
				bin = semivariogramBins - 1
			}
			dz := s.Z[i] - s.Z[j]
			sums[bin] += 0.5 * dz * dz
			counts[bin]++
		}
	}

	for b := 0; b < semivariogramBins; b++ {
		if counts[b] == 0 {
			continue
		}
		lags = append(lags, width*(float64(b)+0.5))
		gammas = append(gammas, sums[b]/float64(counts[b]))
	}
	return lags, gammas
}

// fitVariogram fits model parameters to the empirical semivariogram. The
// bounded models are fitted by a coarse grid search over (sill, range,
// nugget) seeds scaled to the data; the linear model by least squares.
func fitVariogram(s *sample.Set, model Model) (variogram, error) {
	lags, gammas := empiricalSemivariogram(s)
	if len(lags) == 0 {
		return variogram{}, fmt.Errorf(
			"variogram fit: all %d samples are coincident", s.Len())
	}

	if model == Linear {
		return fitLinearVariogram(lags, gammas), nil
	}

	varZ := variance(s.Z)
	maxLag := lags[len(lags)-1]
	best := variogram{model: model, sill: varZ, rng: maxLag, nugget: 0}
	bestErr := math.Inf(1)
	for _, sill := range []float64{0.5 * varZ, varZ, 1.5 * varZ} {
		for _, rng := range []float64{0.25 * maxLag, 0.5 * maxLag, maxLag} {
			for _, nugget := range []float64{0, 0.1 * varZ, 0.2 * varZ} {
				v := variogram{model: model, sill: sill, rng: rng, nugget: nugget}
				sse := 0.0
				for i, h := range lags {
					d := v.at(h) - gammas[i]
					sse += d * d
				}
				if sse < bestErr {
					best, bestErr = v, sse
				}
			}
		}
	}
	return best, nil
}

// fitLinearVariogram regresses gamma on lag distance. A non-positive fitted
// slope is clamped to a small positive value so the kriging system stays
// solvable.
func fitLinearVariogram(lags, gammas []float64) variogram {
	n := float64(len(lags))
	var sh, sg, shh, shg float64
	for i := range lags {
		sh += lags[i]
		sg += gammas[i]
		shh += lags[i] * lags[i]
		shg += lags[i] * gammas[i]
	}
	den := n*shh - sh*sh
	slope, nugget := 0.0, 0.0
	if den != 0 {
		slope = (n*shg - sh*sg) / den
		nugget = (sg - slope*sh) / n
	}
	if slope <= 0 {
		slope = 1e-6
	}
	if nugget < 0 {
		nugget = 0
	}
	return variogram{model: Linear, slope: slope, nugget: nugget}
}

func variance(zs []float64) float64 {
	mean := 0.0
	for _, z := range zs {
		mean += z
	}
	mean /= float64(len(zs))
	v := 0.0
	for _, z := range zs {
		v += (z - mean) * (z - mean)
	}
	return v / float64(len(zs))
}
