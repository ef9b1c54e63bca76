/*package interp estimates a continuous scalar field on a regular grid from
scattered point samples. Several estimation methods sit behind one Method
contract; an Engine picks one through the Registry and owns the fallback
policy when it fails.
*/
package interp

import (
	"fmt"
	"strings"

	"github.com/alanhuang116/geofield/geostat"
	"github.com/alanhuang116/geofield/grid"
	"github.com/alanhuang116/geofield/sample"
)

// MinPoints is the smallest usable Sample Set any method accepts.
const MinPoints = 3

// Method evaluates estimates over a grid. The returned matrix is
// resolution×resolution, row = y axis. A non-nil error from a non-IDW method
// marks a recoverable numerical failure; the Engine decides what to do with
// it.
type Method interface {
	Interpolate(s *sample.Set, g *grid.Grid) ([][]float64, error)
}

// Descriptor is a method identifier with its human-readable label, for UI
// population.
type Descriptor struct {
	ID, Label string
}

// Params carries the tunable method parameters a Registry is built with.
type Params struct {
	Power     float64 // IDW power, must be positive
	Smoothing float64 // IDW smoothing, must be non-negative
	RBFSmooth float64 // RBF smoothing factor
}

// DefaultParams returns the parameter defaults: power 2, no smoothing.
func DefaultParams() Params {
	return Params{Power: 2, Smoothing: 0, RBFSmooth: 0}
}

type entry struct {
	label string
	impl  Method
}

// Registry is the fixed, ordered mapping from method identifier to label and
// implementation. It is built once at startup and read-only afterwards, so
// concurrent lookups need no locking.
type Registry struct {
	order   []string
	entries map[string]entry
}

// NewRegistry builds the method table. The base methods are always present;
// the two kriging identifiers are appended only when a geostatistics
// provider is supplied. Out-of-domain parameters are rejected with a
// ConfigError.
func NewRegistry(p Params, prov *geostat.Provider) (*Registry, error) {
	idw, err := NewIDW(p.Power, p.Smoothing)
	if err != nil {
		return nil, err
	}

	r := &Registry{entries: map[string]entry{}}
	r.add("idw", "Inverse Distance Weighting", idw)
	r.add("linear", "Linear Interpolation", &LocalFit{Degree: 1})
	r.add("cubic", "Cubic Interpolation", &LocalFit{Degree: 3})
	r.add("nearest", "Nearest Neighbor", NearestNeighbor{})
	r.add("rbf_multiquadric", "RBF (Multiquadric)",
		&RBF{Kernel: Multiquadric, Smooth: p.RBFSmooth})
	r.add("rbf_gaussian", "RBF (Gaussian)",
		&RBF{Kernel: GaussianKernel, Smooth: p.RBFSmooth})
	r.add("rbf_thin_plate", "RBF (Thin Plate Spline)",
		&RBF{Kernel: ThinPlate, Smooth: p.RBFSmooth})
	r.add("rbf_linear", "RBF (Linear)",
		&RBF{Kernel: LinearKernel, Smooth: p.RBFSmooth})

	if prov != nil {
		r.add("kriging_ordinary", "Ordinary Kriging", prov.Ordinary())
		r.add("kriging_universal", "Universal Kriging", prov.Universal())
	}

	return r, nil
}

func (r *Registry) add(id, label string, impl Method) {
	r.order = append(r.order, id)
	r.entries[id] = entry{label: label, impl: impl}
}

// Lookup resolves a method identifier. Unknown identifiers yield a
// ConfigError naming the identifier and the valid set.
func (r *Registry) Lookup(id string) (Method, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, &ConfigError{Reason: fmt.Sprintf(
			"unknown method %q, available: %s",
			id, strings.Join(r.order, ", "),
		)}
	}
	return e.impl, nil
}

// Descriptors lists the registered methods in registration order.
func (r *Registry) Descriptors() []Descriptor {
	ds := make([]Descriptor, len(r.order))
	for i, id := range r.order {
		ds[i] = Descriptor{ID: id, Label: r.entries[id].label}
	}
	return ds
}
