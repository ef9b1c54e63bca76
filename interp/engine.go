package interp

import (
	log "github.com/sirupsen/logrus"

	"github.com/alanhuang116/geofield/grid"
	"github.com/alanhuang116/geofield/sample"
)

// Engine orchestrates grid construction and method dispatch. It holds no
// per-call state; one Engine may serve concurrent Interpolate calls.
//
// Failure policy: a numerical failure from a non-IDW method is recovered by
// exactly one retry with the default IDW estimator on the same samples and
// grid, surfaced only as a warning. The call fails only on insufficient
// data, a configuration problem, or when the fallback itself also fails.
type Engine struct {
	registry *Registry

	// Log receives fallback diagnostics. Defaults to the process logger.
	Log *log.Logger
}

// NewEngine creates an Engine over a registry.
func NewEngine(r *Registry) *Engine {
	return &Engine{registry: r, Log: log.StandardLogger()}
}

// Methods lists the engine's available methods in registration order, for
// UI population.
func (e *Engine) Methods() []Descriptor {
	return e.registry.Descriptors()
}

// Interpolate estimates the field sampled by s on a resolution×resolution
// grid using the named method. When bounds is nil the grid covers the
// samples' padded bounding box; explicit bounds are used verbatim. The
// Sample Set is cleaned of NaN/infinite entries first and must keep at
// least MinPoints points.
func (e *Engine) Interpolate(
	s *sample.Set, methodID string, resolution int, bounds *grid.Bounds,
) (*grid.Result, error) {
	if resolution < 2 {
		return nil, &ConfigError{
			Reason: "grid resolution must be at least 2",
		}
	}

	method, err := e.registry.Lookup(methodID)
	if err != nil {
		return nil, err
	}

	clean := s.Clean()
	if clean.Len() < MinPoints {
		return nil, &InsufficientDataError{Points: clean.Len()}
	}

	var g *grid.Grid
	if bounds != nil {
		g = grid.New(*bounds, resolution)
	} else {
		g = grid.FromSamples(clean, resolution)
	}

	zs, err := method.Interpolate(clean, g)
	if err != nil {
		zs, err = e.fallback(clean, g, methodID, err)
		if err != nil {
			return nil, err
		}
	}

	return &grid.Result{XS: g.XS, YS: g.YS, ZS: zs}, nil
}

func (e *Engine) fallback(
	s *sample.Set, g *grid.Grid, methodID string, cause error,
) ([][]float64, error) {
	e.Log.WithFields(log.Fields{
		"method": methodID,
		"cause":  cause,
	}).Warn("interpolation failed, falling back to IDW")

	zs, err := DefaultIDW().Interpolate(s, g)
	if err != nil {
		return nil, &ComputationError{Method: methodID, Cause: cause}
	}
	return zs, nil
}
