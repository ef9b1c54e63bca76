/*package config reads interpolation parameter files for callers embedding
the engine. Files are gcfg/INI style, one [Interpolation] section.
*/
package config

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/alanhuang116/geofield/geostat"
	"github.com/alanhuang116/geofield/interp"
)

const (
	DefaultResolution = 100
	MinResolution     = 50
	MaxResolution     = 200
)

const ExampleInterpolationFile = `[Interpolation]

#######################
# Required Parameters #
#######################

# Method identifies the interpolation algorithm. One of:
# [ idw | linear | cubic | nearest |
#   rbf_multiquadric | rbf_gaussian | rbf_thin_plate | rbf_linear |
#   kriging_ordinary | kriging_universal ]
# The kriging methods are only valid when a geostatistics provider is
# configured.
Method = idw

#######################
# Optional Parameters #
#######################

# Number of grid points per axis. Must be in [50, 200]. Default is 100.
# Resolution = 100

# IDW power parameter. Must be positive. Default is 2.
# Power = 2.0

# IDW smoothing term added to every distance. Must be non-negative.
# Default is 0.
# Smoothing = 0.0

# RBF smoothing factor. Default is 0 (exact interpolation).
# RBFSmooth = 0.0

# Variogram model for the kriging methods. One of:
# [ gaussian | exponential | spherical | linear ]
# Default is gaussian.
# VariogramModel = gaussian

# Cells farther than this from every sample are masked out of the result,
# in coordinate units. Default is 0.05.
# MaskDistance = 0.05`

// InterpolationConfig mirrors the [Interpolation] section of a parameter
// file.
type InterpolationConfig struct {
	Method         string
	Resolution     int
	Power          float64
	Smoothing      float64
	RBFSmooth      float64
	VariogramModel string
	MaskDistance   float64
}

// InterpolationWrapper is the struct gcfg parses a file into.
type InterpolationWrapper struct {
	Interpolation InterpolationConfig
}

// DefaultInterpolationWrapper returns a wrapper pre-loaded with the
// defaults, so absent optional fields keep them.
func DefaultInterpolationWrapper() *InterpolationWrapper {
	return &InterpolationWrapper{
		Interpolation: InterpolationConfig{
			Method:         "idw",
			Resolution:     DefaultResolution,
			Power:          2,
			Smoothing:      0,
			RBFSmooth:      0,
			VariogramModel: "gaussian",
			MaskDistance:   interp.DefaultMaskDistance,
		},
	}
}

// ReadInterpolationConfig reads and validates a parameter file.
func ReadInterpolationConfig(fname string) (*InterpolationConfig, error) {
	wrap := DefaultInterpolationWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.Interpolation
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}

// CheckInit validates the parsed values.
func (con *InterpolationConfig) CheckInit() error {
	if con.Method == "" {
		return fmt.Errorf("the variable 'Method' was not set")
	}
	if con.Resolution < MinResolution || con.Resolution > MaxResolution {
		return fmt.Errorf(
			"the variable 'Resolution' is set to %d, but must be in the range [%d, %d]",
			con.Resolution, MinResolution, MaxResolution,
		)
	}
	if !(con.Power > 0) {
		return fmt.Errorf(
			"the variable 'Power' is set to %g, but must be positive",
			con.Power,
		)
	}
	if con.Smoothing < 0 {
		return fmt.Errorf(
			"the variable 'Smoothing' is set to %g, but must be non-negative",
			con.Smoothing,
		)
	}
	if con.MaskDistance < 0 {
		return fmt.Errorf(
			"the variable 'MaskDistance' is set to %g, but must be non-negative",
			con.MaskDistance,
		)
	}
	if _, err := geostat.ParseModel(con.VariogramModel); err != nil {
		return err
	}
	return nil
}

// Params converts the config into registry parameters.
func (con *InterpolationConfig) Params() interp.Params {
	return interp.Params{
		Power:     con.Power,
		Smoothing: con.Smoothing,
		RBFSmooth: con.RBFSmooth,
	}
}
