package interp

import (
	"fmt"
)

// InsufficientDataError reports a Sample Set with too few usable points for
// any interpolation method to run.
type InsufficientDataError struct {
	Points int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf(
		"need at least %d usable points for interpolation, got %d",
		MinPoints, e.Points,
	)
}

// ConfigError reports an unknown method identifier or an out-of-domain
// parameter. It is fatal to the call and never recovered internally.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return e.Reason }

// ComputationError reports that a method failed and the IDW fallback failed
// as well. Cause preserves the originating method failure.
type ComputationError struct {
	Method string
	Cause  error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("method %q failed and so did the IDW fallback: %v",
		e.Method, e.Cause)
}

func (e *ComputationError) Unwrap() error { return e.Cause }
