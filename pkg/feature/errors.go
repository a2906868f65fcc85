package feature

import (
	"errors"
	"fmt"
)

// ErrEmptySelection reports a selector that matched no edges on the
// current topology.
var ErrEmptySelection = errors.New("feature: selection matched no edges")

// InvalidParameterError reports a feature parameter outside its domain.
type InvalidParameterError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("feature: invalid parameter %s=%v: %s", e.Param, e.Value, e.Reason)
}

// GeometricInfeasibleError reports a feature operation that cannot be
// realized on the selected topology at the requested size. It is
// surfaced to the caller rather than clamped.
type GeometricInfeasibleError struct {
	Op    string
	Size  float64
	Limit float64
}

func (e *GeometricInfeasibleError) Error() string {
	return fmt.Sprintf("feature: %s size %v is geometrically infeasible: limit %v for the selected edge", e.Op, e.Size, e.Limit)
}
