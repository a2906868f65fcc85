// Package layout generates ordered sequences of 2D placement points for
// the repeating arrangements used by part models: polar rings and the
// hex-with-center family. Generation is deterministic and has no side
// effects: the same parameters always yield the same ordered points, so
// downstream stages can rely on placement order for reproducible builds.
package layout

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// PlacementSet is an ordered sequence of 2D placement points in the
// working plane. Order matters only for reproducibility; the geometry
// produced from a set is independent of it.
type PlacementSet []r2.Vec

// InvalidParameterError reports a layout parameter outside its domain.
type InvalidParameterError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("layout: invalid parameter %s=%v: %s", e.Param, e.Value, e.Reason)
}

// Ring returns count points evenly spaced on a circle of the given
// radius, angularly ascending from offsetDeg. A radius of zero is legal
// and collapses every point onto the origin.
func Ring(count int, radius, offsetDeg float64) (PlacementSet, error) {
	if count < 1 {
		return nil, &InvalidParameterError{Param: "count", Value: float64(count), Reason: "must be at least 1"}
	}
	if radius < 0 {
		return nil, &InvalidParameterError{Param: "radius", Value: radius, Reason: "must not be negative"}
	}
	step := 2 * math.Pi / float64(count)
	theta := offsetDeg * math.Pi / 180
	pts := make(PlacementSet, count)
	for i := range pts {
		a := theta + float64(i)*step
		pts[i] = r2.Vec{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return pts, nil
}

// Polar is Ring under the name the alignment-dowel layouts use.
func Polar(count int, radius, offsetDeg float64) (PlacementSet, error) {
	return Ring(count, radius, offsetDeg)
}

// HexWithCenter returns the seven points of a hexagonal arrangement:
// the origin followed by a six-point ring of the given pitch, starting
// on the +X axis.
func HexWithCenter(pitch float64) (PlacementSet, error) {
	ring, err := Ring(6, pitch, 0)
	if err != nil {
		return nil, err
	}
	return append(PlacementSet{{}}, ring...), nil
}

// Translate returns a copy of the set with every point shifted by
// (dx, dy). The receiver is unchanged.
func (ps PlacementSet) Translate(dx, dy float64) PlacementSet {
	out := make(PlacementSet, len(ps))
	for i, p := range ps {
		out[i] = r2.Vec{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}
