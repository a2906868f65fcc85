package feature

import (
	"github.com/chazu/filament/pkg/layout"
	"github.com/chazu/filament/pkg/solid"
)

// overcut is how far a hole tool reaches past the surfaces it opens,
// so the boolean cut never leaves a zero-thickness skin.
const overcut = 1.0

// Hole drills a blind hole of the given diameter and depth, measured
// down from the body's top, at every placement point. The cut records
// rim edges on the face it opens.
func Hole(b *solid.Body, ps layout.PlacementSet, diameter, depth float64) (*solid.Body, error) {
	if diameter <= 0 {
		return nil, &InvalidParameterError{Param: "diameter", Value: diameter, Reason: "must be positive"}
	}
	if depth <= 0 {
		return nil, &InvalidParameterError{Param: "depth", Value: depth, Reason: "must be positive"}
	}
	_, max := b.BoundingBox()
	return drill(b, ps, diameter, max[2]-depth, depth+overcut)
}

// HoleFromBottom drills a blind hole of the given diameter and depth,
// measured up from the body's underside, at every placement point.
// Used for dowel and registration pockets that must not show on the
// top surface.
func HoleFromBottom(b *solid.Body, ps layout.PlacementSet, diameter, depth float64) (*solid.Body, error) {
	if diameter <= 0 {
		return nil, &InvalidParameterError{Param: "diameter", Value: diameter, Reason: "must be positive"}
	}
	if depth <= 0 {
		return nil, &InvalidParameterError{Param: "depth", Value: depth, Reason: "must be positive"}
	}
	min, _ := b.BoundingBox()
	return drill(b, ps, diameter, min[2]-overcut, depth+overcut)
}

// ThroughHole drills holes spanning the body's full material thickness
// at every placement point. The depth comes from the body's current
// extent, never from the caller.
func ThroughHole(b *solid.Body, ps layout.PlacementSet, diameter float64) (*solid.Body, error) {
	if diameter <= 0 {
		return nil, &InvalidParameterError{Param: "diameter", Value: diameter, Reason: "must be positive"}
	}
	min, max := b.BoundingBox()
	return drill(b, ps, diameter, min[2]-overcut, max[2]-min[2]+2*overcut)
}

// drill subtracts a placed set of cylinder tools starting at base z
// with the given height.
func drill(b *solid.Body, ps layout.PlacementSet, diameter, base, height float64) (*solid.Body, error) {
	tool, err := solid.Cylinder(b.Kernel(), diameter/2, height)
	if err != nil {
		return nil, err
	}
	placed, err := solid.Place(tool.Translate(0, 0, base), ps)
	if err != nil {
		return nil, err
	}
	return b.Subtract(placed), nil
}
