// Package kernel defines the abstract geometry kernel interface.
// Implementations provide solid construction, boolean evaluation and
// meshing behind this interface. The kernel abstraction keeps the
// construction model independent of any particular geometry backend.
package kernel

import "gonum.org/v1/gonum/spatial/r2"

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface. Extruded and
// primitive solids rest on the working plane: their lowest point is at
// z = 0 and they extend upward by their height.
type Kernel interface {
	// Primitives. Outlines are closed counter-clockwise vertex loops in
	// the working plane. Revolve interprets the loop in the (radial, z)
	// half-plane and sweeps it a full turn about the z axis.
	Extrude(outline []r2.Vec, height float64) (Solid, error)
	Cylinder(radius, height float64) (Solid, error)
	Cone(bottomRadius, topRadius, height float64) (Solid, error)
	Revolve(outline []r2.Vec) (Solid, error)

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid

	// Volume returns the enclosed volume, zero for an empty solid.
	Volume(s Solid) float64

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
