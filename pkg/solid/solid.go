// Package solid assembles extruded bodies and combines them through
// boolean operations and an explicit composition tree. A Body couples
// an opaque kernel solid with construction-derived topology records
// (planar faces and circular boundary edges) so that selector-driven
// feature operations can reason about the shape without querying the
// kernel's internal representation.
package solid

import (
	"github.com/chazu/filament/pkg/kernel"
	"github.com/chazu/filament/pkg/layout"
	"github.com/chazu/filament/pkg/profile"
)

// Body is a solid with its construction-derived topology. Bodies are
// immutable: every operation returns a new Body and the operands are
// logically consumed.
type Body struct {
	k     kernel.Kernel
	solid kernel.Solid
	faces []Face
	edges []Edge
}

// Kernel returns the geometry kernel the body was built with.
func (b *Body) Kernel() kernel.Kernel { return b.k }

// Solid returns the underlying kernel solid.
func (b *Body) Solid() kernel.Solid { return b.solid }

// BoundingBox returns the body's axis-aligned bounding box.
func (b *Body) BoundingBox() (min, max [3]float64) {
	return b.solid.BoundingBox()
}

// Faces returns a copy of the body's planar face records.
func (b *Body) Faces() []Face {
	return append([]Face(nil), b.faces...)
}

// Edges returns a copy of the body's circular edge records.
func (b *Body) Edges() []Edge {
	return append([]Edge(nil), b.edges...)
}

// Volume returns the body's enclosed volume.
func (b *Body) Volume() float64 {
	return b.k.Volume(b.solid)
}

// Mesh tessellates the body into a triangle mesh.
func (b *Body) Mesh() (*kernel.Mesh, error) {
	return b.k.ToMesh(b.solid)
}

// Derive returns a new Body on the same kernel with replacement
// geometry and topology. Feature operations use it to publish their
// edited results.
func (b *Body) Derive(s kernel.Solid, faces []Face, edges []Edge) *Body {
	return &Body{k: b.k, solid: s, faces: faces, edges: edges}
}

// Extrude sweeps a closed profile straight up from the working plane.
// An exact circle profile becomes a kernel cylinder so its volume and
// rim records stay exact. The height must be positive.
func Extrude(k kernel.Kernel, p *profile.Profile, height float64) (*Body, error) {
	if height <= 0 {
		return nil, &InvalidParameterError{Param: "height", Value: height, Reason: "must be positive"}
	}
	if r, ok := p.IsCircle(); ok {
		return Cylinder(k, r, height)
	}
	s, err := k.Extrude(p.Vertices(), height)
	if err != nil {
		return nil, err
	}
	return &Body{
		k:     k,
		solid: s,
		faces: []Face{{Z: 0, Up: false}, {Z: height, Up: true}},
	}, nil
}

// Cylinder creates an upright cylinder with its base on the working
// plane, recording its two rim edges.
func Cylinder(k kernel.Kernel, radius, height float64) (*Body, error) {
	if radius <= 0 {
		return nil, &InvalidParameterError{Param: "radius", Value: radius, Reason: "must be positive"}
	}
	if height <= 0 {
		return nil, &InvalidParameterError{Param: "height", Value: height, Reason: "must be positive"}
	}
	s, err := k.Cylinder(radius, height)
	if err != nil {
		return nil, err
	}
	return &Body{
		k:     k,
		solid: s,
		faces: []Face{{Z: 0, Up: false}, {Z: height, Up: true}},
		edges: []Edge{
			{Z: 0, Radius: radius, Convex: true, FaceExtent: radius, WallExtent: height},
			{Z: height, Radius: radius, Convex: true, FaceExtent: radius, WallExtent: height},
		},
	}, nil
}

// Translate returns the body shifted by (dx, dy, dz); topology records
// move with it.
func (b *Body) Translate(dx, dy, dz float64) *Body {
	faces := make([]Face, len(b.faces))
	for i, f := range b.faces {
		f.Z += dz
		faces[i] = f
	}
	edges := make([]Edge, len(b.edges))
	for i, e := range b.edges {
		edges[i] = e.translated(dx, dy, dz)
	}
	return &Body{
		k:     b.k,
		solid: b.k.Translate(b.solid, dx, dy, dz),
		faces: faces,
		edges: edges,
	}
}

// Place replicates the body once per placement point, translating each
// copy in the working plane, and unions the copies into one Body. An
// empty placement set is signaled as EmptyResult rather than returning
// a null solid.
//
// The copies are assumed disjoint, so topology is the concatenation of
// each copy's records. Running the copies through Union instead would
// drop rims of later copies once the accumulated bounding box grew to
// span them.
func Place(b *Body, ps layout.PlacementSet) (*Body, error) {
	if len(ps) == 0 {
		return nil, &EmptyResultError{Op: "place", Reason: "empty placement set"}
	}
	faces := mergeFaces(nil, b.faces)
	edges := make([]Edge, 0, len(b.edges)*len(ps))
	acc := b.k.Translate(b.solid, ps[0].X, ps[0].Y, 0)
	for i, p := range ps {
		if i > 0 {
			acc = b.k.Union(acc, b.k.Translate(b.solid, p.X, p.Y, 0))
		}
		for _, e := range b.edges {
			edges = append(edges, e.translated(p.X, p.Y, 0))
		}
	}
	return &Body{k: b.k, solid: acc, faces: faces, edges: edges}, nil
}
