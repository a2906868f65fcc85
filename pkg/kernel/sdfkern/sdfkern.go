// Package sdfkern implements the kernel.Kernel interface using the
// github.com/soypat/sdf signed distance function CAD library.
package sdfkern

import (
	"fmt"
	"math"

	"github.com/chazu/filament/pkg/kernel"
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2"
	"github.com/soypat/sdf/form2/must2"
	"github.com/soypat/sdf/form3/must3"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// defaultMeshCells controls octree tessellation resolution.
const defaultMeshCells = 200

// volumeGridCells is the sample count per axis for volume estimation.
const volumeGridCells = 80

// sdfSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.Bounds()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// Kernel implements kernel.Kernel on soypat/sdf.
type Kernel struct{}

// New returns a new Kernel.
func New() *Kernel {
	return &Kernel{}
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfSolid).s
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfSolid{s: s}
}

// Extrude sweeps a closed outline straight up from the working plane.
// sdf.Extrude3D centers the solid on z, so the result is shifted to
// put its base at z = 0.
func (k *Kernel) Extrude(outline []r2.Vec, height float64) (kernel.Solid, error) {
	if len(outline) < 3 {
		return nil, fmt.Errorf("sdfkern: extrude outline has %d vertices, need at least 3", len(outline))
	}
	if height <= 0 {
		return nil, fmt.Errorf("sdfkern: extrude height %g must be positive", height)
	}
	poly, err := form2.Polygon(outline)
	if err != nil {
		return nil, fmt.Errorf("sdfkern: extrude outline: %w", err)
	}
	s := sdf.Extrude3D(poly, height)
	s = sdf.Transform3D(s, sdf.Translate3D(r3.Vec{Z: height / 2}))
	return wrap(s), nil
}

// Cylinder creates an upright cylinder with its base on the working
// plane and its axis on z.
func (k *Kernel) Cylinder(radius, height float64) (kernel.Solid, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sdfkern: cylinder radius %g must be positive", radius)
	}
	if height <= 0 {
		return nil, fmt.Errorf("sdfkern: cylinder height %g must be positive", height)
	}
	s := sdf.Transform3D(must3.Cylinder(height, radius, 0), sdf.Translate3D(r3.Vec{Z: height / 2}))
	return wrap(s), nil
}

// Cone creates an upright truncated cone with its base on the working
// plane. One radius may be zero for a full cone.
func (k *Kernel) Cone(bottomRadius, topRadius, height float64) (kernel.Solid, error) {
	if bottomRadius < 0 || topRadius < 0 {
		return nil, fmt.Errorf("sdfkern: cone radii (%g, %g) must be non-negative", bottomRadius, topRadius)
	}
	if bottomRadius == 0 && topRadius == 0 {
		return nil, fmt.Errorf("sdfkern: cone needs at least one positive radius")
	}
	if height <= 0 {
		return nil, fmt.Errorf("sdfkern: cone height %g must be positive", height)
	}
	s := sdf.Transform3D(must3.Cone(height, bottomRadius, topRadius, 0), sdf.Translate3D(r3.Vec{Z: height / 2}))
	return wrap(s), nil
}

// Revolve sweeps a closed outline in the (radial, z) half-plane a full
// turn about the z axis. Outline x coordinates are radial distances
// and must be non-negative; y coordinates are kept as z.
func (k *Kernel) Revolve(outline []r2.Vec) (kernel.Solid, error) {
	if len(outline) < 3 {
		return nil, fmt.Errorf("sdfkern: revolve outline has %d vertices, need at least 3", len(outline))
	}
	for i, p := range outline {
		if p.X < 0 {
			return nil, fmt.Errorf("sdfkern: revolve outline vertex %d has negative radial coordinate %g", i, p.X)
		}
	}
	return wrap(sdf.Revolve3D(must2.Polygon(outline), 2*math.Pi)), nil
}

// Union returns the union of two solids.
func (k *Kernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(b)))
}

// Difference returns the difference a - b.
func (k *Kernel) Difference(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Difference3D(unwrap(a), unwrap(b)))
}

// Intersection returns the intersection of two solids.
func (k *Kernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Intersect3D(unwrap(a), unwrap(b)))
}

// Translate moves a solid by (x, y, z).
func (k *Kernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	m := sdf.Translate3D(r3.Vec{X: x, Y: y, Z: z})
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// Volume estimates the enclosed volume by sampling the distance field
// on a regular grid over the bounding box. A fully outside field
// yields zero.
func (k *Kernel) Volume(s kernel.Solid) float64 {
	s3 := unwrap(s)
	bb := s3.Bounds()
	dx := (bb.Max.X - bb.Min.X) / volumeGridCells
	dy := (bb.Max.Y - bb.Min.Y) / volumeGridCells
	dz := (bb.Max.Z - bb.Min.Z) / volumeGridCells
	if dx <= 0 || dy <= 0 || dz <= 0 {
		return 0
	}
	var inside int
	// Sample cell centers.
	for i := 0; i < volumeGridCells; i++ {
		x := bb.Min.X + (float64(i)+0.5)*dx
		for j := 0; j < volumeGridCells; j++ {
			y := bb.Min.Y + (float64(j)+0.5)*dy
			for l := 0; l < volumeGridCells; l++ {
				z := bb.Min.Z + (float64(l)+0.5)*dz
				if s3.Evaluate(r3.Vec{X: x, Y: y, Z: z}) < 0 {
					inside++
				}
			}
		}
	}
	return float64(inside) * dx * dy * dz
}

// ToMesh converts a solid to a triangle mesh using octree tessellation.
func (k *Kernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	renderer := render.NewOctreeRenderer(unwrap(s), defaultMeshCells)
	triangles, err := render.RenderAll(renderer)
	if err != nil {
		return nil, fmt.Errorf("sdfkern: tessellation: %w", err)
	}

	numVerts := len(triangles) * 3
	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
