// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library. It is an alternative
// to the sdfkern backend; both meet the same contract, so swapping
// backends is a one-line change at the call site.
package sdfx

import (
	"fmt"

	"github.com/chazu/filament/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/spatial/r2"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// volumeGridCells is the sample count per axis for volume estimation.
const volumeGridCells = 80

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

func polygon(outline []r2.Vec) (sdf.SDF2, error) {
	pts := make([]v2.Vec, len(outline))
	for i, p := range outline {
		pts[i] = v2.Vec{X: p.X, Y: p.Y}
	}
	return sdf.Polygon2D(pts)
}

// Extrude sweeps a closed outline straight up from the working plane.
// sdf.Extrude3D centers the solid on z, so the result is shifted to
// put its base at z = 0.
func (k *SdfxKernel) Extrude(outline []r2.Vec, height float64) (kernel.Solid, error) {
	if len(outline) < 3 {
		return nil, fmt.Errorf("sdfx: extrude outline has %d vertices, need at least 3", len(outline))
	}
	if height <= 0 {
		return nil, fmt.Errorf("sdfx: extrude height %g must be positive", height)
	}
	poly, err := polygon(outline)
	if err != nil {
		return nil, fmt.Errorf("sdfx: extrude outline: %w", err)
	}
	s := sdf.Extrude3D(poly, height)
	s = sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: height / 2}))
	return wrap(s), nil
}

// Cylinder creates an upright cylinder with its base on the working
// plane and its axis on z.
func (k *SdfxKernel) Cylinder(radius, height float64) (kernel.Solid, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sdfx: cylinder radius %g must be positive", radius)
	}
	if height <= 0 {
		return nil, fmt.Errorf("sdfx: cylinder height %g must be positive", height)
	}
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx: cylinder: %w", err)
	}
	s = sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: height / 2}))
	return wrap(s), nil
}

// Cone creates an upright truncated cone with its base on the working
// plane. One radius may be zero for a full cone.
func (k *SdfxKernel) Cone(bottomRadius, topRadius, height float64) (kernel.Solid, error) {
	if bottomRadius < 0 || topRadius < 0 {
		return nil, fmt.Errorf("sdfx: cone radii (%g, %g) must be non-negative", bottomRadius, topRadius)
	}
	if bottomRadius == 0 && topRadius == 0 {
		return nil, fmt.Errorf("sdfx: cone needs at least one positive radius")
	}
	if height <= 0 {
		return nil, fmt.Errorf("sdfx: cone height %g must be positive", height)
	}
	s, err := sdf.Cone3D(height, bottomRadius, topRadius, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx: cone: %w", err)
	}
	s = sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: height / 2}))
	return wrap(s), nil
}

// Revolve sweeps a closed outline in the (radial, z) half-plane a full
// turn about the z axis.
func (k *SdfxKernel) Revolve(outline []r2.Vec) (kernel.Solid, error) {
	if len(outline) < 3 {
		return nil, fmt.Errorf("sdfx: revolve outline has %d vertices, need at least 3", len(outline))
	}
	for i, p := range outline {
		if p.X < 0 {
			return nil, fmt.Errorf("sdfx: revolve outline vertex %d has negative radial coordinate %g", i, p.X)
		}
	}
	poly, err := polygon(outline)
	if err != nil {
		return nil, fmt.Errorf("sdfx: revolve outline: %w", err)
	}
	s, err := sdf.Revolve3D(poly)
	if err != nil {
		return nil, fmt.Errorf("sdfx: revolve: %w", err)
	}
	return wrap(s), nil
}

// Union returns the union of two solids.
func (k *SdfxKernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(b)))
}

// Difference returns the difference a - b.
func (k *SdfxKernel) Difference(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Difference3D(unwrap(a), unwrap(b)))
}

// Intersection returns the intersection of two solids.
func (k *SdfxKernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Intersect3D(unwrap(a), unwrap(b)))
}

// Translate moves a solid by (x, y, z).
func (k *SdfxKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	m := sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// Volume estimates the enclosed volume by sampling the distance field
// on a regular grid over the bounding box.
func (k *SdfxKernel) Volume(s kernel.Solid) float64 {
	s3 := unwrap(s)
	bb := s3.BoundingBox()
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
				if s3.Evaluate(v3.Vec{X: x, Y: y, Z: z}) < 0 {
					inside++
				}
			}
		}
	}
	return float64(inside) * dx * dy * dz
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	renderer := render.NewMarchingCubesUniform(defaultMeshCells)
	triangles := render.ToTriangles(unwrap(s), renderer)
	if len(triangles) == 0 {
		return nil, fmt.Errorf("sdfx: tessellation produced no triangles")
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
