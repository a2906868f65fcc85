package kernel

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// --- Mesh helper method tests ---

func TestMeshVertexCount(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		want     int
	}{
		{"empty", nil, 0},
		{"one vertex", []float32{1, 2, 3}, 1},
		{"four vertices", []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Vertices: tt.vertices}
			if got := m.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshTriangleCount(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
		want    int
	}{
		{"empty", nil, 0},
		{"one triangle", []uint32{0, 1, 2}, 1},
		{"two triangles", []uint32{0, 1, 2, 2, 3, 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Indices: tt.indices}
			if got := m.TriangleCount(); got != tt.want {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshIsEmpty(t *testing.T) {
	t.Run("empty mesh", func(t *testing.T) {
		m := &Mesh{}
		if !m.IsEmpty() {
			t.Error("IsEmpty() = false for empty mesh, want true")
		}
	})
	t.Run("non-empty mesh", func(t *testing.T) {
		m := &Mesh{Vertices: []float32{1, 2, 3}}
		if m.IsEmpty() {
			t.Error("IsEmpty() = true for non-empty mesh, want false")
		}
	})
}

func TestMeshVolume(t *testing.T) {
	// Unit tetrahedron with outward winding. Volume is 1/6.
	m := &Mesh{
		Vertices: []float32{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		},
		Indices: []uint32{
			0, 2, 1,
			0, 1, 3,
			1, 2, 3,
			0, 3, 2,
		},
	}
	if got := m.Volume(); math.Abs(got-1.0/6.0) > 1e-9 {
		t.Errorf("Volume() = %g, want %g", got, 1.0/6.0)
	}
	if got := (&Mesh{}).Volume(); got != 0 {
		t.Errorf("empty mesh Volume() = %g, want 0", got)
	}
}

// --- Compile-time interface check with a stub kernel ---

// stubSolid is a minimal Solid implementation for testing.
type stubSolid struct {
	minBB, maxBB [3]float64
}

func (s *stubSolid) BoundingBox() (min, max [3]float64) {
	return s.minBB, s.maxBB
}

// stubKernel is a minimal Kernel implementation that proves the interface
// is satisfiable. All methods return trivial results.
type stubKernel struct{}

func (k *stubKernel) Extrude(outline []r2.Vec, height float64) (Solid, error) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range outline {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return &stubSolid{
		minBB: [3]float64{minX, minY, 0},
		maxBB: [3]float64{maxX, maxY, height},
	}, nil
}

func (k *stubKernel) Cylinder(radius, height float64) (Solid, error) {
	return &stubSolid{
		minBB: [3]float64{-radius, -radius, 0},
		maxBB: [3]float64{radius, radius, height},
	}, nil
}

func (k *stubKernel) Cone(bottomRadius, topRadius, height float64) (Solid, error) {
	r := math.Max(bottomRadius, topRadius)
	return &stubSolid{
		minBB: [3]float64{-r, -r, 0},
		maxBB: [3]float64{r, r, height},
	}, nil
}

func (k *stubKernel) Revolve(outline []r2.Vec) (Solid, error) {
	var rmax, zmin, zmax float64
	zmin = math.Inf(1)
	zmax = math.Inf(-1)
	for _, p := range outline {
		rmax = math.Max(rmax, math.Abs(p.X))
		zmin = math.Min(zmin, p.Y)
		zmax = math.Max(zmax, p.Y)
	}
	return &stubSolid{
		minBB: [3]float64{-rmax, -rmax, zmin},
		maxBB: [3]float64{rmax, rmax, zmax},
	}, nil
}

func (k *stubKernel) Union(a, _ Solid) Solid        { return a }
func (k *stubKernel) Difference(a, _ Solid) Solid   { return a }
func (k *stubKernel) Intersection(a, _ Solid) Solid { return a }

func (k *stubKernel) Translate(s Solid, x, y, z float64) Solid {
	min, max := s.BoundingBox()
	return &stubSolid{
		minBB: [3]float64{min[0] + x, min[1] + y, min[2] + z},
		maxBB: [3]float64{max[0] + x, max[1] + y, max[2] + z},
	}
}

func (k *stubKernel) Volume(_ Solid) float64 { return 0 }

func (k *stubKernel) ToMesh(_ Solid) (*Mesh, error) {
	return &Mesh{}, nil
}

// Compile-time checks that the stubs implement the interfaces.
var _ Solid = (*stubSolid)(nil)
var _ Kernel = (*stubKernel)(nil)

func TestStubKernelCylinderBoundingBox(t *testing.T) {
	var k Kernel = &stubKernel{}
	s, err := k.Cylinder(5, 30)
	if err != nil {
		t.Fatalf("Cylinder() error = %v", err)
	}
	min, max := s.BoundingBox()
	if min != [3]float64{-5, -5, 0} {
		t.Errorf("Cylinder min = %v, want [-5 -5 0]", min)
	}
	if max != [3]float64{5, 5, 30} {
		t.Errorf("Cylinder max = %v, want [5 5 30]", max)
	}
}

func TestStubKernelTranslate(t *testing.T) {
	var k Kernel = &stubKernel{}
	s, err := k.Cylinder(1, 2)
	if err != nil {
		t.Fatalf("Cylinder() error = %v", err)
	}
	moved := k.Translate(s, 10, 0, 5)
	min, max := moved.BoundingBox()
	if min != [3]float64{9, -1, 5} {
		t.Errorf("Translate min = %v, want [9 -1 5]", min)
	}
	if max != [3]float64{11, 1, 7} {
		t.Errorf("Translate max = %v, want [11 1 7]", max)
	}
}

func TestStubKernelToMesh(t *testing.T) {
	var k Kernel = &stubKernel{}
	s, err := k.Extrude([]r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, 1)
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}
	m, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh() error = %v", err)
	}
	if m == nil {
		t.Fatal("ToMesh() returned nil mesh")
	}
	if !m.IsEmpty() {
		t.Error("stub ToMesh() should return empty mesh")
	}
}
