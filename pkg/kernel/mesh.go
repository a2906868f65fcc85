package kernel

// Mesh is a triangle mesh with flat arrays: vertices has 3 floats per
// vertex (x,y,z), normals has 3 floats per vertex, indices has 3
// uint32s per triangle.
type Mesh struct {
	Vertices []float32 // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 // [nx0,ny0,nz0, ...]
	Indices  []uint32  // [i0,i1,i2, ...] triangles
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Volume returns the volume enclosed by the mesh, computed as the sum
// of signed tetrahedron volumes. The result is meaningful only for a
// closed mesh with consistent outward winding.
func (m *Mesh) Volume() float64 {
	var sum float64
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.vertex(m.Indices[i])
		b := m.vertex(m.Indices[i+1])
		c := m.vertex(m.Indices[i+2])
		sum += a[0]*(b[1]*c[2]-b[2]*c[1]) +
			a[1]*(b[2]*c[0]-b[0]*c[2]) +
			a[2]*(b[0]*c[1]-b[1]*c[0])
	}
	return sum / 6
}

func (m *Mesh) vertex(i uint32) [3]float64 {
	j := int(i) * 3
	return [3]float64{
		float64(m.Vertices[j]),
		float64(m.Vertices[j+1]),
		float64(m.Vertices[j+2]),
	}
}
