package assembly

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// stlHeader defines the binary STL file header.
type stlHeader struct {
	_     [80]uint8
	Count uint32
}

// stlTriangle is one 50-byte binary STL record.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16
}

// ExportSTL serializes one body to a binary STL file. STL carries no
// labels, so this is the single-body secondary format next to the
// multi-body 3MF export.
func ExportSTL(nb NamedBody, path string) error {
	mesh, err := nb.Body.Mesh()
	if err != nil {
		return fmt.Errorf("assembly: tessellating %q: %w", nb.Label, err)
	}
	if mesh.IsEmpty() {
		return fmt.Errorf("assembly: body %q tessellated to an empty mesh", nb.Label)
	}

	var buf bytes.Buffer
	header := stlHeader{Count: uint32(mesh.TriangleCount())}
	if err := binary.Write(&buf, binary.LittleEndian, &header); err != nil {
		return err
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		var d stlTriangle
		d.Normal = stlVec(mesh.Normals, mesh.Indices[i])
		d.Vertex1 = stlVec(mesh.Vertices, mesh.Indices[i])
		d.Vertex2 = stlVec(mesh.Vertices, mesh.Indices[i+1])
		d.Vertex3 = stlVec(mesh.Vertices, mesh.Indices[i+2])
		if err := binary.Write(&buf, binary.LittleEndian, &d); err != nil {
			return err
		}
	}
	return writeFileAtomic(path, buf.Bytes(), 0o644)
}

func stlVec(flat []float32, i uint32) [3]float32 {
	j := int(i) * 3
	return [3]float32{flat[j], flat[j+1], flat[j+2]}
}
