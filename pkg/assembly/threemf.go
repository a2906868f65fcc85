package assembly

import (
	"bytes"
	"fmt"

	"github.com/hpinc/go3mf"

	"github.com/chazu/filament/pkg/kernel"
)

// encode3MF tessellates each body into a go3mf model and renders the
// full container into memory, so a downstream write failure cannot
// leave a half-built archive. One object per body, build items in the
// caller's order, object name attribute carrying the label.
func encode3MF(bodies []NamedBody) ([]byte, error) {
	model := new(go3mf.Model)
	model.Units = go3mf.UnitMillimeter
	for i, nb := range bodies {
		mesh, err := nb.Body.Mesh()
		if err != nil {
			return nil, fmt.Errorf("assembly: tessellating %q: %w", nb.Label, err)
		}
		if mesh.IsEmpty() {
			return nil, fmt.Errorf("assembly: body %q tessellated to an empty mesh", nb.Label)
		}
		obj := &go3mf.Object{
			ID:   uint32(i + 1),
			Name: nb.Label,
			Mesh: weldMesh(mesh),
		}
		model.Resources.Objects = append(model.Resources.Objects, obj)
		model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: obj.ID})
	}

	var buf bytes.Buffer
	if err := go3mf.NewEncoder(&buf).Encode(model); err != nil {
		return nil, fmt.Errorf("assembly: encoding model: %w", err)
	}
	return buf.Bytes(), nil
}

// weldMesh deduplicates the tessellator's per-triangle vertices into an
// indexed go3mf mesh.
func weldMesh(m *kernel.Mesh) *go3mf.Mesh {
	out := new(go3mf.Mesh)
	index := make(map[go3mf.Point3D]uint32)

	lookup := func(i uint32) uint32 {
		j := int(i) * 3
		key := go3mf.Point3D{m.Vertices[j], m.Vertices[j+1], m.Vertices[j+2]}
		if id, ok := index[key]; ok {
			return id
		}
		id := uint32(len(out.Vertices.Vertex))
		index[key] = id
		out.Vertices.Vertex = append(out.Vertices.Vertex, key)
		return id
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		out.Triangles.Triangle = append(out.Triangles.Triangle, go3mf.Triangle{
			V1: lookup(m.Indices[i]),
			V2: lookup(m.Indices[i+1]),
			V3: lookup(m.Indices[i+2]),
		})
	}
	return out
}

// NamedMesh is one reloaded body: its label and indexed mesh.
type NamedMesh struct {
	Label string
	Mesh  *kernel.Mesh
}

// Load reads a 3MF file back as named meshes, in the build order the
// file declares.
func Load(path string) ([]NamedMesh, error) {
	r, err := go3mf.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("assembly: opening %s: %w", path, err)
	}
	defer r.Close()

	var model go3mf.Model
	if err := r.Decode(&model); err != nil {
		return nil, fmt.Errorf("assembly: decoding %s: %w", path, err)
	}

	var out []NamedMesh
	for _, item := range model.Build.Items {
		obj, ok := model.FindObject(item.ObjectPath(), item.ObjectID)
		if !ok {
			return nil, fmt.Errorf("assembly: build item references missing object %d", item.ObjectID)
		}
		if obj.Mesh == nil {
			return nil, fmt.Errorf("assembly: object %d has no mesh", item.ObjectID)
		}
		out = append(out, NamedMesh{Label: obj.Name, Mesh: flattenMesh(obj.Mesh)})
	}
	return out, nil
}

// flattenMesh converts a decoded go3mf mesh back to the flat layout.
func flattenMesh(m *go3mf.Mesh) *kernel.Mesh {
	out := &kernel.Mesh{
		Vertices: make([]float32, 0, len(m.Vertices.Vertex)*3),
		Indices:  make([]uint32, 0, len(m.Triangles.Triangle)*3),
	}
	for _, v := range m.Vertices.Vertex {
		out.Vertices = append(out.Vertices, v.X(), v.Y(), v.Z())
	}
	for _, t := range m.Triangles.Triangle {
		out.Indices = append(out.Indices, t.V1, t.V2, t.V3)
	}
	return out
}
