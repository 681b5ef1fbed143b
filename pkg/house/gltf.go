package house

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ExportGLB writes the mesh as a binary glTF file with per-vertex
// COLOR_0 attributes. Triangles are written unindexed-style, three
// unique vertices each, so every face keeps its flat color.
func ExportGLB(m *Mesh, path string) error {
	n := m.TriangleCount()
	positions := make([][3]float32, 0, n*3)
	colors := make([][4]uint8, 0, n*3)
	indices := make([]uint16, 0, n*3)

	for _, tri := range m.Triangles {
		for _, v := range tri.V {
			indices = append(indices, uint16(len(positions)))
			positions = append(positions, [3]float32{float32(v.X), float32(v.Y), float32(v.Z)})
			colors = append(colors, [4]uint8{tri.Color.R, tri.Color.G, tri.Color.B, tri.Color.A})
		}
	}

	doc := gltf.NewDocument()
	doc.Meshes = []*gltf.Mesh{{
		Name: "house",
		Primitives: []*gltf.Primitive{{
			Mode:    gltf.PrimitiveTriangles,
			Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
			Attributes: map[string]int{
				gltf.POSITION: modeler.WritePosition(doc, positions),
				gltf.COLOR_0:  modeler.WriteColor(doc, colors),
			},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: "house", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}
