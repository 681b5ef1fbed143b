// Package painter implements hidden-surface removal by depth ordering:
// triangles get a per-frame view-space depth key and are drawn
// back-to-front so nearer faces paint over farther ones. There is no
// depth buffer anywhere in the pipeline.
package painter

import (
	"image/color"
	"sort"

	"github.com/painthaus/painthaus/pkg/house"
	"github.com/painthaus/painthaus/pkg/math3d"
)

// Vertex is one entry of the flattened draw stream handed to a Surface.
type Vertex struct {
	Position math3d.Vec3
	Color    color.RGBA
}

// ComputeDepths transforms every triangle's vertices into view space
// and stores the mean of their Z coordinates as the triangle's depth
// key.
//
// A single representative scalar per triangle cannot order triangles
// whose planes intersect inside the frustum. That limitation is the
// algorithm as taught, not a bug to repair with plane splitting.
func ComputeDepths(m *house.Mesh, modelView math3d.Mat4) {
	for i := range m.Triangles {
		tri := &m.Triangles[i]
		v0 := modelView.TransformPoint(tri.V[0])
		v1 := modelView.TransformPoint(tri.V[1])
		v2 := modelView.TransformPoint(tri.V[2])
		tri.Depth = (v0.Z + v1.Z + v2.Z) / 3
	}
}

// SortBackToFront reorders the mesh in place by ascending depth. The
// camera looks down -Z in view space, so the most negative depth is the
// farthest triangle and draws first. The sort is stable: triangles with
// equal depth keep their build order, which makes draw order
// deterministic.
func SortBackToFront(m *house.Mesh) {
	if len(m.Triangles) < 2 {
		return
	}
	sort.SliceStable(m.Triangles, func(i, j int) bool {
		return m.Triangles[i].Depth < m.Triangles[j].Depth
	})
}

// Flatten appends the mesh's triangles to dst as a flat vertex stream,
// three vertices per triangle in the mesh's current order. No index
// buffer, no vertex sharing: flat face colors need unique vertices.
func Flatten(m *house.Mesh, dst []Vertex) []Vertex {
	for i := range m.Triangles {
		tri := &m.Triangles[i]
		for _, v := range tri.V {
			dst = append(dst, Vertex{Position: v, Color: tri.Color})
		}
	}
	return dst
}
