// Package house builds the fixed house mesh rendered by painthaus.
package house

import (
	"image/color"

	"github.com/painthaus/painthaus/pkg/math3d"
)

// Triangle is a single colored face of the mesh. V holds the three
// model-space vertices; their order never changes once built. Depth is
// scratch space for the painter: it is overwritten every frame before
// the mesh is sorted and has no meaning between frames.
type Triangle struct {
	V     [3]math3d.Vec3
	Color color.RGBA
	Depth float64
}

// Mesh is an ordered collection of triangles. The vertex data is fixed
// at build time; only the triangle order and per-triangle Depth change,
// both rewritten each frame by the painter.
type Mesh struct {
	Triangles []Triangle
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Flat face colors. One per face, never interpolated from lighting.
var (
	ColorFrontWall = color.RGBA{222, 184, 135, 255}
	ColorBackWall  = color.RGBA{188, 143, 143, 255}
	ColorLeftWall  = color.RGBA{176, 196, 160, 255}
	ColorRightWall = color.RGBA{150, 166, 200, 255}
	ColorCeiling   = color.RGBA{210, 210, 210, 255}
	ColorFloor     = color.RGBA{90, 90, 90, 255}
	ColorRoof      = color.RGBA{178, 34, 34, 255}
)

// Build returns a fresh 16-triangle house mesh: a box one unit wide and
// deep, 0.6 high, centered on X/Z with its base at Y=0, capped by a
// four-sided pyramid roof with its apex at (0, 1, 0). Each rectangular
// face splits into two triangles along a diagonal; the four roof faces
// are one triangle each. Winding is not kept consistent between faces
// because nothing culls by winding here — draw order alone decides
// visibility.
func Build() *Mesh {
	// The nine control points: eight box corners plus the roof apex.
	var (
		baseFL = math3d.V3(-0.5, 0, 0.5)  // front-left
		baseFR = math3d.V3(0.5, 0, 0.5)   // front-right
		baseBR = math3d.V3(0.5, 0, -0.5)  // back-right
		baseBL = math3d.V3(-0.5, 0, -0.5) // back-left
		topFL  = math3d.V3(-0.5, 0.6, 0.5)
		topFR  = math3d.V3(0.5, 0.6, 0.5)
		topBR  = math3d.V3(0.5, 0.6, -0.5)
		topBL  = math3d.V3(-0.5, 0.6, -0.5)
		apex   = math3d.V3(0, 1, 0)
	)

	m := &Mesh{Triangles: make([]Triangle, 0, 16)}

	quad := func(a, b, c, d math3d.Vec3, col color.RGBA) {
		m.Triangles = append(m.Triangles,
			Triangle{V: [3]math3d.Vec3{a, b, c}, Color: col},
			Triangle{V: [3]math3d.Vec3{a, c, d}, Color: col},
		)
	}
	roof := func(a, b math3d.Vec3) {
		m.Triangles = append(m.Triangles,
			Triangle{V: [3]math3d.Vec3{a, b, apex}, Color: ColorRoof},
		)
	}

	quad(baseFL, baseFR, topFR, topFL, ColorFrontWall) // front (+Z)
	quad(baseBR, baseBL, topBL, topBR, ColorBackWall)  // back (-Z)
	quad(baseBL, baseFL, topFL, topBL, ColorLeftWall)  // left (-X)
	quad(baseFR, baseBR, topBR, topFR, ColorRightWall) // right (+X)
	quad(topFL, topFR, topBR, topBL, ColorCeiling)     // top
	quad(baseBL, baseBR, baseFR, baseFL, ColorFloor)   // bottom

	roof(topFL, topFR) // toward +Z
	roof(topFR, topBR) // toward +X
	roof(topBR, topBL) // toward -Z
	roof(topBL, topFL) // toward -X

	return m
}
