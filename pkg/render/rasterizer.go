package render

import (
	"math"

	"github.com/painthaus/painthaus/pkg/math3d"
	"github.com/painthaus/painthaus/pkg/painter"
)

// Rasterizer fills triangles into a framebuffer in exactly the order
// they are submitted. It keeps no depth buffer and never culls by
// winding: a later triangle always overwrites an earlier one where they
// overlap. That is the contract the painter's algorithm needs.
type Rasterizer struct {
	fb *Framebuffer
}

// NewRasterizer creates a rasterizer drawing into fb.
func NewRasterizer(fb *Framebuffer) *Rasterizer {
	return &Rasterizer{fb: fb}
}

// SetFramebuffer swaps the target framebuffer (after a resize).
func (r *Rasterizer) SetFramebuffer(fb *Framebuffer) {
	r.fb = fb
}

// screenVertex is a stream vertex after projection to screen space.
type screenVertex struct {
	X, Y  float64
	W     float64 // Clip-space w, kept for behind-camera rejection
	Color Color
}

// DrawStream rasterizes a flat vertex stream, three vertices per
// triangle, in stream order with interpolated vertex colors.
func (r *Rasterizer) DrawStream(stream []painter.Vertex, modelView, projection math3d.Mat4) {
	mvp := projection.Mul(modelView)
	for i := 0; i+2 < len(stream); i += 3 {
		r.drawTriangle(stream[i], stream[i+1], stream[i+2], mvp)
	}
}

// DrawStreamWireframe draws only the triangle edges of the stream, in
// stream order, all in one color.
func (r *Rasterizer) DrawStreamWireframe(stream []painter.Vertex, modelView, projection math3d.Mat4, c Color) {
	mvp := projection.Mul(modelView)
	for i := 0; i+2 < len(stream); i += 3 {
		sv, ok := r.projectTriangle(stream[i], stream[i+1], stream[i+2], mvp)
		if !ok {
			continue
		}
		r.fb.DrawLine(int(sv[0].X), int(sv[0].Y), int(sv[1].X), int(sv[1].Y), c)
		r.fb.DrawLine(int(sv[1].X), int(sv[1].Y), int(sv[2].X), int(sv[2].Y), c)
		r.fb.DrawLine(int(sv[2].X), int(sv[2].Y), int(sv[0].X), int(sv[0].Y), c)
	}
}

// projectTriangle transforms three stream vertices into screen space.
// Returns ok=false when the triangle lies entirely behind the camera.
func (r *Rasterizer) projectTriangle(v0, v1, v2 painter.Vertex, mvp math3d.Mat4) ([3]screenVertex, bool) {
	var sv [3]screenVertex
	allBehind := true

	for i, v := range [3]painter.Vertex{v0, v1, v2} {
		clip := mvp.MulVec4(math3d.V4FromV3(v.Position, 1))
		if clip.W > 0 {
			allBehind = false
		}

		ndc := clip.PerspectiveDivide()

		// NDC to screen coordinates, Y flipped
		sv[i].X = (ndc.X + 1) * 0.5 * float64(r.fb.Width)
		sv[i].Y = (1 - ndc.Y) * 0.5 * float64(r.fb.Height)
		sv[i].W = clip.W
		sv[i].Color = v.Color
	}

	return sv, !allBehind
}

func (r *Rasterizer) drawTriangle(v0, v1, v2 painter.Vertex, mvp math3d.Mat4) {
	sv, ok := r.projectTriangle(v0, v1, v2, mvp)
	if !ok {
		return
	}

	// No winding test here: both faces of every triangle draw, because
	// draw order alone decides what stays visible.

	// Bounding box clamped to the framebuffer
	minX := int(math.Max(0, math.Floor(min3(sv[0].X, sv[1].X, sv[2].X))))
	maxX := int(math.Min(float64(r.fb.Width-1), math.Ceil(max3(sv[0].X, sv[1].X, sv[2].X))))
	minY := int(math.Max(0, math.Floor(min3(sv[0].Y, sv[1].Y, sv[2].Y))))
	maxY := int(math.Min(float64(r.fb.Height-1), math.Ceil(max3(sv[0].Y, sv[1].Y, sv[2].Y))))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5

			bc := barycentric(
				sv[0].X, sv[0].Y,
				sv[1].X, sv[1].Y,
				sv[2].X, sv[2].Y,
				px, py,
			)
			if bc.X < 0 || bc.Y < 0 || bc.Z < 0 {
				continue
			}

			// No depth test; the pixel is simply overwritten.
			r.fb.SetPixel(x, y, interpolateColor3(sv[0].Color, sv[1].Color, sv[2].Color, bc))
		}
	}
}

// barycentric calculates barycentric coordinates for point (px, py) in
// the triangle (x0,y0)-(x1,y1)-(x2,y2).
func barycentric(x0, y0, x1, y1, x2, y2, px, py float64) math3d.Vec3 {
	v0x, v0y := x2-x0, y2-y0
	v1x, v1y := x1-x0, y1-y0
	v2x, v2y := px-x0, py-y0

	dot00 := v0x*v0x + v0y*v0y
	dot01 := v0x*v1x + v0y*v1y
	dot02 := v0x*v2x + v0y*v2y
	dot11 := v1x*v1x + v1y*v1y
	dot12 := v1x*v2x + v1y*v2y

	invDenom := 1.0 / (dot00*dot11 - dot01*dot01)
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	return math3d.V3(1-u-v, v, u)
}

// interpolateColor3 interpolates between 3 colors using barycentric
// coordinates.
func interpolateColor3(c0, c1, c2 Color, bc math3d.Vec3) Color {
	return RGB(
		uint8(float64(c0.R)*bc.X+float64(c1.R)*bc.Y+float64(c2.R)*bc.Z),
		uint8(float64(c0.G)*bc.X+float64(c1.G)*bc.Y+float64(c2.G)*bc.Z),
		uint8(float64(c0.B)*bc.X+float64(c1.B)*bc.Y+float64(c2.B)*bc.Z),
	)
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
