package painter

import (
	"math"

	"github.com/painthaus/painthaus/pkg/house"
	"github.com/painthaus/painthaus/pkg/math3d"
)

// Surface is the rendering collaborator the driver draws through. It
// rasterizes a flat vertex stream with the given transforms using a
// fixed pipeline that interpolates vertex color and performs no depth
// comparison and no back-face culling; submission order is the only
// thing deciding visibility.
type Surface interface {
	// Size returns the current drawable size in pixels. Height must be
	// positive; a zero height is a collaborator bug, not a condition the
	// driver checks for.
	Size() (width, height int)
	Clear()
	Draw(stream []Vertex, modelView, projection math3d.Mat4)
	Present() error
}

// Driver owns the mesh for the process lifetime and renders one frame
// per Tick. It keeps no per-frame state beyond the mesh's triangle
// order and the reused stream buffer; the rotation angle is derived
// from the elapsed time passed in, never accumulated, so there is no
// drift between frames.
type Driver struct {
	mesh    *house.Mesh
	surface Surface

	spinRate     float64     // rad/s applied to elapsed time
	cameraOffset math3d.Vec3 // view-space translation of the mesh
	fov          float64

	stream []Vertex
}

// Default view: the house slightly below eye level, three units down -Z.
const (
	defaultSpinRate = 0.5
	defaultFOV      = math.Pi / 4
	nearPlane       = 0.1
	farPlane        = 100.0
)

// NewDriver creates a driver rendering mesh through surface with the
// default camera.
func NewDriver(mesh *house.Mesh, surface Surface) *Driver {
	return &Driver{
		mesh:         mesh,
		surface:      surface,
		spinRate:     defaultSpinRate,
		cameraOffset: math3d.V3(0, -0.2, -3),
		fov:          defaultFOV,
		stream:       make([]Vertex, 0, mesh.TriangleCount()*3),
	}
}

// SetSpinRate sets the angular velocity in radians per second of
// elapsed time.
func (d *Driver) SetSpinRate(rate float64) {
	d.spinRate = rate
}

// SpinRate returns the current angular velocity.
func (d *Driver) SpinRate() float64 {
	return d.spinRate
}

// SetCameraOffset sets the view-space translation applied after the
// spin rotation.
func (d *Driver) SetCameraOffset(offset math3d.Vec3) {
	d.cameraOffset = offset
}

// CameraOffset returns the current view-space translation.
func (d *Driver) CameraOffset() math3d.Vec3 {
	return d.cameraOffset
}

// Mesh returns the driver's mesh.
func (d *Driver) Mesh() *house.Mesh {
	return d.mesh
}

// RotationAt returns the Y rotation for the given elapsed seconds.
func (d *Driver) RotationAt(elapsedSeconds float64) float64 {
	return elapsedSeconds * d.spinRate
}

// Tick renders one frame for the given elapsed time: compose the
// model-view transform (spin first, then translate away from the
// camera), rekey and sort the mesh back-to-front, flatten it, and hand
// the ordered stream to the surface. The caller schedules the next
// tick.
func (d *Driver) Tick(elapsedSeconds float64) error {
	modelView := math3d.Translate(d.cameraOffset).
		Mul(math3d.RotateY(d.RotationAt(elapsedSeconds)))

	width, height := d.surface.Size()
	aspect := float64(width) / float64(height)
	projection := math3d.Perspective(d.fov, aspect, nearPlane, farPlane)

	ComputeDepths(d.mesh, modelView)
	SortBackToFront(d.mesh)
	d.stream = Flatten(d.mesh, d.stream[:0])

	d.surface.Clear()
	d.surface.Draw(d.stream, modelView, projection)
	return d.surface.Present()
}
