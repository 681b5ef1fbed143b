package painter

import (
	"image/color"
	"math"
	"testing"

	"github.com/painthaus/painthaus/pkg/house"
	"github.com/painthaus/painthaus/pkg/math3d"
)

func triAt(z float64, col color.RGBA) house.Triangle {
	return house.Triangle{
		V: [3]math3d.Vec3{
			math3d.V3(-1, 0, z),
			math3d.V3(1, 0, z),
			math3d.V3(0, 1, z),
		},
		Color: col,
	}
}

func TestComputeDepthsMeanZ(t *testing.T) {
	m := &house.Mesh{Triangles: []house.Triangle{{
		V: [3]math3d.Vec3{
			math3d.V3(0, 0, 1),
			math3d.V3(0, 0, 2),
			math3d.V3(0, 0, 6),
		},
	}}}

	ComputeDepths(m, math3d.Identity())
	if got := m.Triangles[0].Depth; math.Abs(got-3) > 1e-12 {
		t.Errorf("depth = %v, want mean z 3", got)
	}

	// Moving the camera back shifts every depth by the translation.
	ComputeDepths(m, math3d.Translate(math3d.V3(0, 0, -3)))
	if got := m.Triangles[0].Depth; math.Abs(got-0) > 1e-12 {
		t.Errorf("depth = %v, want 0 after -3 translation", got)
	}
}

func TestComputeDepthsIgnoresXY(t *testing.T) {
	// Depth is a pure function of view-space Z; X/Y spread must not
	// leak in.
	m := &house.Mesh{Triangles: []house.Triangle{
		{V: [3]math3d.Vec3{math3d.V3(-100, 50, 2), math3d.V3(7, -3, 2), math3d.V3(0, 0, 2)}},
		{V: [3]math3d.Vec3{math3d.V3(0, 0, 2), math3d.V3(0.1, 0, 2), math3d.V3(0, 0.1, 2)}},
	}}

	ComputeDepths(m, math3d.Identity())
	if m.Triangles[0].Depth != m.Triangles[1].Depth {
		t.Errorf("depths differ (%v vs %v) for equal-Z triangles",
			m.Triangles[0].Depth, m.Triangles[1].Depth)
	}
}

func TestSortBackToFrontOrdersByDepth(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	green := color.RGBA{0, 255, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	m := &house.Mesh{Triangles: []house.Triangle{
		triAt(-1, red),
		triAt(-5, green),
		triAt(-3, blue),
	}}
	ComputeDepths(m, math3d.Identity())
	SortBackToFront(m)

	want := []color.RGBA{green, blue, red}
	for i, c := range want {
		if m.Triangles[i].Color != c {
			t.Errorf("position %d: got %v, want %v", i, m.Triangles[i].Color, c)
		}
	}
}

func TestSortBackToFrontStableOnTies(t *testing.T) {
	// Equal-depth triangles keep their insertion order.
	var tris []house.Triangle
	for i := range 6 {
		tri := triAt(-2, color.RGBA{uint8(i), 0, 0, 255})
		tris = append(tris, tri)
	}
	m := &house.Mesh{Triangles: tris}

	ComputeDepths(m, math3d.Identity())
	SortBackToFront(m)

	for i := range 6 {
		if m.Triangles[i].Color.R != uint8(i) {
			t.Fatalf("tie broke insertion order: position %d holds triangle %d",
				i, m.Triangles[i].Color.R)
		}
	}
}

func TestSortBackToFrontIdempotent(t *testing.T) {
	m := house.Build()
	ComputeDepths(m, math3d.Translate(math3d.V3(0, -0.2, -3)).Mul(math3d.RotateY(0.3)))
	SortBackToFront(m)

	once := make([]house.Triangle, len(m.Triangles))
	copy(once, m.Triangles)

	SortBackToFront(m)
	for i := range once {
		if m.Triangles[i] != once[i] {
			t.Fatalf("second sort changed position %d", i)
		}
	}
}

func TestSortBackToFrontSmallMeshes(t *testing.T) {
	empty := &house.Mesh{}
	SortBackToFront(empty) // must not panic

	single := &house.Mesh{Triangles: []house.Triangle{triAt(-1, color.RGBA{})}}
	SortBackToFront(single)
	if len(single.Triangles) != 1 {
		t.Fatal("single-triangle mesh changed size")
	}
}

func TestSortPreservesVertexOrder(t *testing.T) {
	// Sorting moves triangles, never the vertices inside one.
	m := house.Build()
	vertsByColor := make(map[color.RGBA][][3]math3d.Vec3)
	for _, tri := range m.Triangles {
		vertsByColor[tri.Color] = append(vertsByColor[tri.Color], tri.V)
	}

	ComputeDepths(m, math3d.Translate(math3d.V3(0, -0.2, -3)).Mul(math3d.RotateY(1.1)))
	SortBackToFront(m)

	seen := make(map[color.RGBA]int)
	for _, tri := range m.Triangles {
		found := false
		for _, v := range vertsByColor[tri.Color] {
			if v == tri.V {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("triangle %v has reordered vertices", tri.Color)
		}
		seen[tri.Color]++
	}
	if len(seen) != 7 {
		t.Fatalf("lost colors during sort: %d remain", len(seen))
	}
}

func TestBackWallSortsBeforeFrontWall(t *testing.T) {
	// Camera at -3 on Z, no rotation: the back wall (model Z=-0.5) is
	// farther than the front wall (Z=+0.5) and must draw first.
	m := house.Build()
	ComputeDepths(m, math3d.Translate(math3d.V3(0, 0, -3)))
	SortBackToFront(m)

	lastBack, firstFront := -1, -1
	for i, tri := range m.Triangles {
		switch tri.Color {
		case house.ColorBackWall:
			lastBack = i
		case house.ColorFrontWall:
			if firstFront == -1 {
				firstFront = i
			}
		}
	}
	if lastBack == -1 || firstFront == -1 {
		t.Fatal("walls missing from mesh")
	}
	if lastBack > firstFront {
		t.Errorf("back wall at %d draws after front wall at %d", lastBack, firstFront)
	}
}

func TestFlatten(t *testing.T) {
	m := house.Build()
	stream := Flatten(m, nil)

	if len(stream) != 48 {
		t.Fatalf("flattened %d vertices, want 48", len(stream))
	}
	for i, tri := range m.Triangles {
		for j, v := range tri.V {
			got := stream[i*3+j]
			if got.Position != v || got.Color != tri.Color {
				t.Fatalf("stream[%d] = %+v, want vertex %d of triangle %d", i*3+j, got, j, i)
			}
		}
	}
}

func TestFlattenReusesBuffer(t *testing.T) {
	m := house.Build()
	buf := make([]Vertex, 0, 48)
	stream := Flatten(m, buf)
	if &stream[0] != &buf[:1][0] {
		t.Error("Flatten reallocated a buffer with sufficient capacity")
	}
}
