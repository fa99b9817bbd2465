package render

import (
	"math"
	"testing"

	"ProceduralTerrainGen/heightfield"
	"ProceduralTerrainGen/mesh"
)

func TestCameraStartsAtEye(t *testing.T) {
	eye := mesh.Vec3{X: 50, Y: 60, Z: 50}
	cam := NewOrbitCamera(eye, mesh.Vec3{})
	got := cam.Eye()
	if got.Sub(eye).Len() > 1e-9 {
		t.Fatalf("eye %v, want %v", got, eye)
	}
}

func TestProjectTargetAtCenter(t *testing.T) {
	cam := NewOrbitCamera(mesh.Vec3{X: 50, Y: 60, Z: 50}, mesh.Vec3{})
	view := cam.View(800, 600)

	x, y, depth, ok := view.Project(mesh.Vec3{})
	if !ok {
		t.Fatal("target should be visible")
	}
	if math.Abs(x-400) > 1e-6 || math.Abs(y-300) > 1e-6 {
		t.Fatalf("target projected to (%v,%v), want (400,300)", x, y)
	}
	if math.Abs(depth-cam.Distance()) > 1e-9 {
		t.Fatalf("depth %v, want %v", depth, cam.Distance())
	}

	behind := cam.Eye().Add(cam.Eye().Sub(cam.Target))
	if _, _, _, ok := view.Project(behind); ok {
		t.Fatal("point behind the camera must be rejected")
	}

	// Higher world points appear higher on screen.
	_, yUp, _, _ := view.Project(mesh.Vec3{Y: 10})
	if yUp >= y {
		t.Fatalf("raised point at y=%v, expected above %v", yUp, y)
	}
}

func TestCameraDampingConverges(t *testing.T) {
	cam := NewOrbitCamera(mesh.Vec3{X: 0, Y: 0, Z: 100}, mesh.Vec3{})
	cam.Rotate(1, 0)

	cam.Update()
	if got := cam.Yaw(); math.Abs(got-0.05) > 1e-9 {
		t.Fatalf("first update yaw %v, want 0.05", got)
	}
	for i := 0; i < 1000; i++ {
		cam.Update()
	}
	if !cam.Settled() {
		t.Fatal("rotation should settle")
	}
	if math.Abs(cam.yaw-1) > 1e-6 {
		t.Fatalf("settled yaw %v, want 1", cam.yaw)
	}
}

func TestCameraClamps(t *testing.T) {
	cam := NewOrbitCamera(mesh.Vec3{Z: 100}, mesh.Vec3{})
	cam.Damping = 0
	cam.Rotate(0, 10)
	cam.Update()
	if cam.pitch > maxPitch {
		t.Fatalf("pitch %v exceeds %v", cam.pitch, maxPitch)
	}

	cam.Zoom(0.0001)
	if cam.Distance() != cam.MinDistance {
		t.Fatalf("distance %v, want min %v", cam.Distance(), cam.MinDistance)
	}
	cam.Zoom(1e9)
	if cam.Distance() != cam.MaxDistance {
		t.Fatalf("distance %v, want max %v", cam.Distance(), cam.MaxDistance)
	}
	cam.Zoom(-1)
	if cam.Distance() != cam.MaxDistance {
		t.Fatal("non-positive zoom factor must be ignored")
	}
}

func TestShade(t *testing.T) {
	l := DefaultLighting()
	grass := heightfield.Hex(0x38761d)

	toSun := l.Shade(grass, l.SunPosition.Normalize())
	away := l.Shade(grass, l.SunPosition.Normalize().Scale(-1))
	if toSun.G <= away.G {
		t.Fatalf("sun-facing %v should be brighter than %v", toSun, away)
	}
	for _, c := range []heightfield.RGB{toSun, away, l.Shade(heightfield.Hex(0xffffff), mesh.Vec3{Y: 1})} {
		if c.R < 0 || c.R > 1 || c.G < 0 || c.G > 1 || c.B < 0 || c.B > 1 {
			t.Fatalf("shaded color %v out of range", c)
		}
	}
	if got := l.Shade(heightfield.RGB{}, mesh.Vec3{Y: 1}); got != (heightfield.RGB{}) {
		t.Fatalf("black stays black, got %v", got)
	}
}

func TestFog(t *testing.T) {
	l := DefaultLighting()
	c := heightfield.Hex(0xf2d16d)
	if got := l.Fog(c, 10); got != c {
		t.Fatalf("before fog near: %v, want %v", got, c)
	}
	if got := l.Fog(c, 500); got != l.Background {
		t.Fatalf("past fog far: %v, want background", got)
	}
	mid := l.Fog(c, 175)
	if !(mid.R < c.R && mid.R > 0) {
		t.Fatalf("mid fog %v should be partially blended", mid)
	}
}

func TestSceneSortsFarToNear(t *testing.T) {
	g := heightfield.GridSpec{Width: 40, Height: 40, SegmentsX: 8, SegmentsY: 8}
	f := &heightfield.Field{
		Grid:       g,
		Elevations: make([]float64, g.VertexCount()),
		Colors:     make([]heightfield.RGB, g.VertexCount()),
		InRiver:    make([]bool, g.VertexCount()),
	}
	for i := range f.Colors {
		f.Colors[i] = heightfield.Hex(0x38761d)
	}
	scene := NewScene(mesh.Build(f), DefaultLighting())
	cam := NewOrbitCamera(mesh.Vec3{Y: 30, Z: 40}, mesh.Vec3{})

	tris := scene.Project(cam, 640, 480)
	if len(tris) == 0 {
		t.Fatal("expected visible triangles")
	}
	if len(tris) > scene.Mesh().TriangleCount() {
		t.Fatalf("%d triangles projected from %d", len(tris), scene.Mesh().TriangleCount())
	}
	for i := 1; i < len(tris); i++ {
		if tris[i].Depth > tris[i-1].Depth {
			t.Fatalf("triangle %d depth %v after %v", i, tris[i].Depth, tris[i-1].Depth)
		}
	}

	scene.FogEnabled = false
	plain := scene.Project(cam, 640, 480)
	if len(plain) != len(tris) {
		t.Fatalf("fog toggle changed visibility: %d vs %d", len(plain), len(tris))
	}
}

// A north-south ridge three columns wide in the middle of a flat plain.
func ridgeMesh() *mesh.Mesh {
	g := heightfield.GridSpec{Width: 40, Height: 40, SegmentsX: 20, SegmentsY: 20}
	f := &heightfield.Field{
		Grid:       g,
		Elevations: make([]float64, g.VertexCount()),
		Colors:     make([]heightfield.RGB, g.VertexCount()),
		InRiver:    make([]bool, g.VertexCount()),
	}
	for i := range f.Elevations {
		if x, _ := g.Vertex(i); math.Abs(x) <= 2 {
			f.Elevations[i] = 20
		}
		f.Colors[i] = heightfield.Hex(0x38761d)
	}
	return mesh.Build(f)
}

func TestSunShadowsBehindRidge(t *testing.T) {
	m := ridgeMesh()
	g := m.Grid
	sun := DefaultLighting().SunPosition
	shadowed := SunShadows(m, sun)

	// Sun sits towards +x, so the plain west of the ridge is dark.
	tests := []struct {
		name string
		col  int
		want bool
	}{
		{name: "west plain", col: 7, want: true},
		{name: "ridge top", col: 10, want: false},
		{name: "east plain", col: 15, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shadowed[g.Index(tt.col, 10)]; got != tt.want {
				t.Fatalf("shadowed = %v, want %v", got, tt.want)
			}
		})
	}

	for i, s := range SunShadows(m, mesh.Vec3{X: 1, Y: -1}) {
		if s {
			t.Fatalf("sun below the horizon casts no terrain shadow, vertex %d marked", i)
		}
	}
}

func TestSunShadowsFlatPlain(t *testing.T) {
	g := heightfield.GridSpec{Width: 40, Height: 40, SegmentsX: 8, SegmentsY: 8}
	f := &heightfield.Field{
		Grid:       g,
		Elevations: make([]float64, g.VertexCount()),
		Colors:     make([]heightfield.RGB, g.VertexCount()),
		InRiver:    make([]bool, g.VertexCount()),
	}
	for i, s := range SunShadows(mesh.Build(f), DefaultLighting().SunPosition) {
		if s {
			t.Fatalf("flat plain vertex %d in shadow", i)
		}
	}
}

func TestSceneDarkensShadowedVertices(t *testing.T) {
	m := ridgeMesh()
	west, east := m.Grid.Index(7, 10), m.Grid.Index(15, 10)

	lit := NewScene(m, DefaultLighting())
	if lit.lit[west].G >= lit.lit[east].G {
		t.Fatalf("shadowed %v should be darker than sunlit %v", lit.lit[west], lit.lit[east])
	}

	light := DefaultLighting()
	light.Shadows = false
	plain := NewScene(m, light)
	if plain.lit[west] != plain.lit[east] {
		t.Fatalf("without shadows flat vertices match: %v vs %v", plain.lit[west], plain.lit[east])
	}
}
