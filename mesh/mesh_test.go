package mesh

import (
	"math"
	"testing"

	"ProceduralTerrainGen/heightfield"
)

func flatField(segX, segY int, elevation float64) *heightfield.Field {
	g := heightfield.GridSpec{Width: 20, Height: 10, SegmentsX: segX, SegmentsY: segY}
	n := g.VertexCount()
	f := &heightfield.Field{
		Grid:       g,
		Elevations: make([]float64, n),
		Colors:     make([]heightfield.RGB, n),
		InRiver:    make([]bool, n),
	}
	for i := range f.Elevations {
		f.Elevations[i] = elevation
		f.Colors[i] = heightfield.Hex(0x38761d)
	}
	return f
}

func near(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9 && math.Abs(a.Z-b.Z) < 1e-9
}

func TestBuildLayout(t *testing.T) {
	m := Build(flatField(2, 1, 3))

	if len(m.Positions) != 6 || len(m.Normals) != 6 || len(m.Colors) != 6 {
		t.Fatalf("got %d positions, %d normals, %d colors; want 6 each", len(m.Positions), len(m.Normals), len(m.Colors))
	}
	if m.TriangleCount() != 4 {
		t.Fatalf("got %d triangles, want 4", m.TriangleCount())
	}
	if got, want := m.Positions[0], (Vec3{X: -10, Y: 3, Z: -5}); !near(got, want) {
		t.Fatalf("first vertex %v, want %v", got, want)
	}
	if got, want := m.Positions[5], (Vec3{X: 10, Y: 3, Z: 5}); !near(got, want) {
		t.Fatalf("last vertex %v, want %v", got, want)
	}
	want := []uint32{0, 3, 1, 3, 4, 1, 1, 4, 2, 4, 5, 2}
	for i, idx := range want {
		if m.Indices[i] != idx {
			t.Fatalf("indices %v, want %v", m.Indices, want)
		}
	}
}

func TestFlatNormalsPointUp(t *testing.T) {
	m := Build(flatField(4, 3, -2))
	up := Vec3{Y: 1}
	for i, n := range m.Normals {
		if !near(n, up) {
			t.Fatalf("normal %d = %v, want %v", i, n, up)
		}
	}
}

func TestSlopeNormalsTilt(t *testing.T) {
	f := flatField(2, 2, 0)
	// Rising towards +X.
	for i := range f.Elevations {
		x, _ := f.Grid.Vertex(i)
		f.Elevations[i] = x
	}
	m := Build(f)
	want := Vec3{X: -1, Y: 1}.Normalize()
	for i, n := range m.Normals {
		if !near(n, want) {
			t.Fatalf("normal %d = %v, want %v", i, n, want)
		}
	}
}

func TestBuildCopiesColors(t *testing.T) {
	f := flatField(1, 1, 0)
	m := Build(f)
	f.Colors[0] = heightfield.Hex(0xffffff)
	if m.Colors[0] == f.Colors[0] {
		t.Fatal("mesh colors must not alias the field buffer")
	}
}

func TestHeightAt(t *testing.T) {
	f := flatField(2, 2, 0)
	// Raise the middle column.
	for row := 0; row < 3; row++ {
		f.Elevations[f.Grid.Index(1, row)] = 8
	}
	m := Build(f)

	tests := []struct {
		name   string
		x, z   float64
		want   float64
		wantOK bool
	}{
		{name: "vertex", x: 0, z: 0, want: 8, wantOK: true},
		{name: "edge vertex", x: 10, z: 5, want: 0, wantOK: true},
		{name: "halfway up the slope", x: -5, z: 2.5, want: 4, wantOK: true},
		{name: "outside x", x: 10.5, z: 0, wantOK: false},
		{name: "outside z", x: 0, z: -6, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.HeightAt(tt.x, tt.z)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("height %v, want %v", got, tt.want)
			}
		})
	}

	if _, ok := (&Mesh{}).HeightAt(0, 0); ok {
		t.Fatal("mesh without a grid has no surface")
	}
}
