package render

import (
	"cmp"
	"slices"

	"ProceduralTerrainGen/heightfield"
	"ProceduralTerrainGen/mesh"
)

// ScreenVertex is a projected, shaded vertex.
type ScreenVertex struct {
	X, Y    float32
	R, G, B float32
}

// Triangle is ready to rasterize. Depth is the mean view depth of its corners.
type Triangle struct {
	V     [3]ScreenVertex
	Depth float64
}

type projected struct {
	x, y, depth float64
	ok          bool
}

// Scene holds a lit mesh and the per-frame buffers used to project it.
// Lighting is static, so vertex colors and shadows are computed once up front.
type Scene struct {
	Light      Lighting
	FogEnabled bool

	mesh *mesh.Mesh
	lit  []heightfield.RGB

	verts []projected
	tris  []Triangle
}

func NewScene(m *mesh.Mesh, light Lighting) *Scene {
	s := &Scene{
		Light:      light,
		FogEnabled: true,
		mesh:       m,
		lit:        make([]heightfield.RGB, len(m.Colors)),
		verts:      make([]projected, len(m.Positions)),
		tris:       make([]Triangle, 0, m.TriangleCount()),
	}
	var shadowed []bool
	if light.Shadows {
		shadowed = SunShadows(m, light.SunPosition)
	}
	for i, c := range m.Colors {
		visible := 1.0
		if shadowed != nil && shadowed[i] {
			visible = 0
		}
		s.lit[i] = light.ShadeVisible(c, m.Normals[i], visible)
	}
	return s
}

// Mesh returns the mesh the scene was built from.
func (s *Scene) Mesh() *mesh.Mesh { return s.mesh }

// Project returns the visible triangles sorted far to near. The returned
// slice is reused by the next call.
func (s *Scene) Project(cam *OrbitCamera, width, height int) []Triangle {
	view := cam.View(width, height)
	for i, p := range s.mesh.Positions {
		x, y, d, ok := view.Project(p)
		s.verts[i] = projected{x: x, y: y, depth: d, ok: ok}
	}

	w, h := float64(width), float64(height)
	s.tris = s.tris[:0]
	idx := s.mesh.Indices
	for i := 0; i+2 < len(idx); i += 3 {
		a, b, c := s.verts[idx[i]], s.verts[idx[i+1]], s.verts[idx[i+2]]
		if !a.ok || !b.ok || !c.ok {
			continue
		}
		if offscreen(a, b, c, w, h) {
			continue
		}
		s.tris = append(s.tris, Triangle{
			V: [3]ScreenVertex{
				s.screenVertex(idx[i], a),
				s.screenVertex(idx[i+1], b),
				s.screenVertex(idx[i+2], c),
			},
			Depth: (a.depth + b.depth + c.depth) / 3,
		})
	}

	slices.SortFunc(s.tris, func(p, q Triangle) int {
		return cmp.Compare(q.Depth, p.Depth)
	})
	return s.tris
}

func (s *Scene) screenVertex(i uint32, p projected) ScreenVertex {
	c := s.lit[i]
	if s.FogEnabled {
		c = s.Light.Fog(c, p.depth)
	}
	return ScreenVertex{
		X: float32(p.x), Y: float32(p.y),
		R: float32(c.R), G: float32(c.G), B: float32(c.B),
	}
}

func offscreen(a, b, c projected, w, h float64) bool {
	switch {
	case a.x < 0 && b.x < 0 && c.x < 0:
		return true
	case a.x > w && b.x > w && c.x > w:
		return true
	case a.y < 0 && b.y < 0 && c.y < 0:
		return true
	case a.y > h && b.y > h && c.y > h:
		return true
	}
	return false
}
