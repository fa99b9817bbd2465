// Package mesh lays a heightfield out as an indexed triangle mesh.
package mesh

import "ProceduralTerrainGen/heightfield"

// Mesh is a triangle list over the heightfield vertices. Positions, Normals
// and Colors share the field's row-major order; Indices holds three entries
// per triangle.
type Mesh struct {
	Grid      heightfield.GridSpec
	Positions []Vec3
	Normals   []Vec3
	Colors    []heightfield.RGB
	Indices   []uint32
}

// TriangleCount returns len(Indices)/3.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Build converts a field into a mesh. The plane is laid flat with elevation
// on +Y: a planar vertex (x, y) becomes (x, elevation, -y).
func Build(f *heightfield.Field) *Mesh {
	g := f.Grid
	m := &Mesh{
		Grid:      g,
		Positions: make([]Vec3, f.Len()),
		Colors:    append([]heightfield.RGB(nil), f.Colors...),
		Indices:   make([]uint32, 0, g.SegmentsX*g.SegmentsY*6),
	}
	for i, e := range f.Elevations {
		x, y := g.Vertex(i)
		m.Positions[i] = Vec3{X: x, Y: e, Z: -y}
	}

	cols := g.Columns()
	for iy := 0; iy < g.SegmentsY; iy++ {
		for ix := 0; ix < g.SegmentsX; ix++ {
			a := uint32(ix + cols*iy)
			b := uint32(ix + cols*(iy+1))
			c := uint32(ix + 1 + cols*(iy+1))
			d := uint32(ix + 1 + cols*iy)
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}

	m.Normals = ComputeNormals(m.Positions, m.Indices)
	return m
}

// HeightAt interpolates the surface height under world point (x, z). ok is
// false outside the grid.
func (m *Mesh) HeightAt(x, z float64) (h float64, ok bool) {
	g := m.Grid
	if g.SegmentsX < 1 || g.SegmentsY < 1 || len(m.Positions) != g.VertexCount() {
		return 0, false
	}
	fx := (x + g.Width/2) / g.Width * float64(g.SegmentsX)
	fz := (z + g.Height/2) / g.Height * float64(g.SegmentsY)
	if fx < 0 || fz < 0 || fx > float64(g.SegmentsX) || fz > float64(g.SegmentsY) {
		return 0, false
	}

	col := min(int(fx), g.SegmentsX-1)
	row := min(int(fz), g.SegmentsY-1)
	tx, tz := fx-float64(col), fz-float64(row)

	y := func(c, r int) float64 { return m.Positions[g.Index(c, r)].Y }
	top := y(col, row) + (y(col+1, row)-y(col, row))*tx
	bottom := y(col, row+1) + (y(col+1, row+1)-y(col, row+1))*tx
	return top + (bottom-top)*tz, true
}

// ComputeNormals returns smooth per-vertex normals. Face normals are
// accumulated unnormalized so larger triangles weigh more.
func ComputeNormals(positions []Vec3, indices []uint32) []Vec3 {
	normals := make([]Vec3, len(positions))
	for i := 0; i+2 < len(indices); i += 3 {
		ia, ib, ic := indices[i], indices[i+1], indices[i+2]
		pa, pb, pc := positions[ia], positions[ib], positions[ic]
		face := pc.Sub(pb).Cross(pa.Sub(pb))
		normals[ia] = normals[ia].Add(face)
		normals[ib] = normals[ib].Add(face)
		normals[ic] = normals[ic].Add(face)
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	return normals
}
