package render

import (
	"math"

	"ProceduralTerrainGen/mesh"
)

// Lifts the marched ray off the surface it starts on.
const shadowBias = 1e-3

// SunShadows marks every vertex of m that the terrain hides from a
// directional light shining from toSun. Each vertex marches towards the
// light one grid cell at a time until the ray leaves the grid or rises above
// the highest vertex.
func SunShadows(m *mesh.Mesh, toSun mesh.Vec3) []bool {
	shadowed := make([]bool, len(m.Positions))
	dir := toSun.Normalize()
	g := m.Grid
	if dir.Y <= 0 || g.SegmentsX < 1 || g.SegmentsY < 1 || len(m.Positions) != g.VertexCount() {
		return shadowed
	}

	step := math.Min(g.Width/float64(g.SegmentsX), g.Height/float64(g.SegmentsY))
	if !(step > 0) {
		return shadowed
	}
	top := math.Inf(-1)
	for _, p := range m.Positions {
		top = math.Max(top, p.Y)
	}

	advance := dir.Scale(step)
	for i, p := range m.Positions {
		q := p
		for {
			q = q.Add(advance)
			if q.Y > top {
				break
			}
			h, ok := m.HeightAt(q.X, q.Z)
			if !ok {
				break
			}
			if h > q.Y+shadowBias {
				shadowed[i] = true
				break
			}
		}
	}
	return shadowed
}
