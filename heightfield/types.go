package heightfield

// Source is a 2D coherent-noise function. Sample returns a value in [-1, 1].
// Implementations used with Params.Workers > 1 must tolerate concurrent calls.
type Source interface {
	Sample(x, y float64) float64
}

// GridSpec describes the physical extent of the terrain plane and how many
// quads it is split into along each axis.
type GridSpec struct {
	Width     float64
	Height    float64
	SegmentsX int
	SegmentsY int
}

// Columns returns the vertex count along X.
func (g GridSpec) Columns() int { return g.SegmentsX + 1 }

// Rows returns the vertex count along Y.
func (g GridSpec) Rows() int { return g.SegmentsY + 1 }

// VertexCount returns (SegmentsX+1) * (SegmentsY+1).
func (g GridSpec) VertexCount() int { return g.Columns() * g.Rows() }

// Index returns the row-major buffer index of vertex (col, row).
func (g GridSpec) Index(col, row int) int { return row*g.Columns() + col }

// Vertex returns the planar coordinates of vertex i. Row 0 lies at
// y = +Height/2 and rows descend towards -Height/2; columns run from
// -Width/2 to +Width/2.
func (g GridSpec) Vertex(i int) (x, y float64) {
	cols := g.Columns()
	return g.at(i%cols, i/cols)
}

func (g GridSpec) at(col, row int) (x, y float64) {
	x = float64(col)*g.Width/float64(g.SegmentsX) - g.Width/2
	y = g.Height/2 - float64(row)*g.Height/float64(g.SegmentsY)
	return x, y
}

// NoiseConfig controls the fractal sum that builds the base terrain.
type NoiseConfig struct {
	Scale       float64 // wavelength divisor
	Octaves     int
	Persistence float64 // amplitude decay per octave
	Lacunarity  float64 // frequency growth per octave
	Height      float64 // output elevation scale
}

// RiverConfig controls the river mask carved into the terrain.
type RiverConfig struct {
	Scale     float64
	Threshold float64 // river half-width in mask units, [0, 1]
	Depth     float64
}

// Params bundles everything Synthesize needs besides the noise sources.
type Params struct {
	Grid   GridSpec
	Noise  NoiseConfig
	River  RiverConfig
	Biomes BiomeTable

	// Workers bounds the goroutines filling rows. 0 and 1 run on the
	// calling goroutine.
	Workers int
}

// Field is the synthesized output. All slices are indexed by the grid's
// row-major vertex order.
type Field struct {
	Grid       GridSpec
	Elevations []float64
	Colors     []RGB
	InRiver    []bool
}

// Len returns the number of vertices in the field.
func (f *Field) Len() int { return len(f.Elevations) }

// ColorBuffer flattens Colors into interleaved r,g,b floats, the layout
// mesh libraries expect for a per-vertex color attribute.
func (f *Field) ColorBuffer() []float32 {
	buf := make([]float32, 0, len(f.Colors)*3)
	for _, c := range f.Colors {
		buf = append(buf, float32(c.R), float32(c.G), float32(c.B))
	}
	return buf
}
