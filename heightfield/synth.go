// Package heightfield turns coherent noise into terrain elevations and biome
// colors on a regular grid.
package heightfield

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// Fractal sums Octaves layers of src at (x, y). Each layer samples at
// frequency growing by Lacunarity and contributes with amplitude decaying by
// Persistence. The result is not multiplied by Height.
func Fractal(src Source, x, y float64, n NoiseConfig) float64 {
	amplitude, frequency := 1.0, 1.0
	elevation := 0.0
	for i := 0; i < n.Octaves; i++ {
		elevation += src.Sample(x/n.Scale*frequency, y/n.Scale*frequency) * amplitude
		amplitude *= n.Persistence
		frequency *= n.Lacunarity
	}
	return elevation
}

// RiverValue returns the distance of the river mask from its zero contour.
func RiverValue(src Source, x, y float64, r RiverConfig) float64 {
	return math.Abs(src.Sample(x/r.Scale, y/r.Scale))
}

// Carve lowers elevation inside the river mask. The cut is Depth on the zero
// contour and falls off linearly to nothing at Threshold.
func Carve(elevation, riverVal float64, r RiverConfig) float64 {
	if riverVal < r.Threshold {
		elevation -= r.Depth * (1 - riverVal/r.Threshold)
	}
	return elevation
}

// Synthesize computes elevation and color for every vertex of p.Grid.
// terrain drives the base heights and river the channel mask; they should
// be independent instances. Invalid parameters yield a *ConfigurationError
// and no field.
func Synthesize(p Params, terrain, river Source) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if terrain == nil {
		return nil, invalid("terrain source", "must not be nil")
	}
	if river == nil {
		return nil, invalid("river source", "must not be nil")
	}

	count := p.Grid.VertexCount()
	f := &Field{
		Grid:       p.Grid,
		Elevations: make([]float64, count),
		Colors:     make([]RGB, count),
		InRiver:    make([]bool, count),
	}

	rows := p.Grid.Rows()
	if p.Workers <= 1 {
		for row := 0; row < rows; row++ {
			fillRow(f, p, terrain, river, row)
		}
		return f, nil
	}

	var g errgroup.Group
	g.SetLimit(p.Workers)
	for row := 0; row < rows; row++ {
		row := row
		g.Go(func() error {
			fillRow(f, p, terrain, river, row)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return f, nil
}

func fillRow(f *Field, p Params, terrain, river Source, row int) {
	for col := 0; col < p.Grid.Columns(); col++ {
		i := p.Grid.Index(col, row)
		x, y := p.Grid.at(col, row)

		elevation := Fractal(terrain, x, y, p.Noise)
		riverVal := RiverValue(river, x, y, p.River)
		inRiver := riverVal < p.River.Threshold
		elevation = Carve(elevation, riverVal, p.River) * p.Noise.Height

		f.Elevations[i] = elevation
		f.InRiver[i] = inRiver
		f.Colors[i] = p.Biomes.Surface(elevation, inRiver)
	}
}
