// Package noise provides seeded 2D coherent-noise sources for terrain
// synthesis.
package noise

import (
	"fmt"
	"math"
	"strings"

	"ProceduralTerrainGen/heightfield"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Kind selects a noise algorithm.
type Kind string

const (
	KindSimplex Kind = "simplex"
	KindPerlin  Kind = "perlin"
)

// ParseKind maps a config or flag value onto a Kind. Empty means simplex.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindSimplex:
		return KindSimplex, nil
	case KindPerlin:
		return KindPerlin, nil
	}
	return "", fmt.Errorf("noise: unknown kind %q", s)
}

// New builds a single source of the given kind.
func New(kind Kind, seed int64) (heightfield.Source, error) {
	switch kind {
	case KindSimplex, "":
		return NewSimplex(seed), nil
	case KindPerlin:
		return NewPerlin(seed), nil
	}
	return nil, fmt.Errorf("noise: unknown kind %q", kind)
}

// Pair builds the terrain and river sources for one synthesis. They are
// seeded apart so the river network does not follow the terrain.
func Pair(kind Kind, seed int64) (terrain, river heightfield.Source, err error) {
	terrain, err = New(kind, seed)
	if err != nil {
		return nil, nil, err
	}
	river, err = New(kind, seed+1)
	if err != nil {
		return nil, nil, err
	}
	return terrain, river, nil
}

// Simplex is OpenSimplex noise.
type Simplex struct {
	noise opensimplex.Noise
}

func NewSimplex(seed int64) *Simplex {
	return &Simplex{noise: opensimplex.New(seed)}
}

func (s *Simplex) Sample(x, y float64) float64 {
	return clamp(s.noise.Eval2(x, y))
}

// perlinGain stretches single-octave Perlin output, which peaks near
// ±1/sqrt(2), to the [-1, 1] range.
const perlinGain = math.Sqrt2

// Perlin is classic gradient noise evaluated as a single octave; octaves are
// summed by the synthesizer.
type Perlin struct {
	p *perlin.Perlin
}

func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(2, 2, 1, seed)}
}

func (p *Perlin) Sample(x, y float64) float64 {
	return clamp(p.p.Noise2D(x, y) * perlinGain)
}

// Constant returns the same value everywhere. Handy as a stub.
type Constant float64

func (c Constant) Sample(x, y float64) float64 { return clamp(float64(c)) }

// Func adapts a plain function into a source.
type Func func(x, y float64) float64

func (f Func) Sample(x, y float64) float64 { return clamp(f(x, y)) }

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
