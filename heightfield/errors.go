package heightfield

import (
	"fmt"
	"math"
)

// ConfigurationError reports a parameter that would make synthesis
// numerically undefined. It is returned before any noise is sampled.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("heightfield: %s %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ConfigurationError{Field: field, Reason: reason}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks every precondition of Synthesize except the sources.
func (p Params) Validate() error {
	g := p.Grid
	if !finite(g.Width) || g.Width <= 0 {
		return invalid("grid.width", "must be a positive finite number")
	}
	if !finite(g.Height) || g.Height <= 0 {
		return invalid("grid.height", "must be a positive finite number")
	}
	if g.SegmentsX < 1 || g.SegmentsY < 1 {
		return invalid("grid.segments", "must be at least 1")
	}

	n := p.Noise
	if !finite(n.Scale) || n.Scale <= 0 {
		return invalid("noise.scale", "must be a positive finite number")
	}
	if n.Octaves < 1 {
		return invalid("noise.octaves", "must be at least 1")
	}
	if !finite(n.Persistence) {
		return invalid("noise.persistence", "must be finite")
	}
	if !finite(n.Lacunarity) {
		return invalid("noise.lacunarity", "must be finite")
	}
	if !finite(n.Height) {
		return invalid("noise.height", "must be finite")
	}

	r := p.River
	if !finite(r.Scale) || r.Scale <= 0 {
		return invalid("river.scale", "must be a positive finite number")
	}
	if !(r.Threshold >= 0 && r.Threshold <= 1) {
		return invalid("river.threshold", "must be within [0, 1]")
	}
	if !finite(r.Depth) || r.Depth < 0 {
		return invalid("river.depth", "must be a non-negative finite number")
	}

	if err := p.Biomes.Validate(); err != nil {
		return err
	}
	if p.Workers < 0 {
		return invalid("workers", "cannot be negative")
	}
	return nil
}

// Validate checks that bounds strictly ascend and that the river and shore
// indices point at real bands.
func (t BiomeTable) Validate() error {
	if len(t.Levels) == 0 {
		return invalid("biomes", "must contain at least one level")
	}
	for i, b := range t.Levels {
		if math.IsNaN(b.Bound) {
			return invalid(fmt.Sprintf("biomes[%d].bound", i), "is NaN")
		}
		if i > 0 && !(b.Bound > t.Levels[i-1].Bound) {
			return invalid(fmt.Sprintf("biomes[%d].bound", i), "must be greater than the previous bound")
		}
	}
	if t.River < 0 || t.River >= len(t.Levels) {
		return invalid("biomes.river", "does not name a level")
	}
	if t.Shore < 0 || t.Shore >= len(t.Levels) {
		return invalid("biomes.shore", "does not name a level")
	}
	return nil
}
