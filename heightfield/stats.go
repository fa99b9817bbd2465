package heightfield

import "math"

// Stats summarizes a field for display.
type Stats struct {
	MinElevation float64
	MaxElevation float64
	RiverCount   int
	// BiomeCounts holds vertices per band, by elevation only.
	BiomeCounts []int
}

// RiverCoverage returns the fraction of vertices inside the river mask.
func (s Stats) RiverCoverage(total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(s.RiverCount) / float64(total)
}

// Stats scans the field once and classifies every elevation against table.
func (f *Field) Stats(table BiomeTable) Stats {
	s := Stats{
		MinElevation: math.Inf(1),
		MaxElevation: math.Inf(-1),
		BiomeCounts:  make([]int, len(table.Levels)),
	}
	for i, e := range f.Elevations {
		s.MinElevation = math.Min(s.MinElevation, e)
		s.MaxElevation = math.Max(s.MaxElevation, e)
		if f.InRiver[i] {
			s.RiverCount++
		}
		if len(table.Levels) > 0 {
			s.BiomeCounts[table.Index(e)]++
		}
	}
	if len(f.Elevations) == 0 {
		s.MinElevation, s.MaxElevation = 0, 0
	}
	return s
}
