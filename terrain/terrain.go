// Package terrain runs one world configuration through synthesis and mesh
// building.
package terrain

import (
	"time"

	"ProceduralTerrainGen/config"
	"ProceduralTerrainGen/heightfield"
	"ProceduralTerrainGen/mesh"
)

// World is everything generated once at startup.
type World struct {
	Seed      int64
	NoiseType string
	Params    heightfield.Params
	Field     *heightfield.Field
	Mesh      *mesh.Mesh
	Stats     heightfield.Stats
	Elapsed   time.Duration
}

// Generate resolves the seed, synthesizes the heightfield and builds its
// mesh. A zero config seed picks one from the clock; World.Seed records it.
func Generate(cfg *config.Config) (*World, error) {
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}

	seed := cfg.ResolveSeed()
	terrain, river, err := cfg.Sources(seed)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	field, err := heightfield.Synthesize(params, terrain, river)
	if err != nil {
		return nil, err
	}
	w := &World{
		Seed:      seed,
		NoiseType: cfg.Noise.Type,
		Params:    params,
		Field:     field,
		Mesh:      mesh.Build(field),
		Stats:     field.Stats(params.Biomes),
	}
	w.Elapsed = time.Since(start)
	return w, nil
}
