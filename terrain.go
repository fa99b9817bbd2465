package main

import (
	"log"
	"time"

	"ProceduralTerrainGen/config"
	"ProceduralTerrainGen/terrain"
)

type worldResult struct {
	world *terrain.World
	err   error
}

// Generate off the update loop, the loading screen keeps animating
func generateAsync(cfg *config.Config) <-chan worldResult {
	ch := make(chan worldResult, 1)
	go func() {
		w, err := terrain.Generate(cfg)
		if err == nil {
			log.Printf("Generated %d vertices, %d triangles in %s (seed %d)",
				w.Field.Len(), w.Mesh.TriangleCount(), w.Elapsed.Round(time.Millisecond), w.Seed)
		}
		ch <- worldResult{world: w, err: err}
	}()
	return ch
}
