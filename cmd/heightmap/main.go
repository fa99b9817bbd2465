package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	"ProceduralTerrainGen/config"
	"ProceduralTerrainGen/export"
	"ProceduralTerrainGen/terrain"
)

func main() {
	cfgPath := flag.String("config", "", "world config YAML (defaults to the built-in world)")
	seed := flag.Int64("seed", 0, "noise seed, 0 keeps the config seed")
	segments := flag.Int("segments", 0, "quads per axis, 0 keeps the config value")
	heightOut := flag.String("height-out", "height.tiff", "heightmap output path, empty to skip")
	colorOut := flag.String("color-out", "color.bmp", "biome color map output path, empty to skip")
	format := flag.String("format", "", "force output format (tiff or bmp); default from file extension")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Resolve(0, config.Overrides{Seed: *seed, Segments: *segments}); err != nil {
		log.Fatal(err)
	}

	world, err := terrain.Generate(cfg)
	if err != nil {
		log.Fatal(err)
	}
	field := world.Field
	log.Printf("Synthesized %d vertices in %s (seed %d, %s noise)", field.Len(), world.Elapsed.Round(time.Millisecond), world.Seed, world.NoiseType)
	log.Printf("Elevation %.2f..%.2f, river coverage %.1f%%", world.Stats.MinElevation, world.Stats.MaxElevation, 100*world.Stats.RiverCoverage(field.Len()))

	if *heightOut != "" {
		if err := write(*heightOut, *format, export.Heightmap(field)); err != nil {
			log.Fatal(err)
		}
	}
	if *colorOut != "" {
		if err := write(*colorOut, *format, export.Colormap(field)); err != nil {
			log.Fatal(err)
		}
	}
}

func write(path, forced string, img image.Image) error {
	name := forced
	if name == "" {
		name = filepath.Ext(path)
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("Wrote %s (%dx%d %s)", path, img.Bounds().Dx(), img.Bounds().Dy(), format)
	return nil
}
