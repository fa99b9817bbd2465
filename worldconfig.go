package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"runtime"

	"ProceduralTerrainGen/config"
)

// Browser builds cap the grid, software triangles are slow in WASM
const browserSegments = 128

// Flags are the native command-line overrides.
type Flags struct {
	ConfigPath string
	Seed       int64
	Segments   int
	Noise      string
}

func NewFlags() *Flags {
	return &Flags{}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "world config YAML")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "noise seed, 0 keeps the config seed")
	fs.IntVar(&f.Segments, "segments", f.Segments, "quads per axis, 0 keeps the config value")
	fs.StringVar(&f.Noise, "noise", f.Noise, "noise type (simplex or perlin)")
}

func fetchWorldData(path string) ([]byte, error) {
	if IsEmbedded() && path == "" {
		if data := GetEmbeddedWorld(); data != nil {
			return data, nil
		}
	}
	if path == "" {
		return nil, nil
	}

	if runtime.GOOS == "js" {
		// WASM: world files are served next to the page
		resp, err := http.Get(path)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != 200 {
			return nil, fmt.Errorf("HTTP status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}

	// Native: Read from filesystem
	return os.ReadFile(path)
}

func loadWorldConfig(flags *Flags) (*config.Config, error) {
	path := flags.ConfigPath
	if q := QueryValue("world"); q != "" {
		path = q
	}

	data, err := fetchWorldData(path)
	if err != nil {
		return nil, fmt.Errorf("load world %s: %w", path, err)
	}
	cfg := config.Default()
	if data != nil {
		if cfg, err = config.Parse(data); err != nil {
			return nil, err
		}
	}

	maxSegments := 0
	if IsEmbedded() {
		maxSegments = browserSegments
	}

	// Flags, then URL query
	flagOverrides := config.Overrides{Seed: flags.Seed, Segments: flags.Segments, Noise: flags.Noise}
	if err := cfg.Resolve(maxSegments, flagOverrides, config.LookupOverrides(QueryValue)); err != nil {
		return nil, err
	}
	log.Printf("World %gx%g, %d segments, %s noise", cfg.Width, cfg.Height, cfg.Segments, cfg.Noise.Type)
	return cfg, nil
}
