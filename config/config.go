// Package config loads world generation settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"ProceduralTerrainGen/heightfield"
	"ProceduralTerrainGen/noise"

	"gopkg.in/yaml.v3"
)

// Config describes one generated world and how the viewer presents it.
type Config struct {
	// Seed feeds both noise sources. Zero means pick one from the clock.
	Seed     int64   `yaml:"seed"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Segments int     `yaml:"segments"`

	// Workers is the row concurrency. Zero means runtime.NumCPU().
	Workers int `yaml:"workers"`

	Noise  NoiseConfig `yaml:"noise"`
	River  RiverConfig `yaml:"river"`
	Biomes BiomeConfig `yaml:"biomes"`
	View   ViewConfig  `yaml:"view"`
}

type NoiseConfig struct {
	Type        string  `yaml:"type"`
	Scale       float64 `yaml:"scale"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Height      float64 `yaml:"height"`
}

type RiverConfig struct {
	Scale     float64 `yaml:"scale"`
	Threshold float64 `yaml:"threshold"`
	Depth     float64 `yaml:"depth"`
}

type BiomeConfig struct {
	River  string       `yaml:"river"` // level painted on river surfaces
	Shore  string       `yaml:"shore"` // level whose bound gates river surfaces
	Levels []BiomeLevel `yaml:"levels"`
}

type BiomeLevel struct {
	Name  string  `yaml:"name"`
	Level float64 `yaml:"level"`
	Color Color   `yaml:"color"`
}

type ViewConfig struct {
	FOV        float64 `yaml:"fov"` // degrees
	FogNear    float64 `yaml:"fog_near"`
	FogFar     float64 `yaml:"fog_far"`
	AutoRotate bool    `yaml:"auto_rotate"`
	Shadows    bool    `yaml:"shadows"`
}

// Default returns the settings of the reference terrain demo.
func Default() *Config {
	ref := heightfield.ReferenceBiomes()
	levels := make([]BiomeLevel, len(ref.Levels))
	for i, b := range ref.Levels {
		levels[i] = BiomeLevel{Name: b.Name, Level: b.Bound, Color: Color(b.Color)}
	}
	return &Config{
		Width:    200,
		Height:   200,
		Segments: 256,
		Noise: NoiseConfig{
			Type:        string(noise.KindSimplex),
			Scale:       250,
			Octaves:     6,
			Persistence: 0.5,
			Lacunarity:  2.0,
			Height:      40,
		},
		River: RiverConfig{
			Scale:     150,
			Threshold: 0.03,
			Depth:     5,
		},
		Biomes: BiomeConfig{
			River:  heightfield.WaterShallow,
			Shore:  heightfield.Sand,
			Levels: levels,
		},
		View: ViewConfig{
			FOV:     75,
			FogNear: 50,
			FogFar:  300,
			Shadows: true,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result. Keys that
// are absent keep their default value; a biomes.levels list replaces the
// default table entirely.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks config-only fields and then the synthesis parameters.
func (c *Config) Validate() error {
	if _, err := noise.ParseKind(c.Noise.Type); err != nil {
		return err
	}
	if c.Workers < 0 {
		return errors.New("workers cannot be negative")
	}
	if c.View.FOV <= 0 || c.View.FOV >= 180 {
		return errors.New("view.fov must be within (0, 180)")
	}
	if c.View.FogNear < 0 {
		return errors.New("view.fog_near cannot be negative")
	}
	if c.View.FogFar < c.View.FogNear {
		return errors.New("view.fog_far must not be less than view.fog_near")
	}
	_, err := c.Params()
	return err
}

// Params maps the config onto synthesis parameters.
func (c *Config) Params() (heightfield.Params, error) {
	table := heightfield.BiomeTable{Levels: make([]heightfield.Biome, len(c.Biomes.Levels))}
	for i, l := range c.Biomes.Levels {
		table.Levels[i] = heightfield.Biome{Name: l.Name, Bound: l.Level, Color: heightfield.RGB(l.Color)}
	}
	var ok bool
	if table.River, ok = table.Lookup(c.Biomes.River); !ok {
		return heightfield.Params{}, fmt.Errorf("biomes.river %q does not name a level", c.Biomes.River)
	}
	if table.Shore, ok = table.Lookup(c.Biomes.Shore); !ok {
		return heightfield.Params{}, fmt.Errorf("biomes.shore %q does not name a level", c.Biomes.Shore)
	}

	workers := c.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	p := heightfield.Params{
		Grid: heightfield.GridSpec{
			Width:     c.Width,
			Height:    c.Height,
			SegmentsX: c.Segments,
			SegmentsY: c.Segments,
		},
		Noise: heightfield.NoiseConfig{
			Scale:       c.Noise.Scale,
			Octaves:     c.Noise.Octaves,
			Persistence: c.Noise.Persistence,
			Lacunarity:  c.Noise.Lacunarity,
			Height:      c.Noise.Height,
		},
		River: heightfield.RiverConfig{
			Scale:     c.River.Scale,
			Threshold: c.River.Threshold,
			Depth:     c.River.Depth,
		},
		Biomes:  table,
		Workers: workers,
	}
	if err := p.Validate(); err != nil {
		return heightfield.Params{}, err
	}
	return p, nil
}

// ResolveSeed returns Seed, or a clock-derived seed when Seed is zero.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Sources builds the terrain and river noise for seed.
func (c *Config) Sources(seed int64) (terrain, river heightfield.Source, err error) {
	kind, err := noise.ParseKind(c.Noise.Type)
	if err != nil {
		return nil, nil, err
	}
	return noise.Pair(kind, seed)
}

// Color is an RGB value written as "#rrggbb" or "0xrrggbb" in YAML.
type Color heightfield.RGB

func (c Color) MarshalYAML() (any, error) {
	return heightfield.RGB(c).String(), nil
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor accepts "#rrggbb", "0xrrggbb" or bare "rrggbb".
func ParseColor(s string) (Color, error) {
	h := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(h, "#"):
		h = h[1:]
	case strings.HasPrefix(h, "0x"), strings.HasPrefix(h, "0X"):
		h = h[2:]
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color(heightfield.Hex(uint32(v))), nil
}
