package config

import (
	"fmt"
	"strconv"
)

// Overrides are per-run values layered over a loaded world. Zero fields
// leave the world untouched.
type Overrides struct {
	Seed     int64
	Segments int
	Noise    string
}

// Apply copies the set fields of o onto c.
func (c *Config) Apply(o Overrides) {
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Segments > 0 {
		c.Segments = o.Segments
	}
	if o.Noise != "" {
		c.Noise.Type = o.Noise
	}
}

// Resolve caps the file's segments at maxSegments (0 for no cap), applies
// layers in order so later layers win, and validates the result. An explicit
// segments override may exceed the cap.
func (c *Config) Resolve(maxSegments int, layers ...Overrides) error {
	if maxSegments > 0 && c.Segments > maxSegments {
		c.Segments = maxSegments
	}
	for _, o := range layers {
		c.Apply(o)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// LookupOverrides reads "seed", "segments" and "noise" through get, such as
// a URL query. Values that do not parse are ignored.
func LookupOverrides(get func(key string) string) Overrides {
	var o Overrides
	if v, err := strconv.ParseInt(get("seed"), 10, 64); err == nil {
		o.Seed = v
	}
	if v, err := strconv.Atoi(get("segments")); err == nil && v > 0 {
		o.Segments = v
	}
	o.Noise = get("noise")
	return o
}
