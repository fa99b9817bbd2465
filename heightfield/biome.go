package heightfield

import "fmt"

// RGB is a linear color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// Hex converts a 0xRRGGBB literal into an RGB.
func Hex(v uint32) RGB {
	return RGB{
		R: float64((v>>16)&0xff) / 255,
		G: float64((v>>8)&0xff) / 255,
		B: float64(v&0xff) / 255,
	}
}

// RGBA8 returns the color quantized to 8-bit channels.
func (c RGB) RGBA8() (r, g, b uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B)
}

func (c RGB) String() string {
	r, g, b := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func channel8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Biome is one elevation band. Bound is the exclusive upper elevation limit.
type Biome struct {
	Name  string
	Bound float64
	Color RGB
}

// BiomeTable is an ascending list of elevation bands. The last entry catches
// every elevation above the other bounds.
type BiomeTable struct {
	Levels []Biome

	// River indexes the band whose color paints river surfaces.
	River int
	// Shore indexes the band whose bound gates the river surface override.
	Shore int
}

// Biome names used by the reference table.
const (
	WaterDeep    = "water_deep"
	WaterShallow = "water_shallow"
	Sand         = "sand"
	Grass        = "grass"
	Rock         = "rock"
	Snow         = "snow"
)

// ReferenceBiomes returns the six-band table of the reference terrain demo.
func ReferenceBiomes() BiomeTable {
	return BiomeTable{
		Levels: []Biome{
			{Name: WaterDeep, Bound: -5.0, Color: Hex(0x000066)},
			{Name: WaterShallow, Bound: -2.0, Color: Hex(0x0066ff)},
			{Name: Sand, Bound: 0.0, Color: Hex(0xf2d16d)},
			{Name: Grass, Bound: 15.0, Color: Hex(0x38761d)},
			{Name: Rock, Bound: 25.0, Color: Hex(0x737373)},
			{Name: Snow, Bound: 30.0, Color: Hex(0xffffff)},
		},
		River: 1,
		Shore: 2,
	}
}

// Index returns the band an elevation falls into: the first whose bound
// exceeds it, or the last band when none does.
func (t BiomeTable) Index(elevation float64) int {
	for i, b := range t.Levels {
		if elevation < b.Bound {
			return i
		}
	}
	return len(t.Levels) - 1
}

// Classify returns the color of the band an elevation falls into.
func (t BiomeTable) Classify(elevation float64) RGB {
	return t.Levels[t.Index(elevation)].Color
}

// Surface returns the displayed color of a vertex. River vertices below the
// shore bound show the river color regardless of their band.
func (t BiomeTable) Surface(elevation float64, inRiver bool) RGB {
	if inRiver && elevation < t.Levels[t.Shore].Bound {
		return t.Levels[t.River].Color
	}
	return t.Classify(elevation)
}

// Lookup returns the index of the band with the given name.
func (t BiomeTable) Lookup(name string) (int, bool) {
	for i, b := range t.Levels {
		if b.Name == name {
			return i, true
		}
	}
	return -1, false
}
