package render

import (
	"math"

	"ProceduralTerrainGen/heightfield"
	"ProceduralTerrainGen/mesh"
)

// Lighting is a sky/ground hemisphere light plus one directional sun, and
// linear fog blending towards the background.
type Lighting struct {
	Background heightfield.RGB

	Sky, Ground   heightfield.RGB
	HemiIntensity float64

	Sun          heightfield.RGB
	SunIntensity float64
	SunPosition  mesh.Vec3 // shines towards the origin

	FogNear, FogFar float64

	// Shadows removes the sun term from vertices the terrain hides from it.
	Shadows bool
}

// DefaultLighting matches the terrain demo scene.
func DefaultLighting() Lighting {
	return Lighting{
		Background:    heightfield.Hex(0x000000),
		Sky:           heightfield.Hex(0xcceeff),
		Ground:        heightfield.Hex(0x957d5f),
		HemiIntensity: 1.2,
		Sun:           heightfield.Hex(0xfff5e1),
		SunIntensity:  1.0,
		SunPosition:   mesh.Vec3{X: 100, Y: 100, Z: 50},
		FogNear:       50,
		FogFar:        300,
		Shadows:       true,
	}
}

// Shade applies diffuse lighting to a base color for a unit normal.
func (l Lighting) Shade(base heightfield.RGB, normal mesh.Vec3) heightfield.RGB {
	return l.ShadeVisible(base, normal, 1)
}

// ShadeVisible is Shade with the sun term scaled by sunVisible, 0 for a
// vertex in shadow.
func (l Lighting) ShadeVisible(base heightfield.RGB, normal mesh.Vec3, sunVisible float64) heightfield.RGB {
	w := 0.5*normal.Y + 0.5
	hemi := mix(l.Ground, l.Sky, w)

	lambert := math.Max(0, normal.Dot(l.SunPosition.Normalize()))
	sun := l.SunIntensity * lambert * clamp01(sunVisible)

	return heightfield.RGB{
		R: clamp01(base.R * (hemi.R*l.HemiIntensity + l.Sun.R*sun) * diffuseScale),
		G: clamp01(base.G * (hemi.G*l.HemiIntensity + l.Sun.G*sun) * diffuseScale),
		B: clamp01(base.B * (hemi.B*l.HemiIntensity + l.Sun.B*sun) * diffuseScale),
	}
}

// diffuseScale keeps a fully lit, sun-facing surface close to its albedo.
const diffuseScale = 0.6

// Fog blends c towards the background for a view depth.
func (l Lighting) Fog(c heightfield.RGB, depth float64) heightfield.RGB {
	if l.FogFar <= l.FogNear {
		return c
	}
	return mix(c, l.Background, smoothstep(l.FogNear, l.FogFar, depth))
}

func mix(a, b heightfield.RGB, t float64) heightfield.RGB {
	return heightfield.RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

func smoothstep(lo, hi, x float64) float64 {
	t := clamp01((x - lo) / (hi - lo))
	return t * t * (3 - 2*t)
}

func clamp01(v float64) float64 { return clampf(v, 0, 1) }
