package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ProceduralTerrainGen/export"
	"ProceduralTerrainGen/render"
	"ProceduralTerrainGen/terrain"
)

const minimapSize = 180

// Minimap is the biome colormap seen from above
type Minimap struct {
	Image    *ebiten.Image
	DrawOpts *ebiten.DrawImageOptions

	width, height float64 // world extent
}

func NewMinimap(w *terrain.World) *Minimap {
	g := w.Params.Grid
	return &Minimap{
		Image:    ebiten.NewImageFromImage(export.Colormap(w.Field)),
		DrawOpts: &ebiten.DrawImageOptions{},
		width:    g.Width,
		height:   g.Height,
	}
}

func (mm *Minimap) Draw(screen *ebiten.Image, cam *render.OrbitCamera) {
	bounds := mm.Image.Bounds()
	scale := minimapSize / float64(max(bounds.Dx(), bounds.Dy()))
	drawW := float64(bounds.Dx()) * scale
	drawH := float64(bounds.Dy()) * scale

	x := float64(screen.Bounds().Dx()) - drawW - 20
	y := 20.0

	// Frame
	vector.DrawFilledRect(screen, float32(x-4), float32(y-4), float32(drawW+8), float32(drawH+8), color.RGBA{0, 0, 0, 200}, false)

	mm.DrawOpts.GeoM.Reset()
	mm.DrawOpts.GeoM.Scale(scale, scale)
	mm.DrawOpts.GeoM.Translate(x, y)
	screen.DrawImage(mm.Image, mm.DrawOpts)

	vector.StrokeRect(screen, float32(x), float32(y), float32(drawW), float32(drawH), 1, color.RGBA{200, 200, 200, 255}, false)

	// Image columns follow world x, rows follow world z
	cx := x + drawW/2 + cam.Target.X/mm.width*drawW
	cy := y + drawH/2 + cam.Target.Z/mm.height*drawH
	eye := cam.Eye()
	dx, dz := eye.X-cam.Target.X, eye.Z-cam.Target.Z
	if l := math.Hypot(dx, dz); l > 0 {
		dx, dz = dx/l, dz/l
	} else {
		dx, dz = math.Sin(cam.Yaw()), math.Cos(cam.Yaw())
	}

	// Eye marker, the line points along the view direction
	const arm = 24.0
	ex, ey := cx+dx*arm, cy+dz*arm
	vector.StrokeLine(screen, float32(ex), float32(ey), float32(cx), float32(cy), 2, color.RGBA{255, 80, 80, 255}, false)
	vector.DrawFilledCircle(screen, float32(ex), float32(ey), 4, color.RGBA{255, 255, 255, 255}, false)
}
