package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type GameState int

const (
	StateLoading GameState = iota
	StateViewing
)

// Shown while the terrain is synthesized
type LoadingScreen struct {
	timer    int
	titleY   float64
	scale    float64
	vertices int
	titleImg *ebiten.Image
}

func NewLoadingScreen(segments int) *LoadingScreen {
	return &LoadingScreen{
		titleY:   -100,
		scale:    0.5,
		vertices: (segments + 1) * (segments + 1),
	}
}

func (ls *LoadingScreen) Update(screenH int) {
	ls.timer++

	// Drop title in
	targetY := float64(screenH) / 3
	ls.titleY += (targetY - ls.titleY) * 0.05

	// Grow
	ls.scale += (1.0 - ls.scale) * 0.03
}

func (ls *LoadingScreen) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{0, 0, 0, 255})

	// Drifting stars
	for i := 0; i < 50; i++ {
		starX := float32((i*73 + ls.timer/2) % max(w, 1))
		starY := float32((i*47 + ls.timer/3) % max(h, 1))
		brightness := uint8(100 + (i*7)%155)
		size := float32(1 + (i % 3))
		vector.DrawFilledCircle(screen, starX, starY, size, color.RGBA{brightness, brightness, brightness, 200}, false)
	}

	face := basicfont.Face7x13
	title := "PROCEDURAL TERRAIN"

	// Green glow
	titleWidth := len(title) * 7 * 4
	glowX := float32(w/2 - titleWidth/2 - 20)
	glowY := float32(ls.titleY - 60)
	for i := 0; i < 5; i++ {
		alpha := uint8(30 - i*5)
		expand := float32(i * 5)
		vector.DrawFilledRect(screen, glowX-expand, glowY-expand, float32(titleWidth+40)+expand*2, 80+expand*2,
			color.RGBA{56, 118, 29, alpha}, false)
	}

	if ls.titleImg == nil {
		ls.titleImg = textImage(title, face, color.RGBA{242, 209, 109, 255})
	}
	drawScaledImage(screen, ls.titleImg, w/2, int(ls.titleY), ls.scale*4)

	dots := strings.Repeat(".", 1+(ls.timer/20)%3)
	status := fmt.Sprintf("Generating %d vertices%s", ls.vertices, dots)
	statusWidth := len(status) * 7
	text.Draw(screen, status, face, w/2-statusWidth/2, int(ls.titleY)+50, color.RGBA{150, 200, 255, 255})

	credits := "Made with Ebitengine"
	creditsWidth := len(credits) * 7
	text.Draw(screen, credits, face, w/2-creditsWidth/2, h-30, color.RGBA{100, 100, 100, 255})
}

// Render text once at native size
func textImage(s string, face font.Face, clr color.Color) *ebiten.Image {
	charWidth := 7   // basicfont character width
	charHeight := 13 // basicfont character height
	img := ebiten.NewImage(len(s)*charWidth+4, charHeight+4)
	text.Draw(img, s, face, 2, charHeight, clr)
	return img
}

// Draw centered on cx with a drop shadow, baseline at y
func drawScaledImage(screen, img *ebiten.Image, cx, y int, scale float64) {
	if scale <= 0 {
		return
	}

	scaledWidth := float64(img.Bounds().Dx()) * scale
	scaledHeight := float64(img.Bounds().Dy()) * scale

	// Shadow
	shadowOp := &ebiten.DrawImageOptions{}
	shadowOp.GeoM.Scale(scale, scale)
	shadowOp.GeoM.Translate(float64(cx)-scaledWidth/2+3, float64(y)-scaledHeight+3)
	shadowOp.ColorScale.Scale(0, 0, 0, 0.5)
	shadowOp.Filter = ebiten.FilterLinear // Smooth scaling
	screen.DrawImage(img, shadowOp)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(cx)-scaledWidth/2, float64(y)-scaledHeight)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
