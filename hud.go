package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"ProceduralTerrainGen/terrain"
)

// Pool size
const MaxNotifications = 8

// HUD overlays world stats, the biome legend and toggle notifications
type HUD struct {
	world *terrain.World

	fps float64

	// Notifications
	notifications     [MaxNotifications]Notification
	activeNotifyCount int
}

type Notification struct {
	Text   string
	Timer  int
	Active bool // Pool
}

func NewHUD(w *terrain.World) *HUD {
	return &HUD{world: w}
}

func (h *HUD) Update() {
	// Smooth FPS readout
	h.fps += (ebiten.ActualFPS() - h.fps) * 0.1

	// Update notifications (in-place, no allocations)
	for i := 0; i < h.activeNotifyCount; i++ {
		n := &h.notifications[i]
		if !n.Active {
			continue
		}
		n.Timer--
		if n.Timer <= 0 {
			n.Active = false
		}
	}

	// Reclaim slots once everything faded
	if h.activeNotifyCount > 0 && !h.anyActive() {
		h.activeNotifyCount = 0
	}
}

func (h *HUD) anyActive() bool {
	for i := 0; i < h.activeNotifyCount; i++ {
		if h.notifications[i].Active {
			return true
		}
	}
	return false
}

func (h *HUD) AddNotification(notificationText string) {
	n := Notification{Text: notificationText, Timer: 120, Active: true}
	if h.activeNotifyCount < MaxNotifications {
		h.notifications[h.activeNotifyCount] = n
		h.activeNotifyCount++
	} else {
		// Overwrite oldest
		copy(h.notifications[:], h.notifications[1:])
		h.notifications[MaxNotifications-1] = n
	}
}

func (h *HUD) Draw(screen *ebiten.Image, showPanel bool) {
	face := basicfont.Face7x13

	if showPanel {
		h.drawStats(screen, face)
		h.drawLegend(screen, face)
	}
	h.drawNotifications(screen, face)
	h.drawControlsHint(screen, face)
}

func (h *HUD) drawStats(screen *ebiten.Image, face font.Face) {
	w := h.world
	p := w.Params
	lines := []string{
		fmt.Sprintf("FPS %.0f", h.fps),
		fmt.Sprintf("Seed %d", w.Seed),
		fmt.Sprintf("Noise %s, %d octaves", w.NoiseType, p.Noise.Octaves),
		fmt.Sprintf("Vertices %d", w.Field.Len()),
		fmt.Sprintf("Triangles %d", w.Mesh.TriangleCount()),
		fmt.Sprintf("Elevation %.1f .. %.1f", w.Stats.MinElevation, w.Stats.MaxElevation),
		fmt.Sprintf("River %.1f%%", 100*w.Stats.RiverCoverage(w.Field.Len())),
		fmt.Sprintf("Built in %dms", w.Elapsed.Milliseconds()),
	}

	x, y := 20, 20
	panelW := 0
	for _, l := range lines {
		panelW = max(panelW, len(l)*7)
	}
	panelH := len(lines)*16 + 10

	vector.DrawFilledRect(screen, float32(x-10), float32(y-10), float32(panelW+20), float32(panelH), color.RGBA{0, 0, 0, 150}, false)
	vector.StrokeRect(screen, float32(x-10), float32(y-10), float32(panelW+20), float32(panelH), 1, color.RGBA{100, 100, 100, 200}, false)

	for i, l := range lines {
		text.Draw(screen, l, face, x, y+10+i*16, color.White)
	}
}

func (h *HUD) drawLegend(screen *ebiten.Image, face font.Face) {
	levels := h.world.Params.Biomes.Levels
	counts := h.world.Stats.BiomeCounts
	total := h.world.Field.Len()

	x := 20
	y := screen.Bounds().Dy() - 60 - len(levels)*18
	vector.DrawFilledRect(screen, float32(x-10), float32(y-10), 200, float32(len(levels)*18+10), color.RGBA{0, 0, 0, 150}, false)

	for i, b := range levels {
		r, g, bl := b.Color.RGBA8()
		rowY := y + i*18

		// Swatch
		vector.DrawFilledRect(screen, float32(x), float32(rowY), 12, 12, color.RGBA{r, g, bl, 255}, false)
		vector.StrokeRect(screen, float32(x), float32(rowY), 12, 12, 1, color.RGBA{200, 200, 200, 255}, false)

		pct := 0.0
		if total > 0 && i < len(counts) {
			pct = 100 * float64(counts[i]) / float64(total)
		}
		label := fmt.Sprintf("%-13s %5.1f%%", b.Name, pct)
		text.Draw(screen, label, face, x+20, rowY+11, color.RGBA{220, 220, 220, 255})
	}
}

func (h *HUD) drawNotifications(screen *ebiten.Image, face font.Face) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	startY := sh - 100
	drawnCount := 0
	for i := h.activeNotifyCount - 1; i >= 0; i-- {
		n := &h.notifications[i]
		if !n.Active {
			continue
		}

		y := startY - drawnCount*25
		drawnCount++

		// Fade based on timer
		alpha := 255
		if n.Timer < 30 {
			alpha = int(float64(n.Timer) / 30 * 255)
		}

		textWidth := len(n.Text) * 7
		x := sw/2 - textWidth/2

		text.Draw(screen, n.Text, face, x, y, color.RGBA{255, 255, 200, uint8(alpha)})
	}
}

func (h *HUD) drawControlsHint(screen *ebiten.Image, face font.Face) {
	hints := "Drag/Arrows: Orbit | Wheel/+-: Zoom | Space: Auto-rotate | H: HUD | M: Map | F: Fog"
	if !IsEmbedded() {
		hints += " | Q: Quit"
	}
	textWidth := len(hints) * 7
	x := screen.Bounds().Dx()/2 - textWidth/2
	y := screen.Bounds().Dy() - 20

	text.Draw(screen, hints, face, x, y, color.RGBA{100, 100, 100, 150})
}
