package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ProceduralTerrainGen/config"
	"ProceduralTerrainGen/mesh"
	"ProceduralTerrainGen/render"
	"ProceduralTerrainGen/terrain"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	// DrawTriangles indexes with uint16
	maxBatchVertices = 65535 / 3 * 3

	// One turn every 30 seconds at 60 TPS
	autoRotateStep = 2 * math.Pi / (30 * 60)
	keyRotateStep  = 0.02
	zoomStep       = 0.95
	keyZoomStep    = 0.98
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type Game struct {
	// Game state
	state   GameState
	loading *LoadingScreen
	pending <-chan worldResult

	cfg   *config.Config
	world *terrain.World

	// Systems
	scene   *render.Scene
	camera  *render.OrbitCamera
	hud     *HUD
	minimap *Minimap

	// Mouse drag
	dragging     bool
	lastX, lastY int

	// Toggles
	autoRotate  bool
	showHUD     bool
	showMinimap bool

	width, height int

	// Triangle batch, reused every frame
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewGame(cfg *config.Config) *Game {
	return &Game{
		state:       StateLoading,
		loading:     NewLoadingScreen(cfg.Segments),
		pending:     generateAsync(cfg),
		cfg:         cfg,
		autoRotate:  cfg.View.AutoRotate,
		showHUD:     true,
		showMinimap: true,
		width:       ScreenWidth,
		height:      ScreenHeight,
	}
}

// Update game logic
func (g *Game) Update() error {
	switch g.state {
	case StateLoading:
		g.loading.Update(g.height)
		select {
		case res := <-g.pending:
			if res.err != nil {
				return res.err
			}
			g.enterViewing(res.world)
		default:
		}

	case StateViewing:
		if g.handleInput() {
			return ebiten.Termination
		}
		if g.autoRotate {
			g.camera.Rotate(autoRotateStep, 0)
		}
		g.camera.Update()
		g.hud.Update()
	}
	return nil
}

func (g *Game) enterViewing(w *terrain.World) {
	g.world = w

	light := render.DefaultLighting()
	light.FogNear = g.cfg.View.FogNear
	light.FogFar = g.cfg.View.FogFar
	light.Shadows = g.cfg.View.Shadows
	g.scene = render.NewScene(w.Mesh, light)

	g.camera = render.NewOrbitCamera(mesh.Vec3{X: 50, Y: 60, Z: 50}, mesh.Vec3{})
	g.camera.FOV = g.cfg.View.FOV * math.Pi / 180

	g.hud = NewHUD(w)
	g.minimap = NewMinimap(w)
	g.loading = nil
	g.pending = nil
	g.state = StateViewing
}

// Returns true when the viewer should quit
func (g *Game) handleInput() bool {
	// Orbit with the left button, full height drag is one turn
	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			dx, dy := float64(mx-g.lastX), float64(my-g.lastY)
			h := float64(g.height)
			g.camera.Rotate(-2*math.Pi*dx/h, 2*math.Pi*dy/h)
		}
		g.dragging = true
		g.lastX, g.lastY = mx, my
	} else {
		g.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy > 0 {
		g.camera.Zoom(zoomStep)
	} else if wy < 0 {
		g.camera.Zoom(1 / zoomStep)
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camera.Rotate(-keyRotateStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camera.Rotate(keyRotateStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camera.Rotate(0, keyRotateStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camera.Rotate(0, -keyRotateStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyNumpadAdd) {
		g.camera.Zoom(keyZoomStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyNumpadSubtract) {
		g.camera.Zoom(1 / keyZoomStep)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.showMinimap = !g.showMinimap
		g.hud.AddNotification(onOff("Minimap", g.showMinimap))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.scene.FogEnabled = !g.scene.FogEnabled
		g.hud.AddNotification(onOff("Fog", g.scene.FogEnabled))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.autoRotate = !g.autoRotate
		g.hud.AddNotification(onOff("Auto-rotate", g.autoRotate))
	}

	// No quitting from a browser tab
	if !IsEmbedded() && (inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)) {
		return true
	}
	return false
}

func onOff(name string, on bool) string {
	if on {
		return name + " ON"
	}
	return name + " OFF"
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case StateLoading:
		g.loading.Draw(screen)

	case StateViewing:
		g.drawTerrain(screen)
		if g.showMinimap {
			g.minimap.Draw(screen, g.camera)
		}
		g.hud.Draw(screen, g.showHUD)
	}
}

func (g *Game) drawTerrain(screen *ebiten.Image) {
	r, gr, b := g.scene.Light.Background.RGBA8()
	screen.Fill(color.RGBA{r, gr, b, 255})

	tris := g.scene.Project(g.camera, g.width, g.height)
	op := &ebiten.DrawTrianglesOptions{}

	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
	for _, t := range tris {
		if len(g.vertices)+3 > maxBatchVertices {
			screen.DrawTriangles(g.vertices, g.indices, whiteSubImage, op)
			g.vertices = g.vertices[:0]
			g.indices = g.indices[:0]
		}
		base := uint16(len(g.vertices))
		for _, v := range t.V {
			g.vertices = append(g.vertices, ebiten.Vertex{
				DstX:   v.X,
				DstY:   v.Y,
				SrcX:   1,
				SrcY:   1,
				ColorR: v.R,
				ColorG: v.G,
				ColorB: v.B,
				ColorA: 1,
			})
		}
		g.indices = append(g.indices, base, base+1, base+2)
	}
	if len(g.indices) > 0 {
		screen.DrawTriangles(g.vertices, g.indices, whiteSubImage, op)
	}
}

func (g *Game) Layout(w, h int) (int, int) {
	if w <= 0 || h <= 0 {
		w, h = ScreenWidth, ScreenHeight
	}
	g.width, g.height = w, h
	return w, h
}

func main() {
	flags := NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := loadWorldConfig(flags)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Procedural Terrain")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := NewGame(cfg)

	if err := ebiten.RunGame(game); err != nil {
		if err != ebiten.Termination {
			log.Fatal(err)
		}
	}
}
