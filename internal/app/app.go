//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"forest-ca/internal/core"
	"forest-ca/internal/render"
	"forest-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	minTPS = 1
	maxTPS = 20
)

type paletteProvider interface {
	Palette() []color.RGBA
}

var binaryPalette = []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FixedStep
	palette []color.RGBA

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	palette := binaryPalette
	if p, ok := sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		pacer:    core.NewFixedStep(clampTPS(cfg.TPS)),
		palette:  palette,
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
	g.updateStatus()
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation at the
// configured tick rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.pacer.SetTPS(clampTPS(g.pacer.TPS() + 1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.pacer.SetTPS(clampTPS(g.pacer.TPS() - 1))
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W * g.scale)

	due := g.pacer.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.updateStatus()
	return nil
}

func (g *Game) updateStatus() {
	state := "running"
	if g.paused {
		state = "paused"
	}
	g.hud.SetStatus(fmt.Sprintf("%s, %d ticks/s", state, g.pacer.TPS()))
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	g.painter.Blit(screen, g.sim.Cells(), size.W, size.H, g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, size.W*g.scale, max(size.H*g.scale, minHUDHeight))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, max(s.H*g.scale, minHUDHeight)
}

const minHUDHeight = 420

func clampTPS(tps int) int {
	return min(max(tps, minTPS), maxTPS)
}
