//go:build ebiten

package app

import (
	"cellular/internal/control"
	"cellular/internal/core"
	"cellular/internal/render"
	"cellular/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxTicksPerFrame bounds how many generations one frame may compute.
const maxTicksPerFrame = 4096

var keys = map[ebiten.Key]string{
	ebiten.KeySpace:        control.TriggerPause,
	ebiten.KeyPeriod:       control.TriggerStep,
	ebiten.KeyDigit1:       control.TriggerSingle,
	ebiten.KeyApostrophe:   control.TriggerAlternate,
	ebiten.KeyR:            control.TriggerRandom,
	ebiten.KeyN:            control.TriggerNoise,
	ebiten.KeyS:            control.TriggerSave,
	ebiten.KeyBracketRight: control.TriggerNextRule,
	ebiten.KeyBracketLeft:  control.TriggerPrevRule,
}

// Game adapts a control.Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *control.Controller
	painter *render.CanvasPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	step    *core.FixedStep

	scale    int
	hudWidth int
}

// New constructs a Game for the provided controller.
func New(ctrl *control.Controller, scale, tps, hudWidth int) *Game {
	c := ctrl.Canvas()
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		ctrl:     ctrl,
		painter:  render.NewCanvasPainter(c.W, c.H),
		hud:      ui.NewHUD(ctrl, ctrl, hudWidth),
		overlay:  ui.NewOverlay(ctrl.Bindings()),
		step:     core.NewFixedStep(tps),
		scale:    scale,
		hudWidth: hudWidth,
	}
}

// Update handles input and advances the automaton by the generations owed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	for key, trigger := range keys {
		if inpututil.IsKeyJustPressed(key) {
			g.ctrl.Trigger(trigger)
		}
	}
	g.overlay.Update()
	g.hud.Update(g.ctrl.Canvas().W * g.scale)

	if err := g.ctrl.Frame(g.step.Due(maxTicksPerFrame)); err != nil {
		return err
	}
	if g.ctrl.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the canvas, the side panel and the help overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	c := g.ctrl.Canvas()
	g.painter.Blit(screen, c, g.scale)
	g.hud.Draw(screen, c.W*g.scale, c.H*g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	c := g.ctrl.Canvas()
	return c.W*g.scale + g.hudWidth, c.H * g.scale
}
