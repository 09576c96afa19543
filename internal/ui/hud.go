//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"cellular/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// RuleStepper moves the active Wolfram code up or down by one.
type RuleStepper interface {
	NextRule()
	PrevRule()
}

// HUD renders the parameter panel to the right of the automaton view.
type HUD struct {
	src        parameterProvider
	rules      RuleStepper
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []line

	panelOffsetX int
	minusRect    image.Rectangle
	plusRect     image.Rectangle

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided source and panel width. rules may
// be nil, in which case the rule buttons are drawn disabled.
func NewHUD(src parameterProvider, rules RuleStepper, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, rules: rules, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	plus := image.Rect(width-panelPadding-buttonSize, panelPadding, width-panelPadding, panelPadding+buttonSize)
	h.plusRect = plus
	h.minusRect = image.Rect(plus.Min.X-buttonGap-buttonSize, plus.Min.Y, plus.Min.X-buttonGap, plus.Max.Y)
	return h
}

// Update refreshes the cached snapshot and handles clicks on the rule buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.lines = snapshotLines(h.src.Parameters())
	if h.rules == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	x -= h.panelOffsetX
	switch {
	case pointInRect(x, y, h.minusRect):
		h.rules.PrevRule()
	case pointInRect(x, y, h.plusRect):
		h.rules.NextRule()
	}
}

// Draw paints the HUD panel at offsetX with the given pixel height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.panel, "Rule", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	h.drawButton(h.minusRect, "-", h.rules != nil)
	h.drawButton(h.plusRect, "+", h.rules != nil)

	y := controlsTop
	for _, l := range h.lines {
		if y > height-panelPadding {
			break
		}
		if l.header {
			y += 6
			text.Draw(h.panel, l.label, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
			y += lineHeight
			continue
		}
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if l.value == "" {
			fg = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		text.Draw(h.panel, l.label, face, panelPadding, y, fg)
		if l.value != "" {
			bounds := text.BoundString(face, l.value)
			text.Draw(h.panel, l.value, face, h.width-panelPadding-bounds.Dx(), y, fg)
		}
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 16
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 16
	controlsTop    = panelPadding + buttonSize + 18
)
