//go:build ebiten

package ui

import (
	"image/color"

	"cellular/internal/control"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the key-binding help on top of the automaton view.
type Overlay struct {
	lines []string
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay listing bindings.
func NewOverlay(bindings []control.Binding) *Overlay {
	o := &Overlay{lines: helpLines(bindings)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay with H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Draw paints the help box in the top-left corner while visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, l := range o.lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*overlayPadding), float64(len(o.lines)*overlayLine+2*overlayPadding))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	screen.DrawImage(o.pixel, op)

	for i, l := range o.lines {
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			fg = color.RGBA{R: 120, G: 220, B: 140, A: 255}
		}
		text.Draw(screen, l, face, overlayPadding, overlayPadding+(i+1)*overlayLine-3, fg)
	}
}

const (
	overlayPadding = 8
	overlayLine    = 15
)
