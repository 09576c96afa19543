//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"cellular/internal/core"
)

// CanvasPainter uploads an RGB canvas into an ebiten image.
type CanvasPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewCanvasPainter allocates a painter for a canvas of size w*h.
func NewCanvasPainter(w, h int) *CanvasPainter {
	cp := &CanvasPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	cp.img = ebiten.NewImage(w, h)
	return cp
}

// Blit uploads the canvas and draws it scaled onto dst.
func (cp *CanvasPainter) Blit(dst *ebiten.Image, c *core.Canvas, scale int) {
	if c.W != cp.w || c.H != cp.h {
		return
	}
	fillRGBA(cp.buf, c.Pix())
	cp.img.WritePixels(cp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(cp.img, op)
}

// Size returns the dimensions of the underlying image.
func (cp *CanvasPainter) Size() (int, int) { return cp.w, cp.h }
