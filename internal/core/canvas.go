package core

// Canvas stores a 2D RGB image, three bytes per pixel in row-major order.
// Rows are written whole as generations arrive.
type Canvas struct {
	W, H int
	data []uint8
}

// NewCanvas allocates a black canvas with the given dimensions.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Canvas{W: w, H: h, data: make([]uint8, 3*w*h)}
}

// Pix exposes the backing slice.
func (c *Canvas) Pix() []uint8 { return c.data }

// Stride returns the number of bytes per row.
func (c *Canvas) Stride() int { return 3 * c.W }

// Row returns the bytes of row y, or nil when y is out of range.
func (c *Canvas) Row(y int) []uint8 {
	if y < 0 || y >= c.H {
		return nil
	}
	s := c.Stride()
	return c.data[y*s : (y+1)*s]
}

// SetRow copies rgb into row y and reports whether the row exists. Input
// longer than a row is truncated.
func (c *Canvas) SetRow(y int, rgb []uint8) bool {
	row := c.Row(y)
	if row == nil {
		return false
	}
	copy(row, rgb)
	return true
}

// Clear fills the canvas with zeros.
func (c *Canvas) Clear() {
	for i := range c.data {
		c.data[i] = 0
	}
}
