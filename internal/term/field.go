package term

import (
	"bytes"

	"cellular/internal/core"
	"cellular/internal/sims/elementary"
)

// fieldText renders the drawn rows of c as text, one character per cell.
// Only the first rows rows hold generations. When they do not fit in maxH
// lines the most recent ones are shown; columns past maxW are cut off.
func fieldText(c *core.Canvas, rows, maxW, maxH int, live, dead string) string {
	if rows > c.H {
		rows = c.H
	}
	if maxW <= 0 || maxH <= 0 || rows <= 0 {
		return ""
	}
	first := 0
	if rows > maxH {
		first = rows - maxH
	}
	width := min(c.W, maxW)
	on := elementary.CellFor(elementary.On).Colour

	var b bytes.Buffer
	for y := first; y < rows; y++ {
		if y != first {
			b.WriteByte('\n')
		}
		row := c.Row(y)
		for x := 0; x < width; x++ {
			if row[3*x] == on.R && row[3*x+1] == on.G && row[3*x+2] == on.B {
				b.WriteString(live)
				continue
			}
			b.WriteString(dead)
		}
	}
	return b.String()
}
