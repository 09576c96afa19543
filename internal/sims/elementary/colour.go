package elementary

// AppendColours appends the RGB triple of every cell in g to dst.
func AppendColours(dst []byte, g Generation) []byte {
	for _, c := range g {
		dst = append(dst, c.Colour.R, c.Colour.G, c.Colour.B)
	}
	return dst
}

// CellsToColour flattens a generation into 3 bytes per cell.
func CellsToColour(g Generation) []byte {
	return AppendColours(make([]byte, 0, 3*len(g)), g)
}

// HistoryToColour flattens a run into a width*height RGB image. Rows the run
// never reached are left black, rows past height are dropped and each row is
// clipped to width.
func HistoryToColour(h History, width, height int) []byte {
	stride := 3 * width
	out := make([]byte, stride*height)
	for y, g := range h {
		if y >= height {
			break
		}
		row := out[y*stride : (y+1)*stride]
		for x, c := range g {
			if x >= width {
				break
			}
			row[3*x+0] = c.Colour.R
			row[3*x+1] = c.Colour.G
			row[3*x+2] = c.Colour.B
		}
	}
	return out
}
