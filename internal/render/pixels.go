package render

// fillRGBA expands packed RGB pixels into opaque RGBA pixels in buf. Pixels
// beyond the shorter of the two buffers are left untouched.
func fillRGBA(buf []byte, rgb []byte) {
	n := len(rgb) / 3
	if m := len(buf) / 4; m < n {
		n = m
	}
	for i := 0; i < n; i++ {
		src := i * 3
		dst := i * 4
		buf[dst+0] = rgb[src+0]
		buf[dst+1] = rgb[src+1]
		buf[dst+2] = rgb[src+2]
		buf[dst+3] = 0xff
	}
}
