package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"cellular/internal/core"
)

// RGBImage wraps packed 3-byte RGB pixels as an opaque image.
func RGBImage(width, height int, rgb []byte) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("export: invalid size %dx%d", width, height)
	}
	if len(rgb) != 3*width*height {
		return nil, fmt.Errorf("export: %d bytes for a %dx%d RGB image", len(rgb), width, height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[4*i+0] = rgb[3*i+0]
		img.Pix[4*i+1] = rgb[3*i+1]
		img.Pix[4*i+2] = rgb[3*i+2]
		img.Pix[4*i+3] = 0xff
	}
	return img, nil
}

// WriteRGB encodes packed RGB pixels as PNG.
func WriteRGB(w io.Writer, width, height int, rgb []byte) error {
	img, err := RGBImage(width, height, rgb)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Dir writes one PNG per rule code into a directory.
type Dir struct {
	Path string
}

// NewDir creates path if needed.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("export: create %s: %w", path, err)
	}
	return &Dir{Path: path}, nil
}

// File returns the output path for code.
func (d *Dir) File(code uint8) string {
	return filepath.Join(d.Path, strconv.Itoa(int(code))+".png")
}

// Save writes the canvas to <dir>/<code>.png.
func (d *Dir) Save(code uint8, img *core.Canvas) error {
	return d.SaveRGB(code, img.W, img.H, img.Pix())
}

// SaveRGB writes packed RGB pixels to <dir>/<code>.png. The file is written
// under a temporary name and renamed into place.
func (d *Dir) SaveRGB(code uint8, width, height int, rgb []byte) error {
	path := d.File(code)
	f, err := os.CreateTemp(d.Path, ".tmp-*.png")
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := WriteRGB(f, width, height, rgb); err != nil {
		f.Close()
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
