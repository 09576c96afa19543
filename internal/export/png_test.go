package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"cellular/internal/core"
)

func TestWriteRGBRoundTrip(t *testing.T) {
	rgb := []byte{
		255, 255, 255, 0, 0, 0,
		10, 20, 30, 0, 0, 0,
	}
	var buf bytes.Buffer
	if err := WriteRGB(&buf, 2, 2, rgb); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}
	r, g, bl, a := img.At(0, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || bl>>8 != 30 || a>>8 != 255 {
		t.Fatalf("pixel (0,1) = %d %d %d %d", r>>8, g>>8, bl>>8, a>>8)
	}
}

func TestWriteRGBRejectsShortBuffer(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRGB(&buf, 2, 2, make([]byte, 11)); err == nil {
		t.Fatal("expected size mismatch error")
	}
	if err := WriteRGB(&buf, 0, 2, nil); err == nil {
		t.Fatal("expected invalid size error")
	}
}

func TestDirSave(t *testing.T) {
	dir, err := NewDir(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	c := core.NewCanvas(3, 2)
	c.SetRow(0, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9})

	if err := dir.Save(110, c); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(filepath.Join(dir.Path, "110.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}

	entries, err := os.ReadDir(dir.Path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("directory holds %d entries, want only the image", len(entries))
	}
}
