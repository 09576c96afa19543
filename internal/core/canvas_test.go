package core

import (
	"slices"
	"testing"
)

func TestCanvasSetRow(t *testing.T) {
	c := NewCanvas(2, 3)
	if len(c.Pix()) != 18 {
		t.Fatalf("len(Pix) = %d, want 18", len(c.Pix()))
	}

	if !c.SetRow(1, []uint8{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Fatal("SetRow(1) reported missing row")
	}
	want := []uint8{0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 0, 0, 0, 0, 0, 0}
	if !slices.Equal(c.Pix(), want) {
		t.Fatalf("Pix = %v, want %v", c.Pix(), want)
	}

	if c.SetRow(3, []uint8{9}) || c.SetRow(-1, []uint8{9}) {
		t.Fatal("SetRow accepted a row outside the canvas")
	}

	c.Clear()
	for i, v := range c.Pix() {
		if v != 0 {
			t.Fatalf("Clear left %d at %d", v, i)
		}
	}
}

func TestNewCanvasClampsDimensions(t *testing.T) {
	c := NewCanvas(0, -4)
	if c.W != 1 || c.H != 1 || c.Stride() != 3 {
		t.Fatalf("got %dx%d stride %d, want 1x1 stride 3", c.W, c.H, c.Stride())
	}
}
