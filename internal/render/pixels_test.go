package render

import (
	"slices"
	"testing"
)

func TestFillRGBA(t *testing.T) {
	buf := make([]byte, 12)
	fillRGBA(buf, []byte{255, 255, 255, 0, 0, 0, 1, 2, 3})
	want := []byte{255, 255, 255, 255, 0, 0, 0, 255, 1, 2, 3, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestFillRGBAClipsToShorterBuffer(t *testing.T) {
	buf := make([]byte, 8)
	fillRGBA(buf, []byte{9, 9, 9, 8, 8, 8, 7, 7, 7})
	want := []byte{9, 9, 9, 255, 8, 8, 8, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}
