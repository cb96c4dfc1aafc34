package filter

import (
	"testing"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// Test helper functions shared across filter tests.

// newFilled creates a bitmap filled with p.
func newFilled(t *testing.T, w, h int, p pixel.Pixel) *image.Bitmap {
	t.Helper()
	b, err := image.New(w, h)
	if err != nil {
		t.Fatalf("image.New(%d, %d): %v", w, h, err)
	}
	b.Fill(p)
	return b
}

// newGradient creates a bitmap whose pixels vary in every channel.
func newGradient(t *testing.T, w, h int) *image.Bitmap {
	t.Helper()
	b := newFilled(t, w, h, pixel.Transparent)
	for y := range h {
		for x := range w {
			b.SetPixel(x, y, pixel.Pack(uint8(x*255/max(w-1, 1)), uint8(y*255/max(h-1, 1)), uint8((x+y)*7), 255))
		}
	}
	return b
}

func clone(t *testing.T, b *image.Bitmap) *image.Bitmap {
	t.Helper()
	c, err := b.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	return c
}

// pixelsClose reports whether every channel differs by at most tol.
func pixelsClose(a, b pixel.Pixel, tol int) bool {
	return pixel.WithinTolerance(a, b, uint8(tol))
}
