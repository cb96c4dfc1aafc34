package transform

import (
	"fmt"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
)

// Rotate90CW returns b turned a quarter turn clockwise. The result has
// the width and height swapped; source pixel (x, y) lands at (h-1-y, x).
func Rotate90CW(b *image.Bitmap) (*image.Bitmap, error) {
	w, h := b.Width(), b.Height()
	dst, err := image.New(h, w)
	if err != nil {
		return nil, fmt.Errorf("transform: rotate 90 cw: %w", err)
	}
	for y := range h {
		for x := range w {
			dst.SetPixel(h-1-y, x, b.PixelAt(x, y))
		}
	}
	return dst, nil
}

// Rotate90CCW returns b turned a quarter turn counter-clockwise; source
// pixel (x, y) lands at (y, w-1-x).
func Rotate90CCW(b *image.Bitmap) (*image.Bitmap, error) {
	w, h := b.Width(), b.Height()
	dst, err := image.New(h, w)
	if err != nil {
		return nil, fmt.Errorf("transform: rotate 90 ccw: %w", err)
	}
	for y := range h {
		for x := range w {
			dst.SetPixel(y, w-1-x, b.PixelAt(x, y))
		}
	}
	return dst, nil
}
