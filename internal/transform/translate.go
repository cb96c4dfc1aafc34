package transform

import (
	"fmt"
	stdimage "image"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/mask"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// Translate returns a copy of b with its selected pixels moved by
// (dx, dy). Pixels moved past the edges are dropped and vacated selected
// pixels become pixel.Background. Without an active selection the whole
// bitmap moves. The caller moves its selection separately, for example
// with (*mask.Mask).Translate.
func Translate(b *image.Bitmap, dx, dy int, sel mask.Selection) (*image.Bitmap, error) {
	dst, err := image.New(b.Width(), b.Height())
	if err != nil {
		return nil, fmt.Errorf("transform: translate: %w", err)
	}
	if !mask.Active(sel) {
		dst.Fill(pixel.Background)
		moved := b.Rect().Add(stdimage.Pt(dx, dy)).Intersect(b.Rect())
		for y := moved.Min.Y; y < moved.Max.Y; y++ {
			from := b.Row(y - dy)[(moved.Min.X-dx)*pixel.Size:]
			copy(dst.Row(y)[moved.Min.X*pixel.Size:moved.Max.X*pixel.Size], from)
		}
		return dst, nil
	}

	if err := dst.CopyFrom(b); err != nil {
		return nil, fmt.Errorf("transform: translate: %w", err)
	}
	region := mask.Clip(sel, b.Rect())
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			if sel.Contains(x, y) {
				dst.SetPixel(x, y, pixel.Background)
			}
		}
	}
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			if sel.Contains(x, y) {
				dst.SetPixel(x+dx, y+dy, b.PixelAt(x, y))
			}
		}
	}
	return dst, nil
}

// TranslateInPlace is Translate writing back into b. On allocation
// failure b is unchanged.
func TranslateInPlace(b *image.Bitmap, dx, dy int, sel mask.Selection) error {
	moved, err := Translate(b, dx, dy, sel)
	if err != nil {
		return err
	}
	return b.CopyFrom(moved)
}
