package filter

import (
	"context"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/color"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/mask"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/parallel"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// Lightness adds Delta to the CIE L* component, clamped to [0, 100].
// Chroma (a*, b*) and alpha are kept.
type Lightness struct {
	Delta float64
}

// Apply adjusts every selected pixel of b.
func (l *Lightness) Apply(ctx context.Context, b *image.Bitmap, sel mask.Selection, opts ...parallel.Option) error {
	if l.Delta == 0 {
		return nil
	}
	return perPixel(ctx, "lightness", b, sel, func(_, _ int, p pixel.Pixel) pixel.Pixel {
		lum, ca, cb := color.BytesToLAB(p.R(), p.G(), p.B())
		lum = min(max(lum+l.Delta, 0), 100)
		r, g, bl := color.LABToBytes(lum, ca, cb)
		return pixel.Pack(r, g, bl, p.A())
	}, opts)
}
