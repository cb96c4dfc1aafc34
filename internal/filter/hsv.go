package filter

import (
	"context"
	"math"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/color"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/mask"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/parallel"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// HSVAdjust shifts hue and scales saturation and value.
type HSVAdjust struct {
	// Hue is added to the hue angle, in degrees.
	Hue float64

	// Saturation and Value multiply their components; results are clamped
	// to [0, 1].
	Saturation float64
	Value      float64
}

// Apply adjusts every selected pixel of b. Alpha is kept.
func (h *HSVAdjust) Apply(ctx context.Context, b *image.Bitmap, sel mask.Selection, opts ...parallel.Option) error {
	return perPixel(ctx, "hsv", b, sel, func(_, _ int, p pixel.Pixel) pixel.Pixel {
		hue, s, v := color.RGBToHSV(float64(p.R()), float64(p.G()), float64(p.B()))
		hue = math.Mod(hue+h.Hue, 360)
		if hue < 0 {
			hue += 360
		}
		s = min(max(s*h.Saturation, 0), 1)
		v = min(max(v*h.Value, 0), 1)
		r, g, bl := color.HSVToRGB(hue, s, v)
		return pixel.Pack(color.ToByte(r), color.ToByte(g), color.ToByte(bl), p.A())
	}, opts)
}
