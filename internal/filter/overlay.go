package filter

import (
	"context"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/mask"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/noise"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/parallel"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// NoiseOverlay adds Perlin noise to the colour channels. The same noise
// value is added to R, G and B, so hue is roughly preserved; alpha is
// untouched.
type NoiseOverlay struct {
	// Amount is the largest channel offset, reached where the noise is ±1.
	Amount float64

	Frequency   float64
	Octaves     int
	Persistence float64
}

// NewNoiseOverlay returns an overlay of the given amount with fine grain.
func NewNoiseOverlay(amount float64) *NoiseOverlay {
	return &NoiseOverlay{
		Amount:      amount,
		Frequency:   0.5,
		Octaves:     3,
		Persistence: 0.5,
	}
}

// Apply adds noise to every selected pixel of b.
func (o *NoiseOverlay) Apply(ctx context.Context, b *image.Bitmap, sel mask.Selection, opts ...parallel.Option) error {
	if o.Amount == 0 {
		return nil
	}
	gen := noise.New(o.Persistence, o.Octaves)
	return perPixel(ctx, "noise", b, sel, func(x, y int, p pixel.Pixel) pixel.Pixel {
		d := float32(gen.PerlinNoise2D(float64(x), float64(y), o.Frequency) * o.Amount)
		return pixel.Pack(
			clampUint8(float32(p.R())+d),
			clampUint8(float32(p.G())+d),
			clampUint8(float32(p.B())+d),
			p.A(),
		)
	}, opts)
}
