package filter

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/mask"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/noise"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/parallel"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// Pattern selects how a Texture turns noise into a blend factor.
type Pattern uint8

const (
	// Clouds maps the noise value directly.
	Clouds Pattern = iota

	// Marble runs noise-perturbed sine veins along x.
	Marble

	// Wood draws noise-perturbed rings about the region centre.
	Wood
)

var patternNames = [...]string{
	Clouds: "clouds",
	Marble: "marble",
	Wood:   "wood",
}

func (p Pattern) String() string {
	if int(p) < len(patternNames) {
		return patternNames[p]
	}
	return fmt.Sprintf("Pattern(%d)", p)
}

// ParsePattern resolves a pattern name, ignoring case.
func ParsePattern(s string) (Pattern, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range patternNames {
		if n == name {
			return Pattern(i), nil
		}
	}
	return 0, fmt.Errorf("filter: unknown texture %q", s)
}

// Texture paints a noise pattern blended between two colours and
// composites it over the existing pixels.
type Texture struct {
	Pattern Pattern

	// Foreground is used where the blend factor is 1, Background where it
	// is 0. Their alpha controls how much of the original shows through.
	Foreground pixel.Pixel
	Background pixel.Pixel

	// Frequency is the base noise frequency in cycles per pixel.
	Frequency float64

	// Turbulence scales the noise perturbation for Marble and Wood.
	Turbulence float64

	Octaves     int
	Persistence float64
}

// NewTexture returns a texture with moderate defaults.
func NewTexture(p Pattern, fg, bg pixel.Pixel) *Texture {
	return &Texture{
		Pattern:     p,
		Foreground:  fg,
		Background:  bg,
		Frequency:   1.0 / 32,
		Turbulence:  4,
		Octaves:     4,
		Persistence: 0.5,
	}
}

// Apply paints the texture over the selected pixels of b.
func (t *Texture) Apply(ctx context.Context, b *image.Bitmap, sel mask.Selection, opts ...parallel.Option) error {
	gen := noise.New(t.Persistence, t.Octaves)
	region := mask.Clip(sel, b.Rect())
	cx := float64(region.Min.X+region.Max.X) / 2
	cy := float64(region.Min.Y+region.Max.Y) / 2

	return perPixel(ctx, t.Pattern.String(), b, sel, func(x, y int, p pixel.Pixel) pixel.Pixel {
		fx, fy := float64(x), float64(y)
		n := gen.PerlinNoise2D(fx, fy, t.Frequency)
		var v float64
		switch t.Pattern {
		case Marble:
			v = 0.5 + 0.5*math.Sin((fx*t.Frequency+t.Turbulence*n)*math.Pi)
		case Wood:
			d := math.Hypot(fx-cx, fy-cy)*t.Frequency + t.Turbulence*n/4
			v = d - math.Floor(d)
		default:
			v = (n + 1) / 2
		}
		return pixel.Over(p, pixel.Mix(t.Foreground, t.Background, v))
	}, opts)
}
