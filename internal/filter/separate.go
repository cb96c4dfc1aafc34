package filter

import (
	"context"
	"fmt"
	"strings"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/color"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/mask"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/parallel"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// Plate is one CMYK ink.
type Plate uint8

// CMYK plates.
const (
	Cyan Plate = iota
	Magenta
	Yellow
	Key
)

var plateNames = [...]string{
	Cyan:    "cyan",
	Magenta: "magenta",
	Yellow:  "yellow",
	Key:     "key",
}

func (p Plate) String() string {
	if int(p) < len(plateNames) {
		return plateNames[p]
	}
	return fmt.Sprintf("Plate(%d)", p)
}

// ParsePlate resolves a plate name; "black" and the initials c, m, y, k
// are accepted too.
func ParsePlate(s string) (Plate, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "c":
		return Cyan, nil
	case "m":
		return Magenta, nil
	case "y":
		return Yellow, nil
	case "k", "black":
		return Key, nil
	}
	for i, n := range plateNames {
		if n == name {
			return Plate(i), nil
		}
	}
	return 0, fmt.Errorf("filter: unknown plate %q", s)
}

// Separate replaces each pixel with the grey rendering of one CMYK plate:
// full ink is black, no ink is white. Alpha is kept.
type Separate struct {
	Plate Plate
}

// Apply separates every selected pixel of b.
func (s *Separate) Apply(ctx context.Context, b *image.Bitmap, sel mask.Selection, opts ...parallel.Option) error {
	return perPixel(ctx, "separate "+s.Plate.String(), b, sel, func(_, _ int, p pixel.Pixel) pixel.Pixel {
		c, m, y, k := color.RGBToCMYK(float64(p.R()), float64(p.G()), float64(p.B()))
		ink := k
		switch s.Plate {
		case Cyan:
			ink = c
		case Magenta:
			ink = m
		case Yellow:
			ink = y
		}
		v := color.ToByte((1 - ink) * 255)
		return pixel.Pack(v, v, v, p.A())
	}, opts)
}
