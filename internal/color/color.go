// Package color converts between RGB and the HSV, HSL, LAB, YUV and CMYK
// color spaces.
//
// All functions are pure and total. RGB components are float64 in [0,255].
// Hue is in degrees [0,360); saturation, value and lightness are in [0,1];
// LAB uses L in [0,100]; YUV keeps Y in [0,255] with U and V centred on
// zero; CMYK components are in [0,1]. Inputs are never range checked: the
// caller owns its scale.
package color

import (
	"fmt"
	"math"
	"strings"
)

// Space identifies a color space.
type Space uint8

const (
	// SpaceRGB is the identity space.
	SpaceRGB Space = iota
	// SpaceHSV is hue, saturation, value.
	SpaceHSV
	// SpaceHSL is hue, saturation, lightness.
	SpaceHSL
	// SpaceLAB is CIE L*a*b* (D65, 2° observer).
	SpaceLAB
	// SpaceYUV is BT.601 analog YUV.
	SpaceYUV
	// SpaceCMYK is naive subtractive CMYK.
	SpaceCMYK
)

// String returns the lowercase name of the space.
func (s Space) String() string {
	switch s {
	case SpaceRGB:
		return "rgb"
	case SpaceHSV:
		return "hsv"
	case SpaceHSL:
		return "hsl"
	case SpaceLAB:
		return "lab"
	case SpaceYUV:
		return "yuv"
	case SpaceCMYK:
		return "cmyk"
	default:
		return "unknown"
	}
}

// ParseSpace parses a space name as returned by String.
func ParseSpace(name string) (Space, error) {
	for s := SpaceRGB; s <= SpaceCMYK; s++ {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("color: unknown space %q", name)
}

// FromRGB converts an RGB triple into space s. Three-component spaces leave
// the fourth value zero.
func FromRGB(s Space, r, g, b float64) [4]float64 {
	switch s {
	case SpaceHSV:
		h, sat, v := RGBToHSV(r, g, b)
		return [4]float64{h, sat, v}
	case SpaceHSL:
		h, sat, l := RGBToHSL(r, g, b)
		return [4]float64{h, sat, l}
	case SpaceLAB:
		l, a, bb := RGBToLAB(r, g, b)
		return [4]float64{l, a, bb}
	case SpaceYUV:
		y, u, v := RGBToYUV(r, g, b)
		return [4]float64{y, u, v}
	case SpaceCMYK:
		c, m, y, k := RGBToCMYK(r, g, b)
		return [4]float64{c, m, y, k}
	default:
		return [4]float64{r, g, b}
	}
}

// ToRGB is the inverse of FromRGB.
func ToRGB(s Space, v [4]float64) (r, g, b float64) {
	switch s {
	case SpaceHSV:
		return HSVToRGB(v[0], v[1], v[2])
	case SpaceHSL:
		return HSLToRGB(v[0], v[1], v[2])
	case SpaceLAB:
		return LABToRGB(v[0], v[1], v[2])
	case SpaceYUV:
		return YUVToRGB(v[0], v[1], v[2])
	case SpaceCMYK:
		return CMYKToRGB(v[0], v[1], v[2], v[3])
	default:
		return v[0], v[1], v[2]
	}
}

// ToByte rounds v to the nearest integer and clamps it to [0,255].
func ToByte(v float64) uint8 {
	if !(v > 0) { // also catches NaN
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
