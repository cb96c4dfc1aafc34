package color

import "math"

// cmykEpsilon keeps the chroma divide finite when k reaches 1.
const cmykEpsilon = 0.00001

// RGBToHSV converts RGB in [0,255] to hue [0,360), saturation and value [0,1].
// Achromatic colors have h = s = 0.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	r, g, b = r/255, g/255, b/255
	hi := max(r, g, b)
	lo := min(r, g, b)
	d := hi - lo

	v = hi
	if hi > 0 {
		s = d / hi
	}
	h = hue(r, g, b, hi, d)
	return h, s, v
}

// HSVToRGB converts hue [0,360), saturation and value [0,1] to RGB in [0,255].
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	c := v * s
	r, g, b = hueToRGB(h, c)
	m := v - c
	return (r + m) * 255, (g + m) * 255, (b + m) * 255
}

// RGBToHSL converts RGB in [0,255] to hue [0,360), saturation and lightness [0,1].
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	r, g, b = r/255, g/255, b/255
	hi := max(r, g, b)
	lo := min(r, g, b)
	d := hi - lo

	l = (hi + lo) / 2
	if den := 1 - math.Abs(2*l-1); d > 0 && den > 0 {
		s = d / den
	}
	h = hue(r, g, b, hi, d)
	return h, s, l
}

// HSLToRGB converts hue [0,360), saturation and lightness [0,1] to RGB in [0,255].
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	c := (1 - math.Abs(2*l-1)) * s
	r, g, b = hueToRGB(h, c)
	m := l - c/2
	return (r + m) * 255, (g + m) * 255, (b + m) * 255
}

// hue computes the hexcone hue of normalized r, g, b given their maximum
// and chroma. Zero chroma yields 0.
func hue(r, g, b, hi, d float64) float64 {
	if d == 0 {
		return 0
	}
	var h float64
	switch hi {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return h
}

// hueToRGB returns the chroma-only RGB components (before adding the
// lightness offset) for hue h and chroma c.
func hueToRGB(h, c float64) (r, g, b float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	switch {
	case hp < 1:
		return c, x, 0
	case hp < 2:
		return x, c, 0
	case hp < 3:
		return 0, c, x
	case hp < 4:
		return 0, x, c
	case hp < 5:
		return x, 0, c
	default:
		return c, 0, x
	}
}

// BT.601 analog YUV coefficients.
const (
	yuvKR = 0.299
	yuvKG = 0.587
	yuvKB = 0.114
	yuvU  = 0.492
	yuvV  = 0.877
)

// RGBToYUV converts RGB in [0,255] to BT.601 YUV. Y is in [0,255];
// U and V are signed.
func RGBToYUV(r, g, b float64) (y, u, v float64) {
	y = yuvKR*r + yuvKG*g + yuvKB*b
	u = yuvU * (b - y)
	v = yuvV * (r - y)
	return y, u, v
}

// YUVToRGB is the exact inverse of RGBToYUV.
func YUVToRGB(y, u, v float64) (r, g, b float64) {
	r = y + v/yuvV
	b = y + u/yuvU
	g = (y - yuvKR*r - yuvKB*b) / yuvKG
	return r, g, b
}

// RGBToCMYK converts RGB in [0,255] to CMYK in [0,1].
//
// The chroma divide uses 1-k+0.00001, so pure black maps to c=m=y=0, k=1
// and near-black colors lose precision.
func RGBToCMYK(r, g, b float64) (c, m, y, k float64) {
	r, g, b = r/255, g/255, b/255
	k = 1 - max(r, g, b)
	inv := 1 - k + cmykEpsilon
	c = (1 - r - k) / inv
	m = (1 - g - k) / inv
	y = (1 - b - k) / inv
	return c, m, y, k
}

// CMYKToRGB converts CMYK in [0,1] to RGB in [0,255].
func CMYKToRGB(c, m, y, k float64) (r, g, b float64) {
	ik := 1 - k
	return 255 * (1 - c) * ik, 255 * (1 - m) * ik, 255 * (1 - y) * ik
}
