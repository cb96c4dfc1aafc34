package color

import "math"

// D65 reference white, 2° observer.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

// CIE constants in their exact rational form.
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// RGBToLAB converts sRGB in [0,255] to CIE L*a*b*.
func RGBToLAB(r, g, b float64) (l, a, bb float64) {
	x, y, z := rgbToXYZ(
		SRGBToLinear(r/255),
		SRGBToLinear(g/255),
		SRGBToLinear(b/255),
	)
	return xyzToLAB(x, y, z)
}

// LABToRGB converts CIE L*a*b* to sRGB in [0,255]. Out-of-gamut colors are
// returned unclamped.
func LABToRGB(l, a, bb float64) (r, g, b float64) {
	x, y, z := labToXYZ(l, a, bb)
	lr, lg, lb := xyzToRGB(x, y, z)
	return LinearToSRGB(lr) * 255, LinearToSRGB(lg) * 255, LinearToSRGB(lb) * 255
}

// BytesToLAB is RGBToLAB for 8-bit input; it linearizes through a lookup table.
func BytesToLAB(r, g, b uint8) (l, a, bb float64) {
	x, y, z := rgbToXYZ(SRGBToLinearFast(r), SRGBToLinearFast(g), SRGBToLinearFast(b))
	return xyzToLAB(x, y, z)
}

// LABToBytes is LABToRGB with 8-bit, clamped output.
func LABToBytes(l, a, bb float64) (r, g, b uint8) {
	x, y, z := labToXYZ(l, a, bb)
	lr, lg, lb := xyzToRGB(x, y, z)
	return LinearToSRGBFast(lr), LinearToSRGBFast(lg), LinearToSRGBFast(lb)
}

func rgbToXYZ(r, g, b float64) (x, y, z float64) {
	x = 0.4124564*r + 0.3575761*g + 0.1804375*b
	y = 0.2126729*r + 0.7151522*g + 0.0721750*b
	z = 0.0193339*r + 0.1191920*g + 0.9503041*b
	return x, y, z
}

func xyzToRGB(x, y, z float64) (r, g, b float64) {
	r = 3.2404542*x - 1.5371385*y - 0.4985314*z
	g = -0.9692660*x + 1.8760108*y + 0.0415560*z
	b = 0.0556434*x - 0.2040259*y + 1.0572252*z
	return r, g, b
}

func xyzToLAB(x, y, z float64) (l, a, b float64) {
	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)
	return 116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)
}

func labToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200

	xr := labFInv(fx)
	zr := labFInv(fz)
	var yr float64
	if l > labKappa*labEpsilon {
		yr = fy * fy * fy
	} else {
		yr = l / labKappa
	}
	return xr * whiteX, yr * whiteY, zr * whiteZ
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(f float64) float64 {
	if f3 := f * f * f; f3 > labEpsilon {
		return f3
	}
	return (116*f - 16) / labKappa
}
