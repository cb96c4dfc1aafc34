package color

import "math"

// sRGBToLinearLUT maps an sRGB byte to its linear intensity in [0,1].
var sRGBToLinearLUT [256]float64

// linearToSRGBLUT maps a linear intensity quantized to 12 bits back to an
// sRGB byte. 4096 entries are enough for exact 8-bit output.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := range sRGBToLinearLUT {
		sRGBToLinearLUT[i] = SRGBToLinear(float64(i) / 255)
	}
	for i := range linearToSRGBLUT {
		linearToSRGBLUT[i] = ToByte(LinearToSRGB(float64(i)/4095) * 255)
	}
}

// SRGBToLinear converts an sRGB component in [0,1] to linear intensity.
// Formula: s/12.92 below 0.04045, ((s+0.055)/1.055)^2.4 above.
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts linear intensity in [0,1] to an sRGB component.
// Negative input stays on the linear segment, so the result is never NaN.
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// SRGBToLinearFast is SRGBToLinear for a byte using a lookup table.
func SRGBToLinearFast(s uint8) float64 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGBFast converts linear intensity to an sRGB byte using a lookup
// table. Input is clamped to [0,1].
func LinearToSRGBFast(l float64) uint8 {
	if !(l > 0) {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return linearToSRGBLUT[int(l*4095+0.5)]
}
