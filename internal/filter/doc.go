// Package filter provides in-place pixel effects built on the band
// scheduler.
//
// Every effect implements Effect: it reads and writes one bitmap, touches
// only pixels the selection allows, and runs its rows band-parallel. The
// effects are:
//   - Blur: separable Gaussian blur with cached kernels
//   - ColorMatrix: 4x5 colour matrices (brightness, contrast, hue...)
//   - Texture: Perlin noise marble, wood and clouds
//   - NoiseOverlay: additive Perlin noise
//   - HSVAdjust: hue, saturation and value adjustment
//   - Lightness: CIE L*a*b* lightness shift
//   - Separate: CMYK plate extraction
//   - Stretch: per-channel histogram stretch
package filter
