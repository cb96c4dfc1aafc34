package filter

import (
	"math"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/cache"
)

// GaussianKernel generates a normalised 1D Gaussian kernel using radius as
// sigma. The kernel has 2*ceil(3*radius)+1 taps; a radius <= 0 yields the
// identity kernel [1].
func GaussianKernel(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1.0}
	}

	half := KernelHalfSize(radius)
	size := half*2 + 1
	kernel := make([]float32, size)

	twoSigmaSq := 2 * radius * radius
	sum := 0.0
	for i := range size {
		x := float64(i - half)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}
	if sum > 0 {
		inv := float32(1.0 / sum)
		for i := range kernel {
			kernel[i] *= inv
		}
	}
	return kernel
}

// KernelHalfSize returns the number of taps on each side of the centre.
func KernelHalfSize(radius float64) int {
	if radius <= 0 {
		return 0
	}
	return int(math.Ceil(radius * 3))
}

// kernels caches Gaussian kernels by radius quantised to 0.01.
var kernels = cache.New[int, []float32](64)

// CachedGaussianKernel returns a shared, read-only kernel for radius
// rounded to the nearest 0.01.
func CachedGaussianKernel(radius float64) []float32 {
	key := int(math.Round(radius * 100))
	return kernels.GetOrCreate(key, func() []float32 {
		return GaussianKernel(float64(key) / 100)
	})
}
