package glow

import (
	"math"

	"github.com/gogpu/gg/cache"
)

// Kernel returns a normalized 1D Gaussian kernel with standard deviation
// sigma. The kernel spans 3 sigma on either side; sigma <= 0 yields the
// identity kernel [1].
func Kernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}

	half := int(math.Ceil(sigma * 3))
	size := half*2 + 1
	kernel := make([]float32, size)

	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range size {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}

	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// Reach returns how many pixels a blur of sigma spreads beyond a shape.
func Reach(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}

// kernels caches kernels keyed by sigma quantized to 1/100 px. Animated
// glow re-blurs every frame with a handful of distinct radii.
var kernels = cache.NewSharded[int, []float32](8, cache.IntHasher)

// cachedKernel returns the kernel for sigma, building it on first use.
func cachedKernel(sigma float64) []float32 {
	key := int(math.Round(sigma * 100))
	return kernels.GetOrCreate(key, func() []float32 {
		return Kernel(float64(key) / 100)
	})
}
