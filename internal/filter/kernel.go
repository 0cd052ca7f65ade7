package filter

import (
	"math"
	"sync"
)

// Sigma returns the Gaussian standard deviation for a feather radius.
func Sigma(radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return math.Sqrt(radius * radius / (2 * math.Log(255)))
}

// GaussianKernel generates a normalized 1D kernel for a feather radius.
// The kernel has 2*ceil(radius)+1 taps. For radius <= 0 it returns the
// identity kernel [1.0].
func GaussianKernel(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1.0}
	}

	sigma := Sigma(radius)
	halfSize := int(math.Ceil(radius))
	kernel := make([]float32, halfSize*2+1)

	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)
	for i := range kernel {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	invSum := float32(1.0 / sum)
	for i := range kernel {
		kernel[i] *= invSum
	}
	return kernel
}

// kernelCache caches computed kernels keyed by the exact radius. When full
// it evicts the kernel that was built first.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[uint64][]float32
	order  []uint64
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[uint64][]float32),
		maxLen: max(maxLen, 1),
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(radius float64) []float32 {
	key := math.Float64bits(radius)

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(radius)

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.cache[key]; ok {
		return cached
	}
	if len(c.order) >= c.maxLen {
		delete(c.cache, c.order[0])
		c.order = append(c.order[:0], c.order[1:]...)
	}
	c.cache[key] = kernel
	c.order = append(c.order, key)
	return kernel
}

// CachedGaussianKernel returns a cached kernel for the feather radius.
func CachedGaussianKernel(radius float64) []float32 {
	return defaultKernelCache.get(radius)
}
