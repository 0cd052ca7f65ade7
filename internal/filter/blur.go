package filter

import (
	"image"
	"sync"

	"github.com/gogpu/selection/internal/clamp"
	"github.com/gogpu/selection/internal/tiles"
)

// GaussianBlur blurs the pixels of m inside r (clipped to the canvas) in
// place with the given feather radius. Pixels outside r are neither read
// nor written. A non-positive radius is a no-op.
func GaussianBlur(m *tiles.Manager, r image.Rectangle, radius float64) {
	r = r.Intersect(m.Bounds())
	if radius <= 0 || r.Empty() {
		return
	}

	width, height := r.Dx(), r.Dy()
	temp := getTempBuffer(width * height)
	defer putTempBuffer(temp)

	kernel := CachedGaussianKernel(radius)
	blurHorizontal(m, r, temp, kernel)
	blurVertical(temp, m, r, kernel)
}

// blurHorizontal convolves each row of r and stores the result in temp.
func blurHorizontal(m *tiles.Manager, r image.Rectangle, temp []float32, kernel []float32) {
	width := r.Dx()
	half := len(kernel) / 2
	row := make([]byte, width)

	for y := range r.Dy() {
		m.Row(r.Min.X, r.Min.Y+y, row)
		out := temp[y*width : (y+1)*width]
		for x := range width {
			var acc float32
			for k, weight := range kernel {
				kx := clamp.Clamp(x+k-half, 0, width-1)
				acc += float32(row[kx]) * weight
			}
			out[x] = acc
		}
	}
}

// blurVertical convolves each column of temp and writes it back to r.
func blurVertical(temp []float32, m *tiles.Manager, r image.Rectangle, kernel []float32) {
	width, height := r.Dx(), r.Dy()
	half := len(kernel) / 2
	col := make([]byte, height)

	for x := range width {
		for y := range height {
			var acc float32
			for k, weight := range kernel {
				ky := clamp.Clamp(y+k-half, 0, height-1)
				acc += temp[ky*width+x] * weight
			}
			col[y] = clamp.Byte(acc + 0.5)
		}
		m.SetCol(r.Min.X+x, r.Min.Y, col)
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{data: make([]float32, 512*512)}
	},
}

// getTempBuffer returns a scratch buffer of exactly size elements.
func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

// putTempBuffer returns a scratch buffer to the pool.
func putTempBuffer(buf []float32) {
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}
