// Package morph implements the morphological primitives behind selection
// grow, shrink and border.
package morph

import (
	"image"

	"github.com/gogpu/selection/internal/tiles"
)

// Direction selects dilation or erosion for Thin.
type Direction int

const (
	// Grow dilates: each pixel takes the maximum of its 3x3 neighbourhood.
	Grow Direction = iota

	// Shrink erodes: each pixel takes the minimum of its 3x3 neighbourhood.
	Shrink
)

// Thin runs one pass of dilation or erosion over r (clipped to the canvas).
// Only pixels inside r are written; neighbours outside r but on the canvas
// are read as they are. Pixels beyond the canvas edge read as 0, or as 255
// when edgeLock is set.
func Thin(m *tiles.Manager, r image.Rectangle, dir Direction, edgeLock bool) {
	r = r.Intersect(m.Bounds())
	if r.Empty() {
		return
	}

	outside := byte(0)
	if edgeLock {
		outside = 255
	}

	pick := maxByte
	if dir == Shrink {
		pick = minByte
	}

	w := r.Dx()
	// Rows are padded by one pixel on each side.
	above := make([]byte, w+2)
	cur := make([]byte, w+2)
	below := make([]byte, w+2)
	folded := make([]byte, w+2)
	out := make([]byte, w)

	readPadded(m, r.Min.X-1, r.Min.Y-1, above, outside)
	readPadded(m, r.Min.X-1, r.Min.Y, cur, outside)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		readPadded(m, r.Min.X-1, y+1, below, outside)

		for i := range folded {
			folded[i] = pick(pick(above[i], cur[i]), below[i])
		}
		for i := range out {
			out[i] = pick(pick(folded[i], folded[i+1]), folded[i+2])
		}
		m.SetRow(r.Min.X, y, out)

		above, cur, below = cur, below, above
	}
}

// readPadded fills dst with the len(dst) pixels starting at (x, y),
// substituting outside for pixels beyond the canvas.
func readPadded(m *tiles.Manager, x, y int, dst []byte, outside byte) {
	if y < 0 || y >= m.Height() {
		for i := range dst {
			dst[i] = outside
		}
		return
	}

	lo := max(x, 0)
	hi := min(x+len(dst), m.Width())
	for i := 0; i < lo-x; i++ {
		dst[i] = outside
	}
	for i := hi - x; i < len(dst); i++ {
		dst[i] = outside
	}
	if hi > lo {
		m.Row(lo, y, dst[lo-x:hi-x])
	}
}

func maxByte(a, b byte) byte { return max(a, b) }

func minByte(a, b byte) byte { return min(a, b) }
