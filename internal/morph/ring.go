package morph

import (
	"image"
	"math"

	"github.com/gogpu/selection/internal/boundary"
	"github.com/gogpu/selection/internal/tiles"
)

// Ring sets to 255 every pixel whose centre lies within radius of one of
// the given outline segments. Segment coordinates are pixel corners in
// canvas space. A non-positive radius draws nothing.
func Ring(m *tiles.Manager, segs []boundary.Segment, radius int) {
	if radius <= 0 {
		return
	}
	r := float64(radius)
	for _, s := range segs {
		capsule(m, s, r)
	}
}

// capsule fills the pixels within r of segment s: the segment swept by a
// disc of radius r.
func capsule(m *tiles.Manager, s boundary.Segment, r float64) {
	// Work in a frame where the segment runs along the first axis from a to b
	// at offset c on the second axis.
	a, b := float64(min(s.X1, s.X2)), float64(max(s.X1, s.X2))
	c := float64(s.Y1)
	if !s.Horizontal() {
		a, b = float64(min(s.Y1, s.Y2)), float64(max(s.Y1, s.Y2))
		c = float64(s.X1)
	}

	lo := int(math.Ceil(c - r - 0.5))
	hi := int(math.Floor(c + r - 0.5))
	for q := lo; q <= hi; q++ {
		d := float64(q) + 0.5 - c
		half := math.Sqrt(r*r - d*d)
		p1 := int(math.Ceil(a - half - 0.5))
		p2 := int(math.Floor(b + half - 0.5))
		if p2 < p1 {
			continue
		}
		if s.Horizontal() {
			m.Fill(image.Rect(p1, q, p2+1, q+1), 255)
		} else {
			m.Fill(image.Rect(q, p1, q+1, p2+1), 255)
		}
	}
}
