package selection

import (
	"image"
	"math"

	"github.com/gogpu/selection/internal/clamp"
)

// CombineEllipse merges the ellipse inscribed in the rectangle
// (x, y, w, h). With antialias set, edge pixels receive partial coverage
// from their distance to the ellipse. Ellipses with a non-positive size
// are ignored.
func (c *Channel) CombineEllipse(op Op, x, y, w, h int, antialias bool) {
	if w <= 0 || h <= 0 {
		return
	}
	x1, x2 := clamp.Span(x, w, c.width)
	y1, y2 := clamp.Span(y, h, c.height)
	area := image.Rect(x1, y1, x2, y2)

	e := ellipse{
		x: x, w: w,
		cx: float64(x) + float64(w)/2,
		cy: float64(y) + float64(h)/2,
		a:  float64(w) / 2,
		b:  float64(h) / 2,
	}
	c.combineShape("Ellipse Select", op, area, func(emit emitFunc) {
		for row := y1; row < y2; row++ {
			if antialias {
				e.smoothRow(row, c.width, emit)
			} else {
				e.row(row, c.width, emit)
			}
		}
	})
}

// ellipse is an axis-aligned ellipse with centre (cx, cy) and semi-axes
// a and b, inscribed in the columns [x, x+w).
type ellipse struct {
	x, w   int
	cx, cy float64
	a, b   float64
}

// row emits the hard-edged span of row y.
func (e ellipse) row(y, width int, emit emitFunc) {
	dy := (float64(y) + 0.5 - e.cy) / e.b
	t := 1 - dy*dy
	if t <= 0 {
		return
	}
	span := e.a * math.Sqrt(t)
	x1 := clamp.Clamp(round(e.cx-span), 0, width)
	x2 := clamp.Clamp(round(e.cx+span), 0, width)
	emit(y, x1, x2, 255)
}

// smoothRow emits the antialiased runs of row y. Consecutive columns with
// equal coverage are emitted as one run.
func (e ellipse) smoothRow(y, width int, emit emitFunc) {
	aSqr := e.a * e.a
	aobSqr := aSqr / (e.b * e.b)
	dy := float64(y) + 0.5 - e.cy
	hSqr := dy * dy

	// Only columns on the canvas are evaluated.
	lo, hi := max(e.x, 0), min(e.x+e.w, width)

	var last byte
	start := lo
	for x := lo; x < hi; x++ {
		dist := -1.0
		if hSqr != 0 {
			dx := float64(x) + 0.5 - e.cx
			wSqr := dx * dx
			t0 := wSqr / hSqr
			t1 := aSqr / (t0 + aobSqr)
			r := math.Sqrt(t1 + t0*t1)
			dist = math.Sqrt(wSqr+hSqr) - r
		}

		var v byte
		switch {
		case dist < -0.5:
			v = 255
		case dist < 0.5:
			v = byte(255 * (1 - (dist + 0.5)))
		}

		if v == last {
			continue
		}
		if last != 0 {
			emit(y, start, x, last)
		}
		start = x
		last = v
		// The row is symmetric about cx, so the fully covered middle can
		// be skipped.
		if v == 255 && float64(x) < e.cx {
			x = int(e.cx + (e.cx - float64(x)) - 1)
		}
	}
	if last != 0 {
		emit(y, start, hi, last)
	}
}

// round rounds half up, matching floor(v + 0.5).
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
