// Package boundary traces the outline of a coverage mask as directed,
// axis-aligned segments.
//
// A pixel is inside when its value is greater than the threshold. Segments
// run along pixel edges that separate an inside pixel from an outside one
// and are oriented clockwise in screen space (y down), so the inside of the
// outline always lies to the right of the direction of travel. Segments are
// returned loop by loop; every loop is closed.
package boundary

import "image"

// HalfWay is the threshold that treats coverage above 50% as selected.
const HalfWay byte = 127

// Mode controls how the bounds rectangle passed to Find is used.
type Mode int

const (
	// WithinBounds treats every pixel outside the bounds rectangle as
	// outside, so the outline is cut along the rectangle's edges.
	WithinBounds Mode = iota

	// IgnoreBounds disregards the bounds rectangle; only the scanned
	// region limits the outline.
	IgnoreBounds
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case WithinBounds:
		return "within-bounds"
	case IgnoreBounds:
		return "ignore-bounds"
	default:
		return "unknown"
	}
}

// Segment is one directed outline edge from (X1, Y1) to (X2, Y2).
// Exactly one of X1 == X2 (vertical) or Y1 == Y2 (horizontal) holds.
//
// Open is true when the inside lies below a horizontal segment or to the
// right of a vertical one.
type Segment struct {
	X1, Y1 int
	X2, Y2 int
	Open   bool
}

// Start returns the segment's first point.
func (s Segment) Start() image.Point { return image.Pt(s.X1, s.Y1) }

// End returns the segment's last point.
func (s Segment) End() image.Point { return image.Pt(s.X2, s.Y2) }

// Horizontal reports whether the segment runs along the x axis.
func (s Segment) Horizontal() bool { return s.Y1 == s.Y2 }

// Len returns the segment length in pixels.
func (s Segment) Len() int {
	return abs(s.X2-s.X1) + abs(s.Y2-s.Y1)
}

// Translate returns the segment moved by d.
func (s Segment) Translate(d image.Point) Segment {
	s.X1 += d.X
	s.X2 += d.X
	s.Y1 += d.Y
	s.Y2 += d.Y
	return s
}

// Source is read access to a one-byte-per-pixel canvas.
type Source interface {
	Bounds() image.Rectangle
	Row(x, y int, dst []byte)
}

// Find traces the outline of the pixels of src inside region whose value
// exceeds threshold. Pixels outside region count as outside. With
// WithinBounds, pixels outside bounds also count as outside.
func Find(src Source, region image.Rectangle, mode Mode, bounds image.Rectangle, threshold byte) []Segment {
	area := region.Intersect(src.Bounds())
	if mode == WithinBounds {
		area = area.Intersect(bounds)
	}
	if area.Empty() {
		return nil
	}
	return chain(unitEdges(src, area, threshold))
}

// unitEdges returns the one-pixel directed edges around the inside pixels
// of area.
func unitEdges(src Source, area image.Rectangle, threshold byte) []Segment {
	w := area.Dx()
	prev := make([]bool, w)
	cur := make([]bool, w)
	buf := make([]byte, w)

	var edges []Segment
	for y := area.Min.Y; y <= area.Max.Y; y++ {
		if y < area.Max.Y {
			src.Row(area.Min.X, y, buf)
			for i, v := range buf {
				cur[i] = v > threshold
			}
		} else {
			clear(cur)
		}

		for i := range w {
			x := area.Min.X + i
			switch {
			case prev[i] && !cur[i]:
				// Bottom edge of the pixel above, traversed right to left.
				edges = append(edges, Segment{X1: x + 1, Y1: y, X2: x, Y2: y})
			case !prev[i] && cur[i]:
				// Top edge of the pixel below, traversed left to right.
				edges = append(edges, Segment{X1: x, Y1: y, X2: x + 1, Y2: y, Open: true})
			}
		}

		if y < area.Max.Y {
			left := false
			for i := 0; i <= w; i++ {
				right := i < w && cur[i]
				x := area.Min.X + i
				switch {
				case left && !right:
					edges = append(edges, Segment{X1: x, Y1: y, X2: x, Y2: y + 1})
				case !left && right:
					edges = append(edges, Segment{X1: x, Y1: y + 1, X2: x, Y2: y, Open: true})
				}
				left = right
			}
		}

		prev, cur = cur, prev
	}
	return edges
}

// chain orders unit edges into closed loops and merges collinear runs.
func chain(edges []Segment) []Segment {
	if len(edges) == 0 {
		return nil
	}

	starts := make(map[image.Point][]int, len(edges))
	for i, e := range edges {
		starts[e.Start()] = append(starts[e.Start()], i)
	}
	used := make([]bool, len(edges))

	next := func(p image.Point) int {
		list := starts[p]
		for len(list) > 0 {
			i := list[len(list)-1]
			list = list[:len(list)-1]
			if !used[i] {
				starts[p] = list
				return i
			}
		}
		starts[p] = list
		return -1
	}

	out := make([]Segment, 0, len(edges)/2)
	loop := make([]Segment, 0, 64)
	for i := range edges {
		if used[i] {
			continue
		}
		loop = loop[:0]
		origin := edges[i].Start()
		for j := i; j >= 0; {
			used[j] = true
			loop = append(loop, edges[j])
			end := edges[j].End()
			if end == origin {
				break
			}
			j = next(end)
		}
		out = append(out, merge(loop)...)
	}
	return out
}

// merge joins consecutive collinear unit edges of one closed loop.
func merge(loop []Segment) []Segment {
	n := len(loop)
	if n == 0 {
		return nil
	}

	// Start at a corner so that no run wraps around the loop's origin.
	first := 0
	for i := range n {
		if direction(loop[i]) != direction(loop[(i+n-1)%n]) {
			first = i
			break
		}
	}

	merged := make([]Segment, 0, 4)
	for k := range n {
		e := loop[(first+k)%n]
		if m := len(merged); m > 0 && direction(merged[m-1]) == direction(e) {
			merged[m-1].X2, merged[m-1].Y2 = e.X2, e.Y2
			continue
		}
		merged = append(merged, e)
	}
	return merged
}

// direction returns the unit step of a segment.
func direction(s Segment) image.Point {
	return image.Pt(sign(s.X2-s.X1), sign(s.Y2-s.Y1))
}

// Loops splits a traced segment list into its closed polylines.
func Loops(segs []Segment) [][]Segment {
	var loops [][]Segment
	start := 0
	for i, s := range segs {
		if s.End() == segs[start].Start() {
			loops = append(loops, segs[start:i+1])
			start = i + 1
		}
	}
	if start < len(segs) {
		loops = append(loops, segs[start:])
	}
	return loops
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
