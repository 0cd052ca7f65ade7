package boundary

import (
	"image"
	"testing"
)

// grid is a minimal Source backed by a flat byte slice.
type grid struct {
	w, h int
	pix  []byte
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, pix: make([]byte, w*h)}
}

func (g *grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.w, g.h) }

func (g *grid) Row(x, y int, dst []byte) {
	copy(dst, g.pix[y*g.w+x:])
}

func (g *grid) fill(r image.Rectangle, v byte) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			g.pix[y*g.w+x] = v
		}
	}
}

// perimeter sums the lengths of all segments.
func perimeter(segs []Segment) int {
	n := 0
	for _, s := range segs {
		n += s.Len()
	}
	return n
}

// checkClosed verifies that each loop is connected end to start.
func checkClosed(t *testing.T, segs []Segment) {
	t.Helper()
	for li, loop := range Loops(segs) {
		for i, s := range loop {
			nxt := loop[(i+1)%len(loop)]
			if s.End() != nxt.Start() {
				t.Errorf("loop %d: segment %d ends at %v, next starts at %v", li, i, s.End(), nxt.Start())
			}
			if s.X1 != s.X2 && s.Y1 != s.Y2 {
				t.Errorf("loop %d: segment %d is not axis-aligned: %+v", li, i, s)
			}
		}
	}
}

func TestFind_SinglePixel(t *testing.T) {
	g := newGrid(5, 5)
	g.fill(image.Rect(2, 2, 3, 3), 255)

	segs := Find(g, g.Bounds(), IgnoreBounds, image.Rectangle{}, HalfWay)
	if len(segs) != 4 {
		t.Fatalf("len(segs) = %d, want 4: %+v", len(segs), segs)
	}
	checkClosed(t, segs)

	opens := 0
	for _, s := range segs {
		if s.Open {
			opens++
		}
	}
	if opens != 2 {
		t.Errorf("open segments = %d, want 2", opens)
	}
}

func TestFind_Rectangle(t *testing.T) {
	g := newGrid(20, 20)
	g.fill(image.Rect(3, 4, 13, 9), 255)

	segs := Find(g, image.Rect(3, 4, 13, 9), IgnoreBounds, image.Rectangle{}, HalfWay)
	if len(segs) != 4 {
		t.Fatalf("len(segs) = %d, want 4", len(segs))
	}
	if got := perimeter(segs); got != 30 {
		t.Errorf("perimeter = %d, want 30", got)
	}
	checkClosed(t, segs)

	for _, s := range segs {
		if s.Horizontal() && s.Y1 == 4 && !(s.X1 < s.X2 && s.Open) {
			t.Errorf("top edge should run left to right and be open: %+v", s)
		}
		if s.Horizontal() && s.Y1 == 9 && !(s.X1 > s.X2 && !s.Open) {
			t.Errorf("bottom edge should run right to left and be closed: %+v", s)
		}
	}
}

func TestFind_Hole(t *testing.T) {
	g := newGrid(10, 10)
	g.fill(image.Rect(1, 1, 9, 9), 255)
	g.fill(image.Rect(4, 4, 6, 6), 0)

	segs := Find(g, g.Bounds(), IgnoreBounds, image.Rectangle{}, HalfWay)
	loops := Loops(segs)
	if len(loops) != 2 {
		t.Fatalf("loops = %d, want 2", len(loops))
	}
	if got := perimeter(segs); got != 32+8 {
		t.Errorf("perimeter = %d, want 40", got)
	}
	checkClosed(t, segs)
}

func TestFind_Threshold(t *testing.T) {
	g := newGrid(6, 6)
	g.fill(image.Rect(0, 0, 3, 6), 127)
	g.fill(image.Rect(3, 0, 6, 6), 128)

	segs := Find(g, g.Bounds(), IgnoreBounds, image.Rectangle{}, HalfWay)
	if got := perimeter(segs); got != 18 {
		t.Errorf("perimeter = %d, want 18 (only the right half is inside)", got)
	}
}

func TestFind_WithinBounds(t *testing.T) {
	g := newGrid(20, 20)
	g.fill(image.Rect(0, 0, 20, 20), 255)

	clip := image.Rect(5, 5, 10, 8)
	within := Find(g, g.Bounds(), WithinBounds, clip, HalfWay)
	if got := perimeter(within); got != 16 {
		t.Errorf("WithinBounds perimeter = %d, want 16", got)
	}
	for _, s := range within {
		if !image.Pt(min(s.X1, s.X2), min(s.Y1, s.Y2)).In(clip.Inset(-1)) {
			t.Errorf("segment %+v outside clip %v", s, clip)
		}
	}

	ignore := Find(g, g.Bounds(), IgnoreBounds, clip, HalfWay)
	if got := perimeter(ignore); got != 80 {
		t.Errorf("IgnoreBounds perimeter = %d, want 80", got)
	}
}

func TestFind_Empty(t *testing.T) {
	g := newGrid(8, 8)
	if segs := Find(g, g.Bounds(), IgnoreBounds, image.Rectangle{}, HalfWay); len(segs) != 0 {
		t.Errorf("empty mask produced %d segments", len(segs))
	}
	g.fill(g.Bounds(), 255)
	if segs := Find(g, image.Rect(20, 20, 30, 30), IgnoreBounds, image.Rectangle{}, HalfWay); segs != nil {
		t.Errorf("region outside canvas produced %d segments", len(segs))
	}
}

func TestFind_DiagonalPinch(t *testing.T) {
	g := newGrid(4, 4)
	g.fill(image.Rect(0, 0, 2, 2), 255)
	g.fill(image.Rect(2, 2, 4, 4), 255)

	segs := Find(g, g.Bounds(), IgnoreBounds, image.Rectangle{}, HalfWay)
	if got := perimeter(segs); got != 16 {
		t.Errorf("perimeter = %d, want 16", got)
	}
	checkClosed(t, segs)
}

func TestSegment_Translate(t *testing.T) {
	s := Segment{X1: 1, Y1: 2, X2: 5, Y2: 2, Open: true}
	got := s.Translate(image.Pt(10, -2))
	want := Segment{X1: 11, Y1: 0, X2: 15, Y2: 0, Open: true}
	if got != want {
		t.Errorf("Translate() = %+v, want %+v", got, want)
	}
	if got.Len() != 4 {
		t.Errorf("Len() = %d, want 4", got.Len())
	}
}

func TestMode_String(t *testing.T) {
	if WithinBounds.String() != "within-bounds" || IgnoreBounds.String() != "ignore-bounds" {
		t.Error("unexpected mode names")
	}
	if Mode(9).String() != "unknown" {
		t.Errorf("Mode(9).String() = %q, want unknown", Mode(9).String())
	}
}
