package selection

import (
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/selection/internal/clamp"
	"github.com/gogpu/selection/internal/tiles"
)

// Op selects how a shape or mask is merged into a channel.
type Op int

const (
	// OpAdd adds coverage, saturating at 255.
	OpAdd Op = iota

	// OpSub subtracts coverage, saturating at 0.
	OpSub

	// OpReplace adds coverage like OpAdd. Callers clear the channel first
	// when they want the shape alone.
	OpReplace

	// OpIntersect keeps the minimum of the channel and the shape. Pixels
	// outside the shape have zero coverage and are cleared.
	OpIntersect
)

var opNames = [...]string{
	OpAdd:       "add",
	OpSub:       "sub",
	OpReplace:   "replace",
	OpIntersect: "intersect",
}

// String returns the lower-case op name.
func (op Op) String() string {
	if op >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// ParseOp returns the Op named s, ignoring case.
func ParseOp(s string) (Op, error) {
	for op, name := range opNames {
		if strings.EqualFold(s, name) {
			return Op(op), nil
		}
	}
	return 0, fmt.Errorf("selection: unknown op %q", s)
}

// applyValue merges a constant coverage value into a row.
func applyValue(op Op, row []byte, v byte) {
	switch op {
	case OpSub:
		for i := range row {
			row[i] = clamp.SubSat(row[i], v)
		}
	case OpIntersect:
		for i := range row {
			row[i] = min(row[i], v)
		}
	default:
		for i := range row {
			row[i] = clamp.AddSat(row[i], v)
		}
	}
}

// applyPixels merges src into dst pixel by pixel.
func applyPixels(op Op, dst, src []byte) {
	switch op {
	case OpSub:
		for i, v := range src {
			dst[i] = clamp.SubSat(dst[i], v)
		}
	case OpIntersect:
		for i, v := range src {
			dst[i] = min(dst[i], v)
		}
	default:
		for i, v := range src {
			dst[i] = clamp.AddSat(dst[i], v)
		}
	}
}

// removesOnly reports whether op can only lower coverage, which leaves an
// empty mask unchanged.
func removesOnly(op Op) bool {
	return op == OpSub || op == OpIntersect
}

// emitFunc receives one horizontal run [x1, x2) on row y with coverage v.
// Runs are already clipped to the canvas.
type emitFunc func(y, x1, x2 int, v byte)

// combineShape merges a rasterised shape into the channel. raster emits
// the runs of the shape and area is the part of the canvas they may touch.
func (c *Channel) combineShape(desc string, op Op, area image.Rectangle, raster func(emitFunc)) {
	if removesOnly(op) && c.knownEmpty() {
		return
	}
	if op == OpIntersect {
		c.snapshot(desc, c.Rect())
		c.intersectShape(raster)
		c.changed()
		c.forgetBounds()
		return
	}

	c.snapshot(desc, area.Intersect(c.Rect()))

	var written image.Rectangle
	buf := make([]byte, c.width)
	raster(func(y, x1, x2 int, v byte) {
		if x2 <= x1 {
			return
		}
		run := buf[:x2-x1]
		c.tiles.Row(x1, y, run)
		applyValue(op, run, v)
		c.tiles.SetRow(x1, y, run)
		if v != 0 {
			written = written.Union(image.Rect(x1, y, x2, y+1))
		}
	})

	c.changed()
	c.noteWritten(op, written)
}

// intersectShape rasterises the shape into a scratch canvas and keeps the
// per-pixel minimum of both.
func (c *Channel) intersectShape(raster func(emitFunc)) {
	cov := tiles.New(c.width, c.height)
	defer cov.Close()

	raster(func(y, x1, x2 int, v byte) {
		cov.Fill(image.Rect(x1, y, x2, y+1), v)
	})

	buf := make([]byte, tiles.TileWidth)
	for ch := range c.tiles.Chunks(c.Rect(), true) {
		for i := range ch.H {
			src := buf[:ch.W]
			cov.Row(ch.X, ch.Y+i, src)
			applyPixels(OpIntersect, ch.Row(i), src)
		}
	}
}

// noteWritten updates the bounds cache after op added or removed coverage
// within written, the tight rectangle of runs with non-zero coverage.
func (c *Channel) noteWritten(op Op, written image.Rectangle) {
	b := c.bounds
	switch {
	case removesOnly(op):
		c.forgetBounds()
	case written.Empty():
		// Nothing was added.
	case b.known && b.empty:
		c.setBounds(written)
	case b.known && op == OpAdd:
		c.setBounds(b.rect.Union(written))
	default:
		c.forgetBounds()
	}
}

// CombineRect merges the rectangle (x, y, w, h) at full coverage.
// Rectangles with a non-positive size are ignored.
func (c *Channel) CombineRect(op Op, x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	x1, x2 := clamp.Span(x, w, c.width)
	y1, y2 := clamp.Span(y, h, c.height)
	area := image.Rect(x1, y1, x2, y2)

	c.combineShape("Rect Select", op, area, func(emit emitFunc) {
		if x2 <= x1 {
			return
		}
		for row := y1; row < y2; row++ {
			emit(row, x1, x2, 255)
		}
	})
}

// CombineMask merges src, placed with its origin at (offX, offY), into the
// channel. Only the overlap of the two canvases is touched.
func (c *Channel) CombineMask(src *Channel, op Op, offX, offY int) {
	off := image.Pt(offX, offY)
	area := src.Rect().Add(off).Intersect(c.Rect())
	if area.Empty() || (removesOnly(op) && c.knownEmpty()) {
		return
	}
	c.snapshot("Combine Masks", area)

	srcTiles := src.tiles
	if src == c {
		srcTiles = c.tiles.Clone()
		defer srcTiles.Close()
	}

	var written image.Rectangle
	sbuf := make([]byte, area.Dx())
	dbuf := make([]byte, area.Dx())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		srcTiles.Row(area.Min.X-offX, y-offY, sbuf)
		c.tiles.Row(area.Min.X, y, dbuf)
		applyPixels(op, dbuf, sbuf)
		c.tiles.SetRow(area.Min.X, y, dbuf)

		first, last := -1, -1
		for i, v := range sbuf {
			if v != 0 {
				if first < 0 {
					first = i
				}
				last = i
			}
		}
		if first >= 0 {
			written = written.Union(image.Rect(area.Min.X+first, y, area.Min.X+last+1, y+1))
		}
	}

	c.changed()
	c.noteWritten(op, written)
}
