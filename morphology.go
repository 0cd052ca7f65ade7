package selection

import (
	"image"

	"github.com/gogpu/selection/internal/boundary"
	"github.com/gogpu/selection/internal/filter"
	"github.com/gogpu/selection/internal/morph"
)

// Grow dilates the selection by steps pixels using a square structuring
// element. Negative steps shrink instead.
func (c *Channel) Grow(steps int) {
	switch {
	case steps == 0:
		return
	case steps < 0:
		c.Shrink(-steps, false)
		return
	}
	if c.IsEmpty() {
		return
	}

	c.snapshot("Grow Selection", c.Rect())
	// Past the canvas size further passes change nothing.
	steps = min(steps, max(c.width, c.height))
	for range steps {
		morph.Thin(c.tiles, c.Rect(), morph.Grow, false)
	}
	c.changed()
	c.forgetBounds()
}

// Shrink erodes the selection by steps pixels. With edgeLock set, pixels
// beyond the canvas edge count as selected, so a selection touching the
// edge does not shrink away from it. Negative steps grow instead.
func (c *Channel) Shrink(steps int, edgeLock bool) {
	switch {
	case steps == 0:
		return
	case steps < 0:
		c.Grow(-steps)
		return
	}
	rect, ok := c.Bounds()
	if !ok {
		return
	}

	// Erosion never reaches past the bounds; the extra pixel lets the
	// outermost pass see the unselected ring around them.
	region := rect.Inset(-1).Intersect(c.Rect())
	c.snapshot("Shrink Selection", region)
	steps = min(steps, max(region.Dx(), region.Dy()))
	for range steps {
		morph.Thin(c.tiles, region, morph.Shrink, edgeLock)
	}
	c.changed()
	c.forgetBounds()
}

// Border replaces the selection with a ring of the given radius around
// its outline.
func (c *Channel) Border(radius int) {
	if radius <= 0 {
		return
	}
	rect, ok := c.Bounds()
	if !ok {
		return
	}

	c.snapshot("Border Selection", c.Rect())
	segs := boundary.Find(c.tiles, rect, boundary.IgnoreBounds, rect, boundary.HalfWay)
	c.tiles.Fill(rect, 0)
	morph.Ring(c.tiles, segs, radius)
	c.changed()
	c.forgetBounds()
}

// Feather blurs the part of c that overlaps output, with c placed at
// (offX, offY) on output, using a Gaussian of the given radius. When output
// is another channel the blurred pixels are then merged into it with op.
// A non-positive radius skips the blur.
func (c *Channel) Feather(output *Channel, radius float64, op Op, offX, offY int) {
	off := image.Pt(offX, offY)
	overlap := c.Rect().Add(off).Intersect(output.Rect())
	if overlap.Empty() {
		output.forgetBounds()
		return
	}

	if radius > 0 {
		region := overlap.Sub(off)
		c.snapshot("Feather Selection", region)
		filter.GaussianBlur(c.tiles, region, radius)
		c.changed()
		c.forgetBounds()
	}
	if output != c {
		output.CombineMask(c, op, offX, offY)
	}
	output.forgetBounds()
}
