package selection

import "image"

// boundsState caches the tight rectangle of non-zero pixels.
//
// When known, rect is that rectangle, or the whole canvas with empty set
// when no pixel is non-zero.
type boundsState struct {
	known bool
	empty bool
	rect  image.Rectangle
}

// setEmpty records that no pixel is selected. The outline of an empty
// mask is known without tracing.
func (c *Channel) setEmpty() {
	c.bounds = boundsState{known: true, empty: true, rect: c.Rect()}
	c.boundary = boundaryState{known: true, empty: true}
}

// setBounds records r as the tight bounds, which must be non-empty.
func (c *Channel) setBounds(r image.Rectangle) {
	c.bounds = boundsState{known: true, rect: r.Intersect(c.Rect())}
}

// knownEmpty reports whether the mask is known to have no selected pixel.
func (c *Channel) knownEmpty() bool {
	return c.bounds.known && c.bounds.empty
}

// forgetBounds marks the bounds for recomputation.
func (c *Channel) forgetBounds() {
	c.bounds.known = false
}

// Bounds returns the tight rectangle around every non-zero pixel and true,
// or the whole canvas and false when the mask is empty.
func (c *Channel) Bounds() (image.Rectangle, bool) {
	if !c.bounds.known {
		c.scanBounds()
	}
	return c.bounds.rect, !c.bounds.empty
}

// scanBounds walks the canvas one tile chunk at a time.
func (c *Channel) scanBounds() {
	minX, minY := c.width, c.height
	maxX, maxY := -1, -1

	for ch := range c.tiles.Chunks(c.Rect(), false) {
		// A chunk with both corners set spans its full extent.
		bottom := ch.Row(ch.H - 1)
		if ch.Row(0)[0] != 0 && bottom[ch.W-1] != 0 {
			minX, minY = min(minX, ch.X), min(minY, ch.Y)
			maxX, maxY = max(maxX, ch.X+ch.W-1), max(maxY, ch.Y+ch.H-1)
			continue
		}

		for i := range ch.H {
			row := ch.Row(i)
			first := -1
			for x, v := range row {
				if v != 0 {
					first = x
					break
				}
			}
			if first < 0 {
				continue
			}
			last := first
			for x := len(row) - 1; x > first; x-- {
				if row[x] != 0 {
					last = x
					break
				}
			}
			minX, maxX = min(minX, ch.X+first), max(maxX, ch.X+last)
			minY, maxY = min(minY, ch.Y+i), max(maxY, ch.Y+i)
		}
	}

	if maxX < 0 {
		c.bounds = boundsState{known: true, empty: true, rect: c.Rect()}
	} else {
		c.setBounds(image.Rect(minX, minY, maxX+1, maxY+1))
	}
	Logger().Debug("selection: bounds scanned",
		"channel", c.name, "bounds", c.bounds.rect, "empty", c.bounds.empty)
}

// IsEmpty reports whether no pixel is selected. With unknown bounds it
// stops at the first non-zero pixel instead of computing the rectangle.
func (c *Channel) IsEmpty() bool {
	if c.bounds.known {
		return c.bounds.empty
	}
	for ch := range c.tiles.Chunks(c.Rect(), false) {
		for i := range ch.H {
			for _, v := range ch.Row(i) {
				if v != 0 {
					return false
				}
			}
		}
	}
	c.setEmpty()
	return true
}
