package selection

import (
	"image"

	"github.com/gogpu/selection/internal/tiles"
)

// sharpenThreshold is the lowest coverage Sharpen keeps as selected.
const sharpenThreshold = 128

// Invert replaces every coverage value v with 255-v.
func (c *Channel) Invert() {
	if c.knownEmpty() {
		c.All()
		return
	}

	c.snapshot("Invert", c.Rect())
	for ch := range c.tiles.Chunks(c.Rect(), true) {
		for i := range ch.H {
			row := ch.Row(i)
			for x, v := range row {
				row[x] = 255 - v
			}
		}
	}
	c.changed()
	c.forgetBounds()
}

// Sharpen removes partial coverage: values of 128 and above become 255,
// the rest 0.
func (c *Channel) Sharpen() {
	if c.knownEmpty() {
		return
	}
	c.snapshot("Sharpen", c.Rect())
	for ch := range c.tiles.Chunks(c.Rect(), true) {
		for i := range ch.H {
			row := ch.Row(i)
			for x, v := range row {
				if v >= sharpenThreshold {
					row[x] = 255
				} else {
					row[x] = 0
				}
			}
		}
	}
	c.changed()
	c.forgetBounds()
}

// Clear deselects everything.
func (c *Channel) Clear() {
	r := c.Rect()
	if c.bounds.known {
		if c.bounds.empty {
			r = image.Rectangle{}
		} else {
			r = c.bounds.rect
		}
	}
	if !r.Empty() {
		c.snapshot("Clear", r)
		c.tiles.Fill(r, 0)
	}
	c.changed()
	c.setEmpty()
}

// All selects the whole canvas.
func (c *Channel) All() {
	c.snapshot("Select All", c.Rect())
	c.tiles.Fill(c.Rect(), 255)
	c.changed()
	if c.Rect().Empty() {
		c.setEmpty()
		return
	}
	c.setBounds(c.Rect())
}

// Translate moves the selection by (dx, dy). Pixels moved off the canvas
// are lost.
func (c *Channel) Translate(dx, dy int) {
	rect, ok := c.Bounds()
	if !ok || (dx == 0 && dy == 0) {
		return
	}
	c.snapshot("Move Selection", c.Rect())

	d := image.Pt(dx, dy)
	moved := rect.Add(d)
	dst := moved.Intersect(c.Rect())

	var tmp *tiles.Manager
	if !dst.Empty() {
		tmp = c.tiles.Crop(dst.Sub(d))
		defer tmp.Close()
	}
	c.tiles.Fill(rect, 0)
	c.changed()

	switch {
	case dst.Empty():
		c.setEmpty()
	case dst == moved:
		tiles.Copy(c.tiles, dst.Min, tmp, tmp.Bounds())
		c.setBounds(dst)
	default:
		// Clipping may cut away the extreme pixels, so the tight bounds
		// can be smaller than dst.
		tiles.Copy(c.tiles, dst.Min, tmp, tmp.Bounds())
		c.forgetBounds()
	}
}

// Load replaces the contents of c with those of src. When the canvases
// differ in size only the overlap at the origin is copied.
func (c *Channel) Load(src *Channel) {
	if src == c {
		return
	}
	c.snapshot("Channel Load", c.Rect())

	if src.width == c.width && src.height == c.height {
		c.replaceTiles(src.tiles.Clone())
		c.bounds = src.bounds
		return
	}

	c.tiles.Fill(c.Rect(), 0)
	tiles.Copy(c.tiles, image.Point{}, src.tiles, src.Rect())
	c.changed()
	c.forgetBounds()
}
