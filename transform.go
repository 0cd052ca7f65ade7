package selection

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/selection/internal/tiles"
)

// Scale resamples the mask to width x height with bilinear filtering.
// Non-positive sizes are ignored.
func (c *Channel) Scale(width, height int) {
	if width <= 0 || height <= 0 || (width == c.width && height == c.height) {
		return
	}
	c.snapshot("Scale Channel", c.Rect())

	if c.knownEmpty() || c.Rect().Empty() {
		c.replaceTiles(tiles.New(width, height))
		c.Clear()
		return
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), c.Image(), c.Rect(), draw.Src, nil)

	m := tiles.New(width, height)
	for y := range height {
		off := dst.PixOffset(0, y)
		m.SetRow(0, y, dst.Pix[off:off+width])
	}
	c.replaceTiles(m)
	c.forgetBounds()
}

// Resize changes the canvas to width x height without resampling. The old
// pixels are placed with their origin at (offX, offY); whatever falls off
// the new canvas is lost. Non-positive sizes are ignored.
func (c *Channel) Resize(width, height, offX, offY int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == c.width && height == c.height && offX == 0 && offY == 0 {
		return
	}
	c.snapshot("Resize Channel", c.Rect())

	wasEmpty := c.knownEmpty()
	m := tiles.New(width, height)
	if !wasEmpty {
		tiles.Copy(m, image.Pt(offX, offY), c.tiles, c.Rect())
	}
	c.replaceTiles(m)
	if wasEmpty {
		c.setEmpty()
		return
	}
	c.forgetBounds()
}

// replaceTiles swaps in m as the channel's pixels and takes its size.
// Every tile of m is reported dirty.
func (c *Channel) replaceTiles(m *tiles.Manager) {
	c.tiles.Close()
	c.tiles = m
	c.width, c.height = m.Width(), m.Height()
	m.Dirty().MarkAll()
	c.changed()
}
