package selection

import (
	"image"

	"golang.org/x/image/draw"
)

// Image returns the coverage as an *image.Alpha with bounds Rect().
func (c *Channel) Image() *image.Alpha {
	img := image.NewAlpha(c.Rect())
	for ch := range c.tiles.Chunks(c.Rect(), false) {
		for i := range ch.H {
			off := img.PixOffset(ch.X, ch.Y+i)
			copy(img.Pix[off:off+ch.W], ch.Row(i))
		}
	}
	return img
}

// NewFromAlpha creates a channel from the alpha of img. The canvas takes
// the size of img's bounds, with img.Bounds().Min at the origin.
func NewFromAlpha(img image.Image, opts ...ChannelOption) *Channel {
	b := img.Bounds()
	c := New(b.Dx(), b.Dy(), opts...)

	a, ok := img.(*image.Alpha)
	if !ok {
		a = image.NewAlpha(b)
		draw.Draw(a, b, img, b.Min, draw.Src)
	}
	for y := range b.Dy() {
		off := a.PixOffset(b.Min.X, b.Min.Y+y)
		c.tiles.SetRow(0, y, a.Pix[off:off+b.Dx()])
	}
	c.tiles.ClearDirty()
	c.forgetBounds()
	c.boundary = boundaryState{}
	return c
}
