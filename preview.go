package selection

import (
	"image"

	"golang.org/x/image/draw"
)

// Preview returns the mask scaled to width x height for display. Results
// are cached per size until the next mutation; the returned image is
// shared and must not be modified. Non-positive sizes return nil.
func (c *Channel) Preview(width, height int) *image.Alpha {
	if width <= 0 || height <= 0 {
		return nil
	}
	return c.previews.GetOrCreate(image.Pt(width, height), func() *image.Alpha {
		dst := image.NewAlpha(image.Rect(0, 0, width, height))
		if c.Rect().Empty() {
			return dst
		}
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), c.Image(), c.Rect(), draw.Src, nil)
		return dst
	})
}
