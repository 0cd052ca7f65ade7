package selection

import (
	"image"
	"testing"
)

// tight computes the bounds of c by brute force.
func tight(c *Channel) (image.Rectangle, bool) {
	var r image.Rectangle
	found := false
	for y := range c.height {
		for x := range c.width {
			if c.At(x, y) != 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
				found = true
			}
		}
	}
	return r, found
}

// checkInvariant fails the test when the cached bounds disagree with the
// pixels.
func checkInvariant(t *testing.T, c *Channel) {
	t.Helper()
	b := c.bounds
	if !b.known {
		return
	}
	if b.rect.Min.X < 0 || b.rect.Min.Y < 0 || b.rect.Max.X > c.width || b.rect.Max.Y > c.height ||
		b.rect.Min.X > b.rect.Max.X || b.rect.Min.Y > b.rect.Max.Y {
		t.Fatalf("cached bounds %v outside canvas %dx%d", b.rect, c.width, c.height)
	}
	want, found := tight(c)
	if b.empty {
		if found {
			t.Fatalf("cached empty but pixels within %v are set", want)
		}
		if b.rect != c.Rect() {
			t.Fatalf("empty bounds = %v, want canvas %v", b.rect, c.Rect())
		}
		return
	}
	if !found {
		t.Fatalf("cached bounds %v but mask is empty", b.rect)
	}
	if b.rect != want {
		t.Fatalf("cached bounds = %v, want %v", b.rect, want)
	}
}

// pixels returns a copy of every coverage byte.
func pixels(c *Channel) []byte {
	return c.Image().Pix
}

func equalPixels(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// newRect returns a w x h channel with r selected.
func newRect(w, h int, r image.Rectangle) *Channel {
	c := New(w, h)
	c.CombineRect(OpAdd, r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	return c
}

// fromValues builds a channel from rows of coverage values.
func fromValues(rows [][]byte) *Channel {
	c := New(len(rows[0]), len(rows))
	for y, row := range rows {
		c.tiles.SetRow(0, y, row)
	}
	c.forgetBounds()
	c.changed()
	return c
}
