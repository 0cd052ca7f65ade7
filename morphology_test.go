package selection

import (
	"image"
	"testing"
)

func TestGrow_ZeroStepsNoop(t *testing.T) {
	c := New(40, 40)
	defer c.Close()
	c.CombineEllipse(OpAdd, 4, 6, 25, 17, true)
	before := pixels(c)
	bounds := c.bounds

	c.Grow(0)

	if !equalPixels(before, pixels(c)) {
		t.Error("Grow(0) changed pixels")
	}
	if c.bounds != bounds {
		t.Errorf("Grow(0) changed bounds: %+v -> %+v", bounds, c.bounds)
	}
}

func TestGrowShrink(t *testing.T) {
	tests := []struct {
		name string
		run  func(c *Channel)
		want image.Rectangle
	}{
		{"grow", func(c *Channel) { c.Grow(2) }, image.Rect(8, 8, 22, 22)},
		{"grow clipped", func(c *Channel) { c.Grow(15) }, image.Rect(0, 0, 35, 35)},
		{"shrink", func(c *Channel) { c.Shrink(2, false) }, image.Rect(12, 12, 18, 18)},
		{"negative grow", func(c *Channel) { c.Grow(-3) }, image.Rect(13, 13, 17, 17)},
		{"negative shrink", func(c *Channel) { c.Shrink(-1, false) }, image.Rect(9, 9, 21, 21)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newRect(40, 40, image.Rect(10, 10, 20, 20))
			defer c.Close()

			tt.run(c)
			checkInvariant(t, c)

			r, ok := c.Bounds()
			if !ok || r != tt.want {
				t.Errorf("Bounds() = %v, %v; want %v", r, ok, tt.want)
			}
			for y := r.Min.Y; y < r.Max.Y; y++ {
				for x := r.Min.X; x < r.Max.X; x++ {
					if c.At(x, y) != 255 {
						t.Fatalf("hole at (%d, %d)", x, y)
					}
				}
			}
		})
	}
}

func TestShrink_Away(t *testing.T) {
	c := newRect(20, 20, image.Rect(5, 5, 9, 9))
	defer c.Close()

	c.Shrink(2, false)

	if !c.IsEmpty() {
		t.Error("4x4 square survived Shrink(2)")
	}
}

func TestShrink_EdgeLock(t *testing.T) {
	tests := []struct {
		edgeLock bool
		want     image.Rectangle
	}{
		{false, image.Rect(3, 3, 17, 17)},
		{true, image.Rect(0, 0, 20, 20)},
	}
	for _, tt := range tests {
		c := New(20, 20)
		c.All()

		c.Shrink(3, tt.edgeLock)

		if r, ok := c.Bounds(); !ok || r != tt.want {
			t.Errorf("edgeLock=%v: Bounds() = %v, %v; want %v", tt.edgeLock, r, ok, tt.want)
		}
		checkInvariant(t, c)
		c.Close()
	}
}

func TestGrowShrink_EmptyNoop(t *testing.T) {
	c := New(10, 10)
	defer c.Close()

	c.Grow(3)
	c.Shrink(3, true)
	c.Border(2)

	if !c.IsEmpty() {
		t.Error("morphology on an empty mask selected pixels")
	}
}

func TestBorder(t *testing.T) {
	c := newRect(40, 40, image.Rect(10, 10, 30, 30))
	defer c.Close()

	c.Border(2)
	checkInvariant(t, c)

	tests := []struct {
		x, y int
		want byte
	}{
		{20, 20, 0},
		{12, 20, 0},
		{11, 20, 255},
		{10, 20, 255},
		{8, 20, 255},
		{7, 20, 0},
		{31, 20, 255},
		{32, 20, 0},
	}
	for _, tt := range tests {
		if got := c.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
	if r, ok := c.Bounds(); !ok || r != image.Rect(8, 8, 32, 32) {
		t.Errorf("Bounds() = %v, %v; want (8,8)-(32,32)", r, ok)
	}
}

func TestBorder_NonPositiveRadius(t *testing.T) {
	c := newRect(20, 20, image.Rect(5, 5, 10, 10))
	defer c.Close()
	before := pixels(c)

	c.Border(0)
	c.Border(-4)

	if !equalPixels(before, pixels(c)) {
		t.Error("Border with non-positive radius changed pixels")
	}
}

func TestFeather_InPlace(t *testing.T) {
	c := newRect(40, 40, image.Rect(10, 10, 30, 30))
	defer c.Close()

	c.Feather(c, 3, OpReplace, 0, 0)

	if c.bounds.known {
		t.Error("Feather left bounds known")
	}
	if got := c.At(20, 20); got != 255 {
		t.Errorf("centre = %d, want 255", got)
	}
	if got := c.At(0, 0); got != 0 {
		t.Errorf("corner = %d, want 0", got)
	}
	if v := c.At(10, 20); v == 0 || v == 255 {
		t.Errorf("edge = %d, want partial coverage", v)
	}
	c.Bounds()
	checkInvariant(t, c)
}

func TestFeather_IntoOther(t *testing.T) {
	in := newRect(40, 40, image.Rect(10, 10, 30, 30))
	defer in.Close()
	out := New(40, 40)
	defer out.Close()

	in.Feather(out, 3, OpAdd, 5, 0)

	if got := out.At(25, 20); got != 255 {
		t.Errorf("out centre = %d, want 255", got)
	}
	if got := out.At(2, 20); got != 0 {
		t.Errorf("out left = %d, want 0", got)
	}
	if in.At(25, 20) != 255 || in.At(10, 20) == 255 {
		t.Error("input was not blurred in place")
	}
	out.Bounds()
	checkInvariant(t, out)
}

func TestFeather_ZeroRadius(t *testing.T) {
	in := newRect(20, 20, image.Rect(2, 2, 6, 6))
	defer in.Close()
	out := New(20, 20)
	defer out.Close()

	in.Feather(out, 0, OpAdd, 0, 0)

	if !equalPixels(pixels(in), pixels(out)) {
		t.Error("zero-radius feather did not copy the mask")
	}
}
