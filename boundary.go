package selection

import (
	"image"
	"slices"

	"github.com/gogpu/selection/internal/boundary"
)

// boundaryState caches the outline traced for one clip rectangle.
// An empty mask has an empty outline for every clip.
type boundaryState struct {
	known bool
	empty bool
	clip  image.Rectangle
	in    []Segment
	out   []Segment
}

func (b boundaryState) clone() boundaryState {
	b.in = slices.Clone(b.in)
	b.out = slices.Clone(b.out)
	return b
}

// Boundary returns the outline of the mask at the half-way threshold.
//
// segsOut is the complete outline. segsIn is the outline restricted to
// clip, with the clip edges closing loops that cross it; it is nil when
// clip misses the mask. Both are nil for an empty mask. The returned
// slices are cached and must not be modified.
func (c *Channel) Boundary(clip image.Rectangle) (segsIn, segsOut []Segment) {
	if b := c.boundary; b.known && (b.empty || b.clip == clip) {
		return b.in, b.out
	}

	rect, ok := c.Bounds()
	if !ok {
		c.boundary = boundaryState{known: true, empty: true}
		return nil, nil
	}

	segsOut = boundary.Find(c.tiles, rect, boundary.IgnoreBounds, rect, boundary.HalfWay)
	if r := clip.Intersect(rect); !r.Empty() {
		segsIn = boundary.Find(c.tiles, c.Rect(), boundary.WithinBounds, r, boundary.HalfWay)
	}

	c.boundary = boundaryState{known: true, clip: clip, in: segsIn, out: segsOut}
	Logger().Debug("selection: boundary traced",
		"channel", c.name, "clip", clip, "in", len(segsIn), "out", len(segsOut))
	return segsIn, segsOut
}
