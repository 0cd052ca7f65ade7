package selection

import (
	"image"
	"image/color"

	"github.com/gogpu/selection/internal/boundary"
	"github.com/gogpu/selection/internal/cache"
	"github.com/gogpu/selection/internal/clamp"
	"github.com/gogpu/selection/internal/tiles"
)

// Segment is one directed, axis-aligned edge of a mask outline.
type Segment = boundary.Segment

// previewCacheSize is the number of preview sizes kept per channel.
const previewCacheSize = 4

// Channel is a selection mask of width x height coverage bytes.
//
// Channel is not safe for concurrent use and must not be used after Close.
type Channel struct {
	id      ChannelID
	imageID int
	name    string

	width  int
	height int
	tiles  *tiles.Manager

	bounds   boundsState
	boundary boundaryState
	previews *cache.Cache[image.Point, *image.Alpha]

	visible    bool
	showMasked bool
	opacity    float64
	color      color.NRGBA

	undo UndoRecorder
}

// New creates an empty channel. Negative dimensions are treated as zero.
func New(width, height int, opts ...ChannelOption) *Channel {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	width, height = max(width, 0), max(height, 0)
	c := &Channel{
		imageID:    o.imageID,
		name:       o.name,
		width:      width,
		height:     height,
		tiles:      tiles.New(width, height),
		previews:   cache.New[image.Point, *image.Alpha](previewCacheSize),
		visible:    o.visible,
		showMasked: o.showMasked,
		opacity:    o.opacity,
		color:      o.color,
		undo:       o.undo,
	}
	c.setEmpty()
	return c
}

// ID returns the id assigned by the owning Store, or 0.
func (c *Channel) ID() ChannelID { return c.id }

// ImageID returns the id of the image that owns the channel.
func (c *Channel) ImageID() int { return c.imageID }

// Name returns the channel name.
func (c *Channel) Name() string { return c.name }

// SetName renames the channel.
func (c *Channel) SetName(name string) { c.name = name }

// Width returns the canvas width in pixels.
func (c *Channel) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Channel) Height() int { return c.height }

// Rect returns the canvas rectangle (0, 0, width, height).
func (c *Channel) Rect() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// Visible reports whether the channel is drawn.
func (c *Channel) Visible() bool { return c.visible }

// SetVisible shows or hides the channel.
func (c *Channel) SetVisible(v bool) { c.visible = v }

// ShowMasked reports whether the masked area is tinted instead of the
// selected one.
func (c *Channel) ShowMasked() bool { return c.showMasked }

// SetShowMasked sets the ShowMasked flag.
func (c *Channel) SetShowMasked(v bool) { c.showMasked = v }

// Opacity returns the compositing opacity in [0, 1].
func (c *Channel) Opacity() float64 { return c.opacity }

// SetOpacity sets the opacity, clamped to [0, 1].
func (c *Channel) SetOpacity(v float64) {
	c.opacity = clamp.Clamp(v, 0, 1)
}

// Color returns the display colour.
func (c *Channel) Color() color.NRGBA { return c.color }

// SetColor sets the display colour. Alpha is forced to opaque.
func (c *Channel) SetColor(col color.NRGBA) {
	col.A = 255
	c.color = col
}

// SetUndo replaces the undo recorder. Nil disables snapshots.
func (c *Channel) SetUndo(r UndoRecorder) { c.undo = r }

// At returns the coverage at (x, y), or 0 outside the canvas.
func (c *Channel) At(x, y int) byte {
	return c.tiles.At(x, y)
}

// Copy returns an independent channel with the same pixels, caches and
// attributes. Pixels are shared copy-on-write. The copy has no Store id.
func (c *Channel) Copy() *Channel {
	cp := &Channel{
		imageID:    c.imageID,
		name:       c.name + " copy",
		width:      c.width,
		height:     c.height,
		tiles:      c.tiles.Clone(),
		bounds:     c.bounds,
		boundary:   c.boundary.clone(),
		previews:   cache.New[image.Point, *image.Alpha](previewCacheSize),
		visible:    c.visible,
		showMasked: c.showMasked,
		opacity:    c.opacity,
		color:      c.color,
		undo:       c.undo,
	}
	return cp
}

// Close releases the channel's pixels and caches.
func (c *Channel) Close() {
	if c.tiles == nil {
		return
	}
	c.tiles.Close()
	c.tiles = nil
	c.boundary = boundaryState{}
	c.previews.Clear()
}

// TakeDirty returns the rectangle covering every tile written since the
// previous call and resets the record. The result is empty when nothing
// changed.
func (c *Channel) TakeDirty() image.Rectangle {
	r := c.tiles.DirtyBounds()
	c.tiles.ClearDirty()
	return r
}

// changed drops the caches derived from pixel contents other than bounds,
// which each operation maintains itself.
func (c *Channel) changed() {
	c.boundary = boundaryState{}
	c.previews.Clear()
}
