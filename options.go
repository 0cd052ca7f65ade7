package selection

import (
	"image/color"

	"github.com/gogpu/selection/internal/clamp"
)

// ChannelOption configures a Channel during creation.
//
// Example:
//
//	h := selection.NewHistory(32)
//	c := selection.New(640, 480,
//	    selection.WithName("Selection Mask"),
//	    selection.WithUndo(h))
type ChannelOption func(*channelOptions)

// channelOptions holds optional configuration for Channel creation.
type channelOptions struct {
	name       string
	imageID    int
	opacity    float64
	color      color.NRGBA
	visible    bool
	showMasked bool
	undo       UndoRecorder
}

// defaultOptions returns the default channel options.
func defaultOptions() channelOptions {
	return channelOptions{
		name:    "Channel",
		opacity: 0.5,
		color:   color.NRGBA{A: 255},
		visible: true,
	}
}

// WithName sets the channel name.
func WithName(name string) ChannelOption {
	return func(o *channelOptions) {
		o.name = name
	}
}

// WithImageID records the id of the image that owns the channel.
func WithImageID(id int) ChannelOption {
	return func(o *channelOptions) {
		o.imageID = id
	}
}

// WithOpacity sets the compositing opacity, clamped to [0, 1].
func WithOpacity(opacity float64) ChannelOption {
	return func(o *channelOptions) {
		o.opacity = clamp.Clamp(opacity, 0, 1)
	}
}

// WithColor sets the colour used when the channel is shown over an image.
// Only the RGB components are kept; alpha is forced to opaque.
func WithColor(c color.NRGBA) ChannelOption {
	return func(o *channelOptions) {
		c.A = 255
		o.color = c
	}
}

// WithVisible sets the initial visibility.
func WithVisible(visible bool) ChannelOption {
	return func(o *channelOptions) {
		o.visible = visible
	}
}

// WithShowMasked selects whether the masked rather than the selected area
// is tinted when the channel is displayed.
func WithShowMasked(show bool) ChannelOption {
	return func(o *channelOptions) {
		o.showMasked = show
	}
}

// WithUndo attaches a recorder that receives a Snapshot before every
// mutation. A nil recorder disables snapshots.
func WithUndo(r UndoRecorder) ChannelOption {
	return func(o *channelOptions) {
		o.undo = r
	}
}
