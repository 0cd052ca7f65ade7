// Package selection implements selection masks: one byte of coverage per
// pixel over a tiled canvas, where 0 is unselected, 255 fully selected and
// values in between partially selected.
//
// # Overview
//
// A [Channel] owns its pixels and two lazily computed caches: the tight
// bounding rectangle of its non-zero pixels and the outline segments used
// to draw marching ants. Every mutation invalidates what it cannot cheaply
// keep up to date; [Channel.Bounds], [Channel.IsEmpty] and
// [Channel.Boundary] recompute on demand.
//
// # Quick Start
//
//	c := selection.New(640, 480)
//	defer c.Close()
//
//	c.CombineRect(selection.OpAdd, 10, 10, 200, 100)
//	c.CombineEllipse(selection.OpSub, 50, 30, 80, 60, true)
//	c.Feather(c, 4, selection.OpReplace, 0, 0)
//
//	r, ok := c.Bounds()
//
// # Operations
//
// Shapes are merged with one of four [Op] values:
//   - OpAdd and OpReplace: dest = min(dest+value, 255)
//   - OpSub: dest = max(dest-value, 0)
//   - OpIntersect: dest = min(dest, value)
//
// Morphology covers [Channel.Grow], [Channel.Shrink], [Channel.Border] and
// [Channel.Feather]. [Channel.Invert], [Channel.Sharpen], [Channel.Clear],
// [Channel.All], [Channel.Translate] and [Channel.Load] complete the set.
// [Channel.Scale] resamples the mask to a new canvas size and
// [Channel.Resize] changes the canvas without resampling.
//
// Operations never fail: coordinates are clamped to the canvas and
// degenerate shapes are ignored.
//
// # Undo
//
// A channel created with [WithUndo] hands a [Snapshot] of the region about
// to change to its [UndoRecorder] before each mutation. [History] is a
// bounded undo/redo stack built on snapshots. Restoring a snapshot taken
// before a Scale or Resize also restores the canvas size.
//
// # Ownership
//
// Channels are addressed either directly or through a [Store], an arena
// that issues generation-checked [ChannelID] values. Neither type is safe
// for concurrent use.
package selection
