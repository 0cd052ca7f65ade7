package selection

import (
	"image"

	"github.com/gogpu/selection/internal/tiles"
)

// UndoRecorder receives a snapshot of the region a channel is about to
// modify. Record is called before the pixels change.
type UndoRecorder interface {
	Record(s *Snapshot)
}

// RecorderFunc adapts a function to UndoRecorder.
type RecorderFunc func(s *Snapshot)

// Record calls f(s).
func (f RecorderFunc) Record(s *Snapshot) { f(s) }

// Snapshot holds the pixels of one channel rectangle as they were before
// an operation.
type Snapshot struct {
	// Channel is the channel the pixels belong to.
	Channel *Channel
	// Rect is the saved canvas rectangle.
	Rect image.Rectangle
	// Desc names the operation that took the snapshot.
	Desc string

	canvas image.Point
	tiles  *tiles.Manager
}

// snapshot hands the pixels of r to the undo recorder, if any.
func (c *Channel) snapshot(desc string, r image.Rectangle) {
	if c.undo == nil || r.Empty() {
		return
	}
	c.undo.Record(c.capture(desc, r))
}

// capture copies r. The whole canvas is shared copy-on-write instead.
func (c *Channel) capture(desc string, r image.Rectangle) *Snapshot {
	s := &Snapshot{Channel: c, Rect: r, Desc: desc, canvas: image.Pt(c.width, c.height)}
	if r == c.Rect() {
		s.tiles = c.tiles.Clone()
	} else {
		s.tiles = c.tiles.Crop(r)
	}
	return s
}

// Image returns a copy of the saved pixels, positioned at Rect.
func (s *Snapshot) Image() *image.Alpha {
	img := image.NewAlpha(s.Rect)
	if s.tiles == nil {
		return img
	}
	for y := range s.Rect.Dy() {
		off := img.PixOffset(s.Rect.Min.X, s.Rect.Min.Y+y)
		s.tiles.Row(0, y, img.Pix[off:off+s.Rect.Dx()])
	}
	return img
}

// Restore writes the saved pixels back into the channel and returns a
// snapshot of the pixels it overwrote, which restores the state before the
// call. When the canvas was resized since the snapshot was taken, the
// whole canvas is replaced and takes its old size again. Restore returns
// nil when the snapshot was released or the channel closed. The channel's
// bounds are recomputed on next use.
func (s *Snapshot) Restore() *Snapshot {
	c := s.Channel
	if s.tiles == nil || c == nil || c.tiles == nil {
		return nil
	}

	var inv *Snapshot
	if s.canvas != image.Pt(c.width, c.height) {
		inv = c.capture(s.Desc, c.Rect())
		c.replaceTiles(s.tiles.Clone())
	} else {
		inv = c.capture(s.Desc, s.Rect)
		tiles.Copy(c.tiles, s.Rect.Min, s.tiles, s.tiles.Bounds())
		c.changed()
	}
	c.forgetBounds()
	return inv
}

// Release frees the saved pixels. The snapshot cannot be restored after.
func (s *Snapshot) Release() {
	if s.tiles != nil {
		s.tiles.Close()
		s.tiles = nil
	}
}

// History is a bounded undo/redo stack of snapshots. It implements
// UndoRecorder; attach it with WithUndo or SetUndo.
//
// History is not safe for concurrent use.
type History struct {
	undo  []*Snapshot
	redo  []*Snapshot
	limit int
}

// NewHistory returns a history keeping at most limit undo steps.
// A limit of 0 means unlimited.
func NewHistory(limit int) *History {
	return &History{limit: max(limit, 0)}
}

// Record pushes s and drops the redo stack. When the limit is exceeded
// the oldest step is released.
func (h *History) Record(s *Snapshot) {
	h.undo = append(h.undo, s)
	releaseAll(h.redo)
	h.redo = h.redo[:0]

	if h.limit > 0 && len(h.undo) > h.limit {
		n := len(h.undo) - h.limit
		releaseAll(h.undo[:n])
		h.undo = append(h.undo[:0], h.undo[n:]...)
	}
}

// Undo restores the most recent step and reports whether there was one.
func (h *History) Undo() bool {
	return move(&h.undo, &h.redo)
}

// Redo reapplies the most recently undone step and reports whether there
// was one.
func (h *History) Redo() bool {
	return move(&h.redo, &h.undo)
}

// Len returns the number of steps that can be undone.
func (h *History) Len() int { return len(h.undo) }

// RedoLen returns the number of steps that can be redone.
func (h *History) RedoLen() int { return len(h.redo) }

// Peek returns the description of the next undo step, or "".
func (h *History) Peek() string {
	if len(h.undo) == 0 {
		return ""
	}
	return h.undo[len(h.undo)-1].Desc
}

// Clear releases every step.
func (h *History) Clear() {
	releaseAll(h.undo)
	releaseAll(h.redo)
	h.undo, h.redo = nil, nil
}

// move restores the top of from and pushes its inverse onto to.
func move(from, to *[]*Snapshot) bool {
	n := len(*from)
	if n == 0 {
		return false
	}
	s := (*from)[n-1]
	(*from)[n-1] = nil
	*from = (*from)[:n-1]

	inv := s.Restore()
	s.Release()
	if inv != nil {
		*to = append(*to, inv)
	}
	return true
}

func releaseAll(ss []*Snapshot) {
	for i, s := range ss {
		s.Release()
		ss[i] = nil
	}
}
