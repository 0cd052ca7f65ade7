package tiles

import (
	"image"
	"iter"
)

// Chunk is the part of one tile that intersects an iterated region.
//
// Data starts at the chunk's top-left pixel; row i begins at i*Stride.
// A chunk obtained from a writable iteration is owned by the manager
// being iterated and may be modified in place.
type Chunk struct {
	X, Y   int
	W, H   int
	Stride int
	Data   []byte
}

// Row returns the W pixels of chunk row i.
func (c Chunk) Row(i int) []byte {
	off := i * c.Stride
	return c.Data[off : off+c.W]
}

// Rect returns the chunk's canvas rectangle.
func (c Chunk) Rect() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.W, c.Y+c.H)
}

// Chunks returns the sequence of tile chunks covering r (clipped to the
// canvas) in row-major tile order. Each call yields a fresh sequence.
//
// When writable is true every yielded tile is made exclusive to m and
// marked dirty before it is handed out.
func (m *Manager) Chunks(r image.Rectangle, writable bool) iter.Seq[Chunk] {
	r = r.Intersect(m.Bounds())
	return func(yield func(Chunk) bool) {
		if r.Empty() {
			return
		}
		tx1, ty1 := r.Min.X/TileWidth, r.Min.Y/TileHeight
		tx2, ty2 := (r.Max.X-1)/TileWidth, (r.Max.Y-1)/TileHeight

		for ty := ty1; ty <= ty2; ty++ {
			for tx := tx1; tx <= tx2; tx++ {
				var t *Tile
				if writable {
					t = m.writableTile(tx, ty)
				} else {
					t = m.tileAt(tx, ty)
				}
				cr := t.Bounds().Intersect(r)
				lx, ly := cr.Min.X-tx*TileWidth, cr.Min.Y-ty*TileHeight
				c := Chunk{
					X:      cr.Min.X,
					Y:      cr.Min.Y,
					W:      cr.Dx(),
					H:      cr.Dy(),
					Stride: t.Width,
					Data:   t.Data[ly*t.Width+lx:],
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}
