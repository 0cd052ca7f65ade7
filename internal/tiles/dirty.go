package tiles

import (
	"image"
	"math/bits"
)

// DirtyRegion tracks which tiles were written since the last Take.
//
// The bitmap uses one bit per tile, packed into uint64 words (64 tiles per
// word). Bit index = ty*tilesX + tx.
type DirtyRegion struct {
	words  []uint64
	tilesX int
	tilesY int
}

// NewDirtyRegion creates a clean tracker for a tilesX x tilesY grid.
// Returns nil if dimensions are not positive.
func NewDirtyRegion(tilesX, tilesY int) *DirtyRegion {
	if tilesX <= 0 || tilesY <= 0 {
		return nil
	}
	return &DirtyRegion{
		words:  make([]uint64, (tilesX*tilesY+63)/64),
		tilesX: tilesX,
		tilesY: tilesY,
	}
}

// Mark marks a single tile as dirty. Out-of-range coordinates are ignored.
func (d *DirtyRegion) Mark(tx, ty int) {
	if d == nil || tx < 0 || tx >= d.tilesX || ty < 0 || ty >= d.tilesY {
		return
	}
	idx := ty*d.tilesX + tx
	d.words[idx/64] |= 1 << (idx & 63)
}

// MarkAll marks every tile as dirty.
func (d *DirtyRegion) MarkAll() {
	if d == nil {
		return
	}
	total := d.tilesX * d.tilesY
	full := total / 64
	for i := 0; i < full; i++ {
		d.words[i] = ^uint64(0)
	}
	if rem := total % 64; rem > 0 {
		d.words[full] = (uint64(1) << rem) - 1
	}
}

// IsDirty reports whether the tile at (tx, ty) is dirty.
func (d *DirtyRegion) IsDirty(tx, ty int) bool {
	if d == nil || tx < 0 || tx >= d.tilesX || ty < 0 || ty >= d.tilesY {
		return false
	}
	idx := ty*d.tilesX + tx
	return d.words[idx/64]&(1<<(idx&63)) != 0
}

// Count returns the number of dirty tiles.
func (d *DirtyRegion) Count() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, w := range d.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Clear marks every tile clean.
func (d *DirtyRegion) Clear() {
	if d == nil {
		return
	}
	clear(d.words)
}

// ForEach calls fn for each dirty tile in row-major order.
func (d *DirtyRegion) ForEach(fn func(tx, ty int)) {
	if d == nil || fn == nil {
		return
	}
	total := d.tilesX * d.tilesY
	for wi, word := range d.words {
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			idx := wi*64 + bit
			if idx >= total {
				break
			}
			fn(idx%d.tilesX, idx/d.tilesX)
			word &^= 1 << bit
		}
	}
}

// Bounds returns the pixel rectangle covering every dirty tile, clipped to
// a width x height canvas. The result is empty when nothing is dirty.
func (d *DirtyRegion) Bounds(width, height int) image.Rectangle {
	var r image.Rectangle
	d.ForEach(func(tx, ty int) {
		r = r.Union(image.Rect(tx*TileWidth, ty*TileHeight, (tx+1)*TileWidth, (ty+1)*TileHeight))
	})
	return r.Intersect(image.Rect(0, 0, width, height))
}
