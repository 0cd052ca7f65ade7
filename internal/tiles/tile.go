// Package tiles provides the paged pixel store behind selection masks.
//
// A canvas is divided into 64x64 tiles holding one coverage byte per pixel.
// Key features:
//
//   - 64x64 tiles (4KB each) so a scan never holds more than one tile's worth
//     of data at a time
//   - Tile pooling for memory reuse via sync.Pool
//   - Copy-on-write sharing between managers (Clone) with reference counting
//   - Dirty tile tracking for incremental redraw
//
// Thread safety: Manager operations are NOT thread-safe. Pool is safe for
// concurrent use.
package tiles

import (
	"image"
	"sync/atomic"
)

// Tile size constants.
const (
	// TileWidth is the width of a tile in pixels.
	TileWidth = 64

	// TileHeight is the height of a tile in pixels.
	TileHeight = 64

	// TilePixels is the total number of pixels in a full tile.
	TilePixels = TileWidth * TileHeight

	// TileBytes is the size of a full tile in bytes (one byte per pixel).
	TileBytes = TilePixels
)

// Tile is one page of coverage data.
//
// Edge tiles may have smaller dimensions when the canvas is not evenly
// divisible by the tile size. A tile may be shared by several managers;
// it is copied before the first write through a shared reference.
type Tile struct {
	// X is the tile column index (0-based).
	X int

	// Y is the tile row index (0-based).
	Y int

	// Width is the actual width in pixels (may be < TileWidth for edge tiles).
	Width int

	// Height is the actual height in pixels (may be < TileHeight for edge tiles).
	Height int

	// Data holds Width*Height coverage bytes in row-major order.
	Data []byte

	refs atomic.Int32
}

// Reset zeroes the tile data for reuse.
func (t *Tile) Reset() {
	clear(t.Data)
}

// Bounds returns the pixel bounds of this tile in canvas space.
func (t *Tile) Bounds() image.Rectangle {
	x, y := t.X*TileWidth, t.Y*TileHeight
	return image.Rect(x, y, x+t.Width, y+t.Height)
}

// PixelOffset returns the byte offset into Data for the tile-local pixel
// (px, py), or -1 if the pixel is outside the tile.
func (t *Tile) PixelOffset(px, py int) int {
	if px < 0 || px >= t.Width || py < 0 || py >= t.Height {
		return -1
	}
	return py*t.Width + px
}

// Stride returns the row stride in bytes.
func (t *Tile) Stride() int {
	return t.Width
}

// Shared reports whether more than one manager references the tile.
func (t *Tile) Shared() bool {
	return t.refs.Load() > 1
}
