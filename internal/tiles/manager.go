package tiles

import "image"

// Manager is a width x height canvas of one-byte pixels stored in tiles.
//
// Tiles are stored in a flat slice in row-major order, accessed via
// index = ty*tilesX + tx. Tiles obtained through Clone are shared until
// either side writes to them.
type Manager struct {
	tiles  []*Tile
	tilesX int
	tilesY int
	width  int
	height int
	pool   *Pool
	dirty  *DirtyRegion
}

// New allocates a zeroed manager for the given canvas dimensions.
// Non-positive dimensions produce an empty manager with no tiles.
func New(width, height int) *Manager {
	return NewWithPool(width, height, defaultPool)
}

// NewWithPool is like New but draws tiles from the given pool.
func NewWithPool(width, height int, pool *Pool) *Manager {
	if width <= 0 || height <= 0 {
		return &Manager{pool: pool}
	}

	m := &Manager{
		tilesX: (width + TileWidth - 1) / TileWidth,
		tilesY: (height + TileHeight - 1) / TileHeight,
		width:  width,
		height: height,
		pool:   pool,
	}
	m.tiles = make([]*Tile, m.tilesX*m.tilesY)
	m.dirty = NewDirtyRegion(m.tilesX, m.tilesY)

	for ty := range m.tilesY {
		for tx := range m.tilesX {
			tileW := min(TileWidth, width-tx*TileWidth)
			tileH := min(TileHeight, height-ty*TileHeight)

			tile := pool.Get(tileW, tileH)
			tile.X = tx
			tile.Y = ty
			m.tiles[ty*m.tilesX+tx] = tile
		}
	}
	return m
}

// Width returns the canvas width in pixels.
func (m *Manager) Width() int { return m.width }

// Height returns the canvas height in pixels.
func (m *Manager) Height() int { return m.height }

// Bounds returns the canvas rectangle (0, 0, width, height).
func (m *Manager) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// TileCount returns the total number of tiles.
func (m *Manager) TileCount() int {
	return len(m.tiles)
}

// Clone returns a manager sharing every tile with m. Writes through either
// manager copy the affected tile first, so the two never observe each
// other's changes.
func (m *Manager) Clone() *Manager {
	c := &Manager{
		tiles:  make([]*Tile, len(m.tiles)),
		tilesX: m.tilesX,
		tilesY: m.tilesY,
		width:  m.width,
		height: m.height,
		pool:   m.pool,
		dirty:  NewDirtyRegion(m.tilesX, m.tilesY),
	}
	for i, t := range m.tiles {
		t.refs.Add(1)
		c.tiles[i] = t
	}
	return c
}

// Close drops the manager's tile references, returning unshared tiles to
// the pool. The manager must not be used afterwards.
func (m *Manager) Close() {
	for i, t := range m.tiles {
		if t == nil {
			continue
		}
		if t.refs.Add(-1) == 0 {
			m.pool.Put(t)
		}
		m.tiles[i] = nil
	}
	m.tiles = nil
}

// tileAt returns the tile with tile coordinates (tx, ty) for reading.
func (m *Manager) tileAt(tx, ty int) *Tile {
	return m.tiles[ty*m.tilesX+tx]
}

// writableTile returns the tile at (tx, ty) ready for writing, copying it
// first if it is shared, and marks it dirty.
func (m *Manager) writableTile(tx, ty int) *Tile {
	idx := ty*m.tilesX + tx
	t := m.tiles[idx]
	if t.Shared() {
		own := m.pool.Get(t.Width, t.Height)
		own.X, own.Y = t.X, t.Y
		copy(own.Data, t.Data)
		if t.refs.Add(-1) == 0 {
			m.pool.Put(t)
		}
		m.tiles[idx] = own
		t = own
	}
	m.dirty.Mark(tx, ty)
	return t
}

// At returns the pixel at (x, y). The caller checks bounds beforehand;
// out-of-canvas coordinates return 0.
func (m *Manager) At(x, y int) byte {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	t := m.tileAt(x/TileWidth, y/TileHeight)
	return t.Data[(y%TileHeight)*t.Width+x%TileWidth]
}

// Set writes the pixel at (x, y). Out-of-canvas coordinates are ignored.
func (m *Manager) Set(x, y int, v byte) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	t := m.writableTile(x/TileWidth, y/TileHeight)
	t.Data[(y%TileHeight)*t.Width+x%TileWidth] = v
}

// Fill sets every pixel of r (clipped to the canvas) to v.
func (m *Manager) Fill(r image.Rectangle, v byte) {
	for c := range m.Chunks(r, true) {
		for row := range c.H {
			line := c.Row(row)
			for i := range line {
				line[i] = v
			}
		}
	}
}

// Row reads len(dst) pixels starting at (x, y) into dst. The span must lie
// inside the canvas.
func (m *Manager) Row(x, y int, dst []byte) {
	ty := y / TileHeight
	ly := y % TileHeight
	for n := 0; n < len(dst); {
		px := x + n
		t := m.tileAt(px/TileWidth, ty)
		lx := px % TileWidth
		off := ly*t.Width + lx
		n += copy(dst[n:], t.Data[off:off+t.Width-lx])
	}
}

// SetRow writes src to the row span starting at (x, y). The span must lie
// inside the canvas.
func (m *Manager) SetRow(x, y int, src []byte) {
	ty := y / TileHeight
	ly := y % TileHeight
	for n := 0; n < len(src); {
		px := x + n
		t := m.writableTile(px/TileWidth, ty)
		lx := px % TileWidth
		off := ly*t.Width + lx
		n += copy(t.Data[off:off+t.Width-lx], src[n:])
	}
}

// Col reads len(dst) pixels downwards from (x, y) into dst. The span must
// lie inside the canvas.
func (m *Manager) Col(x, y int, dst []byte) {
	tx := x / TileWidth
	lx := x % TileWidth
	for i := range dst {
		py := y + i
		t := m.tileAt(tx, py/TileHeight)
		dst[i] = t.Data[(py%TileHeight)*t.Width+lx]
	}
}

// SetCol writes src downwards from (x, y). The span must lie inside the
// canvas.
func (m *Manager) SetCol(x, y int, src []byte) {
	tx := x / TileWidth
	lx := x % TileWidth
	var t *Tile
	lastTY := -1
	for i, v := range src {
		py := y + i
		if ty := py / TileHeight; ty != lastTY {
			t = m.writableTile(tx, ty)
			lastTY = ty
		}
		t.Data[(py%TileHeight)*t.Width+lx] = v
	}
}

// Copy copies the src pixels in sr to dst with sr.Min mapped to dp. The
// rectangle is clipped against both canvases.
func Copy(dst *Manager, dp image.Point, src *Manager, sr image.Rectangle) {
	sr = sr.Intersect(src.Bounds())
	dr := sr.Add(dp.Sub(sr.Min)).Intersect(dst.Bounds())
	if dr.Empty() {
		return
	}
	sr = dr.Sub(dp.Sub(sr.Min))

	buf := make([]byte, dr.Dx())
	for y := range dr.Dy() {
		src.Row(sr.Min.X, sr.Min.Y+y, buf)
		dst.SetRow(dr.Min.X, dr.Min.Y+y, buf)
	}
}

// Crop returns a new manager holding a copy of r (clipped to the canvas).
func (m *Manager) Crop(r image.Rectangle) *Manager {
	r = r.Intersect(m.Bounds())
	c := NewWithPool(r.Dx(), r.Dy(), m.pool)
	Copy(c, image.Point{}, m, r)
	return c
}

// Equal reports whether both managers have the same size and pixels.
func (m *Manager) Equal(o *Manager) bool {
	if m.width != o.width || m.height != o.height {
		return false
	}
	a := make([]byte, m.width)
	b := make([]byte, m.width)
	for y := range m.height {
		m.Row(0, y, a)
		o.Row(0, y, b)
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}
	return true
}

// Dirty returns the tiles written since the last ClearDirty.
func (m *Manager) Dirty() *DirtyRegion {
	return m.dirty
}

// DirtyBounds returns the pixel rectangle covering every dirty tile.
func (m *Manager) DirtyBounds() image.Rectangle {
	return m.dirty.Bounds(m.width, m.height)
}

// ClearDirty marks every tile clean.
func (m *Manager) ClearDirty() {
	m.dirty.Clear()
}
