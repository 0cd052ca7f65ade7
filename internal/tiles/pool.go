package tiles

import "sync"

// Pool provides reuse of Tile instances via sync.Pool.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	// pools holds separate sync.Pool instances for edge tile sizes.
	// Key format: (width << 16) | height
	pools sync.Map

	// full is the dedicated pool for full-size tiles (64x64).
	full sync.Pool
}

// NewPool creates a new tile pool.
func NewPool() *Pool {
	p := &Pool{}
	p.full.New = func() any {
		return &Tile{
			Width:  TileWidth,
			Height: TileHeight,
			Data:   make([]byte, TileBytes),
		}
	}
	return p
}

// Get retrieves a zeroed tile of the given size holding one reference.
// Returns nil for non-positive dimensions.
func (p *Pool) Get(width, height int) *Tile {
	if width <= 0 || height <= 0 {
		return nil
	}

	var tile *Tile
	if width == TileWidth && height == TileHeight {
		tile = p.full.Get().(*Tile)
	} else {
		tile = p.sized(poolKey(width, height), width, height).Get().(*Tile)
	}
	tile.Reset()
	tile.X = 0
	tile.Y = 0
	tile.refs.Store(1)
	return tile
}

// Put returns a tile to the pool. Tiles still referenced elsewhere must not
// be returned. A nil tile is ignored.
func (p *Pool) Put(tile *Tile) {
	if tile == nil {
		return
	}
	tile.refs.Store(0)

	if tile.Width == TileWidth && tile.Height == TileHeight {
		p.full.Put(tile)
		return
	}
	if pool, ok := p.pools.Load(poolKey(tile.Width, tile.Height)); ok {
		pool.(*sync.Pool).Put(tile)
	}
}

// poolKey creates a unique key for a tile size.
func poolKey(width, height int) uint32 {
	return uint32(width&0xFFFF)<<16 | uint32(height&0xFFFF) //nolint:gosec // masked above
}

// sized gets or creates the sync.Pool for edge tiles of the given size.
func (p *Pool) sized(key uint32, width, height int) *sync.Pool {
	if pool, ok := p.pools.Load(key); ok {
		return pool.(*sync.Pool)
	}

	newPool := &sync.Pool{
		New: func() any {
			return &Tile{
				Width:  width,
				Height: height,
				Data:   make([]byte, width*height),
			}
		},
	}
	actual, _ := p.pools.LoadOrStore(key, newPool)
	return actual.(*sync.Pool)
}

// defaultPool is shared by every Manager created with New.
var defaultPool = NewPool()
