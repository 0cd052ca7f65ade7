package cache

// Cache holds at most limit values and evicts the least recently used one
// when full. Lookups scan linearly, which suits the few entries it is
// meant for.
type Cache[K comparable, V any] struct {
	entries []entry[K, V] // least recently used first
	limit   int
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a cache holding at most limit values. A limit below 1 is
// treated as 1.
func New[K comparable, V any](limit int) *Cache[K, V] {
	limit = max(limit, 1)
	return &Cache[K, V]{
		entries: make([]entry[K, V], 0, limit),
		limit:   limit,
	}
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if i := c.find(key); i >= 0 {
		return c.touch(i).value, true
	}
	var zero V
	return zero, false
}

// Set stores value under key, replacing any previous value.
func (c *Cache[K, V]) Set(key K, value V) {
	if i := c.find(key); i >= 0 {
		c.touch(i).value = value
		return
	}
	if len(c.entries) == c.limit {
		copy(c.entries, c.entries[1:])
		c.entries = c.entries[:len(c.entries)-1]
	}
	c.entries = append(c.entries, entry[K, V]{key: key, value: value})
}

// GetOrCreate returns the value for key, storing create() first when it
// is missing.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := create()
	c.Set(key, v)
	return v
}

// Clear drops every value.
func (c *Cache[K, V]) Clear() {
	clear(c.entries)
	c.entries = c.entries[:0]
}

// Len returns the number of stored values.
func (c *Cache[K, V]) Len() int { return len(c.entries) }

func (c *Cache[K, V]) find(key K) int {
	for i := range c.entries {
		if c.entries[i].key == key {
			return i
		}
	}
	return -1
}

// touch moves entry i to the most recently used end and returns it.
func (c *Cache[K, V]) touch(i int) *entry[K, V] {
	last := len(c.entries) - 1
	if i != last {
		e := c.entries[i]
		copy(c.entries[i:], c.entries[i+1:])
		c.entries[last] = e
	}
	return &c.entries[last]
}
