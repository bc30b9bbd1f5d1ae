package internal

const defaultMaxCacheSize = 8

// Cache is a small LRU keyed by string. Evicted values are handed to the
// release function, which is where native handles get closed.
type Cache[V any] struct {
	values  map[string]V
	order   []string // tracks insertion order for LRU eviction
	maxSize int
	release func(V)
}

func NewCache[V any](release func(V)) *Cache[V] {
	return NewCacheWithSize(defaultMaxCacheSize, release)
}

func NewCacheWithSize[V any](maxSize int, release func(V)) *Cache[V] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &Cache[V]{
		values:  make(map[string]V),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		release: release,
	}
}

func (c *Cache[V]) Get(key string) (V, bool) {
	if value, exists := c.values[key]; exists {
		// Move to end (most recently used)
		c.moveToEnd(key)
		return value, true
	}
	var zero V
	return zero, false
}

func (c *Cache[V]) Set(key string, value V) {
	// If key already exists, just update and move to end
	if old, exists := c.values[key]; exists {
		c.values[key] = value
		c.moveToEnd(key)
		if c.release != nil {
			c.release(old)
		}
		return
	}

	// Evict oldest if at capacity
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.values[key] = value
	c.order = append(c.order, key)
}

func (c *Cache[V]) Len() int {
	return len(c.order)
}

func (c *Cache[V]) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *Cache[V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if value, exists := c.values[oldest]; exists {
		delete(c.values, oldest)
		if c.release != nil {
			c.release(value)
		}
	}
}

// Purge releases every cached value.
func (c *Cache[V]) Purge() {
	if c.release != nil {
		for _, value := range c.values {
			c.release(value)
		}
	}
	c.values = make(map[string]V)
	c.order = c.order[:0]
}
