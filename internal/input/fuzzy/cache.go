package fuzzy

import (
	"container/list"
	"sync"
)

// Cache is an LRU cache of query results. It is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*list.Element
	lru     *list.List
}

type cacheEntry struct {
	query   string
	results []Result
}

// NewCache creates an LRU cache holding up to maxSize queries.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = 64
	}
	return &Cache{
		maxSize: maxSize,
		entries: make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// Get returns the cached results for query, or nil on a miss. The
// returned slice is a copy.
func (c *Cache) Get(query string) []Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[query]
	if !ok {
		return nil
	}
	c.lru.MoveToFront(elem)

	cached := elem.Value.(*cacheEntry).results
	out := make([]Result, len(cached))
	copy(out, cached)
	return out
}

// Set stores results for query, evicting the least recently used entry
// when full.
func (c *Cache) Set(query string, results []Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make([]Result, len(results))
	copy(stored, results)

	if elem, ok := c.entries[query]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*cacheEntry).results = stored
		return
	}

	if c.lru.Len() >= c.maxSize {
		oldest := c.lru.Back()
		if oldest != nil {
			c.lru.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).query)
		}
	}

	c.entries[query] = c.lru.PushFront(&cacheEntry{query: query, results: stored})
}

// Clear drops all cached entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.lru.Init()
}

// Len returns the number of cached queries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}
