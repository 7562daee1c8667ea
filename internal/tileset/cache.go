package tileset

import "sync"

// Cache is a read-only keyed cache of decoded tilesets, populated on first
// use. Entries are never mutated after population, so maps sharing a
// tileset name read identical data even across concurrent workers.
type Cache struct {
	resolver PathResolver

	mu       sync.RWMutex
	tilesets map[string]*Tileset
}

// NewCache creates a cache backed by the given path resolver.
func NewCache(resolver PathResolver) *Cache {
	return &Cache{
		resolver: resolver,
		tilesets: make(map[string]*Tileset),
	}
}

// Get returns the decoded tileset for name, loading it on first use.
// Failed loads are not cached; a map retried against the same broken
// tileset fails identically.
func (c *Cache) Get(name string) (*Tileset, error) {
	c.mu.RLock()
	ts, ok := c.tilesets[name]
	c.mu.RUnlock()
	if ok {
		return ts, nil
	}

	loaded, err := Load(name, c.resolver)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another worker may have won the race; keep the first entry so all
	// readers share one immutable copy.
	if ts, ok := c.tilesets[name]; ok {
		return ts, nil
	}
	c.tilesets[name] = loaded
	return loaded, nil
}

// Len returns the number of cached tilesets.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tilesets)
}
