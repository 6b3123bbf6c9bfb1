package assets

import (
	"fmt"
	"sync"
)

// Key returns the cache key for a brick: "col-row".
func Key(col, row int) string {
	return fmt.Sprintf("%d-%d", col, row)
}

// Cache holds the current sprite for each brick. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	sprites map[string]Sprite
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{sprites: make(map[string]Sprite)}
}

// Get returns the sprite cached for a brick.
func (c *Cache) Get(col, row int) (Sprite, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sprites[Key(col, row)]
	return s, ok
}

// Lookup returns the colour of the sprite cached for a brick.
func (c *Cache) Lookup(col, row int) (string, bool) {
	s, ok := c.Get(col, row)
	return s.Hex, ok
}

// Put stores or replaces the sprite for a brick.
func (c *Cache) Put(col, row int, s Sprite) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sprites[Key(col, row)] = s
}

// Len returns the number of cached sprites.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sprites)
}

// Clear drops every sprite.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.sprites)
}
