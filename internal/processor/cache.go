package processor

import (
	"sync"

	"codeberg.org/snonux/gallifreyan/internal/layout"
	"codeberg.org/snonux/gallifreyan/internal/transliterate"
)

type cachedLayout struct {
	tokens []transliterate.Token
	layout *layout.WordLayout
}

// LayoutCache stores computed layouts keyed by spelling. Cached layouts are
// shared and must not be modified.
type LayoutCache struct {
	mu      sync.RWMutex
	layouts map[string]cachedLayout
}

// NewLayoutCache creates a new layout cache
func NewLayoutCache() *LayoutCache {
	return &LayoutCache{
		layouts: make(map[string]cachedLayout),
	}
}

// Add adds a layout to the cache
func (c *LayoutCache) Add(spelling string, tokens []transliterate.Token, wl *layout.WordLayout) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.layouts[spelling] = cachedLayout{tokens: tokens, layout: wl}
}

// Get retrieves a layout from the cache
func (c *LayoutCache) Get(spelling string) ([]transliterate.Token, *layout.WordLayout, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.layouts[spelling]
	return entry.tokens, entry.layout, ok
}

// Len returns the number of cached layouts
func (c *LayoutCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.layouts)
}
