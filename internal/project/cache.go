package project

import (
	"sync"

	"github.com/bloomreach-forge/addonctl/internal/addon"
)

// Cache holds the most recently resolved Context. It is keyed by project
// root: a Get against a different root discards the cached entry. Callers
// must Invalidate after every successful mutating operation so the next read
// rebuilds from disk.
type Cache struct {
	mu   sync.Mutex
	root string
	ctx  *Context
}

// Get returns the cached Context for root, resolving it when absent or when
// the cache belongs to another root.
func (c *Cache) Get(sys System, root string, catalog addon.Catalog) (*Context, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ctx != nil && c.root == root {
		return c.ctx, nil
	}
	ctx, err := Resolve(sys, root, catalog)
	if err != nil {
		return nil, err
	}
	c.root = root
	c.ctx = ctx
	return ctx, nil
}

// Invalidate drops the cached Context.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ctx = nil
}
