package store

import (
	"sync"

	"genequest/backend/engine"
)

// Cache is a best-effort in-process mirror of progress records, used when
// the store is unreachable. Records are cloned on the way in and out so
// callers never share memory with the cache.
type Cache struct {
	mu      sync.RWMutex
	records map[string]*engine.Progress
}

func NewCache() *Cache {
	return &Cache{records: map[string]*engine.Progress{}}
}

func (c *Cache) Get(userID string) (*engine.Progress, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.records[userID]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

func (c *Cache) Put(p *engine.Progress) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[p.UserID] = p.Clone()
}
