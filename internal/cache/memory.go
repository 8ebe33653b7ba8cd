package cache

import (
	"context"
	"sync"
	"time"

	"riskradar/internal/model"
)

type memoryEntry struct {
	table     *model.PathwayTable
	expiresAt time.Time
}

type memoryTableCache struct {
	mu      sync.RWMutex
	entries map[model.Pathway]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryTableCache creates an in-memory table cache. now may be nil, in
// which case time.Now is used; tests inject a fake clock.
func NewMemoryTableCache(ttl time.Duration, now func() time.Time) TableCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if now == nil {
		now = time.Now
	}
	return &memoryTableCache{
		entries: make(map[model.Pathway]memoryEntry),
		ttl:     ttl,
		now:     now,
	}
}

func (c *memoryTableCache) Get(_ context.Context, pathway model.Pathway) (*model.PathwayTable, error) {
	c.mu.RLock()
	entry, ok := c.entries[pathway]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expiresAt) {
		return nil, nil
	}
	return entry.table, nil
}

func (c *memoryTableCache) Set(_ context.Context, table *model.PathwayTable) error {
	c.mu.Lock()
	c.entries[table.Pathway] = memoryEntry{
		table:     table,
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
	return nil
}

func (c *memoryTableCache) Clear(_ context.Context, pathway model.Pathway) error {
	c.mu.Lock()
	delete(c.entries, pathway)
	c.mu.Unlock()
	return nil
}

func (c *memoryTableCache) ClearAll(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[model.Pathway]memoryEntry)
	c.mu.Unlock()
	return nil
}
