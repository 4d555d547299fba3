package cache

import (
	"strings"
	"sync"
	"time"
)

// FreshFor is the freshness window of the memory tier. An entry older than
// this is stale and is not served on the fresh read path.
const FreshFor = 5 * time.Minute

type memoryEntry struct {
	data     []byte
	storedAt time.Time
}

// MemoryCache is the in-process tier: raw response payloads keyed by the
// canonical key string, time-boxed by FreshFor.
//
// Individual operations are safe for concurrent use. Read-then-write
// sequences across calls are not atomic; concurrent fetches for the same key
// may both miss and the later write wins. Accepted for a read-mostly cache.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	now func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns the payload when an entry exists and is still fresh.
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) >= FreshFor {
		return nil, false
	}
	return entry.data, true
}

func (c *MemoryCache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{data: data, storedAt: c.now()}
}

func (c *MemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// DeletePrefix drops every entry whose key starts with prefix.
func (c *MemoryCache) DeletePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
}

func (c *MemoryCache) PurgeAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]memoryEntry)
}
