package assets

import (
	"sync"
	"time"
)

type versionKey struct {
	name    string
	size    int64
	modTime time.Time
}

// versionCache remembers content hashes so an unchanged asset is only read
// once. Entries are keyed by size and modification time, so an edited file
// gets a new version on the next render.
type versionCache struct {
	mu      sync.RWMutex
	entries map[versionKey]string
}

func newVersionCache() *versionCache {
	return &versionCache{
		entries: make(map[versionKey]string),
	}
}

func (c *versionCache) get(key versionKey) (string, bool) {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	return v, ok
}

func (c *versionCache) set(key versionKey, version string) {
	c.mu.Lock()
	c.entries[key] = version
	c.mu.Unlock()
}

func (c *versionCache) clear() {
	c.mu.Lock()
	c.entries = make(map[versionKey]string)
	c.mu.Unlock()
}
