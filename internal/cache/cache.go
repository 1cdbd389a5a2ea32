package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/JustJay7/court-record-ingest/internal/database"
)

// Cache is the read-through cache in front of case lookups. Ingestion
// evicts a case's entry so the next read sees the replaced collections.
//
// A reader that loads from the store takes Generation before the load and
// stores the result with SetIfCurrent, so a copy read before an eviction is
// never put back.
type Cache interface {
	Get(key string) (*database.Case, bool)
	Set(key string, value *database.Case)
	Generation() uint64
	SetIfCurrent(key string, value *database.Case, generation uint64) bool
	Delete(key string)
	Clear()
	Stats() CacheStats
}

type CacheStats struct {
	Hits       int64     `json:"hits"`
	Misses     int64     `json:"misses"`
	Evictions  int64     `json:"evictions"`
	Size       int       `json:"size"`
	LastAccess time.Time `json:"last_access"`
}

type LRUCache struct {
	cache   *cache.Cache
	mu      sync.RWMutex
	stats   CacheStats
	maxSize int
	// generation advances on every Delete and Clear.
	generation uint64
}

func NewCache(maxSize int, ttl time.Duration) Cache {
	return &LRUCache{
		cache:   cache.New(ttl, ttl*2),
		maxSize: maxSize,
	}
}

func (c *LRUCache) Get(key string) (*database.Case, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.LastAccess = time.Now()

	if data, found := c.cache.Get(key); found {
		if record, ok := data.(*database.Case); ok {
			c.stats.Hits++
			return record, true
		}
	}

	c.stats.Misses++
	return nil, false
}

func (c *LRUCache) Set(key string, value *database.Case) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.set(key, value)
}

func (c *LRUCache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.generation
}

// SetIfCurrent stores value only if nothing was deleted since generation
// was read. It reports whether the value was stored.
func (c *LRUCache) SetIfCurrent(key string, value *database.Case, generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != generation {
		return false
	}
	c.set(key, value)
	return true
}

func (c *LRUCache) set(key string, value *database.Case) {
	if _, exists := c.cache.Get(key); !exists && c.maxSize > 0 && c.cache.ItemCount() >= c.maxSize {
		c.removeOldest()
	}

	c.cache.Set(key, value, cache.DefaultExpiration)
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, found := c.cache.Get(key); found {
		c.stats.Evictions++
	}
	c.cache.Delete(key)
	c.generation++
}

func (c *LRUCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Flush()
	c.stats = CacheStats{}
	c.generation++
}

func (c *LRUCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Size = c.cache.ItemCount()
	return c.stats
}

// removeOldest drops the entry closest to expiry, which is the one set
// longest ago since every entry shares the same TTL.
func (c *LRUCache) removeOldest() {
	var (
		oldestKey string
		oldest    int64
	)
	for key, item := range c.cache.Items() {
		if oldestKey == "" || item.Expiration < oldest {
			oldestKey = key
			oldest = item.Expiration
		}
	}

	if oldestKey != "" {
		c.cache.Delete(oldestKey)
		c.stats.Evictions++
	}
}

// CaseKey is the cache key of one tenant's case.
func CaseKey(tenantID, cnr string) string {
	return fmt.Sprintf("case:%s:%s", tenantID, cnr)
}
