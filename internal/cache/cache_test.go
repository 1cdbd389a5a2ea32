package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustJay7/court-record-ingest/internal/database"
)

func TestCacheGetSet(t *testing.T) {
	c := NewCache(10, time.Minute)
	key := CaseKey("acme", "GJAH010012342023")

	_, found := c.Get(key)
	assert.False(t, found)

	c.Set(key, &database.Case{TenantID: "acme", CNR: "GJAH010012342023"})
	got, found := c.Get(key)
	require.True(t, found)
	assert.Equal(t, "GJAH010012342023", got.CNR)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestCacheDeleteCountsEviction(t *testing.T) {
	c := NewCache(10, time.Minute)
	key := CaseKey("acme", "X1")
	c.Set(key, &database.Case{CNR: "X1"})

	c.Delete(key)
	c.Delete(key)

	_, found := c.Get(key)
	assert.False(t, found)
	assert.Equal(t, int64(1), c.Stats().Evictions)
}

func TestCacheBoundedSize(t *testing.T) {
	c := NewCache(2, time.Minute)
	for _, cnr := range []string{"A", "B", "C"} {
		c.Set(CaseKey("t", cnr), &database.Case{CNR: cnr})
		time.Sleep(10 * time.Millisecond)
	}

	assert.Equal(t, 2, c.Stats().Size)
	_, found := c.Get(CaseKey("t", "A"))
	assert.False(t, found)
	_, found = c.Get(CaseKey("t", "C"))
	assert.True(t, found)
}

func TestCaseKeyScopesTenant(t *testing.T) {
	assert.NotEqual(t, CaseKey("a", "X1"), CaseKey("b", "X1"))
	assert.Equal(t, "case:a:X1", CaseKey("a", "X1"))
}

func TestCacheClear(t *testing.T) {
	c := NewCache(10, time.Minute)
	c.Set(CaseKey("t", "A"), &database.Case{})
	c.Clear()
	assert.Equal(t, 0, c.Stats().Size)
}

func TestCacheSetIfCurrentSkipsAfterDelete(t *testing.T) {
	c := NewCache(10, time.Minute)
	key := CaseKey("t", "A")

	generation := c.Generation()
	c.Delete(key)
	assert.False(t, c.SetIfCurrent(key, &database.Case{CNR: "A"}, generation))
	_, found := c.Get(key)
	assert.False(t, found)

	generation = c.Generation()
	assert.True(t, c.SetIfCurrent(key, &database.Case{CNR: "A"}, generation))
	_, found = c.Get(key)
	assert.True(t, found)
}

func TestCacheClearAdvancesGeneration(t *testing.T) {
	c := NewCache(10, time.Minute)
	generation := c.Generation()
	c.Clear()
	assert.NotEqual(t, generation, c.Generation())
}
