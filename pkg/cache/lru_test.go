package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/zakhrafa/pkg/cache"
)

func TestLRU_GetAndPut(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[string, int](3)

	val, ok := c.Get("missing")
	assert.False(t, ok)
	assert.Zero(t, val)

	got, loaded := c.PutIfAbsent("a", 1)
	assert.False(t, loaded)
	assert.Equal(t, 1, got)

	got, loaded = c.PutIfAbsent("a", 2)
	assert.True(t, loaded)
	assert.Equal(t, 1, got, "the first value stays")

	val, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	hits, misses := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[string, int](2)
	c.PutIfAbsent("a", 1)
	c.PutIfAbsent("b", 2)

	_, _ = c.Get("a") // b is now the oldest
	c.PutIfAbsent("c", 3)

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestLRU_PanicsOnZeroCapacity(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { cache.NewLRU[string, int](0) })
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[int, int](8)
	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.PutIfAbsent(i%16, i)
			c.Get(i % 16)
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, c.Len())
}
