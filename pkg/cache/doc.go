// Package cache provides a generic, thread-safe LRU cache.
//
// The cache evicts the least recently used entry once it holds more than
// its capacity. Keys must compare equal to themselves: a float NaN inside a
// key can never be found or evicted, so callers normalize such keys first.
//
//	c := cache.NewLRU[string, []string](256)
//	lines, loaded := c.PutIfAbsent(key, rendered)
//	hits, misses := c.Stats()
package cache
