package cache

import (
	"bytes"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

func init() {
	Register("memory", newMemoryCache)
}

// memoryCache keeps response bodies in an expirable LRU inside the process.
// Bodies are copied on Set, so callers may reuse their buffers.
type memoryCache struct {
	bodies *expirable.LRU[string, []byte]
}

func newMemoryCache(cfg ProviderConfig) (Cache, error) {
	return &memoryCache{
		bodies: expirable.NewLRU[string, []byte](cfg.Size, evictHook(cfg.OnEvict), cfg.TTL),
	}, nil
}

// evictHook adapts an EvictCallback to the LRU's generic callback type.
func evictHook(fn EvictCallback) expirable.EvictCallback[string, []byte] {
	if fn == nil {
		return nil
	}
	return func(key string, body []byte) { fn(key, body) }
}

func (m *memoryCache) Get(key string) ([]byte, bool) {
	return m.bodies.Get(key)
}

func (m *memoryCache) Set(key string, value []byte) {
	m.bodies.Add(key, bytes.Clone(value))
}

func (m *memoryCache) Contains(key string) bool {
	return m.bodies.Contains(key)
}

func (m *memoryCache) Remove(key string) bool {
	return m.bodies.Remove(key)
}

func (m *memoryCache) Len() int {
	return m.bodies.Len()
}

func (m *memoryCache) Close() error {
	return nil
}
