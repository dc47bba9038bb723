package cache

// EvictCallback is called when an entry is evicted from the cache.
// The redis provider reports evictions with a nil value.
type EvictCallback func(key string, value []byte)

// Logger receives errors from cache backends that cannot return them (Get/Set are fire-and-forget).
type Logger interface {
	Error(msg string, err error)
}

// Cache stores raw response bodies of non-gated reads, keyed by request path and query.
type Cache interface {
	// Get retrieves a value by key. Returns the value and true if found, or nil and false if not.
	Get(key string) ([]byte, bool)

	// Set stores a value with the given key, overwriting any previous value.
	Set(key string, value []byte)

	// Contains checks whether a key exists without refreshing its recency.
	Contains(key string) bool

	// Remove drops key and reports whether it was present. A removed entry is reported
	// through the eviction callback like any other entry leaving the cache.
	Remove(key string) bool

	// Len returns the number of live entries.
	Len() int

	// Close releases connections held by the backend.
	Close() error
}
