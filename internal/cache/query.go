package cache

import (
	"net/url"

	"github.com/Belphemur/ReelRate/internal/config"
)

// QueryKey identifies a non-gated read in the query cache: the API path plus its
// encoded query string. Credentials are never part of the key.
func QueryKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

// QueryCache stores raw response bodies of non-gated reads on top of a Cache backend.
// A lookup only counts as a hit once the stored body decodes; entries that no longer
// decode are removed so the next call refetches them.
//
// A nil *QueryCache is valid and caches nothing.
type QueryCache struct {
	backend Cache
	group   string
}

// NewQueryCache wraps backend and reports its hits, misses and entry count under group.
func NewQueryCache(backend Cache, group string) *QueryCache {
	registerEntriesCollector(group, backend.Len)
	return &QueryCache{backend: backend, group: group}
}

// Lookup loads the body stored under key and hands it to decode.
// It returns false on a miss or when decode rejects the body.
func (q *QueryCache) Lookup(key string, decode func(body []byte) error) bool {
	if q == nil {
		return false
	}

	body, ok := q.backend.Get(key)
	if !ok {
		MissesTotal.WithLabelValues(q.group).Inc()
		return false
	}
	if err := decode(body); err != nil {
		q.backend.Remove(key)
		MissesTotal.WithLabelValues(q.group).Inc()
		logger := config.GetLogger()
		logger.Warn().Err(err).Str("key", key).Msg("Dropped undecodable query cache entry")
		return false
	}

	HitsTotal.WithLabelValues(q.group).Inc()
	return true
}

// Store records body under key.
func (q *QueryCache) Store(key string, body []byte) {
	if q == nil {
		return
	}
	q.backend.Set(key, body)
}

// Len returns the number of live entries.
func (q *QueryCache) Len() int {
	if q == nil {
		return 0
	}
	return q.backend.Len()
}

// Close unregisters the entries collector and closes the backend.
func (q *QueryCache) Close() error {
	if q == nil {
		return nil
	}
	unregisterEntriesCollector(q.group)
	return q.backend.Close()
}
