package cache

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Belphemur/ReelRate/internal/config"
)

// ProviderConfig holds the configuration needed to create a cache instance.
type ProviderConfig struct {
	// Size is the maximum number of entries.
	Size int

	// TTL is the time-to-live for cache entries.
	TTL time.Duration

	// OnEvict is called when an entry is evicted.
	OnEvict EvictCallback

	// Logger receives error reports from cache operations. If nil, errors are dropped.
	Logger Logger

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	// KeyPrefix namespaces keys in shared backends. Defaults to defaultKeyPrefix.
	KeyPrefix string

	// Group labels the query_cache_evictions_total series. Empty disables the count.
	Group string
}

// Provider is a constructor function that creates a Cache from config.
type Provider func(cfg ProviderConfig) (Cache, error)

var (
	mu        sync.RWMutex
	providers = make(map[string]Provider)
)

// Register registers a cache provider under the given name.
// It panics if the name is already registered or the provider is nil.
func Register(name string, p Provider) {
	mu.Lock()
	defer mu.Unlock()

	if p == nil {
		panic("cache: Register provider is nil")
	}
	if _, exists := providers[name]; exists {
		panic(fmt.Sprintf("cache: provider %q already registered", name))
	}
	providers[name] = p
}

// New creates a new Cache using the named provider.
// When cfg.Group is set, evictions are counted under that label.
func New(name string, cfg ProviderConfig) (Cache, error) {
	mu.RLock()
	p, ok := providers[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("cache: unknown provider %q (registered: %v)", name, RegisteredProviders())
	}
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("cache: size must be positive, got %d", cfg.Size)
	}

	if cfg.Group == "" {
		return p(cfg)
	}

	group := cfg.Group
	original := cfg.OnEvict
	cfg.OnEvict = func(key string, value []byte) {
		EvictionsTotal.WithLabelValues(group).Inc()
		if original != nil {
			original(key, value)
		}
	}

	return p(cfg)
}

// queryGroup labels the metrics of the TMDB query cache.
const queryGroup = "tmdb_query"

// NewFromConfig builds the query cache described by the application configuration.
// A size of zero disables caching and returns a nil *QueryCache without error.
func NewFromConfig(cfg *config.Config) (*QueryCache, error) {
	if cfg.Cache.Size <= 0 {
		return nil, nil
	}

	ttl := 10 * time.Minute
	if cfg.Cache.TTL != "" {
		parsed, err := time.ParseDuration(cfg.Cache.TTL)
		if err != nil {
			return nil, fmt.Errorf("cache: invalid ttl %q: %w", cfg.Cache.TTL, err)
		}
		ttl = parsed
	}

	provider := cfg.Cache.Provider
	if provider == "" {
		provider = "memory"
	}

	logger := config.GetLogger()
	backend, err := New(provider, ProviderConfig{
		Size:          cfg.Cache.Size,
		TTL:           ttl,
		Logger:        zerologAdapter{},
		RedisAddress:  cfg.Redis.Address,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
		Group:         queryGroup,
		OnEvict: func(key string, _ []byte) {
			logger.Debug().Str("key", key).Msg("Query cache entry evicted")
		},
	})
	if err != nil {
		return nil, err
	}
	return NewQueryCache(backend, queryGroup), nil
}

// RegisteredProviders returns a sorted list of registered provider names.
func RegisteredProviders() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type zerologAdapter struct{}

func (zerologAdapter) Error(msg string, err error) {
	logger := config.GetLogger()
	logger.Error().Err(err).Msg(msg)
}
