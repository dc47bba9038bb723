package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/afero"

	"github.com/Belphemur/ReelRate/internal/config"
)

// ProviderConfig holds the configuration needed to create a Store.
type ProviderConfig struct {
	// Path is the JSON document used by the file provider.
	Path string

	// Fs is the filesystem used by the file provider. Defaults to the OS filesystem.
	Fs afero.Fs

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	// Key is the redis key holding the session hash.
	Key string
}

// Provider is a constructor function that creates a Store from config.
type Provider func(cfg ProviderConfig) (Store, error)

var (
	mu        sync.RWMutex
	providers = make(map[string]Provider)
)

// Register registers a store provider under the given name.
// It panics if the name is already registered or the provider is nil.
func Register(name string, p Provider) {
	mu.Lock()
	defer mu.Unlock()

	if p == nil {
		panic("session: Register provider is nil")
	}
	if _, exists := providers[name]; exists {
		panic(fmt.Sprintf("session: provider %q already registered", name))
	}
	providers[name] = p
}

// New creates a Store using the named provider.
func New(name string, cfg ProviderConfig) (Store, error) {
	mu.RLock()
	p, ok := providers[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("session: unknown provider %q (registered: %v)", name, RegisteredProviders())
	}
	return p(cfg)
}

// NewFromConfig builds the Store selected by the application configuration.
func NewFromConfig(cfg *config.Config) (Store, error) {
	provider := cfg.Session.Provider
	if provider == "" {
		provider = "file"
	}

	path := cfg.Session.Path
	if provider == "file" && path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	return New(provider, ProviderConfig{
		Path:          path,
		RedisAddress:  cfg.Redis.Address,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
		Key:           cfg.Session.Key,
	})
}

// DefaultPath returns <user config dir>/reelrate/session.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("session: resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "reelrate", "session.json"), nil
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
