package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

func init() {
	Register("file", newFileStore)
}

// fileStore keeps the session in a small JSON document, the on-disk counterpart
// of a browser's local storage entry. Writes go through a temp file and a rename
// so a concurrent reader never sees a partial document.
type fileStore struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

func newFileStore(cfg ProviderConfig) (Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("session: file provider requires a path")
	}
	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &fileStore{fs: fs, path: cfg.Path}, nil
}

func (f *fileStore) Get(context.Context) (Session, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, false, nil
		}
		return Session{}, false, fmt.Errorf("session: read %s: %w", f.path, err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, false, fmt.Errorf("session: corrupt session file %s: %w", f.path, err)
	}
	if s.ID == "" {
		return Session{}, false, nil
	}
	return s, true, nil
}

func (f *fileStore) Set(_ context.Context, id string) (Session, error) {
	s := newSession(id)
	data, err := json.Marshal(s)
	if err != nil {
		return Session{}, fmt.Errorf("session: encode: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fs.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return Session{}, fmt.Errorf("session: create directory: %w", err)
	}

	tmp := f.path + ".tmp-" + uuid.NewString()
	if err := afero.WriteFile(f.fs, tmp, data, 0o600); err != nil {
		return Session{}, fmt.Errorf("session: write %s: %w", tmp, err)
	}
	if err := f.fs.Rename(tmp, f.path); err != nil {
		_ = f.fs.Remove(tmp)
		return Session{}, fmt.Errorf("session: replace %s: %w", f.path, err)
	}
	return s, nil
}

func (f *fileStore) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fs.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: remove %s: %w", f.path, err)
	}
	return nil
}

func (f *fileStore) Close() error {
	return nil
}
