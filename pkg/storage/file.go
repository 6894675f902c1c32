package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
)

// File is a durable key-value store persisted as a single JSON file,
// write-through on every Set. Suited to CLI and desktop telemetry clients
// that need session state to survive process restarts.
type File struct {
	mu        sync.Mutex
	path      string
	values    map[string]string
	healthy   bool
	persisted bool
}

// NewFile loads (or initializes) a file-backed store at path. A missing
// file starts empty; an unreadable or corrupt file fails construction with
// ErrCorruptFile.
func NewFile(path string) (*File, error) {
	f := &File{
		path:    path,
		values:  make(map[string]string),
		healthy: true,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, errors.Join(ErrCorruptFile, err)
	}
	if err := json.Unmarshal(data, &f.values); err != nil {
		return nil, errors.Join(ErrCorruptFile, err)
	}

	return f, nil
}

// Get returns the value for key.
func (f *File) Get(ctx context.Context, key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

// Set stores value under key and persists the whole store to disk.
func (f *File) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = value

	data, err := json.Marshal(f.values)
	if err != nil {
		f.healthy = false
		return err
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		f.healthy = false
		return errors.Join(ErrPersistFailed, err)
	}

	f.healthy = true
	return nil
}

// Available reflects the outcome of the most recent persist; a store that
// has never written yet reports available.
func (f *File) Available(ctx context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.healthy
}
