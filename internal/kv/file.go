package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store persisted as one JSON object on disk. It suits the
// mobile build, where only an app data directory is available. The file is
// read on first use and rewritten on every change.
type File struct {
	mu     sync.Mutex
	path   string
	data   map[string]string
	loaded bool
}

// NewFile creates a store backed by the JSON file at path. The file and its
// directory are created on the first write.
func NewFile(path string) *File {
	return &File{path: path}
}

// SetPath points the store at another file. Cached data is dropped and
// reloaded from the new path on next use.
func (f *File) SetPath(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.path = path
	f.data = nil
	f.loaded = false
}

// Path returns the backing file path.
func (f *File) Path() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.path
}

func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return "", false, err
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *File) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return err
	}
	prev, had := f.data[key]
	f.data[key] = value
	if err := f.save(); err != nil {
		if had {
			f.data[key] = prev
		} else {
			delete(f.data, key)
		}
		return err
	}
	return nil
}

func (f *File) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return err
	}
	prev, had := f.data[key]
	if !had {
		return nil
	}
	delete(f.data, key)
	if err := f.save(); err != nil {
		f.data[key] = prev
		return err
	}
	return nil
}

// load reads the file once. A missing file is an empty store.
func (f *File) load() error {
	if f.loaded {
		return nil
	}
	f.data = make(map[string]string)

	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("kv: read %s: %w", f.path, err)
	}
	if err := json.Unmarshal(raw, &f.data); err != nil {
		return fmt.Errorf("kv: decode %s: %w", f.path, err)
	}
	f.loaded = true
	return nil
}

// save writes to a temp file and renames it over the old one.
func (f *File) save() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("kv: create directory: %w", err)
	}
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("kv: encode: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("kv: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("kv: replace %s: %w", f.path, err)
	}
	return nil
}

var _ Store = (*File)(nil)
