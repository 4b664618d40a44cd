// Package cache implements the build-level key-value cache threaded
// through the techs. Compile fingerprints are persisted to disk between
// runs; raw file reads are memoized in-process and invalidated by mtime.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

type fileEntry struct {
	mtime int64
	raw   []byte
}

type Cache struct {
	path string

	mu     sync.Mutex
	hashes map[string]string
	files  map[string]fileEntry
}

// Open loads the persistent fingerprint store at path. A missing or
// unreadable store starts empty, it is only an optimization.
func Open(path string) *Cache {
	c := &Cache{
		path:   path,
		hashes: make(map[string]string),
		files:  make(map[string]fileEntry),
	}

	f, err := os.Open(path)
	if err != nil {
		return c
	}
	defer f.Close()

	json.NewDecoder(f).Decode(&c.hashes)
	return c
}

// Get returns the stored fingerprint for a build target.
func (c *Cache) Get(target string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h, ok := c.hashes[target]
	return h, ok
}

// Put stores the fingerprint for a build target.
func (c *Cache) Put(target, hash string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hashes[target] = hash
}

// Save writes the fingerprint store back to disk.
func (c *Cache) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(c.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(c.hashes)
}

// ReadFile returns the contents of path, memoized under key for the
// lifetime of this cache. The entry is dropped when the file's mtime
// changes.
func (c *Cache) ReadFile(key, path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	mtime := info.ModTime().UnixNano()

	c.mu.Lock()
	if e, ok := c.files[key]; ok && e.mtime == mtime {
		c.mu.Unlock()
		return e.raw, nil
	}
	c.mu.Unlock()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.files[key] = fileEntry{mtime: mtime, raw: raw}
	c.mu.Unlock()

	return raw, nil
}
