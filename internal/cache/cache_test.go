package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	c := Open(path)
	_, ok := c.Get("index.bemhtml.en.js")
	assert.False(t, ok)

	c.Put("index.bemhtml.en.js", "abc123")
	require.NoError(t, c.Save())

	c2 := Open(path)
	h, ok := c2.Get("index.bemhtml.en.js")
	require.True(t, ok)
	assert.Equal(t, "abc123", h)
}

func TestOpenMissingStoreStartsEmpty(t *testing.T) {
	c := Open(filepath.Join(t.TempDir(), "nope", "cache.json"))
	_, ok := c.Get("anything")
	assert.False(t, ok)
}

func TestReadFileMemoizesByMtime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keysets.json")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0644))

	info, err := os.Stat(path)
	require.NoError(t, err)
	mtime := info.ModTime()

	c := Open(filepath.Join(dir, "cache.json"))

	raw, err := c.ReadFile("k", path)
	require.NoError(t, err)
	assert.Equal(t, "one", string(raw))

	// Same mtime, the stale entry is served.
	require.NoError(t, os.WriteFile(path, []byte("two"), 0644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	raw, err = c.ReadFile("k", path)
	require.NoError(t, err)
	assert.Equal(t, "one", string(raw))

	// New mtime invalidates.
	later := mtime.Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, later, later))
	raw, err = c.ReadFile("k", path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(raw))
}

func TestReadFileMissing(t *testing.T) {
	c := Open(filepath.Join(t.TempDir(), "cache.json"))
	_, err := c.ReadFile("k", filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
