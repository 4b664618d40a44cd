package filelist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enb/bemfront/internal/errs"
)

func TestDedupeKeepsFirstOccurrence(t *testing.T) {
	got := Dedupe([]string{"a.bemhtml", "b.bemhtml", "a.bemhtml", "c.bemhtml", "b.bemhtml"})
	assert.Equal(t, []string{"a.bemhtml", "b.bemhtml", "c.bemhtml"}, got)
}

func TestDedupeEmpty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}

func TestReadKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bemhtml")
	b := filepath.Join(dir, "b.bemhtml")
	require.NoError(t, os.WriteFile(a, []byte("block('a')"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("block('b')"), 0644))

	entries, err := Read([]string{b, a})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, b, entries[0].Path)
	assert.Equal(t, "block('b')", entries[0].Contents)
	assert.Equal(t, a, entries[1].Path)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read([]string{filepath.Join(t.TempDir(), "nope.bemhtml")})
	require.Error(t, err)
	assert.True(t, errs.IsFileRead(err))
}

func TestScanFiltersBySuffix(t *testing.T) {
	dir := t.TempDir()
	level := filepath.Join(dir, "blocks")
	require.NoError(t, os.MkdirAll(filepath.Join(level, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(level, "a.bemhtml"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(level, "b.css"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(level, "sub", "c.bemhtml.js"), nil, 0644))

	got, err := Scan([]string{level}, []string{".bemhtml", ".bemhtml.js"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(level, "a.bemhtml"),
		filepath.Join(level, "sub", "c.bemhtml.js"),
	}, got)
}

func TestScanSkipsMissingLevel(t *testing.T) {
	dir := t.TempDir()
	level := filepath.Join(dir, "blocks")
	require.NoError(t, os.MkdirAll(level, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(level, "a.bemtree"), nil, 0644))

	got, err := Scan([]string{filepath.Join(dir, "missing"), level}, []string{".bemtree"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFromListFile(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "index.files")
	content := "# resolved upstream\na.bemhtml\n\nsub/b.bemhtml\n"
	require.NoError(t, os.WriteFile(list, []byte(content), 0644))

	got, err := FromListFile(list)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.bemhtml"),
		filepath.Join(dir, "sub", "b.bemhtml"),
	}, got)
}

func TestFromListFileMissing(t *testing.T) {
	_, err := FromListFile(filepath.Join(t.TempDir(), "index.files"))
	require.Error(t, err)
	assert.True(t, errs.IsFileRead(err))
}
