package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMissingFileKeepsDefaults(t *testing.T) {
	require.NoError(t, Init(filepath.Join(t.TempDir(), "bemfront.json")))

	assert.Equal(t, "bundles", Config.OutputDir)
	assert.Equal(t, "index", Config.Node)
	assert.Equal(t, []string{"en"}, Config.Languages)
	assert.Contains(t, Config.TechConfig, "bemhtml")
	assert.Contains(t, Config.TechConfig, "bemtree")
}

func TestInitOverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bemfront.json")
	contents := `{"node": "page", "languages": ["en", "ru"], "tech_config": {"bemhtml": {"compat": true}}}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	require.NoError(t, Init(path))

	assert.Equal(t, "page", Config.Node)
	assert.Equal(t, []string{"en", "ru"}, Config.Languages)
	assert.True(t, Config.TechConfig["bemhtml"].Compat)
}
