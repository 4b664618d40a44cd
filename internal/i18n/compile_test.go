package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enb/bemfront/internal/keyset"
)

func TestCompileEmbedsKeysets(t *testing.T) {
	ks := keyset.Keysets{"a": {"b": "hi"}}

	src, err := Compile(Core, ks, Options{Version: 2, Language: "en"})
	require.NoError(t, err)

	assert.Contains(t, src, `{"a":{"b":"hi"}}`)
	assert.Contains(t, src, `{"version": 2}`)
	assert.Contains(t, src, "function i18n(keysetName, keyName, params)")
	assert.True(t, strings.HasPrefix(src, "(function () {"))
	assert.True(t, strings.HasSuffix(src, "})()"))
}

func TestCompileVersionOne(t *testing.T) {
	src, err := Compile(Core, keyset.Keysets{}, Options{Version: 1, Language: "en"})
	require.NoError(t, err)
	assert.Contains(t, src, `{"version": 1}`)
}

func TestCompileRejectsUnknownVersion(t *testing.T) {
	_, err := Compile(Core, keyset.Keysets{}, Options{Version: 3, Language: "en"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported keysets version")
}

func TestCompileRequiresLanguage(t *testing.T) {
	_, err := Compile(Core, keyset.Keysets{}, Options{Version: 2})
	require.Error(t, err)
}

func TestCoreIsEmbedded(t *testing.T) {
	assert.Contains(t, Core, "function i18n(keysetName, keyName, params)")
	assert.Contains(t, Core, "keysetName + ':' + keyName")
}
