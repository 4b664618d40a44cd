package xjst

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enb/bemfront/internal/filelist"
)

func devSources() []filelist.Entry {
	return []filelist.Entry{
		{Path: "a.bemhtml", Contents: "exports.BEMHTML = { apply: function () { return 'a'; } };"},
		{Path: "b.bemhtml", Contents: "exports.BEMHTML.b = function () { return 'b'; };"},
	}
}

func TestCompileKeepsSourceOrder(t *testing.T) {
	out, err := Compile(devSources(), Options{ExportName: "BEMHTML", DevMode: true})
	require.NoError(t, err)

	s := string(out)
	ia := strings.Index(s, "// source: a.bemhtml")
	ib := strings.Index(s, "// source: b.bemhtml")
	require.NotEqual(t, -1, ia)
	require.NotEqual(t, -1, ib)
	assert.Less(t, ia, ib)
}

func TestCompileExportsName(t *testing.T) {
	out, err := Compile(devSources(), Options{ExportName: "BEMTREE", DevMode: true})
	require.NoError(t, err)
	assert.Contains(t, string(out), `global["BEMTREE"] = exports["BEMTREE"] || exports;`)
}

func TestCompileRequires(t *testing.T) {
	out, err := Compile(devSources(), Options{
		ExportName: "BEMHTML",
		DevMode:    true,
		Requires:   map[string]string{"moment": "moment", "underscore": "_"},
	})
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `"moment": global["moment"],`)
	assert.Contains(t, s, `"underscore": global["_"],`)
	assert.Less(t, strings.Index(s, `"moment"`), strings.Index(s, `"underscore"`))
}

func TestCompileCompatExposesGlobal(t *testing.T) {
	out, err := Compile(devSources(), Options{ExportName: "BEMHTML", Compat: true, DevMode: true})
	require.NoError(t, err)

	s := string(out)
	// Both the CommonJS and the plain-global branch assign the global.
	assert.Equal(t, 2, strings.Count(s, `global["BEMHTML"] = exports["BEMHTML"] || exports;`))
}

func TestCompileProductionMinifies(t *testing.T) {
	dev, err := Compile(devSources(), Options{ExportName: "BEMHTML", DevMode: true})
	require.NoError(t, err)

	prod, err := Compile(devSources(), Options{ExportName: "BEMHTML", DevMode: false})
	require.NoError(t, err)

	assert.NotContains(t, string(prod), "// source:")
	assert.Less(t, len(prod), len(dev))
}

func TestMockBundle(t *testing.T) {
	out := MockBundle("BEMTREE")
	s := string(out)
	assert.Contains(t, s, `"BEMTREE"`)
	assert.Contains(t, s, "apply: function () { return ''; }")
	assert.NotContains(t, s, "oninit")
}

func TestMockBundleDefaultExport(t *testing.T) {
	assert.Contains(t, string(MockBundle("")), `"BEMHTML"`)
}
