// Package xjst assembles the ordered template source sequence into the
// final bundle. Sources are merged in order, wrapped for both CommonJS and
// plain-global consumers, and minified outside dev mode.
package xjst

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/js"

	"github.com/enb/bemfront/internal/filelist"
	"github.com/enb/bemfront/internal/helpers"
)

type Options struct {
	ExportName string
	Compat     bool // expose the export as a global even under CommonJS
	DevMode    bool
	Requires   map[string]string // module name -> global symbol
}

const mediatype = "application/javascript"

var minifier *minify.M

func init() {
	minifier = minify.New()
	minifier.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)
}

// Compile merges the ordered sources into one bundle. Order is preserved
// exactly, later definitions override earlier ones at evaluation time.
func Compile(sources []filelist.Entry, opts Options) ([]byte, error) {
	if opts.ExportName == "" {
		opts.ExportName = "BEMHTML"
	}

	name, err := helpers.MarshalJson(opts.ExportName)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("(function (global) {\n'use strict';\nvar exports = {};\n")

	if len(opts.Requires) > 0 {
		mods := make([]string, 0, len(opts.Requires))
		for mod := range opts.Requires {
			mods = append(mods, mod)
		}
		sort.Strings(mods)

		b.WriteString("var modules = {\n")
		for _, mod := range mods {
			mj, err := helpers.MarshalJson(mod)
			if err != nil {
				return nil, err
			}
			sj, err := helpers.MarshalJson(opts.Requires[mod])
			if err != nil {
				return nil, err
			}
			fmt.Fprintf(&b, "%s: global[%s],\n", mj, sj)
		}
		b.WriteString("};\n")
	}

	for _, src := range sources {
		fmt.Fprintf(&b, "// source: %s\n", src.Path)
		b.WriteString(src.Contents)
		if !strings.HasSuffix(src.Contents, "\n") {
			b.WriteByte('\n')
		}
	}

	fmt.Fprintf(&b, "if (typeof module !== 'undefined' && module.exports) {\nmodule.exports = exports;\n")
	if opts.Compat {
		fmt.Fprintf(&b, "global[%s] = exports[%s] || exports;\n", name, name)
	}
	fmt.Fprintf(&b, "} else {\nglobal[%s] = exports[%s] || exports;\n}\n", name, name)
	b.WriteString("})(typeof window !== 'undefined' ? window : this);\n")

	out := b.String()
	if !opts.DevMode {
		out, err = minifier.String(mediatype, out)
		if err != nil {
			return nil, err
		}
	}
	return []byte(out), nil
}

// MockBundle is the placeholder produced for an empty template set. It
// keeps the export's call surface without any runtime scaffolding.
func MockBundle(exportName string) []byte {
	if exportName == "" {
		exportName = "BEMHTML"
	}
	name, _ := helpers.MarshalJson(exportName)
	var b strings.Builder
	b.WriteString("(function (global) {\n'use strict';\n")
	b.WriteString("var api = { apply: function () { return ''; } };\n")
	fmt.Fprintf(&b, "if (typeof module !== 'undefined' && module.exports) {\nmodule.exports[%s] = api;\n", name)
	fmt.Fprintf(&b, "} else {\nglobal[%s] = api;\n}\n", name)
	b.WriteString("})(typeof window !== 'undefined' ? window : this);\n")
	return []byte(b.String())
}
