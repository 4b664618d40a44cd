// Package i18n generates the per-language lookup function embedded in
// compiled template bundles. The produced snippet is a self-contained JS
// expression evaluating to a function(keysetName, keyName, params).
package i18n

import (
	"fmt"
	"strings"

	_ "embed"

	"github.com/enb/bemfront/internal/helpers"
	"github.com/enb/bemfront/internal/keyset"
)

// Core is the shared lookup core every compiled snippet is built on.
//
//go:embed core.js
var Core string

// Options selects the keyset format version and the target language.
type Options struct {
	Version  int
	Language string
}

// Compile produces the lookup function source for one language. Version 1
// keysets are served as-is, version 2 adds {param} substitution at
// evaluation time.
func Compile(core string, keysets keyset.Keysets, opts Options) (string, error) {
	if opts.Language == "" {
		return "", fmt.Errorf("i18n: no language given")
	}
	if opts.Version != 1 && opts.Version != 2 {
		return "", fmt.Errorf("i18n: unsupported keysets version %d", opts.Version)
	}

	data, err := helpers.MarshalJson(keysets)
	if err != nil {
		return "", fmt.Errorf("i18n: encode keysets for %q: %w", opts.Language, err)
	}

	var b strings.Builder
	b.WriteString("(function () {\n'use strict';\nvar core = ")
	b.WriteString(strings.TrimSpace(core))
	b.WriteString(";\nreturn core(")
	b.Write(data)
	fmt.Fprintf(&b, ", {\"version\": %d});\n})()", opts.Version)

	return b.String(), nil
}
