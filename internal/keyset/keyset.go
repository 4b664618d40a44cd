// Package keyset reads and parses pre-built per-language keyset bundles.
// A bundle file is a JSON or YAML document of the form
//
//	{"version": 2, "keysets": {"en": {"greeting": {"hello": "Hello"}}}}
//
// The empty keyset name holds shared core helper definitions.
package keyset

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"

	"github.com/enb/bemfront/internal/cache"
	"github.com/enb/bemfront/internal/errs"
)

// Keysets maps keyset name -> key -> value for one language.
type Keysets map[string]map[string]any

// Bundle is a parsed keyset file.
type Bundle struct {
	Version int                `json:"version" yaml:"version"`
	Keysets map[string]Keysets `json:"keysets" yaml:"keysets"`
}

// Lang returns the keysets for one language identifier. A language absent
// from the bundle yields an empty set, lookups then fall back to the key
// itself at evaluation time.
func (b *Bundle) Lang(lang string) Keysets {
	if ks, ok := b.Keysets[lang]; ok {
		return ks
	}
	return Keysets{}
}

// Read returns the raw contents of the keyset file at path, memoized in
// the build cache under the eventual output target.
func Read(path string, c *cache.Cache, target string) ([]byte, error) {
	raw, err := c.ReadFile(target+"/keysets", path)
	if err != nil {
		return nil, &errs.FileReadError{Path: path, Err: err}
	}
	return raw, nil
}

// Parse decodes raw keyset contents. JSON is tried first, then YAML; a
// document readable by neither fails with the decoder error kept verbatim.
// A bundle without an explicit version is treated as version 2.
func Parse(path string, raw []byte) (*Bundle, error) {
	var b Bundle

	jerr := json.Unmarshal(raw, &b)
	if jerr != nil {
		if yerr := yaml.Unmarshal(raw, &b); yerr != nil {
			return nil, &errs.KeysetParseError{Path: path, Err: jerr}
		}
	}

	if b.Version < 0 {
		return nil, &errs.KeysetParseError{Path: path, Err: errInvalidVersion}
	}
	if b.Version == 0 {
		b.Version = 2
	}
	if b.Keysets == nil {
		b.Keysets = make(map[string]Keysets)
	}

	return &b, nil
}

var errInvalidVersion = errors.New("invalid keyset version")
