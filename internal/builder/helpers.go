package builder

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/enb/bemfront/internal/filelist"
)

var windowCRregexp = regexp.MustCompile(`\r?\n`)

func replaceWindowsCarriageReturn(b []byte) []byte {
	return windowCRregexp.ReplaceAll(b, []byte("\n"))
}

// expandTarget substitutes the node name for "?" and the language for
// "{lang}" in a target pattern.
func expandTarget(pattern, node, lang string) string {
	out := strings.ReplaceAll(pattern, "?", node)
	return strings.ReplaceAll(out, "{lang}", lang)
}

// applyDefaults fills the zero fields of opts from the flavor defaults.
func applyDefaults(opts *TechOptions, defaults TechOptions) {
	if opts.Target == "" {
		opts.Target = defaults.Target
	}
	if opts.FilesTarget == "" {
		opts.FilesTarget = defaults.FilesTarget
	}
	if opts.KeysetsTarget == "" {
		opts.KeysetsTarget = defaults.KeysetsTarget
	}
	if len(opts.SourceSuffixes) == 0 {
		opts.SourceSuffixes = defaults.SourceSuffixes
	}
	if opts.ExportName == "" {
		opts.ExportName = defaults.ExportName
	}
}

// fingerprint covers everything the compiled output depends on: the
// ordered sources, the synthetic i18n entry and the compile options.
func fingerprint(entries []filelist.Entry, opts TechOptions) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%t\x00", opts.ExportName, opts.Lang, opts.Compat)

	mods := make([]string, 0, len(opts.Requires))
	for mod := range opts.Requires {
		mods = append(mods, mod)
	}
	sort.Strings(mods)
	for _, mod := range mods {
		fmt.Fprintf(h, "%s=%s\x00", mod, opts.Requires[mod])
	}

	for _, e := range entries {
		fmt.Fprintf(h, "%s\x00%s\x00", e.Path, e.Contents)
	}
	return hex.EncodeToString(h.Sum(nil))
}
