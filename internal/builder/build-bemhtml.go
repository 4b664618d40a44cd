package builder

// bemhtmlDefaults are the BEMHTML flavor defaults, producing the markup
// template bundle for one language.
var bemhtmlDefaults = TechOptions{
	Target:         "?.bemhtml.{lang}.js",
	FilesTarget:    "?.files",
	KeysetsTarget:  "?.keysets.{lang}.json",
	SourceSuffixes: []string{".bemhtml", ".bemhtml.js"},
	ExportName:     "BEMHTML",
}

// NewBEMHTML builds the localized BEMHTML tech for one language target.
func NewBEMHTML(b *Builder, opts TechOptions) (*I18NTech, error) {
	applyDefaults(&opts, bemhtmlDefaults)
	return newI18NTech(b, "bemhtml", opts)
}
