package builder

// bemtreeDefaults are the BEMTREE flavor defaults, producing the
// tree-structured template bundle for one language.
var bemtreeDefaults = TechOptions{
	Target:         "?.bemtree.{lang}.js",
	FilesTarget:    "?.files",
	KeysetsTarget:  "?.keysets.{lang}.json",
	SourceSuffixes: []string{".bemtree", ".bemtree.js"},
	ExportName:     "BEMTREE",
}

// NewBEMTREE builds the localized BEMTREE tech for one language target.
func NewBEMTREE(b *Builder, opts TechOptions) (*I18NTech, error) {
	applyDefaults(&opts, bemtreeDefaults)
	return newI18NTech(b, "bemtree", opts)
}
