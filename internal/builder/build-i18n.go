package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/enb/bemfront/internal/errs"
	"github.com/enb/bemfront/internal/filelist"
	"github.com/enb/bemfront/internal/i18n"
	"github.com/enb/bemfront/internal/keyset"
	"github.com/enb/bemfront/internal/tlogger"
	"github.com/enb/bemfront/internal/xjst"
)

// TechOptions configures one localized template bundle target. Lang is
// required; every other field has a flavor default.
type TechOptions struct {
	Lang           string
	Target         string            // output file name, "?" is the node name, "{lang}" the language
	FilesTarget    string            // upstream-resolved file list, used when present
	KeysetsTarget  string            // keyset bundle file name
	SourceSuffixes []string          // accepted template file extensions
	ExportName     string            // name of the shared template-evaluation export
	Compat         bool              // legacy global exposure
	DevMode        bool              // skip minification for faster iteration
	Cache          bool              // reuse previously compiled output when unchanged
	Requires       map[string]string // external modules visible inside generated code
}

// I18NTech merges localized template sources with a pre-built keyset
// bundle into one compiled bundle exposing the i18n helper on the shared
// evaluation context.
type I18NTech struct {
	name    string
	builder *Builder
	opts    TechOptions

	target     string
	filesPath  string
	keysetPath string
}

func newI18NTech(b *Builder, name string, opts TechOptions) (*I18NTech, error) {
	if opts.Lang == "" {
		return nil, &errs.MissingConfigurationError{Tech: name, Option: "lang"}
	}
	if _, err := language.Parse(opts.Lang); err != nil {
		return nil, fmt.Errorf("%s: invalid language %q: %w", name, opts.Lang, err)
	}

	node := b.Config.Node
	t := &I18NTech{name: name, builder: b, opts: opts}
	t.target = expandTarget(opts.Target, node, opts.Lang)
	t.filesPath = filepath.Join(b.RootFolder, expandTarget(opts.FilesTarget, node, opts.Lang))
	t.keysetPath = filepath.Join(b.RootFolder, b.Config.KeysetsDir, expandTarget(opts.KeysetsTarget, node, opts.Lang))
	return t, nil
}

func (t *I18NTech) Name() string { return t.name }

func (t *I18NTech) Target() string { return t.target }

// list resolves the ordered template source paths: the upstream file list
// when one exists, a level scan otherwise.
func (t *I18NTech) list() ([]string, error) {
	if _, err := os.Stat(t.filesPath); err == nil {
		return filelist.FromListFile(t.filesPath)
	}

	levels := make([]string, 0, len(t.builder.Config.Levels))
	for _, l := range t.builder.Config.Levels {
		levels = append(levels, filepath.Join(t.builder.RootFolder, l))
	}
	return filelist.Scan(levels, t.opts.SourceSuffixes)
}

func (t *I18NTech) Build(ctx context.Context) ([]byte, error) {
	tlogger.Debug("tech", t.name, "msg", "processing", "target", t.target)

	paths, err := t.list()
	if err != nil {
		return nil, err
	}

	// No templates means no runtime scaffolding either; the keyset is not
	// read on this path.
	if len(paths) == 0 {
		tlogger.Debug("tech", t.name, "msg", "no sources, emitting placeholder", "target", t.target)
		return xjst.MockBundle(t.opts.ExportName), nil
	}

	var entries []filelist.Entry
	var i18nFn string

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = filelist.Read(filelist.Dedupe(paths))
		if err != nil {
			tlogger.Error("tech", t.name, "msg", "file error", "target", t.target, "err", err)
			return err
		}
		for i := range entries {
			entries[i].Contents = string(replaceWindowsCarriageReturn([]byte(entries[i].Contents)))
		}
		return nil
	})
	g.Go(func() error {
		raw, err := keyset.Read(t.keysetPath, t.builder.Cache, t.target)
		if err != nil {
			tlogger.Error("tech", t.name, "msg", "keyset file error", "file", t.keysetPath, "err", err)
			return err
		}
		bundle, err := keyset.Parse(t.keysetPath, raw)
		if err != nil {
			tlogger.Error("tech", t.name, "msg", "keyset parse error", "file", t.keysetPath, "err", err)
			return err
		}
		i18nFn, err = i18n.Compile(i18n.Core, bundle.Lang(t.opts.Lang), i18n.Options{
			Version:  bundle.Version,
			Language: t.opts.Lang,
		})
		if err != nil {
			return &errs.CompilationError{Target: t.target, Err: err}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries = append(entries, filelist.Entry{
		Path:     filepath.Join("__i18n__", t.opts.Lang+".js"),
		Contents: initSource(i18nFn),
	})

	if t.opts.Cache && !t.opts.DevMode {
		if out, ok := t.reuse(entries); ok {
			tlogger.Debug("tech", t.name, "msg", "target unchanged, reusing", "target", t.target)
			return out, nil
		}
	}

	out, err := xjst.Compile(entries, xjst.Options{
		ExportName: t.opts.ExportName,
		Compat:     t.opts.Compat,
		DevMode:    t.opts.DevMode,
		Requires:   t.opts.Requires,
	})
	if err != nil {
		tlogger.Error("tech", t.name, "msg", "compiler error", "target", t.target, "err", err)
		return nil, &errs.CompilationError{Target: t.target, Err: err}
	}

	if t.opts.Cache && !t.opts.DevMode {
		t.builder.Cache.Put(t.target, fingerprint(entries, t.opts))
	}

	return out, nil
}

func (t *I18NTech) reuse(entries []filelist.Entry) ([]byte, bool) {
	stored, ok := t.builder.Cache.Get(t.target)
	if !ok || stored != fingerprint(entries, t.opts) {
		return nil, false
	}
	out, err := os.ReadFile(filepath.Join(t.builder.OutputDir, t.target))
	if err != nil {
		return nil, false
	}
	return out, true
}

// initSource is the one synthetic source entry appended after all
// templates. It registers the compiled lookup function as the i18n helper
// on the shared evaluation context through the runtime's init hook, so
// templates can call this.i18n(...) at evaluation time.
func initSource(i18nFn string) string {
	var b strings.Builder
	b.WriteString("oninit(function (exports, context) {\n")
	b.WriteString("var Context = exports.BEMContext || context.BEMContext;\n")
	b.WriteString("Context.registerHelper('i18n', ")
	b.WriteString(i18nFn)
	b.WriteString(");\n});\n")
	return b.String()
}
