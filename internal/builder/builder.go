package builder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/enb/bemfront/internal/cache"
	"github.com/enb/bemfront/internal/tlogger"
	"github.com/enb/bemfront/pkg/config"
)

func (b *Builder) Init() error {
	if b.RootFolder == "" {
		b.RootFolder = "."
	}
	if b.Config == nil {
		b.Config = config.Config
	}
	if b.OutputDir == "" {
		b.OutputDir = filepath.Join(b.RootFolder, b.Config.OutputDir)
	}

	if b.Cache == nil {
		b.Cache = cache.Open(filepath.Join(b.OutputDir, ".bemfront-cache.json"))
	}

	for _, level := range b.Config.Levels {
		if _, err := os.Stat(filepath.Join(b.RootFolder, level)); os.IsNotExist(err) {
			tlogger.Warn("msg", "Level folder not found", "path", level)
		}
	}

	if b.CurrentLanguage == "" {
		// Root builder: one sub-build per configured language.
		b.SubBuilders = make(map[string]*Builder, len(b.Config.Languages))
		for _, lang := range b.Config.Languages {
			sub := &Builder{
				RootFolder:      b.RootFolder,
				OutputDir:       b.OutputDir,
				CurrentLanguage: lang,
				DevMode:         b.DevMode,
				UseCache:        b.UseCache,
				Config:          b.Config,
				Cache:           b.Cache,
			}
			if err := sub.Init(); err != nil {
				return err
			}
			b.SubBuilders[lang] = sub
		}
		return nil
	}

	return b.initTechs()
}

func (b *Builder) initTechs() error {
	b.Techs = b.Techs[:0]

	names := make([]string, 0, len(b.Config.TechConfig))
	for name := range b.Config.TechConfig {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var t Tech
		var err error

		switch name {
		case "bemhtml":
			t, err = NewBEMHTML(b, b.techOptions(name))
		case "bemtree":
			t, err = NewBEMTREE(b, b.techOptions(name))
		default:
			tlogger.Warn("msg", "Unknown tech in config", "tech", name)
			continue
		}
		if err != nil {
			tlogger.Error("msg", "Tech init failed", "tech", name, "lang", b.CurrentLanguage, "err", err)
			return err
		}
		b.Techs = append(b.Techs, t)
	}

	return nil
}

func (b *Builder) techOptions(name string) TechOptions {
	tc := b.Config.TechConfig[name]
	return TechOptions{
		Lang:           b.CurrentLanguage,
		Target:         tc.Target,
		FilesTarget:    tc.FilesTarget,
		KeysetsTarget:  tc.KeysetsTarget,
		SourceSuffixes: tc.SourceSuffixes,
		ExportName:     tc.ExportName,
		Compat:         tc.Compat,
		DevMode:        b.DevMode,
		Cache:          b.UseCache,
		Requires:       tc.Requires,
	}
}

// Build runs every target. A failed target aborts only itself, sibling
// language targets still build; the joined error is returned at the end.
func (b *Builder) Build(ctx context.Context) error {
	tlogger.Info("msg", "Building started", "path", b.RootFolder)
	defer tlogger.Info("msg", "Building finished", "path", b.RootFolder)

	if err := os.MkdirAll(b.OutputDir, 0755); err != nil {
		tlogger.Error("msg", "Failed to create output folder", "path", b.OutputDir, "err", err)
		return err
	}

	var failures []error

	if b.CurrentLanguage == "" {
		for _, lang := range b.Config.Languages {
			sub := b.SubBuilders[lang]
			if err := sub.buildTechs(ctx); err != nil {
				failures = append(failures, err)
			}
		}
	} else if err := b.buildTechs(ctx); err != nil {
		failures = append(failures, err)
	}

	if err := b.Cache.Save(); err != nil {
		tlogger.Warn("msg", "Could not persist build cache", "err", err)
	}

	return errors.Join(failures...)
}

func (b *Builder) buildTechs(ctx context.Context) error {
	var failures []error

	for _, t := range b.Techs {
		out, err := t.Build(ctx)
		if err != nil {
			tlogger.Error("msg", "Error building target", "tech", t.Name(), "target", t.Target(), "err", err)
			failures = append(failures, err)
			continue
		}

		outPath := filepath.Join(b.OutputDir, t.Target())
		if err := os.WriteFile(outPath, out, 0644); err != nil {
			tlogger.Error("msg", "Output file creation", "file", outPath, "err", err)
			failures = append(failures, err)
			continue
		}
		tlogger.Debug("msg", "Target built", "tech", t.Name(), "target", t.Target())
	}

	return errors.Join(failures...)
}
