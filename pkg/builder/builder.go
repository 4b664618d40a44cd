// Package builder is the public entry point for running a full build
// outside the bemfront CLI.
package builder

import (
	"context"

	internal "github.com/enb/bemfront/internal/builder"
	"github.com/enb/bemfront/pkg/config"
)

type Options struct {
	RootFolder string
	OutputDir  string
	Production bool // minify bundles instead of dev output
	Cache      bool // reuse unchanged targets, only outside dev mode
}

// Build runs every configured (flavor, language) target once.
func Build(ctx context.Context, cfg *config.Configuration, opts Options) error {
	b := internal.NewBuilder(cfg, opts.RootFolder)
	b.OutputDir = opts.OutputDir
	b.DevMode = !opts.Production
	b.UseCache = opts.Cache

	if err := b.Init(); err != nil {
		return err
	}
	return b.Build(ctx)
}
