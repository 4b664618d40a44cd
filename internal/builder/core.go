package builder

import (
	"context"

	"github.com/enb/bemfront/internal/cache"
	"github.com/enb/bemfront/pkg/config"
)

type Builder struct {
	RootFolder string
	OutputDir  string

	CurrentLanguage string

	DevMode  bool
	UseCache bool

	Config *config.Configuration
	Cache  *cache.Cache

	Techs []Tech

	SubBuilders map[string]*Builder // One sub-build per language
}

// Tech is one build task: it produces the contents of exactly one output
// target. Persisting the result is the builder's job.
type Tech interface {
	Name() string
	Target() string
	Build(ctx context.Context) ([]byte, error)
}

func NewBuilder(cfg *config.Configuration, rootFolder string) *Builder {
	return &Builder{
		RootFolder: rootFolder,
		Config:     cfg,
		DevMode:    true,
	}
}
