package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/enb/bemfront/internal/builder"
	"github.com/enb/bemfront/internal/server"
	"github.com/enb/bemfront/internal/tlogger"
	"github.com/enb/bemfront/pkg/config"
)

var CLI struct {
	Build CommandBuild `cmd:"" aliases:"b" help:"Builds or rebuilds every language target."`
	Serve CommandServe `cmd:"" aliases:"s" help:"Run a live dev server over the built bundles."`

	ConfigFile string `short:"c" help:"configuration file path (optional)"`
}

type CommandBuild struct {
	Root      string `help:"Project root." type:"existingdir"`
	OutputDir string `help:"Bundle output directory."`
	Lang      string `help:"Build only this language target."`

	Production bool `help:"Minified output instead of dev mode."`
	Cache      bool `help:"Reuse unchanged targets (production only)."`

	Verbose int `short:"v" help:"Print verbose output." type:"counter"`
}

type CommandServe struct {
	Root      string `help:"Project root." type:"existingdir"`
	OutputDir string `help:"Bundle output directory."`
	Build     bool   `negatable:"" default:"true" help:"Don't run build."`

	Port int `short:"p" help:"Listener port"`

	Verbose int `short:"v" help:"Print verbose output." type:"counter"`
}

func main() {
	ctx := kong.Parse(&CLI, kong.UsageOnError())

	err := config.Init(CLI.ConfigFile)
	if err != nil {
		log.Fatal(err)
	}

	err = ctx.Run(ctx)
	if err != nil {
		ctx.PrintUsage(false)
	}
}

func applyVerbose(v int) {
	switch v {
	case 0:
		tlogger.ApplyLogLevel("info")
	case 1:
		tlogger.ApplyLogLevel("debug")
	default:
		tlogger.ApplyLogLevel("all")
	}
}

func (r *CommandBuild) Run(ctx *kong.Context) error {
	applyVerbose(r.Verbose)

	if r.Root == "" {
		r.Root = "."
	}

	cfg := config.Config
	if r.Lang != "" {
		cfg.Languages = []string{r.Lang}
	}

	buildtool := builder.NewBuilder(cfg, r.Root)
	buildtool.OutputDir = r.OutputDir
	buildtool.DevMode = !r.Production
	buildtool.UseCache = r.Cache

	err := buildtool.Init()
	if err != nil {
		return err
	}

	err = buildtool.Build(context.Background())
	if err != nil {
		os.Exit(1)
	}

	return nil
}

func (r *CommandServe) Run(ctx *kong.Context) error {
	applyVerbose(r.Verbose)

	if r.Root == "" {
		r.Root = "."
	}
	if r.Port <= 0 {
		r.Port = config.Config.ServeConfig.Port
	}

	buildtool := builder.NewBuilder(config.Config, r.Root)
	buildtool.OutputDir = r.OutputDir

	serv := server.NewServer(buildtool, strconv.Itoa(r.Port), config.Config.ServeConfig.Redirect404)

	return serv.Start(r.Build)
}
