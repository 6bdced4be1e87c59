// Package main provides the entry point for the creational pattern demos.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/narvanalabs/creational/internal/demo"
	"github.com/narvanalabs/creational/internal/journal"
	"github.com/narvanalabs/creational/internal/prototype"
	"github.com/narvanalabs/creational/internal/singleton"
	"github.com/narvanalabs/creational/pkg/config"
	"github.com/narvanalabs/creational/pkg/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

// app wires configuration into a demo runner. The runner, and with it the
// journal registry, is built once, after flags have been parsed.
type app struct {
	out    io.Writer
	errOut io.Writer
	opts   *Options
	cfg    *config.Config
	runner *singleton.Lazy[*demo.Runner]
}

func newApp(out, errOut io.Writer) *app {
	a := &app{
		out:    out,
		errOut: errOut,
		opts:   &Options{},
	}
	a.runner = singleton.New(a.build)
	a.opts.bind(a)
	return a
}

// run parses args and executes the selected command.
func run(args []string, out, errOut io.Writer) error {
	a := newApp(out, errOut)

	parser := flags.NewParser(a.opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		fmt.Fprintln(errOut, err)
		return err
	}
	return nil
}

func (a *app) build() (*demo.Runner, error) {
	cfg, err := config.Load(a.flagOverrides)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	log := logger.New(a.errOut, logger.ParseLevel(cfg.LogLevel), cfg.JSONLogs())

	var catalog *prototype.Registry
	if cfg.CatalogPath != "" {
		catalog, err = prototype.LoadCatalogFile(cfg.CatalogPath, log)
	} else {
		catalog, err = prototype.DefaultCatalog(log)
	}
	if err != nil {
		return nil, err
	}

	log.Debug("configuration loaded",
		"log_path", cfg.LogPath,
		"catalog", cfg.CatalogPath,
		"prototypes", catalog.Len(),
	)

	return &demo.Runner{
		Out:     a.out,
		Journal: journal.NewRegistry(cfg.LogPath, log, journal.WithConsole(a.out)),
		Catalog: catalog,
		Log:     log,
	}, nil
}

// flagOverrides applies global flags on top of the environment.
func (a *app) flagOverrides(cfg *config.Config) {
	if a.opts.LogPath != "" {
		cfg.LogPath = a.opts.LogPath
	}
	if a.opts.Catalog != "" {
		cfg.CatalogPath = a.opts.Catalog
	}
}

// platform returns the explicit flag value or the configured default.
func (a *app) platform(flag string) string {
	if flag != "" {
		return flag
	}
	return a.cfg.Platform
}
