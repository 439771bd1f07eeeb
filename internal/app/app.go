// Package app orchestrates the dnflock operations on top of the engine
// and adapter layers.
package app

import (
	"io"
	"os"

	"github.com/dnflock/dnflock/internal/adapters/config"
	"github.com/dnflock/dnflock/internal/adapters/console"
	"github.com/dnflock/dnflock/internal/core/ports"
	"github.com/dnflock/dnflock/internal/engine/gather"
	"github.com/dnflock/dnflock/internal/engine/pool"
	"github.com/dnflock/dnflock/internal/engine/verify"
)

// App wires the operations exposed by the CLI. All state lives in the
// injected collaborators; App itself is stateless between calls.
type App struct {
	cfg       *config.Config
	logger    ports.Logger
	query     ports.QueryAdapter
	installer ports.Installer
	lists     ports.ListStore
	locks     ports.LockStore
	archiver  ports.Archiver

	gatherer *gather.Gatherer
	verifier *verify.Verifier

	out      io.Writer
	reporter *console.Reporter
}

// New creates the application.
func New(
	cfg *config.Config,
	logger ports.Logger,
	query ports.QueryAdapter,
	installer ports.Installer,
	lists ports.ListStore,
	locks ports.LockStore,
	archiver ports.Archiver,
) *App {
	a := &App{
		cfg:       cfg,
		logger:    logger,
		query:     query,
		installer: installer,
		lists:     lists,
		locks:     locks,
		archiver:  archiver,
		gatherer:  gather.New(query, logger),
		verifier:  verify.New(query),
	}
	a.SetOutput(os.Stdout)
	return a
}

// SetOutput redirects report and progress output. Used by tests.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
	a.reporter = console.NewReporter(w)
}

func (a *App) poolOptions() pool.Options {
	return pool.Options{
		ChunkSize:      a.cfg.ChunkSize,
		MaxConcurrency: a.cfg.Parallel,
	}
}

func (a *App) progress(label string) ports.ProgressRenderer {
	if !a.cfg.Progress {
		return console.Silent{}
	}
	return console.NewProgress(a.out, label)
}
