// Package main is the entry point for the dnflock CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/dnflock/dnflock/cmd/dnflock/commands"
	"github.com/dnflock/dnflock/internal/app"
	"github.com/dnflock/dnflock/internal/core/domain"
	_ "github.com/dnflock/dnflock/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrDriftDetected) {
			// The verify report has already been printed.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
