package dnf

import (
	"context"

	"go.trai.ch/zerr"
)

// Installer implements ports.Installer backed by dnf.
type Installer struct {
	run Runner
}

// NewInstaller creates an installer backed by dnf.
func NewInstaller(run Runner) *Installer {
	return &Installer{run: run}
}

// Install runs a single dnf install transaction for all specs. A single
// transaction lets dnf resolve shared dependencies once and keeps the
// operation atomic from the package manager's point of view.
func (i *Installer) Install(ctx context.Context, specs []string) error {
	if len(specs) == 0 {
		return nil
	}
	args := append([]string{"install", "-y"}, specs...)
	if _, err := i.run.Run(ctx, "dnf", args...); err != nil {
		return zerr.Wrap(err, "dnf install failed")
	}
	return nil
}
