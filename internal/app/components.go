package app

import (
	"github.com/dnflock/dnflock/internal/adapters/config"
	"github.com/dnflock/dnflock/internal/core/ports"
)

// Components bundles the fully wired application with the collaborators
// the CLI layer needs direct access to.
type Components struct {
	App    *App
	Config *config.Config
	Logger ports.Logger
}
