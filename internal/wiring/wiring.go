// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/dnflock/dnflock/internal/adapters/archive"
	_ "github.com/dnflock/dnflock/internal/adapters/config"
	_ "github.com/dnflock/dnflock/internal/adapters/dnf"
	_ "github.com/dnflock/dnflock/internal/adapters/lockfile"
	_ "github.com/dnflock/dnflock/internal/adapters/logger"
	_ "github.com/dnflock/dnflock/internal/adapters/state"
	// Register the app node.
	_ "github.com/dnflock/dnflock/internal/app"
)
