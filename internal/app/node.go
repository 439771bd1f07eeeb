package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/dnflock/dnflock/internal/adapters/archive"
	"github.com/dnflock/dnflock/internal/adapters/config"
	"github.com/dnflock/dnflock/internal/adapters/dnf"
	"github.com/dnflock/dnflock/internal/adapters/lockfile"
	"github.com/dnflock/dnflock/internal/adapters/logger"
	"github.com/dnflock/dnflock/internal/adapters/state"
	"github.com/dnflock/dnflock/internal/core/ports"
)

const (
	// AppNodeID identifies the main App node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID identifies the bundle handed to the CLI.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			dnf.QueryNodeID,
			dnf.InstallerNodeID,
			state.NodeID,
			lockfile.NodeID,
			archive.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*config.Config](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	query, err := graft.Dep[ports.QueryAdapter](ctx)
	if err != nil {
		return nil, err
	}
	installer, err := graft.Dep[ports.Installer](ctx)
	if err != nil {
		return nil, err
	}
	lists, err := graft.Dep[ports.ListStore](ctx)
	if err != nil {
		return nil, err
	}
	locks, err := graft.Dep[ports.LockStore](ctx)
	if err != nil {
		return nil, err
	}
	archiver, err := graft.Dep[ports.Archiver](ctx)
	if err != nil {
		return nil, err
	}
	return New(cfg, log, query, installer, lists, locks, archiver), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := graft.Dep[*config.Config](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{App: application, Config: cfg, Logger: log}, nil
}
