package state

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/dnflock/dnflock/internal/adapters/config"
	"github.com/dnflock/dnflock/internal/core/ports"
)

const NodeID graft.ID = "adapter.state"

func init() {
	graft.Register(graft.Node[ports.ListStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ListStore, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.StateDir), nil
		},
	})
}
