package dnf

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/dnflock/dnflock/internal/adapters/config"
	"github.com/dnflock/dnflock/internal/core/ports"
)

const (
	QueryNodeID     graft.ID = "adapter.dnf_query"
	InstallerNodeID graft.ID = "adapter.dnf_installer"
)

func init() {
	graft.Register(graft.Node[ports.QueryAdapter]{
		ID:        QueryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.QueryAdapter, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := NewRepoCache(cfg.RepoCachePath())
			if err != nil {
				return nil, err
			}
			return NewQuery(ExecRunner{}, cache), nil
		},
	})

	graft.Register(graft.Node[ports.Installer]{
		ID:        InstallerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Installer, error) {
			return NewInstaller(ExecRunner{}), nil
		},
	})
}
