package archive

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/dnflock/dnflock/internal/core/ports"
)

const NodeID graft.ID = "adapter.archive"

func init() {
	graft.Register(graft.Node[ports.Archiver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Archiver, error) {
			return New(), nil
		},
	})
}
