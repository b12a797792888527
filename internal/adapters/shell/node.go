package shell

import (
	"context"

	"github.com/gantrybuild/gantry/internal/adapters/logger"
	"github.com/gantrybuild/gantry/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.shell"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
