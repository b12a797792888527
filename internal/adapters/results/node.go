package results

import (
	"context"

	"github.com/gantrybuild/gantry/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.results"

func init() {
	graft.Register(graft.Node[ports.ResultSink]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ResultSink, error) {
			return NewHolder(), nil
		},
	})
}
