package telemetry

import (
	"context"

	"github.com/gantrybuild/gantry/internal/core/ports"
	"github.com/grindlemire/graft"
)

// TracerNodeID is the unique identifier for the telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			// Without an installed SDK provider these spans are non-recording,
			// so the default tracer costs close to nothing.
			return NewOTelTracer("gantry"), nil
		},
	})
}
