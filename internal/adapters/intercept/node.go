package intercept

import (
	"context"

	"github.com/gantrybuild/gantry/internal/adapters/logger"
	"github.com/gantrybuild/gantry/internal/adapters/telemetry"
	"github.com/gantrybuild/gantry/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// LoggingNodeID identifies the logging interceptor Graft node.
	LoggingNodeID graft.ID = "adapter.intercept_logging"
	// TracingNodeID identifies the tracing interceptor Graft node.
	TracingNodeID graft.ID = "adapter.intercept_tracing"
)

func init() {
	graft.Register(graft.Node[*Logging]{
		ID:        LoggingNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Logging, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLogging(log), nil
		},
	})

	graft.Register(graft.Node[*Tracing]{
		ID:        TracingNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*Tracing, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewTracing(tracer), nil
		},
	})
}
