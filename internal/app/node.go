package app

import (
	"context"

	"github.com/gantrybuild/gantry/internal/adapters/config"
	"github.com/gantrybuild/gantry/internal/adapters/intercept"
	"github.com/gantrybuild/gantry/internal/adapters/logger"
	"github.com/gantrybuild/gantry/internal/adapters/results"
	"github.com/gantrybuild/gantry/internal/adapters/shell"
	"github.com/gantrybuild/gantry/internal/adapters/telemetry"
	"github.com/gantrybuild/gantry/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the main App Graft node.
const NodeID graft.ID = "app.main"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			results.NodeID,
			shell.NodeID,
			intercept.LoggingNodeID,
			intercept.TracingNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			sink, err := graft.Dep[ports.ResultSink](ctx)
			if err != nil {
				return nil, err
			}

			factory, err := graft.Dep[*shell.Factory](ctx)
			if err != nil {
				return nil, err
			}

			logging, err := graft.Dep[*intercept.Logging](ctx)
			if err != nil {
				return nil, err
			}

			tracing, err := graft.Dep[*intercept.Tracing](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, log, tracer, sink, factory, logging, tracing), nil
		},
	})
}
