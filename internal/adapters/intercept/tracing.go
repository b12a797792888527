package intercept

import (
	"context"

	"github.com/gantrybuild/gantry/internal/core/ports"
)

// Tracing wraps the run step of every node in a child span.
type Tracing struct {
	tracer ports.Tracer
}

// NewTracing creates a tracing interceptor.
func NewTracing(tracer ports.Tracer) *Tracing {
	return &Tracing{tracer: tracer}
}

// HandleFailedDependencies is a no-op; the skip shows up on the node span.
func (t *Tracing) HandleFailedDependencies(_ context.Context, _ ports.ActivityContext) error {
	return nil
}

// BeforeActivityStarted is a no-op.
func (t *Tracing) BeforeActivityStarted(_ context.Context, _ ports.ActivityContext) error {
	return nil
}

// RunAroundActivity runs the next layer inside a span named after the
// activity's run step. The span replaces the node span in the context so
// command output lands on the innermost span.
func (t *Tracing) RunAroundActivity(ctx context.Context, ac ports.ActivityContext, next ports.Continuation) error {
	ctx, span := t.tracer.Start(ctx, "run "+ac.ActivityName())
	defer span.End()

	if err := next(ports.ContextWithSpan(ctx, span)); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// AfterActivityFinished is a no-op.
func (t *Tracing) AfterActivityFinished(_ context.Context, _ ports.ActivityContext) error {
	return nil
}
