package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for progress rendering.
// It decouples telemetry collection from presentation logic, allowing the
// same event stream to drive different progress frontends.
//
//go:generate go run go.uber.org/mock/mockgen -source=render.go -destination=mocks/mock_render.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	Start(ctx context.Context) error

	// Stop flushes any buffered output and releases the underlying sink.
	Stop() error

	// OnPlan announces the planned activities in schedule order together
	// with their dependency names, before execution starts.
	OnPlan(activities []string, deps map[string][]string)

	// OnActivityStart reports a started span. The parent identifier is
	// empty for root spans.
	OnActivityStart(spanID, parentID, name string, startTime time.Time)

	// OnActivityLog streams log output attributed to a span.
	OnActivityLog(spanID string, data []byte)

	// OnActivityComplete reports a finished span. err is nil on success.
	OnActivityComplete(spanID string, endTime time.Time, err error)
}
