package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=interceptor.go -destination=mocks/mock_interceptor.go -package=mocks

// Continuation invokes the next layer of an interceptor chain, terminating in
// the wrapped activity's own run step.
type Continuation func(ctx context.Context) error

// Interceptor is a cross-cutting wrapper around a node's run step.
//
// For every phase the chain calls every interceptor in list order, even after
// one of them failed; the before/after hooks are never invoked when the
// node's dependencies failed.
type Interceptor interface {
	// HandleFailedDependencies is called instead of the run step when a
	// dependency failure propagated to the node.
	HandleFailedDependencies(ctx context.Context, ac ActivityContext) error

	// BeforeActivityStarted is called before the node's run step starts.
	// Any interceptor failing this hook prevents the run step from starting.
	BeforeActivityStarted(ctx context.Context, ac ActivityContext) error

	// RunAroundActivity wraps the run step. Implementations must call next
	// exactly once unless they deliberately replace the run step.
	RunAroundActivity(ctx context.Context, ac ActivityContext, next Continuation) error

	// AfterActivityFinished is called after the run step finished,
	// regardless of its outcome.
	AfterActivityFinished(ctx context.Context, ac ActivityContext) error
}
