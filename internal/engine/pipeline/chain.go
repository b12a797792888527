package pipeline

import (
	"context"
	"slices"

	"github.com/gantrybuild/gantry/internal/core/ports"
)

// Chain is an ordered, immutable sequence of interceptors composed around a
// node's run step. The first interceptor is the outermost wrapper.
type Chain struct {
	interceptors []ports.Interceptor
}

// NewChain builds a chain from the given interceptors, keeping their order.
func NewChain(interceptors ...ports.Interceptor) *Chain {
	return &Chain{interceptors: slices.Clone(interceptors)}
}

// Run invokes terminal wrapped by every interceptor's around hook via
// continuation passing: the first interceptor wraps the second, which wraps
// the third, terminating in the given continuation.
func (c *Chain) Run(ctx context.Context, ac ports.ActivityContext, terminal ports.Continuation) error {
	next := terminal
	for i := len(c.interceptors) - 1; i >= 0; i-- {
		interceptor := c.interceptors[i]
		inner := next
		next = func(ctx context.Context) error {
			return interceptor.RunAroundActivity(ctx, ac, inner)
		}
	}
	return next(ctx)
}

// DependenciesFailed invokes every interceptor's failed-dependencies hook in
// list order. A failing hook does not stop the pass; the error of the last
// failing hook is returned.
func (c *Chain) DependenciesFailed(ctx context.Context, ac ports.ActivityContext) error {
	var last error
	for _, interceptor := range c.interceptors {
		if err := interceptor.HandleFailedDependencies(ctx, ac); err != nil {
			last = err
		}
	}
	return last
}

// BeforeStarted invokes every interceptor's before hook in list order. A
// failing hook does not stop the pass; the error of the last failing hook
// is returned.
func (c *Chain) BeforeStarted(ctx context.Context, ac ports.ActivityContext) error {
	var last error
	for _, interceptor := range c.interceptors {
		if err := interceptor.BeforeActivityStarted(ctx, ac); err != nil {
			last = err
		}
	}
	return last
}

// AfterFinished invokes every interceptor's after hook in list order, not
// reversed. A failing hook does not stop the pass; the error of the last
// failing hook is returned.
func (c *Chain) AfterFinished(ctx context.Context, ac ports.ActivityContext) error {
	var last error
	for _, interceptor := range c.interceptors {
		if err := interceptor.AfterActivityFinished(ctx, ac); err != nil {
			last = err
		}
	}
	return last
}
