package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/gantrybuild/gantry/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner executes a collection of wired nodes with bounded parallelism,
// scheduling each node once all of its dependencies are done. Dependents of
// a failed node still run so they can record the dependency failure.
type Runner struct {
	logger      ports.Logger
	tracer      ports.Tracer
	parallelism int
}

// NewRunner creates a Runner. parallelism caps the number of concurrently
// executing nodes and is clamped to at least one.
func NewRunner(logger ports.Logger, tracer ports.Tracer, parallelism int) *Runner {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Runner{
		logger:      logger,
		tracer:      tracer,
		parallelism: parallelism,
	}
}

// Run validates the graph, announces the plan, and drives every node
// through prepare, run, and cleanup in dependency order. Activity failures
// are captured on the nodes themselves; the returned error reports graph
// validation faults, scheduling bugs, and context cancellation only.
func (r *Runner) Run(ctx context.Context, nodes []*Node) error {
	if err := Validate(nodes); err != nil {
		return err
	}

	r.EmitPlan(ctx, nodes)

	state := r.newRunState(ctx, nodes)

	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		if state.ctx.Err() != nil && state.active == 0 {
			return errors.Join(state.errs, state.ctx.Err())
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-state.ctx.Done():
		}
	}

	if state.ctx.Err() != nil {
		state.errs = errors.Join(state.errs, state.ctx.Err())
	}

	return state.errs
}

// EmitPlan announces the planned activities and their dependencies through
// the tracer.
func (r *Runner) EmitPlan(ctx context.Context, nodes []*Node) {
	deps := make(map[string][]string, len(nodes))
	for _, n := range nodes {
		var names []string
		for _, dep := range n.Dependencies() {
			names = append(names, dep.ActivityName())
		}
		deps[n.ActivityName()] = names
	}
	r.tracer.EmitPlan(ctx, TopoOrder(nodes), deps)
}

type result struct {
	node *Node
	err  error
}

type runnerState struct {
	inDegree   map[*Node]int
	dependents map[*Node][]*Node
	ready      []*Node
	active     int
	resultsCh  chan result
	errs       error
	ctx        context.Context
	r          *Runner
}

func (r *Runner) newRunState(ctx context.Context, nodes []*Node) *runnerState {
	inDegree := make(map[*Node]int, len(nodes))
	dependents := make(map[*Node][]*Node, len(nodes))
	for _, n := range nodes {
		deps := n.Dependencies()
		inDegree[n] = len(deps)
		for _, dep := range deps {
			dependents[dep] = append(dependents[dep], n)
		}
	}

	var ready []*Node
	for _, n := range nodes {
		if inDegree[n] == 0 {
			ready = append(ready, n)
		}
	}

	return &runnerState{
		inDegree:   inDegree,
		dependents: dependents,
		ready:      ready,
		resultsCh:  make(chan result, r.parallelism),
		ctx:        ctx,
		r:          r,
	}
}

func (state *runnerState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *runnerState) schedule() {
	for len(state.ready) > 0 && state.active < state.r.parallelism && state.ctx.Err() == nil {
		node := state.ready[0]
		state.ready = state.ready[1:]

		state.active++
		go func(n *Node) {
			state.resultsCh <- result{node: n, err: state.r.executeNode(state.ctx, n)}
		}(node)
	}
}

func (state *runnerState) handleResult(res result) {
	state.active--
	if res.err != nil {
		wrappedErr := zerr.With(zerr.Wrap(res.err, "activity execution failed"), "activity", res.node.ActivityName())
		state.errs = errors.Join(state.errs, wrappedErr)
		return
	}

	// A captured activity failure still releases the dependents; they record
	// the dependency failure themselves when their edge propagates it.
	for _, dependent := range state.dependents[res.node] {
		state.inDegree[dependent]--
		if state.inDegree[dependent] == 0 {
			state.ready = append(state.ready, dependent)
		}
	}
}

// executeNode drives one node's full lifecycle under its own span. Captured
// failures surface on the span and through the node's state; the returned
// error is reserved for scheduling bugs.
func (r *Runner) executeNode(ctx context.Context, n *Node) error {
	ctx, span := r.tracer.Start(ctx, n.ActivityName())
	defer span.End()

	// The span rides along so activities can mirror their output onto it.
	ctx = ports.ContextWithSpan(ctx, span)

	n.Prepare(ctx)

	// A failed prepare marks the node done, so the run step is skipped.
	if !n.Done() {
		if err := n.Run(ctx); err != nil {
			span.RecordError(err)
			return err
		}
	}

	n.Cleanup(ctx)
	if err := n.CleanupError(); err != nil {
		r.logger.Warn(fmt.Sprintf("cleanup of %s failed: %v", n.ActivityName(), err))
	}

	if msg, failed := n.FailureMessage(); failed {
		span.RecordError(errors.New(msg))
	}
	return nil
}
