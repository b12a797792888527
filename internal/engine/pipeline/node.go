// Package pipeline implements the activity dependency graph and its
// execution engine.
package pipeline

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gantrybuild/gantry/internal/core/domain"
	"github.com/gantrybuild/gantry/internal/core/ports"
	"go.trai.ch/zerr"
)

// unknownFailureMessage marks a failed node with no recorded failure cause.
const unknownFailureMessage = "unknown failure cause, this is a bug"

// Env carries the shared collaborators an activity may reach through its
// node. Any field may be nil; the corresponding pass-through operations then
// fail with a descriptive error.
type Env struct {
	Store  ports.ArtifactStore
	Sink   ports.ResultSink
	Source ports.TestRecordSource
}

// edge is one dependency reference with its failure propagation policy.
type edge struct {
	to        *Node
	propagate bool
}

// Node wraps one schedulable activity with its dependency edges, lifecycle
// state, published artifacts, and test report.
//
// Lifecycle methods are driven by a single caller at a time. The internal
// mutex makes the state fields safe to read from other goroutines while
// sibling nodes execute in parallel.
type Node struct {
	activity  ports.Activity
	cleanup   ports.CleanupActivity
	chain     *Chain
	env       Env
	name      string
	createdAt time.Time

	mu         sync.Mutex
	edges      []edge
	startedAt  time.Time
	finishedAt time.Time
	prepareErr error
	runErr     error
	aroundErr  error
	cleanupErr error
	failedDeps []*Node
	published  []domain.PublishedItem
	report     *domain.TestReport
}

// NewNode wraps the given activity. The cleanup capability of the activity
// is checked once here rather than at call time.
func NewNode(activity ports.Activity, chain *Chain, env Env) *Node {
	if chain == nil {
		chain = NewChain()
	}

	n := &Node{
		activity:  activity,
		chain:     chain,
		env:       env,
		name:      activity.Name(),
		createdAt: time.Now(),
		report:    domain.NewTestReport(),
	}
	if c, ok := activity.(ports.CleanupActivity); ok {
		n.cleanup = c
	}
	return n
}

// Needs adds a dependency edge to dep. Adding the same dependency again
// keeps the original insertion position and never downgrades an existing
// propagate flag.
func (n *Node) Needs(dep *Node, propagate bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i := range n.edges {
		if n.edges[i].to == dep {
			n.edges[i].propagate = n.edges[i].propagate || propagate
			return
		}
	}
	n.edges = append(n.edges, edge{to: dep, propagate: propagate})
}

// Dependencies returns the nodes this node depends on, in insertion order.
func (n *Node) Dependencies() []*Node {
	n.mu.Lock()
	defer n.mu.Unlock()

	deps := make([]*Node, len(n.edges))
	for i, e := range n.edges {
		deps[i] = e.to
	}
	return deps
}

// ActivityName returns the name of the wrapped activity.
func (n *Node) ActivityName() string {
	return n.name
}

// CreatedAt returns the node's construction time.
func (n *Node) CreatedAt() time.Time {
	return n.createdAt
}

// StartedAt returns the run start time, if the run step was entered.
func (n *Node) StartedAt() (time.Time, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.startedAt, !n.startedAt.IsZero()
}

// FinishedAt returns the run finish time, if the run step completed.
func (n *Node) FinishedAt() (time.Time, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.finishedAt, !n.finishedAt.IsZero()
}

// Failed reports whether any failure is recorded on the node. Cleanup
// failures do not count.
func (n *Node) Failed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.failedLocked()
}

func (n *Node) failedLocked() bool {
	return n.prepareErr != nil || len(n.failedDeps) > 0 || n.runErr != nil || n.aroundErr != nil
}

// Done reports whether the node reached a terminal state: it either failed
// or its run step finished.
func (n *Node) Done() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.failedLocked() || !n.finishedAt.IsZero()
}

// FailureMessage returns the node's failure message, checking the possible
// causes in precedence order: prepare, dependencies, run, around. The second
// return is false while the node is not failed.
func (n *Node) FailureMessage() (string, bool) {
	n.mu.Lock()
	if !n.failedLocked() {
		n.mu.Unlock()
		return "", false
	}
	prepareErr, runErr, aroundErr := n.prepareErr, n.runErr, n.aroundErr
	failedDeps := n.failedDeps
	n.mu.Unlock()

	switch {
	case prepareErr != nil:
		return prepareErr.Error(), true
	case len(failedDeps) > 0:
		return AggregateFailureMessage("Dependencies", failedDeps), true
	case runErr != nil:
		return runErr.Error(), true
	case aroundErr != nil:
		return aroundErr.Error(), true
	}
	return unknownFailureMessage, true
}

// FailedDependencies returns the names of dependencies whose failure
// propagated to this node, in edge insertion order.
func (n *Node) FailedDependencies() []string {
	n.mu.Lock()
	failed := n.failedDeps
	n.mu.Unlock()

	names := make([]string, len(failed))
	for i, dep := range failed {
		names[i] = dep.ActivityName()
	}
	return names
}

// Prepare invokes the wrapped activity's preparation hook. A failure is
// recorded on the node and surfaced through Failed and FailureMessage,
// never propagated from here.
func (n *Node) Prepare(ctx context.Context) {
	if err := n.activity.PrepareNode(ctx, n); err != nil {
		n.mu.Lock()
		n.prepareErr = err
		n.mu.Unlock()
	}
}

// Run drives the node's execution protocol: dependency evaluation, the
// interceptor hook passes, the wrapped run step, and the build-result
// impact. Runtime failures are recorded on the node; the returned error is
// non-nil only for the two scheduling bugs, running before all dependencies
// are done and running a node twice.
func (n *Node) Run(ctx context.Context) error {
	if waiting := n.unfinishedDependencies(); len(waiting) > 0 {
		return zerr.With(zerr.With(domain.ErrDependenciesNotDone, "activity", n.name), "waiting_on", strings.Join(waiting, ", "))
	}
	if n.Done() {
		return zerr.With(domain.ErrNodeAlreadyDone, "activity", n.name)
	}

	if failed := n.evaluateDependencyFailures(); len(failed) > 0 {
		if err := n.chain.DependenciesFailed(ctx, n); err != nil {
			n.setAroundErr(err)
		}
		return nil
	}

	if err := n.chain.BeforeStarted(ctx, n); err != nil {
		n.setAroundErr(err)
		return nil
	}

	if err := n.runWithChain(ctx); err != nil {
		n.mu.Lock()
		n.runErr = err
		n.mu.Unlock()
	}

	n.recordResultImpact()

	if err := n.chain.AfterFinished(ctx, n); err != nil {
		n.setAroundErr(err)
	}
	return nil
}

// Cleanup invokes the activity's cleanup capability when it has one. A
// failure is recorded on the node and never propagated.
func (n *Node) Cleanup(ctx context.Context) {
	if n.cleanup == nil {
		return
	}
	if err := n.cleanup.CleanupNode(ctx, n); err != nil {
		n.mu.Lock()
		n.cleanupErr = err
		n.mu.Unlock()
	}
}

// CleanupError returns the failure recorded during cleanup, if any.
func (n *Node) CleanupError() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cleanupErr
}

// unfinishedDependencies returns the names of dependencies that are not yet
// done, in edge insertion order.
func (n *Node) unfinishedDependencies() []string {
	n.mu.Lock()
	edges := slices.Clone(n.edges)
	n.mu.Unlock()

	var waiting []string
	for _, e := range edges {
		if !e.to.Done() {
			waiting = append(waiting, e.to.ActivityName())
		}
	}
	return waiting
}

// evaluateDependencyFailures records which dependencies failed with an edge
// that propagates failure, preserving edge insertion order.
func (n *Node) evaluateDependencyFailures() []*Node {
	n.mu.Lock()
	edges := slices.Clone(n.edges)
	n.mu.Unlock()

	var failed []*Node
	for _, e := range edges {
		if e.propagate && e.to.Failed() {
			failed = append(failed, e.to)
		}
	}
	if len(failed) > 0 {
		n.mu.Lock()
		n.failedDeps = failed
		n.mu.Unlock()
	}
	return failed
}

// runWithChain executes the interceptor chain around the activity's run
// step. finishedAt is set on the way out no matter how the run ends.
func (n *Node) runWithChain(ctx context.Context) error {
	n.mu.Lock()
	n.startedAt = time.Now()
	n.mu.Unlock()

	defer func() {
		n.mu.Lock()
		n.finishedAt = time.Now()
		n.mu.Unlock()
	}()

	return n.chain.Run(ctx, n, func(ctx context.Context) error {
		return n.activity.RunActivity(ctx, n)
	})
}

// setAroundErr overwrites the around error. The most recent failing hook
// call wins, also across hook passes.
func (n *Node) setAroundErr(err error) {
	n.mu.Lock()
	n.aroundErr = err
	n.mu.Unlock()
}

// recordResultImpact downgrades the shared build result: FAILURE on a run
// error, UNSTABLE when the test report has failures.
func (n *Node) recordResultImpact() {
	if n.env.Sink == nil {
		return
	}

	n.mu.Lock()
	runFailed := n.runErr != nil
	stable := n.report.Summary().Stable
	n.mu.Unlock()

	switch {
	case runFailed:
		n.env.Sink.Record(domain.ResultFailure)
	case !stable:
		n.env.Sink.Record(domain.ResultUnstable)
	}
}

// ArchiveFiles archives the workspace files selected by the spec through
// the shared artifact store.
func (n *Node) ArchiveFiles(ctx context.Context, spec domain.ArchiveSpec) error {
	if n.env.Store == nil {
		return zerr.With(domain.ErrNoArtifactStore, "activity", n.name)
	}
	return n.env.Store.ArchiveFiles(ctx, spec)
}

// ArchiveFile archives a single file and publishes the resulting item on
// the node.
func (n *Node) ArchiveFile(ctx context.Context, path string) (domain.PublishedItem, error) {
	if n.env.Store == nil {
		return domain.PublishedItem{}, zerr.With(domain.ErrNoArtifactStore, "activity", n.name)
	}

	item, err := n.env.Store.ArchiveFile(ctx, path)
	if err != nil {
		return domain.PublishedItem{}, err
	}
	n.Publish(item)
	return item, nil
}

// Stash stores a file set under the spec's identifier.
func (n *Node) Stash(ctx context.Context, spec domain.StashSpec) error {
	if n.env.Store == nil {
		return zerr.With(domain.ErrNoArtifactStore, "activity", n.name)
	}
	return n.env.Store.Stash(ctx, spec)
}

// Unstash restores a previously stashed file set into the workspace.
func (n *Node) Unstash(ctx context.Context, id string) error {
	if n.env.Store == nil {
		return zerr.With(domain.ErrNoArtifactStore, "activity", n.name)
	}
	return n.env.Store.Unstash(ctx, id)
}

// Publish appends an item to the node's published-artifact list.
func (n *Node) Publish(item domain.PublishedItem) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.published = append(n.published, item)
}

// Published returns the published items in publication order.
func (n *Node) Published() []domain.PublishedItem {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.published)
}

// GatherTestResults pulls the records passing the filter from the shared
// record source into the node's test report.
func (n *Node) GatherTestResults(ctx context.Context, filter domain.RecordFilter) error {
	if n.env.Source == nil {
		return zerr.With(domain.ErrNoRecordSource, "activity", n.name)
	}

	records, err := n.env.Source.Records(ctx, filter)
	if err != nil {
		return zerr.Wrap(err, "gathering test records failed")
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	for _, r := range records {
		if r.Failed {
			n.report.AddFailed(r.Name, r.Age)
		} else {
			n.report.AddPassed(r.Name)
		}
	}
	return nil
}

// Report returns the node's test report.
func (n *Node) Report() *domain.TestReport {
	return n.report
}

// BuildStateHistory renders a human-readable timeline of the node's
// lifecycle for log output.
func (n *Node) BuildStateHistory() string {
	n.mu.Lock()
	startedAt, finishedAt := n.startedAt, n.finishedAt
	summary := n.report.Summary()
	n.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", n.name)
	fmt.Fprintf(&b, "  created %s\n", n.createdAt.UTC().Format(time.RFC3339))
	if msg, failed := n.FailureMessage(); failed {
		fmt.Fprintf(&b, "  failed: %s\n", msg)
	}
	if !startedAt.IsZero() {
		fmt.Fprintf(&b, "  started %s\n", startedAt.UTC().Format(time.RFC3339))
	}
	if !finishedAt.IsZero() {
		fmt.Fprintf(&b, "  finished %s\n", finishedAt.UTC().Format(time.RFC3339))
	}
	if summary.Total > 0 {
		fmt.Fprintf(&b, "  tests %d/%d (%d failed)\n", summary.Passed, summary.Total, summary.Failed)
	}
	return b.String()
}
