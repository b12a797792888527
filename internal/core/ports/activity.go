// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"time"

	"github.com/gantrybuild/gantry/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=activity.go -destination=mocks/mock_activity.go -package=mocks

// Activity is the unit of work wrapped by a pipeline node.
//
// The node calls PrepareNode once before scheduling and RunActivity once when
// all dependencies are done. Implementations that also satisfy
// CleanupActivity get their CleanupNode hook invoked after the run; the
// capability is checked once at node construction.
type Activity interface {
	// Name identifies the activity. Node names are derived from it.
	Name() string

	// PrepareNode acquires node-scoped resources. A returned error marks the
	// node as failed without aborting the pipeline.
	PrepareNode(ctx context.Context, ac ActivityContext) error

	// RunActivity performs the work. It runs inside the interceptor chain;
	// a returned error becomes the node's run failure.
	RunActivity(ctx context.Context, ac ActivityContext) error
}

// CleanupActivity is the optional cleanup capability of an Activity.
type CleanupActivity interface {
	Activity

	// CleanupNode releases node-scoped resources. A returned error is
	// recorded on the node but never aborts anything.
	CleanupNode(ctx context.Context, ac ActivityContext) error
}

// ActivityContext is the node-side surface an Activity and its interceptors
// operate on. It exposes the node's identity and state plus the pass-through
// operations to the shared collaborators (artifact store, record source).
type ActivityContext interface {
	// ActivityName returns the name of the wrapped activity.
	ActivityName() string

	// CreatedAt returns the node's construction time.
	CreatedAt() time.Time

	// StartedAt returns the run start time, if the run step was entered.
	StartedAt() (time.Time, bool)

	// FinishedAt returns the run finish time, if the run step completed.
	FinishedAt() (time.Time, bool)

	// Failed reports whether any failure is recorded on the node.
	Failed() bool

	// FailureMessage returns the precedence-ordered failure message.
	// The second return is false while the node is not failed.
	FailureMessage() (string, bool)

	// FailedDependencies returns the names of dependencies whose failure
	// propagated to this node, in edge insertion order.
	FailedDependencies() []string

	// ArchiveFiles archives the workspace files selected by the spec.
	ArchiveFiles(ctx context.Context, spec domain.ArchiveSpec) error

	// ArchiveFile archives a single file and publishes the resulting item on
	// the node.
	ArchiveFile(ctx context.Context, path string) (domain.PublishedItem, error)

	// Stash stores a file set under the spec's identifier.
	Stash(ctx context.Context, spec domain.StashSpec) error

	// Unstash restores a previously stashed file set into the workspace.
	Unstash(ctx context.Context, id string) error

	// Publish appends an item to the node's published-artifact list.
	Publish(item domain.PublishedItem)

	// Published returns the published items in publication order.
	Published() []domain.PublishedItem

	// GatherTestResults pulls the records passing the filter from the record
	// source into the node's test report.
	GatherTestResults(ctx context.Context, filter domain.RecordFilter) error

	// Report returns the node's test report.
	Report() *domain.TestReport
}
