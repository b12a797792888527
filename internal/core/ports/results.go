package ports

import (
	"context"

	"github.com/gantrybuild/gantry/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=results.go -destination=mocks/mock_results.go -package=mocks

// ResultSink receives build-outcome downgrades from node executions.
// Implementations are shared across parallel node executions and must
// serialize access themselves.
type ResultSink interface {
	// Record combines the given result into the current one, worst wins.
	Record(r domain.Result)

	// Current returns the outcome recorded so far.
	Current() domain.Result

	// Reset restores the sink to SUCCESS for a fresh run.
	Reset()
}

// TestRecordSource supplies already-parsed pass/fail/age test records.
// Parsing the underlying format (for example JUnit XML) is the source's
// concern, not the scheduler's.
type TestRecordSource interface {
	// Records returns the records passing the filter, in discovery order.
	Records(ctx context.Context, filter domain.RecordFilter) ([]domain.TestRecord, error)
}
