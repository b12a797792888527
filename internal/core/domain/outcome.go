// Package domain contains the core domain models for pipeline execution.
package domain

// Result represents the overall outcome of a pipeline run.
// The ordering is significant: a higher value is a worse outcome.
type Result int

const (
	// ResultSuccess indicates all activities completed and all tests passed.
	ResultSuccess Result = iota
	// ResultUnstable indicates the run completed but at least one test failed.
	ResultUnstable
	// ResultFailure indicates at least one activity failed to run.
	ResultFailure
)

// Combine returns the worse of the two results.
// Once a run is marked FAILURE it can never improve to UNSTABLE or SUCCESS.
func (r Result) Combine(other Result) Result {
	if other > r {
		return other
	}
	return r
}

// String returns the canonical upper-case name of the result.
func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "SUCCESS"
	case ResultUnstable:
		return "UNSTABLE"
	case ResultFailure:
		return "FAILURE"
	default:
		return "UNKNOWN"
	}
}
