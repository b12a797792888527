package domain

import "go.trai.ch/zerr"

var (
	// ErrDependenciesNotDone is returned when an activity node is run before all of its dependencies finished.
	ErrDependenciesNotDone = zerr.New("dependencies not done")

	// ErrNodeAlreadyDone is returned when an activity node is run a second time.
	ErrNodeAlreadyDone = zerr.New("activity node already done")

	// ErrPipelineFailed is returned by the aggregate failure check when any node in the run failed.
	ErrPipelineFailed = zerr.New("pipeline failed")

	// ErrDuplicateActivity is returned when two activities in one pipeline share a name.
	ErrDuplicateActivity = zerr.New("duplicate activity name")

	// ErrUnknownDependency is returned when an edge references an activity that is not part of the run.
	ErrUnknownDependency = zerr.New("unknown dependency")

	// ErrCycleDetected is returned when the dependency edges form a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrNoArtifactStore is returned when an activity uses archive or stash operations without a configured store.
	ErrNoArtifactStore = zerr.New("no artifact store configured")

	// ErrNoRecordSource is returned when an activity gathers test results without a configured record source.
	ErrNoRecordSource = zerr.New("no test record source configured")
)
