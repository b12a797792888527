package domain

// Need is one dependency edge declared by an activity.
type Need struct {
	Activity string
	// PropagateFailure decides whether a failure of the dependency marks the
	// depending activity as failed-by-dependency.
	PropagateFailure bool
}

// TestSpec configures test-record gathering for one activity.
type TestSpec struct {
	// Records is the path of the JSON file holding already-parsed records.
	Records string
	// Include and Exclude are regular expressions matched against the full
	// record name. Include narrows, exclude removes, both optional.
	Include string
	Exclude string
}

// ActivitySpec describes one activity of a pipeline definition.
type ActivitySpec struct {
	Name    string
	Run     string
	Dir     string
	Env     map[string]string
	Needs   []Need
	Archive *ArchiveSpec
	Stashes []StashSpec
	Unstash []string
	Tests   *TestSpec
	// Cleanup is an optional command run after the activity finished.
	// An activity without one has no cleanup capability.
	Cleanup string
}

// PipelineSpec is a fully validated pipeline definition in declaration order.
type PipelineSpec struct {
	Version    int
	Defaults   ArchiveDefaults
	Activities []ActivitySpec
}
