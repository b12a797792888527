package domain

// PublishedItem is one artifact published by an activity, recorded on its
// node in publication order.
type PublishedItem struct {
	// Locator is the path or URL under which the artifact can be retrieved.
	Locator string
	// Title is an optional human-readable label.
	Title string
}

// ArchiveSpec selects workspace files for archival.
// Empty Includes/Excludes fall back to the defaults the pipeline
// configuration supplies to the artifact store.
type ArchiveSpec struct {
	Includes           []string
	Excludes           []string
	UseDefaultExcludes bool
	// AllowEmpty suppresses the error when no file matches.
	AllowEmpty bool
}

// StashSpec selects workspace files to stash under an identifier for later
// retrieval by another activity.
type StashSpec struct {
	ID                 string
	Includes           []string
	Excludes           []string
	UseDefaultExcludes bool
	AllowEmpty         bool
}

// ArchiveDefaults are the environment-supplied fallback values applied when
// an ArchiveSpec or StashSpec leaves its file selection empty.
type ArchiveDefaults struct {
	Includes           []string
	Excludes           []string
	UseDefaultExcludes bool
	AllowEmpty         bool
}
