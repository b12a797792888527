package ports

import (
	"context"

	"github.com/gantrybuild/gantry/internal/core/domain"
)

// ArtifactStore persists build artifacts and stashed file sets.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifact.go -destination=mocks/mock_artifact.go -package=mocks
type ArtifactStore interface {
	// ArchiveFiles copies the workspace files selected by the spec into the
	// archive. Empty selections fall back to the configured defaults.
	ArchiveFiles(ctx context.Context, spec domain.ArchiveSpec) error

	// ArchiveFile archives a single file and returns the published item
	// describing it.
	ArchiveFile(ctx context.Context, path string) (domain.PublishedItem, error)

	// Stash stores the selected files under the spec's identifier,
	// replacing any previous stash with the same identifier.
	Stash(ctx context.Context, spec domain.StashSpec) error

	// Unstash restores the files stashed under the identifier into the
	// workspace.
	Unstash(ctx context.Context, id string) error
}
