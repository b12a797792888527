package artifact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/gantrybuild/gantry/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Store implements ports.ArtifactStore below a state root directory.
//
// Layout:
//
//	<root>/archive/<path>          archived workspace files
//	<root>/archive/manifest.json   path-to-content-hash map
//	<root>/stash/<id>/<path>       stashed file sets
type Store struct {
	workspace string
	root      string
	defaults  domain.ArchiveDefaults
	mu        sync.Mutex // serializes manifest read-modify-write
}

// NewStore creates a store archiving files from the workspace into the state
// root. The defaults fill archive and stash specs that leave their file
// selection empty.
func NewStore(workspace, root string, defaults domain.ArchiveDefaults) *Store {
	return &Store{
		workspace: filepath.Clean(workspace),
		root:      filepath.Clean(root),
		defaults:  defaults,
	}
}

// selection is the effective file selection of an archive or stash spec.
type selection struct {
	includes           []string
	excludes           []string
	useDefaultExcludes bool
	allowEmpty         bool
}

// resolveSelection substitutes the store defaults when a spec names no
// patterns at all. A spec with its own patterns stands alone, flags included.
func (s *Store) resolveSelection(includes, excludes []string, useDefaultExcludes, allowEmpty bool) selection {
	if len(includes) == 0 && len(excludes) == 0 {
		return selection{
			includes:           s.defaults.Includes,
			excludes:           s.defaults.Excludes,
			useDefaultExcludes: s.defaults.UseDefaultExcludes,
			allowEmpty:         s.defaults.AllowEmpty,
		}
	}
	return selection{
		includes:           includes,
		excludes:           excludes,
		useDefaultExcludes: useDefaultExcludes,
		allowEmpty:         allowEmpty,
	}
}

// selectFiles walks the workspace and returns the slash-separated relative
// paths matching the selection, in walk order. The state root is skipped.
func (s *Store) selectFiles(ctx context.Context, sel selection) ([]string, error) {
	excludes := sel.excludes
	if sel.useDefaultExcludes {
		excludes = append(slices.Clone(sel.excludes), defaultExcludes...)
	}

	var selected []string
	err := filepath.WalkDir(s.workspace, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if filepath.Clean(p) == s.root {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(s.workspace, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if matchAny(sel.includes, rel) && !matchAny(excludes, rel) {
			selected = append(selected, rel)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to scan workspace")
	}
	return selected, nil
}

// ArchiveFiles copies the files selected by the spec into the archive and
// records their content hashes in the manifest.
func (s *Store) ArchiveFiles(ctx context.Context, spec domain.ArchiveSpec) error {
	sel := s.resolveSelection(spec.Includes, spec.Excludes, spec.UseDefaultExcludes, spec.AllowEmpty)

	files, err := s.selectFiles(ctx, sel)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if sel.allowEmpty {
			return nil
		}
		return zerr.With(zerr.New("no files matched the archive selection"),
			"includes", strings.Join(sel.includes, ", "))
	}

	hashes := make([]uint64, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, rel := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dst := filepath.Join(s.archiveDir(), filepath.FromSlash(rel))
			if err := copyFile(filepath.Join(s.workspace, filepath.FromSlash(rel)), dst); err != nil {
				return err
			}
			h, err := hashFile(dst)
			if err != nil {
				return err
			}
			hashes[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "failed to archive files")
	}

	entries := make(map[string]string, len(files))
	for i, rel := range files {
		entries[rel] = fmt.Sprintf("%016x", hashes[i])
	}
	return s.updateManifest(entries)
}

// ArchiveFile archives a single workspace-relative file and returns the
// published item describing it.
func (s *Store) ArchiveFile(ctx context.Context, file string) (domain.PublishedItem, error) {
	if err := ctx.Err(); err != nil {
		return domain.PublishedItem{}, err
	}

	rel := filepath.ToSlash(filepath.Clean(filepath.FromSlash(file)))
	if filepath.IsAbs(file) || rel == ".." || strings.HasPrefix(rel, "../") {
		return domain.PublishedItem{}, zerr.With(zerr.New("path escapes the workspace"), "path", file)
	}

	dst := filepath.Join(s.archiveDir(), filepath.FromSlash(rel))
	if err := copyFile(filepath.Join(s.workspace, filepath.FromSlash(rel)), dst); err != nil {
		return domain.PublishedItem{}, err
	}

	h, err := hashFile(dst)
	if err != nil {
		return domain.PublishedItem{}, err
	}
	if err := s.updateManifest(map[string]string{rel: fmt.Sprintf("%016x", h)}); err != nil {
		return domain.PublishedItem{}, err
	}

	return domain.PublishedItem{
		Locator: filepath.ToSlash(filepath.Join(s.root, "archive", filepath.FromSlash(rel))),
		Title:   path.Base(rel),
	}, nil
}

// Stash stores the selected files under the spec's identifier, replacing any
// previous stash with the same identifier. An empty selection with AllowEmpty
// produces an empty but restorable stash.
func (s *Store) Stash(ctx context.Context, spec domain.StashSpec) error {
	if spec.ID == "" {
		return zerr.New("stash identifier is empty")
	}

	sel := s.resolveSelection(spec.Includes, spec.Excludes, spec.UseDefaultExcludes, spec.AllowEmpty)
	files, err := s.selectFiles(ctx, sel)
	if err != nil {
		return err
	}
	if len(files) == 0 && !sel.allowEmpty {
		return zerr.With(zerr.New("no files matched the stash selection"), "stash", spec.ID)
	}

	dir := s.stashDir(spec.ID)
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clear previous stash"), "stash", spec.ID)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create stash directory"), "stash", spec.ID)
	}

	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := copyFile(filepath.Join(s.workspace, filepath.FromSlash(rel)), filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
			return zerr.With(err, "stash", spec.ID)
		}
	}
	return nil
}

// Unstash restores the files stashed under the identifier into the
// workspace.
func (s *Store) Unstash(ctx context.Context, id string) error {
	dir := s.stashDir(id)
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.New("unknown stash"), "stash", id)
		}
		return zerr.With(zerr.Wrap(err, "failed to read stash"), "stash", id)
	}

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		return copyFile(p, filepath.Join(s.workspace, rel))
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unstash files"), "stash", id)
	}
	return nil
}

func (s *Store) archiveDir() string {
	return filepath.Join(s.root, "archive")
}

func (s *Store) stashDir(id string) string {
	return filepath.Join(s.root, "stash", id)
}

func (s *Store) manifestPath() string {
	return filepath.Join(s.archiveDir(), "manifest.json")
}

// updateManifest merges the entries into the archive manifest on disk.
func (s *Store) updateManifest(entries map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	manifest := make(map[string]string)
	//nolint:gosec // Path is derived from the cleaned state root
	data, err := os.ReadFile(s.manifestPath())
	switch {
	case err == nil:
		if len(data) > 0 {
			if err := json.Unmarshal(data, &manifest); err != nil {
				return zerr.Wrap(err, "failed to unmarshal archive manifest")
			}
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return zerr.Wrap(err, "failed to read archive manifest")
	}

	maps.Copy(manifest, entries)

	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal archive manifest")
	}
	if err := os.MkdirAll(s.archiveDir(), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create archive directory")
	}
	//nolint:gosec // Path is derived from the cleaned state root
	if err := os.WriteFile(s.manifestPath(), out, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write archive manifest")
	}
	return nil
}

func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat source file"), "path", src)
	}

	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create target directory"), "path", dst)
	}

	//nolint:gosec // Path is controlled by caller
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create target file"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close() //nolint:errcheck,gosec // The copy error outranks the close error
		return zerr.With(zerr.Wrap(err, "failed to copy file"), "path", dst)
	}
	return out.Close()
}

// hashFile computes the XXHash of a file's content.
func hashFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return hasher.Sum64(), nil
}
