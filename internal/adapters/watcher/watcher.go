// Package watcher implements recursive file system watching for watch mode.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gantrybuild/gantry/internal/core/ports"
)

// skipDirectories are directory names that are never watched. The state
// directory is excluded so archives and stashes written during a run do not
// trigger the next one.
var skipDirectories = map[string]bool{
	".git":         true,
	".hg":          true,
	".jj":          true,
	".svn":         true,
	".gantry":      true,
	"node_modules": true,
}

const eventChannelBuffer = 100

// Watcher watches a directory tree using fsnotify, adding watches for
// directories created while watching.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	events    chan ports.WatchEvent
}

// NewWatcher creates a file system watcher.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		logger:    logger,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the given root directory recursively.
func (w *Watcher) Start(ctx context.Context, root string) error {
	for dir := range w.watchRecursively(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator over file system events. The iterator ends when
// the watcher stops or its context is canceled.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// watchRecursively walks the directory tree and yields every directory that
// should carry a watch.
func (w *Watcher) watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // An unreadable entry should not stop the watch.
			}
			if !d.IsDir() {
				return nil
			}
			if skipDirectories[d.Name()] {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			converted, ok := convertEvent(event)
			if !ok {
				continue
			}

			select {
			case w.events <- converted:
			case <-ctx.Done():
				return
			}

			if converted.Operation == ports.OpCreate {
				w.followNewDirectory(event.Name)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("file watcher error: %v", err))
		}
	}
}

// followNewDirectory extends the watch onto a directory created while
// watching, including any subdirectories that already exist by the time the
// event arrives.
func (w *Watcher) followNewDirectory(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || skipDirectories[info.Name()] {
		return
	}
	for dir := range w.watchRecursively(path) {
		_ = w.fsWatcher.Add(dir)
	}
}

var operations = []struct {
	mask fsnotify.Op
	op   ports.WatchOp
}{
	{fsnotify.Write, ports.OpWrite},
	{fsnotify.Create, ports.OpCreate},
	{fsnotify.Remove, ports.OpRemove},
	{fsnotify.Rename, ports.OpRename},
}

// convertEvent maps an fsnotify event onto a watch event. Events carrying
// none of the interesting operations, such as permission changes, are
// dropped.
func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	for _, o := range operations {
		if event.Op&o.mask != 0 {
			return ports.WatchEvent{Path: event.Name, Operation: o.op}, true
		}
	}
	return ports.WatchEvent{}, false
}
