// Package watcher delivers filesystem events for a directory tree.
//
// It wraps fsnotify, which only watches single directories, and keeps the
// tree covered by adding new subdirectories as they appear. Events are
// translated to types.Event and sent on a channel so consumers stay
// synchronous and free of fsnotify details.
package watcher

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/taigrr/foldercat/internal/pathfilter"
	"github.com/taigrr/foldercat/internal/types"
)

var (
	// ErrPathNotExist indicates the watch path does not exist.
	ErrPathNotExist = errors.New("watch path does not exist")

	// ErrPathNotDirectory indicates the watch path is not a directory.
	ErrPathNotDirectory = errors.New("watch path is not a directory")

	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = errors.New("watcher already started")
)

// Watcher recursively watches a directory tree.
type Watcher struct {
	root    string
	filter  *pathfilter.PathFilter
	logger  zerolog.Logger
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	dirs    map[string]struct{}
	gone    map[string]bool // removed directories, true once reported
	started bool

	events    chan types.Event
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a watcher for root. root must be an existing directory.
// A nil filter ignores nothing.
func New(root string, filter *pathfilter.PathFilter, logger zerolog.Logger) (*Watcher, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrPathNotExist
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrPathNotDirectory
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		root:    absRoot,
		filter:  filter,
		logger:  logger,
		watcher: fsw,
		dirs:    make(map[string]struct{}),
		gone:    make(map[string]bool),
		events:  make(chan types.Event),
		done:    make(chan struct{}),
	}, nil
}

// Root returns the absolute watch root.
func (w *Watcher) Root() string {
	return w.root
}

// Start adds the tree to the watcher and begins delivering events. The
// returned channel is closed when ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) (<-chan types.Event, error) {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return nil, ErrAlreadyStarted
	}
	w.started = true
	w.mu.Unlock()

	if err := w.addRecursive(ctx, w.root, false); err != nil {
		return nil, err
	}

	w.logger.Debug().
		Str("root", w.root).
		Int("directories", w.watchedCount()).
		Msg("Watching directory tree")

	go w.run(ctx)
	return w.events, nil
}

// Close stops event delivery and releases the fsnotify handle. It is safe
// to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.handle(ctx, event) {
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("Watch error")
		}
	}
}

// handle translates one fsnotify event. It returns false once delivery has
// been cancelled.
func (w *Watcher) handle(ctx context.Context, event fsnotify.Event) bool {
	path := event.Name
	if w.isIgnored(path) {
		return true
	}

	switch {
	case event.Has(fsnotify.Create):
		isDir := isDirectory(path)
		w.mu.Lock()
		delete(w.gone, path)
		w.mu.Unlock()

		if !w.emit(ctx, types.Event{Path: path, IsDir: isDir, Kind: types.Created}) {
			return false
		}
		if isDir {
			if err := w.addRecursive(ctx, path, true); err != nil {
				w.logger.Warn().Err(err).Str("path", path).Msg("Failed to watch new directory")
			}
		}

	case event.Has(fsnotify.Write):
		return w.emit(ctx, types.Event{Path: path, IsDir: isDirectory(path), Kind: types.Modified})

	case event.Has(fsnotify.Chmod):
		// Attribute changes (touch, chmod) count as modifications of regular
		// files only; directories and special files are skipped.
		if !isRegularFile(path) {
			return true
		}
		return w.emit(ctx, types.Event{Path: path, Kind: types.Modified})

	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		isDir, duplicate := w.forget(path)
		if duplicate {
			return true
		}
		return w.emit(ctx, types.Event{Path: path, IsDir: isDir, Kind: types.Deleted})
	}

	return true
}

func (w *Watcher) emit(ctx context.Context, event types.Event) bool {
	select {
	case w.events <- event:
		return true
	case <-ctx.Done():
		return false
	case <-w.done:
		return false
	}
}

// addRecursive watches dir and every non-ignored directory below it. With
// emitChildren set, entries found below dir are reported as created: they
// appeared together with dir and would otherwise go unseen.
func (w *Watcher) addRecursive(ctx context.Context, dir string, emitChildren bool) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Return error for the starting dir, skip unreadable entries below it
			if path == dir {
				return err
			}
			return nil
		}

		if path != dir {
			if w.isIgnored(path) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if emitChildren && !w.emit(ctx, types.Event{Path: path, IsDir: d.IsDir(), Kind: types.Created}) {
				return filepath.SkipAll
			}
		}

		if !d.IsDir() {
			return nil
		}

		if err := w.watcher.Add(path); err != nil {
			if path == dir {
				return err
			}
			w.logger.Warn().Err(err).Str("path", path).Msg("Failed to watch directory")
			return filepath.SkipDir
		}

		w.mu.Lock()
		w.dirs[path] = struct{}{}
		delete(w.gone, path)
		w.mu.Unlock()
		return nil
	})
}

// forget drops path and anything below it from the known directories. It
// reports whether path was a watched directory, and whether the removal was
// already reported: inotify signals a deleted directory both on itself and
// on its parent.
func (w *Watcher) forget(path string) (isDir, duplicate bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if reported, ok := w.gone[path]; ok {
		w.gone[path] = true
		return true, reported
	}

	if _, ok := w.dirs[path]; !ok {
		return false, false
	}

	prefix := path + string(filepath.Separator)
	for dir := range w.dirs {
		if dir == path || strings.HasPrefix(dir, prefix) {
			delete(w.dirs, dir)
			w.gone[dir] = false
			// The watch may already be gone along with the directory.
			_ = w.watcher.Remove(dir)
		}
	}
	w.gone[path] = true
	return true, false
}

func (w *Watcher) isIgnored(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	return w.filter.IsIgnored(filepath.ToSlash(rel))
}

func (w *Watcher) watchedCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.dirs)
}

// isDirectory reports whether path is a directory right now. Paths that
// have already vanished count as files.
func isDirectory(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.IsDir()
}

func isRegularFile(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode().IsRegular()
}
