package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 300 * time.Millisecond

// Watcher calls OnChange once a burst of file system events under its roots has
// settled. fsnotify is not recursive, so every directory is added on its own.
type Watcher struct {
	roots    []string
	debounce time.Duration
	onChange func(ctx context.Context)
}

func New(debounce time.Duration, onChange func(ctx context.Context), roots ...string) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		roots:    roots,
		debounce: debounce,
		onChange: onChange,
	}
}

// Run blocks until ctx is cancelled. Roots that do not exist are skipped.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, root := range w.roots {
		err = addTree(watcher, root)
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("watch root not found, skipping", "dir", root)
			continue
		}
		if err != nil {
			return err
		}
		slog.Debug("watching", "dir", root)
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				err = addTree(watcher, event.Name)
				if err != nil {
					slog.Warn("failed to watch new directory", "dir", event.Name, "error", err)
				}
			}
			slog.Debug("file changed", "path", event.Name, "op", event.Op.String())
			if pending {
				timer.Stop()
			}
			timer.Reset(w.debounce)
			pending = true

		case <-timer.C:
			pending = false
			w.onChange(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("file watcher error", "error", err)
		}
	}
}

func addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		err = watcher.Add(path)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// relevant drops chmod-only events and editor swap files.
func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(event.Name)
	return !strings.HasPrefix(base, ".") && !strings.HasSuffix(base, "~") && !strings.HasSuffix(base, ".swp")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
