package serve

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// snapshot maps page documents to their modification time.
type snapshot map[string]time.Time

// Watcher polls a directory tree for added, changed or removed tree
// documents.
type Watcher struct {
	root     string
	interval time.Duration
	onChange func(changed []string)
	onError  func(error)
}

// NewWatcher creates a watcher over root that calls onChange with the
// sorted list of changed paths, relative to root.
func NewWatcher(root string, interval time.Duration, onChange func([]string)) *Watcher {
	return &Watcher{root: root, interval: interval, onChange: onChange}
}

// Run polls until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	prev, err := w.scan()
	if err != nil {
		w.reportError(err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			next, err := w.scan()
			if err != nil {
				w.reportError(err)
				continue
			}
			if changed := diff(prev, next); len(changed) > 0 {
				w.onChange(changed)
			}
			prev = next
		}
	}
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}

// scan records the modification time of every .yaml file under root.
func (w *Watcher) scan() (snapshot, error) {
	snap := make(snapshot)
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == w.root {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() {
			if path != w.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isPageFile(d.Name()) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(w.root, path)
		if err != nil {
			return err
		}
		snap[filepath.ToSlash(rel)] = info.ModTime()
		return nil
	})
	return snap, err
}

// diff returns the sorted paths that differ between two snapshots.
func diff(prev, next snapshot) []string {
	var changed []string
	for path, mod := range next {
		if old, ok := prev[path]; !ok || !old.Equal(mod) {
			changed = append(changed, path)
		}
	}
	for path := range prev {
		if _, ok := next[path]; !ok {
			changed = append(changed, path)
		}
	}
	slices.Sort(changed)
	return changed
}

func isPageFile(name string) bool {
	return strings.HasSuffix(name, pageExt)
}
