package prefabs

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

type ChangeKind uint8

const (
	ChangeSpec ChangeKind = iota + 1
	ChangeScript
)

// Change is a debounced edit of a prefab or script file. Name is relative to
// the prefab directory.
type Change struct {
	Kind ChangeKind
	Name string
}

const debounce = 100 * time.Millisecond

// Watcher reports prefab edits on Changes. Run owns the fsnotify watcher and
// must be started exactly once.
type Watcher struct {
	watcher *fsnotify.Watcher
	root    string
	Changes chan Change
}

// NewWatcher watches root and its scripts/ subdirectory when present.
func NewWatcher(root string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(root); err != nil {
		_ = w.Close()
		return nil, err
	}
	_ = w.Add(filepath.Join(root, "scripts"))

	return &Watcher{
		watcher: w,
		root:    root,
		Changes: make(chan Change, 16),
	}, nil
}

// Run forwards changes until ctx is done or the watcher fails. Changes is
// closed on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.Changes)
	defer w.watcher.Close()

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			change, ok := w.classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[change.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[change.Name] = now

			select {
			case w.Changes <- change:
			case <-ctx.Done():
				return nil
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return err
		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) classify(path string) (Change, bool) {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = filepath.ToSlash(rel)

	switch {
	case isSpecFile(rel):
		return Change{Kind: ChangeSpec, Name: rel}, true
	case isScriptFile(rel):
		return Change{Kind: ChangeScript, Name: strings.TrimPrefix(rel, "scripts/")}, true
	default:
		return Change{}, false
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
