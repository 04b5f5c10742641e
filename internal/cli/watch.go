// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// fileWatcher reports writes to a single file. It watches the parent
// directory so editors that replace the file on save are still seen.
type fileWatcher struct {
	w    *fsnotify.Watcher
	name string
}

// newFileWatcher starts watching path. Events are only delivered once run
// is called, but none are missed in between.
func newFileWatcher(path string) (*fileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch add %s: %w", path, err)
	}

	return &fileWatcher{w: w, name: abs}, nil
}

// run calls onChange after every write or re-creation of the file until ctx
// is done, then closes the watcher and returns ctx.Err().
func (fw *fileWatcher) run(ctx context.Context, onChange func()) error {
	defer fw.w.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-fw.w.Events:
			if !ok {
				return nil
			}
			if ev.Name != fw.name {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				onChange()
			}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", fw.name, err)
		}
	}
}
