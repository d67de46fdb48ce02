package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 200 * time.Millisecond

// watcher reruns a generation when any of its input files changes. Bursts
// of events are coalesced, and runs never overlap.
type watcher struct {
	fs    *fsnotify.Watcher
	files map[string]bool
	delay time.Duration
	log   interface{ Errorf(string, ...any) }
}

// newWatcher starts watching the directories of paths. Directories are
// watched instead of the files so that editors replacing a file on save
// keep triggering events.
func newWatcher(paths []string, delay time.Duration, log interface{ Errorf(string, ...any) }) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &watcher{fs: fsw, files: make(map[string]bool), delay: delay, log: log}
	dirs := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// run calls fn after every settled change until ctx is done.
func (w *watcher) run(ctx context.Context, fn func()) error {
	defer w.fs.Close()

	timer := time.NewTimer(w.delay)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			timer.Reset(w.delay)

		case <-timer.C:
			fn()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			if w.log != nil {
				w.log.Errorf("File watcher error: %v", err)
			}
		}
	}
}

func (w *watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}
