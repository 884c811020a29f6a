/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classindex

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"bennypowers.dev/reslink/internal/logger"
)

// Watch invalidates class indexes when files in their directories change.
type Watch struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Watch starts watching the directories of every index, including indexes
// created later. Watches are in place when it returns. The watch stops when
// ctx is cancelled.
func (r *Registry) Watch(ctx context.Context) (*Watch, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	w := &Watch{watcher: watcher, done: make(chan struct{})}

	add := func(idx *SourceIndex) {
		for _, dir := range idx.Dirs() {
			w.addTree(dir)
		}
	}
	for _, idx := range r.snapshot(add) {
		add(idx)
	}

	go w.run(ctx, r)
	return w, nil
}

// Wait blocks until the watch has stopped.
func (w *Watch) Wait() {
	<-w.done
}

func (w *Watch) run(ctx context.Context, r *Registry) {
	defer close(w.done)
	defer r.snapshot(nil)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(r, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watching class index: %v", err)
		}
	}
}

func (w *Watch) handle(r *Registry, event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.addTree(event.Name)
			r.Invalidate(event.Name)
			return
		}
	}
	switch filepath.Ext(event.Name) {
	case ".java", ".class":
		logger.Debug("invalidating class index for %s (%s)", event.Name, event.Op)
		r.Invalidate(event.Name)
	}
}

// addTree watches dir and its subdirectories.
func (w *Watch) addTree(dir string) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			logger.Debug("watching %s: %v", path, err)
		}
		return nil
	})
}
