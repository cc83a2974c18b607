// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/quad/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch watches the given config file and calls fn with the reloaded
// config each time it is written, until ctx is done. Files that fail
// to load are logged and skipped. fn is called on the watcher goroutine.
func Watch(ctx context.Context, filename string, fn func(c *Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	filename = filepath.Clean(filename)
	// watch the directory: editors often replace the file rather than write it
	if err := w.Add(filepath.Dir(filename)); err != nil {
		w.Close()
		return err
	}
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filename || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				c, err := Open(filename)
				if errors.Log(err) != nil {
					continue
				}
				slog.Debug("config: reloaded", "file", filename)
				fn(c)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return nil
}
