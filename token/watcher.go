// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

// Watcher - reload the balances whenever the allocation file changes
type Watcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	reloaded chan int
}

// NewWatcher - watch a file for changes
//
// the containing directory is watched so that files replaced by
// rename are still noticed
func NewWatcher(fileName string) (*Watcher, error) {
	log := logger.New("token")

	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		log.Errorf("watcher add error: %s", err)
		watcher.Close()
		return nil, err
	}

	return &Watcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		reloaded: make(chan int, 1),
	}, nil
}

// Reloaded - receives the allocation count after each successful reload
//
// only the latest count is kept if nobody is reading
func (w *Watcher) Reloaded() <-chan int {
	return w.reloaded
}

// Run - background process
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	log.Infof("watching: %s", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue loop
			}
			if !isChange(event) {
				continue loop
			}
			log.Infof("file event: %v", event)
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}

	w.watcher.Close()
	log.Info("shutting down…")
	log.Flush()
}

func (w *Watcher) reload() {
	n, err := LoadFile(w.filePath)
	if nil != err {
		w.log.Errorf("reload: %s  error: %s", w.filePath, err)
		return
	}
	w.log.Infof("reloaded: %d allocations", n)

	// keep only the latest count
	select {
	case <-w.reloaded:
	default:
	}
	w.reloaded <- n
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}
