package main

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchConfig starts a directory-level watch on the config file's parent so
// editor save-by-rename is caught, and forwards debounced change events as
// reload requests. Watch failures disable hot reload but never the daemon.
func watchConfig(logger *slog.Logger, path string, reloadRequests chan<- string) {
	target, err := filepath.Abs(path)
	if err != nil {
		logger.Warn("config hot reload disabled", "error", err)
		return
	}
	target = filepath.Clean(target)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("config hot reload disabled", "error", err)
		return
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		logger.Warn("config hot reload disabled", "error", err)
		watcher.Close()
		return
	}
	if err := watcher.Add(target); err != nil {
		logger.Debug("unable to watch config file directly", "error", err)
	}

	go watchLoop(logger, watcher, target, reloadRequests)
}

func watchLoop(logger *slog.Logger, watcher *fsnotify.Watcher, target string, reloadRequests chan<- string) {
	const debounceWindow = 250 * time.Millisecond
	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerCh = timer.C
			} else {
				if !timer.Stop() {
					<-timerCh
				}
				timer.Reset(debounceWindow)
			}
		case <-timerCh:
			timer = nil
			timerCh = nil
			requestReload(reloadRequests, "config file updated")
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("config watcher error", "error", err)
		}
	}
}
