// Package watcher notifies the offline analyzer when a history export
// changes on disk, so `score --watch` can re-render.
package watcher

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/rivertam/pants-off-podrick/internal/util"
)

// ExportEvent describes a change to an export file.
type ExportEvent struct {
	Path      string
	Operation string
}

// ExportWatcher watches export files or directories for changes.
type ExportWatcher struct {
	watcher *fsnotify.Watcher
	events  chan ExportEvent
}

func New(paths []string) (*ExportWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ew := &ExportWatcher{
		watcher: watcher,
		events:  make(chan ExportEvent, 16),
	}

	for _, path := range paths {
		if err := ew.addPath(path); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	go ew.processEvents()

	return ew, nil
}

func (ew *ExportWatcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		// Watch the containing directory: editors and exporters often
		// replace files rather than writing in place.
		return ew.watcher.Add(filepath.Dir(path))
	}
	return filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return ew.watcher.Add(p)
		}
		return nil
	})
}

func (ew *ExportWatcher) processEvents() {
	for {
		select {
		case event, ok := <-ew.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(strings.ToLower(event.Name), ".jsonl") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			ew.events <- ExportEvent{
				Path:      event.Name,
				Operation: event.Op.String(),
			}

		case err, ok := <-ew.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("Export monitoring error: " + err.Error())
		}
	}
}

func (ew *ExportWatcher) Events() <-chan ExportEvent {
	return ew.events
}

func (ew *ExportWatcher) Close() error {
	return ew.watcher.Close()
}
