package sse

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the config directory so an externally edited roster or
// theme file triggers a browser refresh.
type Watcher struct {
	dir     string
	broker  *Broker
	watcher *fsnotify.Watcher
}

// watchedFiles are the config-dir files whose changes matter to the UI.
var watchedFiles = map[string]bool{
	"directory.yaml": true,
	"theme":          true,
}

// NewWatcher creates and starts a file watcher on the config directory.
func NewWatcher(dir string, broker *Broker) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		dir:     dir,
		broker:  broker,
		watcher: fw,
	}

	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}

	go w.loop()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	// Debounce: collect file change notifications and flush at most once per second.
	const debounce = time.Second
	timer := time.NewTimer(debounce)
	timer.Stop()
	dirty := make(map[string]struct{})

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !watchedFiles[filepath.Base(ev.Name)] {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				if len(dirty) == 0 {
					timer.Reset(debounce)
				}
				dirty[ev.Name] = struct{}{}
			}
		case <-timer.C:
			clear(dirty)
			// Send a single refresh signal regardless of how many changes arrived.
			w.broker.Broadcast(Signal{Event: "refresh"})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("fsnotify error", "err", err)
		}
	}
}
