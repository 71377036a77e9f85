package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reports tuning file changes. Parsed tunings arrive on Tunings,
// decode and filesystem failures on Errors.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filename string
	base     Tuning
	Tunings  chan Tuning
	Errors   chan error
	closeCh  chan struct{}
	once     sync.Once
}

// Watch starts watching filename. The containing directory is watched so
// editors that replace the file on save are still seen.
func Watch(filename string, base Tuning) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(filename)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher:  w,
		filename: filepath.Clean(filename),
		base:     base,
		Tunings:  make(chan Tuning, 1),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Tunings)
	defer close(w.Errors)

	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.filename {
				continue
			}
			now := time.Now()
			if now.Sub(last) < reloadDebounce {
				continue
			}
			last = now

			t, err := LoadFile(w.filename, w.base)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(&t, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) send(t *Tuning, err error) {
	if t != nil {
		select {
		case w.Tunings <- *t:
		case <-w.closeCh:
		}
		return
	}
	select {
	case w.Errors <- err:
	case <-w.closeCh:
	}
}
