package assets

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/ogltech/engine/core"
)

type AssetInfo struct {
	Path       string
	LastLoaded time.Time
	onChange   func(path string)
}

// Watcher hot-reloads individual files. The parent directory is watched
// rather than the file itself so editors that save through a rename are
// still noticed.
type Watcher struct {
	assets map[string]*AssetInfo
	dirs   map[string]int

	mutex sync.RWMutex

	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
}

func NewWatcher() (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		core.LogError("failed to create the file watcher: %s", err)
		return nil, err
	}

	w := &Watcher{
		assets:   make(map[string]*AssetInfo),
		dirs:     make(map[string]int),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go w.start()
	return w, nil
}

// Watch calls onChange with the file path each time path is written or
// re-created. Watching the same path again replaces the callback.
func (w *Watcher) Watch(path string, onChange func(path string)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.isClosed {
		return core.ErrWatcherClosed
	}
	if asset, ok := w.assets[abs]; ok {
		asset.onChange = onChange
		return nil
	}

	dir := filepath.Dir(abs)
	if w.dirs[dir] == 0 {
		if err := w.fsnotify.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.assets[abs] = &AssetInfo{
		Path:       abs,
		LastLoaded: time.Now(),
		onChange:   onChange,
	}
	core.LogDebug("watching %s", abs)
	return nil
}

// Unwatch stops reporting changes to path.
func (w *Watcher) Unwatch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.isClosed {
		return core.ErrWatcherClosed
	}
	if _, ok := w.assets[abs]; !ok {
		return nil
	}
	delete(w.assets, abs)

	dir := filepath.Dir(abs)
	w.dirs[dir]--
	if w.dirs[dir] == 0 {
		delete(w.dirs, dir)
		return w.fsnotify.Remove(dir)
	}
	return nil
}

// Close stops the event loop. Callbacks already running are allowed to finish.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return core.ErrWatcherClosed
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	<-w.stopped
	return w.fsnotify.Close()
}

func (w *Watcher) start() {
	defer close(w.stopped)
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.handleFileEvent(e.Name)
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("file watcher: %s", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handleFileEvent(name string) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return
	}

	var onChange func(string)
	w.mutex.Lock()
	if asset, ok := w.assets[abs]; ok {
		asset.LastLoaded = time.Now()
		onChange = asset.onChange
	}
	w.mutex.Unlock()

	if onChange != nil {
		core.LogDebug("asset changed: %s", abs)
		onChange(abs)
	}
}
