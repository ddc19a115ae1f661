package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when NewWatcher is given a zero debounce.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports the names of scenes whose files changed under the watched
// directories. Events carries scene names as SceneName returns them.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	Events   chan string
	Errors   chan error
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
}

// NewWatcher watches dirs for scene file changes. Repeated changes to one
// scene closer together than debounce are reported once.
func NewWatcher(debounce time.Duration, dirs ...string) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher:  w,
		debounce: debounce,
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isSpecFile(event.Name) {
				continue
			}
			name := SceneName(event.Name)
			now := time.Now()
			if t, ok := last[name]; ok && now.Sub(t) < w.debounce {
				continue
			}
			last[name] = now
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// SceneName returns the scene a path or file name refers to: its base name
// without the yaml extension.
func SceneName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
