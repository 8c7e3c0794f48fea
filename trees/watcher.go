package trees

import (
	"errors"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/reusee/cestudio/logs"
)

// Watcher notes filesystem changes under a materialized tree. It never rebuilds the tree itself.
type Watcher struct {
	watcher *fsnotify.Watcher
	changed atomic.Bool
	done    chan struct{}
	logger  logs.Logger
}

func NewWatcher(root string, tree *Node, logger logs.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		watcher: fsWatcher,
		done:    make(chan struct{}),
		logger:  logger,
	}

	var errs []error
	tree.Walk(func(node *Node, _ int) bool {
		if !node.IsFolder() {
			return false
		}
		if err := fsWatcher.Add(ResolvePath(root, node)); err != nil {
			errs = append(errs, err)
		}
		return true
	})
	if err := errors.Join(errs...); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			if !w.changed.Swap(true) {
				w.logger.Debug("tree stale",
					"path", filepath.Clean(event.Name),
					"op", event.Op.String(),
				)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("tree watcher", "error", err)
		}
	}
}

func (w *Watcher) Changed() bool {
	return w.changed.Load()
}

func (w *Watcher) Reset() {
	w.changed.Store(false)
}

func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
