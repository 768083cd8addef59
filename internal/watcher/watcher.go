package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"filebak/internal/logger"
	"filebak/internal/model"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher subscribes to change notifications for a single file and exposes
// them as model.FileEvent values on a buffered channel.
type Watcher struct {
	fw      *fsnotify.Watcher
	eventCh chan model.FileEvent
	doneCh  chan struct{}
}

func New(bufferSize int) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		fw:      fw,
		eventCh: make(chan model.FileEvent, bufferSize),
		doneCh:  make(chan struct{}),
	}, nil
}

// Watch adds the single path, non-recursively, and starts delivering events.
// A failure here means the subscription could not be established at all and
// the caller should treat it as fatal.
func (w *Watcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	if err := w.fw.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	go w.run()

	logger.Log.Info("watcher started",
		zap.String("path", absPath))
	return nil
}

func (w *Watcher) run() {
	defer close(w.eventCh)

	for {
		select {
		case <-w.doneCh:
			logger.Log.Info("watcher stopping")
			return

		case fsEvent, ok := <-w.fw.Events:
			if !ok {
				return
			}

			eventType := toEventType(fsEvent.Op)
			if eventType == "" {
				continue
			}

			event := model.FileEvent{
				Type:      eventType,
				Path:      fsEvent.Name,
				Timestamp: time.Now(),
			}

			select {
			case w.eventCh <- event:
			default:
				logger.Log.Warn("event channel is full, dropping event",
					zap.String("path", fsEvent.Name))
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}

			// Delivery hiccups after a successful subscription are not
			// fatal; keep waiting for the next event.
			logger.Log.Error("watcher error",
				zap.Error(err))
		}
	}
}

func (w *Watcher) Events() <-chan model.FileEvent {
	return w.eventCh
}

func (w *Watcher) Stop() {
	close(w.doneCh)
	_ = w.fw.Close()
}

func toEventType(op fsnotify.Op) model.EventType {
	switch {
	case op.Has(fsnotify.Create):
		return model.EventCreate
	case op.Has(fsnotify.Write):
		return model.EventWrite
	case op.Has(fsnotify.Remove):
		return model.EventRemove
	case op.Has(fsnotify.Rename):
		return model.EventRename
	default:
		return ""
	}
}
