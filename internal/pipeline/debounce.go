package pipeline

import (
	"sync"
	"time"

	"filebak/internal/model"
)

// Debounce coalesces bursts of write events for the same path: each burst
// emits a single event (the latest one) once the window elapses without a
// further write. Non-write kinds are forwarded immediately and unmodified;
// they carry diagnostics, not work, and must not be delayed.
func Debounce(inCh <-chan model.FileEvent, window time.Duration) <-chan model.FileEvent {
	outCh := make(chan model.FileEvent, cap(inCh))

	go func() {
		defer close(outCh)

		var mu sync.Mutex
		timers := make(map[string]*time.Timer)
		pending := make(map[string]model.FileEvent)

		for event := range inCh {
			if event.Type != model.EventWrite {
				outCh <- event
				continue
			}

			path := event.Path

			mu.Lock()
			pending[path] = event

			if t, ok := timers[path]; ok {
				t.Reset(window)
				mu.Unlock()
				continue
			}

			timers[path] = time.AfterFunc(window, func() {
				mu.Lock()
				ev, ok := pending[path]
				delete(timers, path)
				delete(pending, path)
				mu.Unlock()

				if ok {
					outCh <- ev
				}
			})
			mu.Unlock()
		}

		// Input closed: flush whatever is still pending.
		mu.Lock()
		var flush []model.FileEvent
		for path, t := range timers {
			if t.Stop() {
				flush = append(flush, pending[path])
			}
			delete(timers, path)
			delete(pending, path)
		}
		mu.Unlock()

		for _, ev := range flush {
			outCh <- ev
		}
	}()

	return outCh
}
