package backup

import (
	"filebak/internal/logger"
	"filebak/internal/model"

	"go.uber.org/zap"
)

// Run consumes debounced events one at a time and mirrors the source on
// every write. Copies are synchronous, so they never overlap. A failed copy
// is logged and absorbed; the loop only ends when inCh closes.
func (t *Target) Run(inCh <-chan model.FileEvent) <-chan model.CopyResult {
	outCh := make(chan model.CopyResult, cap(inCh))

	go func() {
		defer close(outCh)

		for event := range inCh {
			outCh <- t.handle(event)
		}
	}()

	return outCh
}

func (t *Target) handle(event model.FileEvent) model.CopyResult {
	result := model.CopyResult{
		Event:   event,
		SrcPath: t.Src,
		DstPath: t.DstPath,
	}

	if event.Type != model.EventWrite {
		// Remove/rename of the watched file strands the backup; keep
		// waiting, editors that save through rename-and-replace bring the
		// path back.
		logger.Log.Info("ignoring event",
			zap.String("type", string(event.Type)),
			zap.String("path", event.Path))
		return result
	}

	result.Bytes, result.Err = t.Copy()

	if result.Err != nil {
		logger.Log.Error("copy failed",
			zap.String("src", result.SrcPath),
			zap.String("dst", result.DstPath),
			zap.Error(result.Err))
	} else {
		logger.Log.Debug("copied",
			zap.Int64("bytes", result.Bytes),
			zap.String("src", result.SrcPath),
			zap.String("dst", result.DstPath))
	}

	return result
}
