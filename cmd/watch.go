package cmd

import (
	"errors"
	"fmt"
	"os"

	"filebak/internal/backup"
	"filebak/internal/config"
	"filebak/internal/exitcode"
	"filebak/internal/logger"
	"filebak/internal/pipeline"
	"filebak/internal/watcher"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runWatch(cmd *cobra.Command, args []string) error {
	if source == "" && len(args) > 0 {
		source = args[0]
	}
	if destination == "" && len(args) > 1 {
		destination = args[1]
	}
	if source == "" || destination == "" {
		return fmt.Errorf("source and destination are required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(debug, cfg.LogDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.IOErr)
	}
	defer logger.Sync()

	target, err := backup.NewTarget(source, destination)
	if err != nil {
		fatal(exitcode.IOErr, "invalid paths", err)
	}

	logger.Log.Debug("input path",
		zap.String("path", target.Src))

	if err := target.Validate(); err != nil {
		code := exitcode.IOErr
		if errors.Is(err, backup.ErrNoInput) {
			code = exitcode.NoInput
		}
		fatal(code, "validation failed", err)
	}

	logger.Log.Info("input file validated")
	logger.Log.Info("destination dir ready",
		zap.String("dir", target.DstDir))

	// First copy, just to start from a balanced state even if the first
	// change event races the subscription.
	if n, err := target.Copy(); err != nil {
		logger.Log.Error("first copy failed",
			zap.Error(err))
	} else {
		logger.Log.Debug("copied",
			zap.Int64("bytes", n),
			zap.String("dst", target.DstPath))
	}

	w, err := watcher.New(cfg.BufferSize)
	if err != nil {
		fatal(exitcode.IOErr, "failed to create watcher", err)
	}

	if err := w.Watch(target.Src); err != nil {
		fatal(exitcode.IOErr, "failed to subscribe to source", err)
	}

	events := pipeline.Debounce(w.Events(), cfg.DebounceWindow)

	// Runs until the process is killed; there is no in-loop shutdown.
	for range target.Run(events) {
	}

	return nil
}

func fatal(code int, msg string, err error) {
	logger.Log.Error(msg,
		zap.Error(err))
	logger.Sync()
	os.Exit(code)
}
