package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log = zap.NewNop()

// Init builds the global logger: a console core when stdout is a terminal,
// and a dated file core under logDir. The file core always records debug
// level so post-mortems have the full trail.
func Init(debug bool, logDir string) error {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	cores := make([]zapcore.Core, 0, 2)

	if isatty.IsTerminal(os.Stdout.Fd()) {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			level))
	}

	f, err := openLogFile(logDir)
	if err != nil {
		return err
	}

	cores = append(cores, zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(f),
		zapcore.DebugLevel))

	Log = zap.New(zapcore.NewTee(cores...))
	return nil
}

func openLogFile(logDir string) (*os.File, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}

	name := filepath.Join(logDir, time.Now().Format("2006-01-02")+".log")
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return f, nil
}

func Sync() {
	_ = Log.Sync()
}
