package backup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Sentinel kinds for startup validation failures; the CLI maps them to exit
// codes.
var (
	ErrNoInput = errors.New("source file not found")
	ErrIO      = errors.New("i/o error")
)

// Target is one watched file and its mirror location. DstPath is derived
// once from the source base name and never changes for the process lifetime.
type Target struct {
	Src     string
	DstDir  string
	DstPath string
}

func NewTarget(src, dstDir string) (*Target, error) {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return nil, fmt.Errorf("invalid source path: %w", err)
	}

	absDst, err := filepath.Abs(dstDir)
	if err != nil {
		return nil, fmt.Errorf("invalid destination path: %w", err)
	}

	return &Target{
		Src:     absSrc,
		DstDir:  absDst,
		DstPath: filepath.Join(absDst, filepath.Base(absSrc)),
	}, nil
}

// Validate confirms the source is a readable regular file, then creates the
// destination directory and any missing ancestors. The source is checked
// first: a missing source must not leave a destination directory behind.
func (t *Target) Validate() error {
	info, err := os.Stat(t.Src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNoInput, t.Src)
		}
		return fmt.Errorf("%w: stat %s: %v", ErrIO, t.Src, err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrIO, t.Src)
	}

	f, err := os.Open(t.Src)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", ErrIO, t.Src, err)
	}
	_ = f.Close()

	if err := os.MkdirAll(t.DstDir, 0755); err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrIO, t.DstDir, err)
	}

	return nil
}
