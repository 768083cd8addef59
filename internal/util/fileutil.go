package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// AtomicWrite streams r into dst through a sibling temp file and renames it
// into place, so dst either keeps its old content or holds the complete new
// content. Returns the number of bytes written.
func AtomicWrite(dst string, r io.Reader) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return 0, fmt.Errorf("failed to create parent dir: %w", err)
	}

	tmp := dst + ".filebak.tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}

	n, err := io.Copy(f, r)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("failed to write: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("failed to rename: %w", err)
	}

	return n, nil
}
