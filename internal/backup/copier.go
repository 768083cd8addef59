package backup

import (
	"fmt"
	"os"

	"filebak/internal/util"
)

// Copy mirrors the source into the fixed destination path and reports the
// byte count. The destination is replaced atomically, never left partial.
func (t *Target) Copy() (int64, error) {
	f, err := os.Open(t.Src)
	if err != nil {
		return 0, fmt.Errorf("failed to open src: %w", err)
	}

	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	return util.AtomicWrite(t.DstPath, f)
}
