package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCreatesDatedLogFile(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	require.NoError(t, Init(false, logDir))

	Log.Info("hello")
	Sync()

	name := filepath.Join(logDir, time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestInitAppendsToExistingFile(t *testing.T) {
	logDir := t.TempDir()
	name := filepath.Join(logDir, time.Now().Format("2006-01-02")+".log")
	require.NoError(t, os.WriteFile(name, []byte("previous run\n"), 0644))

	require.NoError(t, Init(true, logDir))

	Log.Debug("second run")
	Sync()

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "previous run")
	assert.Contains(t, string(data), "second run")
}

func TestInitUnwritableLogDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission bits are not enforced")
	}

	parent := t.TempDir()
	require.NoError(t, os.Chmod(parent, 0500))
	t.Cleanup(func() { _ = os.Chmod(parent, 0755) })

	err := Init(false, filepath.Join(parent, "logs"))
	assert.Error(t, err)
}
