package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWrite(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.txt")

	n, err := AtomicWrite(dst, strings.NewReader("payload"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("payload")), n)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestAtomicWriteReplacesAndLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(dst, []byte("old"), 0644))

	_, err := AtomicWrite(dst, strings.NewReader("new"))
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.txt", entries[0].Name())
}

func TestAtomicWriteCreatesParentDirs(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "a", "b", "out.txt")

	_, err := AtomicWrite(dst, strings.NewReader("x"))
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}
