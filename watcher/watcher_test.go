package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherSignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keybinds.conf")
	require.NoError(t, os.WriteFile(path, []byte("bind = $mainMod, Q, killactive,\n"), 0644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("bind = $mainMod, W, exec, firefox\n"), 0644))

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no event after writing the watched file")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keybinds.conf")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.conf"), []byte("y\n"), 0644))

	select {
	case <-w.Events():
		t.Fatal("unexpected event for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherSignalsOnAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keybinds.conf")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	// Simulate an atomic save: write a temp file and rename it over the target
	tempPath := filepath.Join(dir, ".tmp_replace")
	require.NoError(t, os.WriteFile(tempPath, []byte("y\n"), 0644))
	require.NoError(t, os.Rename(tempPath, path))

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no event after atomic replace")
	}
}
