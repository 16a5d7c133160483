package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsSpecAndScriptEdits(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "scripts"), 0o755))

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "gameplay.yaml"), []byte("fall_speed: 120\n"), 0o644))
	require.Eventually(t, func() bool {
		specs, _ := w.Changed()
		return specs
	}, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", "difficulty.tengo"), []byte("next := interval\n"), 0o644))
	require.Eventually(t, func() bool {
		_, scripts := w.Changed()
		return scripts
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	time.Sleep(150 * time.Millisecond)

	specs, scripts := w.Changed()
	assert.False(t, specs)
	assert.False(t, scripts)
}

func TestNilWatcherChanged(t *testing.T) {
	var w *Watcher
	specs, scripts := w.Changed()
	assert.False(t, specs)
	assert.False(t, scripts)
}
