package assets

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/spaghettifunk/ogltech/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changes struct {
	mutex sync.Mutex
	paths []string
}

func (c *changes) record(path string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.paths = append(c.paths, path)
}

func (c *changes) count() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.paths)
}

func (c *changes) last() string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if len(c.paths) == 0 {
		return ""
	}
	return c.paths[len(c.paths)-1]
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.toml")
	other := filepath.Join(dir, "other.toml")
	require.NoError(t, os.WriteFile(scene, []byte("a"), 0o644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()

	var seen changes
	require.NoError(t, w.Watch(scene, seen.record))

	// files in the same directory that nobody watches are ignored
	require.NoError(t, os.WriteFile(other, []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(scene, []byte("c"), 0o644))

	assert.Eventually(t, func() bool { return seen.count() > 0 }, 5*time.Second, 10*time.Millisecond)
	abs, err := filepath.Abs(scene)
	require.NoError(t, err)
	assert.Equal(t, abs, seen.last())
}

func TestWatcherReportsReplacedFiles(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(scene, []byte("a"), 0o644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()

	var seen changes
	require.NoError(t, w.Watch(scene, seen.record))

	// save through a rename, like most editors do
	tmp := filepath.Join(dir, ".scene.toml.swp")
	require.NoError(t, os.WriteFile(tmp, []byte("b"), 0o644))
	require.NoError(t, os.Rename(tmp, scene))

	assert.Eventually(t, func() bool { return seen.count() > 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestWatcherUnwatch(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(scene, []byte("a"), 0o644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()

	var seen changes
	require.NoError(t, w.Watch(scene, seen.record))
	require.NoError(t, w.Unwatch(scene))
	require.NoError(t, w.Unwatch(scene), "unwatching twice is a no-op")

	require.NoError(t, os.WriteFile(scene, []byte("b"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 0, seen.count())
}

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Close(), core.ErrWatcherClosed)
	assert.ErrorIs(t, w.Watch(filepath.Join(t.TempDir(), "x"), func(string) {}), core.ErrWatcherClosed)
}
