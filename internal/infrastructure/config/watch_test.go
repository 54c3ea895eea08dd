package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsTableEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	path := filepath.Join(dir, "weapons.yaml")
	require.NoError(t, os.WriteFile(path, []byte("starter: blaster\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, "weapons.yaml", filepath.Base(name))
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the table write")
	}
}

func TestWatcher_CloseEndsTheStreams(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)

	// More distinct files than the Events buffer holds, so the run
	// loop can be mid-send when Close lands.
	for i := 0; i < 40; i++ {
		name := fmt.Sprintf("table%02d.yaml", i)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x: 1\n"), 0o644))
	}
	time.Sleep(200 * time.Millisecond)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "closing twice is fine")

	for range w.Events {
	}
	for range w.Errors {
	}
	_, ok := <-w.Events
	assert.False(t, ok, "events closes with the watcher")
}

func TestIsTableFile(t *testing.T) {
	assert.True(t, isTableFile("tables/weapons.yaml"))
	assert.True(t, isTableFile("TABLES.YML"))
	assert.False(t, isTableFile("notes.txt"))
	assert.False(t, isTableFile("weapons.yaml.bak"))
}
