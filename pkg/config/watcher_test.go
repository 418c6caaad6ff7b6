/*
File: watcher_test.go
Description: Tests for configuration hot reload. Verifies initial snapshot
loading, snapshot replacement on file change, and that an invalid rewrite
leaves the last good snapshot in place.
*/

package config

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reloadTimeout = 5 * time.Second

// TestWatcherInitialSnapshot verifies the watcher loads a snapshot up front
func TestWatcherInitialSnapshot(t *testing.T) {
	path := writeConfig(t, validYAML)

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	defer w.Close()

	snap := w.Snapshot()
	require.NotNil(t, snap)
	_, ok := snap.Device("edge1-nyc")
	assert.True(t, ok)
}

// TestWatcherRejectsInvalidInitialConfig verifies construction fails when the
// file does not validate.
func TestWatcherRejectsInvalidInitialConfig(t *testing.T) {
	path := writeConfig(t, strings.Replace(validYAML, "{source}", "{sauce}", 1))

	_, err := NewWatcher(path, nil)
	require.Error(t, err)
}

// TestWatcherReload verifies a rewrite publishes a new snapshot and invokes
// reload callbacks, while in-flight holders keep the old snapshot.
func TestWatcherReload(t *testing.T) {
	path := writeConfig(t, validYAML)

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	defer w.Close()

	reloaded := make(chan *Config, 1)
	w.OnReload(func(old, new *Config) {
		select {
		case reloaded <- new:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	before := w.Snapshot()

	updated := strings.ReplaceAll(validYAML, "cisco_ios", "juniper")
	require.NoError(t, os.WriteFile(path, []byte(updated), 0644))

	select {
	case snap := <-reloaded:
		dev, ok := snap.Device("edge1-nyc")
		require.True(t, ok)
		assert.Equal(t, "juniper", dev.Platform)
	case <-time.After(reloadTimeout):
		t.Fatal("timed out waiting for config reload")
	}

	// The snapshot captured before the rewrite is untouched
	dev, ok := before.Device("edge1-nyc")
	require.True(t, ok)
	assert.Equal(t, "cisco_ios", dev.Platform)
}

// TestWatcherKeepsLastGoodSnapshot verifies an invalid rewrite is discarded
func TestWatcherKeepsLastGoodSnapshot(t *testing.T) {
	path := writeConfig(t, validYAML)

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	require.NoError(t, os.WriteFile(path, []byte("devices: [not, a, map]"), 0644))

	// Give the debounced reload time to run and fail
	time.Sleep(debounceWindow * 4)

	snap := w.Snapshot()
	require.NotNil(t, snap)
	dev, ok := snap.Device("edge1-nyc")
	require.True(t, ok)
	assert.Equal(t, "cisco_ios", dev.Platform)
}
