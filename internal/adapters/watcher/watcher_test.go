package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/localci/internal/adapters/watcher"
	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/core/ports"
)

func TestWatcher_ReportsConfigWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 2.1\n"), domain.FilePerm))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	w := watcher.NewWatcher(nil)
	require.NoError(t, w.Start(ctx, dir))
	defer func() { _ = w.Stop() }()

	require.NoError(t, os.WriteFile(path, []byte("version: 2.1\njobs: {}\n"), domain.FilePerm))

	var got ports.WatchEvent
	for event := range w.Events() {
		if event.Path == path {
			got = event
			break
		}
	}
	assert.Equal(t, path, got.Path)
	assert.Contains(t, []ports.WatchOp{ports.OpWrite, ports.OpCreate}, got.Operation)
}

func TestWatcher_MissingDir(t *testing.T) {
	w := watcher.NewWatcher(nil)
	err := w.Start(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.ErrorContains(t, err, domain.ErrWatcherFailed.Error())
	require.NoError(t, w.Stop())
}
