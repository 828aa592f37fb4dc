package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/grievdesk/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.txt")
	require.NoError(t, os.WriteFile(path, []byte("TRADES\nFitter\n"), 0o600))

	rec := &recorder{}
	l := NewLoader(NewFileSource(path), logging.NewNop(), WithObserver(rec.observe))

	w, err := NewWatcher(path, l, logging.NewNop())
	require.NoError(t, err)
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(path, []byte("TRADES\nWelder\n"), 0o600))

	require.Eventually(t, func() bool {
		for _, r := range rec.all() {
			if r == ResultFresh {
				return true
			}
		}
		return false
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.txt")
	require.NoError(t, os.WriteFile(path, []byte("TRADES\nFitter\n"), 0o600))

	rec := &recorder{}
	l := NewLoader(NewFileSource(path), logging.NewNop(), WithObserver(rec.observe))

	w, err := NewWatcher(path, l, logging.NewNop())
	require.NoError(t, err)
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))
	time.Sleep(150 * time.Millisecond)

	assert.Empty(t, rec.all())
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "catalog.txt"), NewLoader(NewFileSource("x"), logging.NewNop()), logging.NewNop())
	require.Error(t, err)
}
