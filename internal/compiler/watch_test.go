package compiler

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danmuck/tlwire/internal/testutil/testlog"
)

const tinySchema = `{"constructors":[{"id":1,"predicate":"pong","params":[{"name":"id","type":"long"}],"type":"Pong"}],"methods":[]}`

func TestWatcherRebuild(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "schema.json")
	out := filepath.Join(dir, "out.txtar")
	require.NoError(t, os.WriteFile(in, []byte(tinySchema), 0o644))

	w, err := NewWatcher(in, out, DefaultOptions())
	require.NoError(t, err)

	var calls int
	w.OnResult(func(*Result, error) { calls++ })

	res, err := w.Rebuild()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.Types)
	assert.Equal(t, 1, calls)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(in, []byte(`{"constructors":`), 0o644))
	_, err = w.Rebuild()
	assert.Error(t, err)
	assert.Equal(t, 2, calls)

	kept, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, data, kept, "failed rebuild must keep the previous output")
}

func TestWatcherReactsToWrites(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "schema.json")
	out := filepath.Join(dir, "out.txtar")
	require.NoError(t, os.WriteFile(in, []byte(`{"constructors":[],"methods":[]}`), 0o644))

	w, err := NewWatcher(in, out, DefaultOptions())
	require.NoError(t, err)
	results := make(chan *Result, 16)
	w.OnResult(func(res *Result, err error) {
		if err == nil {
			results <- res
		}
	})
	require.NoError(t, w.Start())
	defer w.Stop()

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(in, []byte(tinySchema), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case res := <-results:
			if res.Stats.Types == 1 {
				_, err := os.Stat(out)
				assert.NoError(t, err)
				return
			}
		case <-deadline:
			t.Fatal("no translation after schema write")
		}
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	w, err := NewWatcher(filepath.Join(dir, "schema.json"), filepath.Join(dir, "out"), DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, w.Start())
	w.Stop()
	w.Stop()
}

func TestWatcherCallbackMayRegisterCallbacks(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(in, []byte(tinySchema), 0o644))
	w, err := NewWatcher(in, filepath.Join(dir, "out.txtar"), DefaultOptions())
	require.NoError(t, err)

	var first, late int
	w.OnResult(func(*Result, error) {
		first++
		w.OnResult(func(*Result, error) { late++ })
	})

	_, err = w.Rebuild()
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Zero(t, late, "callbacks added during a rebuild run from the next one")

	_, err = w.Rebuild()
	require.NoError(t, err)
	assert.Equal(t, 2, first)
	assert.Equal(t, 1, late)
}
