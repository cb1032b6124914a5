package compiler

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/danmuck/tlwire/internal/logging"
)

// Watcher re-translates a schema file whenever it changes on disk.
type Watcher struct {
	mu       sync.Mutex
	input    string
	output   string
	opts     Options
	logger   zerolog.Logger
	watcher  *fsnotify.Watcher
	onResult []func(*Result, error)
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewWatcher(input, output string, opts Options) (*Watcher, error) {
	absIn, err := filepath.Abs(input)
	if err != nil {
		return nil, fmt.Errorf("absolute path: %w", err)
	}
	return &Watcher{
		input:  absIn,
		output: output,
		opts:   opts,
		logger: logging.Logger("watch"),
		stopCh: make(chan struct{}),
	}, nil
}

// OnResult registers a callback run after every translation attempt.
func (w *Watcher) OnResult(fn func(*Result, error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onResult = append(w.onResult, fn)
}

// Rebuild translates once. A failed translation leaves the previous output
// in place.
func (w *Watcher) Rebuild() (*Result, error) {
	res, err := Translate(w.input, w.output, w.opts)
	if err != nil {
		w.logger.Error().Err(err).Str("input", w.input).Msg("translation failed, keeping previous output")
	}

	w.mu.Lock()
	callbacks := slices.Clone(w.onResult)
	w.mu.Unlock()
	for _, fn := range callbacks {
		fn(res, err)
	}
	return res, err
}

// Start watches the schema's directory so editors that save by rename are
// still noticed.
func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(w.input)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}
	w.watcher = watcher

	go w.loop()

	w.logger.Info().Str("path", w.input).Msg("watching schema for changes")
	return nil
}

func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		if w.watcher != nil {
			w.watcher.Close()
		}
	})
}

func (w *Watcher) loop() {
	filename := filepath.Base(w.input)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug().
				Str("event", event.Op.String()).
				Str("file", event.Name).
				Msg("schema changed")
			w.Rebuild()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error().Err(err).Msg("file watcher error")

		case <-w.stopCh:
			return
		}
	}
}
