package option

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is the quiet period before a file change is reported.
const DefaultDebounce = 250 * time.Millisecond

// debouncer coalesces rapid events into a single callback invocation.
type debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	seq      uint64
}

func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		if seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		callback()
	})
}

func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Watcher reports changes to an option file.
//
// The parent directory is watched rather than the file so that editors
// replacing the file by rename are still seen.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce *debouncer
	onChange func()
	logger   zerolog.Logger
	done     chan struct{}
	wg       sync.WaitGroup
}

// NewWatcher starts watching path. onChange runs on a background goroutine
// once per burst of writes; callers must hand work back to their own goroutine.
func NewWatcher(path string, debounce time.Duration, onChange func(), logger zerolog.Logger) (*Watcher, error) {
	if path == "" {
		return nil, errors.New("watcher: empty path")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watcher: resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: %w", err)
	}
	if err = fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watcher: watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		watcher:  fw,
		debounce: &debouncer{duration: debounce},
		onChange: onChange,
		logger:   logger,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug().Str("file", w.path).Str("op", ev.Op.String()).Msg("option file changed")
			w.debounce.trigger(w.onChange)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Str("file", w.path).Msg("option file watch error")
		}
	}
}

// Close stops the watcher and cancels any pending callback.
func (w *Watcher) Close() error {
	close(w.done)
	w.debounce.cancel()
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
