// Package watch feeds file changes into an observable tree.
//
// A Reloader monitors a single file, decodes it on every change and replaces
// the tree's root with the decoded value, so subscriptions on the tree fire
// for exactly the parts of the file that changed.
package watch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/otree"
)

// Sentinel errors for the reloader lifecycle.
var (
	// ErrAlreadyStarted is returned when Start is called twice.
	ErrAlreadyStarted = errors.New("reloader already started")

	// ErrClosed is returned when Start is called after Close.
	ErrClosed = errors.New("reloader is closed")
)

// DefaultDebounce is the delay between the last observed file event and the
// reload it triggers. Editors and atomic-rename writers produce bursts of
// events for one logical save; debouncing collapses the burst into a single
// tree replacement.
const DefaultDebounce = 100 * time.Millisecond

// ErrorHandler receives read and decode failures. Failures leave the tree
// untouched; the previous root stays current.
type ErrorHandler func(err error)

type config struct {
	debounce time.Duration
	onError  ErrorHandler
}

// Option configures a Reloader.
type Option func(*config)

// WithDebounce sets the event debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithErrorHandler installs a handler for read and decode failures. Without
// one, failures are dropped.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) {
		c.onError = h
	}
}

// Reloader monitors one file and pushes its decoded contents into a tree.
type Reloader[N any] struct {
	tree *otree.Tree[N]
	dec  Decoder[N]
	path string
	cfg  config

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
	started bool
	closed  bool
}

// NewReloader creates a reloader that decodes path with dec and applies the
// result to tree. Nothing is watched until Start is called.
func NewReloader[N any](path string, dec Decoder[N], tree *otree.Tree[N], opts ...Option) *Reloader[N] {
	cfg := config{debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Reloader[N]{
		tree: tree,
		dec:  dec,
		path: path,
		cfg:  cfg,
		done: make(chan struct{}),
	}
}

// Start performs an initial load and begins watching the file's directory.
// Watching the directory rather than the file keeps the reloader working
// across atomic replace-by-rename saves.
func (r *Reloader[N]) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if r.started {
		return ErrAlreadyStarted
	}

	abs, err := filepath.Abs(r.path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return err
	}

	r.watcher = watcher
	r.started = true

	if err := r.reload(abs); err != nil {
		r.report(err)
	}

	r.wg.Add(1)
	go r.loop(abs)
	return nil
}

// Close stops watching. Safe to call multiple times and before Start.
func (r *Reloader[N]) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	started := r.started
	r.mu.Unlock()

	close(r.done)
	if !started {
		return nil
	}
	err := r.watcher.Close()
	r.wg.Wait()
	return err
}

// loop consumes watcher events until Close, reloading the file after the
// debounce interval elapses with no further events.
func (r *Reloader[N]) loop(abs string) {
	defer r.wg.Done()

	var pending <-chan time.Time
	for {
		select {
		case <-r.done:
			return

		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Op.Has(fsnotify.Write) &&
				!event.Op.Has(fsnotify.Create) &&
				!event.Op.Has(fsnotify.Rename) {
				continue
			}
			pending = time.After(r.cfg.debounce)

		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.report(err)

		case <-pending:
			pending = nil
			if err := r.reload(abs); err != nil {
				r.report(err)
			}
		}
	}
}

// reload reads and decodes the file and replaces the tree root.
func (r *Reloader[N]) reload(abs string) error {
	data, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("reading %s: %w", abs, err)
	}
	root, err := r.dec(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", abs, err)
	}
	r.tree.Set(root)
	return nil
}

func (r *Reloader[N]) report(err error) {
	if r.cfg.onError != nil {
		r.cfg.onError(err)
	}
}
