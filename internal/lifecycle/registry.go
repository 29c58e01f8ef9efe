// Package lifecycle tracks the application's open top-level windows and
// restarts the process.
package lifecycle

import (
	"context"
	"errors"
	"sync"

	"github.com/remeh/sizedwaitgroup"
)

// Window is a closable top-level window.
type Window interface {
	Title() string
	Close()
}

// Dispatcher runs functions on the goroutine that owns a window.
type Dispatcher interface {
	Do(func())
}

type entry struct {
	id    int
	win   Window
	owner Dispatcher
}

// Registry is the set of open top-level windows.
type Registry struct {
	mu      sync.Mutex
	nextID  int
	entries []entry

	// MaxPending bounds how many close requests wait at once in CloseAll.
	MaxPending int
}

// Register adds win, closed on owner. The returned function removes it and
// is safe to call more than once.
func (r *Registry) Register(win Window, owner Dispatcher) func() {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.entries = append(r.entries, entry{id: id, win: win, owner: owner})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(id) })
	}
}

func (r *Registry) remove(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// Windows returns the registered windows in registration order.
func (r *Registry) Windows() []Window {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Window, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.win)
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// ErrCloseTimeout is returned by CloseAll when ctx ends before every window
// has closed.
var ErrCloseTimeout = errors.New("lifecycle: windows did not close")

// CloseAll asks every registered window to close on its owner, newest
// first, and waits for the closes to run. It must not be called from an owner goroutine
// whose dispatcher is only drained by that same goroutine.
func (r *Registry) CloseAll(ctx context.Context) error {
	r.mu.Lock()
	pending := append([]entry(nil), r.entries...)
	r.mu.Unlock()

	limit := r.MaxPending
	if limit <= 0 {
		limit = 8
	}
	swg := sizedwaitgroup.New(limit)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := len(pending) - 1; i >= 0; i-- {
			e := pending[i]
			if err := swg.AddWithContext(ctx); err != nil {
				return
			}
			closed := make(chan struct{})
			e.owner.Do(func() {
				defer close(closed)
				e.win.Close()
			})
			go func() {
				defer swg.Done()
				select {
				case <-closed:
				case <-ctx.Done():
				}
			}()
		}
		swg.Wait()
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ErrCloseTimeout
	}
	if ctx.Err() != nil {
		return ErrCloseTimeout
	}
	for _, e := range pending {
		r.remove(e.id)
	}
	return nil
}
