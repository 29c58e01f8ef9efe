package eui

import "sync"

// Dispatcher queues work for the UI goroutine. Any goroutine may call Do;
// the game loop calls Drain once per frame.
type Dispatcher struct {
	mu    sync.Mutex
	queue []func()
}

func (d *Dispatcher) Do(fn func()) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	d.queue = append(d.queue, fn)
	d.mu.Unlock()
}

// Drain runs the queued functions in order and returns how many ran. Work
// queued while draining waits for the next call.
func (d *Dispatcher) Drain() int {
	d.mu.Lock()
	q := d.queue
	d.queue = nil
	d.mu.Unlock()
	for _, fn := range q {
		fn()
	}
	return len(q)
}

func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}
