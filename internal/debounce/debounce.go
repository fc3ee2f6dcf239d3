// Package debounce delays delivery of a rapidly changing value until it has
// been stable for a fixed quiet period.
package debounce

import (
	"sync"
	"time"
)

// Debouncer holds the latest value passed to Set and delivers it to the
// callback once no further Set has arrived for the configured interval.
// Each Set restarts the timer, so the callback fires at most once per quiet
// period, with the final value. The callback runs on a timer goroutine.
type Debouncer[T any] struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func(T)
	timer    *time.Timer
	pending  T
	armed    bool
}

// New builds a debouncer delivering to fn after interval of quiet.
func New[T any](interval time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{interval: interval, fn: fn}
}

// Set records v as the pending value and restarts the quiet-period timer,
// cancelling any previously pending delivery.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = v
	d.armed = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

func (d *Debouncer[T]) fire() {
	d.mu.Lock()
	if !d.armed {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.armed = false
	d.mu.Unlock()
	d.fn(v)
}

// Flush delivers any pending value immediately instead of waiting out the
// quiet period.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	d.fire()
}

// Stop cancels any pending delivery. A later Set re-arms the debouncer.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.armed = false
}
