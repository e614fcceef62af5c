// Package search provides the debounced, cancellation-aware query helper
// that UI bindings use to drive the catalog. It exists once, here, instead
// of being re-implemented next to every search box.
package search

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period a Debouncer waits for before firing.
const DefaultDelay = 400 * time.Millisecond

// Debouncer coalesces rapid triggers into a single callback: each Trigger
// cancels any pending callback and schedules a new one after the delay, so a
// burst of triggers fires exactly once, with the last callback. Safe for
// concurrent use.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a Debouncer with the given quiet period. A delay of
// zero or less falls back to DefaultDelay.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the quiet period, cancelling any
// previously pending callback.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
