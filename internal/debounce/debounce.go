// Package debounce collapses bursts of calls into one trailing call.
//
// A Debouncer holds at most one pending timer. Every Call cancels the pending
// one and schedules a new one with the latest argument, so only the last call
// of a busy window ever runs. Calls superseded by a later Call, Cancel or Stop
// never run, even when their timer already expired and is racing the cancel.
package debounce

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Option configures a Debouncer
type Option func(*settings)

type settings struct {
	clock clock.Clock
}

// WithClock sets the time source, clock.NewMock() in tests
func WithClock(c clock.Clock) Option {
	return func(s *settings) {
		s.clock = c
	}
}

// Debouncer delays fn until wait has passed without another Call
type Debouncer[T any] struct {
	mu      sync.Mutex
	clock   clock.Clock
	wait    time.Duration
	fn      func(T)
	timer   *clock.Timer
	gen     uint64
	stopped bool
}

// New wraps fn. fn runs on the timer goroutine.
func New[T any](wait time.Duration, fn func(T), opts ...Option) *Debouncer[T] {
	s := settings{clock: clock.New()}
	for _, opt := range opts {
		opt(&s)
	}
	return &Debouncer[T]{
		clock: s.clock,
		wait:  wait,
		fn:    fn,
	}
}

// Wait returns the quiet window
func (d *Debouncer[T]) Wait() time.Duration {
	return d.wait
}

// Call schedules fn(arg), replacing any pending call
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.cancelLocked()

	gen := d.gen
	d.timer = d.clock.AfterFunc(d.wait, func() {
		d.fire(gen, arg)
	})
}

// Cancel drops the pending call. It reports whether one was pending.
func (d *Debouncer[T]) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelLocked()
}

// Pending reports whether a call is waiting for its timer
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels the pending call and ignores every later Call
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.stopped = true
}

func (d *Debouncer[T]) cancelLocked() bool {
	d.gen++
	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	return true
}

func (d *Debouncer[T]) fire(gen uint64, arg T) {
	d.mu.Lock()
	if gen != d.gen || d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn(arg)
}
