package debounce

import (
	"sync"
	"time"
)

// Debouncer emits a value on C only after the input has been stable for the
// configured delay. Every Set cancels the previous pending emission, so the
// emitted value is always one of the values actually passed in.
type Debouncer[T any] struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	out     chan T
	stopped bool
}

func New[T any](delay time.Duration) *Debouncer[T] {
	if delay <= 0 {
		delay = time.Millisecond
	}
	return &Debouncer[T]{
		delay: delay,
		out:   make(chan T, 1),
	}
}

// C delivers settled values. The channel is closed by Stop.
func (d *Debouncer[T]) C() <-chan T {
	return d.out
}

// Set replaces any pending value and restarts the settle timer.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.emit(v) })
}

// Stop cancels any pending emission and closes the output channel. After
// Stop no value will reach the consumer, which makes teardown safe even
// with a timer in flight.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
	close(d.out)
}

func (d *Debouncer[T]) emit(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	// A value the consumer never drained is superseded, not queued.
	select {
	case <-d.out:
	default:
	}
	d.out <- v
}
