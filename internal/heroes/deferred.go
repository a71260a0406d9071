package heroes

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Deferred is a one-shot result produced by a simulated remote round-trip.
// It resolves exactly once, with either a value or an error.
//
// Hooks registered with Handle and Finally run in registration order on the
// resolving goroutine, before Wait returns to any waiter. A hook registered
// while earlier hooks are still running joins the queue; one registered after
// the queue has drained runs immediately on the caller's goroutine.
type Deferred[T any] struct {
	id   string
	done chan struct{}

	mu       sync.Mutex
	resolved bool
	finished bool
	value    T
	err      error
	hooks    []func(T, error)
}

func newDeferred[T any]() *Deferred[T] {
	return &Deferred[T]{
		id:   generateOpID(),
		done: make(chan struct{}),
	}
}

// generateOpID returns a UUID v7 used to correlate log lines for one operation.
func generateOpID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// ID identifies the operation in logs.
func (d *Deferred[T]) ID() string { return d.id }

// Done is closed once the result is available and all hooks have run.
func (d *Deferred[T]) Done() <-chan struct{} { return d.done }

// Resolved reports whether the result is available.
func (d *Deferred[T]) Resolved() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the result is available or ctx is done. Cancelling ctx
// only drops the caller's interest; the operation still resolves and its
// hooks still run.
func (d *Deferred[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-d.done:
		return d.value, d.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Handle registers fn to receive the outcome.
func (d *Deferred[T]) Handle(fn func(value T, err error)) *Deferred[T] {
	d.mu.Lock()
	if !d.finished {
		d.hooks = append(d.hooks, fn)
		d.mu.Unlock()
		return d
	}
	v, err := d.value, d.err
	d.mu.Unlock()

	fn(v, err)
	return d
}

// Finally registers fn to run once the operation resolves, whatever the
// outcome. It is the place to release a loading.Coordinator reference.
func (d *Deferred[T]) Finally(fn func()) *Deferred[T] {
	return d.Handle(func(T, error) { fn() })
}

func (d *Deferred[T]) resolve(v T) { d.settle(v, nil) }

func (d *Deferred[T]) reject(err error) {
	var zero T
	d.settle(zero, err)
}

func (d *Deferred[T]) settle(v T, err error) {
	d.mu.Lock()
	if d.resolved {
		d.mu.Unlock()
		return
	}
	d.resolved = true
	d.value, d.err = v, err
	d.mu.Unlock()

	for {
		d.mu.Lock()
		hooks := d.hooks
		d.hooks = nil
		if len(hooks) == 0 {
			d.finished = true
			d.mu.Unlock()
			break
		}
		d.mu.Unlock()

		for _, fn := range hooks {
			fn(v, err)
		}
	}
	close(d.done)
}
