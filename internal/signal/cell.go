// Package signal provides an observable value cell with equality-based
// change notification.
package signal

import "sync"

// Cell holds a value of type T and notifies subscribers when the value
// changes according to the cell's equality function.
//
// Subscribers run synchronously on the goroutine that called Set, in
// subscription order, after the cell's lock is released. A subscriber may read
// the cell but must not synchronously mutate whatever owns it.
type Cell[T any] struct {
	mu     sync.RWMutex
	value  T
	equal  func(a, b T) bool
	nextID int
	subs   []subscription[T]
}

type subscription[T any] struct {
	id int
	fn func(T)
}

// New creates a cell holding initial. equal decides whether a Set is a change;
// a nil equal treats every Set as a change.
func New[T any](initial T, equal func(a, b T) bool) *Cell[T] {
	if equal == nil {
		equal = func(T, T) bool { return false }
	}
	return &Cell[T]{value: initial, equal: equal}
}

// Comparable creates a cell for a comparable type using ==.
func Comparable[T comparable](initial T) *Cell[T] {
	return New(initial, func(a, b T) bool { return a == b })
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set stores v and notifies subscribers if it differs from the current value.
// It reports whether the value changed.
func (c *Cell[T]) Set(v T) bool {
	c.mu.Lock()
	if c.equal(c.value, v) {
		c.mu.Unlock()
		return false
	}
	c.value = v
	subs := make([]subscription[T], len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
	return true
}

// Subscribe registers fn to be called with every new value. The returned
// function removes the subscription; calling it more than once is harmless.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscription[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, s := range c.subs {
				if s.id == id {
					c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Readonly is the read side of a Cell handed to observers.
type Readonly[T any] interface {
	Get() T
	Subscribe(fn func(T)) (unsubscribe func())
}

var _ Readonly[int] = (*Cell[int])(nil)
