package session

import "context"

// Cell is a single-writer/many-reader latest-value slot: the protocol's
// "watch slot". Writers call Set; readers call Get, which blocks until
// the first Set and afterwards always returns the most recently set
// value, never a queued history. It mirrors the watch-channel primitive
// the source's async client builds its topic demultiplexer on, built here
// from a mutex and a broadcast-on-write done channel since the standard
// library has no ready-made "latest value" watch type.
type Cell[T any] struct {
	mu        chan struct{} // 1-buffered, acts as a mutex
	value     T
	populated bool
	gen       uint64
	waiters   chan struct{}
}

// NewCell returns an empty, unpopulated cell.
func NewCell[T any]() *Cell[T] {
	c := &Cell[T]{
		mu:      make(chan struct{}, 1),
		waiters: make(chan struct{}),
	}
	c.mu <- struct{}{}
	return c
}

// Set stores a new value and wakes every reader currently blocked in Get.
func (c *Cell[T]) Set(v T) {
	<-c.mu
	c.value = v
	c.populated = true
	c.gen++
	close(c.waiters)
	c.waiters = make(chan struct{})
	c.mu <- struct{}{}
}

// Get returns the most recently Set value, blocking until the first Set
// if the cell has never been populated, or until ctx is done.
func (c *Cell[T]) Get(ctx context.Context) (T, error) {
	for {
		<-c.mu
		if c.populated {
			v := c.value
			c.mu <- struct{}{}
			return v, nil
		}
		wait := c.waiters
		c.mu <- struct{}{}
		select {
		case <-wait:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

// TryGet returns the current value and whether the cell has ever been
// populated, without blocking.
func (c *Cell[T]) TryGet() (T, bool) {
	<-c.mu
	v, ok := c.value, c.populated
	c.mu <- struct{}{}
	return v, ok
}

// GetAfter blocks until the cell holds a value newer than lastGen (pass 0
// to wait for the very first value), returning that value and its
// generation so the caller can pass it back in to wait for the next one.
func (c *Cell[T]) GetAfter(ctx context.Context, lastGen uint64) (T, uint64, error) {
	for {
		<-c.mu
		if c.populated && c.gen != lastGen {
			v, g := c.value, c.gen
			c.mu <- struct{}{}
			return v, g, nil
		}
		wait := c.waiters
		c.mu <- struct{}{}
		select {
		case <-wait:
		case <-ctx.Done():
			var zero T
			return zero, lastGen, ctx.Err()
		}
	}
}
