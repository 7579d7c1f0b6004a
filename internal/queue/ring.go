package queue

import (
	rolling "github.com/zachdedoo13/rolling-threadsafe-buffer"
)

// Ring adapts a rolling Producer/Consumer pair to the Queue interface.
//
// The SPSC discipline of the underlying pair carries over: exactly one
// goroutine may call Write and exactly one may call Read. Violations panic
// via the pair's guards.
type Ring[T any] struct {
	p *rolling.Producer[T]
	c *rolling.Consumer[T]
}

// NewRing creates a Ring holding up to size-1 elements.
func NewRing[T any](size int) *Ring[T] {
	var def T
	p, c := rolling.NewPair(size, def)
	return &Ring[T]{p: p, c: c}
}

// Write adds an element; returns false if the buffer is full.
func (q *Ring[T]) Write(v T) bool {
	return q.p.Write(v)
}

// Read removes and returns the oldest element; returns false if empty.
func (q *Ring[T]) Read() (T, bool) {
	return q.c.Read()
}

// Len returns the current number of unread elements.
func (q *Ring[T]) Len() int {
	return q.c.Len()
}

// Cap returns the usable capacity.
func (q *Ring[T]) Cap() int {
	return q.c.Cap()
}
