package queue

import (
	rolling "github.com/zachdedoo13/rolling-threadsafe-buffer"
)

// Overwrite adapts a plain RollingBuffer in overwrite-on-full mode: Write
// always succeeds and silently discards the oldest unread element when full.
//
// Single goroutine only. The underlying buffer has no synchronization, so
// this implementation must not be shared across goroutines.
type Overwrite[T any] struct {
	b *rolling.RollingBuffer[T]
}

// NewOverwrite creates an Overwrite queue holding up to size-1 elements
// before old data starts being dropped.
func NewOverwrite[T any](size int) *Overwrite[T] {
	var def T
	return &Overwrite[T]{b: rolling.New(size, def)}
}

// Write always stores v; when full it evicts the oldest unread element.
func (q *Overwrite[T]) Write(v T) bool {
	if q.b.Len() == q.b.Cap() {
		// At checked capacity the next unchecked write would land on the
		// sentinel slot and lap the read cursor, leaving only one element
		// observable. Drop the oldest first so occupancy stays at Cap.
		q.b.ReadUnchecked()
	}
	q.b.WriteUnchecked(v)
	return true
}

// Read removes and returns the oldest surviving element; false if empty.
func (q *Overwrite[T]) Read() (T, bool) {
	p, ok := q.b.ReadUnchecked()
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// Len returns the current number of unread elements.
func (q *Overwrite[T]) Len() int {
	return q.b.Len()
}

// Cap returns the usable capacity.
func (q *Overwrite[T]) Cap() int {
	return q.b.Cap()
}
