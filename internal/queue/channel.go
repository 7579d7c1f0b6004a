package queue

// Channel wraps a buffered channel as a Queue.
//
// Each Write/Read performs a non-blocking channel operation via select with
// default. This is the baseline the ring implementations are measured
// against.
type Channel[T any] struct {
	ch chan T
}

// NewChannel creates a Channel with the given buffer size.
func NewChannel[T any](size int) *Channel[T] {
	return &Channel[T]{ch: make(chan T, size)}
}

// Write adds an element; returns false if the channel buffer is full.
func (q *Channel[T]) Write(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// Read removes and returns an element; returns false if empty.
func (q *Channel[T]) Read() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Len returns the current number of buffered elements.
func (q *Channel[T]) Len() int {
	return len(q.ch)
}

// Cap returns the channel buffer capacity.
func (q *Channel[T]) Cap() int {
	return cap(q.ch)
}
