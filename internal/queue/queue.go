// Package queue presents the SPSC hand-off contract behind one interface so
// the demos and benchmarks can swap implementations.
//
// Three implementations are provided:
//   - Channel: buffered channel, the standard library approach
//   - Ring: a rolling Producer/Consumer pair (lock-free, bounded)
//   - Overwrite: a plain RollingBuffer in overwrite-on-full mode,
//     single-goroutine only
//
// All implementations are non-blocking: Write returns false when full and
// Read returns false when empty; retry policy belongs to the caller.
package queue

// Queue is a bounded FIFO hand-off between one producer and one consumer.
type Queue[T any] interface {
	// Write adds an element. Returns false if the queue is full.
	Write(T) bool

	// Read removes and returns the oldest element.
	// Returns false if the queue is empty.
	Read() (T, bool)

	// Len returns the current number of elements.
	Len() int

	// Cap returns the usable capacity.
	Cap() int
}
