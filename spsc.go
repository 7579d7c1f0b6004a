package rolling

import "sync/atomic"

// spscState is the storage shared by a Producer/Consumer pair.
//
// Cursors are sentinel-style indices in [0, size), published atomically so
// that a cursor update made on one side is visible on the other together with
// the slot contents written before it. Padding keeps the producer-owned and
// consumer-owned cursors on separate cache lines.
type spscState[T any] struct {
	data []T

	_           [64]byte
	writeCursor atomic.Uint32 // Advanced by the producer, read by the consumer
	writeActive atomic.Uint32 // Guard: detects a second concurrent producer
	_           [56]byte
	readCursor  atomic.Uint32 // Advanced by the consumer, read by the producer
	readActive  atomic.Uint32 // Guard: detects a second concurrent consumer
	_           [56]byte
}

// Producer is the write half of an SPSC pair. Exactly one goroutine may use
// it; a second concurrent Write panics.
type Producer[T any] struct {
	s *spscState[T]
}

// Consumer is the read half of an SPSC pair. Exactly one goroutine may use
// it; a second concurrent Read panics.
type Consumer[T any] struct {
	s *spscState[T]
}

// NewPair creates one buffer of size slots pre-filled with def and returns
// its two halves. Hand the Producer to the writing goroutine and the Consumer
// to the reading goroutine; neither half exposes the other's operations, so
// the single-writer/single-reader discipline is structural rather than a
// documentation comment.
//
// Usable capacity is size-1, as for RollingBuffer. Panics if size < 1.
func NewPair[T any](size int, def T) (*Producer[T], *Consumer[T]) {
	if size < 1 {
		panic("rolling: size must be >= 1")
	}
	data := make([]T, size)
	for i := range data {
		data[i] = def
	}
	s := &spscState[T]{data: data}
	return &Producer[T]{s: s}, &Consumer[T]{s: s}
}

func advance32(i, size uint32) uint32 {
	i++
	if i == size {
		return 0
	}
	return i
}

// Write stores v if the buffer is not full. Returns false when full; the
// caller chooses the retry policy (spin, sleep, or drop).
func (p *Producer[T]) Write(v T) bool {
	s := p.s
	if !s.writeActive.CompareAndSwap(0, 1) {
		panic("rolling: concurrent Write on SPSC pair - only one producer allowed")
	}
	defer s.writeActive.Store(0)

	w := s.writeCursor.Load()
	next := advance32(w, uint32(len(s.data)))
	if next == s.readCursor.Load() {
		return false
	}
	s.data[w] = v
	s.writeCursor.Store(next)
	return true
}

// WriteUnchecked stores v unconditionally and advances the write cursor,
// overwriting the oldest unread element when full.
//
// PRECONDITION: with a concurrently running Consumer this may write a slot
// the consumer is reading; it is only well-defined when the producer is known
// to stay behind the consumer, or when both halves run in one goroutine.
func (p *Producer[T]) WriteUnchecked(v T) {
	s := p.s
	if !s.writeActive.CompareAndSwap(0, 1) {
		panic("rolling: concurrent WriteUnchecked on SPSC pair - only one producer allowed")
	}
	defer s.writeActive.Store(0)

	w := s.writeCursor.Load()
	s.data[w] = v
	s.writeCursor.Store(advance32(w, uint32(len(s.data))))
}

// Cap returns the usable capacity of the shared buffer.
func (p *Producer[T]) Cap() int {
	return len(p.s.data) - 1
}

// Read removes and returns the oldest unread element. Returns the zero value
// and false when the buffer is empty.
//
// Unlike RollingBuffer.Read this returns the value, not a pointer: the
// producer may reuse the slot as soon as the read cursor advances, so a
// reference must not cross the concurrency boundary.
func (c *Consumer[T]) Read() (T, bool) {
	s := c.s
	if !s.readActive.CompareAndSwap(0, 1) {
		panic("rolling: concurrent Read on SPSC pair - only one consumer allowed")
	}
	defer s.readActive.Store(0)

	r := s.readCursor.Load()
	if r == s.writeCursor.Load() {
		var zero T
		return zero, false
	}
	v := s.data[r]
	s.readCursor.Store(advance32(r, uint32(len(s.data))))
	return v, true
}

// Len returns the number of unread elements. With a concurrently running
// producer the value may be stale by the time it is observed.
func (c *Consumer[T]) Len() int {
	s := c.s
	d := int(s.writeCursor.Load()) - int(s.readCursor.Load())
	if d < 0 {
		d += len(s.data)
	}
	return d
}

// Cap returns the usable capacity of the shared buffer.
func (c *Consumer[T]) Cap() int {
	return len(c.s.data) - 1
}
