// Package rolling provides a fixed-capacity single-producer single-consumer
// circular buffer for data hand-off without allocation on the hot path.
//
// Two access styles are offered:
//   - RollingBuffer: plain cursors, no synchronization of any kind. For use
//     from a single goroutine, or between contexts whose ordering the caller
//     has already established by other means.
//   - Producer/Consumer handle pair (NewPair): the same buffer layout with
//     atomically published cursors, safe for exactly one producer goroutine
//     and one consumer goroutine.
//
// # Capacity model
//
// A buffer constructed with size S holds at most S-1 elements through the
// checked API. One slot is kept as a sentinel so that the two cursors alone
// can distinguish "empty" (cursors equal) from "full" (write cursor one step
// behind read cursor), with no occupancy counter and no flag.
//
// # Checked vs unchecked writes
//
// Write refuses to overwrite unread data and reports false when full.
// WriteUnchecked always stores and advances; if the producer outpaces the
// consumer it silently discards the oldest not-yet-read elements. That is a
// documented precondition, not a reported error: the cursors stay valid and
// reads continue to work, but overwritten values are gone.
package rolling

// RollingBuffer is a fixed-capacity circular buffer with plain (non-atomic)
// cursors.
//
// It performs no synchronization. Concurrent use from multiple goroutines is
// undefined behavior under the Go memory model; use NewPair for that. Within
// one goroutine, or under caller-supplied ordering, the write side never
// touches the read cursor and vice versa.
type RollingBuffer[T any] struct {
	data        []T
	writeCursor int
	readCursor  int
}

// New creates a buffer with size slots pre-filled with def.
// Usable capacity through the checked API is size-1.
// Panics if size < 1.
func New[T any](size int, def T) *RollingBuffer[T] {
	if size < 1 {
		panic("rolling: size must be >= 1")
	}
	data := make([]T, size)
	for i := range data {
		data[i] = def
	}
	return &RollingBuffer[T]{data: data}
}

// advance steps an index forward by one slot, wrapping to 0 at size.
// A branch, not a modulo: size is fixed for the buffer's lifetime and the
// branch predicts well in tight loops.
func advance(i, size int) int {
	i++
	if i == size {
		return 0
	}
	return i
}

// Write stores v if the buffer is not full.
// Returns false, leaving all state unchanged, when the buffer is full.
func (b *RollingBuffer[T]) Write(v T) bool {
	next := advance(b.writeCursor, len(b.data))
	if next == b.readCursor {
		return false
	}
	b.data[b.writeCursor] = v
	b.writeCursor = next
	return true
}

// Read returns a pointer to the oldest unread element and advances the read
// cursor. Returns (nil, false) when the buffer is empty.
//
// The pointer refers into the backing store and is valid only until a write
// reuses that slot; consume it before issuing further writes.
func (b *RollingBuffer[T]) Read() (*T, bool) {
	if b.readCursor == b.writeCursor {
		return nil, false
	}
	v := &b.data[b.readCursor]
	b.readCursor = advance(b.readCursor, len(b.data))
	return v, true
}

// WriteUnchecked stores v unconditionally and advances the write cursor.
//
// PRECONDITION: the producer must not outpace the consumer. If it does, the
// write cursor laps the read cursor and the oldest unread elements are
// silently overwritten. No error is reported; the buffer's cursor invariants
// remain intact.
func (b *RollingBuffer[T]) WriteUnchecked(v T) {
	b.data[b.writeCursor] = v
	b.writeCursor = advance(b.writeCursor, len(b.data))
}

// ReadUnchecked is the read counterpart for WriteUnchecked pairings. It is
// itself bounds-safe: the emptiness test and advance are identical to Read.
func (b *RollingBuffer[T]) ReadUnchecked() (*T, bool) {
	if b.readCursor == b.writeCursor {
		return nil, false
	}
	v := &b.data[b.readCursor]
	b.readCursor = advance(b.readCursor, len(b.data))
	return v, true
}

// Len returns the number of unread elements.
func (b *RollingBuffer[T]) Len() int {
	d := b.writeCursor - b.readCursor
	if d < 0 {
		d += len(b.data)
	}
	return d
}

// Cap returns the usable capacity (one less than the slot count; one slot is
// the full/empty sentinel).
func (b *RollingBuffer[T]) Cap() int {
	return len(b.data) - 1
}
