// Command cycle drives a single-goroutine fill-drain cycle across a small
// buffer, exercising the full/empty boundaries and cursor wraparound.
//
// Each cycle: nine writes succeed, further writes are rejected until a read
// frees a slot, nine reads return the written values in order, further reads
// report empty.
//
// Usage:
//
//	go run ./cmd/cycle -cycles 5
package main

import (
	"flag"
	"fmt"
	"os"

	rolling "github.com/zachdedoo13/rolling-threadsafe-buffer"
)

func main() {
	cycles := flag.Int("cycles", 5, "number of fill-drain cycles")
	flag.Parse()

	const size = 10
	b := rolling.New[int](size, 0)

	fmt.Printf("Fill-drain: %d cycles over a %d-slot buffer (capacity %d)\n",
		*cycles, size, b.Cap())

	for c := 0; c < *cycles; c++ {
		// Fill to capacity.
		for i := 0; i < 9; i++ {
			if !b.Write(i) {
				fail("cycle %d: write %d rejected", c, i)
			}
		}
		// Full buffer rejects writes no matter how often they are retried.
		for i := 0; i < 50; i++ {
			if b.Write(0) {
				fail("cycle %d: write accepted on full buffer", c)
			}
		}

		// Drain in FIFO order.
		for i := 0; i < 9; i++ {
			v, ok := b.Read()
			if !ok || *v != i {
				fail("cycle %d: read %d gave (%v, %v)", c, i, v, ok)
			}
		}
		// Empty buffer stays empty.
		for i := 0; i < 50; i++ {
			if _, ok := b.Read(); ok {
				fail("cycle %d: read returned a value on empty buffer", c)
			}
		}
	}

	fmt.Printf("OK: %d cycles, %d writes, FIFO order preserved across wraparound\n",
		*cycles, *cycles*9)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "FAIL: "+format+"\n", args...)
	os.Exit(1)
}
