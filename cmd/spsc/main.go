// Command spsc runs one producer and one consumer goroutine against a shared
// rolling buffer and verifies exactly-once, in-order delivery.
//
// Usage:
//
//	go run ./cmd/spsc -n 60 -size 25 -pin-producer 0 -pin-consumer 1
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	rolling "github.com/zachdedoo13/rolling-threadsafe-buffer"
	"github.com/zachdedoo13/rolling-threadsafe-buffer/internal/affinity"
)

func main() {
	count := flag.Int("n", 60, "number of values to hand off")
	size := flag.Int("size", 25, "buffer slot count (usable capacity is size-1)")
	pinProducer := flag.Int("pin-producer", -1, "CPU to pin the producer to (-1: no pinning)")
	pinConsumer := flag.Int("pin-consumer", -1, "CPU to pin the consumer to (-1: no pinning)")
	flag.Parse()

	fmt.Printf("SPSC hand-off: %d values through a %d-slot buffer\n", *count, *size)

	p, c := rolling.NewPair[int](*size, 0)
	done := make(chan struct{})
	start := time.Now()

	go func() {
		defer close(done)
		if *pinProducer >= 0 {
			if err := affinity.Pin(*pinProducer); err != nil {
				fmt.Fprintf(os.Stderr, "producer pin: %v\n", err)
			}
		}
		for i := 0; i < *count; i++ {
			for !p.Write(i) {
				// Full: the consumer decides the pace.
			}
		}
	}()

	if *pinConsumer >= 0 {
		if err := affinity.Pin(*pinConsumer); err != nil {
			fmt.Fprintf(os.Stderr, "consumer pin: %v\n", err)
		}
	}

	seen := make(map[int]bool, *count)
	next := 0
	for next < *count {
		v, ok := c.Read()
		if !ok {
			continue
		}
		if seen[v] {
			fmt.Fprintf(os.Stderr, "FAIL: value %d observed twice\n", v)
			os.Exit(1)
		}
		seen[v] = true
		if v != next {
			fmt.Fprintf(os.Stderr, "FAIL: out of order, read %d want %d\n", v, next)
			os.Exit(1)
		}
		next++
	}
	<-done
	elapsed := time.Since(start)

	perOp := float64(elapsed.Nanoseconds()) / float64(*count)
	fmt.Printf("\nDelivered %d values exactly once, in order\n", *count)
	fmt.Printf("  Elapsed:    %v (%.2f ns/value)\n", elapsed, perOp)
	fmt.Printf("  Throughput: %.2f M values/sec\n", 1000/perOp)
}
