package rolling_test

import (
	"sync"
	"testing"

	rolling "github.com/zachdedoo13/rolling-threadsafe-buffer"
)

func TestPairCapacity(t *testing.T) {
	p, c := rolling.NewPair[int](8, 0)
	if p.Cap() != 7 || c.Cap() != 7 {
		t.Fatalf("Cap = (%d, %d), want (7, 7)", p.Cap(), c.Cap())
	}
	for i := 0; i < 7; i++ {
		if !p.Write(i) {
			t.Fatalf("write %d rejected before capacity", i)
		}
	}
	if p.Write(7) {
		t.Fatal("write accepted on full pair")
	}
	if c.Len() != 7 {
		t.Fatalf("Len = %d, want 7", c.Len())
	}
}

func TestPairFIFO(t *testing.T) {
	p, c := rolling.NewPair[int](8, 0)
	for i := 0; i < 5; i++ {
		if !p.Write(i) {
			t.Fatalf("write %d rejected", i)
		}
	}
	for i := 0; i < 5; i++ {
		got, ok := c.Read()
		if !ok || got != i {
			t.Fatalf("read = (%d, %v), want (%d, true)", got, ok, i)
		}
	}
	if _, ok := c.Read(); ok {
		t.Fatal("read returned a value on empty pair")
	}
}

func TestPairUncheckedOverwrite(t *testing.T) {
	p, c := rolling.NewPair[int](4, 0)
	for i := 1; i <= 5; i++ {
		p.WriteUnchecked(i)
	}
	// The write cursor lapped the read cursor; only the newest element at
	// the read cursor position survives.
	got, ok := c.Read()
	if !ok || got != 5 {
		t.Fatalf("read after overrun = (%d, %v), want (5, true)", got, ok)
	}
	if _, ok := c.Read(); ok {
		t.Fatal("pair not empty after consuming surviving element")
	}
}

// The reference end-to-end scenario: one producer writes 0..59 through a
// 25-slot buffer, retrying on full; one consumer drains. Every value must be
// observed exactly once, in ascending order.
func TestPairProducerConsumer(t *testing.T) {
	const (
		size  = 25
		count = 60
	)
	p, c := rolling.NewPair[int](size, 0)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < count; i++ {
			for !p.Write(i) {
				// Full: spin until the consumer frees a slot.
			}
		}
	}()

	seen := make(map[int]bool, count)
	next := 0
	for next < count {
		v, ok := c.Read()
		if !ok {
			continue
		}
		if seen[v] {
			t.Fatalf("value %d observed twice", v)
		}
		seen[v] = true
		if v != next {
			t.Fatalf("out of order: read %d, want %d", v, next)
		}
		next++
	}
	<-done

	if _, ok := c.Read(); ok {
		t.Fatal("pair not empty after full drain")
	}
}

// Intentionally violates the single-producer contract to check the guard.
// The panic is only guaranteed when two writers actually overlap, so absence
// of a panic is not a failure.
func TestPairConcurrentWriteGuard(t *testing.T) {
	p, _ := rolling.NewPair[int](1024, 0)
	panicked := make(chan bool, 1)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					select {
					case panicked <- true:
					default:
					}
				}
			}()
			for j := 0; j < 1000; j++ {
				p.Write(n*1000 + j)
			}
		}(i)
	}
	wg.Wait()

	select {
	case <-panicked:
		t.Log("guard detected concurrent Write")
	default:
		t.Log("no overlap observed this run")
	}
}

func TestPairConcurrentReadGuard(t *testing.T) {
	p, c := rolling.NewPair[int](1024, 0)
	for i := 0; i < 1023; i++ {
		p.Write(i)
	}
	panicked := make(chan bool, 1)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					select {
					case panicked <- true:
					default:
					}
				}
			}()
			for j := 0; j < 200; j++ {
				c.Read()
			}
		}()
	}
	wg.Wait()

	select {
	case <-panicked:
		t.Log("guard detected concurrent Read")
	default:
		t.Log("no overlap observed this run")
	}
}

func BenchmarkPairWriteRead(b *testing.B) {
	p, c := rolling.NewPair[int](1024, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Write(i)
		c.Read()
	}
}
