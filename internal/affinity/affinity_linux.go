//go:build linux

package affinity

import "golang.org/x/sys/unix"

// setAffinity binds the current thread to one CPU via sched_setaffinity.
// Pid 0 targets the calling thread.
func setAffinity(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	return unix.SchedSetaffinity(0, &set)
}
