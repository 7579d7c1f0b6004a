// Package affinity pins the calling OS thread to a logical CPU on platforms
// that support it.
//
// Producer and consumer loops in real-time style deployments are commonly
// pinned to dedicated cores so the hand-off buffer stays core-local; the
// demo binaries expose this through flags. Platform-specific implementations
// live in separate files guarded by build tags.
package affinity

import "runtime"

// Pin locks the calling goroutine to its OS thread and binds that thread to
// the given logical CPU. Returns an error on unsupported platforms; the
// thread stays locked either way so the caller's loop keeps a stable thread.
func Pin(cpu int) error {
	runtime.LockOSThread()
	return setAffinity(cpu)
}
