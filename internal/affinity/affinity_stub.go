//go:build !linux

package affinity

import "errors"

// setAffinity is a stub for platforms without sched_setaffinity.
func setAffinity(cpu int) error {
	return errors.New("affinity: not supported on this platform")
}
