package kernel

import "time"

// Clock returns the current instant. Handlers take one so tests can pin "now".
type Clock func() time.Time

// SystemClock reads the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}
