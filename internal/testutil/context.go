package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds blocking operations in unit tests.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled when the test ends. A
// non-positive timeout falls back to DefaultTimeout, and the timeout
// is clamped below the test binary's own deadline so cleanup still
// runs.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if d, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if deadline, ok := d.Deadline(); ok {
			remaining := time.Until(deadline) - time.Second
			if remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
