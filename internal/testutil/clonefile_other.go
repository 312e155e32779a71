//go:build !darwin

package testutil

import "errors"

// cloneFile always fails here; callers fall back to a plain copy.
func cloneFile(src, dst string) error {
	return errors.New("copy-on-write clone not supported on this platform")
}
