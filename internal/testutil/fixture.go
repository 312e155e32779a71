package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// CopyFixture copies a fixture file into the test's temp directory and
// returns the new path. It prefers a copy-on-write clone where the
// platform supports it.
func CopyFixture(t testing.TB, src string) string {
	t.Helper()
	dst := filepath.Join(t.TempDir(), filepath.Base(src))
	if err := cloneFile(src, dst); err == nil {
		return dst
	}
	in, err := os.Open(src)
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		t.Fatalf("create fixture copy: %v", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		t.Fatalf("copy fixture: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("close fixture copy: %v", err)
	}
	return dst
}
