// Package golden compares test output against files under the calling
// package's testdata directory.
package golden

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Read returns the contents of testdata/name.
func Read(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join("testdata", name)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", path, err)
	}
	return string(b)
}

// Assert fails the test when got differs from the golden file.
func Assert(t *testing.T, got, name string) {
	t.Helper()
	want := Read(t, name)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output differs from %s (-want +got):\n%s", name, diff)
	}
}
