// Package testutil gathers the diffing helpers the cpu test suite uses
// to turn a failing assertion into a readable dump, rather
// than a bare "not equal" message.
package testutil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
)

// Diff compares got against want with go-test/deep and fails t with a
// field-by-field report if they differ. Works on any two values deep.Equal
// accepts, including *cpu.Chip and memory.Memory snapshots.
func Diff(t *testing.T, what string, got, want interface{}) {
	t.Helper()
	if diffs := deep.Equal(got, want); diffs != nil {
		t.Errorf("%s mismatch:\n got:  %s\n want: %s\n diffs: %v", what, spew.Sdump(got), spew.Sdump(want), diffs)
	}
}

// Dump renders v with go-spew, for ad hoc debugging inside a test
// failure message.
func Dump(v interface{}) string {
	return spew.Sdump(v)
}
