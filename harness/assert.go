// harness/assert.go
package harness

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"
)

// T identifies the currently running check inside its body.
type T struct {
	name string
}

// Name returns the check's qualified name.
func (t *T) Name() string { return t.name }

// failure is the sentinel the runner recovers to end exactly one body.
type failure struct {
	msg string
}

// Failf aborts the current check body with a formatted message. Only the
// body unwinds; the runner and the other checks keep going.
func Failf(t *T, format string, args ...any) {
	panic(failure{msg: fmt.Sprintf(format, args...)})
}

// Equal asserts got and want compare equal, failing with a diff otherwise.
func Equal[V any](t *T, got, want V) {
	if diff := cmp.Diff(want, got); diff != "" {
		Failf(t, "mismatch (-want +got):\n%s", diff)
	}
}

// NotEqual asserts got and want differ.
func NotEqual[V any](t *T, got, want V) {
	if cmp.Equal(want, got) {
		Failf(t, "values unexpectedly equal: %v", got)
	}
}

// True asserts cond.
func True(t *T, cond bool) {
	if !cond {
		Failf(t, "expected true")
	}
}

// False asserts !cond.
func False(t *T, cond bool) {
	if cond {
		Failf(t, "expected false")
	}
}

// Greater asserts a > b.
func Greater[V constraints.Ordered](t *T, a, b V) {
	if !(a > b) {
		Failf(t, "expected %v > %v", a, b)
	}
}

// GreaterOrEqual asserts a >= b.
func GreaterOrEqual[V constraints.Ordered](t *T, a, b V) {
	if a < b {
		Failf(t, "expected %v >= %v", a, b)
	}
}

// Less asserts a < b.
func Less[V constraints.Ordered](t *T, a, b V) {
	if !(a < b) {
		Failf(t, "expected %v < %v", a, b)
	}
}

// LessOrEqual asserts a <= b.
func LessOrEqual[V constraints.Ordered](t *T, a, b V) {
	if a > b {
		Failf(t, "expected %v <= %v", a, b)
	}
}
