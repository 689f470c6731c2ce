package fatal

import (
	"testing"

	"github.com/abdul-hamid-achik/unitcheck/packages/assertions"
	"github.com/abdul-hamid-achik/unitcheck/packages/expect"
	"golang.org/x/exp/constraints"
)

// On stops the test if err is non-nil.
func On(t testing.TB, err error) {
	t.Helper()
	Default.Check(t, err)
}

func True(t testing.TB, b bool, msgAndArgs ...any) {
	t.Helper()
	Default.Check(t, assertions.True(b, msgAndArgs...))
}

func False(t testing.TB, b bool, msgAndArgs ...any) {
	t.Helper()
	Default.Check(t, assertions.False(b, msgAndArgs...))
}

func Null(t testing.TB, v any, msgAndArgs ...any) {
	t.Helper()
	Default.Check(t, assertions.Null(v, msgAndArgs...))
}

func NotNull(t testing.TB, v any, msgAndArgs ...any) {
	t.Helper()
	Default.Check(t, assertions.NotNull(v, msgAndArgs...))
}

func Equal[T comparable](t testing.TB, wanted, got T, msgAndArgs ...any) {
	t.Helper()
	Default.Check(t, assertions.Equal(wanted, got, msgAndArgs...))
}

func EqualInt[T constraints.Integer](t testing.TB, wanted, got T, msgAndArgs ...any) {
	t.Helper()
	Default.Check(t, assertions.EqualInt(wanted, got, msgAndArgs...))
}

// EqualFloat compares exactly; see assertions.EqualFloat.
func EqualFloat[T constraints.Float](t testing.TB, wanted, got T, msgAndArgs ...any) {
	t.Helper()
	Default.Check(t, assertions.EqualFloat(wanted, got, msgAndArgs...))
}

func EqualBool(t testing.TB, wanted, got bool, msgAndArgs ...any) {
	t.Helper()
	Default.Check(t, assertions.EqualBool(wanted, got, msgAndArgs...))
}

func EqualString(t testing.TB, wanted, got string, msgAndArgs ...any) {
	t.Helper()
	Default.Check(t, assertions.EqualString(wanted, got, msgAndArgs...))
}

// EqualObject compares by identity; see assertions.EqualObject.
func EqualObject(t testing.TB, wanted, got any, msgAndArgs ...any) {
	t.Helper()
	Default.Check(t, assertions.EqualObject(wanted, got, msgAndArgs...))
}

func EqualException(t testing.TB, wanted, got error, msgAndArgs ...any) {
	t.Helper()
	Default.Check(t, assertions.EqualException(wanted, got, msgAndArgs...))
}

// Expected stops the test unless thrown matches what r declares.
func Expected(t testing.TB, r *expect.Register, thrown error, msgAndArgs ...any) {
	t.Helper()
	Default.Check(t, r.Verify(thrown, msgAndArgs...))
}
