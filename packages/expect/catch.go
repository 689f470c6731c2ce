package expect

import (
	"fmt"

	"github.com/abdul-hamid-achik/unitcheck/packages/assertions"
)

// PanicError wraps a panic value that is not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Catch runs fn and returns the value it panicked with, as an error. Error
// values are returned unchanged; anything else is wrapped in a *PanicError.
// It returns nil when fn returns normally. runtime.Goexit, which
// testing.T.FailNow uses, is not intercepted.
func Catch(fn func()) (thrown error) {
	defer func() {
		if v := recover(); v != nil {
			if err, ok := v.(error); ok {
				thrown = err
				return
			}
			thrown = &PanicError{Value: v}
		}
	}()
	fn()
	return nil
}

// Run invokes fn with a fresh Register and verifies what it raised, either by
// returning an error or by panicking, against what it declared.
//
// A failed assertion raised by fn is returned unchanged: it means the test
// failed, not that it threw.
func Run(fn func(r *Register) error) error {
	r := NewRegister()

	var returned error
	thrown := Catch(func() {
		returned = fn(r)
	})
	if thrown == nil {
		thrown = returned
	}

	if assertions.IsFailure(thrown) {
		return thrown
	}
	return r.Verify(thrown)
}
