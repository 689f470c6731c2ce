package assertions

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Failure is the error returned by a violated assertion.
//
// Its message is fixed at construction. Formatting with %+v also prints the
// stack captured when the assertion failed.
type Failure struct {
	msg   string
	stack error
}

func newFailure(msg string) *Failure {
	return &Failure{
		msg:   msg,
		stack: errors.New(msg),
	}
}

func (f *Failure) Error() string {
	return f.msg
}

// Message returns the failure message.
func (f *Failure) Message() string {
	return f.msg
}

// Format implements fmt.Formatter.
func (f *Failure) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%+v", f.stack)
			return
		}
		io.WriteString(s, f.msg)
	case 's':
		io.WriteString(s, f.msg)
	case 'q':
		fmt.Fprintf(s, "%q", f.msg)
	default:
		io.WriteString(s, f.msg)
	}
}

// AsFailure returns the first *Failure in err's chain.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// IsFailure reports whether err is, or wraps, a failed assertion.
// A harness uses it to tell a failed test from one that errored.
func IsFailure(err error) bool {
	_, ok := AsFailure(err)
	return ok
}
