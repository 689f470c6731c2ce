package assertions

import (
	"fmt"
	"reflect"
)

// Descriptor identifies an error for EqualException: its concrete type and
// its message. Wrapped causes, stack traces and any other state are not part
// of it.
type Descriptor struct {
	Kind    reflect.Type
	Message string
}

// Describe returns the Descriptor of err. Kind is the dynamic type of err
// itself, not of anything it wraps. A nil err yields the zero Descriptor.
func Describe(err error) Descriptor {
	if err == nil {
		return Descriptor{}
	}
	return Descriptor{
		Kind:    reflect.TypeOf(err),
		Message: err.Error(),
	}
}

// IsZero reports whether d describes no error.
func (d Descriptor) IsZero() bool {
	return d.Kind == nil && d.Message == ""
}

// Equal reports whether both the kind and the message match exactly.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.Kind == other.Kind && d.Message == other.Message
}

func (d Descriptor) String() string {
	if d.Kind == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

const msgExceptionMismatch = "Exceptions do not match.\n\tExpected %v,\n\tGot %v"

// EqualException fails unless wanted and got have the same concrete type and
// the same message.
func EqualException(wanted, got error, msgAndArgs ...any) error {
	return EqualDescriptor(Describe(wanted), Describe(got), msgAndArgs...)
}

// EqualDescriptor is EqualException for already described errors.
func EqualDescriptor(wanted, got Descriptor, msgAndArgs ...any) error {
	if !wanted.Equal(got) {
		return fail(msgAndArgs, msgExceptionMismatch, wanted, got)
	}
	return nil
}
