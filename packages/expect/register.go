package expect

import (
	"sync"

	"github.com/abdul-hamid-achik/unitcheck/packages/assertions"
)

// Register holds the error one test declares it expects. It starts unset and
// only Expect or ExpectDescriptor change it; a new test gets a new Register.
type Register struct {
	mu       sync.RWMutex
	expected assertions.Descriptor
	set      bool
}

func NewRegister() *Register {
	return &Register{}
}

// Expect declares err as the expected error, replacing any earlier one.
func (r *Register) Expect(err error) {
	r.ExpectDescriptor(assertions.Describe(err))
}

// ExpectDescriptor is Expect for an already described error.
func (r *Register) ExpectDescriptor(d assertions.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expected = d
	r.set = true
}

// Expected returns the declared error and whether one was declared.
func (r *Register) Expected() (assertions.Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.expected, r.set
}

// Verify compares thrown, the error the test body raised (nil if none),
// against the declaration. It returns a *assertions.Failure when they
// disagree. A caller message replaces the default one.
func (r *Register) Verify(thrown error, msgAndArgs ...any) error {
	expected, ok := r.Expected()
	switch {
	case !ok && thrown == nil:
		return nil
	case !ok:
		return failure(msgAndArgs, "Unexpected exception: %v", assertions.Describe(thrown))
	case thrown == nil:
		return failure(msgAndArgs, "Expected exception %v was not raised.", expected)
	default:
		return assertions.EqualDescriptor(expected, assertions.Describe(thrown), msgAndArgs...)
	}
}

func failure(msgAndArgs []any, format string, args ...any) error {
	if len(msgAndArgs) > 0 {
		return assertions.Fail(msgAndArgs...)
	}
	return assertions.Fail(append([]any{format}, args...)...)
}
