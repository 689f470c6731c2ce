// Package expect lets a test declare the error it expects its body to raise
// and checks that declaration once the body has run.
//
// A Register belongs to a single test invocation. The harness creates one,
// hands it to the test body, and afterwards compares what the body raised
// against what it declared:
//
//	err := expect.Run(func(r *expect.Register) error {
//		r.Expect(ErrQuotaExceeded)
//		return bucket.Take(10)
//	})
//
// Errors are compared by concrete type and message only, as in
// assertions.EqualException.
package expect
