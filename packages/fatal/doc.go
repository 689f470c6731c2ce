// Package fatal connects the assertions engine to Go's testing package.
//
// Each function mirrors an assertion from package assertions, takes the
// testing.TB first, and stops the test with t.FailNow when the assertion
// fails:
//
//	fatal.Equal(t, 200, resp.StatusCode)
//	fatal.NotNull(t, user, "user %s not found", id)
//	fatal.On(t, reg.Verify(err))
//
// Failures are logged through a Reporter. Errors that are not failed
// assertions are logged with an "Error:" prefix so an unexpected error reads
// differently from a failed expectation.
package fatal
