// Package assertions provides the comparison engine for unitcheck.
//
// Every assertion is a plain function that returns nil when the check holds
// and a *Failure when it does not:
//   - True / False: boolean checks
//   - Null / NotNull: nil checks for any value, typed nils included
//   - Equal: generic equality for comparable types
//   - EqualInt, EqualFloat, EqualBool, EqualString: typed equality
//   - EqualObject: reference identity
//   - EqualException, EqualDescriptor: error identity by kind and message
//
// Each assertion takes an optional trailing message. When given it replaces
// the default message entirely:
//
//	err := assertions.Equal(1, 2, "custom") // err.Error() == "custom"
//
// Floating point equality is exact. Compare against a range with ordinary
// operators when a tolerance is needed.
package assertions
