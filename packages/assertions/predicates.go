package assertions

import "reflect"

const (
	msgExpectedTrue  = "Expected True, got False."
	msgExpectedFalse = "Expected False, got True."
	msgObjectIsNull  = "The object is null."
)

// True fails unless b is true.
func True(b bool, msgAndArgs ...any) error {
	if !b {
		return fail(msgAndArgs, msgExpectedTrue)
	}
	return nil
}

// False fails unless b is false.
func False(b bool, msgAndArgs ...any) error {
	if b {
		return fail(msgAndArgs, msgExpectedFalse)
	}
	return nil
}

// Null fails unless v is nil. Typed nils (a nil pointer, map, slice, channel,
// func or interface stored in v) count as nil.
func Null(v any, msgAndArgs ...any) error {
	if !isNil(v) {
		return fail(msgAndArgs, "Expected Null object, got %v", v)
	}
	return nil
}

// NotNull fails if v is nil, using the same rules as Null.
func NotNull(v any, msgAndArgs ...any) error {
	if isNil(v) {
		return fail(msgAndArgs, msgObjectIsNull)
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
