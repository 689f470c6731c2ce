package assertions

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

const msgNotEqual = "Expected %v, Got %v"

// Equal fails unless wanted == got.
//
// When T is an interface type the dynamic values decide: two errors compare
// as in EqualException, anything else as in EqualObject, so values that
// cannot be compared with == fail instead of panicking.
func Equal[T comparable](wanted, got T, msgAndArgs ...any) error {
	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		return equalDynamic(any(wanted), any(got), msgAndArgs)
	}
	if wanted != got {
		return fail(msgAndArgs, msgNotEqual, wanted, got)
	}
	return nil
}

func equalDynamic(wanted, got any, msgAndArgs []any) error {
	wantedErr, wok := asError(wanted)
	gotErr, gok := asError(got)
	if wok && gok {
		return EqualException(wantedErr, gotErr, msgAndArgs...)
	}
	return EqualObject(wanted, got, msgAndArgs...)
}

// asError reports whether v is an error or nil.
func asError(v any) (error, bool) {
	if v == nil {
		return nil, true
	}
	err, ok := v.(error)
	return err, ok
}

// EqualInt fails unless the two integers are numerically equal.
func EqualInt[T constraints.Integer](wanted, got T, msgAndArgs ...any) error {
	return Equal(wanted, got, msgAndArgs...)
}

// EqualFloat fails unless the two floats are exactly equal.
//
// No tolerance is applied, so 0.1+0.2 is not equal to 0.3 and NaN is not
// equal to anything. Check a range with < and > when rounding matters.
func EqualFloat[T constraints.Float](wanted, got T, msgAndArgs ...any) error {
	return Equal(wanted, got, msgAndArgs...)
}

// EqualBool fails unless wanted == got.
func EqualBool(wanted, got bool, msgAndArgs ...any) error {
	return Equal(wanted, got, msgAndArgs...)
}

// EqualString fails unless wanted == got.
func EqualString(wanted, got string, msgAndArgs ...any) error {
	return Equal(wanted, got, msgAndArgs...)
}

// Equaler is implemented by types that define their own equality. EqualObject
// defers to it when the wanted value implements it.
type Equaler interface {
	Equal(other any) bool
}

// EqualObject fails unless wanted and got are the same object.
//
// Pointers, maps, slices, channels and funcs are the same object only when
// they share a type and refer to the same memory, so two distinct instances
// with equal contents are not equal. Two nils are equal. Other values stored
// in an interface compare with == when comparable and are never equal
// otherwise. A wanted value implementing Equaler decides for itself.
func EqualObject(wanted, got any, msgAndArgs ...any) error {
	if !sameObject(wanted, got) {
		return fail(msgAndArgs, msgNotEqual, wanted, got)
	}
	return nil
}

func sameObject(wanted, got any) bool {
	if isNil(wanted) || isNil(got) {
		return isNil(wanted) && isNil(got)
	}
	if eq, ok := wanted.(Equaler); ok {
		return eq.Equal(got)
	}

	wv, gv := reflect.ValueOf(wanted), reflect.ValueOf(got)
	if wv.Type() != gv.Type() {
		return false
	}
	switch wv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return wv.Pointer() == gv.Pointer()
	case reflect.Slice:
		return wv.Pointer() == gv.Pointer() && wv.Len() == gv.Len()
	}
	if wv.Comparable() {
		return wanted == got
	}
	return false
}
