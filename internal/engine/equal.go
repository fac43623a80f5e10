package engine

import "reflect"

// Equaler lets a field value supply its own equality check. It is consulted
// before the generic fallback.
type Equaler interface {
	Equal(other any) bool
}

// valueEqual reports whether two raw field values are equal. A custom Equal
// implementation on either side wins; otherwise values of mismatched runtime
// types are always unequal (no numeric coercion), and identical types fall
// back to reflect.DeepEqual.
func valueEqual(a, b any) bool {
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	if eq, ok := b.(Equaler); ok {
		return eq.Equal(a)
	}
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}
