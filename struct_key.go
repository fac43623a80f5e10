package gocompare

import (
	"reflect"

	eng "github.com/reoring/gocompare/internal/engine"
)

// ResolveStructKey applies the repository-wide rule to resolve a struct
// field's external key used to line fields up across both sides of a
// comparison.
// Priority: compare:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	return eng.ResolveStructKey(sf)
}
