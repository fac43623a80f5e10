package engine

import (
	"reflect"
	"strings"
)

// Accessor extracts one named field's value from a struct instance.
type Accessor func(v reflect.Value) any

// Field describes one comparable named member of a struct type.
type Field struct {
	Name       string       // external key (tag-resolved)
	Type       reflect.Type // declared type
	Comparable reflect.Type // declared type with one pointer level unwrapped
	Get        Accessor
}

// ResolveStructKey applies the repository-wide rule to resolve a struct
// field's external key used to line fields up across both sides of a
// comparison.
// Priority: compare:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if ct := sf.Tag.Get("compare"); ct != "" {
		if ct == "-" {
			return "-"
		}
		for _, p := range strings.Split(ct, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			jt = jt[:i]
		}
		if jt != "" {
			return jt
		}
	}
	return sf.Name
}

// comparableType strips exactly one level of pointer indirection. Deeper
// nesting stays opaque and is compared as-is.
func comparableType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// Enumerate returns the comparable named fields of a struct type in
// declaration order, skipping unexported fields, tag-disabled fields, and
// names in the ignore set. Accessors come from the cache, so enumerating the
// same type twice yields stable names, stable order, and the same compiled
// extraction closures.
func Enumerate(t reflect.Type, ignore map[string]struct{}, cache *AccessorCache) []Field {
	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := ResolveStructKey(sf)
		if name == "-" {
			continue
		}
		if _, skip := ignore[name]; skip {
			continue
		}
		fields = append(fields, Field{
			Name:       name,
			Type:       sf.Type,
			Comparable: comparableType(sf.Type),
			Get:        cache.GetOrCompile(t, sf),
		})
	}
	return fields
}
