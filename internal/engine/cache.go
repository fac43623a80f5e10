package engine

import (
	"reflect"
	"sync"
)

// accessorKey identifies a compiled accessor by owning type and field name.
type accessorKey struct {
	typ  reflect.Type
	name string
}

// AccessorCache memoizes field accessors for the lifetime of the process.
// It caches the extraction closure, never the extracted value: a type's field
// set is fixed at compile time, so a cached accessor can never read stale.
//
// The zero value is ready to use. Inserts go through sync.Map.LoadOrStore, so
// concurrent first use of the same (type, field) may compile the closure twice
// but every caller observes the one that won the store.
type AccessorCache struct {
	m sync.Map // accessorKey -> Accessor
}

// NewAccessorCache returns an empty cache with its own lifecycle, for callers
// that prefer dependency injection over the process-wide default.
func NewAccessorCache() *AccessorCache { return &AccessorCache{} }

// DefaultAccessorCache backs the package-level comparison entry points. It is
// created once at process start and never evicts.
var DefaultAccessorCache = NewAccessorCache()

// GetOrCompile returns the accessor for sf on owner type t, compiling and
// publishing it on first use.
func (c *AccessorCache) GetOrCompile(t reflect.Type, sf reflect.StructField) Accessor {
	key := accessorKey{typ: t, name: sf.Name}
	if v, ok := c.m.Load(key); ok {
		return v.(Accessor)
	}
	idx := sf.Index
	acc := Accessor(func(v reflect.Value) any { return v.FieldByIndex(idx).Interface() })
	actual, _ := c.m.LoadOrStore(key, acc)
	return actual.(Accessor)
}
