package engine

import (
	"errors"
	"fmt"
	"reflect"
)

// ListCountProperty names the synthetic difference reported when two
// sequences cannot be paired element-by-element (nil side or length mismatch).
const ListCountProperty = "ListCount"

// ErrNotEnumerable reports an input whose members cannot be enumerated: only
// structs and pointers to structs expose named fields.
var ErrNotEnumerable = errors.New("gocompare: value is not an enumerable composite")

// Difference is one detected field-level discrepancy. Values are the raw
// (non-unwrapped) field values; types are the original declared types. A side
// that lacks the field carries nil for both its value and its type.
type Difference struct {
	Name             string
	SourceValue      any
	DestinationValue any
	SourceType       reflect.Type
	DestinationType  reflect.Type
}

// Result accumulates the outcome of one comparison.
type Result struct {
	Equal bool
	Diffs []Difference
}

// Compare diffs the top-level named fields of two composite values. Fields
// present in source come first, in source declaration order; fields seen only
// in destination follow, in destination declaration order. A nil cache falls
// back to the process-wide default.
func Compare(source, destination any, ignore map[string]struct{}, cache *AccessorCache) (Result, error) {
	sv, sok := concrete(source)
	dv, dok := concrete(destination)
	if !sok && !dok {
		return Result{Equal: true}, nil
	}
	if !sok || !dok {
		// Nullness mismatch is inequality, but there is nothing to enumerate
		// on the missing side.
		return Result{Equal: false}, nil
	}
	if sv.Kind() != reflect.Struct {
		return Result{}, fmt.Errorf("%w: %T", ErrNotEnumerable, source)
	}
	if dv.Kind() != reflect.Struct {
		return Result{}, fmt.Errorf("%w: %T", ErrNotEnumerable, destination)
	}
	if cache == nil {
		cache = DefaultAccessorCache
	}

	srcFields := Enumerate(sv.Type(), ignore, cache)
	dstFields := Enumerate(dv.Type(), ignore, cache)
	dstIndex := make(map[string]int, len(dstFields))
	for i, f := range dstFields {
		dstIndex[f.Name] = i
	}
	consumed := make([]bool, len(dstFields))

	res := Result{Equal: true}
	for _, sf := range srcFields {
		di, ok := dstIndex[sf.Name]
		if !ok {
			res.Equal = false
			res.Diffs = append(res.Diffs, Difference{
				Name:        sf.Name,
				SourceValue: sf.Get(sv),
				SourceType:  sf.Type,
			})
			continue
		}
		df := dstFields[di]
		consumed[di] = true
		sraw := sf.Get(sv)
		draw := df.Get(dv)
		if sf.Comparable != df.Comparable || !valueEqual(unwrapValue(sf, sraw), unwrapValue(df, draw)) {
			res.Equal = false
			res.Diffs = append(res.Diffs, Difference{
				Name:             sf.Name,
				SourceValue:      sraw,
				DestinationValue: draw,
				SourceType:       sf.Type,
				DestinationType:  df.Type,
			})
		}
	}
	for i, df := range dstFields {
		if consumed[i] {
			continue
		}
		res.Equal = false
		res.Diffs = append(res.Diffs, Difference{
			Name:             df.Name,
			DestinationValue: df.Get(dv),
			DestinationType:  df.Type,
		})
	}
	return res, nil
}

// CompareLists pairs two sequences index-by-index through Compare. A nil side
// or a length mismatch short-circuits into a single synthetic ListCount
// difference holding the two lengths (nil value and type for a nil side).
func CompareLists(source, destination any, ignore map[string]struct{}, cache *AccessorCache) (Result, error) {
	sv, sok, err := sequence(source)
	if err != nil {
		return Result{}, err
	}
	dv, dok, err := sequence(destination)
	if err != nil {
		return Result{}, err
	}
	if !sok && !dok {
		return Result{Equal: true}, nil
	}
	if !sok || !dok || sv.Len() != dv.Len() {
		d := Difference{Name: ListCountProperty}
		if sok {
			d.SourceValue = sv.Len()
			d.SourceType = sv.Type()
		}
		if dok {
			d.DestinationValue = dv.Len()
			d.DestinationType = dv.Type()
		}
		return Result{Diffs: []Difference{d}}, nil
	}

	res := Result{Equal: true}
	for i := 0; i < sv.Len(); i++ {
		er, err := Compare(sv.Index(i).Interface(), dv.Index(i).Interface(), ignore, cache)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		if !er.Equal {
			res.Equal = false
		}
		for _, d := range er.Diffs {
			d.Name = fmt.Sprintf("Item[%d].%s", i, d.Name)
			res.Diffs = append(res.Diffs, d)
		}
	}
	return res, nil
}

// concrete resolves an input down to the value whose fields get enumerated,
// reporting absence for nil inputs and nil pointers.
func concrete(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return reflect.Value{}, false
	}
	return rv, true
}

// sequence resolves an input to a slice or array value. Nil inputs, nil
// pointers, and nil slices count as absent; any other non-sequence input is
// not enumerable.
func sequence(v any) (reflect.Value, bool, error) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}, false, nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return reflect.Value{}, false, nil
	}
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return reflect.Value{}, false, nil
		}
		return rv, true, nil
	case reflect.Array:
		return rv, true, nil
	default:
		return reflect.Value{}, false, fmt.Errorf("%w: %T is not a sequence", ErrNotEnumerable, v)
	}
}

// unwrapValue strips one level of pointer indirection from a raw field value
// when the declared type is optional, so a *int pointing at 25 and a plain
// int 25 compare equal. A nil optional unwraps to nil, which never equals a
// present value.
func unwrapValue(f Field, raw any) any {
	if f.Type.Kind() != reflect.Pointer || raw == nil {
		return raw
	}
	rv := reflect.ValueOf(raw)
	if rv.IsNil() {
		return nil
	}
	return rv.Elem().Interface()
}
