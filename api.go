package gocompare

import (
	eng "github.com/reoring/gocompare/internal/engine"
)

// ListCountProperty names the synthetic difference reported by CompareLists
// for a nil side or a length mismatch.
const ListCountProperty = eng.ListCountProperty

// ErrNotEnumerable reports an input whose members cannot be enumerated: only
// structs and pointers to structs expose named fields (and, for CompareLists,
// only slices and arrays are sequences). Check with errors.Is.
var ErrNotEnumerable = eng.ErrNotEnumerable

// Equaler lets a field value supply its own equality check. A value
// implementing it is compared via Equal instead of the generic deep-equality
// fallback. Mismatched runtime types without an Equaler are always unequal;
// there is no numeric coercion.
type Equaler interface {
	Equal(other any) bool
}

// Options bundles comparison options.
type Options struct {
	// Ignore lists field names excluded from both sides of the comparison.
	// Ignoring is symmetric and name-based; naming a field absent from both
	// sides has no effect.
	Ignore []string
}

// Option adjusts Options at a comparison entry point.
type Option func(*Options)

// WithIgnore excludes the named fields from both sides.
func WithIgnore(names ...string) Option {
	return func(o *Options) { o.Ignore = append(o.Ignore, names...) }
}

// Comparer runs comparisons against its own accessor cache, for callers that
// want to own the cache lifecycle. The package-level entry points share one
// process-wide cache instead.
type Comparer struct {
	cache *eng.AccessorCache
}

// NewComparer returns a Comparer with a fresh accessor cache.
func NewComparer() *Comparer { return &Comparer{cache: eng.NewAccessorCache()} }

// Compare diffs the top-level named fields of two composite values. Both-nil
// inputs are equal; exactly one nil input is unequal with no differences
// enumerated. Everything else is reported per field: common fields in source
// declaration order, then source-only fields, then destination-only fields in
// destination declaration order.
func (c *Comparer) Compare(source, destination any, opts ...Option) (Report, error) {
	res, err := eng.Compare(source, destination, ignoreSet(opts), c.cache)
	if err != nil {
		return Report{}, err
	}
	return fromEngineResult(res), nil
}

// CompareLists pairs two sequences index-by-index through Compare, renaming
// each finding to Item[i].<Name>. A nil side or a length mismatch yields a
// single synthetic ListCount difference holding the two lengths.
func (c *Comparer) CompareLists(source, destination any, opts ...Option) (Report, error) {
	res, err := eng.CompareLists(source, destination, ignoreSet(opts), c.cache)
	if err != nil {
		return Report{}, err
	}
	return fromEngineResult(res), nil
}

var defaultComparer = &Comparer{cache: eng.DefaultAccessorCache}

// Compare diffs two composite values using the process-wide accessor cache.
// See Comparer.Compare.
func Compare(source, destination any, opts ...Option) (Report, error) {
	return defaultComparer.Compare(source, destination, opts...)
}

// CompareLists diffs two sequences using the process-wide accessor cache.
// See Comparer.CompareLists.
func CompareLists(source, destination any, opts ...Option) (Report, error) {
	return defaultComparer.CompareLists(source, destination, opts...)
}

// CompareTo is the typed convenience form of Compare for two values of the
// same static type.
func CompareTo[T any](source, destination T, opts ...Option) (Report, error) {
	return Compare(source, destination, opts...)
}

func ignoreSet(opts []Option) map[string]struct{} {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	if len(o.Ignore) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(o.Ignore))
	for _, n := range o.Ignore {
		set[n] = struct{}{}
	}
	return set
}

func fromEngineResult(res eng.Result) Report {
	r := Report{AreEqual: res.Equal}
	if len(res.Diffs) == 0 {
		return r
	}
	r.Differences = make([]Difference, 0, len(res.Diffs))
	for _, d := range res.Diffs {
		r.Differences = append(r.Differences, Difference{
			PropertyName:     d.Name,
			SourceValue:      d.SourceValue,
			DestinationValue: d.DestinationValue,
			SourceType:       d.SourceType,
			DestinationType:  d.DestinationType,
		})
	}
	return r
}
