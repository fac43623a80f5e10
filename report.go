package gocompare

import (
	"fmt"
	"reflect"
	"strings"
)

// Difference records one field-level discrepancy between source and
// destination. Values are the raw (non-unwrapped) field values; types are the
// original declared types. A side that lacks the field reports nil for both
// its value and its type.
type Difference struct {
	PropertyName     string
	SourceValue      any
	DestinationValue any
	SourceType       reflect.Type
	DestinationType  reflect.Type
}

// String renders a difference as "Name: source != destination".
func (d Difference) String() string {
	return fmt.Sprintf("%s: %v != %v", d.PropertyName, d.SourceValue, d.DestinationValue)
}

// Report is the outcome of one comparison, created fresh per call and owned
// by the caller. AreEqual is true iff no discrepancy was found. The one case
// where AreEqual is false with empty Differences is a nullness mismatch
// between the inputs themselves: there is nothing to enumerate on the missing
// side.
type Report struct {
	AreEqual    bool
	Differences []Difference
}

// Summary renders the first few differences.
func (r Report) Summary() string {
	if r.AreEqual {
		return "equal"
	}
	if len(r.Differences) == 0 {
		return "not equal"
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(r.Differences)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(r.Differences[i].String())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}
