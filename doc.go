package gocompare

// Package gocompare computes structural difference reports between two values
// of the same or related shape:
//
// - Compare inspects top-level named fields only; a changed nested object is
//   reported as a single differing field, never expanded.
// - CompareLists pairs two sequences index-by-index and prefixes each finding
//   with Item[i].
// - Reports are plain data; EncodeReportJSON/EncodeReportYAML project them
//   into serializable documents for callers that persist results.
//
// Design policy:
// - Keep only public APIs in the root package; the comparison engine lives
//   under internal/.
// - Edge conditions (nullness mismatch, one-sided fields, unrelated types) are
//   report states, not errors. Only non-enumerable inputs surface an error.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	report, err := gocompare.Compare(before, after, gocompare.WithIgnore("UpdatedAt"))
//	if err != nil {
//		return err
//	}
//	if !report.AreEqual {
//		fmt.Println(report.Summary())
//	}
