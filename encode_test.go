package gocompare_test

import (
	"strings"
	"testing"

	gocompare "github.com/reoring/gocompare"
)

func TestEncodeReportJSON_RoundTrip(t *testing.T) {
	rep, err := gocompare.Compare(person{Name: "John", Age: 25}, person{Name: "John", Age: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := gocompare.EncodeReportJSON(rep)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	doc, err := gocompare.DecodeReportJSON(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if doc.AreEqual {
		t.Errorf("expected areEqual=false in document")
	}
	if len(doc.Differences) != 1 {
		t.Fatalf("expected one difference in document, got %d", len(doc.Differences))
	}
	d := doc.Differences[0]
	if d.PropertyName != "Age" {
		t.Errorf("expected Age, got %q", d.PropertyName)
	}
	// JSON numbers decode as float64 in an untyped document.
	if d.SourceValue != float64(25) || d.DestinationValue != float64(30) {
		t.Errorf("expected values 25 and 30, got %v and %v", d.SourceValue, d.DestinationValue)
	}
	if d.SourceType != "int" || d.DestinationType != "int" {
		t.Errorf("expected type names int/int, got %q/%q", d.SourceType, d.DestinationType)
	}
}

func TestReportDoc_MissingSideTypesRenderEmpty(t *testing.T) {
	rep, err := gocompare.Compare(withAge{Name: "John", Age: 25}, nameOnly{Name: "John"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := rep.Doc()
	if len(doc.Differences) != 1 {
		t.Fatalf("expected one difference, got %d", len(doc.Differences))
	}
	if doc.Differences[0].DestinationType != "" {
		t.Errorf("missing-side type must render empty, got %q", doc.Differences[0].DestinationType)
	}
	if doc.Differences[0].SourceType != "int" {
		t.Errorf("expected source type int, got %q", doc.Differences[0].SourceType)
	}
}

func TestEncodeReportYAML_RoundTrip(t *testing.T) {
	rep, err := gocompare.Compare(person{Name: "John"}, person{Name: "Jane"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := gocompare.EncodeReportYAML(rep)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if !strings.Contains(string(data), "areEqual: false") {
		t.Errorf("unexpected yaml: %s", data)
	}
	doc, err := gocompare.DecodeReportYAML(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if doc.AreEqual || len(doc.Differences) != 1 || doc.Differences[0].PropertyName != "Name" {
		t.Errorf("unexpected document: %+v", doc)
	}
}
