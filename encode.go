package gocompare

import (
	"reflect"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DifferenceDoc is the plain-data projection of a Difference: declared types
// become their string names so the document survives serialization.
type DifferenceDoc struct {
	PropertyName     string `json:"propertyName" yaml:"propertyName"`
	SourceValue      any    `json:"sourceValue,omitempty" yaml:"sourceValue,omitempty"`
	DestinationValue any    `json:"destinationValue,omitempty" yaml:"destinationValue,omitempty"`
	SourceType       string `json:"sourceType,omitempty" yaml:"sourceType,omitempty"`
	DestinationType  string `json:"destinationType,omitempty" yaml:"destinationType,omitempty"`
}

// ReportDoc is the plain-data projection of a Report.
type ReportDoc struct {
	AreEqual    bool            `json:"areEqual" yaml:"areEqual"`
	Differences []DifferenceDoc `json:"differences,omitempty" yaml:"differences,omitempty"`
}

// Doc projects the report into its serializable form.
func (r Report) Doc() ReportDoc {
	doc := ReportDoc{AreEqual: r.AreEqual}
	if len(r.Differences) == 0 {
		return doc
	}
	doc.Differences = make([]DifferenceDoc, 0, len(r.Differences))
	for _, d := range r.Differences {
		doc.Differences = append(doc.Differences, DifferenceDoc{
			PropertyName:     d.PropertyName,
			SourceValue:      d.SourceValue,
			DestinationValue: d.DestinationValue,
			SourceType:       typeName(d.SourceType),
			DestinationType:  typeName(d.DestinationType),
		})
	}
	return doc
}

// EncodeReportJSON renders a report document as JSON via go-json.
func EncodeReportJSON(r Report) ([]byte, error) { return j.Marshal(r.Doc()) }

// DecodeReportJSON parses a JSON report document.
func DecodeReportJSON(data []byte) (ReportDoc, error) {
	var doc ReportDoc
	if err := j.Unmarshal(data, &doc); err != nil {
		return ReportDoc{}, err
	}
	return doc, nil
}

// EncodeReportYAML renders a report document as YAML.
func EncodeReportYAML(r Report) ([]byte, error) { return yaml.Marshal(r.Doc()) }

// DecodeReportYAML parses a YAML report document.
func DecodeReportYAML(data []byte) (ReportDoc, error) {
	var doc ReportDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ReportDoc{}, err
	}
	return doc, nil
}

func typeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}
