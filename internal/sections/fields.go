// Package sections defines the per-document-type data records and the
// generators that lay each of them out as document blocks.
package sections

import (
	"reflect"
	"strings"
	"sync"
)

const (
	// Placeholder marks a value that is unknown or illegible.
	Placeholder = "...................."
	// EmptyMarker marks a field that is present on the source document but
	// confirmed blank.
	EmptyMarker = "[Leeg]"
	// signature is the blank line printed where a document carries a handwritten signature.
	signature = Placeholder
)

// Key names one recognized document type.
type Key string

const (
	MarriageCertificate Key = "marriageCertificate"
	Authentication      Key = "authentication"
	CivilRegistration   Key = "civilRegistration"
	BirthCertificate    Key = "birthCertificate"
	Diploma             Key = "diploma"
	Certificate         Key = "certificate"
	DrivingLicense      Key = "drivingLicense"
	ConsularDocument    Key = "consularDocument"
	FamilyRecordBook    Key = "familyRecordBook"
	EmployerStatement   Key = "employerStatement"
	BrpExtract          Key = "brpExtract"
	CourtDocument       Key = "courtDocument"
	NotarialDeed        Key = "notarialDeed"
)

// Fields is the flat field-name to value mapping of one section.
type Fields map[string]string

// DocumentData is the full extraction result for one submission.
type DocumentData map[Key]Fields

// Present reports whether section k exists and has at least one field.
func (d DocumentData) Present(k Key) bool {
	f, ok := d[k]
	return ok && len(f) > 0
}

// PresentKeys lists the present sections in canonical order.
func (d DocumentData) PresentKeys() []Key {
	var keys []Key
	for _, k := range Order {
		if d.Present(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// fieldSpec describes one string field of a section record.
type fieldSpec struct {
	index    int
	name     string
	optional bool
}

var specCache sync.Map // reflect.Type -> []fieldSpec

func specsOf(t reflect.Type) []fieldSpec {
	if cached, ok := specCache.Load(t); ok {
		return cached.([]fieldSpec)
	}
	var specs []fieldSpec
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Type.Kind() != reflect.String {
			continue
		}
		tag := sf.Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		specs = append(specs, fieldSpec{index: i, name: name, optional: opts == "omitempty"})
	}
	specCache.Store(t, specs)
	return specs
}

// bind copies f into a record of type T. Every missing or blank field gets
// Placeholder, except fields tagged omitempty, which stay empty so the
// generator can leave out the optional block they belong to.
func bind[T any](f Fields) T {
	var rec T
	v := reflect.ValueOf(&rec).Elem()
	for _, s := range specsOf(v.Type()) {
		value := strings.TrimSpace(f[s.name])
		if value == "" && !s.optional {
			value = Placeholder
		}
		v.Field(s.index).SetString(value)
	}
	return rec
}

// fieldNames lists the json names of T's fields in declaration order.
func fieldNames[T any]() []string {
	var rec T
	specs := specsOf(reflect.TypeOf(rec))
	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.name)
	}
	return names
}
