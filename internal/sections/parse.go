package sections

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ParseDocumentData decodes an extraction result. The top level must be a
// JSON object. Unknown section keys and sections that are not objects are
// dropped. Within a section, numbers and booleans are kept as text while
// nulls and nested values become empty so they render as Placeholder.
// Anything after the top-level object is an error.
func ParseDocumentData(raw []byte) (DocumentData, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var top map[string]json.RawMessage
	if err := dec.Decode(&top); err != nil {
		return nil, fmt.Errorf("decoding document data: %w", err)
	}
	if top == nil {
		return nil, fmt.Errorf("decoding document data: top level is not an object")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding document data: unexpected data after top-level object")
	}

	data := make(DocumentData, len(top))
	for name, section := range top {
		key := Key(name)
		if !Known(key) {
			continue
		}
		fields, ok := parseFields(section)
		if !ok {
			continue
		}
		data[key] = fields
	}
	return data, nil
}

func parseFields(raw json.RawMessage) (Fields, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, false
	}
	fields := make(Fields, len(obj))
	for name, v := range obj {
		switch val := v.(type) {
		case string:
			fields[name] = val
		case json.Number:
			fields[name] = val.String()
		case bool:
			fields[name] = strconv.FormatBool(val)
		default:
			fields[name] = ""
		}
	}
	return fields, true
}
