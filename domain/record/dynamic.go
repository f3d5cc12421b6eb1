package record

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Dynamic is a header-keyed scalar mapping produced for one non-empty data
// row. Keys preserve insertion order and the exact case read from the sheet.
// Extraction never inserts blank values; absence represents "no data".
type Dynamic struct {
	keys   []string
	values map[string]Value
}

// NewDynamic creates an empty dynamic record
func NewDynamic() *Dynamic {
	return &Dynamic{values: make(map[string]Value)}
}

// Set inserts a value under the given header. Duplicate headers follow
// last-write-wins without de-duplication. Extraction never inserts blank
// values; callers building records by hand can.
func (d *Dynamic) Set(header string, v Value) {
	if _, exists := d.values[header]; !exists {
		d.keys = append(d.keys, header)
	}
	d.values[header] = v
}

// Get returns the value for an exact-case header
func (d *Dynamic) Get(header string) (Value, bool) {
	v, ok := d.values[header]
	return v, ok
}

// Lookup returns the value for a case-insensitive header match. When two
// stored keys collide case-insensitively, the first key in insertion order
// wins.
func (d *Dynamic) Lookup(header string) (Value, bool) {
	for _, k := range d.keys {
		if strings.EqualFold(k, header) {
			return d.values[k], true
		}
	}
	return Value{}, false
}

// Keys returns the headers in insertion order
func (d *Dynamic) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of populated entries
func (d *Dynamic) Len() int {
	return len(d.keys)
}

// MarshalJSON renders the record as an object with keys in insertion order
func (d *Dynamic) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
