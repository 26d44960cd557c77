package docgen

import (
	"bytes"
	"encoding/json"
)

// OrderedDoc is a JSON object that remembers insertion order. Go's map
// has no defined iteration order and encoding/json sorts map keys
// alphabetically, neither of which match the source document's
// declaration-order field layout, so this is the one place the
// document generator reaches for a hand-rolled container instead of a
// library: no ordered-map package appears anywhere in the retrieved
// example pack. See DESIGN.md.
type OrderedDoc struct {
	keys   []string
	values map[string]any
}

// NewOrderedDoc returns an empty ordered document.
func NewOrderedDoc() *OrderedDoc {
	return &OrderedDoc{values: make(map[string]any)}
}

// Set inserts or updates key, preserving its original position on
// update. Returns the receiver so calls can be chained.
func (d *OrderedDoc) Set(key string, value any) *OrderedDoc {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
	return d
}

// Get returns the value stored at key, if any.
func (d *OrderedDoc) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (d *OrderedDoc) Keys() []string {
	return append([]string(nil), d.keys...)
}

// Len returns the number of keys.
func (d *OrderedDoc) Len() int {
	return len(d.keys)
}

// MarshalJSON renders the document as a JSON object with fields in
// insertion order.
func (d *OrderedDoc) MarshalJSON() ([]byte, error) {
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
