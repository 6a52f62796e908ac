package core

import (
	"bytes"
	"encoding/json"
)

// Traits is an actor's fact table: an ordered mapping from fact name
// to an arbitrary value.
//
// First-time keys remember their insertion position.  Re-setting an
// existing key updates the value in place without establishing a new
// position.  Values are unconstrained.
type Traits struct {
	names  []string
	values map[string]interface{}
}

// NewTraits makes an empty fact table.
func NewTraits() *Traits {
	return &Traits{
		names:  make([]string, 0, 8),
		values: make(map[string]interface{}, 8),
	}
}

// Set writes a fact, preserving the key's original position if the
// key already exists.
func (ts *Traits) Set(name string, value interface{}) {
	if _, have := ts.values[name]; !have {
		ts.names = append(ts.names, name)
	}
	ts.values[name] = value
}

// Get returns the value for the named fact.
func (ts *Traits) Get(name string) (interface{}, bool) {
	if ts == nil {
		return nil, false
	}
	v, have := ts.values[name]
	return v, have
}

// Has reports whether the named fact exists.
func (ts *Traits) Has(name string) bool {
	_, have := ts.Get(name)
	return have
}

// Names returns the fact names in first-seen order.  The returned
// slice is a copy.
func (ts *Traits) Names() []string {
	if ts == nil {
		return nil
	}
	acc := make([]string, len(ts.names))
	copy(acc, ts.names)
	return acc
}

// Len returns the number of facts.
func (ts *Traits) Len() int {
	if ts == nil {
		return 0
	}
	return len(ts.names)
}

// Copy makes a shallow copy of the fact table (values are shared).
func (ts *Traits) Copy() *Traits {
	acc := NewTraits()
	for _, name := range ts.names {
		acc.Set(name, ts.values[name])
	}
	return acc
}

// Map returns the facts as a plain map.  The map is a copy, but the
// values are shared; order is (of course) lost.
func (ts *Traits) Map() map[string]interface{} {
	if ts == nil {
		return nil
	}
	acc := make(map[string]interface{}, len(ts.values))
	for p, v := range ts.values {
		acc[p] = v
	}
	return acc
}

// Do calls f for each fact in first-seen order, stopping at the first
// error, which is returned.
func (ts *Traits) Do(f func(name string, value interface{}) error) error {
	if ts == nil {
		return nil
	}
	for _, name := range ts.names {
		if err := f(name, ts.values[name]); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON renders the facts as a JSON object with keys in
// first-seen order.
func (ts *Traits) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range ts.names {
		if 0 < i {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(ts.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object.  Go's decoder hands us a map, so
// key order follows the decoded map, not the document.  ToDo: a real
// order-preserving decoder (tokenize instead).
func (ts *Traits) UnmarshalJSON(bs []byte) error {
	m := make(map[string]interface{})
	if err := json.Unmarshal(bs, &m); err != nil {
		return err
	}
	*ts = *NewTraits()
	for _, name := range sortedKeys(m) {
		ts.Set(name, m[name])
	}
	return nil
}
