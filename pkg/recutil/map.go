package recutil

import (
	"bytes"
	"encoding/json"
)

// Map is a string-keyed mapping that remembers insertion order. It is the
// result type of field selection, where the order of selected keys is part
// of the contract. Like the built-in map it is not safe for concurrent
// writes. The zero value is ready to use.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap initializes a Map from alternating key/value pairs.
func NewMap(pairs ...any) *Map {
	m := new(Map)
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			continue
		}
		m.Set(key, pairs[i+1])
	}
	return m
}

// Set stores the value under the given key. A key that is already present
// keeps its original position and only the value is replaced.
func (m *Map) Set(key string, value any) {
	if m.values == nil {
		m.values = map[string]any{}
	}

	if _, found := m.values[key]; !found {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under the given key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil || m.values == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of keys. It is safe to call on a nil Map.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}

	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Each calls fn for every key/value pair in insertion order.
func (m *Map) Each(fn func(key string, value any)) {
	if m == nil {
		return
	}

	for _, key := range m.keys {
		fn(key, m.values[key])
	}
}

// Clone returns a shallow copy. Nested values are shared.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}

	out := new(Map)
	m.Each(out.Set)
	return out
}

// MarshalJSON renders the Map as a JSON object with keys in insertion
// order, unlike the built-in map whose keys get sorted.
func (m *Map) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte('{')

	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')

		value, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String renders the Map in its JSON form.
func (m *Map) String() string {
	return Render(m)
}
