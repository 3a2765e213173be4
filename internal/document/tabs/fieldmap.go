package tabs

import (
	"bytes"
	"encoding/json"
)

// FieldMap is an ordered mapping of wire field name to rendered value.
// Iteration and JSON encoding follow insertion order.
type FieldMap struct {
	keys   []string
	values map[string]string
}

func NewFieldMap(capacity int) *FieldMap {
	return &FieldMap{
		keys:   make([]string, 0, capacity),
		values: make(map[string]string, capacity),
	}
}

// Set adds name or replaces its value in place.
func (m *FieldMap) Set(name, value string) {
	if _, ok := m.values[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.values[name] = value
}

func (m *FieldMap) Get(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

func (m *FieldMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *FieldMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Range calls fn for each entry in order until fn returns false.
func (m *FieldMap) Range(fn func(name, value string) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Map returns an unordered copy.
func (m *FieldMap) Map() map[string]string {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// Tabs renders every entry as an e-signature tab of the given kind.
func (m *FieldMap) Tabs(kind TabKind) []Tab {
	out := make([]Tab, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, Tab{TabLabel: k, Value: m.values[k], TabType: kind})
	}
	return out
}

func (m *FieldMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Tab is one named value slot in an e-signature document.
type Tab struct {
	TabLabel string  `json:"tabLabel"`
	Value    string  `json:"value"`
	TabType  TabKind `json:"tabType"`
}
