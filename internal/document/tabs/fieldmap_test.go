package tabs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldMap_PreservesInsertionOrder(t *testing.T) {
	m := NewFieldMap(3)
	m.Set("zeta", "1")
	m.Set("alpha", "2")
	m.Set("mid", "3")
	m.Set("zeta", "4")

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())
	v, _ := m.Get("zeta")
	assert.Equal(t, "4", v)

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"4","alpha":"2","mid":"3"}`, string(b))
}

func TestFieldMap_MarshalEscapes(t *testing.T) {
	m := NewFieldMap(1)
	m.Set(`Name "quoted"`, "a\nb")

	b, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "a\nb", decoded[`Name "quoted"`])
}

func TestFieldMap_Tabs(t *testing.T) {
	m := NewFieldMap(2)
	m.Set("b", "2")
	m.Set("a", "1")

	assert.Equal(t, []Tab{
		{TabLabel: "b", Value: "2", TabType: TabKindText},
		{TabLabel: "a", Value: "1", TabType: TabKindText},
	}, m.Tabs(TabKindText))
}

func TestFieldMap_Range(t *testing.T) {
	m := NewFieldMap(3)
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("c", "3")

	var seen []string
	m.Range(func(name, _ string) bool {
		seen = append(seen, name)
		return name != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}
