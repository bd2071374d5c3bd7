package recutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapOrder(t *testing.T) {
	m := new(Map)
	m.Set("b", 2)
	m.Set("a", 1)
	m.Set("c", 3)

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, `{"b":2,"a":1,"c":3}`, Render(m))
}

func TestMapSetKeepsPosition(t *testing.T) {
	m := NewMap("a", 1, "b", 2)
	m.Set("a", 9)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, `{"a":9,"b":2}`, Render(m))
}

func TestMapNil(t *testing.T) {
	var m *Map

	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())

	_, found := m.Get("a")
	assert.False(t, found)

	m.Each(func(string, any) {
		t.Fatal("must not be called")
	})
}

func TestMapClone(t *testing.T) {
	m := NewMap("a", 1, "b", 2)
	c := m.Clone()
	c.Set("a", 9)

	v, _ := m.Get("a")
	assert.Equal(t, 1, v)
}

func TestRender(t *testing.T) {
	assert.Equal(t, `{"a":1,"b":"x"}`, Render(Record{"b": "x", "a": 1}))
	assert.Equal(t, `null`, Render(nil))
	assert.Equal(t, `["a",1]`, Render([]any{"a", 1}))
}
