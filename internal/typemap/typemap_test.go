package typemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type key[A, B any] struct{}

type (
	left  struct{}
	right struct{}
)

func TestMap_insert_find(t *testing.T) {
	m := New()

	_, ok := Find[key[int, string], string](m)
	require.False(t, ok)

	Insert[key[int, string]](m, "first")
	v, ok := Find[key[int, string], string](m)
	require.True(t, ok)
	require.Equal(t, "first", v)

	Insert[key[int, string]](m, "second")
	v, ok = Find[key[int, string], string](m)
	require.True(t, ok)
	require.Equal(t, "second", v)
	require.Equal(t, 1, m.Len())
}

func TestMap_distinct_instantiations(t *testing.T) {
	m := New()
	Insert[key[left, int]](m, 1)
	Insert[key[right, int]](m, 2)
	Insert[key[int, left]](m, 3)

	a, _ := Find[key[left, int], int](m)
	b, _ := Find[key[right, int], int](m)
	c, _ := Find[key[int, left], int](m)
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, 3, c)
	assert.Equal(t, 3, m.Len())
}

func TestMap_wrong_value_type(t *testing.T) {
	m := New()
	Insert[key[left, left]](m, 42)

	_, ok := Find[key[left, left], string](m)
	require.False(t, ok)
}

func TestMap_delete(t *testing.T) {
	m := New()
	Insert[key[left, right]](m, "x")
	Delete[key[left, right]](m)

	_, ok := Find[key[left, right], string](m)
	require.False(t, ok)
	require.Zero(t, m.Len())
}
