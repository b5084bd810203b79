package heap

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapOrder(t *testing.T) {
	h := New(func(a, b int) bool { return a < b })
	in := []int{5, 3, 9, 1, 1, 7, 0, 12, 4}
	for _, v := range in {
		h.Push(v)
	}
	require.Equal(t, len(in), h.Len())

	var got []int
	for h.Len() > 0 {
		got = append(got, h.Pop())
	}
	want := append([]int(nil), in...)
	sort.Ints(want)
	assert.Equal(t, want, got)
}

func TestHeapStructElements(t *testing.T) {
	type item struct {
		priority int
		name     string
	}
	h := New(func(a, b item) bool { return a.priority < b.priority })
	h.Push(item{3, "banana"})
	h.Push(item{2, "apple"})
	h.Push(item{4, "pear"})
	assert.Equal(t, "apple", h.Pop().name)
	h.Push(item{1, "orange"})
	assert.Equal(t, "orange", h.Pop().name)
	assert.Equal(t, "banana", h.Pop().name)
	assert.Equal(t, "pear", h.Pop().name)
	assert.Equal(t, 0, h.Len())
}

func TestHeapPopEmptyPanics(t *testing.T) {
	h := New(func(a, b int) bool { return a < b })
	assert.Panics(t, func() { h.Pop() })
}
