// Package heap provides a binary min-heap over any element type.
package heap

import "container/heap"

// A Heap is a min-heap backed by a slice, ordered by a less function.
// The zero Heap is not usable; call New.
type Heap[E any] struct {
	s sliceHeap[E]
}

// New constructs an empty Heap ordered by less.
func New[E any](less func(E, E) bool) *Heap[E] {
	return &Heap[E]{sliceHeap[E]{less: less}}
}

// Push adds elem to the heap in O(log n).
func (h *Heap[E]) Push(elem E) {
	heap.Push(&h.s, elem)
}

// Pop removes and returns the minimum element in O(log n).
// Pop panics if the heap is empty.
func (h *Heap[E]) Pop() E {
	return heap.Pop(&h.s).(E)
}

// Len returns the number of elements in the heap.
func (h *Heap[E]) Len() int {
	return len(h.s.s)
}

// sliceHeap adapts the slice to heap.Interface.
type sliceHeap[E any] struct {
	s    []E
	less func(E, E) bool
}

func (s *sliceHeap[E]) Len() int           { return len(s.s) }
func (s *sliceHeap[E]) Less(i, j int) bool { return s.less(s.s[i], s.s[j]) }
func (s *sliceHeap[E]) Swap(i, j int)      { s.s[i], s.s[j] = s.s[j], s.s[i] }

func (s *sliceHeap[E]) Push(x any) {
	s.s = append(s.s, x.(E))
}

func (s *sliceHeap[E]) Pop() any {
	n := len(s.s) - 1
	e := s.s[n]
	var zero E
	s.s[n] = zero
	s.s = s.s[:n]
	return e
}
