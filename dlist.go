/*
Package dlist implements generic double ended queues on top of doubly linked lists.

Two backends share the same behaviour: package list links heap allocated nodes
with pointers and package arena links slots of a single slice with indices.
Neither is safe for concurrent use.
*/
package dlist

import (
	"iter"

	"github.com/mgnsk/dlist/arena"
	"github.com/mgnsk/dlist/list"
)

// Deque is an ordered sequence with O(1) insertion and removal at both ends.
type Deque[V any] interface {
	// PushBack inserts a value at the back.
	PushBack(V)
	// PushFront inserts a value at the front.
	PushFront(V)
	// PopBack removes and returns the back value. It returns false if the deque is empty.
	PopBack() (V, bool)
	// PopFront removes and returns the front value. It returns false if the deque is empty.
	PopFront() (V, bool)
	// Front returns the front value without removing it.
	Front() (V, bool)
	// Back returns the back value without removing it.
	Back() (V, bool)
	Len() int
	IsEmpty() bool
	// Clear removes all values.
	Clear()
	// All iterates the values in forward order.
	All() iter.Seq[V]
	// Backward iterates the values in backward order.
	Backward() iter.Seq[V]
	// String formats the values as [v1, v2, ...].
	String() string
}

var (
	_ Deque[int] = (*list.List[int])(nil)
	_ Deque[int] = (*arena.List[int])(nil)
)

// New creates an empty deque.
func New[V any](opts ...Option) Deque[V] {
	o := newDefaultDequeOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	switch o.backend {
	case Arena:
		return arena.NewWithCapacity[V](o.capacity)
	default:
		return list.New[V]()
	}
}

// Collect creates a deque holding every value of seq in order.
func Collect[V any](seq iter.Seq[V], opts ...Option) Deque[V] {
	d := New[V](opts...)
	for v := range seq {
		d.PushBack(v)
	}
	return d
}

// Backends returns the names of the available backends.
func Backends() []string {
	return []string{Linked, Arena}
}
