/*
Package list implements a pointer linked doubly linked list.

Every element lives in its own heap allocated node. The List is the only owner
of its nodes and the node links are used for traversal only.

A List is not safe for concurrent use. While a borrowing view (Iter, IterMut or
a range function) is in use, the list must not be modified. Violations are
detected on the next step of the view and cause a panic.
*/
package list

import (
	"iter"

	"github.com/mgnsk/dlist/internal/seqfmt"
)

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
type List[V any] struct {
	head, tail *node[V]
	len        int
	gen        uint64
}

// New creates an empty list.
func New[V any]() *List[V] {
	return &List[V]{}
}

// From creates a list holding every value of seq in order.
func From[V any](seq iter.Seq[V]) *List[V] {
	l := New[V]()
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

// Of creates a list holding values in order.
func Of[V any](values ...V) *List[V] {
	l := New[V]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List[V]) IsEmpty() bool {
	return l.len == 0
}

// Front returns the first value of the list.
func (l *List[V]) Front() (value V, ok bool) {
	if l.head == nil {
		return value, false
	}
	return l.head.value, true
}

// Back returns the last value of the list.
func (l *List[V]) Back() (value V, ok bool) {
	if l.tail == nil {
		return value, false
	}
	return l.tail.value, true
}

// PushBack inserts a value at the back of list l.
func (l *List[V]) PushBack(value V) {
	n := newNode(value)
	if l.tail == nil {
		l.head = n
	} else {
		n.prev = l.tail
		l.tail.next = n
	}
	l.tail = n
	l.len++
	l.gen++
}

// PushFront inserts a value at the front of list l.
func (l *List[V]) PushFront(value V) {
	n := newNode(value)
	if l.head == nil {
		l.tail = n
	} else {
		n.next = l.head
		l.head.prev = n
	}
	l.head = n
	l.len++
	l.gen++
}

// PopBack removes the last element and returns its value.
// It returns false if the list is empty.
func (l *List[V]) PopBack() (value V, ok bool) {
	n := l.tail
	if n == nil {
		return value, false
	}

	l.tail = n.prev
	if l.tail == nil {
		// Removed the only element.
		l.head = nil
	} else {
		l.tail.next = nil
	}
	l.len--
	l.gen++

	return n.release(), true
}

// PopFront removes the first element and returns its value.
// It returns false if the list is empty.
func (l *List[V]) PopFront() (value V, ok bool) {
	n := l.head
	if n == nil {
		return value, false
	}

	l.head = n.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	l.len--
	l.gen++

	return n.release(), true
}

// Clear removes all elements from the list.
func (l *List[V]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.release()
		n = next
	}
	l.head = nil
	l.tail = nil
	l.len = 0
	l.gen++
}

// Clone returns a copy of the list. Values are copied by assignment.
func (l *List[V]) Clone() *List[V] {
	return l.CloneFunc(func(v V) V { return v })
}

// CloneFunc returns a copy of the list with each value copied by f.
func (l *List[V]) CloneFunc(f func(V) V) *List[V] {
	c := New[V]()
	for n := l.head; n != nil; n = n.next {
		c.PushBack(f(n.value))
	}
	return c
}

// String formats the list as [v1, v2, ...] in forward order.
func (l *List[V]) String() string {
	return seqfmt.Format(l.All())
}

// Equal reports whether a and b hold equal values in the same order.
func Equal[V comparable](a, b *List[V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[V any](a, b *List[V], eq func(V, V) bool) bool {
	if a.len != b.len {
		return false
	}
	for x, y := a.head, b.head; x != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}
