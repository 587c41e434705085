/*
Package arena implements a doubly linked list stored in a single slice.

Links are slice indices instead of pointers. Removing an element relocates the
last stored slot into the freed index so that storage stays contiguous. The
relocation never changes the traversal order.

A List is not safe for concurrent use and must not be modified while a
borrowing view is in use.
*/
package arena

import (
	"iter"

	"github.com/mgnsk/dlist/internal/seqfmt"
)

// none marks an absent link.
const none = -1

type slot[V any] struct {
	value      V
	next, prev int
}

// List is a doubly linked list backed by a slice.
//
// The zero value is a ready to use empty list.
type List[V any] struct {
	buf []slot[V]
	// head and tail are meaningful only when buf is not empty.
	head, tail int
	gen        uint64
}

// New creates an empty list.
func New[V any]() *List[V] {
	return &List[V]{}
}

// NewWithCapacity creates an empty list with storage preallocated for capacity elements.
func NewWithCapacity[V any](capacity int) *List[V] {
	if capacity < 0 {
		panic("arena: negative capacity")
	}
	return &List[V]{buf: make([]slot[V], 0, capacity)}
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
	l := NewWithCapacity[V](len(values))
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return len(l.buf)
}

// IsEmpty reports whether the list has no elements.
func (l *List[V]) IsEmpty() bool {
	return len(l.buf) == 0
}

// Front returns the first value of the list.
func (l *List[V]) Front() (value V, ok bool) {
	if len(l.buf) == 0 {
		return value, false
	}
	return l.buf[l.head].value, true
}

// Back returns the last value of the list.
func (l *List[V]) Back() (value V, ok bool) {
	if len(l.buf) == 0 {
		return value, false
	}
	return l.buf[l.tail].value, true
}

// PushBack inserts a value at the back of list l.
func (l *List[V]) PushBack(value V) {
	i := len(l.buf)
	s := slot[V]{value: value, next: none, prev: none}
	if i == 0 {
		l.head = i
	} else {
		s.prev = l.tail
		l.buf[l.tail].next = i
	}
	l.buf = append(l.buf, s)
	l.tail = i
	l.gen++
}

// PushFront inserts a value at the front of list l.
func (l *List[V]) PushFront(value V) {
	i := len(l.buf)
	s := slot[V]{value: value, next: none, prev: none}
	if i == 0 {
		l.tail = i
	} else {
		s.next = l.head
		l.buf[l.head].prev = i
	}
	l.buf = append(l.buf, s)
	l.head = i
	l.gen++
}

// PopBack removes the last element and returns its value.
// It returns false if the list is empty.
func (l *List[V]) PopBack() (value V, ok bool) {
	if len(l.buf) == 0 {
		return value, false
	}
	return l.remove(l.tail), true
}

// PopFront removes the first element and returns its value.
// It returns false if the list is empty.
func (l *List[V]) PopFront() (value V, ok bool) {
	if len(l.buf) == 0 {
		return value, false
	}
	return l.remove(l.head), true
}

// Clear removes all elements from the list. The storage is kept for reuse.
func (l *List[V]) Clear() {
	clear(l.buf)
	l.buf = l.buf[:0]
	l.gen++
}

// remove unlinks the slot at index i and swap-removes it from storage.
func (l *List[V]) remove(i int) V {
	s := l.buf[i]

	if s.prev == none {
		l.head = s.next
	} else {
		l.buf[s.prev].next = s.next
	}
	if s.next == none {
		l.tail = s.prev
	} else {
		l.buf[s.next].prev = s.prev
	}

	last := len(l.buf) - 1
	if i != last {
		// Relocate the last slot into the freed index.
		moved := l.buf[last]
		l.buf[i] = moved
		if moved.prev == none {
			l.head = i
		} else {
			l.buf[moved.prev].next = i
		}
		if moved.next == none {
			l.tail = i
		} else {
			l.buf[moved.next].prev = i
		}
	}

	l.buf[last] = slot[V]{}
	l.buf = l.buf[:last]
	l.gen++

	return s.value
}

// Clone returns a copy of the list. Values are copied by assignment.
func (l *List[V]) Clone() *List[V] {
	c := &List[V]{
		buf:  make([]slot[V], len(l.buf), cap(l.buf)),
		head: l.head,
		tail: l.tail,
	}
	copy(c.buf, l.buf)
	return c
}

// CloneFunc returns a copy of the list with each value copied by f.
func (l *List[V]) CloneFunc(f func(V) V) *List[V] {
	c := l.Clone()
	for i := range c.buf {
		c.buf[i].value = f(c.buf[i].value)
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
	if len(a.buf) != len(b.buf) {
		return false
	}
	if len(a.buf) == 0 {
		return true
	}
	for i, j := a.head, b.head; i != none; i, j = a.buf[i].next, b.buf[j].next {
		if !eq(a.buf[i].value, b.buf[j].value) {
			return false
		}
	}
	return true
}
