package list

import "iter"

// cursor is a two ended cursor over a list. Both ends are gated by the
// remaining count so that no position is visited twice.
type cursor[V any] struct {
	list        *List[V]
	front, back *node[V]
	remaining   int
	gen         uint64
}

func newCursor[V any](l *List[V]) cursor[V] {
	return cursor[V]{
		list:      l,
		front:     l.head,
		back:      l.tail,
		remaining: l.len,
		gen:       l.gen,
	}
}

func (c *cursor[V]) next() *node[V] {
	if c.remaining == 0 {
		return nil
	}
	c.check()
	c.remaining--

	n := c.front
	c.front = n.next
	return n
}

func (c *cursor[V]) nextBack() *node[V] {
	if c.remaining == 0 {
		return nil
	}
	c.check()
	c.remaining--

	n := c.back
	c.back = n.prev
	return n
}

func (c *cursor[V]) check() {
	if c.list.gen != c.gen {
		panic("list: list modified during iteration")
	}
}

// Iter is a read only view over a list, consumed from both ends.
type Iter[V any] struct {
	c cursor[V]
}

// Iter returns a view over the list in forward and backward order.
// The list must not be modified while the view is in use.
func (l *List[V]) Iter() *Iter[V] {
	return &Iter[V]{c: newCursor(l)}
}

// Next returns the value at the front of the view.
// It returns false once the view is exhausted.
func (it *Iter[V]) Next() (value V, ok bool) {
	if n := it.c.next(); n != nil {
		return n.value, true
	}
	return value, false
}

// NextBack returns the value at the back of the view.
// It returns false once the view is exhausted.
func (it *Iter[V]) NextBack() (value V, ok bool) {
	if n := it.c.nextBack(); n != nil {
		return n.value, true
	}
	return value, false
}

// Len returns the number of values remaining in the view.
func (it *Iter[V]) Len() int {
	return it.c.remaining
}

// IterMut is a mutable view over a list, consumed from both ends.
// Every element is yielded at most once, from whichever end reaches it first.
type IterMut[V any] struct {
	c cursor[V]
}

// IterMut returns a mutable view over the list.
// The list must not be modified while the view is in use, and no other view
// may be used at the same time. Pointers stay valid until the element is removed.
func (l *List[V]) IterMut() *IterMut[V] {
	return &IterMut[V]{c: newCursor(l)}
}

// Next returns a pointer to the value at the front of the view or nil.
func (it *IterMut[V]) Next() *V {
	if n := it.c.next(); n != nil {
		return &n.value
	}
	return nil
}

// NextBack returns a pointer to the value at the back of the view or nil.
func (it *IterMut[V]) NextBack() *V {
	if n := it.c.nextBack(); n != nil {
		return &n.value
	}
	return nil
}

// Len returns the number of values remaining in the view.
func (it *IterMut[V]) Len() int {
	return it.c.remaining
}

// IntoIter owns the elements of a consumed list.
type IntoIter[V any] struct {
	list List[V]
}

// IntoIter moves every element of l into a consuming view. l is left empty.
func (l *List[V]) IntoIter() *IntoIter[V] {
	it := &IntoIter[V]{
		list: List[V]{
			head: l.head,
			tail: l.tail,
			len:  l.len,
		},
	}
	l.head = nil
	l.tail = nil
	l.len = 0
	l.gen++
	return it
}

// Next removes and returns the front value.
func (it *IntoIter[V]) Next() (value V, ok bool) {
	return it.list.PopFront()
}

// NextBack removes and returns the back value.
func (it *IntoIter[V]) NextBack() (value V, ok bool) {
	return it.list.PopBack()
}

// Len returns the number of values remaining in the view.
func (it *IntoIter[V]) Len() int {
	return it.list.len
}

// Close discards the values that were not consumed.
func (it *IntoIter[V]) Close() {
	it.list.Clear()
}

// All returns an iterator over the values in forward order.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := l.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values in backward order.
func (l *List[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := l.Iter()
		for v, ok := it.NextBack(); ok; v, ok = it.NextBack() {
			if !yield(v) {
				return
			}
		}
	}
}

// Pointers returns an iterator over pointers to the values in forward order.
func (l *List[V]) Pointers() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		it := l.IterMut()
		for p := it.Next(); p != nil; p = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// Drain returns an iterator that removes the values from the front of the list
// as it yields them. Values not yet yielded when the iteration stops are discarded.
func (l *List[V]) Drain() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := l.IntoIter()
		defer it.Close()

		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
