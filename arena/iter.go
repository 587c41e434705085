package arena

import "iter"

type cursor[V any] struct {
	list        *List[V]
	front, back int
	remaining   int
	gen         uint64
}

func newCursor[V any](l *List[V]) cursor[V] {
	c := cursor[V]{
		list:      l,
		front:     none,
		back:      none,
		remaining: len(l.buf),
		gen:       l.gen,
	}
	if c.remaining > 0 {
		c.front = l.head
		c.back = l.tail
	}
	return c
}

func (c *cursor[V]) next() int {
	if c.remaining == 0 {
		return none
	}
	c.check()
	c.remaining--

	i := c.front
	c.front = c.list.buf[i].next
	return i
}

func (c *cursor[V]) nextBack() int {
	if c.remaining == 0 {
		return none
	}
	c.check()
	c.remaining--

	i := c.back
	c.back = c.list.buf[i].prev
	return i
}

func (c *cursor[V]) check() {
	if c.list.gen != c.gen {
		panic("arena: list modified during iteration")
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
func (it *Iter[V]) Next() (value V, ok bool) {
	if i := it.c.next(); i != none {
		return it.c.list.buf[i].value, true
	}
	return value, false
}

// NextBack returns the value at the back of the view.
func (it *Iter[V]) NextBack() (value V, ok bool) {
	if i := it.c.nextBack(); i != none {
		return it.c.list.buf[i].value, true
	}
	return value, false
}

// Len returns the number of values remaining in the view.
func (it *Iter[V]) Len() int {
	return it.c.remaining
}

// IterMut is a mutable view over a list, consumed from both ends.
type IterMut[V any] struct {
	c cursor[V]
}

// IterMut returns a mutable view over the list.
// Pointers address the list storage and are invalidated by any later
// insertion or removal.
func (l *List[V]) IterMut() *IterMut[V] {
	return &IterMut[V]{c: newCursor(l)}
}

// Next returns a pointer to the value at the front of the view or nil.
func (it *IterMut[V]) Next() *V {
	if i := it.c.next(); i != none {
		return &it.c.list.buf[i].value
	}
	return nil
}

// NextBack returns a pointer to the value at the back of the view or nil.
func (it *IterMut[V]) NextBack() *V {
	if i := it.c.nextBack(); i != none {
		return &it.c.list.buf[i].value
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
			buf:  l.buf,
			head: l.head,
			tail: l.tail,
		},
	}
	l.buf = nil
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
	return len(it.list.buf)
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
