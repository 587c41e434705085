/*
Package dequetest implements the behavioural test suite shared by every deque backend.
*/
package dequetest

import (
	"iter"
	"math/rand/v2"
	"slices"
	"testing"

	. "github.com/onsi/gomega"
)

// Deque is the behaviour under test.
type Deque[V any] interface {
	PushBack(V)
	PushFront(V)
	PopBack() (V, bool)
	PopFront() (V, bool)
	Front() (V, bool)
	Back() (V, bool)
	Len() int
	IsEmpty() bool
	Clear()
	All() iter.Seq[V]
	Backward() iter.Seq[V]
	String() string
}

// Run runs the suite against deques created by newDeque.
func Run(t *testing.T, newDeque func() Deque[int]) {
	t.Run("stack and queue order", func(t *testing.T) {
		g := NewWithT(t)
		d := newDeque()

		pushAll(d.PushBack, 1, 2, 3)
		g.Expect(popAll(d.PopBack)).To(Equal([]int{3, 2, 1}))

		pushAll(d.PushBack, 1, 2, 3)
		g.Expect(popAll(d.PopFront)).To(Equal([]int{1, 2, 3}))

		pushAll(d.PushFront, 1, 2, 3)
		g.Expect(popAll(d.PopFront)).To(Equal([]int{3, 2, 1}))

		pushAll(d.PushFront, 1, 2, 3)
		g.Expect(popAll(d.PopBack)).To(Equal([]int{1, 2, 3}))

		ExpectEmpty(g, d)
	})

	t.Run("pop from empty", func(t *testing.T) {
		g := NewWithT(t)
		d := newDeque()

		v, ok := d.PopBack()
		g.Expect(ok).To(BeFalse())
		g.Expect(v).To(BeZero())

		v, ok = d.PopFront()
		g.Expect(ok).To(BeFalse())
		g.Expect(v).To(BeZero())

		ExpectEmpty(g, d)
	})

	t.Run("removing the only element", func(t *testing.T) {
		for _, pop := range []struct {
			name string
			f    func(Deque[int]) (int, bool)
		}{
			{"back", Deque[int].PopBack},
			{"front", Deque[int].PopFront},
		} {
			t.Run(pop.name, func(t *testing.T) {
				g := NewWithT(t)
				d := newDeque()

				d.PushBack(1)
				v, ok := pop.f(d)
				g.Expect(ok).To(BeTrue())
				g.Expect(v).To(Equal(1))
				ExpectEmpty(g, d)

				// Both ends must be usable again.
				d.PushFront(2)
				ExpectElements(g, d, 2)
				d.PushBack(3)
				ExpectElements(g, d, 2, 3)
			})
		}
	})

	t.Run("front and back", func(t *testing.T) {
		g := NewWithT(t)
		d := newDeque()

		_, ok := d.Front()
		g.Expect(ok).To(BeFalse())
		_, ok = d.Back()
		g.Expect(ok).To(BeFalse())

		d.PushBack(1)
		d.PushBack(2)
		d.PushFront(0)

		v, ok := d.Front()
		g.Expect(ok).To(BeTrue())
		g.Expect(v).To(Equal(0))

		v, ok = d.Back()
		g.Expect(ok).To(BeTrue())
		g.Expect(v).To(Equal(2))
		g.Expect(d.Len()).To(Equal(3))
	})

	t.Run("string", func(t *testing.T) {
		g := NewWithT(t)
		d := newDeque()

		g.Expect(d.String()).To(Equal("[]"))

		pushAll(d.PushBack, 1, 2, 3)
		g.Expect(d.String()).To(Equal("[1, 2, 3]"))
	})

	t.Run("clear", func(t *testing.T) {
		g := NewWithT(t)
		d := newDeque()

		pushAll(d.PushBack, 1, 2, 3)
		d.Clear()
		ExpectEmpty(g, d)

		d.PushBack(4)
		ExpectElements(g, d, 4)
	})

	t.Run("early stop", func(t *testing.T) {
		g := NewWithT(t)
		d := newDeque()

		pushAll(d.PushBack, 1, 2, 3, 4)

		var got []int
		for v := range d.All() {
			if v == 3 {
				break
			}
			got = append(got, v)
		}
		g.Expect(got).To(Equal([]int{1, 2}))

		got = got[:0]
		for v := range d.Backward() {
			if v == 2 {
				break
			}
			got = append(got, v)
		}
		g.Expect(got).To(Equal([]int{4, 3}))
	})

	t.Run("random operations", func(t *testing.T) {
		g := NewWithT(t)
		d := newDeque()
		rng := rand.New(rand.NewPCG(1, 2))

		var model []int

		for i := range 10000 {
			switch rng.IntN(4) {
			case 0:
				d.PushBack(i)
				model = append(model, i)

			case 1:
				d.PushFront(i)
				model = slices.Insert(model, 0, i)

			case 2:
				v, ok := d.PopBack()
				g.Expect(ok).To(Equal(len(model) > 0))
				if ok {
					g.Expect(v).To(Equal(model[len(model)-1]))
					model = model[:len(model)-1]
				}

			case 3:
				v, ok := d.PopFront()
				g.Expect(ok).To(Equal(len(model) > 0))
				if ok {
					g.Expect(v).To(Equal(model[0]))
					model = model[1:]
				}
			}

			if i%97 == 0 {
				ExpectElements(g, d, model...)
			}
		}

		ExpectElements(g, d, model...)

		for !d.IsEmpty() {
			if rng.IntN(2) == 0 {
				d.PopBack()
			} else {
				d.PopFront()
			}
		}
		ExpectEmpty(g, d)
	})
}

// ExpectElements asserts that d holds exactly elements in forward order
// and their reverse in backward order.
func ExpectElements[V any](g Gomega, d Deque[V], elements ...V) {
	forward := slices.Collect(d.All())
	backward := slices.Collect(d.Backward())
	slices.Reverse(backward)

	if len(elements) == 0 {
		g.Expect(forward).To(BeEmpty())
		g.Expect(backward).To(BeEmpty())
	} else {
		g.Expect(forward).To(Equal(elements))
		g.Expect(backward).To(Equal(elements))
	}
	g.Expect(d.Len()).To(Equal(len(elements)))
	g.Expect(d.IsEmpty()).To(Equal(len(elements) == 0))
}

// ExpectEmpty asserts that d holds no elements.
func ExpectEmpty[V any](g Gomega, d Deque[V]) {
	ExpectElements[V](g, d)

	_, ok := d.Front()
	g.Expect(ok).To(BeFalse())
	_, ok = d.Back()
	g.Expect(ok).To(BeFalse())
}

func pushAll(push func(int), values ...int) {
	for _, v := range values {
		push(v)
	}
}

func popAll(pop func() (int, bool)) []int {
	var out []int
	for v, ok := pop(); ok; v, ok = pop() {
		out = append(out, v)
	}
	return out
}
