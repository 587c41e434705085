package list_test

import (
	"slices"
	"testing"

	"github.com/mgnsk/dlist/list"
	. "github.com/onsi/gomega"
)

func TestIterCrossing(t *testing.T) {
	g := NewWithT(t)

	l := list.Of(1, 2, 3, 4, 5)
	it := l.Iter()

	expectNext(g, it.Next, 1)
	expectNext(g, it.NextBack, 5)
	expectNext(g, it.Next, 2)
	expectNext(g, it.NextBack, 4)
	expectNext(g, it.Next, 3)
	g.Expect(it.Len()).To(BeZero())
	expectDone(g, it.NextBack)
	expectDone(g, it.Next)
	expectDone(g, it.Next)

	// The view does not consume the list.
	g.Expect(l.Len()).To(Equal(5))
}

func TestIterInterleaved(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for mask := range 1 << n {
			g := NewWithT(t)

			items := make([]int, n)
			for i := range items {
				items[i] = i
			}

			it := list.Of(items...).Iter()

			var front, back []int
			for step := range n {
				g.Expect(it.Len()).To(Equal(n - step))
				if mask&(1<<step) == 0 {
					v, ok := it.Next()
					g.Expect(ok).To(BeTrue())
					front = append(front, v)
				} else {
					v, ok := it.NextBack()
					g.Expect(ok).To(BeTrue())
					back = append(back, v)
				}
			}
			expectDone(g, it.Next)
			expectDone(g, it.NextBack)

			slices.Reverse(back)
			g.Expect(append(front, back...)).To(Equal(items))
		}
	}
}

func TestIterMut(t *testing.T) {
	t.Run("each element is yielded once", func(t *testing.T) {
		g := NewWithT(t)

		l := list.Of(1, 2, 3, 4, 5)
		it := l.IterMut()

		seen := map[*int]bool{}
		for {
			p := it.Next()
			if p == nil {
				break
			}
			g.Expect(seen).NotTo(HaveKey(p))
			seen[p] = true
			*p *= 10

			if p = it.NextBack(); p == nil {
				break
			}
			g.Expect(seen).NotTo(HaveKey(p))
			seen[p] = true
			*p += 1
		}

		g.Expect(seen).To(HaveLen(5))
		g.Expect(it.NextBack()).To(BeNil())
		// 3 is reached by the front cursor, 4 and 5 by the back cursor.
		g.Expect(l.String()).To(Equal("[10, 20, 30, 5, 6]"))
	})

	t.Run("pointers", func(t *testing.T) {
		g := NewWithT(t)

		l := list.Of("a", "b")
		for p := range l.Pointers() {
			*p += *p
		}
		g.Expect(slices.Collect(l.All())).To(Equal([]string{"aa", "bb"}))
	})
}

func TestIntoIter(t *testing.T) {
	t.Run("crossing", func(t *testing.T) {
		g := NewWithT(t)

		l := list.Of(1, 2, 3, 4, 5)
		it := l.IntoIter()

		g.Expect(l.IsEmpty()).To(BeTrue())
		g.Expect(it.Len()).To(Equal(5))

		expectNext(g, it.Next, 1)
		expectNext(g, it.NextBack, 5)
		expectNext(g, it.Next, 2)
		expectNext(g, it.NextBack, 4)
		expectNext(g, it.Next, 3)
		expectDone(g, it.NextBack)
		expectDone(g, it.Next)
	})

	t.Run("round trip", func(t *testing.T) {
		g := NewWithT(t)

		items := []string{"a", "b", "c"}

		var forward []string
		it := list.Of(items...).IntoIter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			forward = append(forward, v)
		}
		g.Expect(forward).To(Equal(items))

		var backward []string
		it = list.Of(items...).IntoIter()
		for v, ok := it.NextBack(); ok; v, ok = it.NextBack() {
			backward = append(backward, v)
		}
		g.Expect(backward).To(Equal([]string{"c", "b", "a"}))
	})

	t.Run("close discards the rest", func(t *testing.T) {
		g := NewWithT(t)

		it := list.Of(1, 2, 3).IntoIter()
		expectNext(g, it.Next, 1)

		it.Close()
		g.Expect(it.Len()).To(BeZero())
		expectDone(g, it.Next)
	})

	t.Run("source stays usable", func(t *testing.T) {
		g := NewWithT(t)

		l := list.Of(1, 2)
		_ = l.IntoIter()

		l.PushBack(3)
		g.Expect(l.String()).To(Equal("[3]"))
	})
}

func TestDrain(t *testing.T) {
	g := NewWithT(t)

	l := list.Of(1, 2, 3, 4)

	var got []int
	for v := range l.Drain() {
		got = append(got, v)
		if v == 2 {
			break
		}
	}

	g.Expect(got).To(Equal([]int{1, 2}))
	g.Expect(l.IsEmpty()).To(BeTrue())
	g.Expect(slices.Collect(list.Of(5, 6).Drain())).To(Equal([]int{5, 6}))
}

func TestModifiedDuringIteration(t *testing.T) {
	g := NewWithT(t)

	l := list.Of(1, 2, 3)

	it := l.Iter()
	it.Next()
	l.PushBack(4)
	g.Expect(func() { it.Next() }).To(PanicWith("list: list modified during iteration"))

	mut := l.IterMut()
	l.PopFront()
	g.Expect(func() { mut.NextBack() }).To(PanicWith("list: list modified during iteration"))

	g.Expect(func() {
		for range l.All() {
			l.PushFront(0)
		}
	}).To(PanicWith("list: list modified during iteration"))
}

func TestEmptyIter(t *testing.T) {
	g := NewWithT(t)

	var l list.List[int]
	it := l.Iter()
	expectDone(g, it.Next)
	expectDone(g, it.NextBack)
	g.Expect(l.IterMut().Next()).To(BeNil())
	g.Expect(slices.Collect(l.All())).To(BeEmpty())
}

func expectNext[V any](g Gomega, next func() (V, bool), expected V) {
	v, ok := next()
	g.Expect(ok).To(BeTrue())
	g.Expect(v).To(Equal(expected))
}

func expectDone[V any](g Gomega, next func() (V, bool)) {
	_, ok := next()
	g.Expect(ok).To(BeFalse())
}
