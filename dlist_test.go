package dlist_test

import (
	"slices"
	"testing"

	"github.com/mgnsk/dlist"
	"github.com/mgnsk/dlist/arena"
	"github.com/mgnsk/dlist/internal/dequetest"
	"github.com/mgnsk/dlist/list"
	. "github.com/onsi/gomega"
)

func TestBackends(t *testing.T) {
	for _, backend := range dlist.Backends() {
		t.Run(backend, func(t *testing.T) {
			dequetest.Run(t, func() dequetest.Deque[int] {
				return dlist.New[int](dlist.WithBackend(backend), dlist.WithCapacity(8))
			})
		})
	}
}

func TestNew(t *testing.T) {
	g := NewWithT(t)

	g.Expect(dlist.New[int]()).To(BeAssignableToTypeOf(&list.List[int]{}))
	g.Expect(dlist.New[int](dlist.WithBackend(""))).To(BeAssignableToTypeOf(&list.List[int]{}))
	g.Expect(dlist.New[int](dlist.WithBackend(dlist.Linked))).To(BeAssignableToTypeOf(&list.List[int]{}))
	g.Expect(dlist.New[int](dlist.WithBackend(dlist.Arena))).To(BeAssignableToTypeOf(&arena.List[int]{}))
}

func TestInvalidOptions(t *testing.T) {
	g := NewWithT(t)

	g.Expect(func() {
		dlist.New[int](dlist.WithBackend("ring"))
	}).To(PanicWith("dlist: invalid backend 'ring'"))

	g.Expect(func() {
		dlist.New[int](dlist.WithCapacity(-1))
	}).To(PanicWith("dlist: negative capacity"))
}

func TestCollect(t *testing.T) {
	for _, backend := range dlist.Backends() {
		t.Run(backend, func(t *testing.T) {
			g := NewWithT(t)

			d := dlist.Collect(slices.Values([]int{1, 2, 3}), dlist.WithBackend(backend))
			g.Expect(d.String()).To(Equal("[1, 2, 3]"))
			g.Expect(slices.Collect(d.Backward())).To(Equal([]int{3, 2, 1}))
		})
	}
}
