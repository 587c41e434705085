package dlist_test

import (
	"testing"

	"github.com/mgnsk/dlist"
)

func BenchmarkBackends(b *testing.B) {
	for _, backend := range dlist.Backends() {
		b.Run(backend+" push pop", func(b *testing.B) {
			d := dlist.New[int](dlist.WithBackend(backend))

			b.ReportAllocs()
			b.ResetTimer()

			for i := range b.N {
				if i%2 == 0 {
					d.PushBack(i)
				} else {
					d.PushFront(i)
				}
				if i%3 == 0 {
					d.PopFront()
				}
			}
		})

		b.Run(backend+" iterate", func(b *testing.B) {
			d := dlist.New[int](dlist.WithBackend(backend))
			for i := range 1024 {
				d.PushBack(i)
			}

			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				sum := 0
				for v := range d.Backward() {
					sum += v
				}
				_ = sum
			}
		})
	}
}
