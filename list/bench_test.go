package list_test

import (
	stdlist "container/list"
	"testing"

	"github.com/mgnsk/dlist/list"
)

func BenchmarkPushPop(b *testing.B) {
	b.Run("dlist list", func(b *testing.B) {
		var l list.List[string]

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			l.PushBack("a")
			l.PopFront()
		}
	})

	b.Run("std list", func(b *testing.B) {
		l := stdlist.New()

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			l.PushBack("a")
			l.Remove(l.Front())
		}
	})
}

func BenchmarkIterate(b *testing.B) {
	const size = 1024

	b.Run("dlist list", func(b *testing.B) {
		var l list.List[int]
		for i := range size {
			l.PushBack(i)
		}

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			sum := 0
			for v := range l.All() {
				sum += v
			}
			_ = sum
		}
	})

	b.Run("std list", func(b *testing.B) {
		l := stdlist.New()
		for i := range size {
			l.PushBack(i)
		}

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			sum := 0
			for e := l.Front(); e != nil; e = e.Next() {
				sum += e.Value.(int)
			}
			_ = sum
		}
	})
}
