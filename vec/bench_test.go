package vec

import (
	"testing"

	"github.com/joshuapare/veckit/vec/mem"
)

const benchElems = 4096

var benchSink int

func BenchmarkPush(b *testing.B) {
	b.Run("Vec", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var v Vec[int]
			for j := 0; j < benchElems; j++ {
				v.Push(j)
			}
			benchSink = v.Len()
		}
	})
	b.Run("VecCaptured", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var v Vec[int]
			c := NewCapture(&v)
			for j := 0; j < benchElems; j++ {
				c.Push(j)
			}
			c.Release()
			benchSink = v.Len()
		}
	})
	b.Run("VecReserved", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var v Vec[int]
			v.Reserve(benchElems)
			for j := 0; j < benchElems; j++ {
				v.Push(j)
			}
			benchSink = v.Len()
		}
	})
	b.Run("VecArena", func(b *testing.B) {
		a := mem.NewArena(1 << 20)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.Reset()
			v := NewIn[int](a)
			for j := 0; j < benchElems; j++ {
				v.Push(j)
			}
			benchSink = v.Len()
		}
	})
	b.Run("Append", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < benchElems; j++ {
				s = append(s, j)
			}
			benchSink = len(s)
		}
	})
	b.Run("AppendPrealloc", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, benchElems)
			for j := 0; j < benchElems; j++ {
				s = append(s, j)
			}
			benchSink = len(s)
		}
	})
}

func BenchmarkSum(b *testing.B) {
	v := New[int]()
	for j := 0; j < benchElems; j++ {
		v.Push(j)
	}

	b.Run("Data", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for _, x := range v.Data() {
				sum += x
			}
			benchSink = sum
		}
	})
	b.Run("Values", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for x := range v.Values() {
				sum += x
			}
			benchSink = sum
		}
	})
	b.Run("Get", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for j := 0; j < v.Len(); j++ {
				sum += *v.Get(j)
			}
			benchSink = sum
		}
	})
	b.Run("Captured", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			c := NewCapture(v)
			sum := 0
			for j := 0; j < c.Len(); j++ {
				sum += *c.Get(j)
			}
			c.Release()
			benchSink = sum
		}
	})
}
