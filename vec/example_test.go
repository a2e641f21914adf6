package vec_test

import (
	"fmt"

	"github.com/joshuapare/veckit/vec"
	"github.com/joshuapare/veckit/vec/mem"
)

func ExampleVec() {
	v := vec.Of(3, 1, 4)
	v.Push(1)
	v.Push(5)
	v.Delete(1, 2)
	for i, x := range v.All() {
		fmt.Println(i, x)
	}
	// Output:
	// 0 3
	// 1 4
	// 2 1
	// 3 5
}

func ExampleNewIn() {
	arena := mem.NewArena(0)
	v := vec.NewIn[float64](arena)
	for i := 0; i < 4; i++ {
		v.Push(float64(i) * 1.5)
	}
	fmt.Println(v.Len(), *v.Back())
	v.Free()
	arena.Release()
	// Output: 4 4.5
}

func ExampleNewCapture() {
	v := vec.New[int]()
	c := vec.NewCapture(v)
	for i := 1; i <= 3; i++ {
		c.Push(i * i)
	}
	c.Release()
	fmt.Println(v.Data())
	// Output: [1 4 9]
}
