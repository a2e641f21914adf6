package main

// naiveVec is the textbook doubling vector: manual storage, manual growth,
// no amortization tricks. It anchors the low end of the comparison.
type naiveVec[T any] struct {
	data []T
	n    int
}

func (v *naiveVec[T]) push(x T) {
	if v.n == len(v.data) {
		d := make([]T, max(2*len(v.data), 1))
		copy(d, v.data)
		v.data = d
	}
	v.data[v.n] = x
	v.n++
}

func (v *naiveVec[T]) pop() T {
	v.n--
	return v.data[v.n]
}
