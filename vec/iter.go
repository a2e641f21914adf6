package vec

import "iter"

// All returns an iterator over index-element pairs in container order.
// Mutating the container during iteration is undefined; mutate elements
// through Data instead.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.Data() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-element pairs from the last
// element to the first.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.Data()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in container order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.Data() {
			if !yield(x) {
				return
			}
		}
	}
}

// Prefix returns the first i elements as a mutable view of the container's
// storage. Panics when i exceeds Len.
func (v *Vec[T]) Prefix(i int) []T { return v.Data()[:i] }

// Suffix returns the elements from index i on as a mutable view of the
// container's storage. Panics when i exceeds Len.
func (v *Vec[T]) Suffix(i int) []T { return v.Data()[i:] }
