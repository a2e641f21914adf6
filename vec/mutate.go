package vec

import "fmt"

// Push appends x, growing the buffer when full. Addresses obtained before a
// growth are invalid after it.
func (v *Vec[T]) Push(x T) {
	n := v.buf.Len()
	if n == v.buf.Cap() {
		v.grow(uint64(n) + 1)
	}
	*v.slot(n) = x
	v.buf.SetLen(n + 1)
}

// Pop removes and returns the last element, clearing the vacated slot so it
// holds no references. The container must not be empty; Pop does not check.
func (v *Vec[T]) Pop() T {
	n := v.buf.Len() - 1
	p := v.slot(n)
	x := *p
	var zero T
	*p = zero
	v.buf.SetLen(n)
	return x
}

// Emplace appends a zeroed element and returns its address for in-place
// construction. The address is valid until the next growth.
func (v *Vec[T]) Emplace() *T {
	n := v.buf.Len()
	if n == v.buf.Cap() {
		v.grow(uint64(n) + 1)
	}
	p := v.slot(n)
	var zero T
	*p = zero
	v.buf.SetLen(n + 1)
	return p
}

// EmplaceAt opens a zeroed element at index i, shifting the tail up, and
// returns its address. i may equal Len, which appends.
func (v *Vec[T]) EmplaceAt(i int) *T {
	return &v.gap(i, 1)[0]
}

// Insert places xs starting at index i, shifting the existing tail up.
// Relative order is preserved on both sides of the insertion point; cost is
// O(Len + len(xs)). i may equal Len, which appends. Panics when i is out of
// range.
func (v *Vec[T]) Insert(i int, xs ...T) {
	gap := v.gap(i, len(xs))
	copy(gap, xs)
}

// InsertN places n copies of x starting at index i; otherwise as Insert.
// Panics when n is negative.
func (v *Vec[T]) InsertN(i, n int, x T) {
	gap := v.gap(i, n)
	for j := range gap {
		gap[j] = x
	}
}

// gap opens k zeroed slots at index i and returns them. The tail moves up by
// one block copy, so stale bytes from raw storage never become visible.
func (v *Vec[T]) gap(i, k int) []T {
	n := v.Len()
	if i < 0 || i > n {
		panic(fmt.Sprintf("vec: insert index %d out of range [0, %d]", i, n))
	}
	if k < 0 {
		panic(fmt.Sprintf("vec: negative insert count %d", k))
	}
	if k == 0 {
		return nil
	}
	need := n + k
	if need > v.Cap() {
		v.grow(uint64(n) + uint64(k))
	}
	v.buf.SetLen(uint32(need))
	s := v.Data()
	copy(s[i+k:], s[i:n])
	clear(s[i : i+k])
	return s[i : i+k]
}

// Delete removes elements [i, j), shifting the surviving tail down and
// clearing the vacated slots. Delete(i, i) is a no-op. After return, index i
// addresses the first element that followed the removed range. Panics when
// the range is invalid.
func (v *Vec[T]) Delete(i, j int) {
	n := v.Len()
	if i < 0 || j < i || j > n {
		panic(fmt.Sprintf("vec: delete range [%d:%d] out of range [0, %d]", i, j, n))
	}
	if i == j {
		return
	}
	s := v.Data()
	m := copy(s[i:], s[j:])
	clear(s[i+m:])
	v.buf.SetLen(uint32(i + m))
}

// Clear removes all elements, clearing their slots. Capacity is retained.
func (v *Vec[T]) Clear() {
	clear(v.Data())
	v.buf.SetLen(0)
}

// Resize sets the length to n. Shrinking clears the dropped slots; growing
// appends zero values. Panics when n is negative.
func (v *Vec[T]) Resize(n int) {
	cur := v.checkLen(n)
	switch {
	case n < cur:
		s := v.Data()
		clear(s[n:])
		v.buf.SetLen(uint32(n))
	case n > cur:
		if n > v.Cap() {
			v.grow(uint64(n))
		}
		v.buf.SetLen(uint32(n))
		clear(v.Data()[cur:])
	}
}

// ResizeWith sets the length to n, filling any new slots with copies of x.
func (v *Vec[T]) ResizeWith(n int, x T) {
	cur := v.checkLen(n)
	if n <= cur {
		v.Resize(n)
		return
	}
	if n > v.Cap() {
		v.grow(uint64(n))
	}
	v.buf.SetLen(uint32(n))
	s := v.Data()[cur:]
	for i := range s {
		s[i] = x
	}
}

// ResizeFunc grows the length to n, filling each new slot with a value from
// fn. When fn fails, the container keeps exactly the elements constructed so
// far (a valid state) and the error is returned wrapped with the resize
// position. n at or below the current length behaves like Resize.
func (v *Vec[T]) ResizeFunc(n int, fn func() (T, error)) error {
	cur := v.checkLen(n)
	if n <= cur {
		v.Resize(n)
		return nil
	}
	if n > v.Cap() {
		v.grow(uint64(n))
	}
	for i := cur; i < n; i++ {
		x, err := fn()
		if err != nil {
			return fmt.Errorf("vec: resize to %d stopped at %d: %w", n, i, err)
		}
		*v.slot(uint32(i)) = x
		v.buf.SetLen(uint32(i + 1))
	}
	return nil
}

// Assign replaces the contents with a copy of xs: live slots are overwritten
// in place, extra slots are cleared when xs is shorter and appended when it
// is longer. xs must not alias the container's own storage if growth is
// required.
func (v *Vec[T]) Assign(xs []T) {
	n := len(xs)
	cur := v.Len()
	if n <= cur {
		s := v.Data()
		copy(s, xs)
		clear(s[n:])
		v.buf.SetLen(uint32(n))
		return
	}
	if n > v.Cap() {
		v.grow(uint64(n))
	}
	v.buf.SetLen(uint32(n))
	copy(v.Data(), xs)
}

func (v *Vec[T]) checkLen(n int) int {
	if n < 0 {
		panic(fmt.Sprintf("vec: negative length %d", n))
	}
	return v.Len()
}
