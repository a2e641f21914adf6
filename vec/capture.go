package vec

import "github.com/joshuapare/veckit/vec/raw"

// Capture moves a container's state into a stack-local value for the length
// of a scope. The Go compiler performs no alias analysis across opaque calls
// for heap-resident fields, so hot loops that interleave method calls with
// other work can pin base, length and capacity in registers by operating on
// a local copy. Semantics are identical with or without it.
//
//	c := vec.NewCapture(&v)
//	for i := 0; i < n; i++ {
//		c.Push(i)
//	}
//	c.Release()
//
// While a Capture is live, the origin container is valid but empty and must
// not be used; exactly one live Capture may exist per container. Release
// moves the possibly mutated state back. Neither is checked, matching the
// single-owner model.
type Capture[T any] struct {
	Vec[T]
	orig *Vec[T]
}

// NewCapture moves *v into the returned value, leaving *v empty on its
// resource.
func NewCapture[T any](v *Vec[T]) Capture[T] {
	c := Capture[T]{Vec: *v, orig: v}
	res := v.buf.Resource()
	v.buf = raw.Buffer{}
	v.buf.SetResource(res)
	return c
}

// Release moves the captured state back to the origin container. Releasing
// twice panics.
func (c *Capture[T]) Release() {
	if c.orig == nil {
		panic("vec: capture released twice")
	}
	*c.orig = c.Vec
	c.orig = nil
	c.Vec = Vec[T]{}
}
