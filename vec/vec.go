package vec

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"github.com/joshuapare/veckit/vec/mem"
	"github.com/joshuapare/veckit/vec/raw"
	"github.com/joshuapare/veckit/vec/reloc"
)

// Vec is a growable array of T backed by the raw buffer engine. The zero
// value is an empty container on the default resource, ready to use.
//
// A Vec is a single-owner structure: exactly one goroutine uses it at a time
// and nothing synchronizes access. Copying a Vec by assignment creates two
// owners of one buffer; use Swap, Capture or a pointer instead.
type Vec[T any] struct {
	buf  raw.Buffer
	mode storageMode
}

// New returns an empty container on the default resource.
func New[T any]() *Vec[T] { return &Vec[T]{} }

// NewIn returns an empty container whose storage comes from r, nil meaning
// the default resource. The element type must be relocatable (see
// vec/reloc): types the collector must scan cannot live in resource memory,
// and NewIn panics for them rather than silently falling back.
func NewIn[T any](r mem.Resource) *Vec[T] {
	if !reloc.For[T]() {
		panic(fmt.Sprintf("vec: %v is not relocatable; custom resources need relocatable elements",
			reflect.TypeFor[T]()))
	}
	v := &Vec[T]{mode: modeRaw}
	v.buf.SetResource(r)
	return v
}

// Of returns a container holding xs in order.
func Of[T any](xs ...T) *Vec[T] {
	v := New[T]()
	v.Assign(xs)
	return v
}

// Repeat returns a container holding n copies of x.
func Repeat[T any](n int, x T) *Vec[T] {
	v := New[T]()
	v.ResizeWith(n, x)
	return v
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int { return int(v.buf.Len()) }

// Cap returns the allocated capacity in elements.
func (v *Vec[T]) Cap() int { return int(v.buf.Cap()) }

// Empty reports whether the container holds no elements.
func (v *Vec[T]) Empty() bool { return v.buf.Len() == 0 }

// Reserve ensures capacity for at least n elements. Requests at or below the
// current capacity do nothing; larger ones grow once, to n or double the
// current capacity, whichever is larger.
func (v *Vec[T]) Reserve(n int) {
	if n > v.Cap() {
		v.grow(uint64(n))
	}
}

// ShrinkToFit does nothing: capacity is retained until Free. It exists so
// call sites moving between container implementations keep working.
func (v *Vec[T]) ShrinkToFit() {}

// At returns the address of element i, or an ErrOutOfRange error naming the
// index. Indexes are never clamped.
func (v *Vec[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.Len() {
		return nil, fmt.Errorf("%w: index %d with length %d", ErrOutOfRange, i, v.Len())
	}
	return v.slot(uint32(i)), nil
}

// Get returns the address of element i without bounds checking. The caller
// guarantees 0 <= i < Len.
func (v *Vec[T]) Get(i int) *T { return v.slot(uint32(i)) }

// Front returns the address of the first element. The container must not be
// empty.
func (v *Vec[T]) Front() *T { return v.slot(0) }

// Back returns the address of the last element. The container must not be
// empty.
func (v *Vec[T]) Back() *T { return v.slot(v.buf.Len() - 1) }

// Data returns the live elements as a mutable slice sharing the container's
// storage. The view is invalidated by any operation that grows the buffer.
func (v *Vec[T]) Data() []T {
	return unsafe.Slice((*T)(v.buf.Base()), v.buf.Len())
}

// Resource returns the memory resource the container is bound to; nil means
// the default resource.
func (v *Vec[T]) Resource() mem.Resource { return v.buf.Resource() }

// Swap exchanges the complete state of two containers, storage and resource
// bindings included.
func (v *Vec[T]) Swap(o *Vec[T]) {
	v.buf.Swap(&o.buf)
	v.mode, o.mode = o.mode, v.mode
}

// Free clears the live elements and returns the buffer to its resource,
// leaving the container empty but bound to the same resource. Required for
// eager resources like mem.Map; optional under the default resource, where
// the collector reclaims dropped buffers.
func (v *Vec[T]) Free() {
	clear(v.Data())
	v.buf.Free(v.layout())
}

// grow is kept out of the append fast path.
//
//go:noinline
func (v *Vec[T]) grow(req uint64) {
	if req > math.MaxUint32 {
		panic(fmt.Sprintf("vec: length %d exceeds maximum capacity", req))
	}
	v.buf.Grow(v.layout(), uint32(req))
}
