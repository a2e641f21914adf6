package vec

import (
	"unsafe"

	"github.com/joshuapare/veckit/vec/raw"
	"github.com/joshuapare/veckit/vec/reloc"
)

// storageMode is the strategy a container decided on when it first needed
// storage. Decided once and never revisited, so a reloc.Register call after
// the first allocation cannot flip a live buffer between strategies.
type storageMode uint8

const (
	modeUnbound storageMode = iota
	// modeRaw stores elements in resource bytes and migrates by byte copy.
	modeRaw
	// modeTyped stores elements in a GC-visible []T and migrates element-wise.
	modeTyped
)

// stride returns the element size in bytes, with zero-size types widened to
// one byte so arithmetic on element addresses stays distinct per index.
func stride[T any]() uintptr {
	var t T
	if s := unsafe.Sizeof(t); s != 0 {
		return s
	}
	return 1
}

func typedMake[T any](n uint32) unsafe.Pointer {
	s := make([]T, n)
	return unsafe.Pointer(unsafe.SliceData(s))
}

func typedMove[T any](dst, src unsafe.Pointer, n uint32) {
	copy(unsafe.Slice((*T)(dst), n), unsafe.Slice((*T)(src), n))
}

// layout binds the storage strategy on first use and describes T to the
// buffer engine.
func (v *Vec[T]) layout() raw.Layout {
	if v.mode == modeUnbound {
		if reloc.For[T]() {
			v.mode = modeRaw
		} else {
			v.mode = modeTyped
		}
	}
	var t T
	lt := raw.Layout{Size: stride[T](), Align: unsafe.Alignof(t)}
	if v.mode == modeTyped {
		lt.Make = typedMake[T]
		lt.Move = typedMove[T]
	}
	return lt
}

// slot returns the address of element i. i must be below Cap; the caller
// owns bounds checking.
func (v *Vec[T]) slot(i uint32) *T {
	return (*T)(unsafe.Add(v.buf.Base(), uintptr(i)*stride[T]()))
}
