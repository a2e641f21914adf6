package raw

import "unsafe"

// Layout carries everything the untyped engine needs to know about an
// element type. The typed layer builds one per element type and passes it to
// every operation that allocates, migrates or releases storage; the Buffer
// itself stores none of it.
//
// Make and Move select the storage strategy and must be set together:
//
//   - Both nil: the relocatable path. Storage comes from the buffer's memory
//     resource and migration is a raw byte copy. Only safe for element types
//     the collector does not need to scan.
//   - Both non-nil: the typed path. Make returns the base of a GC-visible
//     array of n elements and Move copies n elements between bases
//     element-wise, preserving references.
type Layout struct {
	Size  uintptr // element stride in bytes, never zero
	Align uintptr // element alignment, a power of two <= mem.MaxAlign

	Make func(n uint32) unsafe.Pointer
	Move func(dst, src unsafe.Pointer, n uint32)
}

func (lt Layout) check() {
	if lt.Size == 0 {
		panic("raw: layout with zero element size")
	}
	if (lt.Make == nil) != (lt.Move == nil) {
		panic("raw: layout must set Make and Move together")
	}
}

// typed reports whether storage is GC-visible typed memory.
func (lt Layout) typed() bool { return lt.Make != nil }
