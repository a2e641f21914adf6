package mem

import (
	"unsafe"

	"github.com/joshuapare/veckit/internal/buf"
)

// MaxAlign is the largest alignment a Resource must honor. Every Go type has
// an alignment of 8 or less; 16 leaves headroom for callers that want
// SIMD-friendly bases.
const MaxAlign = 16

// Resource is a pluggable source of raw memory for buffer storage.
//
// Two resources are interchangeable only when they are the same handle
// (interface identity). The buffer engine never compares resources
// structurally and never migrates an allocation from one resource to another:
// whichever resource produced a buffer also serves its growth and its release.
//
// A Resource is borrowed, never owned, by the buffers it backs. Keeping it
// valid for their lifetime is the caller's job; bulk-reclaiming resources
// such as Arena make that explicit.
type Resource interface {
	// Allocate returns a byte range of exactly size bytes whose base address
	// is aligned to align. size must be positive; align must be a power of
	// two no larger than MaxAlign. Allocation failure is fatal to the
	// process: implementations panic (or let the runtime abort) rather than
	// return a short or nil range.
	Allocate(size, align int) []byte

	// Deallocate returns a range previously produced by Allocate on this
	// same resource. b, size and align must be exactly what Allocate
	// returned and was called with; anything else is undefined behavior.
	// Implementations may reclaim eagerly (Map), in bulk (Arena), or not at
	// all (Heap, where the garbage collector owns reclamation).
	Deallocate(b []byte, size, align int)
}

// Heap forwards to the Go allocator. Deallocate is a no-op: the garbage
// collector reclaims the range once no buffer references it. The zero value
// is ready to use, but prefer Default, which hands out one shared handle so
// identity comparisons behave.
type Heap struct{}

// Allocate over-allocates by align and advances to the first aligned byte,
// so any power-of-two alignment up to MaxAlign is honored regardless of what
// the runtime returns.
func (Heap) Allocate(size, align int) []byte {
	raw := make([]byte, size+align)
	addr := int(uintptr(unsafe.Pointer(unsafe.SliceData(raw))))
	shift := buf.AlignUp(addr, align) - addr
	return raw[shift : shift+size : shift+size]
}

// Deallocate does nothing; the range is garbage collected.
func (Heap) Deallocate([]byte, int, int) {}

var defaultHeap = &Heap{}

// Default returns the process-wide default resource, used whenever a buffer
// was created without an explicit one. The same handle is returned on every
// call.
func Default() Resource { return defaultHeap }
