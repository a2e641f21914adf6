package raw

import (
	"fmt"
	"math"
	"os"
	"unsafe"

	"github.com/joshuapare/veckit/internal/buf"
	"github.com/joshuapare/veckit/vec/mem"
)

// Debug flag - set to true to enable verbose engine diagnostics (compile-time toggle).
const debugVec = false

// Runtime growth logging, controlled by the VECKIT_LOG_GROW env var.
var logGrow = os.Getenv("VECKIT_LOG_GROW") != ""

// Buffer is the untyped growable storage record. It tracks a base address,
// the live element count, the allocated capacity and the memory resource that
// produced the allocation; element semantics live entirely in the Layout the
// typed layer passes in.
//
// The zero value is an empty buffer on the default resource. cap == 0 always
// coincides with base == nil: an empty buffer holds no allocation at all.
type Buffer struct {
	base unsafe.Pointer
	size uint32
	cap  uint32
	res  mem.Resource
}

// Base returns the address of element 0, or nil when nothing is allocated.
func (b *Buffer) Base() unsafe.Pointer { return b.base }

// Len returns the live element count.
func (b *Buffer) Len() uint32 { return b.size }

// Cap returns the allocated capacity in elements.
func (b *Buffer) Cap() uint32 { return b.cap }

// Resource returns the buffer's memory resource; nil means the default.
func (b *Buffer) Resource() mem.Resource { return b.res }

// SetLen records n live elements. n must not exceed Cap; the typed layer owns
// construction and destruction of the slots the change covers.
func (b *Buffer) SetLen(n uint32) {
	if n > b.cap {
		panic("raw: SetLen beyond capacity")
	}
	b.size = n
}

// SetResource binds r as the buffer's resource, nil meaning the default.
// Only legal before the first allocation: whichever resource produces a
// buffer also serves its growth and release, so rebinding afterwards would
// return memory to a resource that never issued it.
func (b *Buffer) SetResource(r mem.Resource) {
	if b.cap != 0 {
		panic("raw: SetResource on an allocated buffer")
	}
	b.res = r
}

// Swap exchanges the complete state of two buffers, resources included.
func (b *Buffer) Swap(o *Buffer) { *b, *o = *o, *b }

// Grow replaces the allocation with a larger one and migrates the live
// elements. The new capacity is req or double the old capacity, whichever is
// larger (at least 1), clamped to the uint32 range. Size is unchanged.
//
// Allocation failure is fatal: growth panics or lets the runtime abort
// rather than report an error. Callers that need fallible sizing validate
// before growing.
func (b *Buffer) Grow(lt Layout, req uint32) {
	lt.check()
	nc := uint64(req)
	if d := uint64(b.cap) * 2; d > nc {
		nc = d
	}
	if nc == 0 {
		nc = 1
	}
	if nc > math.MaxUint32 {
		nc = math.MaxUint32
	}
	newCap := uint32(nc)

	if logGrow {
		fmt.Fprintf(os.Stderr, "[RAW] grow: cap %d -> %d, %d live, elem %d bytes\n",
			b.cap, newCap, b.size, lt.Size)
	}

	var newBase unsafe.Pointer
	if lt.typed() {
		newBase = lt.Make(newCap)
	} else {
		newBase = b.acquire(lt, newCap)
	}

	if b.size > 0 {
		if lt.typed() {
			lt.Move(newBase, b.base, b.size)
			stats.elemMoves.Add(uint64(b.size))
		} else {
			n := uintptr(b.size) * lt.Size
			copy(unsafe.Slice((*byte)(newBase), n), unsafe.Slice((*byte)(b.base), n))
			stats.rawCopies.Add(1)
			stats.bytesMigrated.Add(uint64(n))
		}
	}

	b.release(lt)
	b.base = newBase
	b.cap = newCap
	stats.grows.Add(1)
}

// Free returns the allocation to its resource and resets the buffer to the
// empty state, keeping the resource binding. The typed layer must have
// destroyed live elements first. No-op when nothing is allocated.
func (b *Buffer) Free(lt Layout) {
	lt.check()
	b.release(lt)
	b.base = nil
	b.size = 0
	b.cap = 0
}

// acquire obtains newCap elements of raw storage from the buffer's resource,
// enforcing the resource contract on what comes back.
func (b *Buffer) acquire(lt Layout, newCap uint32) unsafe.Pointer {
	n, err := buf.AllocSize(int(newCap), int(lt.Size))
	if err != nil {
		panic(fmt.Sprintf("raw: grow to %d elements: %v", newCap, err))
	}
	m := b.resource().Allocate(n, int(lt.Align))
	if len(m) != n {
		panic(fmt.Sprintf("raw: resource returned %d bytes, want %d", len(m), n))
	}
	p := unsafe.Pointer(unsafe.SliceData(m))
	if uintptr(p)%lt.Align != 0 {
		panic(fmt.Sprintf("raw: resource returned base %p unaligned to %d", p, lt.Align))
	}
	debugLogf("acquire %d bytes align %d at %p", n, lt.Align, p)
	return p
}

// release returns the current allocation to the resource on the relocatable
// path; on the typed path the collector reclaims the array once the base
// pointer is overwritten.
func (b *Buffer) release(lt Layout) {
	if b.cap == 0 || lt.typed() {
		return
	}
	n := uintptr(b.cap) * lt.Size
	debugLogf("release %d bytes at %p", n, b.base)
	b.resource().Deallocate(unsafe.Slice((*byte)(b.base), n), int(n), int(lt.Align))
}

func (b *Buffer) resource() mem.Resource {
	if b.res == nil {
		return mem.Default()
	}
	return b.res
}

// debugLogf prints engine debug messages if debugVec is enabled.
func debugLogf(format string, args ...any) {
	if debugVec {
		fmt.Fprintf(os.Stderr, "[RAW] "+format+"\n", args...)
	}
}
