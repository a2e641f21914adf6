package mem

import (
	"unsafe"

	"github.com/joshuapare/veckit/internal/buf"
)

// DefaultChunkSize is the chunk size new arenas use when none is given (64 KiB).
const DefaultChunkSize = 64 << 10

// Arena is a chunked bump resource: Allocate advances a pointer through
// chunks, Deallocate is a no-op, and memory comes back in bulk via Reset or
// Release. It suits workloads that build many short-lived buffers and discard
// them together, the classic per-request pattern.
//
// An Arena is not safe for concurrent use. A resource shared across
// containers must supply its own synchronization; this one deliberately does
// not, matching the single-owner model of the containers it feeds.
type Arena struct {
	chunks    [][]byte
	chunkSize int

	ci  int // chunk being bumped
	off int // next free byte within it
}

// NewArena returns an arena that carves allocations out of chunkSize-byte
// chunks. chunkSize <= 0 selects DefaultChunkSize. Requests larger than the
// chunk size get a dedicated chunk of their own.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	a.appendChunk(0)
	return a
}

// Allocate returns size bytes aligned to align from the current chunk,
// advancing to the next chunk (or a fresh one) when it does not fit.
func (a *Arena) Allocate(size, align int) []byte {
	if a.chunks == nil {
		panic("mem: arena used after Release")
	}
	if b, ok := a.take(size, align); ok {
		return b
	}
	return a.allocSlow(size, align)
}

//go:noinline
func (a *Arena) allocSlow(size, align int) []byte {
	// Skim the chunks Reset left behind before growing.
	for a.ci+1 < len(a.chunks) {
		a.ci++
		a.off = 0
		if b, ok := a.take(size, align); ok {
			return b
		}
	}
	a.appendChunk(size)
	b, ok := a.take(size, align)
	if !ok {
		panic("mem: arena chunk sizing broken")
	}
	return b
}

// take carves size bytes at alignment align out of the current chunk,
// aligning the address rather than the offset so chunk bases need no
// particular alignment of their own.
func (a *Arena) take(size, align int) ([]byte, bool) {
	cur := a.chunks[a.ci]
	base := uintptr(unsafe.Pointer(unsafe.SliceData(cur)))
	mask := uintptr(align - 1)
	off := int(((base + uintptr(a.off) + mask) &^ mask) - base)
	end, ok := buf.AddOverflowSafe(off, size)
	if !ok || end > len(cur) {
		return nil, false
	}
	a.off = end
	return cur[off:end:end], true
}

// Deallocate is a no-op: arena memory is reclaimed in bulk by Reset or
// Release, never per range.
func (a *Arena) Deallocate([]byte, int, int) {}

// Reset rewinds the arena to its first chunk, keeping every chunk for reuse.
// All ranges handed out so far become invalid.
func (a *Arena) Reset() {
	if a.chunks == nil {
		panic("mem: arena used after Release")
	}
	a.ci = 0
	a.off = 0
}

// Release drops every chunk and makes the arena unusable; any later
// operation panics.
func (a *Arena) Release() {
	a.chunks = nil
	a.ci = 0
	a.off = 0
}

// InUse returns bytes consumed up to the bump position, including alignment
// padding; chunks before the current one count at capacity.
func (a *Arena) InUse() int {
	total := 0
	for _, c := range a.chunks[:a.ci] {
		total += len(c)
	}
	return total + a.off
}

// Capacity returns the total bytes held across all chunks.
func (a *Arena) Capacity() int {
	total := 0
	for _, c := range a.chunks {
		total += len(c)
	}
	return total
}

// NumChunks returns how many chunks the arena currently holds.
func (a *Arena) NumChunks() int { return len(a.chunks) }

// appendChunk grows the arena by a chunk big enough for a minBytes request
// at any supported alignment and makes it current.
func (a *Arena) appendChunk(minBytes int) {
	n := a.chunkSize
	if want, ok := buf.AddOverflowSafe(minBytes, MaxAlign); ok && want > n {
		n = want
	}
	a.chunks = append(a.chunks, make([]byte, n))
	a.ci = len(a.chunks) - 1
	a.off = 0
}
