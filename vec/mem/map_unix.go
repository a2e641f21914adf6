//go:build linux || darwin

package mem

import (
	"fmt"
	"os"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/veckit/internal/buf"
)

// Map serves allocations from anonymous private mappings, one mapping per
// allocation. Page granularity makes it wasteful for small buffers but ideal
// for large ones: Deallocate returns pages to the kernel immediately instead
// of waiting on the garbage collector, and out-of-bounds writes past a
// mapping fault loudly.
//
// Map is safe for concurrent use.
type Map struct {
	pageSize int

	mu   sync.Mutex
	live map[uintptr][]byte // base address -> full mapping
}

// NewMap returns a mapping-backed resource. The error mirrors platforms
// where mappings are unavailable; on unix it is always nil.
func NewMap() (*Map, error) {
	return &Map{
		pageSize: os.Getpagesize(),
		live:     make(map[uintptr][]byte),
	}, nil
}

// Allocate maps enough pages to hold size bytes and returns the first size
// of them. Page-aligned memory satisfies any align up to MaxAlign.
func (m *Map) Allocate(size, align int) []byte {
	n := buf.AlignUp(size, m.pageSize)
	if n < m.pageSize {
		n = m.pageSize
	}
	p, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		panic(fmt.Sprintf("mem: mmap of %d bytes failed: %v", n, err))
	}
	m.mu.Lock()
	m.live[base(p)] = p
	m.mu.Unlock()
	return p[:size:size]
}

// Deallocate unmaps the mapping backing b. b must be exactly a slice
// previously returned by Allocate.
func (m *Map) Deallocate(b []byte, size, align int) {
	m.mu.Lock()
	p, ok := m.live[base(b)]
	if ok {
		delete(m.live, base(b))
	}
	m.mu.Unlock()
	if !ok {
		panic("mem: deallocate of memory this Map does not own")
	}
	if err := unix.Munmap(p); err != nil {
		panic(fmt.Sprintf("mem: munmap failed: %v", err))
	}
}

// Mappings returns how many allocations are currently live.
func (m *Map) Mappings() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}

// Release unmaps every live allocation. Ranges handed out earlier become
// invalid; the Map itself remains usable.
func (m *Map) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, p := range m.live {
		if err := unix.Munmap(p); err != nil {
			panic(fmt.Sprintf("mem: munmap failed: %v", err))
		}
		delete(m.live, k)
	}
}

func base(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}
