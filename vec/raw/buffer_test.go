package raw

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/veckit/vec/mem"
)

func u64Layout() Layout {
	return Layout{Size: 8, Align: 8}
}

func stringLayout() Layout {
	return Layout{
		Size:  unsafe.Sizeof(""),
		Align: unsafe.Alignof(""),
		Make: func(n uint32) unsafe.Pointer {
			s := make([]string, n)
			return unsafe.Pointer(unsafe.SliceData(s))
		},
		Move: func(dst, src unsafe.Pointer, n uint32) {
			copy(unsafe.Slice((*string)(dst), n), unsafe.Slice((*string)(src), n))
		},
	}
}

func TestGrowthSchedule(t *testing.T) {
	lt := u64Layout()

	var b Buffer
	caps := []uint32{}
	for i := 0; i < 5; i++ {
		b.Grow(lt, b.Cap()+1)
		caps = append(caps, b.Cap())
	}
	assert.Equal(t, []uint32{1, 2, 4, 8, 16}, caps, "single-element growth doubles")

	var c Buffer
	c.Grow(lt, 5)
	assert.Equal(t, uint32(5), c.Cap(), "first growth takes the request exactly")

	c.Grow(lt, 100)
	assert.Equal(t, uint32(100), c.Cap(), "requests beyond double win")

	c.Grow(lt, 101)
	assert.Equal(t, uint32(200), c.Cap(), "doubling wins over smaller requests")
}

func TestGrowMigratesRawBytes(t *testing.T) {
	ResetStats()
	lt := u64Layout()

	var b Buffer
	b.Grow(lt, 4)
	xs := unsafe.Slice((*uint64)(b.Base()), 4)
	xs[0], xs[1], xs[2], xs[3] = 10, 20, 30, 40
	b.SetLen(4)

	b.Grow(lt, 5)
	require.Equal(t, uint32(8), b.Cap())
	require.Equal(t, uint32(4), b.Len(), "growth never changes size")

	ys := unsafe.Slice((*uint64)(b.Base()), 4)
	assert.Equal(t, []uint64{10, 20, 30, 40}, []uint64(ys))

	st := ReadStats()
	assert.Equal(t, uint64(2), st.Grows)
	assert.Equal(t, uint64(1), st.RawCopies)
	assert.Equal(t, uint64(32), st.BytesMigrated)
	assert.Zero(t, st.ElemMoves)
}

func TestGrowMigratesTypedElements(t *testing.T) {
	ResetStats()
	lt := stringLayout()

	var b Buffer
	b.Grow(lt, 2)
	xs := unsafe.Slice((*string)(b.Base()), 2)
	xs[0], xs[1] = "alpha", "beta"
	b.SetLen(2)

	b.Grow(lt, 3)
	require.Equal(t, uint32(4), b.Cap())

	ys := unsafe.Slice((*string)(b.Base()), 2)
	assert.Equal(t, "alpha", ys[0])
	assert.Equal(t, "beta", ys[1])

	st := ReadStats()
	assert.Equal(t, uint64(2), st.ElemMoves, "two elements moved element-wise")
	assert.Zero(t, st.RawCopies)
	assert.Zero(t, st.BytesMigrated)
}

func TestResourceFollowsBuffer(t *testing.T) {
	c := &mem.Counting{Inner: mem.NewArena(0)}
	lt := u64Layout()

	var b Buffer
	b.SetResource(c)
	for i := 0; i < 3; i++ {
		b.Grow(lt, b.Cap()+1)
	}
	require.Same(t, mem.Resource(c), b.Resource(), "resource survives growth")
	assert.Equal(t, 3, c.AllocCalls)
	assert.Equal(t, 2, c.FreeCalls, "each regrow releases the previous range")

	b.Free(lt)
	assert.Equal(t, 3, c.FreeCalls)
	assert.True(t, c.Balanced(), "every byte allocated was released")

	// Free on an empty buffer touches the resource no further.
	b.Free(lt)
	assert.Equal(t, 3, c.FreeCalls)
}

func TestFreeResetsToEmpty(t *testing.T) {
	r := mem.NewArena(0)
	lt := u64Layout()

	var b Buffer
	b.SetResource(r)
	b.Grow(lt, 8)
	b.SetLen(3)

	b.Free(lt)
	assert.Nil(t, b.Base())
	assert.Zero(t, b.Len())
	assert.Zero(t, b.Cap())
	assert.Same(t, mem.Resource(r), b.Resource(), "resource binding is retained")
}

func TestSwap(t *testing.T) {
	lt := u64Layout()
	r := mem.NewArena(0)

	var a, b Buffer
	a.Grow(lt, 4)
	a.SetLen(2)
	b.SetResource(r)

	a.Swap(&b)
	assert.Equal(t, uint32(4), b.Cap())
	assert.Equal(t, uint32(2), b.Len())
	assert.Zero(t, a.Cap())
	assert.Same(t, mem.Resource(r), a.Resource())
}

func TestSetLenBeyondCapPanics(t *testing.T) {
	var b Buffer
	b.Grow(u64Layout(), 4)
	assert.Panics(t, func() { b.SetLen(5) })
}

func TestSetResourceAfterAllocPanics(t *testing.T) {
	var b Buffer
	b.Grow(u64Layout(), 1)
	assert.Panics(t, func() { b.SetResource(mem.NewArena(0)) })
}

func TestLayoutMisusePanics(t *testing.T) {
	var b Buffer
	assert.Panics(t, func() { b.Grow(Layout{Size: 0, Align: 1}, 1) }, "zero size")
	assert.Panics(t, func() {
		b.Grow(Layout{Size: 8, Align: 8, Make: func(uint32) unsafe.Pointer { return nil }}, 1)
	}, "Make without Move")
}

type shortResource struct{}

func (shortResource) Allocate(size, align int) []byte { return make([]byte, size-1) }
func (shortResource) Deallocate([]byte, int, int)     {}

type skewedResource struct{ h mem.Heap }

func (r skewedResource) Allocate(size, align int) []byte {
	b := r.h.Allocate(size+1, 16)
	return b[1 : size+1 : size+1]
}
func (skewedResource) Deallocate([]byte, int, int) {}

func TestResourceContractEnforced(t *testing.T) {
	lt := u64Layout()

	var b Buffer
	b.SetResource(shortResource{})
	assert.Panics(t, func() { b.Grow(lt, 4) }, "short range")

	var c Buffer
	c.SetResource(skewedResource{})
	assert.Panics(t, func() { c.Grow(lt, 4) }, "misaligned base")
}
