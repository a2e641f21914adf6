package mem

import (
	"testing"
	"unsafe"
)

func baseAddr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

func TestHeapAlignment(t *testing.T) {
	for _, align := range []int{1, 2, 4, 8, 16} {
		b := Default().Allocate(37, align)
		if len(b) != 37 {
			t.Fatalf("align %d: len = %d, want 37", align, len(b))
		}
		if cap(b) != 37 {
			t.Fatalf("align %d: cap = %d, want 37", align, cap(b))
		}
		if addr := baseAddr(b); addr%uintptr(align) != 0 {
			t.Errorf("align %d: base %#x not aligned", align, addr)
		}
	}
}

func TestHeapRangesAreDistinct(t *testing.T) {
	a := Default().Allocate(16, 8)
	b := Default().Allocate(16, 8)
	for i := range a {
		a[i] = 0xAA
	}
	for i := range b {
		b[i] = 0x55
	}
	for i, v := range a {
		if v != 0xAA {
			t.Fatalf("a[%d] = %#x after writing b", i, v)
		}
	}
}

func TestDefaultIsStable(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default returned distinct handles")
	}
}
