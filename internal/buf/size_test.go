package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if got, ok := MulOverflowSafe(3, 8); !ok || got != 24 {
		t.Fatalf("MulOverflowSafe(3,8)=%d,%v want 24,true", got, ok)
	}
	if got, ok := MulOverflowSafe(0, math.MaxInt); !ok || got != 0 {
		t.Fatalf("MulOverflowSafe(0,MaxInt)=%d,%v want 0,true", got, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2, 3); ok {
		t.Fatalf("expected overflow for MaxInt/2 * 3")
	}
	if _, ok := MulOverflowSafe(-1, 8); ok {
		t.Fatalf("negative count must not be accepted")
	}
}

func TestAllocSize(t *testing.T) {
	n, err := AllocSize(128, 8)
	if err != nil || n != 1024 {
		t.Fatalf("AllocSize(128,8)=%d,%v want 1024,nil", n, err)
	}
	if _, err := AllocSize(-1, 8); err == nil {
		t.Fatalf("expected error for negative count")
	}
	if _, err := AllocSize(1, 0); err == nil {
		t.Fatalf("expected error for zero element size")
	}
	if _, err := AllocSize(math.MaxInt/4, 8); err == nil {
		t.Fatalf("expected overflow error")
	}
}

func TestAlignUp(t *testing.T) {
	cases := []struct{ n, align, want int }{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{13, 4, 16},
		{4096, 4096, 4096},
		{4097, 4096, 8192},
	}
	for _, c := range cases {
		if got := AlignUp(c.n, c.align); got != c.want {
			t.Fatalf("AlignUp(%d,%d)=%d want %d", c.n, c.align, got, c.want)
		}
	}
}
