// Package buf provides overflow-safe arithmetic for allocation sizing.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies non-negative a and b, returning ok = false when the
// product would overflow int. Negative operands report failure; allocation sizes
// are never negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// AllocSize validates that count elements of elemSize bytes describe a single
// allocation representable as int, and returns the byte total. Every grow
// request passes through here before reaching a memory resource.
func AllocSize(count, elemSize int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative element count: %d", count)
	}
	if elemSize <= 0 {
		return 0, fmt.Errorf("non-positive element size: %d", elemSize)
	}
	total, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elemSize)
	}
	return total, nil
}

// AlignUp rounds n up to the next multiple of align. align must be a power of
// two; n must be non-negative and near enough to zero that the rounded value
// does not overflow.
func AlignUp(n, align int) int {
	mask := align - 1
	return (n + mask) &^ mask
}
