// Package vec provides a growable array with pluggable memory placement: a
// container in the spirit of the builtin slice, but one that can park its
// elements in an arena, an anonymous mapping or any other mem.Resource, and
// that makes its growth and migration strategy observable and testable.
//
// # Storage strategies
//
// Element types divide in two (see vec/reloc). Relocatable types, those the
// garbage collector never needs to scan, live in raw bytes acquired from the
// container's resource and migrate between buffers by plain byte copy.
// Everything else lives in ordinary GC-visible arrays and migrates
// element-wise, so references stay rooted at all times. The strategy is
// decided per container at its first allocation and never changes.
//
// Custom resources only make sense on the relocatable path; NewIn panics for
// element types that need collector-visible storage.
//
// # Growth
//
// Capacity at least doubles on each growth, so appends cost amortized O(1).
// A growth request larger than double wins over doubling; Reserve passes the
// request through unchanged. Capacity is never returned ahead of Free, and
// ShrinkToFit is deliberately a no-op.
//
// Allocation failure is fatal, never an error return. The one fallible
// construction path is ResizeFunc, which rolls the length back to the last
// successfully constructed element and returns the cause.
//
// # Ownership
//
// A Vec is single-owner and unsynchronized. Checked access goes through At;
// Get, Front, Back and Pop trade checks for speed and state their
// preconditions. Free returns storage to the resource eagerly, which matters
// for resources like mem.Map; under the default resource the collector makes
// Free optional.
package vec
