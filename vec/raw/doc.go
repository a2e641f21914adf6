// Package raw implements the untyped buffer engine underneath the vec
// containers: one growth algorithm and one storage record shared by every
// element type, so the per-type generic layer stays thin.
//
// A Buffer knows nothing about elements. The typed layer describes them with
// a Layout, which also picks the storage strategy:
//
//   - relocatable elements live in memory acquired from a mem.Resource and
//     migrate by raw byte copy on growth;
//   - everything else lives in GC-visible typed arrays and migrates
//     element-wise through the Layout's Move function.
//
// Growth at least doubles capacity, so a sequence of single-element appends
// costs amortized O(1) migrations. The resource that produced a buffer serves
// all of its later growth and its final release; it is never swapped mid-life.
//
// # Fatal failure
//
// The engine never returns allocation errors. A resource that cannot serve a
// request panics, and the Go runtime aborts on heap exhaustion; sizing that
// would overflow panics before reaching the resource. Callers wanting
// fallible construction validate sizes beforehand.
package raw
