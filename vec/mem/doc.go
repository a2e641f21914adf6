// Package mem defines the memory resource abstraction that backs the vec
// containers, plus a small set of ready-made resources.
//
// A Resource hands out and takes back raw byte ranges. Containers never call
// it directly for pointer-bearing element types; it only ever backs storage
// the garbage collector does not need to scan. That split is what lets a
// container park its elements in an arena or a private mapping without hiding
// live pointers from the runtime.
//
// # The contract
//
// Allocate(size, align) returns a slice of exactly size bytes whose first
// byte is aligned to align. Deallocate must receive exactly a range Allocate
// returned, with the same size and align. Resources are compared by identity:
// two distinct resources never count as interchangeable even if they are the
// same kind.
//
// Allocation failure is fatal by policy. A resource that cannot serve a
// request panics rather than returning nil, so container code never threads
// out-of-memory errors through every append.
//
// # Provided resources
//
//   - Default: the Go heap. Stateless and safe everywhere; containers fall
//     back to it when given a nil resource.
//   - Arena: chunked bump allocation with bulk reclamation via Reset and
//     Release. Deallocate is a no-op. Not safe for concurrent use.
//   - Map (unix only): one anonymous mapping per allocation. Pages go back to
//     the kernel on Deallocate. Safe for concurrent use.
//   - Counting: wraps any resource and tallies calls and live bytes, which is
//     how the tests prove allocate/release balance.
//
// # Alignment
//
// MaxAlign is the largest alignment a resource must honor. Go types never
// require more, so resources may rely on it when padding.
package mem
