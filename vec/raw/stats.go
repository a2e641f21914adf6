package raw

import "sync/atomic"

// Stats is a snapshot of engine-wide migration counters. Tests use it to
// pin down which strategy a growth actually took; production code can export
// it to a gauge.
type Stats struct {
	Grows         uint64 // buffer growths performed
	RawCopies     uint64 // migrations done by raw byte copy
	ElemMoves     uint64 // elements migrated element-wise
	BytesMigrated uint64 // bytes moved by raw copies
}

var stats struct {
	grows         atomic.Uint64
	rawCopies     atomic.Uint64
	elemMoves     atomic.Uint64
	bytesMigrated atomic.Uint64
}

// ReadStats returns the current counter values.
func ReadStats() Stats {
	return Stats{
		Grows:         stats.grows.Load(),
		RawCopies:     stats.rawCopies.Load(),
		ElemMoves:     stats.elemMoves.Load(),
		BytesMigrated: stats.bytesMigrated.Load(),
	}
}

// ResetStats zeroes all counters.
func ResetStats() {
	stats.grows.Store(0)
	stats.rawCopies.Store(0)
	stats.elemMoves.Store(0)
	stats.bytesMigrated.Store(0)
}
