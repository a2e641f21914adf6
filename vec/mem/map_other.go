//go:build !linux && !darwin

package mem

// Map is unavailable on this platform; NewMap reports ErrUnsupported.
type Map struct{}

// NewMap returns ErrUnsupported on platforms without anonymous mappings.
func NewMap() (*Map, error) { return nil, ErrUnsupported }

func (*Map) Allocate(size, align int) []byte { panic("mem: map resource unavailable") }

func (*Map) Deallocate(b []byte, size, align int) { panic("mem: map resource unavailable") }

func (*Map) Mappings() int { return 0 }

func (*Map) Release() {}
