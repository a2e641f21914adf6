package mem

// Counting wraps another resource and tallies traffic through it. Tests use
// it to prove allocate/deallocate balance; long-running services can hang one
// under a gauge. The zero value counts against the default resource.
//
// Counters are plain ints: wrap access in your own lock if the wrapped
// resource is shared across goroutines.
type Counting struct {
	// Inner is the resource that actually serves requests; nil means the
	// default resource.
	Inner Resource

	AllocCalls int // Allocate invocations
	FreeCalls  int // Deallocate invocations
	LiveBytes  int // bytes allocated and not yet deallocated
	TotalBytes int // bytes allocated over the resource's lifetime
}

func (c *Counting) inner() Resource {
	if c.Inner == nil {
		return Default()
	}
	return c.Inner
}

func (c *Counting) Allocate(size, align int) []byte {
	c.AllocCalls++
	c.LiveBytes += size
	c.TotalBytes += size
	return c.inner().Allocate(size, align)
}

func (c *Counting) Deallocate(b []byte, size, align int) {
	c.FreeCalls++
	c.LiveBytes -= size
	c.inner().Deallocate(b, size, align)
}

// Balanced reports whether every allocated byte has been returned.
func (c *Counting) Balanced() bool { return c.LiveBytes == 0 }
