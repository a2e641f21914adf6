package mem

import "errors"

// ErrUnsupported reports that a resource kind is not available on this
// platform.
var ErrUnsupported = errors.New("mem: resource unsupported on this platform")
