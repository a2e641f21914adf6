package vec

import "errors"

// ErrOutOfRange reports a checked access outside [0, Len). At wraps it with
// the offending index; match with errors.Is.
var ErrOutOfRange = errors.New("vec: index out of range")
