package hostcanvas

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned by operations that have no host equivalent.
	ErrUnsupported = errors.New("hostcanvas: unsupported operation")

	// ErrNotBound is returned when an operation needs a bound native surface.
	ErrNotBound = errors.New("hostcanvas: no surface bound")

	// ErrNoLoader is returned when no registered loader accepts a URL.
	ErrNoLoader = errors.New("hostcanvas: no loader for url")
)

// UnsupportedError reports an operation the host cannot perform at all.
// It matches ErrUnsupported with errors.Is.
type UnsupportedError struct {
	Op string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("hostcanvas: %s is not supported on this host", e.Op)
}

// Is reports whether target is ErrUnsupported.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

func unsupported(op string) error {
	return &UnsupportedError{Op: op}
}

// ListenerError wraps a failure raised by an event listener, either a
// returned error or a recovered panic.
type ListenerError struct {
	Type  string
	Scope string
	Err   error
}

func (e *ListenerError) Error() string {
	return fmt.Sprintf("hostcanvas: %s listener for %q failed: %v", e.Scope, e.Type, e.Err)
}

func (e *ListenerError) Unwrap() error { return e.Err }
