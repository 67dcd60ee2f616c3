package drawing

import (
	"errors"
	"fmt"
)

// ValidationError reports an object whose fields fall outside the accepted
// ranges. Such objects are never added to a scene.
type ValidationError struct {
	Mode   Mode
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Mode, e.Reason)
}

// FormatError reports a malformed or truncated scene record.
type FormatError struct {
	Op  string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("scene format: %s: %v", e.Op, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ErrTagMismatch is wrapped by FormatError when a record carries the tag of
// a different variant than the decoder expects.
var ErrTagMismatch = errors.New("record tag mismatch")

func invalid(m Mode, format string, args ...any) error {
	return &ValidationError{Mode: m, Reason: fmt.Sprintf(format, args...)}
}
