package transform

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/syntax"
)

// ShapeUnsupportedError reports a node shape that cannot be represented or
// rewritten, such as a field declaring several variables.
type ShapeUnsupportedError struct {
	Kind   syntax.Kind
	Reason string
}

func (e *ShapeUnsupportedError) Error() string {
	return fmt.Sprintf("unsupported %s: %s", e.Kind, e.Reason)
}

// Unsupported returns a *ShapeUnsupportedError for kind with a stack trace
// attached. Match it with errors.As.
func Unsupported(kind syntax.Kind, format string, args ...any) error {
	return errors.WithStack(&ShapeUnsupportedError{Kind: kind, Reason: fmt.Sprintf(format, args...)})
}
