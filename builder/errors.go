package builder

import (
	"fmt"

	"github.com/csforge/csforge/syntax"
	"github.com/csforge/csforge/transform"
)

// ShapeUnsupportedError is returned by SetContent for declarations a builder
// cannot represent, and by rewriters rejecting their input.
type ShapeUnsupportedError = transform.ShapeUnsupportedError

// UnsupportedLiteralError is returned for default values that have no C#
// literal form.
type UnsupportedLiteralError struct {
	Value  any
	Reason string
}

func (e *UnsupportedLiteralError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported literal %v (%T): %s", e.Value, e.Value, e.Reason)
	}
	return fmt.Sprintf("unsupported literal of type %T", e.Value)
}

// InvalidCombinedModifierError describes an access modifier pair other than
// "private protected" or "protected internal". It is never returned: it is
// raised as a panic wrapped as an assertion failure.
type InvalidCombinedModifierError struct {
	First, Second syntax.TokenKind
}

func (e *InvalidCombinedModifierError) Error() string {
	return fmt.Sprintf("invalid combined modifier %q", e.First.String()+" "+e.Second.String())
}
