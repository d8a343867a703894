package syntax

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// structural comparison ignores trivia and treats nil and empty lists alike
var structural = cmp.Options{
	cmpopts.IgnoreFields(Token{}, "Leading", "Trailing"),
	cmpopts.EquateEmpty(),
}

// Equal reports whether a and b have the same shape and token text,
// regardless of trivia.
func Equal(a, b Node) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	return cmp.Equal(a, b, structural)
}

// Diff returns a human-readable report of the structural differences between
// a and b, or "" when they are Equal.
func Diff(a, b Node) string {
	if Equal(a, b) {
		return ""
	}
	return cmp.Diff(a, b, structural)
}
