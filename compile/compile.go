// Package compile is the boundary between generated syntax trees and an
// external C# compiler. The engine never loads or runs what it compiles; it
// hands rendered compilation units to a Compiler and reports what came back.
package compile

import (
	"context"
	"fmt"
	"strings"

	"github.com/csforge/csforge/syntax"
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a single message reported by the compiler.
type Diagnostic struct {
	Code     string
	Message  string
	Severity Severity

	// File, Line and Column are zero when the compiler did not report a location.
	File   string
	Line   int
	Column int
}

func (d Diagnostic) String() string {
	return d.Code + ": " + d.Message
}

// CompilationFailedError is returned when compilation produced at least one
// error diagnostic. It carries every diagnostic the compiler reported,
// warnings included.
type CompilationFailedError struct {
	Diagnostics []Diagnostic
}

func (e *CompilationFailedError) Error() string {
	var sb strings.Builder
	sb.WriteString("dynamic compilation failed")
	for _, d := range e.Diagnostics {
		sb.WriteString("\n    ")
		sb.WriteString(d.String())
	}
	return sb.String()
}

// Errors returns only the error diagnostics.
func (e *CompilationFailedError) Errors() []Diagnostic {
	var errs []Diagnostic
	for _, d := range e.Diagnostics {
		if d.Severity == SeverityError {
			errs = append(errs, d)
		}
	}
	return errs
}

// Artifact describes a successful compilation.
type Artifact struct {
	Name string

	// Path is where the compiler wrote its output. It is owned by the caller.
	Path string

	// Warnings holds non-fatal diagnostics.
	Warnings []Diagnostic
}

// Compiler turns compilation units into an artifact named name. When
// compilation fails the returned error is a *CompilationFailedError.
type Compiler interface {
	Compile(ctx context.Context, name string, units []*syntax.CompilationUnit) (*Artifact, error)
}

// Sources renders units into file name / source text pairs, numbered in order.
// A unit whose first type is known is named after it.
func Sources(units []*syntax.CompilationUnit) map[string]string {
	out := make(map[string]string, len(units))
	for i, u := range units {
		name := fmt.Sprintf("unit%d.cs", i)
		if t := firstTypeName(u); t != "" {
			name = fmt.Sprintf("%02d_%s.cs", i, t)
		}
		out[name] = syntax.Render(u)
	}
	return out
}

func firstTypeName(n syntax.Node) string {
	var name string
	syntax.Inspect(n, func(n syntax.Node) bool {
		if name != "" {
			return false
		}
		if t, ok := n.(*syntax.TypeDecl); ok {
			name = syntax.IdentifierText(t.Identifier)
			return false
		}
		return true
	})
	return name
}

// failed builds a *CompilationFailedError if any diagnostic is an error.
func failed(diags []Diagnostic) error {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return &CompilationFailedError{Diagnostics: diags}
		}
	}
	return nil
}
