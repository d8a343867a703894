package comment

import (
	"fmt"
	"strings"

	"github.com/csforge/csforge/syntax"
	"github.com/csforge/csforge/transform"
	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

const (
	InfoHeader string = "csforge INFO"
	WarnHeader string = "csforge WARN"
)

// Info records a note about a Go node for the console printer and returns the
// same note as C# comment trivia, so it can be placed above the declaration
// generated from that node.
// The message is the main comment, and additionalInfo is a list of optional
// comments that will be printed on new lines below the main comment.
func Info(pkg *decorator.Package, node dst.Node, message string, additionalInfo ...string) []syntax.Trivia {
	printer.Add(pkg, node, InfoHeader, message, additionalInfo...)
	return note(InfoHeader, message, additionalInfo)
}

func Warn(pkg *decorator.Package, node dst.Node, message string, additionalInfo ...string) []syntax.Trivia {
	printer.Add(pkg, node, WarnHeader, message, additionalInfo...)
	return note(WarnHeader, message, additionalInfo)
}

func note(header, message string, additionalInfo []string) []syntax.Trivia {
	trivia := syntax.LineComment(fmt.Sprintf("// %s: %s", header, message))
	for _, info := range additionalInfo {
		trivia = append(trivia, syntax.LineComment(info)...)
	}
	return trivia
}

// Doc returns the text of the Go line comments in decs, one entry per line,
// without the comment markers. Block comments and directives such as
// //go:generate are skipped.
func Doc(decs dst.Decorations) []string {
	var lines []string
	for _, c := range decs {
		if !strings.HasPrefix(c, "//") || strings.HasPrefix(c, "//go:") {
			continue
		}
		text := strings.TrimPrefix(c, "//")
		lines = append(lines, strings.TrimPrefix(text, " "))
	}
	return lines
}

// Summary renders doc lines as a C# XML documentation summary.
func Summary(lines []string) []syntax.Trivia {
	if len(lines) == 0 {
		return nil
	}
	trivia := syntax.LineComment("/// <summary>")
	for _, line := range lines {
		trivia = append(trivia, syntax.LineComment(strings.TrimRight("/// "+line, " "))...)
	}
	return append(trivia, syntax.LineComment("/// </summary>")...)
}

// Attach returns a rewriter that places trivia before the first token of the
// node it is given.
func Attach(trivia []syntax.Trivia) transform.Rewriter {
	return transform.Func("comment", func(n syntax.Node) (syntax.Node, error) {
		if len(trivia) == 0 || syntax.IsNil(n) {
			return n, nil
		}
		return syntax.ReplaceFirstToken(n, func(t syntax.Token) syntax.Token {
			return t.PrependLeading(trivia...)
		}), nil
	})
}

// AttachToType is Attach for the first type declaration named name anywhere
// under the node, so the trivia survives being wrapped in a namespace.
func AttachToType(name string, trivia []syntax.Trivia) transform.Rewriter {
	return transform.Func("comment", func(n syntax.Node) (syntax.Node, error) {
		if len(trivia) == 0 || syntax.IsNil(n) {
			return n, nil
		}
		done := false
		return syntax.Apply(n, func(c *syntax.Cursor) bool {
			if done {
				return false
			}
			t, ok := c.Node().(*syntax.TypeDecl)
			if !ok || syntax.IdentifierText(t.Identifier) != name {
				return true
			}
			done = true
			c.Replace(syntax.ReplaceFirstToken(t, func(tok syntax.Token) syntax.Token {
				return tok.PrependLeading(trivia...)
			}))
			return false
		}, nil), nil
	})
}
