package transform

import (
	"strings"

	"github.com/csforge/csforge/syntax"
)

// Stripper removes whitespace and line breaks from every token. Comments are
// kept, and so is the line break ending a "//" comment. The rendered text
// relies on the join rule of syntax.Render to stay valid.
type Stripper struct{}

func (Stripper) Name() string { return "stripper" }

func (Stripper) Rewrite(n syntax.Node) (syntax.Node, error) {
	return syntax.MapTokens(n, stripToken), nil
}

func stripToken(t syntax.Token) syntax.Token {
	t.Leading = stripTrivia(t.Leading)
	t.Trailing = stripTrivia(t.Trailing)
	return t
}

func stripTrivia(list []syntax.Trivia) []syntax.Trivia {
	var out []syntax.Trivia
	for _, tr := range list {
		switch {
		case !tr.IsWhitespace():
			out = append(out, tr)
		case tr.Kind == syntax.EndOfLineTrivia && endsLineComment(out):
			out = append(out, tr)
		}
	}
	return out
}

func endsLineComment(list []syntax.Trivia) bool {
	if len(list) == 0 {
		return false
	}
	last := list[len(list)-1]
	return last.Kind == syntax.CommentTrivia && strings.HasPrefix(last.Text, "//")
}
