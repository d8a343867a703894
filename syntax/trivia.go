package syntax

import "strings"

// TriviaKind classifies the text that surrounds a token without being part of it.
type TriviaKind uint8

const (
	WhitespaceTrivia TriviaKind = iota
	EndOfLineTrivia
	CommentTrivia
)

func (k TriviaKind) String() string {
	switch k {
	case WhitespaceTrivia:
		return "Whitespace"
	case EndOfLineTrivia:
		return "EndOfLine"
	case CommentTrivia:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Trivia is a run of whitespace, a line break or a comment attached to a token.
type Trivia struct {
	Kind TriviaKind
	Text string
}

// IsWhitespace reports whether the trivia is whitespace or a line break.
func (t Trivia) IsWhitespace() bool {
	return t.Kind == WhitespaceTrivia || t.Kind == EndOfLineTrivia
}

// Space is a single space.
var Space = Trivia{Kind: WhitespaceTrivia, Text: " "}

// EndOfLine is a line break.
var EndOfLine = Trivia{Kind: EndOfLineTrivia, Text: "\n"}

// Whitespace returns whitespace trivia with the given text. An empty string
// yields no trivia at all.
func Whitespace(text string) []Trivia {
	if text == "" {
		return nil
	}
	return []Trivia{{Kind: WhitespaceTrivia, Text: text}}
}

// LineComment returns a "//" comment followed by a line break. The prefix is
// added when text does not already carry it.
func LineComment(text string) []Trivia {
	if !strings.HasPrefix(text, "//") {
		text = "// " + text
	}
	return []Trivia{{Kind: CommentTrivia, Text: text}, EndOfLine}
}

// concat always allocates so that trivia slices are never shared between
// token copies.
func concat(lists ...[]Trivia) []Trivia {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	if n == 0 {
		return nil
	}
	out := make([]Trivia, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func renderTrivia(list []Trivia) string {
	var b strings.Builder
	for _, t := range list {
		b.WriteString(t.Text)
	}
	return b.String()
}
