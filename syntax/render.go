package syntax

import "strings"

// Render returns the text of n: every token with its trivia, in source order.
//
// Two word-like tokens that would otherwise touch are separated by a single
// space, so a tree stripped of all whitespace still renders to valid text.
// The same holds for a word following a type that ends in '>', "[]" or '?',
// as in "List<int> xs".
func Render(n Node) string {
	if IsNil(n) {
		return ""
	}
	e := &emitter{}
	n.emit(e)
	return e.b.String()
}

type emitter struct {
	b    strings.Builder
	last byte
	// typeEnd is set while the last thing written closed a type reference.
	typeEnd bool
}

func (e *emitter) write(s string) {
	if s == "" {
		return
	}
	e.b.WriteString(s)
	e.last = s[len(s)-1]
	e.typeEnd = false
}

// closeType writes the punctuation ending a type reference.
func (e *emitter) closeType(s string) {
	e.write(s)
	e.typeEnd = true
}

func (e *emitter) token(t Token) {
	if t.IsZero() {
		return
	}
	if len(t.Leading) == 0 && t.Text != "" && (isWordByte(e.last) || e.typeEnd) && isWordByte(t.Text[0]) {
		e.write(" ")
	}
	for _, tr := range t.Leading {
		e.write(tr.Text)
	}
	e.write(t.Text)
	for _, tr := range t.Trailing {
		e.write(tr.Text)
	}
}

func (e *emitter) tokens(list []Token) {
	for _, t := range list {
		e.token(t)
	}
}

// punct writes implicit punctuation, which never carries trivia.
func (e *emitter) punct(s string) {
	e.write(s)
}

func (e *emitter) node(n Node) {
	if !IsNil(n) {
		n.emit(e)
	}
}

func emitAll[T Node](e *emitter, list []T) {
	for _, n := range list {
		e.node(n)
	}
}

func emitSeparated[T Node](e *emitter, list []T, sep string) {
	for i, n := range list {
		if i > 0 {
			e.punct(sep)
		}
		e.node(n)
	}
}

func emitDelimited[T Node](e *emitter, open string, list []T, close string) {
	e.punct(open)
	emitSeparated(e, list, ",")
	e.punct(close)
}
