package syntax

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseTypeName turns a type reference written as text, such as
// "System.Collections.Generic.List<int>[]" or "string?", into a Type.
// Only the type-reference grammar is understood: dotted names, generic
// arguments, array and nullable suffixes, and keyword types.
func ParseTypeName(text string) (Type, error) {
	p := &typeParser{src: text}
	t, err := p.parseType()
	if err != nil {
		return nil, errors.Wrapf(err, "parse type name %q", text)
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, errors.Newf("parse type name %q: unexpected %q at offset %d", text, p.src[p.pos:], p.pos)
	}
	return t, nil
}

// MustParseTypeName is like ParseTypeName but panics on malformed input.
// It is meant for type names written in code.
func MustParseTypeName(text string) Type {
	t, err := ParseTypeName(text)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseName turns a dotted name such as "System.Text" into a Name.
func ParseName(text string) (Name, error) {
	t, err := ParseTypeName(text)
	if err != nil {
		return nil, err
	}
	n, ok := t.(Name)
	if !ok {
		return nil, errors.Newf("%q is not a name", text)
	}
	return n, nil
}

// MustParseName is like ParseName but panics on malformed input.
func MustParseName(text string) Name {
	n, err := ParseName(text)
	if err != nil {
		panic(err)
	}
	return n
}

// QualifiedNameOf builds a left-nested qualified name from its parts.
func QualifiedNameOf(parts ...string) Name {
	if len(parts) == 0 {
		return nil
	}
	var n Name = IdentName(parts[0])
	for _, p := range parts[1:] {
		n = NewQualifiedName(n, IdentName(p))
	}
	return n
}

// Text renders n without any trivia. It is the canonical spelling used to
// compare names and types.
func Text(n Node) string {
	if IsNil(n) {
		return ""
	}
	return Render(MapTokens(n, Token.WithoutTrivia))
}

// IdentifierText returns the identifier with any '@' escape removed.
func IdentifierText(t Token) string {
	return strings.TrimPrefix(t.Text, "@")
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *typeParser) peek(s string) bool {
	p.skipSpace()
	return strings.HasPrefix(p.src[p.pos:], s)
}

func (p *typeParser) accept(s string) bool {
	if p.peek(s) {
		p.pos += len(s)
		return true
	}
	return false
}

func (p *typeParser) ident() (string, error) {
	p.skipSpace()
	start := p.pos
	if p.pos < len(p.src) && p.src[p.pos] == '@' {
		p.pos++
	}
	for p.pos < len(p.src) && isWordByte(p.src[p.pos]) && p.src[p.pos] != '@' {
		p.pos++
	}
	if p.pos == start || (p.pos == start+1 && p.src[start] == '@') {
		return "", errors.Newf("expected identifier at offset %d", start)
	}
	if c := p.src[start]; '0' <= c && c <= '9' {
		return "", errors.Newf("identifier cannot start with a digit at offset %d", start)
	}
	return p.src[start:p.pos], nil
}

func (p *typeParser) parseType() (Type, error) {
	var t Type
	id, err := p.ident()
	if err != nil {
		return nil, err
	}
	if k := KeywordKind(id); k >= VoidKeyword && k <= StringKeyword {
		t = NewPredefinedType(k)
	} else {
		n, err := p.parseName(id)
		if err != nil {
			return nil, err
		}
		t = n
	}
	for {
		switch {
		case p.accept("[]"):
			t = NewArrayType(t)
		case p.accept("?"):
			t = NewNullableType(t)
		default:
			return t, nil
		}
	}
}

func (p *typeParser) parseName(first string) (Name, error) {
	var n Name
	s, err := p.parseSimple(first)
	if err != nil {
		return nil, err
	}
	n = s
	for p.accept(".") {
		id, err := p.ident()
		if err != nil {
			return nil, err
		}
		s, err := p.parseSimple(id)
		if err != nil {
			return nil, err
		}
		n = NewQualifiedName(n, s)
	}
	return n, nil
}

func (p *typeParser) parseSimple(id string) (SimpleName, error) {
	tok := Token{Kind: IdentifierToken, Text: id}
	if !p.accept("<") {
		return &IdentifierName{Identifier: tok}, nil
	}
	g := &GenericName{Identifier: tok}
	for {
		arg, err := p.parseType()
		if err != nil {
			return nil, err
		}
		g.Arguments = append(g.Arguments, arg)
		if p.accept(">") {
			return g, nil
		}
		if !p.accept(",") {
			return nil, errors.Newf("expected ',' or '>' at offset %d", p.pos)
		}
	}
}
