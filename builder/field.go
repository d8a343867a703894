package builder

import (
	"slices"

	"github.com/csforge/csforge/syntax"
	"github.com/csforge/csforge/transform"
)

// FieldBuilder builds a field holding a single variable.
type FieldBuilder struct {
	member[*FieldBuilder]
	event       syntax.Token
	typ         syntax.Type
	initializer *syntax.EqualsValue
}

// NewField returns a builder for "typ name;" with no modifiers.
func NewField(name string, typ syntax.Type) *FieldBuilder {
	b := &FieldBuilder{typ: typ}
	b.init(b, name)
	return b
}

// FieldFrom returns a builder loaded from decl. See SetContent.
func FieldFrom(decl *syntax.FieldDecl) (*FieldBuilder, error) {
	b := &FieldBuilder{}
	b.init(b, "")
	if err := b.SetContent(decl); err != nil {
		return nil, err
	}
	return b, nil
}

// SetContent loads decl. Fields declaring several variables are rejected
// with a *ShapeUnsupportedError and leave the builder unchanged.
func (b *FieldBuilder) SetContent(decl *syntax.FieldDecl) error {
	if n := len(decl.Declaration.Variables); n != 1 {
		return transform.Unsupported(decl.Kind(), "%d variables", n)
	}
	v := decl.Declaration.Variables[0]
	b.load(v.Identifier, decl)
	b.event = decl.Event
	b.typ = decl.Declaration.Type
	b.initializer = v.Initializer
	return nil
}

func (b *FieldBuilder) HasType(typ syntax.Type) *FieldBuilder {
	b.typ = typ
	return b
}

// HasDefaultValue sets the initializer from a Go constant. An unsupported
// value is reported by Build.
func (b *FieldBuilder) HasDefaultValue(v any) *FieldBuilder {
	e, err := Literal(v)
	if err != nil {
		b.fail(err)
		return b
	}
	b.initializer = syntax.NewEqualsValue(e)
	return b
}

func (b *FieldBuilder) WithoutDefaultValue() *FieldBuilder {
	b.initializer = nil
	return b
}

func (b *FieldBuilder) ReadOnly() *FieldBuilder {
	b.modifiers.Add(syntax.ReadOnlyKeyword)
	return b
}

// Const turns the field into a constant, which can be neither static nor
// readonly.
func (b *FieldBuilder) Const() *FieldBuilder {
	b.modifiers.Remove(syntax.StaticKeyword, syntax.ReadOnlyKeyword)
	b.modifiers.Add(syntax.ConstKeyword)
	return b
}

// Reset clears modifiers, attributes, the initializer and the rewriters.
func (b *FieldBuilder) Reset() *FieldBuilder {
	b.resetMember()
	b.initializer = nil
	b.event = syntax.Token{}
	return b
}

func (b *FieldBuilder) Build() (*syntax.FieldDecl, error) {
	if b.err != nil {
		return nil, b.err
	}
	decl := &syntax.FieldDecl{
		Attributes: slices.Clone(b.attributes),
		Modifiers:  b.modifiers.Tokens(),
		Event:      b.event,
		Declaration: syntax.NewVariableDeclaration(b.typ,
			&syntax.VariableDeclarator{Identifier: b.identifier, Initializer: b.initializer}),
		Semicolon: syntax.Tok(syntax.SemicolonToken),
	}
	return finish(&b.rewriters, decl)
}
