package builder

import (
	"slices"

	"github.com/csforge/csforge/syntax"
)

// ParameterBuilder builds a method or constructor parameter.
type ParameterBuilder struct {
	core[*ParameterBuilder]
	identifier syntax.Token
	typ        syntax.Type
	modifiers  []syntax.Token
	attributes []*syntax.AttributeList
	value      *syntax.EqualsValue
}

func NewParameter(name string, typ syntax.Type) *ParameterBuilder {
	b := &ParameterBuilder{identifier: syntax.Ident(name), typ: typ}
	b.self = b
	return b
}

// ParameterFrom returns a builder loaded from p.
func ParameterFrom(p *syntax.Parameter) *ParameterBuilder {
	b := NewParameter("", p.Type)
	b.identifier = p.Identifier
	b.modifiers = slices.Clone(p.Modifiers)
	b.attributes = slices.Clone(p.Attributes)
	b.value = p.Default
	return b
}

func (b *ParameterBuilder) Identifier() string { return syntax.IdentifierText(b.identifier) }

func (b *ParameterBuilder) HasType(typ syntax.Type) *ParameterBuilder {
	b.typ = typ
	return b
}

func (b *ParameterBuilder) Ref() *ParameterBuilder    { return b.with(syntax.RefKeyword) }
func (b *ParameterBuilder) Out() *ParameterBuilder    { return b.with(syntax.OutKeyword) }
func (b *ParameterBuilder) In() *ParameterBuilder     { return b.with(syntax.InKeyword) }
func (b *ParameterBuilder) Params() *ParameterBuilder { return b.with(syntax.ParamsKeyword) }

// with sets the only modifier: ref, out, in and params exclude each other.
func (b *ParameterBuilder) with(kind syntax.TokenKind) *ParameterBuilder {
	b.modifiers = []syntax.Token{syntax.Tok(kind)}
	return b
}

func (b *ParameterBuilder) WithAttribute(attr *syntax.Attribute) *ParameterBuilder {
	b.attributes = append(b.attributes, syntax.NewAttributeList(attr))
	return b
}

// HasDefaultValue makes the parameter optional. An unsupported value is
// reported by Build.
func (b *ParameterBuilder) HasDefaultValue(v any) *ParameterBuilder {
	e, err := Literal(v)
	if err != nil {
		b.fail(err)
		return b
	}
	b.value = syntax.NewEqualsValue(e)
	return b
}

// Reset clears the modifier, attributes, default value and rewriters.
func (b *ParameterBuilder) Reset() *ParameterBuilder {
	b.resetCore()
	b.modifiers = nil
	b.attributes = nil
	b.value = nil
	return b
}

func (b *ParameterBuilder) Build() (*syntax.Parameter, error) {
	if b.err != nil {
		return nil, b.err
	}
	p := &syntax.Parameter{
		Attributes: slices.Clone(b.attributes),
		Type:       b.typ,
		Identifier: b.identifier,
		Modifiers:  slices.Clone(b.modifiers),
		Default:    b.value,
	}
	return finish(&b.rewriters, p)
}
