package builder

import (
	"slices"

	"github.com/csforge/csforge/syntax"
)

// PropertyBuilder builds a property. A new property is an auto property
// with a single get accessor.
type PropertyBuilder struct {
	member[*PropertyBuilder]
	event          syntax.Token
	typ            syntax.Type
	accessors      []*syntax.Accessor
	expressionBody *syntax.ArrowExpression
	initializer    *syntax.EqualsValue
}

func NewProperty(name string, typ syntax.Type) *PropertyBuilder {
	b := &PropertyBuilder{typ: typ, accessors: defaultAccessors()}
	b.init(b, name)
	return b
}

func defaultAccessors() []*syntax.Accessor {
	return []*syntax.Accessor{syntax.NewAccessor(syntax.GetKeyword)}
}

// PropertyFrom returns a builder loaded from decl.
func PropertyFrom(decl *syntax.PropertyDecl) *PropertyBuilder {
	b := &PropertyBuilder{}
	b.init(b, "")
	b.SetContent(decl)
	return b
}

func (b *PropertyBuilder) SetContent(decl *syntax.PropertyDecl) {
	b.load(decl.Identifier, decl)
	b.event = decl.Event
	b.typ = decl.Type
	b.accessors = nil
	if decl.Accessors != nil {
		b.accessors = slices.Clone(decl.Accessors.Accessors)
	}
	b.expressionBody = decl.ExpressionBody
	b.initializer = decl.Initializer
}

func (b *PropertyBuilder) HasType(typ syntax.Type) *PropertyBuilder {
	b.typ = typ
	return b
}

// WithSetter adds an auto-implemented set accessor unless one exists.
func (b *PropertyBuilder) WithSetter() *PropertyBuilder {
	return b.WithAccessor(syntax.NewAccessor(syntax.SetKeyword))
}

// WithInitSetter adds an auto-implemented init accessor unless one exists.
func (b *PropertyBuilder) WithInitSetter() *PropertyBuilder {
	return b.WithAccessor(syntax.NewAccessor(syntax.InitKeyword))
}

// WithAccessor adds a, replacing the expression body if there was one. An
// accessor of the same keyword already present is kept instead.
func (b *PropertyBuilder) WithAccessor(a *syntax.Accessor) *PropertyBuilder {
	b.expressionBody = nil
	if b.accessor(a.Keyword.Kind) == nil {
		b.accessors = append(b.accessors, a)
	}
	return b
}

// ReadOnly removes the set accessor.
func (b *PropertyBuilder) ReadOnly() *PropertyBuilder {
	b.accessors = slices.DeleteFunc(slices.Clone(b.accessors), func(a *syntax.Accessor) bool {
		return a.Keyword.Is(syntax.SetKeyword)
	})
	return b
}

// WithExpressionBody replaces the accessor list with "=> expr".
func (b *PropertyBuilder) WithExpressionBody(expr syntax.Expr) *PropertyBuilder {
	b.accessors = nil
	b.expressionBody = syntax.NewArrowExpression(expr)
	b.initializer = nil
	return b
}

// HasDefaultValue sets the initializer from a Go constant. An unsupported
// value is reported by Build.
func (b *PropertyBuilder) HasDefaultValue(v any) *PropertyBuilder {
	e, err := Literal(v)
	if err != nil {
		b.fail(err)
		return b
	}
	b.initializer = syntax.NewEqualsValue(e)
	return b
}

func (b *PropertyBuilder) WithoutDefaultValue() *PropertyBuilder {
	b.initializer = nil
	return b
}

// HasSetter reports whether the property has a set accessor.
func (b *PropertyBuilder) HasSetter() bool {
	return b.accessor(syntax.SetKeyword) != nil
}

func (b *PropertyBuilder) accessor(kind syntax.TokenKind) *syntax.Accessor {
	for _, a := range b.accessors {
		if a.Keyword.Is(kind) {
			return a
		}
	}
	return nil
}

// Reset restores the single get accessor and clears everything else except
// the name and type.
func (b *PropertyBuilder) Reset() *PropertyBuilder {
	b.resetMember()
	b.event = syntax.Token{}
	b.accessors = defaultAccessors()
	b.expressionBody = nil
	b.initializer = nil
	return b
}

func (b *PropertyBuilder) Build() (*syntax.PropertyDecl, error) {
	if b.err != nil {
		return nil, b.err
	}
	decl := &syntax.PropertyDecl{
		Attributes:     slices.Clone(b.attributes),
		Modifiers:      b.modifiers.Tokens(),
		Event:          b.event,
		Type:           b.typ,
		Identifier:     b.identifier,
		ExpressionBody: b.expressionBody,
		Initializer:    b.initializer,
	}
	if b.expressionBody == nil || len(b.accessors) > 0 {
		decl.Accessors = syntax.NewAccessorList(slices.Clone(b.accessors)...)
	}
	if decl.ExpressionBody != nil || decl.Initializer != nil {
		decl.Semicolon = syntax.Tok(syntax.SemicolonToken)
	}
	return finish(&b.rewriters, decl)
}
