package builder

import (
	"slices"

	"github.com/csforge/csforge/syntax"
)

// ConstructorBuilder builds an instance or static constructor.
type ConstructorBuilder struct {
	callable[*ConstructorBuilder]
	initializer *syntax.ConstructorInitializer
}

// NewConstructor returns a builder for a constructor of the named type with
// an empty body.
func NewConstructor(typeName string) *ConstructorBuilder {
	b := &ConstructorBuilder{}
	b.initCallable(b, typeName)
	return b
}

func ConstructorFrom(decl *syntax.ConstructorDecl) *ConstructorBuilder {
	b := NewConstructor("")
	b.SetContent(decl)
	return b
}

func (b *ConstructorBuilder) SetContent(decl *syntax.ConstructorDecl) {
	b.loadCallable(decl.Identifier, decl, decl.Parameters, decl.Body, decl.ExpressionBody)
	b.initializer = decl.Initializer
}

// WithBaseInitializer chains to a base constructor: ": base(args)".
func (b *ConstructorBuilder) WithBaseInitializer(args ...syntax.Expr) *ConstructorBuilder {
	b.initializer = syntax.NewConstructorInitializer(syntax.BaseKeyword, args...)
	return b
}

// WithThisInitializer chains to another constructor: ": this(args)".
func (b *ConstructorBuilder) WithThisInitializer(args ...syntax.Expr) *ConstructorBuilder {
	b.initializer = syntax.NewConstructorInitializer(syntax.ThisKeyword, args...)
	return b
}

func (b *ConstructorBuilder) WithoutInitializer() *ConstructorBuilder {
	b.initializer = nil
	return b
}

// Reset clears everything but the name and leaves an empty body.
func (b *ConstructorBuilder) Reset() *ConstructorBuilder {
	b.resetCallable()
	b.initializer = nil
	return b
}

func (b *ConstructorBuilder) Build() (*syntax.ConstructorDecl, error) {
	if b.err != nil {
		return nil, b.err
	}
	params, body, err := b.build()
	if err != nil {
		return nil, err
	}
	decl := &syntax.ConstructorDecl{
		Attributes:     slices.Clone(b.attributes),
		Modifiers:      b.modifiers.Tokens(),
		Identifier:     b.identifier,
		Parameters:     params,
		Initializer:    b.initializer,
		Body:           body.block,
		ExpressionBody: body.arrow,
		Semicolon:      body.semicolon,
	}
	return finish(&b.rewriters, decl)
}
