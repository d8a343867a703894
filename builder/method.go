package builder

import (
	"fmt"
	"slices"

	"github.com/csforge/csforge/syntax"
)

// MethodBuilder builds a method. A new method returns void and has an empty
// body.
type MethodBuilder struct {
	callable[*MethodBuilder]
	returnType     syntax.Type
	typeParameters []*syntax.TypeParameter
}

func NewMethod(name string) *MethodBuilder {
	b := &MethodBuilder{returnType: Void()}
	b.initCallable(b, name)
	return b
}

func MethodFrom(decl *syntax.MethodDecl) *MethodBuilder {
	b := NewMethod("")
	b.SetContent(decl)
	return b
}

func (b *MethodBuilder) SetContent(decl *syntax.MethodDecl) {
	b.loadCallable(decl.Identifier, decl, decl.Parameters, decl.Body, decl.ExpressionBody)
	b.returnType = decl.ReturnType
	b.typeParameters = nil
	if decl.TypeParameters != nil {
		b.typeParameters = slices.Clone(decl.TypeParameters.Parameters)
	}
}

func (b *MethodBuilder) Returns(typ syntax.Type) *MethodBuilder {
	b.returnType = typ
	return b
}

func (b *MethodBuilder) ReturnsVoid() *MethodBuilder {
	return b.Returns(Void())
}

func (b *MethodBuilder) HasTypeParameter(name string) *MethodBuilder {
	b.typeParameters = append(b.typeParameters, &syntax.TypeParameter{Identifier: syntax.Ident(name)})
	return b
}

// HasTypeParameters appends each of names.
func (b *MethodBuilder) HasTypeParameters(names ...string) *MethodBuilder {
	for _, name := range names {
		b.HasTypeParameter(name)
	}
	return b
}

// HasTypeParameterCount appends n parameters numbered from the current
// count: a method with T0 given two more gets T1 and T2.
func (b *MethodBuilder) HasTypeParameterCount(n int) *MethodBuilder {
	start := len(b.typeParameters)
	for i := start; i < start+n; i++ {
		b.HasTypeParameter(fmt.Sprintf("T%d", i))
	}
	return b
}

func (b *MethodBuilder) WithoutTypeParameters() *MethodBuilder {
	b.typeParameters = nil
	return b
}

// Override marks the method as overriding a base member.
func (b *MethodBuilder) Override() *MethodBuilder {
	b.modifiers.Remove(syntax.VirtualKeyword, syntax.AbstractKeyword, syntax.StaticKeyword)
	b.modifiers.Add(syntax.OverrideKeyword)
	return b
}

// HideBase hides an inherited member with "new".
func (b *MethodBuilder) HideBase() *MethodBuilder {
	b.modifiers.Remove(syntax.OverrideKeyword)
	b.modifiers.Add(syntax.NewKeyword)
	return b
}

func (b *MethodBuilder) Virtual() *MethodBuilder {
	b.modifiers.Remove(syntax.OverrideKeyword, syntax.StaticKeyword, syntax.SealedKeyword)
	b.modifiers.Add(syntax.VirtualKeyword)
	return b
}

// Abstract makes the method abstract and drops its body.
func (b *MethodBuilder) Abstract() *MethodBuilder {
	b.modifiers.Remove(syntax.OverrideKeyword, syntax.StaticKeyword, syntax.SealedKeyword, syntax.VirtualKeyword)
	b.modifiers.Add(syntax.AbstractKeyword)
	return b.WithoutBody()
}

func (b *MethodBuilder) Sealed() *MethodBuilder {
	b.modifiers.Remove(syntax.AbstractKeyword, syntax.StaticKeyword, syntax.VirtualKeyword)
	b.modifiers.Add(syntax.SealedKeyword)
	return b
}

func (b *MethodBuilder) Unsafe() *MethodBuilder {
	b.modifiers.Add(syntax.UnsafeKeyword)
	return b
}

// Async marks the method async and wraps its return type in
// System.Threading.Tasks.Task. A method that is already async is left alone.
func (b *MethodBuilder) Async() *MethodBuilder {
	if b.modifiers.Has(syntax.AsyncKeyword) {
		return b
	}
	b.modifiers.Add(syntax.AsyncKeyword)
	tasks := syntax.QualifiedNameOf("System", "Threading", "Tasks")
	if isVoid(b.returnType) {
		b.returnType = syntax.NewQualifiedName(tasks, syntax.IdentName("Task"))
	} else {
		b.returnType = syntax.NewQualifiedName(tasks, syntax.NewGenericName("Task", b.returnType))
	}
	return b
}

// Reset clears everything but the name and return type and leaves an empty
// body.
func (b *MethodBuilder) Reset() *MethodBuilder {
	b.resetCallable()
	b.typeParameters = nil
	return b
}

func (b *MethodBuilder) Build() (*syntax.MethodDecl, error) {
	if b.err != nil {
		return nil, b.err
	}
	params, body, err := b.build()
	if err != nil {
		return nil, err
	}
	decl := &syntax.MethodDecl{
		Attributes:     slices.Clone(b.attributes),
		Modifiers:      b.modifiers.Tokens(),
		ReturnType:     b.returnType,
		Identifier:     b.identifier,
		Parameters:     params,
		Body:           body.block,
		ExpressionBody: body.arrow,
		Semicolon:      body.semicolon,
	}
	if len(b.typeParameters) > 0 {
		decl.TypeParameters = &syntax.TypeParameterList{Parameters: slices.Clone(b.typeParameters)}
	}
	return finish(&b.rewriters, decl)
}
