package builder

import (
	"slices"

	"github.com/csforge/csforge/syntax"
)

// member carries what every member declaration shares: a name, modifiers
// and attribute lists.
type member[B any] struct {
	core[B]
	identifier syntax.Token
	modifiers  ModifierSet
	attributes []*syntax.AttributeList
}

func (m *member[B]) init(self B, name string) {
	m.self = self
	m.identifier = syntax.Ident(name)
}

// Identifier returns the member name without any '@' escape.
func (m *member[B]) Identifier() string {
	return syntax.IdentifierText(m.identifier)
}

// Named renames the member.
func (m *member[B]) Named(name string) B {
	m.identifier = syntax.Ident(name)
	return m.self
}

func (m *member[B]) Public() B    { return m.access(syntax.PublicKeyword) }
func (m *member[B]) Private() B   { return m.access(syntax.PrivateKeyword) }
func (m *member[B]) Protected() B { return m.access(syntax.ProtectedKeyword) }
func (m *member[B]) Internal() B  { return m.access(syntax.InternalKeyword) }

func (m *member[B]) ProtectedInternal() B {
	return m.access(syntax.ProtectedKeyword, syntax.InternalKeyword)
}

func (m *member[B]) PrivateProtected() B {
	return m.access(syntax.PrivateKeyword, syntax.ProtectedKeyword)
}

func (m *member[B]) access(kind syntax.TokenKind, second ...syntax.TokenKind) B {
	m.modifiers.SetAccess(kind, second...)
	return m.self
}

func (m *member[B]) Static() B {
	m.modifiers.Add(syntax.StaticKeyword)
	return m.self
}

func (m *member[B]) Instance() B {
	m.modifiers.Remove(syntax.StaticKeyword)
	return m.self
}

// WithModifier adds a single modifier keyword. An access keyword replaces
// the current access like Public or Private do; use ProtectedInternal or
// PrivateProtected for the combined forms.
func (m *member[B]) WithModifier(kind syntax.TokenKind) B {
	if kind.IsAccessModifier() {
		return m.access(kind)
	}
	m.modifiers.Add(kind)
	return m.self
}

func (m *member[B]) WithoutModifiers() B {
	m.modifiers.Clear()
	return m.self
}

// HasModifier reports whether kind is currently set.
func (m *member[B]) HasModifier(kind syntax.TokenKind) bool {
	return m.modifiers.Has(kind)
}

// Modifiers returns the modifier keywords in output order.
func (m *member[B]) Modifiers() []string {
	return syntax.TokenTexts(m.modifiers.Tokens())
}

// WithAttribute adds attr in its own attribute list.
func (m *member[B]) WithAttribute(attr *syntax.Attribute) B {
	return m.WithAttributeList(syntax.NewAttributeList(attr))
}

func (m *member[B]) WithAttributeList(list *syntax.AttributeList) B {
	m.attributes = append(m.attributes, list)
	return m.self
}

func (m *member[B]) WithoutAttributes() B {
	m.attributes = nil
	return m.self
}

// load replaces the shared state with that of an existing declaration and
// drops the rewriters and any recorded error.
func (m *member[B]) load(identifier syntax.Token, decl syntax.Modified) {
	m.resetCore()
	m.identifier = identifier
	m.modifiers.Clear()
	m.modifiers.AddTokens(decl.GetModifiers()...)
	m.attributes = slices.Clone(decl.GetAttributes())
}

func (m *member[B]) resetMember() {
	m.resetCore()
	m.modifiers.Clear()
	m.attributes = nil
}
