package builder

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/syntax"
)

var modifierRank = map[syntax.TokenKind]int{
	syntax.PublicKeyword:    0,
	syntax.PrivateKeyword:   1,
	syntax.ProtectedKeyword: 2,
	syntax.InternalKeyword:  3,
	syntax.StaticKeyword:    4,
	syntax.ExternKeyword:    5,
	syntax.NewKeyword:       6,
	syntax.VirtualKeyword:   7,
	syntax.AbstractKeyword:  8,
	syntax.SealedKeyword:    9,
	syntax.OverrideKeyword:  10,
	syntax.ReadOnlyKeyword:  11,
	syntax.UnsafeKeyword:    12,
	syntax.VolatileKeyword:  13,
	syntax.AsyncKeyword:     14,
}

func rank(k syntax.TokenKind) int {
	if r, ok := modifierRank[k]; ok {
		return r
	}
	return len(modifierRank)
}

// ModifierSet holds modifier tokens in canonical order: access modifiers
// first, then static, extern, new, virtual, abstract, sealed, override,
// readonly, unsafe, volatile and async. Other modifiers such as const or
// partial follow in the order they were added. A kind is held at most once.
type ModifierSet struct {
	tokens []syntax.Token
}

// Add inserts tokens for the given kinds. Kinds already present are kept
// as they are.
func (s *ModifierSet) Add(kinds ...syntax.TokenKind) {
	for _, k := range kinds {
		s.insert(syntax.Tok(k))
	}
}

// AddTokens inserts existing tokens, trivia included.
func (s *ModifierSet) AddTokens(tokens ...syntax.Token) {
	for _, t := range tokens {
		s.insert(t)
	}
}

func (s *ModifierSet) insert(t syntax.Token) {
	if s.Has(t.Kind) {
		return
	}
	r := rank(t.Kind)
	i := len(s.tokens)
	for i > 0 && rank(s.tokens[i-1].Kind) > r {
		i--
	}
	s.tokens = slices.Insert(s.tokens, i, t)
}

// Remove deletes the given kinds.
func (s *ModifierSet) Remove(kinds ...syntax.TokenKind) {
	s.tokens = slices.DeleteFunc(s.tokens, func(t syntax.Token) bool {
		return slices.Contains(kinds, t.Kind)
	})
}

func (s *ModifierSet) Has(kind syntax.TokenKind) bool {
	return syntax.HasToken(s.tokens, kind)
}

// SetAccess replaces every access modifier with kind, or with the pair kind
// and second. The only valid pairs are private protected and protected
// internal; any other combination panics with an assertion failure.
func (s *ModifierSet) SetAccess(kind syntax.TokenKind, second ...syntax.TokenKind) {
	switch {
	case len(second) > 1:
		panic(errors.AssertionFailedf("at most two access modifiers, got %d", len(second)+1))
	case len(second) == 1 && !validPair(kind, second[0]):
		panic(errors.WithAssertionFailure(&InvalidCombinedModifierError{First: kind, Second: second[0]}))
	case !kind.IsAccessModifier():
		panic(errors.AssertionFailedf("%s is not an access modifier", kind))
	}
	s.tokens = slices.DeleteFunc(s.tokens, func(t syntax.Token) bool { return t.Kind.IsAccessModifier() })
	s.Add(kind)
	s.Add(second...)
}

func validPair(first, second syntax.TokenKind) bool {
	return (first == syntax.PrivateKeyword && second == syntax.ProtectedKeyword) ||
		(first == syntax.ProtectedKeyword && second == syntax.InternalKeyword)
}

func (s *ModifierSet) Clear() { s.tokens = nil }

func (s *ModifierSet) Len() int { return len(s.tokens) }

// Tokens returns a copy of the modifiers in canonical order.
func (s *ModifierSet) Tokens() []syntax.Token {
	return slices.Clone(s.tokens)
}
