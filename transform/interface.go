package transform

import (
	"github.com/csforge/csforge/syntax"
)

// InterfaceExtractor reduces type declarations to their public instance
// surface: method and property signatures without modifiers or bodies.
// Constructors, fields, operators and every non-public or static member are
// removed, as are accessors that carry a modifier of their own.
type InterfaceExtractor struct {
	// Rename turns each class or struct into an interface named I<Name>.
	Rename bool
}

func (InterfaceExtractor) Name() string { return "interface-extractor" }

func (x InterfaceExtractor) Rewrite(root syntax.Node) (syntax.Node, error) {
	pre := func(c *syntax.Cursor) bool {
		switch n := c.Node().(type) {
		case *syntax.CompilationUnit, *syntax.NamespaceDecl, *syntax.TypeDecl:
			return true
		case *syntax.ConstructorDecl, *syntax.FieldDecl, *syntax.OperatorDecl:
			c.Delete()
		case *syntax.MethodDecl:
			if !exposed(n.Modifiers) {
				c.Delete()
				break
			}
			c.Replace(signature(n))
		case *syntax.PropertyDecl:
			if !exposed(n.Modifiers) {
				c.Delete()
				break
			}
			c.Replace(propertySignature(n))
		}
		return false
	}
	var post syntax.ApplyFunc
	if x.Rename {
		post = func(c *syntax.Cursor) bool {
			if n, ok := c.Node().(*syntax.TypeDecl); ok && n.Kind() != syntax.KindInterface {
				c.Replace(asInterface(n))
			}
			return true
		}
	}
	return syntax.Apply(root, pre, post), nil
}

func exposed(mods []syntax.Token) bool {
	return syntax.HasToken(mods, syntax.PublicKeyword) && !syntax.HasToken(mods, syntax.StaticKeyword)
}

// keepLeading moves the leading trivia of from's first token onto n's.
func keepLeading[N syntax.Node](n N, from syntax.Node) N {
	leading := syntax.FirstToken(from).Leading
	return syntax.ReplaceFirstToken(n, func(t syntax.Token) syntax.Token { return t.WithLeading(leading...) })
}

func signature(n *syntax.MethodDecl) *syntax.MethodDecl {
	m := *n
	m.Modifiers = nil
	m.Body = nil
	m.ExpressionBody = nil
	m.Semicolon = syntax.Tok(syntax.SemicolonToken).WithTrailing(syntax.LastToken(n).Trailing...)
	return keepLeading(&m, n)
}

func propertySignature(n *syntax.PropertyDecl) *syntax.PropertyDecl {
	p := *n
	p.Modifiers = nil
	p.Initializer = nil
	p.Semicolon = syntax.Token{}
	switch {
	case p.ExpressionBody != nil:
		p.ExpressionBody = nil
		p.Accessors = syntax.NewAccessorList(syntax.NewAccessor(syntax.GetKeyword))
	case p.Accessors != nil:
		list := *p.Accessors
		list.Accessors = nil
		for _, a := range p.Accessors.Accessors {
			if len(a.Modifiers) > 0 {
				continue
			}
			acc := *a
			acc.Body = nil
			acc.ExpressionBody = nil
			acc.Semicolon = syntax.Tok(syntax.SemicolonToken)
			list.Accessors = append(list.Accessors, &acc)
		}
		p.Accessors = &list
	}
	return keepLeading(&p, n)
}

func asInterface(n *syntax.TypeDecl) *syntax.TypeDecl {
	t := *n
	t.Keyword = syntax.Tok(syntax.InterfaceKeyword).WithLeading(n.Keyword.Leading...).WithTrailing(n.Keyword.Trailing...)
	t.Identifier = syntax.Ident("I" + syntax.IdentifierText(n.Identifier)).
		WithLeading(n.Identifier.Leading...).WithTrailing(n.Identifier.Trailing...)
	t.BaseList = nil
	t.Modifiers = nil
	for _, m := range n.Modifiers {
		switch m.Kind {
		case syntax.StaticKeyword, syntax.AbstractKeyword, syntax.SealedKeyword, syntax.ReadOnlyKeyword:
			continue
		}
		t.Modifiers = append(t.Modifiers, m)
	}
	return &t
}
