package transform

import (
	"unicode"
	"unicode/utf8"

	"github.com/csforge/csforge/syntax"
)

// ValueSemantics gives every class in the tree structural equality over its
// public get-only properties. It appends a constructor taking those
// properties, Equals and GetHashCode overrides and, optionally, ToString.
//
// Only OverrideToString changes the output. The remaining flags are accepted
// so callers can state intent, and are otherwise ignored.
type ValueSemantics struct {
	OverrideToString      bool
	IncludePrivateSetters bool
	ForceReadOnly         bool
	ImplementIEquatable   bool
}

func (ValueSemantics) Name() string { return "value-semantics" }

func (v ValueSemantics) Rewrite(root syntax.Node) (syntax.Node, error) {
	var err error
	pre := func(c *syntax.Cursor) bool {
		if err != nil {
			return false
		}
		if c.Node().Kind() == syntax.KindStruct {
			err = Unsupported(syntax.KindStruct, "value types are not supported")
			return false
		}
		return true
	}
	post := func(c *syntax.Cursor) bool {
		if n, ok := c.Node().(*syntax.TypeDecl); ok && n.Kind() == syntax.KindClass {
			c.Replace(v.synthesize(n))
		}
		return true
	}
	out := syntax.Apply(root, pre, post)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// equalityProperties returns the public properties of n without a setter,
// in declaration order. Members of nested types are not included.
func equalityProperties(n *syntax.TypeDecl) []*syntax.PropertyDecl {
	var out []*syntax.PropertyDecl
	for _, m := range n.Members {
		p, ok := m.(*syntax.PropertyDecl)
		if !ok || p.Kind() != syntax.KindProperty {
			continue
		}
		if !syntax.HasToken(p.Modifiers, syntax.PublicKeyword) || p.Accessor(syntax.SetKeyword) != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (v ValueSemantics) synthesize(n *syntax.TypeDecl) *syntax.TypeDecl {
	props := equalityProperties(n)
	out := *n
	out.Members = append(append([]syntax.Member{}, n.Members...),
		valueConstructor(n, props),
		equalsOverride(n, props),
		hashCodeOverride(props),
	)
	if v.OverrideToString {
		out.Members = append(out.Members, toStringOverride(props))
	}
	return &out
}

func decapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func propertyName(p *syntax.PropertyDecl) string { return syntax.IdentifierText(p.Identifier) }

func withoutTrivia[N syntax.Node](n N) N {
	return syntax.MapTokens(n, syntax.Token.WithoutTrivia).(N)
}

func publicOverride() []syntax.Token {
	return []syntax.Token{syntax.Tok(syntax.PublicKeyword), syntax.Tok(syntax.OverrideKeyword)}
}

func call(target, method string, args ...syntax.Expr) *syntax.Invocation {
	return syntax.NewInvocation(syntax.NewMemberAccess(syntax.IdentName(target), method), args...)
}

func valueConstructor(n *syntax.TypeDecl, props []*syntax.PropertyDecl) *syntax.ConstructorDecl {
	ctor := syntax.NewConstructor(syntax.IdentifierText(n.Identifier))
	ctor.Modifiers = []syntax.Token{syntax.Tok(syntax.PublicKeyword)}
	for _, p := range props {
		param := decapitalize(propertyName(p))
		ctor.Parameters.Parameters = append(ctor.Parameters.Parameters, syntax.NewParameter(withoutTrivia(p.Type), param))
		ctor.Body.Statements = append(ctor.Body.Statements, syntax.NewExpressionStatement(
			syntax.NewAssignment(syntax.IdentName(propertyName(p)), syntax.IdentName(param))))
	}
	return ctor
}

// selfType names n the way it is referenced inside its own body.
func selfType(n *syntax.TypeDecl) syntax.Type {
	name := syntax.IdentifierText(n.Identifier)
	if n.TypeParameters == nil || len(n.TypeParameters.Parameters) == 0 {
		return syntax.IdentName(name)
	}
	args := make([]syntax.Type, len(n.TypeParameters.Parameters))
	for i, tp := range n.TypeParameters.Parameters {
		args[i] = syntax.IdentName(syntax.IdentifierText(tp.Identifier))
	}
	return syntax.NewGenericName(name, args...)
}

func equalsOverride(n *syntax.TypeDecl, props []*syntax.PropertyDecl) *syntax.MethodDecl {
	m := syntax.NewMethod(syntax.NewPredefinedType(syntax.BoolKeyword), "Equals",
		syntax.NewParameter(syntax.NewPredefinedType(syntax.ObjectKeyword), "obj"))
	m.Modifiers = publicOverride()

	notOther := syntax.NewNot(syntax.NewParenthesized(
		syntax.NewIsPattern(syntax.IdentName("obj"), selfType(n), "other")))

	var cmp syntax.Expr = syntax.BoolLiteral(true)
	for i, p := range props {
		eq := syntax.NewBinary(
			syntax.NewMemberAccess(syntax.NewThis(), propertyName(p)),
			"==",
			syntax.NewMemberAccess(syntax.IdentName("other"), propertyName(p)),
		)
		if i == 0 {
			cmp = eq
		} else {
			cmp = syntax.NewBinary(cmp, "&&", eq)
		}
	}

	m.Body = syntax.NewBlock(
		syntax.NewIf(notOther, syntax.NewReturn(syntax.BoolLiteral(false))),
		syntax.NewReturn(cmp),
	)
	return m
}

func hashCodeOverride(props []*syntax.PropertyDecl) *syntax.MethodDecl {
	m := syntax.NewMethod(syntax.NewPredefinedType(syntax.IntKeyword), "GetHashCode")
	m.Modifiers = publicOverride()
	m.Body = syntax.NewBlock(syntax.NewLocalDeclaration(syntax.IdentName("var"), "hash",
		syntax.NewObjectCreation(syntax.IdentName("HashCode"))))
	for _, p := range props {
		m.Body.Statements = append(m.Body.Statements,
			syntax.NewExpressionStatement(call("hash", "Add", syntax.IdentName(propertyName(p)))))
	}
	m.Body.Statements = append(m.Body.Statements, syntax.NewReturn(call("hash", "ToHashCode")))
	return m
}

// toStringOverride renders "{ A: a, B: b }"-like text. The separator is
// appended once, after the last property, rather than between properties.
func toStringOverride(props []*syntax.PropertyDecl) *syntax.MethodDecl {
	m := syntax.NewMethod(syntax.NewPredefinedType(syntax.StringKeyword), "ToString")
	m.Modifiers = publicOverride()

	appendText := func(e syntax.Expr) syntax.Stmt {
		return syntax.NewExpressionStatement(call("text", "Append", e))
	}
	stmts := []syntax.Stmt{
		syntax.NewLocalDeclaration(syntax.IdentName("var"), "text",
			syntax.NewObjectCreation(syntax.QualifiedNameOf("System", "Text", "StringBuilder"))),
		appendText(syntax.StringLiteral("{ ")),
	}
	for i, p := range props {
		name := syntax.IdentName(propertyName(p))
		stmts = append(stmts, appendText(syntax.NewInterpolatedString(
			syntax.NewInterpolation(syntax.NewInvocation(syntax.IdentName("nameof"), name)),
			syntax.NewInterpolatedText(": "),
			syntax.NewInterpolation(syntax.IdentName(propertyName(p))),
		)))
		if i == len(props)-1 {
			stmts = append(stmts, appendText(syntax.StringLiteral(", ")))
		}
	}
	stmts = append(stmts,
		appendText(syntax.StringLiteral(" }")),
		syntax.NewReturn(call("text", "ToString")),
	)
	m.Body = syntax.NewBlock(stmts...)
	return m
}
