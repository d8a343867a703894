package transform

import (
	"strings"

	"github.com/csforge/csforge/syntax"
)

// DefaultIndent is the indentation unit used when Normalizer.Indent is empty.
const DefaultIndent = "    "

// Normalizer lays a tree out in canonical form: one declaration or statement
// per line, members grouped and ordered by kind, blank lines between groups.
// Existing whitespace is discarded first, so applying it twice changes
// nothing. Comments are kept and re-indented.
type Normalizer struct {
	// Indent is the unit repeated once per nesting level.
	Indent string
	// BlankLineBetweenProperties separates properties (and event
	// properties) from each other by a blank line.
	BlankLineBetweenProperties bool
}

func (Normalizer) Name() string { return "normalizer" }

func (n Normalizer) Rewrite(root syntax.Node) (syntax.Node, error) {
	if syntax.IsNil(root) {
		return nil, nil
	}
	p := &printer{indent: n.Indent, blankProps: n.BlankLineBetweenProperties}
	if p.indent == "" {
		p.indent = DefaultIndent
	}
	// MapTokens copies every node, so the layout below may update the copy in place.
	owned := syntax.MapTokens(root, stripToken)
	return p.root(owned), nil
}

type printer struct {
	indent     string
	blankProps bool
}

func (p *printer) root(n syntax.Node) syntax.Node {
	switch v := n.(type) {
	case *syntax.CompilationUnit:
		return p.unit(v)
	case syntax.Member:
		return p.member(v, 0)
	case syntax.Stmt:
		return p.stmt(v, 0)
	case syntax.Expr:
		return p.expr(v)
	}
	return n
}

func (p *printer) pad(depth int) []syntax.Trivia {
	return syntax.Whitespace(strings.Repeat(p.indent, depth))
}

// lineStart puts t at the start of a line at depth, after the given number
// of line breaks. Comments before t each get a line of their own.
func (p *printer) lineStart(depth, breaks int) func(syntax.Token) syntax.Token {
	return func(t syntax.Token) syntax.Token {
		var out []syntax.Trivia
		for range breaks {
			out = append(out, syntax.EndOfLine)
		}
		for _, c := range comments(t.Leading) {
			out = append(out, p.pad(depth)...)
			out = append(out, c, syntax.EndOfLine)
		}
		out = append(out, p.pad(depth)...)
		t.Leading = out
		return t
	}
}

// lead places ws before t, followed by any comments t carries.
func lead(t syntax.Token, ws ...syntax.Trivia) syntax.Token {
	out := append([]syntax.Trivia{}, ws...)
	for _, c := range comments(t.Leading) {
		out = append(out, c)
		if isLineComment(c) {
			out = append(out, syntax.EndOfLine)
		} else {
			out = append(out, syntax.Space)
		}
	}
	t.Leading = out
	return t
}

// trail places ws after t and its trailing comments. A line comment always
// ends the line.
func trail(t syntax.Token, ws ...syntax.Trivia) syntax.Token {
	var out []syntax.Trivia
	cs := comments(t.Trailing)
	for _, c := range cs {
		out = append(out, syntax.Space, c)
	}
	if len(cs) > 0 && isLineComment(cs[len(cs)-1]) {
		ws = []syntax.Trivia{syntax.EndOfLine}
	}
	t.Trailing = append(out, ws...)
	return t
}

func endLine(t syntax.Token) syntax.Token { return trail(t, syntax.EndOfLine) }

func comments(list []syntax.Trivia) []syntax.Trivia {
	var out []syntax.Trivia
	for _, tr := range list {
		if tr.Kind == syntax.CommentTrivia {
			out = append(out, tr)
		}
	}
	return out
}

func isLineComment(t syntax.Trivia) bool {
	return t.Kind == syntax.CommentTrivia && strings.HasPrefix(t.Text, "//")
}

func spaced(t syntax.Token) syntax.Token { return trail(lead(t, syntax.Space), syntax.Space) }

func blankLine[N syntax.Node](n N) N {
	return syntax.ReplaceFirstToken(n, func(t syntax.Token) syntax.Token {
		return t.PrependLeading(syntax.EndOfLine)
	})
}

// line makes n start a line at depth and end with a line break.
func line[N syntax.Node](p *printer, n N, depth int) N {
	n = syntax.ReplaceFirstToken(n, p.lineStart(depth, 0))
	return syntax.ReplaceLastToken(n, endLine)
}

func (p *printer) unit(n *syntax.CompilationUnit) *syntax.CompilationUnit {
	for i, u := range n.Usings {
		n.Usings[i] = p.using(u, 0)
	}
	n.Members = p.memberList(n.Members, 0, false)
	if len(n.Usings) > 0 && len(n.Members) > 0 {
		n.Members[0] = blankLine(n.Members[0])
	}
	return n
}

func (p *printer) using(n *syntax.UsingDirective, depth int) *syntax.UsingDirective {
	if n.Alias != nil {
		n.Alias.Equals = spaced(n.Alias.Equals)
	}
	n.Name = p.name(n.Name)
	return line(p, n, depth)
}

type group struct {
	members []syntax.Member
	spaced  bool
}

// groups partitions a type body into canonical order. Members of kinds not
// listed keep their relative order at the end.
func (p *printer) groups(members []syntax.Member) []group {
	const (
		constants = iota
		staticFields
		fields
		constructors
		properties
		eventFields
		events
		methods
		operators
		types
		others
		count
	)
	out := make([]group, count)
	out[constructors].spaced = true
	out[properties].spaced = p.blankProps
	out[events].spaced = p.blankProps
	out[methods].spaced = true
	out[operators].spaced = true
	out[types].spaced = true

	for _, m := range members {
		slot := others
		switch v := m.(type) {
		case *syntax.FieldDecl:
			switch {
			case v.Kind() == syntax.KindEventField:
				slot = eventFields
			case syntax.HasToken(v.Modifiers, syntax.ConstKeyword):
				slot = constants
			case syntax.HasToken(v.Modifiers, syntax.StaticKeyword):
				slot = staticFields
			default:
				slot = fields
			}
		case *syntax.ConstructorDecl:
			slot = constructors
		case *syntax.PropertyDecl:
			if v.Kind() == syntax.KindEvent {
				slot = events
			} else {
				slot = properties
			}
		case *syntax.MethodDecl:
			slot = methods
		case *syntax.OperatorDecl:
			slot = operators
		case *syntax.TypeDecl, *syntax.EnumDecl:
			slot = types
		}
		out[slot].members = append(out[slot].members, m)
	}
	return out
}

func (p *printer) memberList(members []syntax.Member, depth int, canonical bool) []syntax.Member {
	if len(members) == 0 {
		return members
	}
	groups := []group{{members: members, spaced: true}}
	if canonical {
		groups = p.groups(members)
	}
	out := make([]syntax.Member, 0, len(members))
	for _, g := range groups {
		for i, m := range g.members {
			m = p.member(m, depth)
			if (i > 0 && g.spaced) || (i == 0 && len(out) > 0) {
				m = blankLine(m)
			}
			out = append(out, m)
		}
	}
	return out
}

func (p *printer) attributes(lists []*syntax.AttributeList, depth int) []*syntax.AttributeList {
	for i, l := range lists {
		for j, a := range l.Attributes {
			a.Name = p.name(a.Name)
			a.Arguments = p.exprList(a.Arguments)
			if j > 0 {
				l.Attributes[j] = syntax.ReplaceFirstToken(a, func(t syntax.Token) syntax.Token { return lead(t, syntax.Space) })
			}
		}
		lists[i] = line(p, l, depth)
	}
	return lists
}

func (p *printer) member(m syntax.Member, depth int) syntax.Member {
	switch v := m.(type) {
	case *syntax.NamespaceDecl:
		v.Name = p.name(v.Name)
		v.OpenBrace = endLine(p.lineStart(depth, 1)(v.OpenBrace))
		v.Members = p.memberList(v.Members, depth+1, false)
		v.CloseBrace = p.lineStart(depth, 0)(v.CloseBrace)
		return line(p, v, depth)

	case *syntax.TypeDecl:
		attrs := p.attributes(v.Attributes, depth)
		v.Attributes = nil
		p.typeParameters(v.TypeParameters)
		p.baseList(v.BaseList)
		v.OpenBrace = endLine(p.lineStart(depth, 1)(v.OpenBrace))
		v.Members = p.memberList(v.Members, depth+1, true)
		v.CloseBrace = p.lineStart(depth, 0)(v.CloseBrace)
		v = line(p, v, depth)
		v.Attributes = attrs
		return v

	case *syntax.EnumDecl:
		attrs := p.attributes(v.Attributes, depth)
		v.Attributes = nil
		p.baseList(v.BaseList)
		v.OpenBrace = p.lineStart(depth, 1)(v.OpenBrace)
		for i, em := range v.Members {
			if em.Value != nil {
				em.Value.Equals = spaced(em.Value.Equals)
				em.Value.Value = p.expr(em.Value.Value)
			}
			v.Members[i] = syntax.ReplaceFirstToken(em, p.lineStart(depth+1, 1))
		}
		v.CloseBrace = p.lineStart(depth, 1)(v.CloseBrace)
		v = line(p, v, depth)
		v.Attributes = attrs
		return v

	case *syntax.FieldDecl:
		attrs := p.attributes(v.Attributes, depth)
		v.Attributes = nil
		p.variables(v.Declaration)
		v = line(p, v, depth)
		v.Attributes = attrs
		return v

	case *syntax.PropertyDecl:
		attrs := p.attributes(v.Attributes, depth)
		v.Attributes = nil
		v.Type = p.typ(v.Type)
		if v.Accessors != nil {
			p.accessors(v.Accessors, depth)
		}
		p.arrow(v.ExpressionBody)
		p.equalsValue(v.Initializer)
		v = line(p, v, depth)
		v.Attributes = attrs
		return v

	case *syntax.ConstructorDecl:
		attrs := p.attributes(v.Attributes, depth)
		v.Attributes = nil
		p.parameters(v.Parameters)
		if in := v.Initializer; in != nil {
			in.Colon = spaced(in.Colon)
			in.Arguments = p.exprList(in.Arguments)
		}
		v.Body = p.body(v.Body, depth)
		p.arrow(v.ExpressionBody)
		v = line(p, v, depth)
		v.Attributes = attrs
		return v

	case *syntax.MethodDecl:
		attrs := p.attributes(v.Attributes, depth)
		v.Attributes = nil
		v.ReturnType = p.typ(v.ReturnType)
		p.typeParameters(v.TypeParameters)
		p.parameters(v.Parameters)
		v.Body = p.body(v.Body, depth)
		p.arrow(v.ExpressionBody)
		v = line(p, v, depth)
		v.Attributes = attrs
		return v

	case *syntax.OperatorDecl:
		attrs := p.attributes(v.Attributes, depth)
		v.Attributes = nil
		v.ReturnType = p.typ(v.ReturnType)
		v.OperatorToken = lead(v.OperatorToken, syntax.Space)
		p.parameters(v.Parameters)
		v.Body = p.body(v.Body, depth)
		p.arrow(v.ExpressionBody)
		v = line(p, v, depth)
		v.Attributes = attrs
		return v
	}
	return line(p, m, depth)
}

func (p *printer) typeParameters(l *syntax.TypeParameterList) {
	if l == nil {
		return
	}
	for i, tp := range l.Parameters {
		if i > 0 {
			tp.Identifier = lead(tp.Identifier, syntax.Space)
		}
	}
}

func (p *printer) baseList(l *syntax.BaseList) {
	if l == nil {
		return
	}
	l.Colon = spaced(l.Colon)
	l.Types = p.typeList(l.Types)
}

func (p *printer) parameters(l *syntax.ParameterList) {
	if l == nil {
		return
	}
	for i, prm := range l.Parameters {
		prm.Type = p.typ(prm.Type)
		p.equalsValue(prm.Default)
		if i > 0 {
			l.Parameters[i] = syntax.ReplaceFirstToken(prm, func(t syntax.Token) syntax.Token { return lead(t, syntax.Space) })
		}
	}
}

func (p *printer) variables(d *syntax.VariableDeclaration) {
	if d == nil {
		return
	}
	d.Type = p.typ(d.Type)
	for i, v := range d.Variables {
		if i > 0 {
			v.Identifier = lead(v.Identifier, syntax.Space)
		}
		p.equalsValue(v.Initializer)
	}
}

func (p *printer) equalsValue(ev *syntax.EqualsValue) {
	if ev == nil {
		return
	}
	ev.Equals = spaced(ev.Equals)
	ev.Value = p.expr(ev.Value)
}

func (p *printer) arrow(a *syntax.ArrowExpression) {
	if a == nil {
		return
	}
	a.Arrow = spaced(a.Arrow)
	a.Expr = p.expr(a.Expr)
}

// accessors renders an all-auto list inline, otherwise one accessor per line.
func (p *printer) accessors(l *syntax.AccessorList, depth int) {
	auto := true
	for _, a := range l.Accessors {
		auto = auto && a.IsAuto()
	}
	if auto {
		l.OpenBrace = spaced(l.OpenBrace)
		for _, a := range l.Accessors {
			a.Semicolon = trail(a.Semicolon, syntax.Space)
		}
		return
	}

	l.OpenBrace = endLine(p.lineStart(depth, 1)(l.OpenBrace))
	for i, a := range l.Accessors {
		a.Body = p.body(a.Body, depth+1)
		p.arrow(a.ExpressionBody)
		l.Accessors[i] = line(p, a, depth+1)
	}
	l.CloseBrace = p.lineStart(depth, 0)(l.CloseBrace)
}

// body lays out a block following a signature or a statement head. The
// caller ends the line after the closing brace.
func (p *printer) body(b *syntax.Block, depth int) *syntax.Block {
	if b == nil {
		return nil
	}
	if len(b.Statements) == 0 {
		b.OpenBrace = spaced(b.OpenBrace)
		return b
	}
	b.OpenBrace = endLine(p.lineStart(depth, 1)(b.OpenBrace))
	for i, s := range b.Statements {
		b.Statements[i] = p.stmt(s, depth+1)
	}
	last := len(b.Statements) - 1
	if _, ok := b.Statements[last].(*syntax.ReturnStatement); ok && last > 0 {
		b.Statements[last] = blankLine(b.Statements[last])
	}
	b.CloseBrace = p.lineStart(depth, 0)(b.CloseBrace)
	return b
}

func (p *printer) stmt(s syntax.Stmt, depth int) syntax.Stmt {
	switch v := s.(type) {
	case *syntax.Block:
		return line(p, p.body(v, depth), depth)
	case *syntax.ExpressionStatement:
		v.Expr = p.expr(v.Expr)
	case *syntax.ReturnStatement:
		if !syntax.IsNil(v.Expr) {
			v.Expr = p.expr(v.Expr)
		}
	case *syntax.LocalDeclaration:
		p.variables(v.Declaration)
	case *syntax.IfStatement:
		v.If = trail(v.If, syntax.Space)
		v.Condition = p.expr(v.Condition)
		then, ok := v.Then.(*syntax.Block)
		if !ok {
			then = syntax.NewBlock(v.Then)
		}
		v.Then = p.body(then, depth)
	}
	return line(p, s, depth)
}

func (p *printer) exprList(list []syntax.Expr) []syntax.Expr {
	for i, e := range list {
		e = p.expr(e)
		if i > 0 {
			e = syntax.ReplaceFirstToken(e, func(t syntax.Token) syntax.Token { return lead(t, syntax.Space) })
		}
		list[i] = e
	}
	return list
}

func (p *printer) typeList(list []syntax.Type) []syntax.Type {
	for i, t := range list {
		t = p.typ(t)
		if i > 0 {
			t = syntax.ReplaceFirstToken(t, func(t syntax.Token) syntax.Token { return lead(t, syntax.Space) })
		}
		list[i] = t
	}
	return list
}

func (p *printer) typ(t syntax.Type) syntax.Type {
	if syntax.IsNil(t) {
		return t
	}
	return p.expr(t).(syntax.Type)
}

func (p *printer) name(n syntax.Name) syntax.Name {
	if syntax.IsNil(n) {
		return n
	}
	return p.expr(n).(syntax.Name)
}

// expr spaces operators and separated lists. Everything else inside an
// expression is left to the join rule of the renderer.
func (p *printer) expr(e syntax.Expr) syntax.Expr {
	switch v := e.(type) {
	case *syntax.Binary:
		v.Left = p.expr(v.Left)
		v.Operator = spaced(v.Operator)
		v.Right = p.expr(v.Right)
	case *syntax.Assignment:
		v.Left = p.expr(v.Left)
		v.Operator = spaced(v.Operator)
		v.Right = p.expr(v.Right)
	case *syntax.Invocation:
		v.Expr = p.expr(v.Expr)
		v.Arguments = p.exprList(v.Arguments)
	case *syntax.ObjectCreation:
		v.Type = p.typ(v.Type)
		v.Arguments = p.exprList(v.Arguments)
	case *syntax.MemberAccess:
		v.Expr = p.expr(v.Expr)
	case *syntax.PrefixUnary:
		v.Operand = p.expr(v.Operand)
	case *syntax.Parenthesized:
		v.Expr = p.expr(v.Expr)
	case *syntax.IsPattern:
		v.Expr = p.expr(v.Expr)
		v.Is = spaced(v.Is)
		v.Type = p.typ(v.Type)
	case *syntax.InterpolatedString:
		for _, c := range v.Contents {
			if in, ok := c.(*syntax.Interpolation); ok {
				in.Expr = p.expr(in.Expr)
			}
		}
	case *syntax.GenericName:
		v.Arguments = p.typeList(v.Arguments)
	case *syntax.QualifiedName:
		v.Left = p.name(v.Left)
		v.Right = p.expr(v.Right).(syntax.SimpleName)
	case *syntax.ArrayType:
		v.Element = p.typ(v.Element)
	case *syntax.NullableType:
		v.Element = p.typ(v.Element)
	}
	return e
}
