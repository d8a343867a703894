package syntax

import (
	"strconv"
)

// IdentifierName is a simple name.
type IdentifierName struct {
	Identifier Token
}

func IdentName(name string) *IdentifierName {
	return &IdentifierName{Identifier: Ident(name)}
}

func (*IdentifierName) Kind() Kind { return KindIdentifierName }
func (*IdentifierName) expr()      {}
func (*IdentifierName) typ()       {}
func (*IdentifierName) name()      {}
func (*IdentifierName) simple()    {}

func (n *IdentifierName) rebuild(v *visitor) Node {
	c := *n
	c.Identifier = v.tok(n.Identifier)
	return &c
}

func (n *IdentifierName) emit(e *emitter) { e.token(n.Identifier) }

// GenericName is "Name<A, B>".
type GenericName struct {
	Identifier Token
	Arguments  []Type
}

func NewGenericName(name string, args ...Type) *GenericName {
	return &GenericName{Identifier: Ident(name), Arguments: args}
}

func (*GenericName) Kind() Kind { return KindGenericName }
func (*GenericName) expr()      {}
func (*GenericName) typ()       {}
func (*GenericName) name()      {}
func (*GenericName) simple()    {}

func (n *GenericName) rebuild(v *visitor) Node {
	c := *n
	c.Identifier = v.tok(n.Identifier)
	c.Arguments = many(v, n.Arguments)
	return &c
}

func (n *GenericName) emit(e *emitter) {
	e.token(n.Identifier)
	e.punct("<")
	emitSeparated(e, n.Arguments, ",")
	e.closeType(">")
}

// QualifiedName is "Left.Right".
type QualifiedName struct {
	Left  Name
	Right SimpleName
}

func NewQualifiedName(left Name, right SimpleName) *QualifiedName {
	return &QualifiedName{Left: left, Right: right}
}

func (*QualifiedName) Kind() Kind { return KindQualifiedName }
func (*QualifiedName) expr()      {}
func (*QualifiedName) typ()       {}
func (*QualifiedName) name()      {}

func (n *QualifiedName) rebuild(v *visitor) Node {
	c := *n
	c.Left = one(v, n.Left)
	c.Right = one(v, n.Right)
	return &c
}

func (n *QualifiedName) emit(e *emitter) {
	e.node(n.Left)
	e.punct(".")
	e.node(n.Right)
}

// PredefinedType is a keyword type such as int or string.
type PredefinedType struct {
	Keyword Token
}

func NewPredefinedType(keyword TokenKind) *PredefinedType {
	return &PredefinedType{Keyword: Tok(keyword)}
}

func (*PredefinedType) Kind() Kind { return KindPredefinedType }
func (*PredefinedType) expr()      {}
func (*PredefinedType) typ()       {}

func (n *PredefinedType) rebuild(v *visitor) Node {
	c := *n
	c.Keyword = v.tok(n.Keyword)
	return &c
}

func (n *PredefinedType) emit(e *emitter) { e.token(n.Keyword) }

// ArrayType is a single-dimension array "T[]".
type ArrayType struct {
	Element Type
}

func NewArrayType(elem Type) *ArrayType { return &ArrayType{Element: elem} }

func (*ArrayType) Kind() Kind { return KindArrayType }
func (*ArrayType) expr()      {}
func (*ArrayType) typ()       {}

func (n *ArrayType) rebuild(v *visitor) Node {
	c := *n
	c.Element = one(v, n.Element)
	return &c
}

func (n *ArrayType) emit(e *emitter) {
	e.node(n.Element)
	e.closeType("[]")
}

// NullableType is "T?".
type NullableType struct {
	Element Type
}

func NewNullableType(elem Type) *NullableType { return &NullableType{Element: elem} }

func (*NullableType) Kind() Kind { return KindNullableType }
func (*NullableType) expr()      {}
func (*NullableType) typ()       {}

func (n *NullableType) rebuild(v *visitor) Node {
	c := *n
	c.Element = one(v, n.Element)
	return &c
}

func (n *NullableType) emit(e *emitter) {
	e.node(n.Element)
	e.closeType("?")
}

// Literal is a numeric, string, character, boolean or null literal.
type Literal struct {
	Token Token
}

func NewLiteral(kind TokenKind, text string) *Literal {
	return &Literal{Token: Token{Kind: kind, Text: text}}
}

func StringLiteral(s string) *Literal { return NewLiteral(StringLiteralToken, QuoteString(s)) }
func CharLiteral(r rune) *Literal     { return NewLiteral(CharacterLiteralToken, QuoteChar(r)) }
func NumericLiteral(text string) *Literal {
	return NewLiteral(NumericLiteralToken, text)
}
func IntLiteral(i int64) *Literal { return NumericLiteral(strconv.FormatInt(i, 10)) }
func NullLiteral() *Literal       { return &Literal{Token: Tok(NullKeyword)} }

func BoolLiteral(b bool) *Literal {
	if b {
		return &Literal{Token: Tok(TrueKeyword)}
	}
	return &Literal{Token: Tok(FalseKeyword)}
}

func (*Literal) Kind() Kind { return KindLiteral }
func (*Literal) expr()      {}

func (n *Literal) rebuild(v *visitor) Node {
	c := *n
	c.Token = v.tok(n.Token)
	return &c
}

func (n *Literal) emit(e *emitter) { e.token(n.Token) }

// MemberAccess is "expr.Name".
type MemberAccess struct {
	Expr Expr
	Name SimpleName
}

func NewMemberAccess(expr Expr, name string) *MemberAccess {
	return &MemberAccess{Expr: expr, Name: IdentName(name)}
}

func (*MemberAccess) Kind() Kind { return KindMemberAccess }
func (*MemberAccess) expr()      {}

func (n *MemberAccess) rebuild(v *visitor) Node {
	c := *n
	c.Expr = one(v, n.Expr)
	c.Name = one(v, n.Name)
	return &c
}

func (n *MemberAccess) emit(e *emitter) {
	e.node(n.Expr)
	e.punct(".")
	e.node(n.Name)
}

// Invocation is "expr(args)".
type Invocation struct {
	Expr      Expr
	Arguments []Expr
}

func NewInvocation(expr Expr, args ...Expr) *Invocation {
	return &Invocation{Expr: expr, Arguments: args}
}

func (*Invocation) Kind() Kind { return KindInvocation }
func (*Invocation) expr()      {}

func (n *Invocation) rebuild(v *visitor) Node {
	c := *n
	c.Expr = one(v, n.Expr)
	c.Arguments = many(v, n.Arguments)
	return &c
}

func (n *Invocation) emit(e *emitter) {
	e.node(n.Expr)
	emitDelimited(e, "(", n.Arguments, ")")
}

// ObjectCreation is "new Type(args)".
type ObjectCreation struct {
	New       Token
	Type      Type
	Arguments []Expr
}

func NewObjectCreation(typ Type, args ...Expr) *ObjectCreation {
	return &ObjectCreation{New: Tok(NewKeyword), Type: typ, Arguments: args}
}

func (*ObjectCreation) Kind() Kind { return KindObjectCreation }
func (*ObjectCreation) expr()      {}

func (n *ObjectCreation) rebuild(v *visitor) Node {
	c := *n
	c.New = v.tok(n.New)
	c.Type = one(v, n.Type)
	c.Arguments = many(v, n.Arguments)
	return &c
}

func (n *ObjectCreation) emit(e *emitter) {
	e.token(n.New)
	e.node(n.Type)
	emitDelimited(e, "(", n.Arguments, ")")
}

// Binary is "left op right".
type Binary struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func NewBinary(left Expr, op string, right Expr) *Binary {
	return &Binary{Left: left, Operator: Op(op), Right: right}
}

func (*Binary) Kind() Kind { return KindBinary }
func (*Binary) expr()      {}

func (n *Binary) rebuild(v *visitor) Node {
	c := *n
	c.Left = one(v, n.Left)
	c.Operator = v.tok(n.Operator)
	c.Right = one(v, n.Right)
	return &c
}

func (n *Binary) emit(e *emitter) {
	e.node(n.Left)
	e.token(n.Operator)
	e.node(n.Right)
}

// Assignment is "left = right" or a compound assignment.
type Assignment struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func NewAssignment(left, right Expr) *Assignment {
	return &Assignment{Left: left, Operator: Tok(EqualsToken), Right: right}
}

func (*Assignment) Kind() Kind { return KindAssignment }
func (*Assignment) expr()      {}

func (n *Assignment) rebuild(v *visitor) Node {
	c := *n
	c.Left = one(v, n.Left)
	c.Operator = v.tok(n.Operator)
	c.Right = one(v, n.Right)
	return &c
}

func (n *Assignment) emit(e *emitter) {
	e.node(n.Left)
	e.token(n.Operator)
	e.node(n.Right)
}

// PrefixUnary is "op operand", e.g. "!x".
type PrefixUnary struct {
	Operator Token
	Operand  Expr
}

func NewNot(operand Expr) *PrefixUnary {
	return &PrefixUnary{Operator: Op("!"), Operand: operand}
}

func (*PrefixUnary) Kind() Kind { return KindPrefixUnary }
func (*PrefixUnary) expr()      {}

func (n *PrefixUnary) rebuild(v *visitor) Node {
	c := *n
	c.Operator = v.tok(n.Operator)
	c.Operand = one(v, n.Operand)
	return &c
}

func (n *PrefixUnary) emit(e *emitter) {
	e.token(n.Operator)
	e.node(n.Operand)
}

// Parenthesized is "(expr)".
type Parenthesized struct {
	OpenParen  Token
	Expr       Expr
	CloseParen Token
}

func NewParenthesized(expr Expr) *Parenthesized {
	return &Parenthesized{OpenParen: Tok(OpenParenToken), Expr: expr, CloseParen: Tok(CloseParenToken)}
}

func (*Parenthesized) Kind() Kind { return KindParenthesized }
func (*Parenthesized) expr()      {}

func (n *Parenthesized) rebuild(v *visitor) Node {
	c := *n
	c.OpenParen = v.tok(n.OpenParen)
	c.Expr = one(v, n.Expr)
	c.CloseParen = v.tok(n.CloseParen)
	return &c
}

func (n *Parenthesized) emit(e *emitter) {
	e.token(n.OpenParen)
	e.node(n.Expr)
	e.token(n.CloseParen)
}

// IsPattern is "expr is Type designation". Designation is optional.
type IsPattern struct {
	Expr        Expr
	Is          Token
	Type        Type
	Designation Token
}

func NewIsPattern(expr Expr, typ Type, designation string) *IsPattern {
	p := &IsPattern{Expr: expr, Is: Tok(IsKeyword), Type: typ}
	if designation != "" {
		p.Designation = Ident(designation)
	}
	return p
}

func (*IsPattern) Kind() Kind { return KindIsPattern }
func (*IsPattern) expr()      {}

func (n *IsPattern) rebuild(v *visitor) Node {
	c := *n
	c.Expr = one(v, n.Expr)
	c.Is = v.tok(n.Is)
	c.Type = one(v, n.Type)
	c.Designation = v.tok(n.Designation)
	return &c
}

func (n *IsPattern) emit(e *emitter) {
	e.node(n.Expr)
	e.token(n.Is)
	e.node(n.Type)
	e.token(n.Designation)
}

// This is the "this" expression.
type This struct {
	Keyword Token
}

func NewThis() *This { return &This{Keyword: Tok(ThisKeyword)} }

func (*This) Kind() Kind { return KindThis }
func (*This) expr()      {}

func (n *This) rebuild(v *visitor) Node {
	c := *n
	c.Keyword = v.tok(n.Keyword)
	return &c
}

func (n *This) emit(e *emitter) { e.token(n.Keyword) }

// InterpolatedContent is a part of an interpolated string.
type InterpolatedContent interface {
	Node
	content()
}

// InterpolatedString is $"text {expr} text".
type InterpolatedString struct {
	Start    Token
	Contents []InterpolatedContent
	End      Token
}

func NewInterpolatedString(contents ...InterpolatedContent) *InterpolatedString {
	return &InterpolatedString{
		Start:    Tok(InterpolatedStringStartToken),
		Contents: contents,
		End:      Tok(InterpolatedStringEndToken),
	}
}

func (*InterpolatedString) Kind() Kind { return KindInterpolatedString }
func (*InterpolatedString) expr()      {}

func (n *InterpolatedString) rebuild(v *visitor) Node {
	c := *n
	c.Start = v.tok(n.Start)
	c.Contents = many(v, n.Contents)
	c.End = v.tok(n.End)
	return &c
}

func (n *InterpolatedString) emit(e *emitter) {
	e.token(n.Start)
	emitAll(e, n.Contents)
	e.token(n.End)
}

// Interpolation is "{expr}" inside an interpolated string.
type Interpolation struct {
	Expr Expr
}

func NewInterpolation(expr Expr) *Interpolation { return &Interpolation{Expr: expr} }

func (*Interpolation) Kind() Kind { return KindInterpolation }
func (*Interpolation) content()   {}

func (n *Interpolation) rebuild(v *visitor) Node {
	c := *n
	c.Expr = one(v, n.Expr)
	return &c
}

func (n *Interpolation) emit(e *emitter) {
	e.punct("{")
	e.node(n.Expr)
	e.punct("}")
}

// InterpolatedText is literal text inside an interpolated string. Braces
// and quotes must already be escaped.
type InterpolatedText struct {
	Text Token
}

func NewInterpolatedText(text string) *InterpolatedText {
	return &InterpolatedText{Text: Token{Kind: InterpolatedTextToken, Text: text}}
}

func (*InterpolatedText) Kind() Kind { return KindInterpolatedText }
func (*InterpolatedText) content()   {}

func (n *InterpolatedText) rebuild(v *visitor) Node {
	c := *n
	c.Text = v.tok(n.Text)
	return &c
}

// the join rule does not apply inside string text
func (n *InterpolatedText) emit(e *emitter) { e.write(n.Text.Text) }

// RawExpression carries expression text verbatim.
type RawExpression struct {
	Text Token
}

func NewRawExpression(text string) *RawExpression {
	return &RawExpression{Text: Raw(text)}
}

func (*RawExpression) Kind() Kind { return KindRawExpression }
func (*RawExpression) expr()      {}

func (n *RawExpression) rebuild(v *visitor) Node {
	c := *n
	c.Text = v.tok(n.Text)
	return &c
}

func (n *RawExpression) emit(e *emitter) { e.token(n.Text) }
