package syntax

// Block is a braced statement list.
type Block struct {
	OpenBrace  Token
	Statements []Stmt
	CloseBrace Token
}

func NewBlock(stmts ...Stmt) *Block {
	return &Block{OpenBrace: Tok(OpenBraceToken), Statements: stmts, CloseBrace: Tok(CloseBraceToken)}
}

func (*Block) Kind() Kind { return KindBlock }
func (*Block) stmt()      {}

func (n *Block) rebuild(v *visitor) Node {
	c := *n
	c.OpenBrace = v.tok(n.OpenBrace)
	c.Statements = many(v, n.Statements)
	c.CloseBrace = v.tok(n.CloseBrace)
	return &c
}

func (n *Block) emit(e *emitter) {
	e.token(n.OpenBrace)
	emitAll(e, n.Statements)
	e.token(n.CloseBrace)
}

// ExpressionStatement is "expr;".
type ExpressionStatement struct {
	Expr      Expr
	Semicolon Token
}

func NewExpressionStatement(expr Expr) *ExpressionStatement {
	return &ExpressionStatement{Expr: expr, Semicolon: Tok(SemicolonToken)}
}

func (*ExpressionStatement) Kind() Kind { return KindExpressionStatement }
func (*ExpressionStatement) stmt()      {}

func (n *ExpressionStatement) rebuild(v *visitor) Node {
	c := *n
	c.Expr = one(v, n.Expr)
	c.Semicolon = v.tok(n.Semicolon)
	return &c
}

func (n *ExpressionStatement) emit(e *emitter) {
	e.node(n.Expr)
	e.token(n.Semicolon)
}

// ReturnStatement is "return [expr];".
type ReturnStatement struct {
	Return    Token
	Expr      Expr
	Semicolon Token
}

// NewReturn returns a return statement; expr may be nil.
func NewReturn(expr Expr) *ReturnStatement {
	return &ReturnStatement{Return: Tok(ReturnKeyword), Expr: expr, Semicolon: Tok(SemicolonToken)}
}

func (*ReturnStatement) Kind() Kind { return KindReturnStatement }
func (*ReturnStatement) stmt()      {}

func (n *ReturnStatement) rebuild(v *visitor) Node {
	c := *n
	c.Return = v.tok(n.Return)
	c.Expr = one(v, n.Expr)
	c.Semicolon = v.tok(n.Semicolon)
	return &c
}

func (n *ReturnStatement) emit(e *emitter) {
	e.token(n.Return)
	e.node(n.Expr)
	e.token(n.Semicolon)
}

// LocalDeclaration is "Type name = value;".
type LocalDeclaration struct {
	Declaration *VariableDeclaration
	Semicolon   Token
}

func NewLocalDeclaration(typ Type, name string, init Expr) *LocalDeclaration {
	return &LocalDeclaration{
		Declaration: NewVariableDeclaration(typ, NewDeclarator(name, init)),
		Semicolon:   Tok(SemicolonToken),
	}
}

func (*LocalDeclaration) Kind() Kind { return KindLocalDeclaration }
func (*LocalDeclaration) stmt()      {}

func (n *LocalDeclaration) rebuild(v *visitor) Node {
	c := *n
	c.Declaration = one(v, n.Declaration)
	c.Semicolon = v.tok(n.Semicolon)
	return &c
}

func (n *LocalDeclaration) emit(e *emitter) {
	e.node(n.Declaration)
	e.token(n.Semicolon)
}

// IfStatement is "if (cond) stmt" without an else branch.
type IfStatement struct {
	If        Token
	Condition Expr
	Then      Stmt
}

func NewIf(cond Expr, then Stmt) *IfStatement {
	return &IfStatement{If: Tok(IfKeyword), Condition: cond, Then: then}
}

func (*IfStatement) Kind() Kind { return KindIfStatement }
func (*IfStatement) stmt()      {}

func (n *IfStatement) rebuild(v *visitor) Node {
	c := *n
	c.If = v.tok(n.If)
	c.Condition = one(v, n.Condition)
	c.Then = one(v, n.Then)
	return &c
}

func (n *IfStatement) emit(e *emitter) {
	e.token(n.If)
	e.punct("(")
	e.node(n.Condition)
	e.punct(")")
	e.node(n.Then)
}

// RawStatement carries statement text verbatim.
type RawStatement struct {
	Text Token
}

func NewRawStatement(text string) *RawStatement {
	return &RawStatement{Text: Raw(text)}
}

func (*RawStatement) Kind() Kind { return KindRawStatement }
func (*RawStatement) stmt()      {}

func (n *RawStatement) rebuild(v *visitor) Node {
	c := *n
	c.Text = v.tok(n.Text)
	return &c
}

func (n *RawStatement) emit(e *emitter) {
	e.token(n.Text)
}
