package builder

import (
	"slices"

	"github.com/csforge/csforge/syntax"
)

// BodyBuilder builds a block of statements.
type BodyBuilder struct {
	core[*BodyBuilder]
	statements []syntax.Stmt
}

func NewBody() *BodyBuilder {
	b := &BodyBuilder{}
	b.self = b
	return b
}

// BodyFrom returns a builder holding the statements of block.
func BodyFrom(block *syntax.Block) *BodyBuilder {
	b := NewBody()
	b.SetContent(block)
	return b
}

// SetContent replaces the statements with those of block and drops the
// rewriters.
func (b *BodyBuilder) SetContent(block *syntax.Block) {
	b.resetCore()
	b.statements = slices.Clone(block.Statements)
}

// DeclareVariable adds "typ name = init;". init may be nil.
func (b *BodyBuilder) DeclareVariable(typ syntax.Type, name string, init syntax.Expr) *BodyBuilder {
	return b.AddStatementNode(syntax.NewLocalDeclaration(typ, name, init))
}

// DeclareVar adds "var name = init;".
func (b *BodyBuilder) DeclareVar(name string, init syntax.Expr) *BodyBuilder {
	return b.DeclareVariable(syntax.IdentName("var"), name, init)
}

// AddStatement adds statement text verbatim.
func (b *BodyBuilder) AddStatement(text string) *BodyBuilder {
	return b.AddStatementNode(syntax.NewRawStatement(text))
}

// AddExpression adds expr as a statement.
func (b *BodyBuilder) AddExpression(expr syntax.Expr) *BodyBuilder {
	return b.AddStatementNode(syntax.NewExpressionStatement(expr))
}

func (b *BodyBuilder) AddStatementNode(stmt syntax.Stmt) *BodyBuilder {
	b.statements = append(b.statements, stmt)
	return b
}

// Return adds "return expr;".
func (b *BodyBuilder) Return(expr syntax.Expr) *BodyBuilder {
	return b.AddStatementNode(syntax.NewReturn(expr))
}

// ReturnRaw adds a return of verbatim expression text.
func (b *BodyBuilder) ReturnRaw(text string) *BodyBuilder {
	return b.Return(syntax.NewRawExpression(text))
}

// ReturnVoid adds "return;".
func (b *BodyBuilder) ReturnVoid() *BodyBuilder {
	return b.Return(nil)
}

// Len returns the number of statements.
func (b *BodyBuilder) Len() int { return len(b.statements) }

// Reset removes every statement and rewriter.
func (b *BodyBuilder) Reset() *BodyBuilder {
	b.resetCore()
	b.statements = nil
	return b
}

func (b *BodyBuilder) Build() (*syntax.Block, error) {
	return finish(&b.rewriters, syntax.NewBlock(slices.Clone(b.statements)...))
}
