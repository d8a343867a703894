package util

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

const (
	ErrorType = "error"
)

// TypeOf returns the types.Type of the expression according to go types info
func TypeOf(expr dst.Expr, pkg *decorator.Package) types.Type {
	if expr == nil || pkg == nil || pkg.TypesInfo == nil {
		return nil
	}
	astNode := pkg.Decorator.Ast.Nodes[expr]
	astExpr, ok := astNode.(ast.Expr)
	if !ok {
		return nil
	}
	return pkg.TypesInfo.TypeOf(astExpr)
}

// ObjectOf returns the object an identifier defines or uses.
func ObjectOf(ident *dst.Ident, pkg *decorator.Package) types.Object {
	if ident == nil || pkg == nil || pkg.TypesInfo == nil {
		return nil
	}
	astIdent, ok := pkg.Decorator.Ast.Nodes[ident].(*ast.Ident)
	if !ok {
		return nil
	}
	return pkg.TypesInfo.ObjectOf(astIdent)
}

func Position(node dst.Node, pkg *decorator.Package) *token.Position {
	if node == nil || pkg == nil || pkg.Package == nil || pkg.Fset == nil {
		return nil
	}

	astNode := pkg.Decorator.Ast.Nodes[node]
	if astNode == nil {
		return nil
	}

	pos := pkg.Fset.Position(astNode.Pos())
	return &pos
}

// WriteExpr returns the Go source text of expr.
func WriteExpr(expr dst.Expr, pkg *decorator.Package) string {
	if expr == nil || pkg == nil {
		return ""
	}

	astExpr, ok := pkg.Decorator.Ast.Nodes[expr].(ast.Expr)
	if !ok {
		return ""
	}

	return types.ExprString(astExpr)
}

func IsError(t types.Type) bool {
	if t == nil {
		return false
	}
	// if the variable is an error type, return it
	if t.String() == ErrorType {
		return true
	}

	// if the variable is a named error type, return it
	name, ok := t.(*types.Named)
	if !ok {
		return false
	}

	o := name.Obj()
	return o != nil && o.Pkg() == nil && o.Name() == "error"
}
