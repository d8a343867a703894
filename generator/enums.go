package generator

import (
	"go/constant"
	"go/token"
	"go/types"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/internal/codegen"
	"github.com/csforge/csforge/internal/comment"
	"github.com/csforge/csforge/internal/util"
	"github.com/csforge/csforge/syntax"
	"github.com/csforge/csforge/transform"
	"github.com/dave/dst"
	"github.com/dave/dst/dstutil"
)

type enumMember struct {
	name  string
	value int64
	doc   []string
}

// scanEnums collects the constants of every exported, integer based named
// type of the package. Such a type with at least one constant is an enum.
func (m *Manager) scanEnums(state *PackageState) {
	pkg := state.pkg
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*dst.GenDecl)
			if !ok || gen.Tok != token.CONST {
				continue
			}
			for _, spec := range gen.Specs {
				vs := spec.(*dst.ValueSpec)
				for _, ident := range vs.Names {
					if ident.Name == "_" {
						continue
					}
					c, ok := util.ObjectOf(ident, pkg).(*types.Const)
					if !ok {
						continue
					}
					obj := enumType(c.Type(), pkg.PkgPath)
					if obj == nil {
						continue
					}
					v, exact := constant.Int64Val(constant.ToInt(c.Val()))
					if !exact {
						continue
					}
					doc := vs.Decs.Start
					if len(gen.Specs) == 1 {
						doc = gen.Decs.Start
					}
					m.enumMembers[obj] = append(m.enumMembers[obj], enumMember{
						name:  codegen.EnumMember(obj.Name(), ident.Name),
						value: v,
						doc:   comment.Doc(doc),
					})
				}
			}
		}
	}
}

func enumType(t types.Type, pkgPath string) *types.TypeName {
	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}
	obj := named.Obj()
	if !obj.Exported() || obj.Pkg() == nil || obj.Pkg().Path() != pkgPath {
		return nil
	}
	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return nil
	}
	return obj
}

// GenerateEnum turns a named integer type with constants into an enum whose
// members carry the constant values.
func GenerateEnum(m *Manager, state *PackageState, c *dstutil.Cursor) {
	ts, ok := c.Node().(*dst.TypeSpec)
	if !ok {
		return
	}
	obj, ok := util.ObjectOf(ts.Name, state.pkg).(*types.TypeName)
	if !ok {
		return
	}
	members, ok := m.enumMembers[obj]
	if !ok {
		return
	}

	var base syntax.Type
	if basic, ok := obj.Type().Underlying().(*types.Basic); ok {
		switch basic.Kind() {
		case types.Int, types.Int32:
		case types.Uint64, types.Uint, types.Uintptr:
			base = syntax.NewPredefinedType(syntax.ULongKeyword)
		default:
			mapped, err := codegen.TypeMapper{}.Map(basic)
			if err == nil {
				base = mapped
			}
		}
	}

	doc := comment.Summary(comment.Doc(typeDoc(ts, c.Parent())))
	name := obj.Name()
	namespace := state.namespace
	normalizer := m.opts.Normalizer

	m.add(state, name, func() (*syntax.CompilationUnit, error) {
		decl := syntax.NewEnum(name)
		decl.Modifiers = []syntax.Token{syntax.Tok(syntax.PublicKeyword)}
		if base != nil {
			decl.BaseList = syntax.NewBaseList(base)
		}
		for _, em := range members {
			member := syntax.NewEnumMember(em.name, syntax.IntLiteral(em.value))
			if len(em.doc) > 0 {
				member = syntax.ReplaceFirstToken(member, func(t syntax.Token) syntax.Token {
					return t.PrependLeading(comment.Summary(em.doc)...)
				})
			}
			decl.Members = append(decl.Members, member)
		}
		if len(doc) > 0 {
			decl = syntax.ReplaceFirstToken(decl, func(t syntax.Token) syntax.Token {
				return t.PrependLeading(doc...)
			})
		}

		ns, err := syntax.ParseName(namespace)
		if err != nil {
			return nil, errors.Wrap(err, "namespace")
		}
		var p transform.Pipeline
		p.Add(normalizer, transform.NormalizerPriority)
		out, err := p.Run(syntax.NewCompilationUnit(nil, syntax.NewNamespace(ns, decl)))
		if err != nil {
			return nil, err
		}
		unit, ok := out.(*syntax.CompilationUnit)
		if !ok {
			return nil, errors.AssertionFailedf("normalizer returned %T", out)
		}
		return unit, nil
	})
}
