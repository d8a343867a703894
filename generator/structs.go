package generator

import (
	"go/types"
	"reflect"
	"strings"

	"github.com/csforge/csforge/internal/comment"
	"github.com/csforge/csforge/internal/util"
	"github.com/csforge/csforge/syntax"
	"github.com/csforge/csforge/transform"
	"github.com/dave/dst"
	"github.com/dave/dst/dstutil"
)

// structType returns the type name of an exported struct declaration.
func (m *Manager) structType(state *PackageState, ts *dst.TypeSpec) *types.TypeName {
	if !ts.Name.IsExported() || ts.Assign {
		return nil
	}
	if _, ok := ts.Type.(*dst.StructType); !ok {
		return nil
	}
	obj, _ := util.ObjectOf(ts.Name, state.pkg).(*types.TypeName)
	return obj
}

// GenerateStruct turns an exported struct type into a class with one property
// per exported field. Fields whose type has no C# counterpart are skipped
// with a warning.
func GenerateStruct(m *Manager, state *PackageState, c *dstutil.Cursor) {
	ts, ok := c.Node().(*dst.TypeSpec)
	if !ok {
		return
	}
	obj := m.structType(state, ts)
	if obj == nil {
		return
	}
	st := ts.Type.(*dst.StructType)
	pkg := state.pkg
	mapper := m.mapperFor(state)

	b := m.typeBuilder(state, obj.Name())
	if ts.TypeParams != nil {
		for _, field := range ts.TypeParams.List {
			for _, name := range field.Names {
				b.HasTypeParameter(name.Name)
			}
		}
	}

	var notes []syntax.Trivia
	doc := comment.Doc(typeDoc(ts, c.Parent()))
	for _, field := range st.Fields.List {
		name, skip := fieldName(field)
		if skip {
			continue
		}

		typ, err := mapper.Map(util.TypeOf(field.Type, pkg))
		if err != nil {
			label := name
			if label == "" && len(field.Names) > 0 {
				label = field.Names[0].Name
			} else if label == "" {
				label = util.WriteExpr(field.Type, pkg)
			}
			notes = append(notes, comment.Warn(pkg, field, "field "+label+" was not generated", err.Error())...)
			continue
		}

		if len(field.Names) == 0 {
			// Embedded generated structs become the base class.
			if _, ok := mapper.Known[namedObject(util.TypeOf(field.Type, pkg))]; ok {
				b.Extends(typ)
			} else {
				notes = append(notes, comment.Warn(pkg, field, "embedded field "+util.WriteExpr(field.Type, pkg)+" was not generated",
					"only embedded structs that are generated too can become a base class")...)
			}
			continue
		}

		for _, ident := range field.Names {
			if !ident.IsExported() {
				continue
			}
			propName := name
			if propName == "" || len(field.Names) > 1 {
				propName = ident.Name
			}
			p := b.Property(propName, typ)
			if !m.valueSemantics() {
				p.WithSetter()
			}
			if lines := comment.Doc(field.Decs.Start); len(lines) > 0 {
				p.WithRewriter(comment.Attach(comment.Summary(lines)))
			}
		}
	}

	if m.valueSemantics() {
		b.UseValueSemantics(transform.ValueSemantics{OverrideToString: m.opts.ToString})
	}
	leading := append(comment.Summary(doc), notes...)
	if len(leading) > 0 {
		b.WithRewriter(comment.AttachToType(obj.Name(), leading))
	}

	m.add(state, obj.Name(), b.BuildCompilationUnit)
}

func (m *Manager) valueSemantics() bool {
	return m.opts.ValueSemantics || m.opts.ToString
}

// fieldName returns the property name a json tag asks for. skip is true for
// fields tagged json:"-".
func fieldName(field *dst.Field) (name string, skip bool) {
	if field.Tag == nil {
		return "", false
	}
	tag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
	if v, ok := tag.Lookup("csforge"); ok {
		if v == "-" {
			return "", true
		}
		return v, false
	}
	if v, ok := tag.Lookup("json"); ok && strings.Split(v, ",")[0] == "-" {
		return "", true
	}
	return "", false
}

// typeDoc returns the doc comment of a type spec. An ungrouped declaration
// keeps its doc on the enclosing GenDecl.
func typeDoc(ts *dst.TypeSpec, parent dst.Node) dst.Decorations {
	if len(ts.Decs.Start) > 0 {
		return ts.Decs.Start
	}
	if gen, ok := parent.(*dst.GenDecl); ok && len(gen.Specs) == 1 {
		return gen.Decs.Start
	}
	return nil
}

func namedObject(t types.Type) *types.TypeName {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	if n, ok := types.Unalias(t).(*types.Named); ok {
		return n.Obj()
	}
	return nil
}
