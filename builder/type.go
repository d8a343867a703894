package builder

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/syntax"
	"github.com/csforge/csforge/transform"
)

// TypeBuilder builds a class, struct or interface together with the
// namespace and usings it is emitted in.
type TypeBuilder struct {
	member[*TypeBuilder]
	keyword        syntax.TokenKind
	namespace      syntax.Name
	usings         []*syntax.UsingDirective
	typeParameters []*syntax.TypeParameter
	baseTypes      []syntax.Type

	fields       []*FieldBuilder
	constructors []*ConstructorBuilder
	properties   []*PropertyBuilder
	methods      []*MethodBuilder
	nested       []*TypeBuilder
	// verbatim holds members no builder represents, such as enums and
	// operators. They are emitted after the nested types.
	verbatim []syntax.Member
}

// NewType returns a builder for an empty class.
func NewType(name string) *TypeBuilder {
	b := &TypeBuilder{keyword: syntax.ClassKeyword}
	b.init(b, name)
	return b
}

// TypeFrom returns a builder loaded from decl. See SetContent.
func TypeFrom(decl *syntax.TypeDecl) (*TypeBuilder, error) {
	b := NewType("")
	if err := b.SetContent(decl); err != nil {
		return nil, err
	}
	return b, nil
}

// Namespace sets the namespace the type is emitted in.
func (b *TypeBuilder) Namespace(name string) *TypeBuilder {
	n, err := syntax.ParseName(name)
	if err != nil {
		b.fail(errors.Wrap(err, "namespace"))
		return b
	}
	b.namespace = n
	return b
}

// SubNamespace appends name to the current namespace, or sets it when there
// is none.
func (b *TypeBuilder) SubNamespace(name string) *TypeBuilder {
	if b.namespace == nil {
		return b.Namespace(name)
	}
	return b.Namespace(syntax.Text(b.namespace) + "." + name)
}

// NamespaceName returns the dotted namespace, or "" when there is none.
func (b *TypeBuilder) NamespaceName() string {
	return syntax.Text(b.namespace)
}

// Using appends a using directive for each name. Duplicates are kept.
func (b *TypeBuilder) Using(names ...string) *TypeBuilder {
	for _, name := range names {
		n, err := syntax.ParseName(name)
		if err != nil {
			b.fail(errors.Wrap(err, "using"))
			continue
		}
		b.usings = append(b.usings, syntax.NewUsing(n))
	}
	return b
}

func (b *TypeBuilder) WithUsing(u *syntax.UsingDirective) *TypeBuilder {
	b.usings = append(b.usings, u)
	return b
}

func (b *TypeBuilder) WithoutUsings() *TypeBuilder {
	b.usings = nil
	return b
}

// Extends puts typ first in the base list, where C# expects the base class.
func (b *TypeBuilder) Extends(typ syntax.Type) *TypeBuilder {
	b.baseTypes = slices.Insert(b.baseTypes, 0, typ)
	return b
}

// Implements appends typ to the base list.
func (b *TypeBuilder) Implements(types ...syntax.Type) *TypeBuilder {
	b.baseTypes = append(b.baseTypes, types...)
	return b
}

func (b *TypeBuilder) WithoutBaseTypes() *TypeBuilder {
	b.baseTypes = nil
	return b
}

// ReferenceType makes the declaration a class.
func (b *TypeBuilder) ReferenceType() *TypeBuilder {
	b.keyword = syntax.ClassKeyword
	return b
}

// ValueType makes the declaration a struct.
func (b *TypeBuilder) ValueType() *TypeBuilder {
	b.keyword = syntax.StructKeyword
	return b
}

// InterfaceType makes the declaration an interface.
func (b *TypeBuilder) InterfaceType() *TypeBuilder {
	b.keyword = syntax.InterfaceKeyword
	return b
}

// Partial marks the declaration partial.
func (b *TypeBuilder) Partial() *TypeBuilder {
	b.modifiers.Add(syntax.PartialKeyword)
	return b
}

func (b *TypeBuilder) Sealed() *TypeBuilder {
	b.modifiers.Remove(syntax.AbstractKeyword, syntax.StaticKeyword)
	b.modifiers.Add(syntax.SealedKeyword)
	return b
}

func (b *TypeBuilder) Abstract() *TypeBuilder {
	b.modifiers.Remove(syntax.SealedKeyword, syntax.StaticKeyword)
	b.modifiers.Add(syntax.AbstractKeyword)
	return b
}

// HasTypeParameter appends a generic parameter.
func (b *TypeBuilder) HasTypeParameter(name string) *TypeBuilder {
	b.typeParameters = append(b.typeParameters, &syntax.TypeParameter{Identifier: syntax.Ident(name)})
	return b
}

// HasTypeParameters replaces the generic parameters with names.
func (b *TypeBuilder) HasTypeParameters(names ...string) *TypeBuilder {
	b.typeParameters = nil
	for _, name := range names {
		b.HasTypeParameter(name)
	}
	return b
}

// HasTypeParameterCount replaces the generic parameters with T0 to Tn-1.
func (b *TypeBuilder) HasTypeParameterCount(n int) *TypeBuilder {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("T%d", i)
	}
	return b.HasTypeParameters(names...)
}

func (b *TypeBuilder) WithoutTypeParameters() *TypeBuilder {
	b.typeParameters = nil
	return b
}

// Field adds a private field and returns its builder.
func (b *TypeBuilder) Field(name string, typ syntax.Type) *FieldBuilder {
	f := NewField(name, typ).Private()
	b.fields = append(b.fields, f)
	return f
}

func (b *TypeBuilder) WithField(f *FieldBuilder) *TypeBuilder {
	b.fields = append(b.fields, f)
	return b
}

func (b *TypeBuilder) WithoutFields() *TypeBuilder {
	b.fields = nil
	return b
}

// HasConstructor adds a public constructor and returns its builder.
func (b *TypeBuilder) HasConstructor() *ConstructorBuilder {
	c := NewConstructor(b.Identifier()).Public()
	b.constructors = append(b.constructors, c)
	return c
}

// WithDefaultConstructor adds a public parameterless constructor.
func (b *TypeBuilder) WithDefaultConstructor() *TypeBuilder {
	b.HasConstructor()
	return b
}

func (b *TypeBuilder) WithConstructor(c *ConstructorBuilder) *TypeBuilder {
	b.constructors = append(b.constructors, c)
	return b
}

func (b *TypeBuilder) WithoutConstructors() *TypeBuilder {
	b.constructors = nil
	return b
}

// Property adds a public get-only property and returns its builder.
func (b *TypeBuilder) Property(name string, typ syntax.Type) *PropertyBuilder {
	p := NewProperty(name, typ).Public()
	b.properties = append(b.properties, p)
	return p
}

func (b *TypeBuilder) WithProperty(p *PropertyBuilder) *TypeBuilder {
	b.properties = append(b.properties, p)
	return b
}

func (b *TypeBuilder) WithoutProperties() *TypeBuilder {
	b.properties = nil
	return b
}

// HasMethod adds a public void method and returns its builder.
func (b *TypeBuilder) HasMethod(name string) *MethodBuilder {
	m := NewMethod(name).Public()
	b.methods = append(b.methods, m)
	return m
}

func (b *TypeBuilder) WithMethod(m *MethodBuilder) *TypeBuilder {
	b.methods = append(b.methods, m)
	return b
}

func (b *TypeBuilder) WithoutMethods() *TypeBuilder {
	b.methods = nil
	return b
}

// NestedType adds a public nested class and returns its builder.
func (b *TypeBuilder) NestedType(name string) *TypeBuilder {
	t := NewType(name).Public()
	b.nested = append(b.nested, t)
	return t
}

func (b *TypeBuilder) WithNestedType(t *TypeBuilder) *TypeBuilder {
	b.nested = append(b.nested, t)
	return b
}

func (b *TypeBuilder) WithoutNestedTypes() *TypeBuilder {
	b.nested = nil
	return b
}

// WithMember adds a declaration that is emitted as it is.
func (b *TypeBuilder) WithMember(m syntax.Member) *TypeBuilder {
	b.verbatim = append(b.verbatim, m)
	return b
}

// UseValueSemantics adds the constructor, Equals and GetHashCode overrides
// derived from the get-only public properties.
func (b *TypeBuilder) UseValueSemantics(opts transform.ValueSemantics) *TypeBuilder {
	return b.WithRewriter(opts)
}

// ExtractInterface reduces the output to its public instance signatures.
func (b *TypeBuilder) ExtractInterface() *TypeBuilder {
	return b.ExtractInterfaceWith(transform.InterfaceExtractor{})
}

func (b *TypeBuilder) ExtractInterfaceWith(x transform.InterfaceExtractor) *TypeBuilder {
	return b.WithRewriter(x)
}

// HoistUsings shortens qualified names in the compilation unit and moves
// their namespaces into the using list.
func (b *TypeBuilder) HoistUsings() *TypeBuilder {
	return b.WithRewriter(transform.UsingsHoister{})
}

// Reset clears everything but the name and leaves an empty class.
func (b *TypeBuilder) Reset() *TypeBuilder {
	name := b.identifier
	*b = TypeBuilder{keyword: syntax.ClassKeyword}
	b.self = b
	b.identifier = name
	return b
}

// SetContent replaces the builder state with decl. Each member is loaded
// into a builder of its shape; members without one are kept verbatim.
// Rewriters, namespace and usings are dropped; SetContentInUnit recovers the
// latter two from the enclosing compilation unit.
func (b *TypeBuilder) SetContent(decl *syntax.TypeDecl) error {
	fresh := TypeBuilder{keyword: decl.Keyword.Kind}
	fresh.self = b
	fresh.load(decl.Identifier, decl)
	if decl.TypeParameters != nil {
		fresh.typeParameters = slices.Clone(decl.TypeParameters.Parameters)
	}
	if decl.BaseList != nil {
		fresh.baseTypes = slices.Clone(decl.BaseList.Types)
	}
	for _, m := range decl.Members {
		switch m := m.(type) {
		case *syntax.FieldDecl:
			f, err := FieldFrom(m)
			if err != nil {
				return err
			}
			fresh.fields = append(fresh.fields, f)
		case *syntax.ConstructorDecl:
			fresh.constructors = append(fresh.constructors, ConstructorFrom(m))
		case *syntax.PropertyDecl:
			fresh.properties = append(fresh.properties, PropertyFrom(m))
		case *syntax.MethodDecl:
			fresh.methods = append(fresh.methods, MethodFrom(m))
		case *syntax.TypeDecl:
			t, err := TypeFrom(m)
			if err != nil {
				return err
			}
			fresh.nested = append(fresh.nested, t)
		default:
			fresh.verbatim = append(fresh.verbatim, m)
		}
	}
	*b = fresh
	return nil
}

// SetContentInUnit loads decl, which must appear in unit, and takes the
// usings of unit and the namespaces enclosing decl.
func (b *TypeBuilder) SetContentInUnit(unit *syntax.CompilationUnit, decl *syntax.TypeDecl) error {
	path, ok := findDecl(unit.Members, decl, nil)
	if !ok {
		return errors.Newf("type %s not found in compilation unit", syntax.IdentifierText(decl.Identifier))
	}
	if err := b.SetContent(decl); err != nil {
		return err
	}
	b.usings = slices.Clone(unit.Usings)
	b.namespace = nil
	if len(path) > 0 {
		b.namespace = syntax.MustParseName(strings.Join(path, "."))
	}
	return nil
}

// findDecl returns the names of the namespaces enclosing target.
func findDecl(members []syntax.Member, target *syntax.TypeDecl, path []string) ([]string, bool) {
	for _, m := range members {
		switch m := m.(type) {
		case *syntax.NamespaceDecl:
			if found, ok := findDecl(m.Members, target, append(slices.Clip(path), syntax.Text(m.Name))); ok {
				return found, true
			}
		case *syntax.TypeDecl:
			if m == target {
				return path, true
			}
			if _, ok := findDecl(m.Members, target, nil); ok {
				return path, true
			}
		}
	}
	return nil, false
}

// Build returns the type declaration after running the rewriters.
func (b *TypeBuilder) Build() (*syntax.TypeDecl, error) {
	decl, err := b.declaration()
	if err != nil {
		return nil, err
	}
	return finish(&b.rewriters, decl)
}

// BuildCompilationUnit places the declaration in its namespace, when one is
// set, after the usings, and runs the rewriters over the whole unit.
func (b *TypeBuilder) BuildCompilationUnit() (*syntax.CompilationUnit, error) {
	decl, err := b.declaration()
	if err != nil {
		return nil, err
	}
	var top syntax.Member = decl
	if b.namespace != nil {
		top = syntax.NewNamespace(b.namespace, decl)
	}
	return finish(&b.rewriters, syntax.NewCompilationUnit(slices.Clone(b.usings), top))
}

// Render returns the text of BuildCompilationUnit.
func (b *TypeBuilder) Render() (string, error) {
	unit, err := b.BuildCompilationUnit()
	if err != nil {
		return "", err
	}
	return syntax.Render(unit), nil
}

func (b *TypeBuilder) declaration() (*syntax.TypeDecl, error) {
	if b.err != nil {
		return nil, b.err
	}
	decl := syntax.NewTypeDecl(b.keyword, "")
	decl.Identifier = b.identifier
	decl.Attributes = slices.Clone(b.attributes)
	decl.Modifiers = b.modifiers.Tokens()
	if len(b.typeParameters) > 0 {
		decl.TypeParameters = &syntax.TypeParameterList{Parameters: slices.Clone(b.typeParameters)}
	}
	if len(b.baseTypes) > 0 {
		decl.BaseList = syntax.NewBaseList(slices.Clone(b.baseTypes)...)
	}

	var err error
	if decl.Members, err = buildAll[*syntax.FieldDecl](decl.Members, b.fields); err != nil {
		return nil, err
	}
	if decl.Members, err = buildAll[*syntax.ConstructorDecl](decl.Members, b.constructors); err != nil {
		return nil, err
	}
	if decl.Members, err = buildAll[*syntax.PropertyDecl](decl.Members, b.properties); err != nil {
		return nil, err
	}
	if decl.Members, err = buildAll[*syntax.MethodDecl](decl.Members, b.methods); err != nil {
		return nil, err
	}
	if decl.Members, err = buildAll[*syntax.TypeDecl](decl.Members, b.nested); err != nil {
		return nil, err
	}
	decl.Members = append(decl.Members, b.verbatim...)
	return decl, nil
}

type memberBuilder[N syntax.Member] interface {
	Build() (N, error)
}

// buildAll appends every built member to out, skipping members a rewriter
// deleted.
func buildAll[N syntax.Member, B memberBuilder[N]](out []syntax.Member, builders []B) ([]syntax.Member, error) {
	for _, mb := range builders {
		m, err := mb.Build()
		if err != nil {
			return nil, err
		}
		if !syntax.IsNil(m) {
			out = append(out, m)
		}
	}
	return out, nil
}
