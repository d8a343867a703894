// Package schema describes C# types in YAML and turns the description into
// type builders.
//
//	namespace: Acme.Models
//	usings: [System]
//	types:
//	  - name: Person
//	    access: public
//	    properties:
//	      - {name: Name, type: string, setter: set}
//	    methods:
//	      - name: Greet
//	        body: ["Console.WriteLine(Name);"]
package schema

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/builder"
	"github.com/csforge/csforge/syntax"
	"github.com/csforge/csforge/transform"
	"gopkg.in/yaml.v3"
)

// Layout selects the whitespace rewriter added to every type.
type Layout string

const (
	LayoutNormalize Layout = "normalize"
	LayoutCompact   Layout = "compact"
	LayoutNone      Layout = "none"
)

type File struct {
	Namespace string   `yaml:"namespace"`
	Usings    []string `yaml:"usings"`
	Layout    Layout   `yaml:"layout"`
	Indent    string   `yaml:"indent"`
	// PropertySpacing puts a blank line between properties.
	PropertySpacing bool   `yaml:"propertySpacing"`
	Types           []Type `yaml:"types"`
}

type Type struct {
	Name           string   `yaml:"name"`
	Kind           string   `yaml:"kind"`
	Access         string   `yaml:"access"`
	Modifiers      []string `yaml:"modifiers"`
	SubNamespace   string   `yaml:"subNamespace"`
	TypeParameters []string `yaml:"typeParameters"`
	Extends        string   `yaml:"extends"`
	Implements     []string `yaml:"implements"`

	ValueSemantics   bool `yaml:"valueSemantics"`
	ToString         bool `yaml:"toString"`
	ExtractInterface bool `yaml:"extractInterface"`
	HoistUsings      bool `yaml:"hoistUsings"`

	Fields       []Field       `yaml:"fields"`
	Properties   []Property    `yaml:"properties"`
	Constructors []Constructor `yaml:"constructors"`
	Methods      []Method      `yaml:"methods"`
	Nested       []Type        `yaml:"nested"`
}

type Field struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"`
	Access    string   `yaml:"access"`
	Modifiers []string `yaml:"modifiers"`
	Default   any      `yaml:"default"`
	// DefaultExpr is C# source used verbatim as the initializer.
	DefaultExpr string `yaml:"defaultExpr"`
}

type Property struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"`
	Access    string   `yaml:"access"`
	Modifiers []string `yaml:"modifiers"`
	// Setter is empty, "set" or "init".
	Setter      string `yaml:"setter"`
	Expression  string `yaml:"expression"`
	Default     any    `yaml:"default"`
	DefaultExpr string `yaml:"defaultExpr"`
}

type Parameter struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Modifier    string `yaml:"modifier"`
	Default     any    `yaml:"default"`
	DefaultExpr string `yaml:"defaultExpr"`
}

type Constructor struct {
	Access     string      `yaml:"access"`
	Static     bool        `yaml:"static"`
	Parameters []Parameter `yaml:"parameters"`
	Base       []string    `yaml:"base"`
	This       []string    `yaml:"this"`
	Body       []string    `yaml:"body"`
}

type Method struct {
	Name           string      `yaml:"name"`
	Returns        string      `yaml:"returns"`
	Access         string      `yaml:"access"`
	Modifiers      []string    `yaml:"modifiers"`
	TypeParameters []string    `yaml:"typeParameters"`
	Parameters     []Parameter `yaml:"parameters"`
	Body           []string    `yaml:"body"`
	Expression     string      `yaml:"expression"`
}

// Load decodes a schema. Unknown keys are rejected.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty schema")
		}
		return nil, errors.Wrap(err, "decoding schema")
	}
	return &f, nil
}

func LoadFile(path string) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening schema")
	}
	defer r.Close()

	f, err := Load(r)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return f, nil
}

// Builders returns one configured builder per top-level type.
func (f *File) Builders() ([]*builder.TypeBuilder, error) {
	builders := make([]*builder.TypeBuilder, 0, len(f.Types))
	for i, t := range f.Types {
		b, err := f.typeBuilder(t)
		if err != nil {
			return nil, errors.Wrapf(err, "types[%d] %s", i, t.Name)
		}
		if f.Namespace != "" {
			b.Namespace(f.Namespace)
		}
		if t.SubNamespace != "" {
			b.SubNamespace(t.SubNamespace)
		}
		b.Using(f.Usings...)
		switch f.Layout {
		case LayoutNormalize, "":
			b.NormalizeWhitespaceWith(transform.Normalizer{Indent: f.Indent, BlankLineBetweenProperties: f.PropertySpacing})
		case LayoutCompact:
			b.RemoveWhitespace()
		case LayoutNone:
		default:
			return nil, errors.Newf("unknown layout %q", f.Layout)
		}
		builders = append(builders, b)
	}
	return builders, nil
}

// Rendered is the source text of one type.
type Rendered struct {
	Name string
	Text string
}

func (f *File) Render() ([]Rendered, error) {
	builders, err := f.Builders()
	if err != nil {
		return nil, err
	}
	out := make([]Rendered, 0, len(builders))
	for _, b := range builders {
		text, err := b.Render()
		if err != nil {
			return nil, errors.Wrapf(err, "rendering %s", b.Identifier())
		}
		out = append(out, Rendered{Name: b.Identifier(), Text: text})
	}
	return out, nil
}

func (f *File) typeBuilder(t Type) (*builder.TypeBuilder, error) {
	if t.Name == "" {
		return nil, errors.New("type without a name")
	}
	b := builder.NewType(t.Name)

	switch t.Kind {
	case "", "class":
	case "struct":
		b.ValueType()
	case "interface":
		b.InterfaceType()
	default:
		return nil, errors.Newf("unknown kind %q", t.Kind)
	}

	if err := access[*builder.TypeBuilder](b, t.Access); err != nil {
		return nil, err
	}
	for _, m := range t.Modifiers {
		switch m {
		case "sealed":
			b.Sealed()
		case "abstract":
			b.Abstract()
		case "partial":
			b.Partial()
		default:
			if err := modifier[*builder.TypeBuilder](b, m); err != nil {
				return nil, err
			}
		}
	}

	b.HasTypeParameters(t.TypeParameters...)
	if t.Extends != "" {
		typ, err := syntax.ParseTypeName(t.Extends)
		if err != nil {
			return nil, errors.Wrap(err, "extends")
		}
		b.Extends(typ)
	}
	for _, name := range t.Implements {
		typ, err := syntax.ParseTypeName(name)
		if err != nil {
			return nil, errors.Wrap(err, "implements")
		}
		b.Implements(typ)
	}

	for i, fd := range t.Fields {
		if err := field(b, fd); err != nil {
			return nil, errors.Wrapf(err, "fields[%d] %s", i, fd.Name)
		}
	}
	iface := t.Kind == "interface"
	for i, p := range t.Properties {
		if err := property(b, p, iface); err != nil {
			return nil, errors.Wrapf(err, "properties[%d] %s", i, p.Name)
		}
	}
	for i, c := range t.Constructors {
		if err := constructor(b, c); err != nil {
			return nil, errors.Wrapf(err, "constructors[%d]", i)
		}
	}
	for i, m := range t.Methods {
		if err := method(b, m, iface); err != nil {
			return nil, errors.Wrapf(err, "methods[%d] %s", i, m.Name)
		}
	}
	for i, n := range t.Nested {
		nested, err := f.typeBuilder(n)
		if err != nil {
			return nil, errors.Wrapf(err, "nested[%d] %s", i, n.Name)
		}
		if n.Access == "" {
			nested.Public()
		}
		b.WithNestedType(nested)
	}

	if t.ValueSemantics || t.ToString {
		b.UseValueSemantics(transform.ValueSemantics{OverrideToString: t.ToString})
	}
	if t.ExtractInterface {
		b.ExtractInterfaceWith(transform.InterfaceExtractor{Rename: true})
	}
	if t.HoistUsings {
		b.HoistUsings()
	}
	return b, nil
}

func field(t *builder.TypeBuilder, f Field) error {
	typ, err := syntax.ParseTypeName(f.Type)
	if err != nil {
		return err
	}
	b := t.Field(f.Name, typ)
	if err := access[*builder.FieldBuilder](b, f.Access); err != nil {
		return err
	}
	for _, m := range f.Modifiers {
		switch m {
		case "readonly":
			b.ReadOnly()
		case "const":
			b.Const()
		default:
			if err := modifier[*builder.FieldBuilder](b, m); err != nil {
				return err
			}
		}
	}
	if v, ok := defaultValue(f.Default, f.DefaultExpr); ok {
		b.HasDefaultValue(v)
	}
	return nil
}

func property(t *builder.TypeBuilder, p Property, iface bool) error {
	typ, err := syntax.ParseTypeName(p.Type)
	if err != nil {
		return err
	}
	b := t.Property(p.Name, typ)
	if iface && p.Access == "" {
		b.WithoutModifiers()
	}
	if err := access[*builder.PropertyBuilder](b, p.Access); err != nil {
		return err
	}
	for _, m := range p.Modifiers {
		if err := modifier[*builder.PropertyBuilder](b, m); err != nil {
			return err
		}
	}
	switch p.Setter {
	case "":
	case "set":
		b.WithSetter()
	case "init":
		b.WithInitSetter()
	default:
		return errors.Newf("unknown setter %q", p.Setter)
	}
	if p.Expression != "" {
		b.WithExpressionBody(syntax.NewRawExpression(p.Expression))
	}
	if v, ok := defaultValue(p.Default, p.DefaultExpr); ok {
		b.HasDefaultValue(v)
	}
	return nil
}

func constructor(t *builder.TypeBuilder, c Constructor) error {
	b := t.HasConstructor()
	if err := access[*builder.ConstructorBuilder](b, c.Access); err != nil {
		return err
	}
	if c.Static {
		b.Static()
	}
	if err := parameters(c.Parameters, b.Parameter); err != nil {
		return err
	}
	switch {
	case len(c.Base) > 0 && len(c.This) > 0:
		return errors.New("base and this initializers are exclusive")
	case len(c.Base) > 0:
		b.WithBaseInitializer(raw(c.Base)...)
	case len(c.This) > 0:
		b.WithThisInitializer(raw(c.This)...)
	}
	for _, s := range c.Body {
		b.Body().AddStatement(s)
	}
	return nil
}

// Interface methods without a body or access are declared bare.
func method(t *builder.TypeBuilder, m Method, iface bool) error {
	b := t.HasMethod(m.Name)
	if iface && m.Access == "" {
		b.WithoutModifiers()
	}
	if iface && len(m.Body) == 0 && m.Expression == "" {
		b.WithoutBody()
	}
	if m.Returns != "" {
		typ, err := syntax.ParseTypeName(m.Returns)
		if err != nil {
			return errors.Wrap(err, "returns")
		}
		b.Returns(typ)
	}
	if err := access[*builder.MethodBuilder](b, m.Access); err != nil {
		return err
	}
	b.HasTypeParameters(m.TypeParameters...)
	if err := parameters(m.Parameters, b.Parameter); err != nil {
		return err
	}

	for _, s := range m.Body {
		b.Body().AddStatement(s)
	}
	if m.Expression != "" {
		if len(m.Body) > 0 {
			return errors.New("body and expression are exclusive")
		}
		b.WithExpressionBody(syntax.NewRawExpression(m.Expression))
	}

	// Modifiers come last so that abstract can drop the body.
	for _, mod := range m.Modifiers {
		switch mod {
		case "virtual":
			b.Virtual()
		case "override":
			b.Override()
		case "abstract":
			b.Abstract()
		case "sealed":
			b.Sealed()
		case "new":
			b.HideBase()
		case "async":
			b.Async()
		case "unsafe":
			b.Unsafe()
		default:
			if err := modifier[*builder.MethodBuilder](b, mod); err != nil {
				return err
			}
		}
	}
	return nil
}

func parameters(params []Parameter, add func(string, syntax.Type) *builder.ParameterBuilder) error {
	for i, p := range params {
		typ, err := syntax.ParseTypeName(p.Type)
		if err != nil {
			return errors.Wrapf(err, "parameters[%d] %s", i, p.Name)
		}
		b := add(p.Name, typ)
		switch p.Modifier {
		case "":
		case "ref":
			b.Ref()
		case "out":
			b.Out()
		case "in":
			b.In()
		case "params":
			b.Params()
		default:
			return errors.Newf("parameters[%d] %s: unknown modifier %q", i, p.Name, p.Modifier)
		}
		if v, ok := defaultValue(p.Default, p.DefaultExpr); ok {
			b.HasDefaultValue(v)
		}
	}
	return nil
}

type accessible[B any] interface {
	Public() B
	Private() B
	Protected() B
	Internal() B
	ProtectedInternal() B
	PrivateProtected() B
	Static() B
	WithModifier(syntax.TokenKind) B
}

func access[B any](b accessible[B], text string) error {
	switch strings.Join(strings.Fields(text), " ") {
	case "":
	case "public":
		b.Public()
	case "private":
		b.Private()
	case "protected":
		b.Protected()
	case "internal":
		b.Internal()
	case "protected internal", "internal protected":
		b.ProtectedInternal()
	case "private protected", "protected private":
		b.PrivateProtected()
	default:
		return errors.Newf("unknown access %q", text)
	}
	return nil
}

func modifier[B any](b accessible[B], text string) error {
	if text == "static" {
		b.Static()
		return nil
	}
	kind := syntax.KeywordKind(text)
	if !kind.IsModifier() || kind.IsAccessModifier() {
		return errors.WithHint(errors.Newf("unknown modifier %q", text), "set access modifiers with the access key")
	}
	b.WithModifier(kind)
	return nil
}

func defaultValue(v any, expr string) (any, bool) {
	if expr != "" {
		return syntax.NewRawExpression(expr), true
	}
	return v, v != nil
}

func raw(list []string) []syntax.Expr {
	out := make([]syntax.Expr, len(list))
	for i, s := range list {
		out[i] = syntax.NewRawExpression(s)
	}
	return out
}
