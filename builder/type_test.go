package builder

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/syntax"
	"github.com/csforge/csforge/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func person() *TypeBuilder {
	b := NewType("Person").Public()
	b.HasMethod("Greet").WithBody(func(body *BodyBuilder) { body.AddStatement("Print(Name);") })
	b.Property("Name", T("string")).WithSetter()
	b.Field("age", T("int"))
	b.WithDefaultConstructor()
	return b
}

func Test_TypeBuilderMemberOrder(t *testing.T) {
	decl, err := person().Build()
	assert.Equal(t,
		"public class Person{private int age;public Person(){}public string Name{get;set;}public void Greet(){Print(Name);}}",
		render(t, decl, err))
}

func Test_TypeBuilderNormalized(t *testing.T) {
	decl, err := person().Namespace("Acme.Models").Using("System").NormalizeWhitespace().BuildCompilationUnit()
	want := "using System;\n" +
		"\n" +
		"namespace Acme.Models\n" +
		"{\n" +
		"    public class Person\n" +
		"    {\n" +
		"        private int age;\n" +
		"\n" +
		"        public Person() { }\n" +
		"\n" +
		"        public string Name { get; set; }\n" +
		"\n" +
		"        public void Greet()\n" +
		"        {\n" +
		"            Print(Name);\n" +
		"        }\n" +
		"    }\n" +
		"}\n"
	assert.Equal(t, want, render(t, decl, err))
}

func Test_TypeBuilderBaseTypes(t *testing.T) {
	tests := []struct {
		name  string
		build func(*TypeBuilder)
		want  string
	}{
		{
			name:  "extends goes first",
			build: func(b *TypeBuilder) { b.Implements(T("IA")).Extends(T("Base")).Implements(T("IB")) },
			want:  "class Widget:Base,IA,IB{}",
		},
		{
			name:  "later extends wins the front",
			build: func(b *TypeBuilder) { b.Extends(T("First")).Extends(T("Second")) },
			want:  "class Widget:Second,First{}",
		},
		{
			name:  "without base types",
			build: func(b *TypeBuilder) { b.Extends(T("Base")).WithoutBaseTypes() },
			want:  "class Widget{}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewType("Widget")
			tt.build(b)
			decl, err := b.Build()
			assert.Equal(t, tt.want, render(t, decl, err))
		})
	}
}

func Test_TypeBuilderTypeParameters(t *testing.T) {
	tests := []struct {
		name  string
		build func(*TypeBuilder)
		want  string
	}{
		{name: "append", build: func(b *TypeBuilder) { b.HasTypeParameter("TKey").HasTypeParameter("TValue") }, want: "class Map<TKey,TValue>{}"},
		{name: "list replaces", build: func(b *TypeBuilder) { b.HasTypeParameter("TKey").HasTypeParameters("A", "B") }, want: "class Map<A,B>{}"},
		{name: "count replaces", build: func(b *TypeBuilder) { b.HasTypeParameter("TKey").HasTypeParameterCount(3) }, want: "class Map<T0,T1,T2>{}"},
		{name: "none", build: func(b *TypeBuilder) { b.HasTypeParameterCount(2).WithoutTypeParameters() }, want: "class Map{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewType("Map")
			tt.build(b)
			decl, err := b.Build()
			assert.Equal(t, tt.want, render(t, decl, err))
		})
	}
}

func Test_TypeBuilderKinds(t *testing.T) {
	decl, err := NewType("Point").ValueType().Build()
	assert.Equal(t, "struct Point{}", render(t, decl, err))

	decl, err = NewType("IClock").Public().InterfaceType().Build()
	assert.Equal(t, "public interface IClock{}", render(t, decl, err))

	decl, err = NewType("Cache").Internal().Static().Partial().Build()
	assert.Equal(t, "internal static partial class Cache{}", render(t, decl, err))
}

func Test_TypeBuilderNamespaces(t *testing.T) {
	tests := []struct {
		name  string
		build func(*TypeBuilder)
		want  string
	}{
		{name: "none", build: func(*TypeBuilder) {}, want: "class Job{}"},
		{name: "set", build: func(b *TypeBuilder) { b.Namespace("Acme") }, want: "namespace Acme{class Job{}}"},
		{name: "sub without namespace", build: func(b *TypeBuilder) { b.SubNamespace("Jobs") }, want: "namespace Jobs{class Job{}}"},
		{name: "sub", build: func(b *TypeBuilder) { b.Namespace("Acme").SubNamespace("Jobs.Nightly") }, want: "namespace Acme.Jobs.Nightly{class Job{}}"},
		{
			name:  "usings keep duplicates",
			build: func(b *TypeBuilder) { b.Using("System", "System.Linq", "System") },
			want:  "using System;using System.Linq;using System;class Job{}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewType("Job")
			tt.build(b)
			out, err := b.Render()
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func Test_TypeBuilderInvalidNamespace(t *testing.T) {
	_, err := NewType("Job").Namespace("Acme..Jobs").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "namespace")
}

func Test_TypeBuilderRoundTrip(t *testing.T) {
	src := syntax.NewClass("Order")
	src.Modifiers = []syntax.Token{syntax.Tok(syntax.PublicKeyword), syntax.Tok(syntax.SealedKeyword)}
	src.TypeParameters = syntax.NewTypeParameterList("T")
	src.BaseList = syntax.NewBaseList(T("Entity"), T("IOrder"))

	id := syntax.NewField(T("System.Guid"), "id", nil)
	id.Modifiers = []syntax.Token{syntax.Tok(syntax.PrivateKeyword), syntax.Tok(syntax.ReadOnlyKeyword)}
	ctor := syntax.NewConstructor("Order")
	total := syntax.NewProperty(T("decimal"), "Total", syntax.NewAccessor(syntax.GetKeyword))
	submit := syntax.NewMethod(T("void"), "Submit")
	line := syntax.NewClass("Line")
	line.Members = []syntax.Member{syntax.NewField(T("int"), "qty", nil)}
	status := syntax.NewEnum("Status", syntax.NewEnumMember("Open", nil))
	src.Members = []syntax.Member{id, ctor, total, submit, line, status}

	b, err := TypeFrom(src)
	require.NoError(t, err)
	built, err := b.Build()
	require.NoError(t, err)
	assert.True(t, syntax.Equal(src, built), syntax.Diff(src, built))
}

func Test_TypeBuilderSetContentRejectsMultiVariableFields(t *testing.T) {
	field := syntax.NewField(T("int"), "x", nil)
	field.Declaration.Variables = append(field.Declaration.Variables, syntax.NewDeclarator("y", nil))
	src := syntax.NewClass("Pair")
	src.Members = []syntax.Member{field}

	_, err := TypeFrom(src)
	var shape *ShapeUnsupportedError
	assert.True(t, errors.As(err, &shape))
}

func Test_TypeBuilderSetContentInUnit(t *testing.T) {
	target := syntax.NewClass("Invoice")
	inner := syntax.NewNamespace(syntax.IdentName("Billing"), target)
	unit := syntax.NewCompilationUnit(
		[]*syntax.UsingDirective{syntax.NewUsing(syntax.IdentName("System"))},
		syntax.NewNamespace(syntax.IdentName("Acme"), inner),
	)

	b := NewType("")
	require.NoError(t, b.SetContentInUnit(unit, target))
	assert.Equal(t, "Acme.Billing", b.NamespaceName())
	assert.Equal(t, "Invoice", b.Identifier())

	out, err := b.Render()
	require.NoError(t, err)
	assert.Equal(t, "using System;namespace Acme.Billing{class Invoice{}}", out)

	err = b.SetContentInUnit(unit, syntax.NewClass("Missing"))
	assert.Error(t, err)
}

func Test_TypeBuilderValueSemantics(t *testing.T) {
	b := NewType("Money").Public().UseValueSemantics(transform.ValueSemantics{}).NormalizeWhitespace()
	b.Property("Amount", T("decimal"))
	b.Property("Currency", T("string"))

	decl, err := b.Build()
	got := render(t, decl, err)
	assert.Contains(t, got, "public Money(decimal amount, string currency)")
	assert.Contains(t, got, "return this.Amount == other.Amount && this.Currency == other.Currency;")
	assert.Contains(t, got, "hash.Add(Currency);")
}

func Test_TypeBuilderValueSemanticsRejectsStructs(t *testing.T) {
	_, err := NewType("Point").ValueType().UseValueSemantics(transform.ValueSemantics{}).Build()
	var shape *ShapeUnsupportedError
	require.True(t, errors.As(err, &shape))
	assert.Equal(t, syntax.KindStruct, shape.Kind)
}

func Test_TypeBuilderExtractInterface(t *testing.T) {
	b := person().ExtractInterfaceWith(transform.InterfaceExtractor{Rename: true})
	decl, err := b.Build()
	assert.Equal(t, "public interface IPerson{string Name{get;set;}void Greet();}", render(t, decl, err))
}

func Test_TypeBuilderHoistUsings(t *testing.T) {
	b := NewType("Clock").Namespace("Acme").HoistUsings()
	b.Property("Now", T("System.DateTime"))
	out, err := b.Render()
	require.NoError(t, err)
	assert.Equal(t, "using System;namespace Acme{class Clock{public DateTime Now{get;}}}", out)
}

func Test_TypeBuilderNestedTypes(t *testing.T) {
	b := NewType("Outer")
	b.NestedType("Inner").Property("Value", T("int"))
	b.Field("count", T("int"))

	decl, err := b.Build()
	assert.Equal(t, "class Outer{private int count;public class Inner{public int Value{get;}}}", render(t, decl, err))
}

func Test_TypeBuilderReset(t *testing.T) {
	b := person().Namespace("Acme").NormalizeWhitespace()
	b.Reset()
	assert.Empty(t, b.Rewriters())
	out, err := b.Render()
	require.NoError(t, err)
	assert.Equal(t, "class Person{}", out)
}
