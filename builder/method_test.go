package builder

import (
	"testing"

	"github.com/csforge/csforge/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MethodBuilder(t *testing.T) {
	tests := []struct {
		name  string
		build func() *MethodBuilder
		want  string
	}{
		{
			name:  "defaults to void with an empty body",
			build: func() *MethodBuilder { return NewMethod("Run") },
			want:  "void Run(){}",
		},
		{
			name: "parameters and body",
			build: func() *MethodBuilder {
				return NewMethod("Twice").Public().Returns(T("int")).HasParameter("x", T("int")).
					WithBody(func(body *BodyBuilder) {
						body.Return(syntax.NewBinary(syntax.IdentName("x"), "*", syntax.IntLiteral(2)))
					})
			},
			want: "public int Twice(int x){return x*2;}",
		},
		{
			name: "type parameters continue numbering",
			build: func() *MethodBuilder {
				return NewMethod("Map").HasTypeParameter("TKey").HasTypeParameterCount(2)
			},
			want: "void Map<TKey,T1,T2>(){}",
		},
		{
			name:  "abstract drops the body",
			build: func() *MethodBuilder { return NewMethod("Run").Public().Virtual().Abstract() },
			want:  "public abstract void Run();",
		},
		{
			name:  "override replaces virtual",
			build: func() *MethodBuilder { return NewMethod("Run").Public().Static().Virtual().Override() },
			want:  "public override void Run(){}",
		},
		{
			name:  "sealed override",
			build: func() *MethodBuilder { return NewMethod("Run").Public().Abstract().Override().Sealed() },
			want:  "public sealed override void Run();",
		},
		{
			name:  "hide base",
			build: func() *MethodBuilder { return NewMethod("Run").Override().HideBase() },
			want:  "new void Run(){}",
		},
		{
			name:  "expression body",
			build: func() *MethodBuilder { return NewMethod("Now").Returns(T("long")).WithExpressionBody(syntax.IdentName("ticks")) },
			want:  "long Now()=>ticks;",
		},
		{
			name:  "reset clears the body",
			build: func() *MethodBuilder { return NewMethod("Run").Unsafe().WithBody(func(b *BodyBuilder) { b.ReturnVoid() }).Reset() },
			want:  "void Run(){}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl, err := tt.build().Build()
			assert.Equal(t, tt.want, render(t, decl, err))
		})
	}
}

func Test_MethodBuilderAsync(t *testing.T) {
	tests := []struct {
		name    string
		returns syntax.Type
		want    string
	}{
		{name: "void", returns: Void(), want: "async System.Threading.Tasks.Task Run(){}"},
		{name: "value", returns: T("int"), want: "async System.Threading.Tasks.Task<int> Run(){}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once, err := NewMethod("Run").Returns(tt.returns).Async().Build()
			assert.Equal(t, tt.want, render(t, once, err))

			twice, err := NewMethod("Run").Returns(tt.returns).Async().Async().Build()
			require.NoError(t, err)
			assert.True(t, syntax.Equal(once, twice), syntax.Diff(once, twice))
		})
	}
}

func Test_MethodRoundTrip(t *testing.T) {
	decl := syntax.NewMethod(T("string"), "Format", syntax.NewParameter(T("object"), "value"))
	decl.Modifiers = []syntax.Token{syntax.Tok(syntax.PublicKeyword), syntax.Tok(syntax.StaticKeyword)}
	decl.TypeParameters = syntax.NewTypeParameterList("T")
	decl.Body = syntax.NewBlock(syntax.NewReturn(syntax.NewInvocation(syntax.NewMemberAccess(syntax.IdentName("value"), "ToString"))))

	built, err := MethodFrom(decl).Build()
	require.NoError(t, err)
	assert.True(t, syntax.Equal(decl, built), syntax.Diff(decl, built))
}

func Test_ConstructorBuilder(t *testing.T) {
	tests := []struct {
		name  string
		build func() *ConstructorBuilder
		want  string
	}{
		{
			name:  "empty",
			build: func() *ConstructorBuilder { return NewConstructor("Person").Public() },
			want:  "public Person(){}",
		},
		{
			name: "base initializer",
			build: func() *ConstructorBuilder {
				return NewConstructor("Person").Public().HasParameter("name", T("string")).
					WithBaseInitializer(syntax.IdentName("name"))
			},
			want: "public Person(string name):base(name){}",
		},
		{
			name: "this initializer",
			build: func() *ConstructorBuilder {
				return NewConstructor("Person").WithThisInitializer(syntax.StringLiteral("anon"), syntax.IntLiteral(0))
			},
			want: `Person():this("anon",0){}`,
		},
		{
			name:  "static",
			build: func() *ConstructorBuilder { return NewConstructor("Cache").Static() },
			want:  "static Cache(){}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl, err := tt.build().Build()
			assert.Equal(t, tt.want, render(t, decl, err))
		})
	}
}

func Test_ConstructorRoundTrip(t *testing.T) {
	decl := syntax.NewConstructor("Person", syntax.NewParameter(T("string"), "name"))
	decl.Modifiers = []syntax.Token{syntax.Tok(syntax.ProtectedKeyword)}
	decl.Initializer = syntax.NewConstructorInitializer(syntax.BaseKeyword, syntax.IdentName("name"))

	built, err := ConstructorFrom(decl).Build()
	require.NoError(t, err)
	assert.True(t, syntax.Equal(decl, built), syntax.Diff(decl, built))
}

func Test_BodyBuilder(t *testing.T) {
	body := NewBody().
		DeclareVariable(T("int"), "total", syntax.IntLiteral(0)).
		DeclareVar("name", syntax.StringLiteral("x")).
		AddStatement("total += 1;").
		AddExpression(syntax.NewInvocation(syntax.IdentName("Log"), syntax.IdentName("total"))).
		ReturnRaw("total")
	require.Equal(t, 5, body.Len())

	block, err := body.Build()
	assert.Equal(t, `{int total=0;var name="x";total += 1;Log(total);return total;}`, render(t, block, err))

	block, err = body.Reset().ReturnVoid().Build()
	assert.Equal(t, "{return;}", render(t, block, err))
}

func Test_BodyBuilderNormalized(t *testing.T) {
	block, err := NewBody().NormalizeWhitespace().
		AddStatement("Work();").
		ReturnVoid().
		Build()
	assert.Equal(t, "{\n    Work();\n\n    return;\n}\n", render(t, block, err))
}
