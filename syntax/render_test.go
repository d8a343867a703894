package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RenderJoinsWords(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "field without trivia",
			node: NewField(NewPredefinedType(IntKeyword), "count", IntLiteral(1)),
			want: "int count=1;",
		},
		{
			name: "method with parameters",
			node: NewMethod(NewPredefinedType(VoidKeyword), "Run",
				NewParameter(NewPredefinedType(StringKeyword), "name"),
				NewParameter(IdentName("Options"), "options")),
			want: "void Run(string name,Options options){}",
		},
		{
			name: "generic qualified name",
			node: MustParseTypeName("System.Collections.Generic.Dictionary<string, int[]>"),
			want: "System.Collections.Generic.Dictionary<string,int[]>",
		},
		{
			name: "negated pattern",
			node: NewNot(NewParenthesized(NewIsPattern(IdentName("obj"), IdentName("Person"), "other"))),
			want: "!(obj is Person other)",
		},
		{
			name: "return statement",
			node: NewReturn(NewObjectCreation(IdentName("HashCode"))),
			want: "return new HashCode();",
		},
		{
			name: "interpolated string",
			node: NewInterpolatedString(
				NewInterpolation(NewInvocation(IdentName("nameof"), IdentName("Name"))),
				NewInterpolatedText(": "),
				NewInterpolation(IdentName("Name")),
			),
			want: `$"{nameof(Name)}: {Name}"`,
		},
		{
			name: "keyword identifier is escaped",
			node: IdentName("class"),
			want: "@class",
		},
		{
			name: "aliased using",
			node: NewAliasUsing("Json", MustParseName("System.Text.Json")),
			want: "using Json=System.Text.Json;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.node))
		})
	}
}

func Test_RenderSpacesAfterType(t *testing.T) {
	attributed := NewField(IdentName("Guid"), "id", nil)
	attributed.Attributes = []*AttributeList{NewAttributeList(NewAttribute(IdentName("NonSerialized")))}
	attributed.Modifiers = []Token{Tok(PrivateKeyword)}

	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "generic field",
			node: NewField(NewGenericName("List", NewPredefinedType(IntKeyword)), "xs", nil),
			want: "List<int> xs;",
		},
		{
			name: "array property",
			node: NewProperty(NewArrayType(NewPredefinedType(IntKeyword)), "Ys", NewAccessor(GetKeyword)),
			want: "int[] Ys{get;}",
		},
		{
			name: "nullable property",
			node: NewProperty(NewNullableType(NewPredefinedType(IntKeyword)), "Next", NewAccessor(GetKeyword)),
			want: "int? Next{get;}",
		},
		{
			name: "generic method",
			node: NewMethod(NewGenericName("Task", NewPredefinedType(IntKeyword)), "Run"),
			want: "Task<int> Run(){}",
		},
		{
			name: "array parameter",
			node: NewParameter(NewArrayType(NewPredefinedType(StringKeyword)), "items"),
			want: "string[] items",
		},
		{
			name: "generic pattern",
			node: NewIsPattern(IdentName("obj"), NewGenericName("Pair", IdentName("T"), IdentName("U")), "other"),
			want: "obj is Pair<T,U> other",
		},
		{
			name: "generic invocation target",
			node: NewObjectCreation(NewGenericName("List", NewPredefinedType(IntKeyword))),
			want: "new List<int>()",
		},
		{
			name: "attribute brackets stay tight",
			node: attributed,
			want: "[NonSerialized]private Guid id;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.node))
		})
	}
}

func Test_RenderKeepsTrivia(t *testing.T) {
	u := NewUsing(IdentName("System"))
	u.Using = u.Using.WithLeading(LineComment("imports")...)
	u.Semicolon = u.Semicolon.WithTrailing(EndOfLine)

	assert.Equal(t, "// imports\nusing System;\n", Render(u))
}

func Test_RenderNil(t *testing.T) {
	var decl *TypeDecl
	assert.Equal(t, "", Render(decl))
	assert.Equal(t, "", Render(nil))
}
