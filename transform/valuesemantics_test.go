package transform

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getOnly(typ syntax.TokenKind, name string) *syntax.PropertyDecl {
	p := syntax.NewProperty(predefined(typ), name, syntax.NewAccessor(syntax.GetKeyword))
	p.Modifiers = mods(syntax.PublicKeyword)
	return p
}

func valueClass(name string, members ...syntax.Member) *syntax.TypeDecl {
	cls := syntax.NewClass(name)
	cls.Modifiers = mods(syntax.PublicKeyword)
	cls.Members = members
	return cls
}

func synthesize(t *testing.T, v ValueSemantics, n syntax.Node) string {
	t.Helper()
	out, err := v.Rewrite(n)
	require.NoError(t, err)
	return normalize(t, Normalizer{}, out)
}

func Test_ValueSemanticsMembers(t *testing.T) {
	settable := syntax.NewProperty(predefined(syntax.StringKeyword), "Nick",
		syntax.NewAccessor(syntax.GetKeyword), syntax.NewAccessor(syntax.SetKeyword))
	settable.Modifiers = mods(syntax.PublicKeyword)
	hidden := syntax.NewProperty(predefined(syntax.IntKeyword), "Secret", syntax.NewAccessor(syntax.GetKeyword))

	cls := valueClass("Person",
		getOnly(syntax.StringKeyword, "Name"),
		getOnly(syntax.IntKeyword, "Age"),
		settable,
		hidden,
	)

	want := "public class Person\n" +
		"{\n" +
		"    public Person(string name, int age)\n" +
		"    {\n" +
		"        Name = name;\n" +
		"        Age = age;\n" +
		"    }\n" +
		"\n" +
		"    public string Name { get; }\n" +
		"    public int Age { get; }\n" +
		"    public string Nick { get; set; }\n" +
		"    int Secret { get; }\n" +
		"\n" +
		"    public override bool Equals(object obj)\n" +
		"    {\n" +
		"        if (!(obj is Person other))\n" +
		"        {\n" +
		"            return false;\n" +
		"        }\n" +
		"\n" +
		"        return this.Name == other.Name && this.Age == other.Age;\n" +
		"    }\n" +
		"\n" +
		"    public override int GetHashCode()\n" +
		"    {\n" +
		"        var hash = new HashCode();\n" +
		"        hash.Add(Name);\n" +
		"        hash.Add(Age);\n" +
		"\n" +
		"        return hash.ToHashCode();\n" +
		"    }\n" +
		"}\n"
	assert.Equal(t, want, synthesize(t, ValueSemantics{}, cls))
}

func Test_ValueSemanticsPropertyOrder(t *testing.T) {
	tests := []struct {
		name   string
		props  []syntax.Member
		ctor   string
		equals string
	}{
		{
			name:   "name then age",
			props:  []syntax.Member{getOnly(syntax.StringKeyword, "Name"), getOnly(syntax.IntKeyword, "Age")},
			ctor:   "public Person(string name, int age)",
			equals: "return this.Name == other.Name && this.Age == other.Age;",
		},
		{
			name:   "age then name",
			props:  []syntax.Member{getOnly(syntax.IntKeyword, "Age"), getOnly(syntax.StringKeyword, "Name")},
			ctor:   "public Person(int age, string name)",
			equals: "return this.Age == other.Age && this.Name == other.Name;",
		},
		{
			name:   "no equality properties",
			props:  nil,
			ctor:   "public Person() { }",
			equals: "return true;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := synthesize(t, ValueSemantics{}, valueClass("Person", tt.props...))
			assert.Contains(t, got, tt.ctor)
			assert.Contains(t, got, tt.equals)
		})
	}
}

func Test_ValueSemanticsToString(t *testing.T) {
	cls := valueClass("Person", getOnly(syntax.StringKeyword, "Name"), getOnly(syntax.IntKeyword, "Age"))

	without := synthesize(t, ValueSemantics{}, cls)
	assert.NotContains(t, without, "ToString")

	got := synthesize(t, ValueSemantics{OverrideToString: true}, cls)
	// the separator follows the last property instead of sitting between them
	assert.Contains(t, got, "    public override string ToString()\n"+
		"    {\n"+
		"        var text = new System.Text.StringBuilder();\n"+
		"        text.Append(\"{ \");\n"+
		"        text.Append($\"{nameof(Name)}: {Name}\");\n"+
		"        text.Append($\"{nameof(Age)}: {Age}\");\n"+
		"        text.Append(\", \");\n"+
		"        text.Append(\" }\");\n"+
		"\n"+
		"        return text.ToString();\n"+
		"    }\n")
}

func Test_ValueSemanticsInertFlags(t *testing.T) {
	cls := valueClass("Person", getOnly(syntax.StringKeyword, "Name"))
	plain := synthesize(t, ValueSemantics{}, cls)
	flagged := synthesize(t, ValueSemantics{IncludePrivateSetters: true, ForceReadOnly: true, ImplementIEquatable: true}, cls)
	assert.Equal(t, plain, flagged)
}

func Test_ValueSemanticsNestedClasses(t *testing.T) {
	inner := syntax.NewClass("Inner")
	inner.Members = []syntax.Member{getOnly(syntax.StringKeyword, "Label")}
	outer := valueClass("Box", getOnly(syntax.IntKeyword, "Size"), inner)

	got := synthesize(t, ValueSemantics{}, outer)
	assert.Contains(t, got, "public Box(int size)")
	assert.Contains(t, got, "public Inner(string label)")
	assert.Contains(t, got, "if (!(obj is Inner other))")
}

func Test_ValueSemanticsGenericSelfType(t *testing.T) {
	cls := valueClass("Pair", getOnly(syntax.IntKeyword, "Left"))
	cls.TypeParameters = syntax.NewTypeParameterList("T", "U")
	got := synthesize(t, ValueSemantics{}, cls)
	assert.Contains(t, got, "if (!(obj is Pair<T, U> other))")
	assert.Contains(t, got, "public Pair(int left)")
}

func Test_ValueSemanticsRejectsStructs(t *testing.T) {
	st := syntax.NewStruct("Point")
	unit := syntax.NewCompilationUnit(nil, syntax.NewNamespace(syntax.IdentName("Geometry"), st))

	_, err := ValueSemantics{}.Rewrite(unit)
	require.Error(t, err)
	var shape *ShapeUnsupportedError
	require.True(t, errors.As(err, &shape))
	assert.Equal(t, syntax.KindStruct, shape.Kind)
}
