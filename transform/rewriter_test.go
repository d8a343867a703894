package transform

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rename(label, to string) Rewriter {
	return Func(label, func(n syntax.Node) (syntax.Node, error) {
		cls, ok := n.(*syntax.TypeDecl)
		if !ok {
			return n, nil
		}
		c := *cls
		c.Identifier = syntax.Ident(to)
		return &c, nil
	})
}

func Test_PipelineOrder(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *Pipeline)
		want  []string
	}{
		{
			name: "insertion order",
			build: func(p *Pipeline) {
				p.Append(rename("a", "A"))
				p.Append(rename("b", "B"))
			},
			want: []string{"a", "b"},
		},
		{
			name: "priority first",
			build: func(p *Pipeline) {
				p.Add(Normalizer{}, NormalizerPriority)
				p.Add(Stripper{}, StripperPriority)
				p.Append(rename("a", "A"))
			},
			want: []string{"a", "stripper", "normalizer"},
		},
		{
			name: "stable for equal priorities",
			build: func(p *Pipeline) {
				p.Add(rename("second", "B"), 5)
				p.Add(rename("first", "A"), 1)
				p.Add(rename("third", "C"), 5)
			},
			want: []string{"first", "second", "third"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Pipeline
			tt.build(&p)
			assert.Equal(t, tt.want, p.Names())
		})
	}
}

func Test_PipelineRun(t *testing.T) {
	var p Pipeline
	p.Append(rename("first", "Draft"))
	p.Append(rename("last", "Final"))

	out, err := p.Run(syntax.NewClass("Person"))
	require.NoError(t, err)
	assert.Equal(t, "class Final{}", syntax.Render(out))

	p.Reset()
	assert.Equal(t, 0, p.Len())
}

func Test_PipelineRunErrors(t *testing.T) {
	boom := errors.New("boom")
	var calls int
	var p Pipeline
	p.Append(Func("failing", func(syntax.Node) (syntax.Node, error) { return nil, boom }))
	p.Append(Func("never", func(n syntax.Node) (syntax.Node, error) { calls++; return n, nil }))

	_, err := p.Run(syntax.NewClass("Person"))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "rewriter failing")
	assert.Zero(t, calls)
}

func Test_PipelineRunDeleted(t *testing.T) {
	var calls int
	var p Pipeline
	p.Append(Func("delete", func(syntax.Node) (syntax.Node, error) { return nil, nil }))
	p.Append(Func("never", func(n syntax.Node) (syntax.Node, error) { calls++; return n, nil }))

	out, err := p.Run(syntax.NewClass("Person"))
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Zero(t, calls)
}

func Test_PipelineAddNil(t *testing.T) {
	var p Pipeline
	assert.Panics(t, func() { p.Add(nil, 0) })
}

func Test_Stripper(t *testing.T) {
	field := syntax.NewField(syntax.NewPredefinedType(syntax.IntKeyword), "count", syntax.IntLiteral(1))
	field.Modifiers = []syntax.Token{
		syntax.Tok(syntax.PrivateKeyword).WithLeading(append(syntax.LineComment("counter"), syntax.Space, syntax.Space)...),
	}
	field.Semicolon = field.Semicolon.WithTrailing(syntax.EndOfLine)

	tests := []struct {
		name string
		node syntax.Node
		want string
	}{
		{
			name: "keeps line comment break",
			node: field,
			want: "// counter\nprivate int count=1;",
		},
		{
			name: "normalized class",
			node: func() syntax.Node {
				out, err := Normalizer{}.Rewrite(personClass())
				require.NoError(t, err)
				return out
			}(),
			want: `public class Person{private int age;public Person(){}public string Name{get;set;}public void Greet(){Print("hi");return;}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Stripper{}.Rewrite(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, syntax.Render(out))
		})
	}
}

func Test_ShapeUnsupportedError(t *testing.T) {
	err := Unsupported(syntax.KindField, "%d variables", 2)
	var shape *ShapeUnsupportedError
	require.True(t, errors.As(err, &shape))
	assert.Equal(t, syntax.KindField, shape.Kind)
	assert.Equal(t, "unsupported Field: 2 variables", err.Error())
}
