package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseTypeName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKind Kind
		want     string
		wantErr  bool
	}{
		{name: "keyword", text: "int", wantKind: KindPredefinedType, want: "int"},
		{name: "simple", text: "Person", wantKind: KindIdentifierName, want: "Person"},
		{name: "qualified", text: "System.Text.StringBuilder", wantKind: KindQualifiedName, want: "System.Text.StringBuilder"},
		{name: "generic", text: "Task< List<string> >", wantKind: KindGenericName, want: "Task<List<string>>"},
		{name: "array of nullable", text: "int?[]", wantKind: KindArrayType, want: "int?[]"},
		{name: "var", text: "var", wantKind: KindIdentifierName, want: "var"},
		{name: "escaped", text: "@event", wantKind: KindIdentifierName, want: "@event"},
		{name: "empty", text: "", wantErr: true},
		{name: "trailing dot", text: "System.", wantErr: true},
		{name: "unclosed generic", text: "List<int", wantErr: true},
		{name: "garbage", text: "a b", wantErr: true},
		{name: "digit", text: "1x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTypeName(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.Kind())
			assert.Equal(t, tt.want, Text(got))
		})
	}
}

func Test_ParseName(t *testing.T) {
	n, err := ParseName("System.Linq")
	require.NoError(t, err)
	assert.True(t, Equal(QualifiedNameOf("System", "Linq"), n))

	_, err = ParseName("int[]")
	assert.Error(t, err)

	assert.Panics(t, func() { MustParseName("") })
}

func Test_IdentifierText(t *testing.T) {
	assert.Equal(t, "class", IdentifierText(Ident("class")))
	assert.Equal(t, "Name", IdentifierText(Ident("Name")))
}
