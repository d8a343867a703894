package builder

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Literal(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "bool", value: true, want: "true"},
		{name: "int", value: 42, want: "42"},
		{name: "negative int32", value: int32(-7), want: "-7"},
		{name: "long", value: int64(9000000000), want: "9000000000L"},
		{name: "byte", value: uint8(255), want: "255"},
		{name: "uint", value: uint32(5), want: "5U"},
		{name: "ulong", value: uint64(5), want: "5UL"},
		{name: "float", value: float32(1.5), want: "1.5F"},
		{name: "double", value: 2.25, want: "2.25"},
		{name: "decimal", value: Decimal("19.99"), want: "19.99m"},
		{name: "char", value: Char('x'), want: "'x'"},
		{name: "string", value: "say \"hi\"", want: `"say \"hi\""`},
		{name: "nil", value: nil, want: "null"},
		{name: "enum", value: EnumMember("Acme.Color", "Red"), want: "Acme.Color.Red"},
		{name: "expression", value: syntax.IdentName("DefaultName"), want: "DefaultName"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Literal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, syntax.Render(e))
		})
	}
}

func Test_LiteralUnsupported(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "struct", value: time.Second},
		{name: "slice", value: []int{1}},
		{name: "nan", value: math.NaN()},
		{name: "bad decimal", value: Decimal("1,5")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Literal(tt.value)
			var unsupported *UnsupportedLiteralError
			require.True(t, errors.As(err, &unsupported))
			assert.NotEmpty(t, unsupported.Error())
		})
	}
}

func Test_TypeOf(t *testing.T) {
	type Address struct{}
	tests := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{name: "int", typ: reflect.TypeFor[int](), want: "int"},
		{name: "long", typ: reflect.TypeFor[int64](), want: "long"},
		{name: "string", typ: reflect.TypeFor[string](), want: "string"},
		{name: "decimal", typ: reflect.TypeFor[Decimal](), want: "decimal"},
		{name: "slice", typ: reflect.TypeFor[[]float64](), want: "double[]"},
		{name: "pointer", typ: reflect.TypeFor[*bool](), want: "bool"},
		{name: "named", typ: reflect.TypeFor[Address](), want: "Address"},
		{name: "any", typ: reflect.TypeFor[any](), want: "object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, syntax.Render(TypeOf(tt.typ)))
		})
	}
	assert.Equal(t, "void", syntax.Render(Void()))
	assert.Equal(t, "char", syntax.Render(TypeFor[Char]()))
}
