package builder

import (
	"reflect"

	"github.com/csforge/csforge/syntax"
)

var predefined = map[reflect.Type]syntax.TokenKind{
	reflect.TypeFor[bool]():    syntax.BoolKeyword,
	reflect.TypeFor[int8]():    syntax.SByteKeyword,
	reflect.TypeFor[int16]():   syntax.ShortKeyword,
	reflect.TypeFor[int32]():   syntax.IntKeyword,
	reflect.TypeFor[int]():     syntax.IntKeyword,
	reflect.TypeFor[int64]():   syntax.LongKeyword,
	reflect.TypeFor[uint8]():   syntax.ByteKeyword,
	reflect.TypeFor[uint16]():  syntax.UShortKeyword,
	reflect.TypeFor[uint32]():  syntax.UIntKeyword,
	reflect.TypeFor[uint]():    syntax.UIntKeyword,
	reflect.TypeFor[uint64]():  syntax.ULongKeyword,
	reflect.TypeFor[float32](): syntax.FloatKeyword,
	reflect.TypeFor[float64](): syntax.DoubleKeyword,
	reflect.TypeFor[Decimal](): syntax.DecimalKeyword,
	reflect.TypeFor[Char]():    syntax.CharKeyword,
	reflect.TypeFor[string]():  syntax.StringKeyword,
	reflect.TypeFor[any]():     syntax.ObjectKeyword,
}

// Void is the void return type.
func Void() syntax.Type { return syntax.NewPredefinedType(syntax.VoidKeyword) }

// TypeFor returns the C# type for the Go type T. See TypeOf.
func TypeFor[T any]() syntax.Type {
	return TypeOf(reflect.TypeFor[T]())
}

// TypeOf maps a Go type onto a C# type reference. Scalars map to keyword
// types, slices and arrays to C# arrays, pointers to their element type,
// and any other named type to its bare name.
func TypeOf(t reflect.Type) syntax.Type {
	if k, ok := predefined[t]; ok {
		return syntax.NewPredefinedType(k)
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return syntax.NewArrayType(TypeOf(t.Elem()))
	case reflect.Pointer:
		return TypeOf(t.Elem())
	}
	if t.Name() == "" {
		return syntax.NewPredefinedType(syntax.ObjectKeyword)
	}
	return syntax.IdentName(t.Name())
}

// T parses a type name written in code and panics if it is malformed.
func T(text string) syntax.Type {
	return syntax.MustParseTypeName(text)
}

func isVoid(t syntax.Type) bool {
	p, ok := t.(*syntax.PredefinedType)
	return ok && p != nil && p.Keyword.Is(syntax.VoidKeyword)
}
