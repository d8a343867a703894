package codegen

import (
	"go/types"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/internal/util"
	"github.com/csforge/csforge/syntax"
)

// UnsupportedTypeError reports a Go type that has no C# counterpart.
type UnsupportedTypeError struct {
	Type   types.Type
	Reason string
}

func (e *UnsupportedTypeError) Error() string {
	return "unsupported type " + e.Type.String() + ": " + e.Reason
}

var basicTypes = map[types.BasicKind]syntax.TokenKind{
	types.Bool:    syntax.BoolKeyword,
	types.Int:     syntax.IntKeyword,
	types.Int8:    syntax.SByteKeyword,
	types.Int16:   syntax.ShortKeyword,
	types.Int32:   syntax.IntKeyword,
	types.Int64:   syntax.LongKeyword,
	types.Uint:    syntax.UIntKeyword,
	types.Uint8:   syntax.ByteKeyword,
	types.Uint16:  syntax.UShortKeyword,
	types.Uint32:  syntax.UIntKeyword,
	types.Uint64:  syntax.ULongKeyword,
	types.Float32: syntax.FloatKeyword,
	types.Float64: syntax.DoubleKeyword,
	types.String:  syntax.StringKeyword,
}

// wellKnown maps named types from the standard library to framework types.
var wellKnown = map[string]string{
	"time.Time":     "System.DateTime",
	"time.Duration": "System.TimeSpan",
	"net/url.URL":   "System.Uri",
	"math/big.Int":  "System.Numerics.BigInteger",
}

// TypeMapper translates Go types into C# type syntax.
type TypeMapper struct {
	// Known holds the named types that are generated alongside, keyed by
	// their type name, with the C# name to refer to them by.
	Known map[*types.TypeName]string
}

func (m TypeMapper) Map(t types.Type) (syntax.Type, error) {
	if t == nil {
		return nil, errors.New("no type information")
	}
	switch v := types.Unalias(t).(type) {
	case *types.Basic:
		if v.Name() == "rune" {
			return syntax.NewPredefinedType(syntax.CharKeyword), nil
		}
		if k, ok := basicTypes[v.Kind()]; ok {
			return syntax.NewPredefinedType(k), nil
		}
		return nil, &UnsupportedTypeError{Type: t, Reason: "no matching C# primitive"}

	case *types.Named:
		obj := v.Obj()
		if name, ok := m.Known[obj]; ok {
			return m.generic(name, v)
		}
		if obj.Pkg() != nil {
			if name, ok := wellKnown[obj.Pkg().Path()+"."+obj.Name()]; ok {
				return syntax.MustParseTypeName(name), nil
			}
		}
		if util.IsError(v) {
			return nil, &UnsupportedTypeError{Type: t, Reason: "error values are not data"}
		}
		// A named type that is not generated is represented by what it is made of.
		mapped, err := m.Map(v.Underlying())
		if err != nil {
			return nil, errors.Wrapf(err, "underlying type of %s", obj.Name())
		}
		return mapped, nil

	case *types.TypeParam:
		return syntax.IdentName(v.Obj().Name()), nil

	case *types.Pointer:
		elem, err := m.Map(v.Elem())
		if err != nil {
			return nil, err
		}
		if isValueType(v.Elem()) {
			return syntax.NewNullableType(elem), nil
		}
		return elem, nil

	case *types.Slice:
		return m.array(v.Elem())

	case *types.Array:
		return m.array(v.Elem())

	case *types.Map:
		key, err := m.Map(v.Key())
		if err != nil {
			return nil, err
		}
		value, err := m.Map(v.Elem())
		if err != nil {
			return nil, err
		}
		return syntax.NewQualifiedName(
			syntax.QualifiedNameOf("System", "Collections", "Generic"),
			syntax.NewGenericName("Dictionary", key, value),
		), nil

	case *types.Interface:
		if v.Empty() {
			return syntax.NewPredefinedType(syntax.ObjectKeyword), nil
		}
		if util.IsError(t) {
			return nil, &UnsupportedTypeError{Type: t, Reason: "error values are not data"}
		}
		return nil, &UnsupportedTypeError{Type: t, Reason: "interfaces with methods have no data shape"}

	case *types.Chan:
		return nil, &UnsupportedTypeError{Type: t, Reason: "channels have no data shape"}

	case *types.Signature:
		return nil, &UnsupportedTypeError{Type: t, Reason: "functions have no data shape"}

	case *types.Struct:
		return nil, &UnsupportedTypeError{Type: t, Reason: "anonymous structs need a name"}
	}
	return nil, &UnsupportedTypeError{Type: t, Reason: "unknown kind"}
}

func (m TypeMapper) array(elem types.Type) (syntax.Type, error) {
	e, err := m.Map(elem)
	if err != nil {
		return nil, err
	}
	return syntax.NewArrayType(e), nil
}

func (m TypeMapper) generic(name string, n *types.Named) (syntax.Type, error) {
	args := n.TypeArgs()
	if args.Len() == 0 {
		return syntax.MustParseTypeName(name), nil
	}
	mapped := make([]syntax.Type, args.Len())
	for i := range args.Len() {
		a, err := m.Map(args.At(i))
		if err != nil {
			return nil, err
		}
		mapped[i] = a
	}
	return syntax.NewGenericName(name, mapped...), nil
}

// isValueType reports whether t maps onto a C# value type, which needs a
// nullable wrapper to express Go's nil pointer.
func isValueType(t types.Type) bool {
	switch v := types.Unalias(t).(type) {
	case *types.Basic:
		return v.Info()&types.IsString == 0
	case *types.Named:
		if obj := v.Obj(); obj.Pkg() != nil {
			switch obj.Pkg().Path() + "." + obj.Name() {
			case "time.Time", "time.Duration", "math/big.Int":
				return true
			case "net/url.URL":
				return false
			}
		}
		_, basic := v.Underlying().(*types.Basic)
		return basic && isValueType(v.Underlying())
	}
	return false
}
