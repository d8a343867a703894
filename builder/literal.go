package builder

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/syntax"
)

// Decimal is a decimal constant written in its usual text form, for example
// Decimal("19.99"). It renders with the m suffix.
type Decimal string

// Char is a character constant. Plain runes are int32 and render as numbers.
type Char rune

// EnumValue is implemented by values that render as an enum member access.
type EnumValue interface {
	EnumName() (typeName, member string)
}

type enumMember struct{ typeName, member string }

func (e enumMember) EnumName() (string, string) { return e.typeName, e.member }

// EnumMember returns the enum value typeName.member. typeName may be dotted.
func EnumMember(typeName, member string) EnumValue {
	return enumMember{typeName: typeName, member: member}
}

// Literal converts a Go constant into a C# expression. Expressions pass
// through as they are and nil becomes null.
func Literal(v any) (syntax.Expr, error) {
	switch v := v.(type) {
	case nil:
		return syntax.NullLiteral(), nil
	case syntax.Expr:
		return v, nil
	case bool:
		return syntax.BoolLiteral(v), nil
	case string:
		return syntax.StringLiteral(v), nil
	case Char:
		return syntax.CharLiteral(rune(v)), nil
	case int:
		return syntax.IntLiteral(int64(v)), nil
	case int8:
		return syntax.IntLiteral(int64(v)), nil
	case int16:
		return syntax.IntLiteral(int64(v)), nil
	case int32:
		return syntax.IntLiteral(int64(v)), nil
	case int64:
		return syntax.NumericLiteral(strconv.FormatInt(v, 10) + "L"), nil
	case uint:
		return syntax.NumericLiteral(strconv.FormatUint(uint64(v), 10) + "U"), nil
	case uint8:
		return syntax.IntLiteral(int64(v)), nil
	case uint16:
		return syntax.IntLiteral(int64(v)), nil
	case uint32:
		return syntax.NumericLiteral(strconv.FormatUint(uint64(v), 10) + "U"), nil
	case uint64:
		return syntax.NumericLiteral(strconv.FormatUint(v, 10) + "UL"), nil
	case float32:
		return floatLiteral(v, float64(v), 32, "F")
	case float64:
		return floatLiteral(v, v, 64, "")
	case Decimal:
		if _, err := strconv.ParseFloat(string(v), 64); err != nil {
			return nil, errors.WithStack(&UnsupportedLiteralError{Value: v, Reason: "not a decimal number"})
		}
		return syntax.NumericLiteral(string(v) + "m"), nil
	case EnumValue:
		typeName, member := v.EnumName()
		name, err := syntax.ParseName(typeName)
		if err != nil {
			return nil, errors.WithStack(&UnsupportedLiteralError{Value: v, Reason: err.Error()})
		}
		return syntax.NewMemberAccess(name, member), nil
	default:
		return nil, errors.WithStack(&UnsupportedLiteralError{Value: v})
	}
}

func floatLiteral(v any, f float64, bits int, suffix string) (syntax.Expr, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.WithStack(&UnsupportedLiteralError{Value: v, Reason: "not a finite number"})
	}
	return syntax.NumericLiteral(strconv.FormatFloat(f, 'g', -1, bits) + suffix), nil
}

// MustLiteral is like Literal but panics on unsupported values.
func MustLiteral(v any) syntax.Expr {
	e, err := Literal(v)
	if err != nil {
		panic(err)
	}
	return e
}
