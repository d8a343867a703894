// Package syntax is an immutable syntax tree for C# declarations.
//
// Trees are built from the constructors in this package and the exported
// fields of each node. Once a tree is handed to someone else it must not be
// mutated: rewriting goes through Apply, which copies every node it visits.
// Render turns a tree into text by concatenating its tokens and their trivia.
//
// The package never parses source text. Statements and expressions that have
// no dedicated node are carried verbatim by RawStatement and RawExpression.
package syntax

import (
	"reflect"
	"strconv"
)

// Kind identifies the shape of a node.
type Kind uint16

const (
	KindNone Kind = iota

	KindCompilationUnit
	KindUsingDirective
	KindNameEquals
	KindNamespace
	KindClass
	KindStruct
	KindInterface
	KindEnum
	KindEnumMember
	KindField
	KindEventField
	KindProperty
	KindEvent
	KindAccessorList
	KindAccessor
	KindConstructor
	KindConstructorInitializer
	KindMethod
	KindOperator
	KindParameterList
	KindParameter
	KindTypeParameterList
	KindTypeParameter
	KindBaseList
	KindAttributeList
	KindAttribute
	KindVariableDeclaration
	KindVariableDeclarator
	KindEqualsValue
	KindArrowExpression

	KindBlock
	KindExpressionStatement
	KindReturnStatement
	KindLocalDeclaration
	KindIfStatement
	KindRawStatement

	KindIdentifierName
	KindGenericName
	KindQualifiedName
	KindPredefinedType
	KindArrayType
	KindNullableType

	KindLiteral
	KindMemberAccess
	KindInvocation
	KindObjectCreation
	KindBinary
	KindAssignment
	KindPrefixUnary
	KindParenthesized
	KindIsPattern
	KindThis
	KindInterpolatedString
	KindInterpolation
	KindInterpolatedText
	KindRawExpression
)

var kindNames = [...]string{
	KindNone:                   "None",
	KindCompilationUnit:        "CompilationUnit",
	KindUsingDirective:         "UsingDirective",
	KindNameEquals:             "NameEquals",
	KindNamespace:              "Namespace",
	KindClass:                  "Class",
	KindStruct:                 "Struct",
	KindInterface:              "Interface",
	KindEnum:                   "Enum",
	KindEnumMember:             "EnumMember",
	KindField:                  "Field",
	KindEventField:             "EventField",
	KindProperty:               "Property",
	KindEvent:                  "Event",
	KindAccessorList:           "AccessorList",
	KindAccessor:               "Accessor",
	KindConstructor:            "Constructor",
	KindConstructorInitializer: "ConstructorInitializer",
	KindMethod:                 "Method",
	KindOperator:               "Operator",
	KindParameterList:          "ParameterList",
	KindParameter:              "Parameter",
	KindTypeParameterList:      "TypeParameterList",
	KindTypeParameter:          "TypeParameter",
	KindBaseList:               "BaseList",
	KindAttributeList:          "AttributeList",
	KindAttribute:              "Attribute",
	KindVariableDeclaration:    "VariableDeclaration",
	KindVariableDeclarator:     "VariableDeclarator",
	KindEqualsValue:            "EqualsValue",
	KindArrowExpression:        "ArrowExpression",
	KindBlock:                  "Block",
	KindExpressionStatement:    "ExpressionStatement",
	KindReturnStatement:        "ReturnStatement",
	KindLocalDeclaration:       "LocalDeclaration",
	KindIfStatement:            "IfStatement",
	KindRawStatement:           "RawStatement",
	KindIdentifierName:         "IdentifierName",
	KindGenericName:            "GenericName",
	KindQualifiedName:          "QualifiedName",
	KindPredefinedType:         "PredefinedType",
	KindArrayType:              "ArrayType",
	KindNullableType:           "NullableType",
	KindLiteral:                "Literal",
	KindMemberAccess:           "MemberAccess",
	KindInvocation:             "Invocation",
	KindObjectCreation:         "ObjectCreation",
	KindBinary:                 "Binary",
	KindAssignment:             "Assignment",
	KindPrefixUnary:            "PrefixUnary",
	KindParenthesized:          "Parenthesized",
	KindIsPattern:              "IsPattern",
	KindThis:                   "This",
	KindInterpolatedString:     "InterpolatedString",
	KindInterpolation:          "Interpolation",
	KindInterpolatedText:       "InterpolatedText",
	KindRawExpression:          "RawExpression",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsTypeDeclaration reports whether k declares a class, struct, interface or enum.
func (k Kind) IsTypeDeclaration() bool {
	switch k {
	case KindClass, KindStruct, KindInterface, KindEnum:
		return true
	}
	return false
}

// Node is implemented by every tree element. The unexported methods keep the
// set of node types closed to this package.
type Node interface {
	Kind() Kind

	// rebuild returns a shallow copy of the node whose children and tokens
	// have been passed, in source order, through the visitor.
	rebuild(v *visitor) Node
	emit(e *emitter)
}

// Member is a declaration that may appear in a namespace or type body.
type Member interface {
	Node
	member()
}

// Stmt is a statement.
type Stmt interface {
	Node
	stmt()
}

// Expr is an expression. Types and names are expressions too.
type Expr interface {
	Node
	expr()
}

// Type is a type reference.
type Type interface {
	Expr
	typ()
}

// Name is a possibly qualified name.
type Name interface {
	Type
	name()
}

// SimpleName is an unqualified name, optionally generic.
type SimpleName interface {
	Name
	simple()
}

// Modified is implemented by declarations that carry attributes and modifiers.
type Modified interface {
	Member
	GetModifiers() []Token
	GetAttributes() []*AttributeList
}

// IsNil reports whether n is nil or a typed nil pointer.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
