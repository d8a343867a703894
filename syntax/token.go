package syntax

import (
	"slices"
	"strconv"
	"strings"
)

// TokenKind identifies a token. Keyword kinds carry their fixed spelling in
// the keyword table; identifiers, literals and operators carry free text.
type TokenKind uint16

const (
	NoToken TokenKind = iota

	IdentifierToken
	NumericLiteralToken
	StringLiteralToken
	CharacterLiteralToken
	InterpolatedTextToken
	OperatorToken
	RawToken

	// punctuation with trivia of its own
	OpenBraceToken
	CloseBraceToken
	OpenParenToken
	CloseParenToken
	OpenBracketToken
	CloseBracketToken
	SemicolonToken
	ColonToken
	EqualsToken
	ArrowToken
	QuestionToken
	InterpolatedStringStartToken
	InterpolatedStringEndToken

	// modifiers
	PublicKeyword
	PrivateKeyword
	ProtectedKeyword
	InternalKeyword
	StaticKeyword
	ExternKeyword
	NewKeyword
	VirtualKeyword
	AbstractKeyword
	SealedKeyword
	OverrideKeyword
	ReadOnlyKeyword
	UnsafeKeyword
	VolatileKeyword
	AsyncKeyword
	ConstKeyword
	PartialKeyword
	RefKeyword
	OutKeyword
	InKeyword
	ParamsKeyword

	// declarations and statements
	ClassKeyword
	StructKeyword
	InterfaceKeyword
	EnumKeyword
	NamespaceKeyword
	UsingKeyword
	EventKeyword
	OperatorKeyword
	GetKeyword
	SetKeyword
	InitKeyword
	AddKeyword
	RemoveKeyword
	ReturnKeyword
	IfKeyword
	ElseKeyword
	IsKeyword
	ThisKeyword
	BaseKeyword
	TrueKeyword
	FalseKeyword
	NullKeyword

	// predefined types
	VoidKeyword
	ObjectKeyword
	BoolKeyword
	ByteKeyword
	SByteKeyword
	ShortKeyword
	UShortKeyword
	IntKeyword
	UIntKeyword
	LongKeyword
	ULongKeyword
	FloatKeyword
	DoubleKeyword
	DecimalKeyword
	CharKeyword
	StringKeyword
)

var fixedText = map[TokenKind]string{
	OpenBraceToken:               "{",
	CloseBraceToken:              "}",
	OpenParenToken:               "(",
	CloseParenToken:              ")",
	OpenBracketToken:             "[",
	CloseBracketToken:            "]",
	SemicolonToken:               ";",
	ColonToken:                   ":",
	EqualsToken:                  "=",
	ArrowToken:                   "=>",
	QuestionToken:                "?",
	InterpolatedStringStartToken: `$"`,
	InterpolatedStringEndToken:   `"`,

	PublicKeyword:    "public",
	PrivateKeyword:   "private",
	ProtectedKeyword: "protected",
	InternalKeyword:  "internal",
	StaticKeyword:    "static",
	ExternKeyword:    "extern",
	NewKeyword:       "new",
	VirtualKeyword:   "virtual",
	AbstractKeyword:  "abstract",
	SealedKeyword:    "sealed",
	OverrideKeyword:  "override",
	ReadOnlyKeyword:  "readonly",
	UnsafeKeyword:    "unsafe",
	VolatileKeyword:  "volatile",
	AsyncKeyword:     "async",
	ConstKeyword:     "const",
	PartialKeyword:   "partial",
	RefKeyword:       "ref",
	OutKeyword:       "out",
	InKeyword:        "in",
	ParamsKeyword:    "params",

	ClassKeyword:     "class",
	StructKeyword:    "struct",
	InterfaceKeyword: "interface",
	EnumKeyword:      "enum",
	NamespaceKeyword: "namespace",
	UsingKeyword:     "using",
	EventKeyword:     "event",
	OperatorKeyword:  "operator",
	GetKeyword:       "get",
	SetKeyword:       "set",
	InitKeyword:      "init",
	AddKeyword:       "add",
	RemoveKeyword:    "remove",
	ReturnKeyword:    "return",
	IfKeyword:        "if",
	ElseKeyword:      "else",
	IsKeyword:        "is",
	ThisKeyword:      "this",
	BaseKeyword:      "base",
	TrueKeyword:      "true",
	FalseKeyword:     "false",
	NullKeyword:      "null",

	VoidKeyword:    "void",
	ObjectKeyword:  "object",
	BoolKeyword:    "bool",
	ByteKeyword:    "byte",
	SByteKeyword:   "sbyte",
	ShortKeyword:   "short",
	UShortKeyword:  "ushort",
	IntKeyword:     "int",
	UIntKeyword:    "uint",
	LongKeyword:    "long",
	ULongKeyword:   "ulong",
	FloatKeyword:   "float",
	DoubleKeyword:  "double",
	DecimalKeyword: "decimal",
	CharKeyword:    "char",
	StringKeyword:  "string",
}

var keywordByText = func() map[string]TokenKind {
	m := make(map[string]TokenKind, len(fixedText))
	for k, v := range fixedText {
		if k >= PublicKeyword {
			m[v] = k
		}
	}
	return m
}()

// KeywordKind returns the keyword kind spelled by text, or NoToken.
func KeywordKind(text string) TokenKind {
	return keywordByText[text]
}

// IsModifier reports whether k may appear in a member's modifier list.
func (k TokenKind) IsModifier() bool {
	return k >= PublicKeyword && k <= ParamsKeyword
}

// IsAccessModifier reports whether k is public, private, protected or internal.
func (k TokenKind) IsAccessModifier() bool {
	return k >= PublicKeyword && k <= InternalKeyword
}

func (k TokenKind) String() string {
	if s, ok := fixedText[k]; ok {
		return s
	}
	switch k {
	case NoToken:
		return "None"
	case IdentifierToken:
		return "Identifier"
	case NumericLiteralToken:
		return "NumericLiteral"
	case StringLiteralToken:
		return "StringLiteral"
	case CharacterLiteralToken:
		return "CharacterLiteral"
	case InterpolatedTextToken:
		return "InterpolatedText"
	case OperatorToken:
		return "Operator"
	case RawToken:
		return "Raw"
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a single lexical element together with its surrounding trivia.
// The zero Token stands for an absent optional token.
type Token struct {
	Kind     TokenKind
	Text     string
	Leading  []Trivia
	Trailing []Trivia
}

// Tok returns the fixed-spelling token of the given kind without trivia.
func Tok(kind TokenKind) Token {
	return Token{Kind: kind, Text: fixedText[kind]}
}

// Ident returns an identifier token. A name that collides with a keyword is
// escaped with '@'.
func Ident(name string) Token {
	if k := KeywordKind(name); k != NoToken && !contextual(k) {
		name = "@" + name
	}
	return Token{Kind: IdentifierToken, Text: name}
}

func contextual(k TokenKind) bool {
	switch k {
	case GetKeyword, SetKeyword, InitKeyword, AddKeyword, RemoveKeyword, AsyncKeyword, PartialKeyword:
		return true
	}
	return false
}

// Op returns an operator token such as "==", "&&" or "!".
func Op(text string) Token {
	if text == "=" {
		return Tok(EqualsToken)
	}
	return Token{Kind: OperatorToken, Text: text}
}

// Raw returns a token whose text is emitted verbatim.
func Raw(text string) Token {
	return Token{Kind: RawToken, Text: text}
}

// IsZero reports whether the token is absent.
func (t Token) IsZero() bool {
	return t.Kind == NoToken && t.Text == ""
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind TokenKind) bool {
	return t.Kind == kind
}

// WithLeading returns a copy of t whose leading trivia is replaced.
func (t Token) WithLeading(trivia ...Trivia) Token {
	t.Leading = concat(trivia)
	return t
}

// WithTrailing returns a copy of t whose trailing trivia is replaced.
func (t Token) WithTrailing(trivia ...Trivia) Token {
	t.Trailing = concat(trivia)
	return t
}

// PrependLeading returns a copy of t with trivia inserted before its leading trivia.
func (t Token) PrependLeading(trivia ...Trivia) Token {
	t.Leading = concat(trivia, t.Leading)
	return t
}

// AppendTrailing returns a copy of t with trivia added after its trailing trivia.
func (t Token) AppendTrailing(trivia ...Trivia) Token {
	t.Trailing = concat(t.Trailing, trivia)
	return t
}

// WithoutTrivia returns a copy of t with no trivia at all.
func (t Token) WithoutTrivia() Token {
	t.Leading = nil
	t.Trailing = nil
	return t
}

// String renders the token including its trivia.
func (t Token) String() string {
	return renderTrivia(t.Leading) + t.Text + renderTrivia(t.Trailing)
}

// TokenList helpers used by modifier lists.

// HasToken reports whether list contains a token of the given kind.
func HasToken(list []Token, kind TokenKind) bool {
	return slices.ContainsFunc(list, func(t Token) bool { return t.Kind == kind })
}

// TokenTexts returns the text of each token, mostly useful in tests.
func TokenTexts(list []Token) []string {
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.Text
	}
	return out
}

func isWordByte(b byte) bool {
	return b == '_' || b == '@' || b >= 0x80 ||
		('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

// QuoteString renders s as a regular C# string literal.
func QuoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// QuoteChar renders r as a C# character literal.
func QuoteChar(r rune) string {
	switch r {
	case '\'':
		return `'\''`
	case '\\':
		return `'\\'`
	case '\n':
		return `'\n'`
	case '\r':
		return `'\r'`
	case '\t':
		return `'\t'`
	case 0:
		return `'\0'`
	}
	return "'" + string(r) + "'"
}
