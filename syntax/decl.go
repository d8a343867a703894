package syntax

// CompilationUnit is one source file.
type CompilationUnit struct {
	Usings  []*UsingDirective
	Members []Member
}

func NewCompilationUnit(usings []*UsingDirective, members ...Member) *CompilationUnit {
	return &CompilationUnit{Usings: usings, Members: members}
}

func (*CompilationUnit) Kind() Kind { return KindCompilationUnit }

func (n *CompilationUnit) rebuild(v *visitor) Node {
	c := *n
	c.Usings = many(v, n.Usings)
	c.Members = many(v, n.Members)
	return &c
}

func (n *CompilationUnit) emit(e *emitter) {
	emitAll(e, n.Usings)
	emitAll(e, n.Members)
}

// UsingDirective is "using [static] [Alias =] Name;".
type UsingDirective struct {
	Using     Token
	Static    Token
	Alias     *NameEquals
	Name      Name
	Semicolon Token
}

func NewUsing(name Name) *UsingDirective {
	return &UsingDirective{Using: Tok(UsingKeyword), Name: name, Semicolon: Tok(SemicolonToken)}
}

func NewStaticUsing(name Name) *UsingDirective {
	u := NewUsing(name)
	u.Static = Tok(StaticKeyword)
	return u
}

func NewAliasUsing(alias string, name Name) *UsingDirective {
	u := NewUsing(name)
	u.Alias = &NameEquals{Name: IdentName(alias), Equals: Tok(EqualsToken)}
	return u
}

func (*UsingDirective) Kind() Kind { return KindUsingDirective }

func (n *UsingDirective) rebuild(v *visitor) Node {
	c := *n
	c.Using = v.tok(n.Using)
	c.Static = v.tok(n.Static)
	c.Alias = one(v, n.Alias)
	c.Name = one(v, n.Name)
	c.Semicolon = v.tok(n.Semicolon)
	return &c
}

func (n *UsingDirective) emit(e *emitter) {
	e.token(n.Using)
	e.token(n.Static)
	e.node(n.Alias)
	e.node(n.Name)
	e.token(n.Semicolon)
}

// NameEquals is the "Alias =" part of an aliased using.
type NameEquals struct {
	Name   *IdentifierName
	Equals Token
}

func (*NameEquals) Kind() Kind { return KindNameEquals }

func (n *NameEquals) rebuild(v *visitor) Node {
	c := *n
	c.Name = one(v, n.Name)
	c.Equals = v.tok(n.Equals)
	return &c
}

func (n *NameEquals) emit(e *emitter) {
	e.node(n.Name)
	e.token(n.Equals)
}

// NamespaceDecl is a block-scoped namespace.
type NamespaceDecl struct {
	Namespace  Token
	Name       Name
	OpenBrace  Token
	Members    []Member
	CloseBrace Token
}

func NewNamespace(name Name, members ...Member) *NamespaceDecl {
	return &NamespaceDecl{
		Namespace:  Tok(NamespaceKeyword),
		Name:       name,
		OpenBrace:  Tok(OpenBraceToken),
		Members:    members,
		CloseBrace: Tok(CloseBraceToken),
	}
}

func (*NamespaceDecl) Kind() Kind { return KindNamespace }
func (*NamespaceDecl) member()    {}

func (n *NamespaceDecl) rebuild(v *visitor) Node {
	c := *n
	c.Namespace = v.tok(n.Namespace)
	c.Name = one(v, n.Name)
	c.OpenBrace = v.tok(n.OpenBrace)
	c.Members = many(v, n.Members)
	c.CloseBrace = v.tok(n.CloseBrace)
	return &c
}

func (n *NamespaceDecl) emit(e *emitter) {
	e.token(n.Namespace)
	e.node(n.Name)
	e.token(n.OpenBrace)
	emitAll(e, n.Members)
	e.token(n.CloseBrace)
}

// TypeDecl is a class, struct or interface declaration. Keyword decides which.
type TypeDecl struct {
	Attributes     []*AttributeList
	Modifiers      []Token
	Keyword        Token
	Identifier     Token
	TypeParameters *TypeParameterList
	BaseList       *BaseList
	OpenBrace      Token
	Members        []Member
	CloseBrace     Token
}

// NewTypeDecl returns an empty declaration. keyword is ClassKeyword,
// StructKeyword or InterfaceKeyword.
func NewTypeDecl(keyword TokenKind, name string) *TypeDecl {
	return &TypeDecl{
		Keyword:    Tok(keyword),
		Identifier: Ident(name),
		OpenBrace:  Tok(OpenBraceToken),
		CloseBrace: Tok(CloseBraceToken),
	}
}

func NewClass(name string) *TypeDecl     { return NewTypeDecl(ClassKeyword, name) }
func NewStruct(name string) *TypeDecl    { return NewTypeDecl(StructKeyword, name) }
func NewInterface(name string) *TypeDecl { return NewTypeDecl(InterfaceKeyword, name) }

func (n *TypeDecl) Kind() Kind {
	switch n.Keyword.Kind {
	case StructKeyword:
		return KindStruct
	case InterfaceKeyword:
		return KindInterface
	}
	return KindClass
}

func (*TypeDecl) member()                            {}
func (n *TypeDecl) GetModifiers() []Token            { return n.Modifiers }
func (n *TypeDecl) GetAttributes() []*AttributeList { return n.Attributes }

func (n *TypeDecl) rebuild(v *visitor) Node {
	c := *n
	c.Attributes = many(v, n.Attributes)
	c.Modifiers = v.toks(n.Modifiers)
	c.Keyword = v.tok(n.Keyword)
	c.Identifier = v.tok(n.Identifier)
	c.TypeParameters = one(v, n.TypeParameters)
	c.BaseList = one(v, n.BaseList)
	c.OpenBrace = v.tok(n.OpenBrace)
	c.Members = many(v, n.Members)
	c.CloseBrace = v.tok(n.CloseBrace)
	return &c
}

func (n *TypeDecl) emit(e *emitter) {
	emitAll(e, n.Attributes)
	e.tokens(n.Modifiers)
	e.token(n.Keyword)
	e.token(n.Identifier)
	e.node(n.TypeParameters)
	e.node(n.BaseList)
	e.token(n.OpenBrace)
	emitAll(e, n.Members)
	e.token(n.CloseBrace)
}

// EnumDecl is an enum declaration.
type EnumDecl struct {
	Attributes []*AttributeList
	Modifiers  []Token
	Keyword    Token
	Identifier Token
	BaseList   *BaseList
	OpenBrace  Token
	Members    []*EnumMember
	CloseBrace Token
}

func NewEnum(name string, members ...*EnumMember) *EnumDecl {
	return &EnumDecl{
		Keyword:    Tok(EnumKeyword),
		Identifier: Ident(name),
		OpenBrace:  Tok(OpenBraceToken),
		Members:    members,
		CloseBrace: Tok(CloseBraceToken),
	}
}

func (*EnumDecl) Kind() Kind                         { return KindEnum }
func (*EnumDecl) member()                            {}
func (n *EnumDecl) GetModifiers() []Token            { return n.Modifiers }
func (n *EnumDecl) GetAttributes() []*AttributeList { return n.Attributes }

func (n *EnumDecl) rebuild(v *visitor) Node {
	c := *n
	c.Attributes = many(v, n.Attributes)
	c.Modifiers = v.toks(n.Modifiers)
	c.Keyword = v.tok(n.Keyword)
	c.Identifier = v.tok(n.Identifier)
	c.BaseList = one(v, n.BaseList)
	c.OpenBrace = v.tok(n.OpenBrace)
	c.Members = many(v, n.Members)
	c.CloseBrace = v.tok(n.CloseBrace)
	return &c
}

func (n *EnumDecl) emit(e *emitter) {
	emitAll(e, n.Attributes)
	e.tokens(n.Modifiers)
	e.token(n.Keyword)
	e.token(n.Identifier)
	e.node(n.BaseList)
	e.token(n.OpenBrace)
	emitSeparated(e, n.Members, ",")
	e.token(n.CloseBrace)
}

// EnumMember is one named value of an enum. Value is optional.
type EnumMember struct {
	Attributes []*AttributeList
	Identifier Token
	Value      *EqualsValue
}

func NewEnumMember(name string, value Expr) *EnumMember {
	m := &EnumMember{Identifier: Ident(name)}
	if !IsNil(value) {
		m.Value = NewEqualsValue(value)
	}
	return m
}

func (*EnumMember) Kind() Kind { return KindEnumMember }

func (n *EnumMember) rebuild(v *visitor) Node {
	c := *n
	c.Attributes = many(v, n.Attributes)
	c.Identifier = v.tok(n.Identifier)
	c.Value = one(v, n.Value)
	return &c
}

func (n *EnumMember) emit(e *emitter) {
	emitAll(e, n.Attributes)
	e.token(n.Identifier)
	e.node(n.Value)
}

// FieldDecl declares one or more variables of a type. With Event set it is
// an event field.
type FieldDecl struct {
	Attributes  []*AttributeList
	Modifiers   []Token
	Event       Token
	Declaration *VariableDeclaration
	Semicolon   Token
}

func NewField(typ Type, name string, init Expr) *FieldDecl {
	return &FieldDecl{
		Declaration: NewVariableDeclaration(typ, NewDeclarator(name, init)),
		Semicolon:   Tok(SemicolonToken),
	}
}

func (n *FieldDecl) Kind() Kind {
	if !n.Event.IsZero() {
		return KindEventField
	}
	return KindField
}

func (*FieldDecl) member()                            {}
func (n *FieldDecl) GetModifiers() []Token            { return n.Modifiers }
func (n *FieldDecl) GetAttributes() []*AttributeList { return n.Attributes }

func (n *FieldDecl) rebuild(v *visitor) Node {
	c := *n
	c.Attributes = many(v, n.Attributes)
	c.Modifiers = v.toks(n.Modifiers)
	c.Event = v.tok(n.Event)
	c.Declaration = one(v, n.Declaration)
	c.Semicolon = v.tok(n.Semicolon)
	return &c
}

func (n *FieldDecl) emit(e *emitter) {
	emitAll(e, n.Attributes)
	e.tokens(n.Modifiers)
	e.token(n.Event)
	e.node(n.Declaration)
	e.token(n.Semicolon)
}

// PropertyDecl is a property, or an event property when Event is set.
// It has either an accessor list or an expression body.
type PropertyDecl struct {
	Attributes     []*AttributeList
	Modifiers      []Token
	Event          Token
	Type           Type
	Identifier     Token
	Accessors      *AccessorList
	ExpressionBody *ArrowExpression
	Initializer    *EqualsValue
	Semicolon      Token
}

func NewProperty(typ Type, name string, accessors ...*Accessor) *PropertyDecl {
	return &PropertyDecl{
		Type:       typ,
		Identifier: Ident(name),
		Accessors:  NewAccessorList(accessors...),
	}
}

func (n *PropertyDecl) Kind() Kind {
	if !n.Event.IsZero() {
		return KindEvent
	}
	return KindProperty
}

func (*PropertyDecl) member()                            {}
func (n *PropertyDecl) GetModifiers() []Token            { return n.Modifiers }
func (n *PropertyDecl) GetAttributes() []*AttributeList { return n.Attributes }

// Accessor returns the accessor of the given keyword kind, or nil.
func (n *PropertyDecl) Accessor(kind TokenKind) *Accessor {
	if n.Accessors == nil {
		return nil
	}
	for _, a := range n.Accessors.Accessors {
		if a.Keyword.Kind == kind {
			return a
		}
	}
	return nil
}

func (n *PropertyDecl) rebuild(v *visitor) Node {
	c := *n
	c.Attributes = many(v, n.Attributes)
	c.Modifiers = v.toks(n.Modifiers)
	c.Event = v.tok(n.Event)
	c.Type = one(v, n.Type)
	c.Identifier = v.tok(n.Identifier)
	c.Accessors = one(v, n.Accessors)
	c.ExpressionBody = one(v, n.ExpressionBody)
	c.Initializer = one(v, n.Initializer)
	c.Semicolon = v.tok(n.Semicolon)
	return &c
}

func (n *PropertyDecl) emit(e *emitter) {
	emitAll(e, n.Attributes)
	e.tokens(n.Modifiers)
	e.token(n.Event)
	e.node(n.Type)
	e.token(n.Identifier)
	e.node(n.Accessors)
	e.node(n.ExpressionBody)
	e.node(n.Initializer)
	e.token(n.Semicolon)
}

// AccessorList is the braced accessor block of a property.
type AccessorList struct {
	OpenBrace  Token
	Accessors  []*Accessor
	CloseBrace Token
}

func NewAccessorList(accessors ...*Accessor) *AccessorList {
	return &AccessorList{
		OpenBrace:  Tok(OpenBraceToken),
		Accessors:  accessors,
		CloseBrace: Tok(CloseBraceToken),
	}
}

func (*AccessorList) Kind() Kind { return KindAccessorList }

func (n *AccessorList) rebuild(v *visitor) Node {
	c := *n
	c.OpenBrace = v.tok(n.OpenBrace)
	c.Accessors = many(v, n.Accessors)
	c.CloseBrace = v.tok(n.CloseBrace)
	return &c
}

func (n *AccessorList) emit(e *emitter) {
	e.token(n.OpenBrace)
	emitAll(e, n.Accessors)
	e.token(n.CloseBrace)
}

// Accessor is get, set, init, add or remove. An accessor with neither body
// nor expression body is auto-implemented and ends with a semicolon.
type Accessor struct {
	Attributes     []*AttributeList
	Modifiers      []Token
	Keyword        Token
	Body           *Block
	ExpressionBody *ArrowExpression
	Semicolon      Token
}

// NewAccessor returns an auto-implemented accessor.
func NewAccessor(keyword TokenKind) *Accessor {
	return &Accessor{Keyword: Tok(keyword), Semicolon: Tok(SemicolonToken)}
}

func (*Accessor) Kind() Kind { return KindAccessor }

// IsAuto reports whether the accessor has no body.
func (n *Accessor) IsAuto() bool { return n.Body == nil && n.ExpressionBody == nil }

func (n *Accessor) rebuild(v *visitor) Node {
	c := *n
	c.Attributes = many(v, n.Attributes)
	c.Modifiers = v.toks(n.Modifiers)
	c.Keyword = v.tok(n.Keyword)
	c.Body = one(v, n.Body)
	c.ExpressionBody = one(v, n.ExpressionBody)
	c.Semicolon = v.tok(n.Semicolon)
	return &c
}

func (n *Accessor) emit(e *emitter) {
	emitAll(e, n.Attributes)
	e.tokens(n.Modifiers)
	e.token(n.Keyword)
	e.node(n.Body)
	e.node(n.ExpressionBody)
	e.token(n.Semicolon)
}

// ConstructorDecl is an instance or static constructor.
type ConstructorDecl struct {
	Attributes     []*AttributeList
	Modifiers      []Token
	Identifier     Token
	Parameters     *ParameterList
	Initializer    *ConstructorInitializer
	Body           *Block
	ExpressionBody *ArrowExpression
	Semicolon      Token
}

func NewConstructor(name string, params ...*Parameter) *ConstructorDecl {
	return &ConstructorDecl{
		Identifier: Ident(name),
		Parameters: NewParameterList(params...),
		Body:       NewBlock(),
	}
}

func (*ConstructorDecl) Kind() Kind                         { return KindConstructor }
func (*ConstructorDecl) member()                            {}
func (n *ConstructorDecl) GetModifiers() []Token            { return n.Modifiers }
func (n *ConstructorDecl) GetAttributes() []*AttributeList { return n.Attributes }

func (n *ConstructorDecl) rebuild(v *visitor) Node {
	c := *n
	c.Attributes = many(v, n.Attributes)
	c.Modifiers = v.toks(n.Modifiers)
	c.Identifier = v.tok(n.Identifier)
	c.Parameters = one(v, n.Parameters)
	c.Initializer = one(v, n.Initializer)
	c.Body = one(v, n.Body)
	c.ExpressionBody = one(v, n.ExpressionBody)
	c.Semicolon = v.tok(n.Semicolon)
	return &c
}

func (n *ConstructorDecl) emit(e *emitter) {
	emitAll(e, n.Attributes)
	e.tokens(n.Modifiers)
	e.token(n.Identifier)
	emitParameters(e, n.Parameters)
	e.node(n.Initializer)
	e.node(n.Body)
	e.node(n.ExpressionBody)
	e.token(n.Semicolon)
}

// ConstructorInitializer is ": base(...)" or ": this(...)".
type ConstructorInitializer struct {
	Colon     Token
	Keyword   Token
	Arguments []Expr
}

func NewConstructorInitializer(keyword TokenKind, args ...Expr) *ConstructorInitializer {
	return &ConstructorInitializer{Colon: Tok(ColonToken), Keyword: Tok(keyword), Arguments: args}
}

func (*ConstructorInitializer) Kind() Kind { return KindConstructorInitializer }

func (n *ConstructorInitializer) rebuild(v *visitor) Node {
	c := *n
	c.Colon = v.tok(n.Colon)
	c.Keyword = v.tok(n.Keyword)
	c.Arguments = many(v, n.Arguments)
	return &c
}

func (n *ConstructorInitializer) emit(e *emitter) {
	e.token(n.Colon)
	e.token(n.Keyword)
	emitDelimited(e, "(", n.Arguments, ")")
}

// MethodDecl is a method. An abstract or interface method has no body and
// ends with a semicolon.
type MethodDecl struct {
	Attributes     []*AttributeList
	Modifiers      []Token
	ReturnType     Type
	Identifier     Token
	TypeParameters *TypeParameterList
	Parameters     *ParameterList
	Body           *Block
	ExpressionBody *ArrowExpression
	Semicolon      Token
}

func NewMethod(returnType Type, name string, params ...*Parameter) *MethodDecl {
	return &MethodDecl{
		ReturnType: returnType,
		Identifier: Ident(name),
		Parameters: NewParameterList(params...),
		Body:       NewBlock(),
	}
}

func (*MethodDecl) Kind() Kind                         { return KindMethod }
func (*MethodDecl) member()                            {}
func (n *MethodDecl) GetModifiers() []Token            { return n.Modifiers }
func (n *MethodDecl) GetAttributes() []*AttributeList { return n.Attributes }

func (n *MethodDecl) rebuild(v *visitor) Node {
	c := *n
	c.Attributes = many(v, n.Attributes)
	c.Modifiers = v.toks(n.Modifiers)
	c.ReturnType = one(v, n.ReturnType)
	c.Identifier = v.tok(n.Identifier)
	c.TypeParameters = one(v, n.TypeParameters)
	c.Parameters = one(v, n.Parameters)
	c.Body = one(v, n.Body)
	c.ExpressionBody = one(v, n.ExpressionBody)
	c.Semicolon = v.tok(n.Semicolon)
	return &c
}

func (n *MethodDecl) emit(e *emitter) {
	emitAll(e, n.Attributes)
	e.tokens(n.Modifiers)
	e.node(n.ReturnType)
	e.token(n.Identifier)
	e.node(n.TypeParameters)
	emitParameters(e, n.Parameters)
	e.node(n.Body)
	e.node(n.ExpressionBody)
	e.token(n.Semicolon)
}

// OperatorDecl is a user-defined operator such as "operator ==".
type OperatorDecl struct {
	Attributes     []*AttributeList
	Modifiers      []Token
	ReturnType     Type
	Operator       Token
	OperatorToken  Token
	Parameters     *ParameterList
	Body           *Block
	ExpressionBody *ArrowExpression
	Semicolon      Token
}

func NewOperator(returnType Type, op string, params ...*Parameter) *OperatorDecl {
	return &OperatorDecl{
		ReturnType:    returnType,
		Operator:      Tok(OperatorKeyword),
		OperatorToken: Op(op),
		Parameters:    NewParameterList(params...),
		Body:          NewBlock(),
	}
}

func (*OperatorDecl) Kind() Kind                         { return KindOperator }
func (*OperatorDecl) member()                            {}
func (n *OperatorDecl) GetModifiers() []Token            { return n.Modifiers }
func (n *OperatorDecl) GetAttributes() []*AttributeList { return n.Attributes }

func (n *OperatorDecl) rebuild(v *visitor) Node {
	c := *n
	c.Attributes = many(v, n.Attributes)
	c.Modifiers = v.toks(n.Modifiers)
	c.ReturnType = one(v, n.ReturnType)
	c.Operator = v.tok(n.Operator)
	c.OperatorToken = v.tok(n.OperatorToken)
	c.Parameters = one(v, n.Parameters)
	c.Body = one(v, n.Body)
	c.ExpressionBody = one(v, n.ExpressionBody)
	c.Semicolon = v.tok(n.Semicolon)
	return &c
}

func (n *OperatorDecl) emit(e *emitter) {
	emitAll(e, n.Attributes)
	e.tokens(n.Modifiers)
	e.node(n.ReturnType)
	e.token(n.Operator)
	e.token(n.OperatorToken)
	emitParameters(e, n.Parameters)
	e.node(n.Body)
	e.node(n.ExpressionBody)
	e.token(n.Semicolon)
}

// ParameterList is a parenthesized parameter list.
type ParameterList struct {
	Parameters []*Parameter
}

func NewParameterList(params ...*Parameter) *ParameterList {
	return &ParameterList{Parameters: params}
}

func (*ParameterList) Kind() Kind { return KindParameterList }

func (n *ParameterList) rebuild(v *visitor) Node {
	c := *n
	c.Parameters = many(v, n.Parameters)
	return &c
}

func (n *ParameterList) emit(e *emitter) {
	emitDelimited(e, "(", n.Parameters, ")")
}

func emitParameters(e *emitter, list *ParameterList) {
	if list == nil {
		e.punct("()")
		return
	}
	list.emit(e)
}

// Parameter is one formal parameter. Default is optional.
type Parameter struct {
	Attributes []*AttributeList
	Modifiers  []Token
	Type       Type
	Identifier Token
	Default    *EqualsValue
}

func NewParameter(typ Type, name string) *Parameter {
	return &Parameter{Type: typ, Identifier: Ident(name)}
}

func (*Parameter) Kind() Kind { return KindParameter }

func (n *Parameter) rebuild(v *visitor) Node {
	c := *n
	c.Attributes = many(v, n.Attributes)
	c.Modifiers = v.toks(n.Modifiers)
	c.Type = one(v, n.Type)
	c.Identifier = v.tok(n.Identifier)
	c.Default = one(v, n.Default)
	return &c
}

func (n *Parameter) emit(e *emitter) {
	emitAll(e, n.Attributes)
	e.tokens(n.Modifiers)
	e.node(n.Type)
	e.token(n.Identifier)
	e.node(n.Default)
}

// TypeParameterList is "<T, U>".
type TypeParameterList struct {
	Parameters []*TypeParameter
}

func NewTypeParameterList(names ...string) *TypeParameterList {
	l := &TypeParameterList{}
	for _, name := range names {
		l.Parameters = append(l.Parameters, &TypeParameter{Identifier: Ident(name)})
	}
	return l
}

func (*TypeParameterList) Kind() Kind { return KindTypeParameterList }

func (n *TypeParameterList) rebuild(v *visitor) Node {
	c := *n
	c.Parameters = many(v, n.Parameters)
	return &c
}

func (n *TypeParameterList) emit(e *emitter) {
	emitDelimited(e, "<", n.Parameters, ">")
}

type TypeParameter struct {
	Identifier Token
}

func (*TypeParameter) Kind() Kind { return KindTypeParameter }

func (n *TypeParameter) rebuild(v *visitor) Node {
	c := *n
	c.Identifier = v.tok(n.Identifier)
	return &c
}

func (n *TypeParameter) emit(e *emitter) {
	e.token(n.Identifier)
}

// BaseList is ": A, B".
type BaseList struct {
	Colon Token
	Types []Type
}

func NewBaseList(types ...Type) *BaseList {
	return &BaseList{Colon: Tok(ColonToken), Types: types}
}

func (*BaseList) Kind() Kind { return KindBaseList }

func (n *BaseList) rebuild(v *visitor) Node {
	c := *n
	c.Colon = v.tok(n.Colon)
	c.Types = many(v, n.Types)
	return &c
}

func (n *BaseList) emit(e *emitter) {
	e.token(n.Colon)
	emitSeparated(e, n.Types, ",")
}

// AttributeList is "[A, B(1)]".
type AttributeList struct {
	OpenBracket  Token
	Attributes   []*Attribute
	CloseBracket Token
}

func NewAttributeList(attrs ...*Attribute) *AttributeList {
	return &AttributeList{
		OpenBracket:  Tok(OpenBracketToken),
		Attributes:   attrs,
		CloseBracket: Tok(CloseBracketToken),
	}
}

func (*AttributeList) Kind() Kind { return KindAttributeList }

func (n *AttributeList) rebuild(v *visitor) Node {
	c := *n
	c.OpenBracket = v.tok(n.OpenBracket)
	c.Attributes = many(v, n.Attributes)
	c.CloseBracket = v.tok(n.CloseBracket)
	return &c
}

func (n *AttributeList) emit(e *emitter) {
	e.token(n.OpenBracket)
	emitSeparated(e, n.Attributes, ",")
	e.token(n.CloseBracket)
}

// Attribute is a single attribute. The argument list is omitted when empty.
type Attribute struct {
	Name      Name
	Arguments []Expr
}

func NewAttribute(name Name, args ...Expr) *Attribute {
	return &Attribute{Name: name, Arguments: args}
}

func (*Attribute) Kind() Kind { return KindAttribute }

func (n *Attribute) rebuild(v *visitor) Node {
	c := *n
	c.Name = one(v, n.Name)
	c.Arguments = many(v, n.Arguments)
	return &c
}

func (n *Attribute) emit(e *emitter) {
	e.node(n.Name)
	if len(n.Arguments) > 0 {
		emitDelimited(e, "(", n.Arguments, ")")
	}
}

// VariableDeclaration is "Type a = 1, b" as used by fields and locals.
type VariableDeclaration struct {
	Type      Type
	Variables []*VariableDeclarator
}

func NewVariableDeclaration(typ Type, vars ...*VariableDeclarator) *VariableDeclaration {
	return &VariableDeclaration{Type: typ, Variables: vars}
}

func (*VariableDeclaration) Kind() Kind { return KindVariableDeclaration }

func (n *VariableDeclaration) rebuild(v *visitor) Node {
	c := *n
	c.Type = one(v, n.Type)
	c.Variables = many(v, n.Variables)
	return &c
}

func (n *VariableDeclaration) emit(e *emitter) {
	e.node(n.Type)
	emitSeparated(e, n.Variables, ",")
}

type VariableDeclarator struct {
	Identifier  Token
	Initializer *EqualsValue
}

// NewDeclarator returns a declarator; init may be nil.
func NewDeclarator(name string, init Expr) *VariableDeclarator {
	d := &VariableDeclarator{Identifier: Ident(name)}
	if !IsNil(init) {
		d.Initializer = NewEqualsValue(init)
	}
	return d
}

func (*VariableDeclarator) Kind() Kind { return KindVariableDeclarator }

func (n *VariableDeclarator) rebuild(v *visitor) Node {
	c := *n
	c.Identifier = v.tok(n.Identifier)
	c.Initializer = one(v, n.Initializer)
	return &c
}

func (n *VariableDeclarator) emit(e *emitter) {
	e.token(n.Identifier)
	e.node(n.Initializer)
}

// EqualsValue is "= value" following a declarator, parameter or property.
type EqualsValue struct {
	Equals Token
	Value  Expr
}

func NewEqualsValue(value Expr) *EqualsValue {
	return &EqualsValue{Equals: Tok(EqualsToken), Value: value}
}

func (*EqualsValue) Kind() Kind { return KindEqualsValue }

func (n *EqualsValue) rebuild(v *visitor) Node {
	c := *n
	c.Equals = v.tok(n.Equals)
	c.Value = one(v, n.Value)
	return &c
}

func (n *EqualsValue) emit(e *emitter) {
	e.token(n.Equals)
	e.node(n.Value)
}

// ArrowExpression is "=> expr".
type ArrowExpression struct {
	Arrow Token
	Expr  Expr
}

func NewArrowExpression(expr Expr) *ArrowExpression {
	return &ArrowExpression{Arrow: Tok(ArrowToken), Expr: expr}
}

func (*ArrowExpression) Kind() Kind { return KindArrowExpression }

func (n *ArrowExpression) rebuild(v *visitor) Node {
	c := *n
	c.Arrow = v.tok(n.Arrow)
	c.Expr = one(v, n.Expr)
	return &c
}

func (n *ArrowExpression) emit(e *emitter) {
	e.token(n.Arrow)
	e.node(n.Expr)
}
