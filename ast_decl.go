package kopyt

import "strings"

// Declaration is implemented by every top-level or class-member
// declaration kind: TypeAlias, ClassDeclaration, FunctionDeclaration,
// PropertyDeclaration, ObjectDeclaration.
type Declaration interface {
	Node
	isDeclaration()
}

// TypeAlias is "[modifiers] 'typealias' name [typeParameters] '=' Type".
type TypeAlias struct {
	basePos
	Modifiers      Modifiers
	Name           string
	TypeParameters []*TypeParameter
	Type           *Type
}

func (TypeAlias) isDeclaration() {}

func (n *TypeAlias) String() string {
	s := n.Modifiers.String() + "typealias " + n.Name
	if len(n.TypeParameters) > 0 {
		s += "<" + joinTypeParams(n.TypeParameters) + ">"
	}
	return s + " = " + n.Type.String()
}

func joinTypeParams(ps []*TypeParameter) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// ClassKind discriminates the four kinds (class, interface, fun
// interface, enum class) sharing ClassDeclaration's layout, per the
// tagged-variant design note.
type ClassKind int

const (
	ClassKindClass ClassKind = iota
	ClassKindInterface
	ClassKindFunInterface
	ClassKindEnum
)

// Parameter is "name ':' Type", used by class parameters and function
// value parameters, where the type is mandatory.
type Parameter struct {
	basePos
	Name string
	Type *Type
}

func (n *Parameter) String() string { return n.Name + ": " + n.Type.String() }

// ClassParameter is "[modifiers] ['val'|'var'] Parameter ['=' expr]"
// inside a primary constructor's parameter list.
type ClassParameter struct {
	basePos
	Modifiers  Modifiers
	Mutability string // "val", "var", or ""
	Parameter  *Parameter
	Default    Expression // nil if absent
}

func (n *ClassParameter) String() string {
	var b strings.Builder
	b.WriteString(n.Modifiers.String())
	if n.Mutability != "" {
		b.WriteString(n.Mutability)
		b.WriteString(" ")
	}
	b.WriteString(n.Parameter.String())
	if n.Default != nil {
		b.WriteString(" = ")
		b.WriteString(n.Default.String())
	}
	return b.String()
}

// PrimaryConstructor is "[modifiers 'constructor'] '(' classParameters ')'".
type PrimaryConstructor struct {
	basePos
	Modifiers  Modifiers
	Parameters []*ClassParameter
}

func (n *PrimaryConstructor) String() string {
	var b strings.Builder
	if len(n.Modifiers) > 0 {
		b.WriteString(n.Modifiers.String())
		b.WriteString("constructor")
	}
	b.WriteString("(")
	for i, p := range n.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(")")
	return b.String()
}

// ConstructorInvocation is "userType valueArguments", one shape a
// delegation specifier may take.
type ConstructorInvocation struct {
	basePos
	Type      *Type
	Arguments []*ValueArgument
}

func (n *ConstructorInvocation) String() string {
	return n.Type.String() + "(" + joinArgs(n.Arguments) + ")"
}

// ExplicitDelegation is "(userType | functionType) 'by' expr".
type ExplicitDelegation struct {
	basePos
	Type       *Type
	Expression Expression
}

func (n *ExplicitDelegation) String() string {
	return n.Type.String() + " by " + n.Expression.String()
}

// AnnotatedDelegationSpecifier wraps any delegation specifier shape
// (ConstructorInvocation, ExplicitDelegation, or a bare *Type) with
// its leading annotations.
type AnnotatedDelegationSpecifier struct {
	basePos
	Annotations []Annotation
	Specifier   Node
}

func (n *AnnotatedDelegationSpecifier) String() string {
	var b strings.Builder
	for _, a := range n.Annotations {
		b.WriteString(a.String())
		b.WriteString(" ")
	}
	b.WriteString(n.Specifier.String())
	return b.String()
}

// AnonymousInitializer is "'init' block".
type AnonymousInitializer struct {
	basePos
	Block *Block
}

func (AnonymousInitializer) isDeclaration() {}
func (n *AnonymousInitializer) String() string { return "init " + n.Block.String() }

// ConstructorDelegationCall is "('this' | 'super') valueArguments"
// following a secondary constructor's ':'.
type ConstructorDelegationCall struct {
	basePos
	Delegate  string // "this" or "super"
	Arguments []*ValueArgument
}

func (n *ConstructorDelegationCall) String() string {
	return n.Delegate + "(" + joinArgs(n.Arguments) + ")"
}

// SecondaryConstructor is "[modifiers] 'constructor' functionValueParameters [':' delegationCall] [block]".
type SecondaryConstructor struct {
	basePos
	Modifiers  Modifiers
	Parameters []*FunctionValueParameter
	Delegation *ConstructorDelegationCall
	Body       *Block
}

func (SecondaryConstructor) isDeclaration() {}

func (n *SecondaryConstructor) String() string {
	var b strings.Builder
	b.WriteString(n.Modifiers.String())
	b.WriteString("constructor(")
	for i, p := range n.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(")")
	if n.Delegation != nil {
		b.WriteString(" : ")
		b.WriteString(n.Delegation.String())
	}
	if n.Body != nil {
		b.WriteString(" ")
		b.WriteString(n.Body.String())
	}
	return b.String()
}

// CompanionObject is "[modifiers] 'companion' 'object' [name] [':' delegationSpecifiers] [classBody]".
type CompanionObject struct {
	basePos
	Modifiers            Modifiers
	Name                 string
	DelegationSpecifiers []Node
	Body                 *ClassBody
}

func (CompanionObject) isDeclaration() {}

func (n *CompanionObject) String() string {
	var b strings.Builder
	b.WriteString(n.Modifiers.String())
	b.WriteString("companion object")
	if n.Name != "" {
		b.WriteString(" ")
		b.WriteString(n.Name)
	}
	if len(n.DelegationSpecifiers) > 0 {
		b.WriteString(" : ")
		parts := make([]string, len(n.DelegationSpecifiers))
		for i, d := range n.DelegationSpecifiers {
			parts[i] = d.String()
		}
		b.WriteString(strings.Join(parts, ", "))
	}
	if n.Body != nil {
		b.WriteString(" ")
		b.WriteString(n.Body.String())
	}
	return b.String()
}

// EnumEntry is "[modifiers] simpleIdentifier [valueArguments] [classBody]".
type EnumEntry struct {
	basePos
	Modifiers Modifiers
	Name      string
	Arguments []*ValueArgument
	Body      *ClassBody
}

func (n *EnumEntry) String() string {
	var b strings.Builder
	b.WriteString(n.Modifiers.String())
	b.WriteString(n.Name)
	if n.Arguments != nil {
		b.WriteString("(")
		b.WriteString(joinArgs(n.Arguments))
		b.WriteString(")")
	}
	if n.Body != nil {
		b.WriteString(" ")
		b.WriteString(n.Body.String())
	}
	return b.String()
}

// EnumClassBody is "'{' [enumEntries] [';' classMemberDeclarations] '}'".
type EnumClassBody struct {
	basePos
	Entries []*EnumEntry
	Members []Declaration
}

func (n *EnumClassBody) String() string {
	var b strings.Builder
	b.WriteString("{\n")
	parts := make([]string, len(n.Entries))
	for i, e := range n.Entries {
		parts[i] = e.String()
	}
	b.WriteString(indent(strings.Join(parts, ",\n"), indentPrefix))
	if len(n.Members) > 0 {
		b.WriteString(";\n")
		for _, m := range n.Members {
			b.WriteString(indent(m.String(), indentPrefix))
			b.WriteString("\n")
		}
	} else {
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// ClassBody is "'{' classMemberDeclarations '}'".
type ClassBody struct {
	basePos
	Members []Declaration
}

func (n *ClassBody) String() string {
	if len(n.Members) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, m := range n.Members {
		b.WriteString(indent(m.String(), indentPrefix))
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// ClassDeclaration covers class, interface, fun interface and enum
// declarations — they share this exact shape and are distinguished by
// Kind, per the tagged-variant design note.
type ClassDeclaration struct {
	basePos
	Modifiers            Modifiers
	Kind                 ClassKind
	Name                 string
	TypeParameters       []*TypeParameter
	PrimaryConstructor   *PrimaryConstructor
	DelegationSpecifiers []Node
	Constraints          []*TypeConstraint
	Body                 Node // *ClassBody or *EnumClassBody, nil if absent
}

func (ClassDeclaration) isDeclaration() {}

func (n *ClassDeclaration) String() string {
	var b strings.Builder
	b.WriteString(n.Modifiers.String())
	switch n.Kind {
	case ClassKindInterface:
		b.WriteString("interface ")
	case ClassKindFunInterface:
		b.WriteString("fun interface ")
	default:
		b.WriteString("class ")
	}
	b.WriteString(n.Name)
	if len(n.TypeParameters) > 0 {
		b.WriteString("<")
		b.WriteString(joinTypeParams(n.TypeParameters))
		b.WriteString(">")
	}
	if n.PrimaryConstructor != nil {
		if len(n.PrimaryConstructor.Modifiers) > 0 {
			b.WriteString(" ")
		}
		b.WriteString(n.PrimaryConstructor.String())
	}
	if len(n.DelegationSpecifiers) > 0 {
		b.WriteString(" : ")
		parts := make([]string, len(n.DelegationSpecifiers))
		for i, d := range n.DelegationSpecifiers {
			parts[i] = d.String()
		}
		b.WriteString(strings.Join(parts, ", "))
	}
	if len(n.Constraints) > 0 {
		b.WriteString(" where ")
		parts := make([]string, len(n.Constraints))
		for i, c := range n.Constraints {
			parts[i] = c.String()
		}
		b.WriteString(strings.Join(parts, ", "))
	}
	if n.Body != nil {
		b.WriteString(" ")
		b.WriteString(n.Body.String())
	}
	return b.String()
}

// ObjectDeclaration is "[modifiers] 'object' name [':' delegationSpecifiers] [classBody]".
type ObjectDeclaration struct {
	basePos
	Modifiers            Modifiers
	Name                 string
	DelegationSpecifiers []Node
	Body                 *ClassBody
}

func (ObjectDeclaration) isDeclaration() {}

func (n *ObjectDeclaration) String() string {
	var b strings.Builder
	b.WriteString(n.Modifiers.String())
	b.WriteString("object ")
	b.WriteString(n.Name)
	if len(n.DelegationSpecifiers) > 0 {
		b.WriteString(" : ")
		parts := make([]string, len(n.DelegationSpecifiers))
		for i, d := range n.DelegationSpecifiers {
			parts[i] = d.String()
		}
		b.WriteString(strings.Join(parts, ", "))
	}
	if n.Body != nil {
		b.WriteString(" ")
		b.WriteString(n.Body.String())
	}
	return b.String()
}

// FunctionValueParameter is "[modifiers] Parameter ['=' expr]".
type FunctionValueParameter struct {
	basePos
	Modifiers Modifiers
	Parameter *Parameter
	Default   Expression
}

func (n *FunctionValueParameter) String() string {
	s := n.Modifiers.String() + n.Parameter.String()
	if n.Default != nil {
		s += " = " + n.Default.String()
	}
	return s
}

// FunctionBody is implemented by *Block and Expression (for "= expr"
// bodies), matching the grammar's "block | ('=' expression)".
type FunctionBody interface {
	Node
}

// FunctionDeclaration is "[modifiers] 'fun' [typeParameters] [receiver '.'] name functionValueParameters [':' returnType] [constraints] [functionBody]".
type FunctionDeclaration struct {
	basePos
	Modifiers      Modifiers
	TypeParameters []*TypeParameter
	Receiver       *Type
	Name           string
	Parameters     []*FunctionValueParameter
	ReturnType     *Type
	Constraints    []*TypeConstraint
	Body           FunctionBody
}

func (FunctionDeclaration) isDeclaration() {}

func (n *FunctionDeclaration) String() string {
	var b strings.Builder
	b.WriteString(n.Modifiers.String())
	b.WriteString("fun ")
	if len(n.TypeParameters) > 0 {
		b.WriteString("<")
		b.WriteString(joinTypeParams(n.TypeParameters))
		b.WriteString("> ")
	}
	if n.Receiver != nil {
		b.WriteString(n.Receiver.String())
		b.WriteString(".")
	}
	b.WriteString(n.Name)
	b.WriteString("(")
	for i, p := range n.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(")")
	if n.ReturnType != nil {
		b.WriteString(": ")
		b.WriteString(n.ReturnType.String())
	}
	if len(n.Constraints) > 0 {
		b.WriteString(" where ")
		parts := make([]string, len(n.Constraints))
		for i, c := range n.Constraints {
			parts[i] = c.String()
		}
		b.WriteString(strings.Join(parts, ", "))
	}
	if n.Body != nil {
		switch body := n.Body.(type) {
		case *Block:
			b.WriteString(" ")
			b.WriteString(body.String())
		default:
			b.WriteString(" = ")
			b.WriteString(body.String())
		}
	}
	return b.String()
}

// VariableDeclaration is "[annotations] simpleIdentifier [':' Type]".
type VariableDeclaration struct {
	basePos
	Annotations []Annotation
	Name        string
	Type        *Type
}

func (n *VariableDeclaration) String() string {
	s := ""
	for _, a := range n.Annotations {
		s += a.String() + " "
	}
	s += n.Name
	if n.Type != nil {
		s += ": " + n.Type.String()
	}
	return s
}

// MultiVariableDeclaration is "'(' VariableDeclaration {',' VariableDeclaration} ')'",
// the destructuring form.
type MultiVariableDeclaration struct {
	basePos
	Declarations []*VariableDeclaration
}

func (n *MultiVariableDeclaration) String() string {
	parts := make([]string, len(n.Declarations))
	for i, d := range n.Declarations {
		parts[i] = d.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// PropertyDelegate is "'by' expr".
type PropertyDelegate struct {
	basePos
	Expression Expression
}

func (n *PropertyDelegate) String() string { return "by " + n.Expression.String() }

// Getter is "[modifiers] 'get' ['(' ')' [':' Type] functionBody]".
type Getter struct {
	basePos
	Modifiers  Modifiers
	ReturnType *Type
	Body       FunctionBody
}

func (n *Getter) String() string {
	s := n.Modifiers.String() + "get"
	if n.Body != nil {
		s += "()"
		if n.ReturnType != nil {
			s += ": " + n.ReturnType.String()
		}
		switch body := n.Body.(type) {
		case *Block:
			s += " " + body.String()
		default:
			s += " = " + body.String()
		}
	}
	return s
}

// Setter is "[modifiers] 'set' ['(' Parameter ')' functionBody]".
type Setter struct {
	basePos
	Modifiers Modifiers
	Parameter *FunctionValueParameter
	Body      FunctionBody
}

func (n *Setter) String() string {
	s := n.Modifiers.String() + "set"
	if n.Body != nil {
		s += "(" + n.Parameter.String() + ")"
		switch body := n.Body.(type) {
		case *Block:
			s += " " + body.String()
		default:
			s += " = " + body.String()
		}
	}
	return s
}

// PropertyDeclaration is "[modifiers] ('val'|'var') [typeParameters] [receiver '.'] (VariableDeclaration | MultiVariableDeclaration) [constraints] ['=' expr | delegate] [';'] [getter] [setter]".
type PropertyDeclaration struct {
	basePos
	Modifiers      Modifiers
	Mutability     string // "val" or "var"
	TypeParameters []*TypeParameter
	Receiver       *Type
	Declaration    Node // *VariableDeclaration or *MultiVariableDeclaration
	Constraints    []*TypeConstraint
	Value          Expression
	Delegate       *PropertyDelegate
	Getter         *Getter
	Setter         *Setter
}

func (PropertyDeclaration) isDeclaration() {}

func (n *PropertyDeclaration) String() string {
	var b strings.Builder
	b.WriteString(n.Modifiers.String())
	b.WriteString(n.Mutability)
	b.WriteString(" ")
	if len(n.TypeParameters) > 0 {
		b.WriteString("<")
		b.WriteString(joinTypeParams(n.TypeParameters))
		b.WriteString("> ")
	}
	if n.Receiver != nil {
		b.WriteString(n.Receiver.String())
		b.WriteString(".")
	}
	b.WriteString(n.Declaration.String())
	if len(n.Constraints) > 0 {
		b.WriteString(" where ")
		parts := make([]string, len(n.Constraints))
		for i, c := range n.Constraints {
			parts[i] = c.String()
		}
		b.WriteString(strings.Join(parts, ", "))
	}
	if n.Value != nil {
		b.WriteString(" = ")
		b.WriteString(n.Value.String())
	} else if n.Delegate != nil {
		b.WriteString(" ")
		b.WriteString(n.Delegate.String())
	}
	if n.Getter != nil || n.Setter != nil {
		b.WriteString("\n")
		if n.Getter != nil {
			b.WriteString(indent(n.Getter.String(), indentPrefix))
		}
		if n.Setter != nil {
			if n.Getter != nil {
				b.WriteString("\n")
			}
			b.WriteString(indent(n.Setter.String(), indentPrefix))
		}
	}
	return b.String()
}
