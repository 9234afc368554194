package kopyt

import "strings"

// LiteralConstant is implemented by every numeric/boolean/null/char
// literal form. They share shape (a single source-text value) and are
// discriminated by their TokenType-derived Kind.
type LiteralConstant struct {
	basePos
	Kind  TokenType
	Value string
}

func (LiteralConstant) isExpression() {}

func (n *LiteralConstant) String() string { return n.Value }

// StringLiteral covers LineStringLiteral and MultiLineStringLiteral,
// discriminated by MultiLine.
type StringLiteral struct {
	basePos
	Value     string
	MultiLine bool
}

func (StringLiteral) isExpression() {}

func (n *StringLiteral) String() string { return n.Value }

// ParenthesizedExpression is "'(' expr ')'".
type ParenthesizedExpression struct {
	basePos
	Inner Expression
}

func (ParenthesizedExpression) isExpression() {}

func (n *ParenthesizedExpression) String() string { return "(" + n.Inner.String() + ")" }

// CollectionLiteral is "'[' expr {',' expr} [','] ']'".
type CollectionLiteral struct {
	basePos
	Elements []Expression
}

func (CollectionLiteral) isExpression() {}

func (n *CollectionLiteral) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// LambdaParameter is a variable or destructuring parameter with an
// optional type, inside a lambda's parameter list.
type LambdaParameter struct {
	basePos
	Name        string
	Destructure []*ParameterWithOptionalType
	Type        *Type
}

func (n *LambdaParameter) String() string {
	var b strings.Builder
	if n.Destructure != nil {
		b.WriteString("(")
		for i, p := range n.Destructure {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
		b.WriteString(")")
	} else {
		b.WriteString(n.Name)
	}
	if n.Type != nil {
		b.WriteString(": ")
		b.WriteString(n.Type.String())
	}
	return b.String()
}

// ParameterWithOptionalType is "name [: Type]".
type ParameterWithOptionalType struct {
	basePos
	Name string
	Type *Type
}

func (n *ParameterWithOptionalType) String() string {
	if n.Type != nil {
		return n.Name + ": " + n.Type.String()
	}
	return n.Name
}

// LambdaLiteral is "'{' [params '->'] statements '}'".
type LambdaLiteral struct {
	basePos
	Parameters []*LambdaParameter
	Statements []*Statement
}

func (LambdaLiteral) isExpression() {}

func (n *LambdaLiteral) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	if len(n.Parameters) > 0 {
		parts := make([]string, len(n.Parameters))
		for i, p := range n.Parameters {
			parts[i] = p.String()
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(" -> ")
	}
	b.WriteString(joinStatements(n.Statements))
	b.WriteString(" }")
	return b.String()
}

// AnonymousFunction is "'fun' [Type '.'] functionValueParameters [':' Type] [constraints] [functionBody]".
type AnonymousFunction struct {
	basePos
	Receiver    *Type
	Parameters  []*FunctionValueParameter
	ReturnType  *Type
	Constraints []*TypeConstraint
	Body        FunctionBody
}

func (AnonymousFunction) isExpression() {}

func (n *AnonymousFunction) String() string {
	var b strings.Builder
	b.WriteString("fun ")
	if n.Receiver != nil {
		b.WriteString(n.Receiver.String())
		b.WriteString(".")
	}
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
		parts := make([]string, len(n.Constraints))
		for i, c := range n.Constraints {
			parts[i] = c.String()
		}
		b.WriteString(" where ")
		b.WriteString(strings.Join(parts, ", "))
	}
	switch body := n.Body.(type) {
	case nil:
	case *Block:
		b.WriteString(" ")
		b.WriteString(body.String())
	default:
		b.WriteString(" = ")
		b.WriteString(body.String())
	}
	return b.String()
}

// ObjectLiteral is "['data'] 'object' [':' delegationSpecifiers] [classBody]".
type ObjectLiteral struct {
	basePos
	Data                bool
	DelegationSpecifiers []Node
	Body                *ClassBody
}

func (ObjectLiteral) isExpression() {}

func (n *ObjectLiteral) String() string {
	var b strings.Builder
	if n.Data {
		b.WriteString("data ")
	}
	b.WriteString("object")
	if len(n.DelegationSpecifiers) > 0 {
		parts := make([]string, len(n.DelegationSpecifiers))
		for i, d := range n.DelegationSpecifiers {
			parts[i] = d.String()
		}
		b.WriteString(" : ")
		b.WriteString(strings.Join(parts, ", "))
	}
	if n.Body != nil {
		b.WriteString(" ")
		b.WriteString(n.Body.String())
	}
	return b.String()
}

// ThisExpression is "'this' ['@' label]".
type ThisExpression struct {
	basePos
	Label string
}

func (ThisExpression) isExpression() {}

func (n *ThisExpression) String() string {
	if n.Label != "" {
		return "this@" + n.Label
	}
	return "this"
}

// SuperExpression is "'super' ['<' Type '>'] ['@' label]".
type SuperExpression struct {
	basePos
	SuperType *Type
	Label     string
}

func (SuperExpression) isExpression() {}

func (n *SuperExpression) String() string {
	var b strings.Builder
	b.WriteString("super")
	if n.SuperType != nil {
		b.WriteString("<")
		b.WriteString(n.SuperType.String())
		b.WriteString(">")
	}
	if n.Label != "" {
		b.WriteString("@")
		b.WriteString(n.Label)
	}
	return b.String()
}

// IfExpression is "'if' '(' expr ')' body ['else' body]".
type IfExpression struct {
	basePos
	Condition Expression
	Body      Node
	ElseBody  Node // nil if absent
}

func (IfExpression) isExpression() {}

func (n *IfExpression) String() string {
	var b strings.Builder
	b.WriteString("if (")
	b.WriteString(n.Condition.String())
	b.WriteString(") ")
	b.WriteString(n.Body.String())
	if n.ElseBody != nil {
		b.WriteString(" else ")
		b.WriteString(n.ElseBody.String())
	}
	return b.String()
}

// WhenSubject is the optional "'(' [annotations] ['val' decl '='] expr ')'"
// subject of a when expression.
type WhenSubject struct {
	basePos
	Annotations []Annotation
	Declaration *VariableDeclaration
	Value       Expression
}

func (n *WhenSubject) String() string {
	var b strings.Builder
	b.WriteString("(")
	for _, a := range n.Annotations {
		b.WriteString(a.String())
		b.WriteString(" ")
	}
	if n.Declaration != nil {
		b.WriteString("val ")
		b.WriteString(n.Declaration.String())
		b.WriteString(" = ")
	}
	b.WriteString(n.Value.String())
	b.WriteString(")")
	return b.String()
}

// WhenCondition is implemented by RangeTest, TypeTest, and a plain
// Expression used directly as a condition.
type WhenCondition interface {
	Node
	isWhenCondition()
}

// RangeTest is "['!'] 'in' expr" used as a when condition.
type RangeTest struct {
	basePos
	Operator string
	Operand  Expression
}

func (RangeTest) isWhenCondition()  {}
func (n *RangeTest) String() string { return n.Operator + " " + n.Operand.String() }

// TypeTest is "['!'] 'is' Type" used as a when condition.
type TypeTest struct {
	basePos
	Operator string
	Operand  *Type
}

func (TypeTest) isWhenCondition()  {}
func (n *TypeTest) String() string { return n.Operator + " " + n.Operand.String() }

// exprCondition adapts a plain Expression to the WhenCondition
// interface for bare-expression when-entry conditions.
type exprCondition struct{ Expression }

func (exprCondition) isWhenCondition() {}

// WhenEntry is implemented by WhenConditionEntry and WhenElseEntry.
type WhenEntry interface {
	Node
	isWhenEntry()
}

// WhenConditionEntry is "conditions '->' body".
type WhenConditionEntry struct {
	basePos
	Conditions []WhenCondition
	Body       Node
}

func (WhenConditionEntry) isWhenEntry() {}

func (n *WhenConditionEntry) String() string {
	parts := make([]string, len(n.Conditions))
	for i, c := range n.Conditions {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ") + " -> " + n.Body.String()
}

// WhenElseEntry is "'else' '->' body".
type WhenElseEntry struct {
	basePos
	Body Node
}

func (WhenElseEntry) isWhenEntry()    {}
func (n *WhenElseEntry) String() string { return "else -> " + n.Body.String() }

// WhenExpression is "'when' [subject] '{' entries '}'".
type WhenExpression struct {
	basePos
	Subject *WhenSubject
	Entries []WhenEntry
}

func (WhenExpression) isExpression() {}

func (n *WhenExpression) String() string {
	var b strings.Builder
	b.WriteString("when ")
	if n.Subject != nil {
		b.WriteString(n.Subject.String())
		b.WriteString(" ")
	}
	b.WriteString("{\n")
	for _, e := range n.Entries {
		b.WriteString(indent(e.String(), indentPrefix))
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// CatchBlock is "'catch' '(' annotations name ':' Type ')' block".
type CatchBlock struct {
	basePos
	Annotations []Annotation
	Name        string
	Type        *Type
	Block       *Block
}

func (n *CatchBlock) String() string {
	s := "catch ("
	for _, a := range n.Annotations {
		s += a.String() + " "
	}
	return s + n.Name + ": " + n.Type.String() + ") " + n.Block.String()
}

// FinallyBlock is "'finally' block".
type FinallyBlock struct {
	basePos
	Block *Block
}

func (n *FinallyBlock) String() string { return "finally " + n.Block.String() }

// TryExpression is "'try' block {catchBlock} [finallyBlock]".
type TryExpression struct {
	basePos
	TryBlock     *Block
	CatchBlocks  []*CatchBlock
	FinallyBlock *FinallyBlock
}

func (TryExpression) isExpression() {}

func (n *TryExpression) String() string {
	var b strings.Builder
	b.WriteString("try ")
	b.WriteString(n.TryBlock.String())
	for _, c := range n.CatchBlocks {
		b.WriteString(" ")
		b.WriteString(c.String())
	}
	if n.FinallyBlock != nil {
		b.WriteString(" ")
		b.WriteString(n.FinallyBlock.String())
	}
	return b.String()
}

// JumpExpression is implemented by ThrowExpression, ReturnExpression,
// ContinueExpression and BreakExpression.
type JumpExpression interface {
	Expression
	isJump()
}

type ThrowExpression struct {
	basePos
	Expr Expression
}

func (ThrowExpression) isExpression()      {}
func (ThrowExpression) isJump()            {}
func (n *ThrowExpression) String() string  { return "throw " + n.Expr.String() }

type ReturnExpression struct {
	basePos
	Label string
	Expr  Expression // nil if absent
}

func (ReturnExpression) isExpression() {}
func (ReturnExpression) isJump()       {}

func (n *ReturnExpression) String() string {
	s := "return"
	if n.Label != "" {
		s += "@" + n.Label
	}
	if n.Expr != nil {
		s += " " + n.Expr.String()
	}
	return s
}

type ContinueExpression struct {
	basePos
	Label string
}

func (ContinueExpression) isExpression() {}
func (ContinueExpression) isJump()       {}

func (n *ContinueExpression) String() string {
	if n.Label != "" {
		return "continue@" + n.Label
	}
	return "continue"
}

type BreakExpression struct {
	basePos
	Label string
}

func (BreakExpression) isExpression() {}
func (BreakExpression) isJump()       {}

func (n *BreakExpression) String() string {
	if n.Label != "" {
		return "break@" + n.Label
	}
	return "break"
}

// CallableReference is "[receiverType] '::' (simpleIdentifier | 'class')".
type CallableReference struct {
	basePos
	Receiver *ReceiverType
	Member   string
}

func (CallableReference) isExpression() {}

func (n *CallableReference) String() string {
	if n.Receiver != nil {
		return n.Receiver.String() + "::" + n.Member
	}
	return "::" + n.Member
}

const indentPrefix = "    "

func indent(code, prefix string) string {
	lines := strings.Split(code, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}

func joinStatements(stmts []*Statement) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.String()
	}
	return strings.Join(parts, "; ")
}
