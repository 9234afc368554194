package kopyt

import "strings"

// Expression is implemented by every expression-producing node, from
// the top of the precedence chain (disjunction) down to primary
// expressions.
type Expression interface {
	Node
	isExpression()
}

// BinaryExpression covers every same-shaped binary precedence level —
// disjunction (||), conjunction (&&), equality (==, !=, ===, !==),
// comparison (<, >, <=, >=), elvis (?:), range (..), additive (+, -)
// and multiplicative (*, /, %) — discriminated by Operator, per the
// tagged-variant design note: these levels differ only in which
// operator spelling and precedence class they occupy, not in shape.
type BinaryExpression struct {
	basePos
	Left, Right Expression
	Operator    string
}

func (BinaryExpression) isExpression() {}

func (n *BinaryExpression) String() string {
	if n.Right == nil {
		return n.Left.String()
	}
	return n.Left.String() + " " + n.Operator + " " + n.Right.String()
}

// InfixOperation is the in/!in/is/!is precedence level: the right
// operand is an Expression for in/!in but a *Type for is/!is.
type InfixOperation struct {
	basePos
	Left       Expression
	Operator   string
	RightExpr  Expression
	RightType  *Type
}

func (InfixOperation) isExpression() {}

func (n *InfixOperation) String() string {
	if n.Operator == "" {
		return n.Left.String()
	}
	if n.RightType != nil {
		return n.Left.String() + " " + n.Operator + " " + n.RightType.String()
	}
	return n.Left.String() + " " + n.Operator + " " + n.RightExpr.String()
}

// InfixFunctionCall applies a bare-identifier infix function between
// two range expressions, e.g. "a zip b".
type InfixFunctionCall struct {
	basePos
	Left, Right Expression
	Name        string
}

func (InfixFunctionCall) isExpression() {}

func (n *InfixFunctionCall) String() string {
	if n.Name == "" {
		return n.Left.String()
	}
	return n.Left.String() + " " + n.Name + " " + n.Right.String()
}

// AsExpression is "expr as Type" or "expr as? Type".
type AsExpression struct {
	basePos
	Left     Expression
	Operator string
	Type     *Type
}

func (AsExpression) isExpression() {}

func (n *AsExpression) String() string {
	if n.Type == nil {
		return n.Left.String()
	}
	return n.Left.String() + " " + n.Operator + " " + n.Type.String()
}

// UnaryPrefix is one prefix annotation, label, or prefix operator
// ("++", "--", "+", "-", "!") preceding a postfix unary expression.
type UnaryPrefix struct {
	basePos
	Annotation Annotation // set when this prefix is an annotation
	Label      string     // set when this prefix is a "name@" label
	Operator   string      // set when this prefix is ++/--/+/-/!
}

func (n *UnaryPrefix) String() string {
	switch {
	case n.Annotation != nil:
		return n.Annotation.String() + " "
	case n.Label != "":
		return n.Label + "@"
	default:
		return n.Operator
	}
}

// PrefixUnaryExpression is zero or more UnaryPrefix followed by a
// postfix unary expression.
type PrefixUnaryExpression struct {
	basePos
	Prefixes []*UnaryPrefix
	Expr     Expression
}

func (PrefixUnaryExpression) isExpression() {}

func (n *PrefixUnaryExpression) String() string {
	var b strings.Builder
	for _, p := range n.Prefixes {
		b.WriteString(p.String())
	}
	b.WriteString(n.Expr.String())
	return b.String()
}

// PostfixUnarySuffix is implemented by every kind of postfix suffix:
// "++"/"--"/"!!", type arguments, call suffix, indexing and
// navigation.
type PostfixUnarySuffix interface {
	Node
	isPostfixSuffix()
}

// SimpleSuffix is "++", "--" or "!!".
type SimpleSuffix struct {
	basePos
	Operator string
}

func (SimpleSuffix) isPostfixSuffix()  {}
func (n *SimpleSuffix) String() string { return n.Operator }

// TypeArguments is a '<...>' list of type projections.
type TypeArguments struct {
	basePos
	Arguments []TypeProjection
}

func (TypeArguments) isPostfixSuffix() {}

func (n *TypeArguments) String() string {
	parts := make([]string, len(n.Arguments))
	for i, a := range n.Arguments {
		parts[i] = a.String()
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// ValueArgument is "[name =] [*]expr" inside a value-argument list.
type ValueArgument struct {
	basePos
	Name   string // empty if unnamed
	Spread bool
	Value  Expression
}

func (n *ValueArgument) String() string {
	var b strings.Builder
	if n.Name != "" {
		b.WriteString(n.Name)
		b.WriteString(" = ")
	}
	if n.Spread {
		b.WriteString("*")
	}
	b.WriteString(n.Value.String())
	return b.String()
}

// AnnotatedLambda is an optionally-annotated/labelled lambda literal
// trailing a call suffix.
type AnnotatedLambda struct {
	basePos
	Annotations []Annotation
	Label       string
	Lambda      *LambdaLiteral
}

func (n *AnnotatedLambda) String() string {
	var b strings.Builder
	for _, a := range n.Annotations {
		b.WriteString(a.String())
		b.WriteString(" ")
	}
	if n.Label != "" {
		b.WriteString(n.Label)
		b.WriteString("@ ")
	}
	b.WriteString(n.Lambda.String())
	return b.String()
}

// CallSuffix is optional type arguments, optional value arguments and
// optional trailing annotated lambda attached to a primary expression
// to form a call.
type CallSuffix struct {
	basePos
	TypeArguments   *TypeArguments
	ValueArguments  []*ValueArgument
	AnnotatedLambda *AnnotatedLambda
	hasArgs         bool
}

func (CallSuffix) isPostfixSuffix() {}

func (n *CallSuffix) String() string {
	var b strings.Builder
	if n.TypeArguments != nil {
		b.WriteString(n.TypeArguments.String())
	}
	if n.hasArgs {
		b.WriteString("(")
		b.WriteString(joinArgs(n.ValueArguments))
		b.WriteString(")")
	}
	if n.AnnotatedLambda != nil {
		b.WriteString(" ")
		b.WriteString(n.AnnotatedLambda.String())
	}
	return b.String()
}

// IndexingSuffix is "'[' expr {',' expr} [','] ']'".
type IndexingSuffix struct {
	basePos
	Expressions []Expression
}

func (IndexingSuffix) isPostfixSuffix() {}

func (n *IndexingSuffix) String() string {
	parts := make([]string, len(n.Expressions))
	for i, e := range n.Expressions {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// NavigationSuffix is "('.' | '?.' | '::') (identifier | '(' expr ')' | 'class')".
type NavigationSuffix struct {
	basePos
	Operator   string
	Identifier string
	Expr       Expression // set when navigating to a parenthesized expression
	IsClass    bool
}

func (NavigationSuffix) isPostfixSuffix() {}

func (n *NavigationSuffix) String() string {
	switch {
	case n.IsClass:
		return n.Operator + "class"
	case n.Expr != nil:
		return n.Operator + "(" + n.Expr.String() + ")"
	default:
		return n.Operator + n.Identifier
	}
}

// PostfixUnaryExpression is a primary expression followed by zero or
// more postfix suffixes.
type PostfixUnaryExpression struct {
	basePos
	Primary  Expression
	Suffixes []PostfixUnarySuffix
}

func (PostfixUnaryExpression) isExpression() {}

func (n *PostfixUnaryExpression) String() string {
	var b strings.Builder
	b.WriteString(n.Primary.String())
	for _, s := range n.Suffixes {
		b.WriteString(s.String())
	}
	return b.String()
}

// DirectlyAssignableExpression is the left-hand side of an assignment:
// a postfix expression ending in a navigation/indexing suffix, a bare
// identifier, or a parenthesized form of either.
type DirectlyAssignableExpression struct {
	basePos
	Postfix    Expression
	Identifier string
	Parenthesized *DirectlyAssignableExpression
}

func (DirectlyAssignableExpression) isExpression() {}

func (n *DirectlyAssignableExpression) String() string {
	switch {
	case n.Parenthesized != nil:
		return "(" + n.Parenthesized.String() + ")"
	case n.Postfix != nil:
		return n.Postfix.String()
	default:
		return n.Identifier
	}
}

// Assignment is "directlyAssignable '=' expr" or
// "assignable compoundOp expr".
type Assignment struct {
	basePos
	Target   Expression
	Operator string
	Value    Expression
}

func (n *Assignment) String() string {
	return n.Target.String() + " " + n.Operator + " " + n.Value.String()
}
