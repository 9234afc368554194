package kopyt

import "strings"

// Node is implemented by every syntax tree element. Every node carries
// a Position equal to some token's position or that of its first
// child, and renders back to source text via String() such that
// reparsing the rendering yields a structurally equal tree.
type Node interface {
	Position() Position
	String() string
}

// basePos is embedded by every concrete node to satisfy the Position
// half of the Node interface without repeating the same accessor on
// every type.
type basePos struct {
	Pos Position
}

func (b basePos) Position() Position { return b.Pos }

// Identifier is a dot-separated chain of simple identifiers, rendered
// joined by '.'.
type Identifier struct {
	basePos
	Value string
}

func (n *Identifier) String() string { return n.Value }

// SimpleIdentifier is a single, unqualified name. It doubles as a
// primary expression (a bare name reference), matching the grammar
// where simpleIdentifier is itself one of primaryExpression's
// alternatives.
type SimpleIdentifier struct {
	basePos
	Value string
}

func (SimpleIdentifier) isExpression()     {}
func (n *SimpleIdentifier) String() string { return n.Value }

// Modifier is a single keyword modifier spelling (e.g. "public",
// "override", "suspend") or an Annotation attached inline with other
// modifiers.
type Modifier interface {
	Node
	isModifier()
}

// KeywordModifier is a bare modifier keyword.
type KeywordModifier struct {
	basePos
	Value string
}

func (KeywordModifier) isModifier()         {}
func (n *KeywordModifier) String() string   { return n.Value }

// Modifiers is an ordered list of modifiers (keywords and/or
// annotations) preceding a declaration, parameter or type.
type Modifiers []Modifier

func (m Modifiers) String() string {
	if len(m) == 0 {
		return ""
	}
	parts := make([]string, len(m))
	for i, mod := range m {
		parts[i] = mod.String()
	}
	return strings.Join(parts, " ") + " "
}

// Annotation is implemented by SingleAnnotation and MultiAnnotation.
type Annotation interface {
	Modifier
	Target() string
}

// UnescapedAnnotation is a bare annotation name plus optional value
// arguments, as it appears inside a bracketed multi-annotation list.
type UnescapedAnnotation struct {
	basePos
	Name      string
	Arguments []*ValueArgument
}

func (n *UnescapedAnnotation) String() string {
	if n.Arguments == nil {
		return n.Name
	}
	return n.Name + "(" + joinArgs(n.Arguments) + ")"
}

// SingleAnnotation is "@[target:]Name[(args)]".
type SingleAnnotation struct {
	basePos
	TargetName string
	Name       string
	Arguments  []*ValueArgument
}

func (SingleAnnotation) isModifier()          {}
func (n *SingleAnnotation) Target() string    { return n.TargetName }
func (n *SingleAnnotation) String() string {
	var b strings.Builder
	b.WriteString("@")
	if n.TargetName != "" {
		b.WriteString(n.TargetName)
		b.WriteString(":")
	}
	b.WriteString(n.Name)
	if n.Arguments != nil {
		b.WriteString("(")
		b.WriteString(joinArgs(n.Arguments))
		b.WriteString(")")
	}
	return b.String()
}

// MultiAnnotation is "@[target:][Name1 Name2 ...]".
type MultiAnnotation struct {
	basePos
	TargetName string
	Sequence   []*UnescapedAnnotation
}

func (MultiAnnotation) isModifier()       {}
func (n *MultiAnnotation) Target() string { return n.TargetName }
func (n *MultiAnnotation) String() string {
	var b strings.Builder
	b.WriteString("@")
	if n.TargetName != "" {
		b.WriteString(n.TargetName)
		b.WriteString(":")
	}
	b.WriteString("[")
	for i, a := range n.Sequence {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(a.String())
	}
	b.WriteString("]")
	return b.String()
}

func joinArgs(args []*ValueArgument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}
