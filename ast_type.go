package kopyt

import "strings"

// Type is the modifiers plus subtype union: FunctionType, NullableType,
// TypeReference, or ParenthesizedType.
type Type struct {
	basePos
	Modifiers Modifiers
	Subtype   TypeSubtype
}

func (n *Type) String() string { return n.Modifiers.String() + n.Subtype.String() }

// TypeSubtype is implemented by every concrete shape a Type may take.
type TypeSubtype interface {
	Node
	isTypeSubtype()
}

// TypeReference is either a UserType or the literal "dynamic".
type TypeReference struct {
	basePos
	Subtype Node // *UserType, or nil when Dynamic is true
	Dynamic bool
}

func (TypeReference) isTypeSubtype() {}
func (n *TypeReference) String() string {
	if n.Dynamic {
		return "dynamic"
	}
	return n.Subtype.String()
}

// NullableType is a subtype followed by one or more '?'.
type NullableType struct {
	basePos
	Subtype  TypeSubtype
	Nullable string // one or more '?'
}

func (NullableType) isTypeSubtype() {}
func (n *NullableType) String() string {
	return n.Subtype.String() + n.Nullable
}

// SimpleUserType is an identifier with optional type arguments.
type SimpleUserType struct {
	basePos
	Name     string
	Generics []TypeProjection
}

func (n *SimpleUserType) String() string {
	if len(n.Generics) == 0 {
		return n.Name
	}
	parts := make([]string, len(n.Generics))
	for i, g := range n.Generics {
		parts[i] = g.String()
	}
	return n.Name + "<" + strings.Join(parts, ", ") + ">"
}

// UserType is a dot-separated sequence of SimpleUserType segments.
type UserType []*SimpleUserType

func (u UserType) Position() Position {
	if len(u) == 0 {
		return Position{}
	}
	return u[0].Position()
}

func (u UserType) String() string {
	parts := make([]string, len(u))
	for i, s := range u {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// TypeProjection is either TypeProjectionStar ('*') or
// TypeProjectionWithType (optional variance modifier plus a Type).
type TypeProjection interface {
	Node
	isTypeProjection()
}

type TypeProjectionStar struct{ basePos }

func (TypeProjectionStar) isTypeProjection()  {}
func (n *TypeProjectionStar) String() string  { return "*" }

type TypeProjectionWithType struct {
	basePos
	Modifiers Modifiers
	Type      *Type
}

func (TypeProjectionWithType) isTypeProjection() {}
func (n *TypeProjectionWithType) String() string {
	return n.Modifiers.String() + n.Type.String()
}

// FunctionTypeParameter is either a bare Type or a name-annotated
// parameter ("name: Type") in a function type's parameter list.
type FunctionTypeParameter struct {
	basePos
	Name *SimpleIdentifier // nil if unnamed
	Type *Type
}

func (n *FunctionTypeParameter) String() string {
	if n.Name != nil {
		return n.Name.String() + ": " + n.Type.String()
	}
	return n.Type.String()
}

// FunctionType is "[ReceiverType '.'] '(' params ')' '->' returnType".
type FunctionType struct {
	basePos
	Receiver   *ReceiverType
	Parameters []*FunctionTypeParameter
	ReturnType *Type
}

func (FunctionType) isTypeSubtype() {}
func (n *FunctionType) String() string {
	var b strings.Builder
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
	b.WriteString(") -> ")
	b.WriteString(n.ReturnType.String())
	return b.String()
}

// ReceiverType is the extension-receiver form of a Type, i.e. its
// modifiers plus subtype, used before '.' in extension
// functions/properties and function types.
type ReceiverType struct {
	basePos
	Modifiers Modifiers
	Subtype   TypeSubtype
}

func (n *ReceiverType) String() string { return n.Modifiers.String() + n.Subtype.String() }

// ParenthesizedType is a Type wrapped in parentheses.
type ParenthesizedType struct {
	basePos
	Inner *Type
}

func (ParenthesizedType) isTypeSubtype() {}
func (n *ParenthesizedType) String() string { return "(" + n.Inner.String() + ")" }

// TypeParameter is "[modifiers] name [: bound]" inside a '<...>' list.
type TypeParameter struct {
	basePos
	Modifiers Modifiers
	Name      string
	Bound     *Type // nil if absent
}

func (n *TypeParameter) String() string {
	s := n.Modifiers.String() + n.Name
	if n.Bound != nil {
		s += " : " + n.Bound.String()
	}
	return s
}

// TypeConstraint is "[annotations] name : Type" inside a 'where'
// clause.
type TypeConstraint struct {
	basePos
	Annotations []Annotation
	Name        string
	Type        *Type
}

func (n *TypeConstraint) String() string {
	s := ""
	for _, a := range n.Annotations {
		s += a.String() + " "
	}
	return s + n.Name + " : " + n.Type.String()
}
