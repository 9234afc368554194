package kopyt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseTypeSrc(t *testing.T, src string) *Type {
	t.Helper()
	p, err := NewParser(src)
	assert.NoError(t, err)
	return p.parseType()
}

func TestParseSimpleUserType(t *testing.T) {
	typ := parseTypeSrc(t, "String")
	ref, ok := typ.Subtype.(*TypeReference)
	assert.True(t, ok)
	user, ok := ref.Subtype.(UserType)
	assert.True(t, ok)
	assert.Len(t, user, 1)
	assert.Equal(t, "String", user[0].Name)
}

func TestParseQualifiedUserType(t *testing.T) {
	typ := parseTypeSrc(t, "kotlin.collections.List")
	ref := typ.Subtype.(*TypeReference)
	user := ref.Subtype.(UserType)
	assert.Len(t, user, 3)
	assert.Equal(t, "List", user[2].Name)
}

func TestParseGenericUserType(t *testing.T) {
	typ := parseTypeSrc(t, "Map<String, Int>")
	ref := typ.Subtype.(*TypeReference)
	user := ref.Subtype.(UserType)
	assert.Len(t, user[0].Generics, 2)
}

func TestParseStarProjection(t *testing.T) {
	typ := parseTypeSrc(t, "List<*>")
	ref := typ.Subtype.(*TypeReference)
	user := ref.Subtype.(UserType)
	_, ok := user[0].Generics[0].(*TypeProjectionStar)
	assert.True(t, ok)
}

func TestParseNullableType(t *testing.T) {
	typ := parseTypeSrc(t, "String?")
	_, ok := typ.Subtype.(*NullableType)
	assert.True(t, ok)
}

func TestParseFunctionType(t *testing.T) {
	typ := parseTypeSrc(t, "(Int, Int) -> Int")
	fn, ok := typ.Subtype.(*FunctionType)
	assert.True(t, ok)
	assert.Len(t, fn.Parameters, 2)
}

func TestParseFunctionTypeWithReceiver(t *testing.T) {
	typ := parseTypeSrc(t, "Int.(Int) -> Int")
	fn := typ.Subtype.(*FunctionType)
	assert.NotNil(t, fn.Receiver)
}

func TestParseParenthesizedType(t *testing.T) {
	typ := parseTypeSrc(t, "(String)")
	_, ok := typ.Subtype.(*ParenthesizedType)
	assert.True(t, ok)
}

func TestParseDynamicType(t *testing.T) {
	typ := parseTypeSrc(t, "dynamic")
	ref, ok := typ.Subtype.(*TypeReference)
	assert.True(t, ok)
	assert.True(t, ref.Dynamic)
}

func TestParseTypeParametersWithBounds(t *testing.T) {
	p, err := NewParser("<T : Comparable<T>, U>")
	assert.NoError(t, err)
	params := p.parseTypeParameters()
	assert.Len(t, params, 2)
	assert.NotNil(t, params[0].Bound)
	assert.Nil(t, params[1].Bound)
}

func TestParseTypeConstraints(t *testing.T) {
	p, err := NewParser("where T : Comparable<T>, U : Any")
	assert.NoError(t, err)
	constraints := p.parseTypeConstraints()
	assert.Len(t, constraints, 2)
}
