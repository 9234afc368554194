package kopyt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseExprSrc(t *testing.T, src string) Expression {
	t.Helper()
	p, err := NewParser(src)
	assert.NoError(t, err)
	p.consumeNewLines()
	expr := p.parseExpression()
	return expr
}

func TestParseArithmeticPrecedence(t *testing.T) {
	expr := parseExprSrc(t, "1 + 2 * 3")
	bin, ok := expr.(*BinaryExpression)
	assert.True(t, ok)
	assert.Equal(t, "+", bin.Operator)
	rhs, ok := bin.Right.(*BinaryExpression)
	assert.True(t, ok)
	assert.Equal(t, "*", rhs.Operator)
}

func TestParseComparisonAndLogicalOperators(t *testing.T) {
	expr := parseExprSrc(t, "a > 1 && b < 2")
	bin := expr.(*BinaryExpression)
	assert.Equal(t, "&&", bin.Operator)
}

func TestParseElvisOperator(t *testing.T) {
	expr := parseExprSrc(t, "a ?: b")
	bin, ok := expr.(*BinaryExpression)
	assert.True(t, ok)
	assert.Equal(t, "?:", bin.Operator)
}

func TestParseRangeOperator(t *testing.T) {
	expr := parseExprSrc(t, "1..10")
	bin, ok := expr.(*BinaryExpression)
	assert.True(t, ok)
	assert.Equal(t, "..", bin.Operator)
}

func TestParseInfixFunctionCall(t *testing.T) {
	expr := parseExprSrc(t, "a zip b")
	call, ok := expr.(*InfixFunctionCall)
	assert.True(t, ok)
	assert.Equal(t, "zip", call.Name)
}

func TestParseIsAndInOperators(t *testing.T) {
	expr := parseExprSrc(t, "x is Foo")
	op, ok := expr.(*InfixOperation)
	assert.True(t, ok)
	assert.Equal(t, "is", op.Operator)
	assert.NotNil(t, op.RightType)

	expr = parseExprSrc(t, "x in list")
	op = expr.(*InfixOperation)
	assert.Equal(t, "in", op.Operator)
	assert.NotNil(t, op.RightExpr)
}

func TestParseAsExpression(t *testing.T) {
	expr := parseExprSrc(t, "x as String")
	as, ok := expr.(*AsExpression)
	assert.True(t, ok)
	assert.Equal(t, "as", as.Operator)

	expr = parseExprSrc(t, "x as? String")
	as = expr.(*AsExpression)
	assert.Equal(t, "as?", as.Operator)
}

func TestParsePrefixUnaryOperators(t *testing.T) {
	expr := parseExprSrc(t, "!flag")
	pre, ok := expr.(*PrefixUnaryExpression)
	assert.True(t, ok)
	assert.Len(t, pre.Prefixes, 1)
	assert.Equal(t, "!", pre.Prefixes[0].Operator)
}

func TestParsePostfixIncrement(t *testing.T) {
	expr := parseExprSrc(t, "x++")
	post, ok := expr.(*PostfixUnaryExpression)
	assert.True(t, ok)
	assert.Len(t, post.Suffixes, 1)
	_, ok = post.Suffixes[0].(*SimpleSuffix)
	assert.True(t, ok)
}

func TestParseCallExpression(t *testing.T) {
	expr := parseExprSrc(t, `foo(1, "two", three)`)
	post := expr.(*PostfixUnaryExpression)
	assert.Len(t, post.Suffixes, 1)
	call, ok := post.Suffixes[0].(*CallSuffix)
	assert.True(t, ok)
	assert.Len(t, call.ValueArguments, 3)
}

func TestParseNavigationChain(t *testing.T) {
	expr := parseExprSrc(t, "a.b.c")
	post := expr.(*PostfixUnaryExpression)
	assert.Len(t, post.Suffixes, 2)
	for _, s := range post.Suffixes {
		_, ok := s.(*NavigationSuffix)
		assert.True(t, ok)
	}
}

func TestParseIndexingExpression(t *testing.T) {
	expr := parseExprSrc(t, "arr[0]")
	post := expr.(*PostfixUnaryExpression)
	_, ok := post.Suffixes[0].(*IndexingSuffix)
	assert.True(t, ok)
}

func TestParseLambdaArgumentTrailing(t *testing.T) {
	expr := parseExprSrc(t, "list.map { it * 2 }")
	post := expr.(*PostfixUnaryExpression)
	nav, ok := post.Suffixes[0].(*NavigationSuffix)
	assert.True(t, ok)
	assert.Equal(t, "map", nav.Identifier)
	_, ok = post.Suffixes[1].(*CallSuffix)
	assert.True(t, ok)
}

func TestParseIfExpression(t *testing.T) {
	expr := parseExprSrc(t, "if (x > 0) 1 else -1")
	ifExpr, ok := expr.(*IfExpression)
	assert.True(t, ok)
	assert.NotNil(t, ifExpr.ElseBody)
}

func TestParseDanglingElseBindsToNearestIf(t *testing.T) {
	expr := parseExprSrc(t, "if (a) if (b) 1 else 2")
	outer := expr.(*IfExpression)
	inner, ok := outer.Body.(*IfExpression)
	assert.True(t, ok)
	assert.NotNil(t, inner.ElseBody)
	assert.Nil(t, outer.ElseBody)
}

func TestParseWhenExpressionWithSubject(t *testing.T) {
	expr := parseExprSrc(t, `
when (x) {
    1 -> "one"
    2, 3 -> "two or three"
    else -> "other"
}
`)
	when, ok := expr.(*WhenExpression)
	assert.True(t, ok)
	assert.NotNil(t, when.Subject)
	assert.Len(t, when.Entries, 3)
	second, ok := when.Entries[1].(*WhenConditionEntry)
	assert.True(t, ok)
	assert.Len(t, second.Conditions, 2)
}

func TestParseWhenExpressionWithTypeAndRangeConditions(t *testing.T) {
	expr := parseExprSrc(t, `
when (x) {
    is String -> 1
    in 1..10 -> 2
    else -> 3
}
`)
	when := expr.(*WhenExpression)
	first := when.Entries[0].(*WhenConditionEntry)
	_, ok := first.Conditions[0].(*TypeTest)
	assert.True(t, ok)
	second := when.Entries[1].(*WhenConditionEntry)
	_, ok = second.Conditions[0].(*RangeTest)
	assert.True(t, ok)
}

func TestParseWhenWithoutSubject(t *testing.T) {
	expr := parseExprSrc(t, `
when {
    x > 0 -> "positive"
    else -> "non-positive"
}
`)
	when := expr.(*WhenExpression)
	assert.Nil(t, when.Subject)
}

func TestParseTryCatchFinally(t *testing.T) {
	expr := parseExprSrc(t, `
try {
    risky()
} catch (e: Exception) {
    handle(e)
} finally {
    cleanup()
}
`)
	tryExpr, ok := expr.(*TryExpression)
	assert.True(t, ok)
	assert.Len(t, tryExpr.CatchBlocks, 1)
	assert.NotNil(t, tryExpr.FinallyBlock)
}

func TestParseLambdaLiteralWithParameters(t *testing.T) {
	expr := parseExprSrc(t, "{ x: Int, y: Int -> x + y }")
	lambda, ok := expr.(*LambdaLiteral)
	assert.True(t, ok)
	assert.Len(t, lambda.Parameters, 2)
}

func TestParseCollectionLiteral(t *testing.T) {
	expr := parseExprSrc(t, "[1, 2, 3]")
	coll, ok := expr.(*CollectionLiteral)
	assert.True(t, ok)
	assert.Len(t, coll.Elements, 3)
}

func TestParseStringTemplateRoundTrip(t *testing.T) {
	expr := parseExprSrc(t, `"hello ${name}"`)
	str, ok := expr.(*StringLiteral)
	assert.True(t, ok)
	assert.Equal(t, `"hello ${name}"`, str.Value)
}

func TestParseCallableReference(t *testing.T) {
	expr := parseExprSrc(t, "String::length")
	ref, ok := expr.(*CallableReference)
	assert.True(t, ok)
	assert.Equal(t, "length", ref.Member)
}

func TestParseThisAndSuperExpressions(t *testing.T) {
	expr := parseExprSrc(t, "this@Outer")
	this, ok := expr.(*ThisExpression)
	assert.True(t, ok)
	assert.Equal(t, "Outer", this.Label)

	expr = parseExprSrc(t, "super<Base>")
	super, ok := expr.(*SuperExpression)
	assert.True(t, ok)
	assert.NotNil(t, super.SuperType)
}

func TestParseObjectLiteralExpression(t *testing.T) {
	expr := parseExprSrc(t, `
object : Shape {
    fun area(): Double = 0.0
}
`)
	obj, ok := expr.(*ObjectLiteral)
	assert.True(t, ok)
	assert.Len(t, obj.DelegationSpecifiers, 1)
}

func TestParseThrowExpression(t *testing.T) {
	expr := parseExprSrc(t, `throw IllegalStateException("bad")`)
	_, ok := expr.(*ThrowExpression)
	assert.True(t, ok)
}
