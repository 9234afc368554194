package kopyt

// parseExpression is the entry point of the full binary-operator
// precedence chain, starting at its loosest-binding level.
func (p *Parser) parseExpression() Expression {
	return p.parseDisjunction()
}

func (p *Parser) parseDisjunction() Expression {
	left := p.parseConjunction()
	for p.wouldAccept("||") {
		p.cursor.next()
		p.consumeNewLines()
		right := p.parseConjunction()
		left = &BinaryExpression{basePos{left.Position()}, left, right, "||"}
	}
	return left
}

func (p *Parser) parseConjunction() Expression {
	left := p.parseEquality()
	for p.wouldAccept("&&") {
		p.cursor.next()
		p.consumeNewLines()
		right := p.parseEquality()
		left = &BinaryExpression{basePos{left.Position()}, left, right, "&&"}
	}
	return left
}

func isEqualityOperator(v string) bool {
	return v == "==" || v == "!=" || v == "===" || v == "!=="
}

func (p *Parser) parseEquality() Expression {
	left := p.parseComparison()
	for isEqualityOperator(p.cursor.peek(0).Val) {
		tok := p.cursor.next()
		p.consumeNewLines()
		right := p.parseComparison()
		left = &BinaryExpression{basePos{left.Position()}, left, right, tok.Val}
	}
	return left
}

func isComparisonOperator(v string) bool {
	return v == "<" || v == ">" || v == "<=" || v == ">="
}

func (p *Parser) parseComparison() Expression {
	left := p.parseGenericCallLikeComparison()
	for isComparisonOperator(p.cursor.peek(0).Val) {
		tok := p.cursor.next()
		p.consumeNewLines()
		right := p.parseGenericCallLikeComparison()
		left = &BinaryExpression{basePos{left.Position()}, left, right, tok.Val}
	}
	return left
}

// parseGenericCallLikeComparison lets a call suffix directly follow a
// comparison-level expression, the grammar's way of disambiguating a
// generic function call (e.g. "f<Int>()") from a chained comparison.
func (p *Parser) parseGenericCallLikeComparison() Expression {
	left := p.parseInfixOperation()
	for {
		suf, ok := p.tryCallSuffix()
		if !ok {
			return left
		}
		left = &PostfixUnaryExpression{basePos{left.Position()}, left, []PostfixUnarySuffix{suf}}
	}
}

func isInOperator(v string) bool  { return v == "in" || v == "!in" }
func isIsOperator(v string) bool  { return v == "is" || v == "!is" }

func (p *Parser) parseInfixOperation() Expression {
	left := p.parseElvis()
	for {
		tok := p.cursor.peek(0)
		switch {
		case isInOperator(tok.Val):
			p.cursor.next()
			p.consumeNewLines()
			right := p.parseElvis()
			left = &InfixOperation{basePos{left.Position()}, left, tok.Val, right, nil}
		case isIsOperator(tok.Val):
			p.cursor.next()
			p.consumeNewLines()
			typ := p.parseType()
			left = &InfixOperation{basePos{left.Position()}, left, tok.Val, nil, typ}
		default:
			return left
		}
	}
}

func (p *Parser) parseElvis() Expression {
	left := p.parseInfixFunctionCall()
	for p.wouldAccept("?:") {
		p.cursor.next()
		p.consumeNewLines()
		right := p.parseInfixFunctionCall()
		left = &BinaryExpression{basePos{left.Position()}, left, right, "?:"}
	}
	return left
}

// parseInfixFunctionCall recognizes Kotlin's named infix call form
// (e.g. "1 to 2", "list zip other"): a bare identifier between two
// range-level expressions.
func (p *Parser) parseInfixFunctionCall() Expression {
	left := p.parseRange()
	for p.wouldAccept(TokenIdentifier) {
		tok := p.cursor.next()
		p.consumeNewLines()
		right := p.parseRange()
		left = &InfixFunctionCall{basePos{left.Position()}, left, right, tok.Val}
	}
	return left
}

func (p *Parser) parseRange() Expression {
	left := p.parseAdditive()
	for p.wouldAccept("..") {
		p.cursor.next()
		p.consumeNewLines()
		right := p.parseAdditive()
		left = &BinaryExpression{basePos{left.Position()}, left, right, ".."}
	}
	return left
}

func (p *Parser) parseAdditive() Expression {
	left := p.parseMultiplicative()
	for {
		tok := p.cursor.peek(0)
		if tok.Val != "+" && tok.Val != "-" {
			return left
		}
		p.cursor.next()
		p.consumeNewLines()
		right := p.parseMultiplicative()
		left = &BinaryExpression{basePos{left.Position()}, left, right, tok.Val}
	}
}

func (p *Parser) parseMultiplicative() Expression {
	left := p.parseAsExpression()
	for {
		tok := p.cursor.peek(0)
		if tok.Val != "*" && tok.Val != "/" && tok.Val != "%" {
			return left
		}
		p.cursor.next()
		p.consumeNewLines()
		right := p.parseAsExpression()
		left = &BinaryExpression{basePos{left.Position()}, left, right, tok.Val}
	}
}

func (p *Parser) parseAsExpression() Expression {
	left := p.parsePrefixUnaryExpression()
	tok := p.cursor.peek(0)
	if tok.Val != "as" && tok.Val != "as?" {
		return left
	}
	p.cursor.next()
	p.consumeNewLines()
	typ := p.parseType()
	return &AsExpression{basePos{left.Position()}, left, tok.Val, typ}
}

// parsePrefixUnaryExpression consumes zero or more prefix annotations,
// labels and unary operators, then a postfix unary expression.
func (p *Parser) parsePrefixUnaryExpression() Expression {
	var prefixes []*UnaryPrefix
	for {
		pos := p.cursor.peek(0).Pos
		tok := p.cursor.peek(0)
		switch {
		case p.wouldAccept(TokenAt):
			ann := p.parseAnnotation()
			prefixes = append(prefixes, &UnaryPrefix{basePos{pos}, ann, "", ""})
			continue
		case p.wouldAccept(TokenIdentifier, TokenAt):
			label := p.cursor.next().Val
			p.accept(true, true, TokenAt)
			prefixes = append(prefixes, &UnaryPrefix{basePos{pos}, nil, label, ""})
			continue
		case tok.Val == "++" || tok.Val == "--" || tok.Val == "+" || tok.Val == "-" || tok.Val == "!":
			p.cursor.next()
			prefixes = append(prefixes, &UnaryPrefix{basePos{pos}, nil, "", tok.Val})
			continue
		}
		break
	}
	expr := p.parsePostfixUnaryExpression()
	if len(prefixes) == 0 {
		return expr
	}
	return &PrefixUnaryExpression{basePos{prefixes[0].Position()}, prefixes, expr}
}

func (p *Parser) parsePostfixUnaryExpression() Expression {
	primary := p.parsePrimaryExpression()
	var suffixes []PostfixUnarySuffix
	for {
		suf, ok := p.tryParsePostfixSuffix()
		if !ok {
			break
		}
		suffixes = append(suffixes, suf)
	}
	if len(suffixes) == 0 {
		return primary
	}
	return &PostfixUnaryExpression{basePos{primary.Position()}, primary, suffixes}
}

func (p *Parser) tryParsePostfixSuffix() (PostfixUnarySuffix, bool) {
	tok := p.cursor.peek(0)
	switch tok.Val {
	case "++", "--", "!!":
		p.cursor.next()
		return &SimpleSuffix{basePos{tok.Pos}, tok.Val}, true
	case "[":
		return p.parseIndexingSuffix(), true
	case ".", "?.", "::":
		return p.parseNavigationSuffix(), true
	case "(", "<", "{":
		return p.tryCallSuffix()
	}
	return nil, false
}

func (p *Parser) parseIndexingSuffix() *IndexingSuffix {
	pos := p.cursor.peek(0).Pos
	p.accept(true, true, "[")
	p.consumeNewLines()
	var exprs []Expression
	for !p.wouldAccept("]") {
		exprs = append(exprs, p.parseExpression())
		p.consumeNewLines()
		if !p.tryAccept(",") {
			break
		}
		p.consumeNewLines()
	}
	p.accept(true, true, "]")
	return &IndexingSuffix{basePos{pos}, exprs}
}

func (p *Parser) parseNavigationSuffix() *NavigationSuffix {
	pos := p.cursor.peek(0).Pos
	op := p.cursor.next().Val
	if p.tryAccept("(") {
		inner := p.parseExpression()
		p.accept(true, true, ")")
		return &NavigationSuffix{basePos{pos}, op, "", inner, false}
	}
	if p.tryAccept("class") {
		return &NavigationSuffix{basePos{pos}, op, "", nil, true}
	}
	id := p.parseSimpleIdentifier().Value
	return &NavigationSuffix{basePos{pos}, op, id, nil, false}
}

// wouldAcceptAnnotatedLambdaStart reports whether the upcoming tokens
// begin an annotated/labelled lambda: an annotation, a "label@"
// marker, or a bare lambda literal.
func (p *Parser) wouldAcceptAnnotatedLambdaStart() bool {
	return p.wouldAccept(TokenAt) || p.wouldAccept(TokenIdentifier, TokenAt) || p.wouldAccept("{")
}

func (p *Parser) tryParseAnnotatedLambda() *AnnotatedLambda {
	pos := p.cursor.peek(0).Pos
	var anns []Annotation
	for p.wouldAccept(TokenAt) {
		anns = append(anns, p.parseAnnotation())
	}
	label := ""
	if p.wouldAccept(TokenIdentifier, TokenAt) {
		label = p.cursor.next().Val
		p.accept(true, true, TokenAt)
	}
	lambda := p.parseLambdaLiteral()
	return &AnnotatedLambda{basePos{pos}, anns, label, lambda}
}

// parseCallSuffix parses "[typeArguments] ((valueArguments? annotatedLambda) | valueArguments)".
// At least one of type arguments, value arguments or a trailing lambda
// must be present, or this is not a call suffix at all.
func (p *Parser) parseCallSuffix() *CallSuffix {
	pos := p.cursor.peek(0).Pos
	var typeArgs *TypeArguments
	if p.wouldAccept("<") {
		if _, err := simulate(p.cursor, func() bool { p.parseTypeProjections(); return true }); err == nil {
			typeArgs = &TypeArguments{basePos{pos}, p.parseTypeProjections()}
		}
	}

	var args []*ValueArgument
	hasArgs := false
	if p.wouldAccept("(") {
		args = p.parseValueArguments()
		hasArgs = true
	}

	var lambda *AnnotatedLambda
	if p.wouldAcceptAnnotatedLambdaStart() {
		lambda = p.tryParseAnnotatedLambda()
	}

	if typeArgs == nil && !hasArgs && lambda == nil {
		p.raiseBare("expecting a call suffix")
	}
	return &CallSuffix{basePos{pos}, typeArgs, args, lambda, hasArgs}
}

// tryCallSuffix attempts parseCallSuffix transactionally, since every
// caller uses it as one alternative among several postfix/expression
// continuations.
func (p *Parser) tryCallSuffix() (*CallSuffix, bool) {
	v, err := transaction(p.cursor, func() *CallSuffix { return p.parseCallSuffix() })
	if err != nil {
		return nil, false
	}
	return v, true
}

// parseDirectlyAssignableExpression parses the left-hand side of a
// plain '=' assignment: a parenthesized directly-assignable
// expression, a postfix expression ending in an indexing/navigation
// suffix, or a bare identifier.
func (p *Parser) parseDirectlyAssignableExpression() *DirectlyAssignableExpression {
	pos := p.cursor.peek(0).Pos

	if p.wouldAccept("(") {
		if v, err := transaction(p.cursor, func() *DirectlyAssignableExpression {
			p.accept(true, true, "(")
			inner := p.parseDirectlyAssignableExpression()
			p.accept(true, true, ")")
			return inner
		}); err == nil {
			return &DirectlyAssignableExpression{basePos{pos}, nil, "", v}
		}
	}

	if v, err := transaction(p.cursor, func() *DirectlyAssignableExpression {
		expr := p.parsePostfixUnaryExpression()
		post, ok := expr.(*PostfixUnaryExpression)
		if !ok {
			p.raiseBare("not a directly assignable postfix expression")
		}
		switch post.Suffixes[len(post.Suffixes)-1].(type) {
		case *IndexingSuffix, *NavigationSuffix:
		default:
			p.raiseBare("not a directly assignable postfix expression")
		}
		return &DirectlyAssignableExpression{basePos{pos}, expr, "", nil}
	}); err == nil {
		return v
	}

	id := p.parseSimpleIdentifier().Value
	return &DirectlyAssignableExpression{basePos{pos}, nil, id, nil}
}

func isAssignmentOperator(v string) bool {
	return v == "+=" || v == "-=" || v == "*=" || v == "/=" || v == "%="
}

// parseAssignment tries the directly-assignable '=' shape first, and
// falls back to the compound-operator shape over a general
// expression, matching the grammar's two distinct assignment forms.
func (p *Parser) parseAssignment() *Assignment {
	pos := p.cursor.peek(0).Pos

	if v, err := transaction(p.cursor, func() *Assignment {
		target := p.parseDirectlyAssignableExpression()
		p.accept(true, true, "=")
		p.consumeNewLines()
		return &Assignment{basePos{pos}, target, "=", p.parseExpression()}
	}); err == nil {
		return v
	}

	target := p.parseExpression()
	tok := p.cursor.peek(0)
	if !isAssignmentOperator(tok.Val) {
		p.raise("expecting an assignment operator", tok)
	}
	p.cursor.next()
	p.consumeNewLines()
	return &Assignment{basePos{pos}, target, tok.Val, p.parseExpression()}
}
