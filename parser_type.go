package kopyt

// parseType parses "[modifiers] TypeSubtype" where TypeSubtype is one
// of FunctionType, ParenthesizedType, NullableType or TypeReference.
func (p *Parser) parseType() *Type {
	pos := p.cursor.peek(0).Pos
	mods := p.tryParseTypeModifiers()
	sub := p.parseTypeSubtype()
	return &Type{basePos: basePos{pos}, Modifiers: mods, Subtype: sub}
}

// tryParseTypeModifiers parses the modifier run legal before a type:
// annotations and the "suspend" keyword.
func (p *Parser) tryParseTypeModifiers() Modifiers {
	var mods Modifiers
	for {
		if p.wouldAccept(TokenAt) {
			mods = append(mods, p.parseAnnotation())
			continue
		}
		if tok := p.accept(false, false, "suspend"); tok != nil {
			p.accept(true, true, "suspend")
			mods = append(mods, &KeywordModifier{basePos{tok.Pos}, tok.Val})
			continue
		}
		break
	}
	return mods
}

// parseTypeSubtype dispatches on the upcoming tokens to pick which
// TypeSubtype production applies, then wraps a trailing run of '?' as
// NullableType.
func (p *Parser) parseTypeSubtype() TypeSubtype {
	var base TypeSubtype

	if v, ok := tryParseAny(p, p.tryParseFunctionType, p.tryParseParenthesizedFunctionType); ok {
		base = v
	} else if p.wouldAccept("(") {
		base = p.parseParenthesizedType()
	} else {
		base = p.parseTypeReference()
	}

	nullable := ""
	for p.wouldAccept("?") {
		p.accept(true, true, "?")
		nullable += "?"
	}
	if nullable == "" {
		return base
	}
	return &NullableType{basePos{base.Position()}, base, nullable}
}

// tryParseFunctionType attempts the receiverless function type shape:
// '(' parameters ')' '->' returnType.
func (p *Parser) tryParseFunctionType() TypeSubtype {
	pos := p.cursor.peek(0).Pos
	params := p.parseFunctionTypeParameters()
	p.accept(true, true, "->")
	ret := p.parseType()
	return &FunctionType{basePos{pos}, nil, params, ret}
}

// tryParseParenthesizedFunctionType attempts the receiver-qualified
// function type shape: ReceiverType '.' '(' parameters ')' '->' returnType.
func (p *Parser) tryParseParenthesizedFunctionType() TypeSubtype {
	pos := p.cursor.peek(0).Pos
	recv := p.parseReceiverType()
	p.accept(true, true, ".")
	params := p.parseFunctionTypeParameters()
	p.accept(true, true, "->")
	ret := p.parseType()
	return &FunctionType{basePos{pos}, recv, params, ret}
}

func (p *Parser) parseFunctionTypeParameters() []*FunctionTypeParameter {
	p.accept(true, true, "(")
	var params []*FunctionTypeParameter
	for !p.wouldAccept(")") {
		params = append(params, p.parseFunctionTypeParameter())
		if !p.tryAccept(",") {
			break
		}
		p.consumeNewLines()
	}
	p.accept(true, true, ")")
	return params
}

func (p *Parser) parseFunctionTypeParameter() *FunctionTypeParameter {
	pos := p.cursor.peek(0).Pos
	named, err := transaction(p.cursor, func() *FunctionTypeParameter {
		id := p.parseSimpleIdentifier()
		p.accept(true, true, ":")
		return &FunctionTypeParameter{basePos{pos}, id, p.parseType()}
	})
	if err == nil {
		return named
	}
	return &FunctionTypeParameter{basePos{pos}, nil, p.parseType()}
}

// parseReceiverType parses "[modifiers] TypeSubtype" without the
// trailing-'?' handling that a full Type allows, matching the
// reference grammar's narrower receiverType production.
func (p *Parser) parseReceiverType() *ReceiverType {
	pos := p.cursor.peek(0).Pos
	mods := p.tryParseTypeModifiers()
	var sub TypeSubtype
	if p.wouldAccept("(") {
		sub = p.parseParenthesizedType()
	} else {
		sub = p.parseTypeReference()
	}
	return &ReceiverType{basePos{pos}, mods, sub}
}

func (p *Parser) parseParenthesizedType() *ParenthesizedType {
	pos := p.cursor.peek(0).Pos
	p.accept(true, true, "(")
	p.consumeNewLines()
	inner := p.parseType()
	p.consumeNewLines()
	p.accept(true, true, ")")
	return &ParenthesizedType{basePos{pos}, inner}
}

// parseTypeReference parses a UserType or the literal "dynamic".
func (p *Parser) parseTypeReference() *TypeReference {
	pos := p.cursor.peek(0).Pos
	if tok := p.accept(true, false, "dynamic"); tok != nil {
		return &TypeReference{basePos{pos}, nil, true}
	}
	return &TypeReference{basePos{pos}, p.parseUserType(), false}
}

func (p *Parser) parseUserType() UserType {
	var ut UserType
	ut = append(ut, p.parseSimpleUserType())
	for p.wouldAccept(".", TokenIdentifier) {
		p.accept(true, true, ".")
		ut = append(ut, p.parseSimpleUserType())
	}
	return ut
}

func (p *Parser) parseSimpleUserType() *SimpleUserType {
	tok := p.accept(true, true, TokenIdentifier)
	var gens []TypeProjection
	if p.wouldAccept("<") {
		if _, err := simulate(p.cursor, func() bool { p.parseTypeProjections(); return true }); err == nil {
			gens = p.parseTypeProjections()
		}
	}
	return &SimpleUserType{basePos{tok.Pos}, tok.Val, gens}
}

func (p *Parser) parseTypeProjections() []TypeProjection {
	p.accept(true, true, "<")
	p.consumeNewLines()
	var projs []TypeProjection
	for !p.wouldAccept(">") {
		projs = append(projs, p.parseTypeProjection())
		p.consumeNewLines()
		if !p.tryAccept(",") {
			break
		}
		p.consumeNewLines()
	}
	p.accept(true, true, ">")
	return projs
}

func (p *Parser) parseTypeProjection() TypeProjection {
	pos := p.cursor.peek(0).Pos
	if tok := p.accept(true, false, "*"); tok != nil {
		return &TypeProjectionStar{basePos{pos}}
	}
	var mods Modifiers
	for p.wouldAccept("in") || p.wouldAccept("out") || p.wouldAccept(TokenAt) {
		if p.wouldAccept(TokenAt) {
			mods = append(mods, p.parseAnnotation())
			continue
		}
		tok := p.cursor.next()
		mods = append(mods, &KeywordModifier{basePos{tok.Pos}, tok.Val})
	}
	return &TypeProjectionWithType{basePos{pos}, mods, p.parseType()}
}

func (p *Parser) parseTypeParameters() []*TypeParameter {
	p.accept(true, true, "<")
	p.consumeNewLines()
	var params []*TypeParameter
	for {
		params = append(params, p.parseTypeParameter())
		p.consumeNewLines()
		if !p.tryAccept(",") {
			break
		}
		p.consumeNewLines()
	}
	p.accept(true, true, ">")
	return params
}

func (p *Parser) parseTypeParameter() *TypeParameter {
	pos := p.cursor.peek(0).Pos
	var mods Modifiers
	for p.wouldAccept("in") || p.wouldAccept("out") || p.wouldAccept(TokenAt) || p.wouldAccept("reified") {
		if p.wouldAccept(TokenAt) {
			mods = append(mods, p.parseAnnotation())
			continue
		}
		tok := p.cursor.next()
		mods = append(mods, &KeywordModifier{basePos{tok.Pos}, tok.Val})
	}
	name := p.accept(true, true, TokenIdentifier).Val
	var bound *Type
	if p.tryAccept(":") {
		bound = p.parseType()
	}
	return &TypeParameter{basePos{pos}, mods, name, bound}
}

func (p *Parser) parseTypeConstraints() []*TypeConstraint {
	p.accept(true, true, "where")
	var constraints []*TypeConstraint
	for {
		constraints = append(constraints, p.parseTypeConstraint())
		if !p.tryAccept(",") {
			break
		}
	}
	return constraints
}

func (p *Parser) parseTypeConstraint() *TypeConstraint {
	pos := p.cursor.peek(0).Pos
	var anns []Annotation
	for p.wouldAccept(TokenAt) {
		anns = append(anns, p.parseAnnotation())
	}
	name := p.accept(true, true, TokenIdentifier).Val
	p.accept(true, true, ":")
	typ := p.parseType()
	return &TypeConstraint{basePos{pos}, anns, name, typ}
}
