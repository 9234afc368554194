package kopyt

// parseKotlinFile parses a complete compilation unit: an optional
// shebang, an optional package header, an import list and the file's
// top-level declarations.
func (p *Parser) parseKotlinFile() *KotlinFile {
	pos := p.cursor.peek(0).Pos
	shebang := p.tryParseShebangLine()
	p.consumeNewLines()
	pkg := p.tryParsePackageHeader()
	p.consumeSemis(true)
	imports := p.parseImportHeaders()

	var decls []Declaration
	for !p.wouldAccept(TokenEOF) {
		decls = append(decls, p.parseDeclaration())
		p.consumeSemis(true)
	}
	return &KotlinFile{basePos{pos}, shebang, pkg, imports, decls}
}

// parseScript parses an interactive compilation unit: an optional
// shebang and package/import headers followed by top-level statements
// rather than declarations.
func (p *Parser) parseScript() *Script {
	pos := p.cursor.peek(0).Pos
	shebang := p.tryParseShebangLine()
	p.consumeNewLines()
	pkg := p.tryParsePackageHeader()
	p.consumeSemis(true)
	imports := p.parseImportHeaders()

	var stmts []*Statement
	p.consumeSemis(true)
	for !p.wouldAccept(TokenEOF) {
		stmts = append(stmts, p.parseStatement())
		p.consumeSemis(true)
	}
	return &Script{basePos{pos}, shebang, pkg, imports, stmts}
}

func (p *Parser) tryParseShebangLine() *ShebangLine {
	tok := p.cursor.peek(0)
	if tok.Typ != TokenShebangLine {
		return nil
	}
	p.cursor.next()
	return &ShebangLine{basePos{tok.Pos}, tok.Val}
}

func (p *Parser) tryParsePackageHeader() *PackageHeader {
	if !p.wouldAccept("package") {
		return nil
	}
	pos := p.cursor.peek(0).Pos
	p.accept(true, true, "package")
	name := p.parseIdentifier().Value
	return &PackageHeader{basePos{pos}, name}
}

func (p *Parser) parseImportHeaders() []*ImportHeader {
	var imports []*ImportHeader
	for p.wouldAccept("import") {
		imports = append(imports, p.parseImportHeader())
		p.consumeSemis(true)
	}
	return imports
}

func (p *Parser) parseImportHeader() *ImportHeader {
	pos := p.cursor.peek(0).Pos
	p.accept(true, true, "import")
	name := p.parseIdentifier().Value
	if p.wouldAccept(".") {
		if v, err := transaction(p.cursor, func() bool {
			p.accept(true, true, ".")
			p.accept(true, true, "*")
			return true
		}); err == nil && v {
			return &ImportHeader{basePos{pos}, name, true, ""}
		}
	}
	alias := ""
	if p.tryAccept("as") {
		alias = p.parseSimpleIdentifier().Value
	}
	return &ImportHeader{basePos{pos}, name, false, alias}
}

// parseDeclaration dispatches, after consuming any modifier run, on the
// upcoming keyword to the matching top-level/class-member declaration
// production.
func (p *Parser) parseDeclaration() Declaration {
	pos := p.cursor.peek(0).Pos
	mods := p.parseModifiers()

	switch {
	case p.wouldAccept("class") || p.wouldAccept("interface") || p.wouldAccept("fun", "interface"):
		return p.parseClassDeclaration(pos, mods)
	case p.wouldAccept("fun"):
		return p.parseFunctionDeclaration(pos, mods)
	case p.wouldAccept("val") || p.wouldAccept("var"):
		return p.parsePropertyDeclaration(pos, mods)
	case p.wouldAccept("object"):
		return p.parseObjectDeclaration(pos, mods)
	case p.wouldAccept("typealias"):
		return p.parseTypeAlias(pos, mods)
	}
	p.raise("expecting a declaration", p.cursor.peek(0))
	return nil
}

func (p *Parser) parseTypeAlias(pos Position, mods Modifiers) *TypeAlias {
	p.accept(true, true, "typealias")
	name := p.parseSimpleIdentifier().Value
	var typeParams []*TypeParameter
	if p.wouldAccept("<") {
		typeParams = p.parseTypeParameters()
	}
	p.accept(true, true, "=")
	typ := p.parseType()
	return &TypeAlias{basePos{pos}, mods, name, typeParams, typ}
}

// parseClassDeclaration parses class, interface, fun interface and
// enum class declarations: they share one shape, discriminated by Kind.
func (p *Parser) parseClassDeclaration(pos Position, mods Modifiers) *ClassDeclaration {
	kind := ClassKindClass
	switch {
	case p.tryAccept("fun"):
		p.accept(true, true, "interface")
		kind = ClassKindFunInterface
	case p.tryAccept("interface"):
		kind = ClassKindInterface
	default:
		p.accept(true, true, "class")
		for _, m := range mods {
			if km, ok := m.(*KeywordModifier); ok && km.Value == "enum" {
				kind = ClassKindEnum
			}
		}
	}

	name := p.parseSimpleIdentifier().Value
	var typeParams []*TypeParameter
	if p.wouldAccept("<") {
		typeParams = p.parseTypeParameters()
	}

	var primary *PrimaryConstructor
	if v, ok := tryParseAny(p, p.tryParsePrimaryConstructor); ok {
		primary = v
	}

	var specs []Node
	if p.tryAccept(":") {
		specs = p.parseDelegationSpecifiers()
	}

	var constraints []*TypeConstraint
	if p.wouldAccept("where") {
		constraints = p.parseTypeConstraints()
	}

	var body Node
	if kind == ClassKindEnum && p.wouldAccept("{") {
		body = p.parseEnumClassBody()
	} else if p.wouldAccept("{") {
		body = p.parseClassBody()
	}

	return &ClassDeclaration{basePos{pos}, mods, kind, name, typeParams, primary, specs, constraints, body}
}

func (p *Parser) tryParsePrimaryConstructor() *PrimaryConstructor {
	pos := p.cursor.peek(0).Pos
	mods := p.parseModifiers()
	if len(mods) > 0 || p.wouldAccept("constructor") {
		p.accept(true, true, "constructor")
	}
	params := p.parseClassParameters()
	return &PrimaryConstructor{basePos{pos}, mods, params}
}

func (p *Parser) parseClassParameters() []*ClassParameter {
	p.accept(true, true, "(")
	p.consumeNewLines()
	var params []*ClassParameter
	for !p.wouldAccept(")") {
		params = append(params, p.parseClassParameter())
		p.consumeNewLines()
		if !p.tryAccept(",") {
			break
		}
		p.consumeNewLines()
	}
	p.accept(true, true, ")")
	return params
}

func (p *Parser) parseClassParameter() *ClassParameter {
	pos := p.cursor.peek(0).Pos
	mods := p.parseModifiers()
	mutability := ""
	if p.wouldAccept("val") || p.wouldAccept("var") {
		mutability = p.cursor.next().Val
	}
	name := p.parseSimpleIdentifier().Value
	p.accept(true, true, ":")
	typ := p.parseType()
	param := &Parameter{basePos{pos}, name, typ}
	var def Expression
	if p.tryAccept("=") {
		def = p.parseExpression()
	}
	return &ClassParameter{basePos{pos}, mods, mutability, param, def}
}

func (p *Parser) parseDelegationSpecifiers() []Node {
	var specs []Node
	specs = append(specs, p.parseAnnotatedDelegationSpecifier())
	for p.tryAccept(",") {
		p.consumeNewLines()
		specs = append(specs, p.parseAnnotatedDelegationSpecifier())
	}
	return specs
}

func (p *Parser) parseAnnotatedDelegationSpecifier() Node {
	pos := p.cursor.peek(0).Pos
	var anns []Annotation
	for p.wouldAccept(TokenAt) {
		anns = append(anns, p.parseAnnotation())
	}
	spec := p.parseDelegationSpecifier()
	if len(anns) == 0 {
		return spec
	}
	return &AnnotatedDelegationSpecifier{basePos{pos}, anns, spec}
}

// parseDelegationSpecifier tries the explicit-delegation shape ("Type
// by expr") before a bare constructor invocation or plain type,
// since all three begin with a Type.
func (p *Parser) parseDelegationSpecifier() Node {
	pos := p.cursor.peek(0).Pos

	if v, ok := tryParseAny(p, func() Node {
		typ := p.parseType()
		p.accept(true, true, "by")
		return &ExplicitDelegation{basePos{pos}, typ, p.parseExpression()}
	}); ok {
		return v
	}

	if v, ok := tryParseAny(p, func() Node {
		typ := p.parseType()
		args := p.parseValueArguments()
		return &ConstructorInvocation{basePos{pos}, typ, args}
	}); ok {
		return v
	}

	return p.parseType()
}

func (p *Parser) parseClassBody() *ClassBody {
	pos := p.cursor.peek(0).Pos
	p.accept(true, true, "{")
	p.consumeSemis(true)
	var members []Declaration
	for !p.wouldAccept("}") {
		members = append(members, p.parseClassMemberDeclaration())
		p.consumeSemis(true)
	}
	p.accept(true, true, "}")
	return &ClassBody{basePos{pos}, members}
}

// parseClassMemberDeclaration dispatches to whichever member kind the
// upcoming tokens, after any modifier run, actually start — including
// forms (init block, secondary constructor, companion object) that
// only appear inside a class body and never at file scope.
func (p *Parser) parseClassMemberDeclaration() Declaration {
	pos := p.cursor.peek(0).Pos
	mods := p.parseModifiers()

	switch {
	case p.wouldAccept("init"):
		return p.parseAnonymousInitializer(pos)
	case p.wouldAccept("constructor"):
		return p.parseSecondaryConstructor(pos, mods)
	case p.wouldAccept("companion"):
		return p.parseCompanionObject(pos, mods)
	}
	// anything else is one of the shared top-level declaration shapes,
	// with the already-consumed modifiers carried along
	return p.parseDeclarationWithModifiers(pos, mods)
}

// parseDeclarationWithModifiers repeats parseDeclaration's keyword
// dispatch for a modifier run the caller has already consumed, so
// parseClassMemberDeclaration can look ahead for init/constructor/
// companion first, which parseDeclaration never sees.
func (p *Parser) parseDeclarationWithModifiers(pos Position, mods Modifiers) Declaration {
	switch {
	case p.wouldAccept("class") || p.wouldAccept("interface") || p.wouldAccept("fun", "interface"):
		return p.parseClassDeclaration(pos, mods)
	case p.wouldAccept("fun"):
		return p.parseFunctionDeclaration(pos, mods)
	case p.wouldAccept("val") || p.wouldAccept("var"):
		return p.parsePropertyDeclaration(pos, mods)
	case p.wouldAccept("object"):
		return p.parseObjectDeclaration(pos, mods)
	case p.wouldAccept("typealias"):
		return p.parseTypeAlias(pos, mods)
	}
	p.raise("expecting a class member declaration", p.cursor.peek(0))
	return nil
}

func (p *Parser) parseAnonymousInitializer(pos Position) *AnonymousInitializer {
	p.accept(true, true, "init")
	return &AnonymousInitializer{basePos{pos}, p.parseBlock()}
}

func (p *Parser) parseSecondaryConstructor(pos Position, mods Modifiers) *SecondaryConstructor {
	p.accept(true, true, "constructor")
	params := p.parseFunctionValueParameters()
	var delegation *ConstructorDelegationCall
	if p.tryAccept(":") {
		delegation = p.parseConstructorDelegationCall()
	}
	var body *Block
	if p.wouldAccept("{") {
		body = p.parseBlock()
	}
	return &SecondaryConstructor{basePos{pos}, mods, params, delegation, body}
}

func (p *Parser) parseConstructorDelegationCall() *ConstructorDelegationCall {
	pos := p.cursor.peek(0).Pos
	tok := p.cursor.peek(0)
	if tok.Val != "this" && tok.Val != "super" {
		p.raise("expecting 'this' or 'super'", tok)
	}
	p.cursor.next()
	args := p.parseValueArguments()
	return &ConstructorDelegationCall{basePos{pos}, tok.Val, args}
}

func (p *Parser) parseCompanionObject(pos Position, mods Modifiers) *CompanionObject {
	p.accept(true, true, "companion")
	p.accept(true, true, "object")
	name := ""
	if p.wouldAccept(TokenIdentifier) {
		name = p.parseSimpleIdentifier().Value
	}
	var specs []Node
	if p.tryAccept(":") {
		specs = p.parseDelegationSpecifiers()
	}
	var body *ClassBody
	if p.wouldAccept("{") {
		body = p.parseClassBody()
	}
	return &CompanionObject{basePos{pos}, mods, name, specs, body}
}

func (p *Parser) parseEnumClassBody() *EnumClassBody {
	pos := p.cursor.peek(0).Pos
	p.accept(true, true, "{")
	p.consumeSemis(true)
	var entries []*EnumEntry
	for p.wouldAccept(TokenIdentifier) || p.wouldAccept(TokenAt) {
		entries = append(entries, p.parseEnumEntry())
		p.consumeNewLines()
		if !p.tryAccept(",") {
			break
		}
		p.consumeNewLines()
	}
	var members []Declaration
	if p.tryAccept(";") {
		p.consumeSemis(true)
		for !p.wouldAccept("}") {
			members = append(members, p.parseClassMemberDeclaration())
			p.consumeSemis(true)
		}
	}
	p.accept(true, true, "}")
	return &EnumClassBody{basePos{pos}, entries, members}
}

func (p *Parser) parseEnumEntry() *EnumEntry {
	pos := p.cursor.peek(0).Pos
	mods := p.parseModifiers()
	name := p.parseSimpleIdentifier().Value
	var args []*ValueArgument
	if p.wouldAccept("(") {
		args = p.parseValueArguments()
	}
	var body *ClassBody
	if p.wouldAccept("{") {
		body = p.parseClassBody()
	}
	return &EnumEntry{basePos{pos}, mods, name, args, body}
}

func (p *Parser) parseFunctionValueParameters() []*FunctionValueParameter {
	p.accept(true, true, "(")
	p.consumeNewLines()
	var params []*FunctionValueParameter
	for !p.wouldAccept(")") {
		params = append(params, p.parseFunctionValueParameter())
		p.consumeNewLines()
		if !p.tryAccept(",") {
			break
		}
		p.consumeNewLines()
	}
	p.accept(true, true, ")")
	return params
}

func (p *Parser) parseFunctionValueParameter() *FunctionValueParameter {
	pos := p.cursor.peek(0).Pos
	mods := p.parseModifiers()
	name := p.parseSimpleIdentifier().Value
	p.accept(true, true, ":")
	typ := p.parseType()
	param := &Parameter{basePos{pos}, name, typ}
	var def Expression
	if p.tryAccept("=") {
		def = p.parseExpression()
	}
	return &FunctionValueParameter{basePos{pos}, mods, param, def}
}

// splitReceiverAndName inspects a fully-parsed Type and, when its
// subtype is a plain (non-dynamic) UserType whose final segment carries
// no type arguments, splits that segment off as a bare name. A dotted
// chain like "MutableList<T>.swap" or "String.shout" is parsed greedily
// as a single UserType by parseUserType, so the only way to recover the
// receiver/name boundary is to parse the whole chain and peel the last
// segment back off — rather than trying to stop the type parse early.
// ok is false when typ isn't shaped this way (a function type, a
// nullable type, or a last segment that itself has generics), meaning
// the caller must fall back to requiring an explicit '.' before the name.
func splitReceiverAndName(typ *Type) (recv *Type, name string, ok bool) {
	ref, isRef := typ.Subtype.(*TypeReference)
	if !isRef || ref.Dynamic {
		return nil, "", false
	}
	ut, isUser := ref.Subtype.(UserType)
	if !isUser {
		return nil, "", false
	}
	last := ut[len(ut)-1]
	if len(last.Generics) != 0 {
		return nil, "", false
	}
	if len(ut) == 1 {
		return nil, last.Name, true
	}
	recvRef := &TypeReference{ref.basePos, ut[:len(ut)-1], false}
	return &Type{typ.basePos, typ.Modifiers, recvRef}, last.Name, true
}

// tryParseReceiverAndName speculatively parses "[receiver '.'] name",
// the ambiguity shared by function and property declarations between a
// bare name and a qualified receiver.name: trying the receiver form
// first and rolling back on failure avoids needing dedicated
// lookahead logic to tell them apart. Since parseType greedily folds a
// whole dotted chain into one UserType, the receiver and name can't be
// told apart by where the type parse stops — splitReceiverAndName
// recovers the split after the fact instead.
func (p *Parser) tryParseReceiverAndName() (*Type, string) {
	if v, ok := tryParseAny(p, func() struct {
		Recv *Type
		Name string
	} {
		typ := p.parseType()
		if recv, name, split := splitReceiverAndName(typ); split {
			return struct {
				Recv *Type
				Name string
			}{recv, name}
		}
		p.accept(true, true, ".")
		name := p.parseSimpleIdentifier().Value
		return struct {
			Recv *Type
			Name string
		}{typ, name}
	}); ok {
		return v.Recv, v.Name
	}
	return nil, p.parseSimpleIdentifier().Value
}

func (p *Parser) parseFunctionDeclaration(pos Position, mods Modifiers) *FunctionDeclaration {
	p.accept(true, true, "fun")
	var typeParams []*TypeParameter
	if p.wouldAccept("<") {
		typeParams = p.parseTypeParameters()
	}
	recv, name := p.tryParseReceiverAndName()
	params := p.parseFunctionValueParameters()
	var ret *Type
	if p.tryAccept(":") {
		ret = p.parseType()
	}
	var constraints []*TypeConstraint
	if p.wouldAccept("where") {
		constraints = p.parseTypeConstraints()
	}
	body := p.tryParseFunctionBody()
	return &FunctionDeclaration{basePos{pos}, mods, typeParams, recv, name, params, ret, constraints, body}
}

func (p *Parser) tryParseFunctionBody() FunctionBody {
	switch {
	case p.wouldAccept("{"):
		return p.parseBlock()
	case p.tryAccept("="):
		return p.parseExpression()
	}
	return nil
}

func (p *Parser) parseVariableDeclaration() *VariableDeclaration {
	pos := p.cursor.peek(0).Pos
	var anns []Annotation
	for p.wouldAccept(TokenAt) {
		anns = append(anns, p.parseAnnotation())
	}
	name := p.parseSimpleIdentifier().Value
	var typ *Type
	if p.tryAccept(":") {
		typ = p.parseType()
	}
	return &VariableDeclaration{basePos{pos}, anns, name, typ}
}

func (p *Parser) parseMultiVariableDeclaration() *MultiVariableDeclaration {
	pos := p.cursor.peek(0).Pos
	p.accept(true, true, "(")
	p.consumeNewLines()
	var decls []*VariableDeclaration
	for {
		decls = append(decls, p.parseVariableDeclaration())
		p.consumeNewLines()
		if !p.tryAccept(",") {
			break
		}
		p.consumeNewLines()
	}
	p.accept(true, true, ")")
	return &MultiVariableDeclaration{basePos{pos}, decls}
}

// parsePropertyDeclaration is the most involved declaration
// production: a val/var keyword, an optional receiver, a single or
// destructuring variable declaration, and then a thicket of optional
// trailing pieces (initializer vs. delegate, getter, setter) whose
// relative order and presence all vary independently.
func (p *Parser) parsePropertyDeclaration(pos Position, mods Modifiers) *PropertyDeclaration {
	mutability := p.cursor.next().Val // "val" or "var"

	var typeParams []*TypeParameter
	if p.wouldAccept("<") {
		typeParams = p.parseTypeParameters()
	}

	var recv *Type
	var decl Node
	if p.wouldAccept("(") {
		multi := p.parseMultiVariableDeclaration()
		if p.wouldAccept(":") {
			p.raiseBare("type annotation is not allowed on a destructuring declaration")
		}
		decl = multi
	} else if p.wouldAccept(TokenAt) {
		decl = p.parseVariableDeclaration()
	} else {
		var name string
		recv, name = p.tryParseReceiverAndName()
		var typ *Type
		if p.tryAccept(":") {
			typ = p.parseType()
		}
		decl = &VariableDeclaration{basePos{pos}, nil, name, typ}
	}

	var constraints []*TypeConstraint
	if p.wouldAccept("where") {
		constraints = p.parseTypeConstraints()
	}

	var value Expression
	var delegate *PropertyDelegate
	switch {
	case p.tryAccept("="):
		value = p.parseExpression()
	case p.wouldAccept("by"):
		delegate = p.parsePropertyDelegate()
	}

	prop := &PropertyDeclaration{basePos{pos}, mods, mutability, typeParams, recv, decl, constraints, value, delegate, nil, nil}

	if v, ok := tryParseAny(p, func() *Getter {
		p.consumeSemis(true)
		return p.parseGetter()
	}); ok {
		prop.Getter = v
		if v, ok := tryParseAny(p, func() *Setter {
			p.consumeSemis(true)
			return p.parseSetter()
		}); ok {
			prop.Setter = v
		}
	} else if v, ok := tryParseAny(p, func() *Setter {
		p.consumeSemis(true)
		return p.parseSetter()
	}); ok {
		prop.Setter = v
		if v, ok := tryParseAny(p, func() *Getter {
			p.consumeSemis(true)
			return p.parseGetter()
		}); ok {
			prop.Getter = v
		}
	}
	return prop
}

func (p *Parser) parsePropertyDelegate() *PropertyDelegate {
	pos := p.cursor.peek(0).Pos
	p.accept(true, true, "by")
	return &PropertyDelegate{basePos{pos}, p.parseExpression()}
}

func (p *Parser) parseGetter() *Getter {
	pos := p.cursor.peek(0).Pos
	mods := p.parseModifiers()
	p.accept(true, true, "get")
	if !p.wouldAccept("(") {
		return &Getter{basePos{pos}, mods, nil, nil}
	}
	p.accept(true, true, "(")
	p.accept(true, true, ")")
	var ret *Type
	if p.tryAccept(":") {
		ret = p.parseType()
	}
	body := p.tryParseFunctionBody()
	if body == nil {
		p.raiseBare("expecting a getter body")
	}
	return &Getter{basePos{pos}, mods, ret, body}
}

// parseSetter requires a single parameter whenever a parenthesized
// parameter list is present — Kotlin disallows an empty setter
// parameter list, so that shape is rejected rather than silently
// tolerated.
func (p *Parser) parseSetter() *Setter {
	pos := p.cursor.peek(0).Pos
	mods := p.parseModifiers()
	p.accept(true, true, "set")
	if !p.wouldAccept("(") {
		return &Setter{basePos{pos}, mods, nil, nil}
	}
	p.accept(true, true, "(")
	param := p.parseFunctionValueParameter()
	p.accept(true, true, ")")
	body := p.tryParseFunctionBody()
	if body == nil {
		p.raiseBare("expecting a setter body")
	}
	return &Setter{basePos{pos}, mods, param, body}
}

func (p *Parser) parseObjectDeclaration(pos Position, mods Modifiers) *ObjectDeclaration {
	p.accept(true, true, "object")
	name := p.parseSimpleIdentifier().Value
	var specs []Node
	if p.tryAccept(":") {
		specs = p.parseDelegationSpecifiers()
	}
	var body *ClassBody
	if p.wouldAccept("{") {
		body = p.parseClassBody()
	}
	return &ObjectDeclaration{basePos{pos}, mods, name, specs, body}
}
