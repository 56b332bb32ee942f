package main

// ParseSource parses a whole source string with the default dialect
// tables and returns the Program root.
func ParseSource(src string) (*Node, error) {
	return NewParser(src).Parse()
}

// Parse drives the top level: include/define directives, global
// declarations and definitions, functions, and typedefs, with captured
// comments flushed between items. The first fault anywhere below aborts
// the parse and surfaces here as the returned error.
func (p *Parser) Parse() (program *Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			parseErr, ok := r.(*ParseError)
			if !ok {
				panic(r)
			}
			program, err = nil, parseErr
		}
	}()

	p.next(false, false)
	statements := []*Node{}
	for p.curr != 0 {
		p.skipSpaces()
		statements = p.flushComments(statements)
		if p.lookahead("#include", false) {
			statements = append(statements, p.parseInclude())
		} else if p.lookahead("#define", false) {
			statements = append(statements, p.parsePredefine())
		} else if p.declarationIncoming() {
			declaration := p.parseDeclaration("")
			if p.lookahead("(", false) {
				statements = append(statements, p.parseFunction(declaration))
			} else {
				statements = append(statements, p.parseDefinition(declaration, true))
			}
		} else if p.lookahead("typedef", false) {
			declaration := p.parseDeclaration(KindTypeDefinition)
			p.typeNames = append(p.typeNames, declaration.Identifier.Name)
			p.consume(";")
			statements = append(statements, declaration)
		} else if p.lookahead("struct", false) {
			panic(p.unsupported("struct"))
		} else if p.lookahead("enum", false) {
			panic(p.unsupported("enum"))
		} else {
			panic(p.unexpected("definition"))
		}
		statements = p.flushComments(statements)
		p.skipSpaces()
	}

	return &Node{Kind: KindProgram, Position: 1, Body: statements}, nil
}

// parseInclude reads the file of an #include, keeping the surrounding
// <> or "" delimiters in the stored name.
func (p *Parser) parseInclude() *Node {
	node := &Node{Kind: KindIncludeStatement, Position: p.lineNumber}
	var file []byte
	if p.curr == '<' {
		for p.curr != 0 && p.curr != '>' {
			file = append(file, p.curr)
			p.next(true, false)
		}
	} else if p.curr == '"' {
		for {
			file = append(file, p.curr)
			p.next(true, false)
			if p.curr == 0 || p.curr == '"' {
				break
			}
		}
	} else {
		panic(p.unexpected("\" or <"))
	}
	file = append(file, p.curr)
	node.File = string(file)
	p.next(true, false)
	return node
}

// parsePredefine reads a #define: an identifier, an optional argument
// list, and a value expression. With an argument list present, the
// value must itself start with a parenthesis.
func (p *Parser) parsePredefine() *Node {
	node := &Node{Kind: KindPredefineStatement, Position: p.lineNumber}
	node.Identifier = p.parseIdentifier(false)
	if p.lookahead("(", false) {
		node.HasArguments = true
		node.Arguments = []*Node{}
		for p.curr != 0 {
			if argument := p.parseExpression(""); argument != nil {
				node.Arguments = append(node.Arguments, argument)
			}
			if !p.lookahead(",", false) {
				break
			}
		}
		p.consume(")")
	}
	if node.HasArguments && p.curr != '(' {
		panic(p.unexpected("("))
	}
	node.Value = p.parseExpression("")
	return node
}

// declarationIncoming reports, without consuming input, whether the
// upcoming characters start a type: any known modifier or type name.
// This predicate separates declarations from expression statements.
func (p *Parser) declarationIncoming() bool {
	save := p.index
	for _, modifier := range p.typeModifiers {
		if p.lookahead(modifier, false) {
			p.index = save
			p.curr = p.at(save)
			return true
		}
	}
	for _, name := range p.typeNames {
		if p.lookahead(name, false) {
			p.index = save
			p.curr = p.at(save)
			return true
		}
	}
	return false
}

// parseDeclaration reads modifiers, a type name, and an identifier. If
// no registered type name follows the modifiers, the last modifier is
// promoted to type name, which is what makes "unsigned x;" legal. The
// kind parameter overrides the default Declaration kind when the caller
// knows the context.
func (p *Parser) parseDeclaration(kind NodeKind) *Node {
	var modifiers []string
	typ := &Node{Kind: KindType, Position: p.lineNumber}
	for hasModifier := true; hasModifier; {
		hasModifier = false
		for _, modifier := range p.typeModifiers {
			if p.lookahead(modifier, false) {
				modifiers = append(modifiers, modifier)
				hasModifier = true
			}
		}
	}
	for _, name := range p.typeNames {
		if p.lookahead(name, false) {
			typ.Name = name
			typ.Modifiers = modifiers
			return p.finishDeclaration(typ, kind)
		}
	}
	if len(modifiers) > 0 {
		typ.Name = modifiers[len(modifiers)-1]
		typ.Modifiers = modifiers[:len(modifiers)-1]
		return p.finishDeclaration(typ, kind)
	}
	panic(p.unexpected("correct type name"))
}

func (p *Parser) finishDeclaration(typ *Node, kind NodeKind) *Node {
	if kind == "" {
		kind = KindDeclaration
	}
	declaration := &Node{Kind: kind, Position: p.lineNumber}
	declaration.Identifier = p.parseIdentifier(false)
	declaration.Type = typ
	return declaration
}

// parseDefinition turns a parsed declaration into a variable or array
// declaration/definition. A trailing comma means the declarator list
// continues: the comma in the buffer is spliced over with the shared
// type string, so the next statement re-enters the declaration parser.
// Later declarators therefore lose array brackets and initializers of
// the first; complex multi-declarator forms are unsupported.
func (p *Parser) parseDefinition(declaration *Node, isGlobal bool) *Node {
	var length []*Node
	isArray := false
	for p.lookahead("[", false) {
		isArray = true
		if !p.lookahead("]", false) {
			length = append(length, p.parseExpression(""))
			p.consume("]")
		} else {
			length = append(length, nil)
		}
	}
	definition := &Node{
		Position:   declaration.Position,
		Identifier: declaration.Identifier,
		Type:       declaration.Type,
	}
	if isArray {
		definition.Length = length
	}
	if p.lookahead("=", false) {
		if isArray {
			definition.Kind = KindArrayDefinition
		} else {
			definition.Kind = KindVariableDefinition
		}
		definition.Value = p.parseExpression("")
	} else {
		if isArray {
			definition.Kind = KindArrayDeclaration
		} else {
			definition.Kind = KindVariableDeclaration
		}
	}
	if isGlobal {
		definition.Kind = "Global" + definition.Kind
	}
	if p.curr == ',' {
		var typeText string
		for _, modifier := range declaration.Type.Modifiers {
			typeText += modifier + " "
		}
		typeText += declaration.Type.Name
		p.splice(typeText)
	} else {
		p.consume(";")
	}
	return definition
}

// parseParameters reads a function's parameter declarations up to the
// closing parenthesis.
func (p *Parser) parseParameters() []*Node {
	parameters := []*Node{}
	for p.declarationIncoming() {
		parameters = append(parameters, p.parseDeclaration(KindParameterDeclaration))
		if p.lookahead(")", false) {
			return parameters
		}
		p.consume(",")
	}
	p.consume(")")
	return parameters
}

// parseFunction finishes a function after its return-type declaration
// and opening parenthesis: a semicolon after the parameter list makes a
// FunctionDeclaration, a block body makes a FunctionDefinition.
func (p *Parser) parseFunction(declaration *Node) *Node {
	parameters := p.parseParameters()
	node := &Node{
		Position:   declaration.Position,
		Identifier: declaration.Identifier,
		Type:       declaration.Type,
		Parameters: parameters,
	}
	if p.lookahead(";", false) {
		node.Kind = KindFunctionDeclaration
		return node
	}
	node.Kind = KindFunctionDefinition
	node.BodyStmt = p.parseBody(true)
	return node
}

// parseBody reads the body of a statement. A brace (or shouldBeBlock,
// used for function bodies) produces a BlockStatement; otherwise an
// InlineStatement holding at most one statement, or none when only a
// semicolon follows. Pending comments flush into the body at each
// statement boundary.
func (p *Parser) parseBody(shouldBeBlock bool) *Node {
	statements := []*Node{}
	if p.curr == '{' || shouldBeBlock {
		block := &Node{Kind: KindBlockStatement, Position: p.lineNumber}
		p.consume("{")
		statements = p.flushComments(statements)
		for p.curr != 0 && p.curr != '}' {
			statements = append(statements, p.parseStatement())
			statements = p.flushComments(statements)
		}
		p.consume("}")
		block.Body = statements
		return block
	}
	line := &Node{Kind: KindInlineStatement, Position: p.lineNumber}
	statements = p.flushComments(statements)
	if !p.lookahead(";", false) {
		statements = append(statements, p.parseStatement())
	}
	line.Body = statements
	return line
}

// parseStatement dispatches on the leading keyword, then on the
// declaration predicate, and finally falls back to an expression
// statement.
func (p *Parser) parseStatement() *Node {
	if p.lookahead("if", false) {
		statement := &Node{Kind: KindIfStatement, Position: p.lineNumber}
		p.consume("(")
		condition := p.parseExpression(")")
		if condition == nil {
			panic(p.unexpected("if condition"))
		}
		statement.Condition = condition
		if p.lookahead("else", false) {
			panic(p.unexpected("if body statement"))
		}
		statement.BodyStmt = p.parseBody(false)
		if p.lookahead("else", false) {
			statement.ElseBody = p.parseBody(false)
		}
		return statement
	}
	if p.lookahead("while", false) {
		statement := &Node{Kind: KindWhileStatement, Position: p.lineNumber}
		p.consume("(")
		condition := p.parseExpression(")")
		if condition == nil {
			panic(p.unexpected("while condition"))
		}
		statement.Condition = condition
		statement.BodyStmt = p.parseBody(false)
		return statement
	}
	if p.lookahead("do", false) {
		statement := &Node{Kind: KindDoWhileStatement, Position: p.lineNumber}
		statement.BodyStmt = p.parseBody(false)
		p.consume("while")
		p.consume("(")
		condition := p.parseExpression(")")
		if condition == nil {
			panic(p.unexpected("while condition"))
		}
		statement.Condition = condition
		p.consume(";")
		return statement
	}
	if p.lookahead("for", false) {
		statement := &Node{Kind: KindForStatement, Position: p.lineNumber}
		p.consume("(")
		init := p.parseStatement()
		if init.Kind == KindVariableDefinition || init.Kind == KindVariableDeclaration {
			init.Kind = "For" + init.Kind
		}
		statement.Init = init
		statement.Condition = p.parseExpression(";")
		statement.Step = p.parseExpression(")")
		statement.BodyStmt = p.parseBody(false)
		return statement
	}
	if p.lookahead("return", false) {
		statement := &Node{Kind: KindReturnStatement, Position: p.lineNumber}
		statement.Value = p.parseExpression(";")
		return statement
	}
	if p.lookahead("break", false) {
		statement := &Node{Kind: KindBreakStatement, Position: p.lineNumber}
		statement.Label = p.parseExpression(";")
		return statement
	}
	if p.lookahead("continue", false) {
		statement := &Node{Kind: KindContinueStatement, Position: p.lineNumber}
		statement.Label = p.parseExpression(";")
		return statement
	}
	if p.declarationIncoming() {
		return p.parseDefinition(p.parseDeclaration(""), false)
	}
	statement := &Node{Kind: KindExpressionStatement, Position: p.lineNumber}
	statement.Expression = p.parseExpression(";")
	return statement
}

// parseExpression parses one expression by precedence climbing and, when
// end is given, consumes the terminator. A nil result means no
// expression was present, which some callers allow (a bare "return;")
// and others reject.
func (p *Parser) parseExpression(end string) *Node {
	expression := p.parseBinary(p.parseUnary(), 0)
	if end != "" {
		p.consume(end)
	}
	return expression
}

// scanBinaryOperator inspects the upcoming operator without consuming
// it, walking the operator list in configuration order. The list is
// longest-first, so "<<=" wins over "<<" over "<".
func (p *Parser) scanBinaryOperator() string {
	save := p.index
	for _, op := range p.operators {
		if p.lookahead(op, false) {
			p.index = save
			p.curr = p.at(save)
			return op
		}
	}
	return ""
}

// parseBinary builds left-associative binary expressions by precedence
// climbing. The recursive call passes the look-ahead operator's own
// precedence as the new minimum; since only a strictly higher operator
// recurses, equal precedences still group left to right.
func (p *Parser) parseBinary(left *Node, minPrecedence int) *Node {
	ahead := p.scanBinaryOperator()
	for ahead != "" && p.precedence[ahead] >= minPrecedence {
		op := ahead
		position := p.lineNumber
		p.consume(op)
		right := p.parseUnary()
		if right == nil {
			panic(p.unexpected("right value"))
		}
		ahead = p.scanBinaryOperator()

		for ahead != "" && p.precedence[ahead] > p.precedence[op] {
			right = p.parseBinary(right, p.precedence[ahead])
			if right == nil {
				panic(p.unexpected("right value"))
			}
			ahead = p.scanBinaryOperator()
		}

		left = &Node{
			Kind:     KindBinaryExpression,
			Position: position,
			Op:       op,
			Left:     left,
			Right:    right,
		}
	}
	return left
}

// parseUnary parses a primary and its postfix forms: index subscripts,
// a call when a parenthesis follows a primary, or a parenthesized
// sub-expression when it follows nothing.
func (p *Parser) parseUnary() *Node {
	literal := p.parseLiteral()
	var indexes []*Node
	for p.lookahead("[", false) {
		indexes = append(indexes, p.parseExpression(""))
		p.consume("]")
	}
	if len(indexes) > 0 {
		return &Node{
			Kind:     KindIndexExpression,
			Position: p.lineNumber,
			Array:    literal,
			Indexes:  indexes,
		}
	}
	if p.lookahead("(", false) {
		if literal != nil {
			call := &Node{Kind: KindCallExpression, Position: p.lineNumber}
			arguments := []*Node{}
			for p.curr != 0 {
				if argument := p.parseExpression(""); argument != nil {
					arguments = append(arguments, argument)
				}
				if !p.lookahead(",", false) {
					break
				}
			}
			p.consume(")")
			call.Arguments = arguments
			call.Callee = literal
			return call
		}
		parentheses := &Node{Kind: KindParenthesesExpression, Position: p.lineNumber}
		parentheses.Expression = p.parseExpression("")
		p.consume(")")
		return parentheses
	}
	return literal
}

// parseLiteral dispatches on the current character. A nil return means
// no literal starts here, which parseUnary uses to tell a call from a
// parenthesized expression. The leading minus handled here belongs to
// number literals only; there is no general unary operator.
func (p *Parser) parseLiteral() *Node {
	if p.lookahead("{", false) {
		node := &Node{Kind: KindArrayLiteral, Position: p.lineNumber}
		entries := []*Node{}
		for p.curr != 0 {
			if entry := p.parseExpression(""); entry != nil {
				entries = append(entries, entry)
			}
			if !p.lookahead(",", false) {
				break
			}
		}
		p.consume("}")
		node.Elements = entries
		return node
	}
	if p.curr == '\'' {
		p.next(true, true)
		node := &Node{Kind: KindCharLiteral, Position: p.lineNumber}
		ch := string(rune(p.curr))
		if p.curr == '\\' {
			ch = p.parseEscape()
		} else {
			p.next(true, true)
		}
		p.consume("'")
		node.Text = ch
		return node
	}
	if p.curr == '"' {
		node := &Node{Kind: KindStringLiteral, Position: p.lineNumber}
		node.Text = p.parseString(false)
		return node
	}
	if p.lookahead("0x", false) {
		return p.parseNumber(16)
	}
	if p.lookahead("-0x", false) {
		literal := p.parseNumber(16)
		literal.Text = "-" + literal.Text
		return literal
	}
	if isFloatChar(p.curr) || p.curr == '-' {
		return p.parseNumber(10)
	}
	if isIdentifierStart(p.curr) {
		return p.parseIdentifier(false)
	}
	return nil
}
