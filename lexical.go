package main

// parseIdentifier reads [A-Za-z_][A-Za-z0-9_]* into an Identifier node.
func (p *Parser) parseIdentifier(keepBlanks bool) *Node {
	if !isIdentifierStart(p.curr) {
		panic(p.unexpected("Identifier"))
	}
	node := &Node{Kind: KindIdentifier, Position: p.lineNumber}
	name := []byte{p.curr}
	p.next(true, false)
	for p.curr != 0 && isIdentifierBody(p.curr) {
		name = append(name, p.curr)
		p.next(true, false)
	}
	if !keepBlanks {
		p.skipSpaces()
	}
	node.Name = string(name)
	return node
}

// parseNumber reads a number literal in the given base (10 or 16). The
// value string is kept verbatim, including the 0x prefix re-attached for
// hex. Base 10 accepts a decimal point (switching the kind to float) and
// a scientific exponent whose sign is only legal right after e/E. An
// l/L suffix prepends Long to the kind, a following u/U prepends
// Unsigned, so Unsigned always ends up outermost.
func (p *Parser) parseNumber(digits int) *Node {
	if digits == 16 && !isHexDigit(p.curr) {
		panic(p.unexpected("Number"))
	}
	node := &Node{Position: p.lineNumber}
	kind := KindNumberLiteral
	if digits == 16 {
		kind = KindHexNumberLiteral
	}
	if p.curr == '.' {
		kind = KindFloatNumberLiteral
	}
	value := []byte{p.curr}
	p.next(true, false)
	for p.curr != 0 && (p.numberBody(digits) ||
		(digits != 16 && lower(p.curr) == 'e') ||
		(p.curr == '-' && digits != 16 && lower(p.at(p.index-1)) == 'e')) {
		if p.curr == '.' {
			kind = KindFloatNumberLiteral
		}
		value = append(value, p.curr)
		p.next(true, false)
	}
	if value[0] == '0' && len(value) > 1 && kind == KindNumberLiteral {
		kind = KindOctNumberLiteral
	}
	if lower(p.curr) == 'l' {
		kind = "Long" + kind
		value = append(value, p.curr)
		p.next(true, false)
	}
	if lower(p.curr) == 'u' {
		kind = "Unsigned" + kind
		value = append(value, p.curr)
		p.next(true, false)
	}
	if digits == 16 && p.curr == '.' {
		panic(p.unexpected("hex number"))
	}
	if digits == 16 {
		value = append([]byte("0x"), value...)
	}
	p.skipSpaces()
	node.Kind = kind
	node.Text = string(value)
	return node
}

func (p *Parser) numberBody(digits int) bool {
	if digits == 16 {
		return isHexDigit(p.curr)
	}
	return isFloatChar(p.curr)
}

// parseString reads the body of a double-quoted string, resolving
// backslash escapes. Content is read raw, so line breaks inside the
// string survive (and still count toward lineNumber).
func (p *Parser) parseString(keepBlanks bool) string {
	var str []byte
	p.next(true, true)
	for p.curr != 0 && p.curr != '"' {
		if p.curr == '\\' {
			str = append(str, p.parseEscape()...)
		} else {
			str = append(str, p.curr)
			p.next(true, true)
		}
	}
	if !p.lookahead("\"", keepBlanks) {
		panic(p.unexpected("double quote"))
	}
	return string(str)
}

// parseEscape resolves one backslash sequence with the cursor on the
// backslash. \xHH (up to two hex digits) and \NNN (up to three octal
// digits) produce the encoded byte; a character in the escapes table
// keeps its two-character backslash form verbatim.
func (p *Parser) parseEscape() string {
	p.index++
	p.curr = p.at(p.index)
	if p.curr == 'x' {
		p.next(true, true)
		code := 0
		for i := 0; i < 2; i++ {
			if isHexDigit(p.curr) {
				code = code*16 + hexValue(p.curr)
				p.next(true, true)
			}
		}
		return string([]byte{byte(code)})
	} else if isOctDigit(p.curr) {
		code := 0
		for i := 0; i < 3; i++ {
			if isOctDigit(p.curr) {
				code = code*8 + int(p.curr-'0')
				p.next(true, true)
			}
		}
		return string([]byte{byte(code)})
	} else if p.escapes[p.curr] {
		escaped := "\\" + string(rune(p.curr))
		p.next(true, true)
		return escaped
	}
	panic(p.unexpected("escape sequence"))
}
