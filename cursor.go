package main

// Parser reads a single source buffer character by character. There is
// no token stream: the grammar decides between constructs with lookahead
// over raw characters, and the cursor interleaves whitespace skipping,
// line counting, and comment capture with every advance.
//
// A Parser owns its buffer exclusively (multi-declarator handling
// splices the shared type string back over a comma, see
// parseDefinition) and must not be reused across inputs.
type Parser struct {
	source     []byte
	index      int
	curr       byte
	lineNumber int

	// comments captured by the cursor, waiting to be flushed into the
	// nearest enclosing statement list. commentMark is the end offset of
	// the furthest comment captured so far: speculative lookahead can
	// scan the same comment more than once, and the mark keeps repeats
	// out of the queue.
	comments    []*Node
	commentMark int

	typeModifiers []string
	typeNames     []string
	operators     []string
	precedence    map[string]int
	escapes       map[byte]bool
}

// NewParser returns a parser for src with the default dialect tables.
func NewParser(src string) *Parser {
	return NewParserConfig(src, DefaultConfig())
}

// NewParserConfig returns a parser for src with custom tables. The type
// name list is copied: typedefs extend it during the parse.
func NewParserConfig(src string, config Config) *Parser {
	p := &Parser{
		source:        []byte(src),
		index:         -1,
		lineNumber:    1,
		typeModifiers: config.TypeModifiers,
		operators:     config.Operators,
		precedence:    config.Precedence,
		escapes:       config.Escapes,
	}
	p.typeNames = append([]string(nil), config.TypeNames...)
	return p
}

// at reads the byte at offset i, with a NUL sentinel past either end.
func (p *Parser) at(i int) byte {
	if i < 0 || i >= len(p.source) {
		return 0
	}
	return p.source[i]
}

// next advances one character. Unless withSpaces is set it then drains
// any whitespace run, and unless withComment is set it captures any
// comment at the new position; the two interleave (space, comment,
// space, ...) until neither consumes anything. Every newline consumed
// bumps lineNumber. Outside raw mode an illegal character is fatal.
func (p *Parser) next(withSpaces, withComment bool) {
	if p.curr == '\n' {
		p.lineNumber++
	}
	p.index++
	p.curr = p.at(p.index)
	for skipped := true; skipped; {
		skipped = false
		if !withSpaces && isSpace(p.curr) {
			for p.curr != 0 && isSpace(p.curr) {
				if p.curr == '\n' {
					p.lineNumber++
				}
				p.index++
				p.curr = p.at(p.index)
			}
			skipped = true
		}
		if !withComment {
			if p.parseComment() {
				skipped = true
			}
			if isIllegalChar(p.curr) {
				panic(p.unexpected("legal character"))
			}
		}
	}
}

// skipSpaces advances past whitespace (and any comments behind it) when
// the cursor currently rests on a space.
func (p *Parser) skipSpaces() {
	if isSpace(p.curr) {
		p.next(false, false)
	}
}

// lookahead matches the literal s at the cursor, advancing character by
// character without space skipping. On mismatch the cursor is restored
// and the result is false. A match of an identifier-shaped s is rejected
// when an identifier-body character follows, so "if" never matches the
// prefix of "iffy". On success trailing spaces are skipped unless
// keepBlanks is set.
func (p *Parser) lookahead(s string, keepBlanks bool) bool {
	save := p.index
	for i := 0; i < len(s); i++ {
		if p.curr != s[i] {
			p.index = save
			p.curr = p.at(save)
			return false
		}
		p.next(true, false)
	}

	if isIdentifierBody(p.curr) && isIdentifierWord(s) {
		p.index = save
		p.curr = p.at(save)
		return false
	}

	if !keepBlanks {
		p.skipSpaces()
	}
	return true
}

// consume is lookahead with failure made fatal: every character of s
// must match, each advance skipping spaces and comments.
func (p *Parser) consume(s string) {
	for i := 0; i < len(s); i++ {
		if p.curr != s[i] {
			panic(p.unexpected(s))
		}
		p.next(false, false)
	}
}

// parseComment captures a block or inline comment at the cursor,
// reporting whether one was consumed. Content is read raw: no space
// skipping, no nested comment scan, newlines still counted. The scan
// stops at end of buffer, so an unterminated comment never over-reads.
func (p *Parser) parseComment() bool {
	start := p.index
	if p.curr == '/' && p.at(p.index+1) == '*' {
		position := p.lineNumber
		p.next(true, true)
		p.next(true, true)
		var content []byte
		for p.curr != 0 && !(p.curr == '*' && p.at(p.index+1) == '/') {
			content = append(content, p.curr)
			p.next(true, true)
		}
		if p.curr != 0 {
			p.index += 2
			p.curr = p.at(p.index)
		}
		p.capture(&Node{Kind: KindBlockComment, Position: position, Content: string(content)}, start)
		return true
	}
	if p.curr == '/' && p.at(p.index+1) == '/' {
		position := p.lineNumber
		p.next(true, true)
		p.next(true, true)
		var content []byte
		for p.curr != 0 && p.curr != '\n' {
			content = append(content, p.curr)
			p.next(true, true)
		}
		p.capture(&Node{Kind: KindInlineComment, Position: position, Content: string(content)}, start)
		return true
	}
	return false
}

// capture enqueues a comment unless an earlier scan of the same region
// already did. Scanning is strictly forward, so a start offset below the
// mark means this comment was seen before.
func (p *Parser) capture(comment *Node, start int) {
	if start < p.commentMark {
		return
	}
	p.comments = append(p.comments, comment)
	p.commentMark = p.index
}

// flushComments appends the pending comment queue to a statement list
// and clears the queue.
func (p *Parser) flushComments(statements []*Node) []*Node {
	if len(p.comments) == 0 {
		return statements
	}
	statements = append(statements, p.comments...)
	p.comments = p.comments[:0]
	return statements
}

// splice replaces one byte at the cursor with the given text. Used by
// parseDefinition to re-present the shared type after a comma so the
// next statement re-runs the declaration parser.
func (p *Parser) splice(text string) {
	rest := p.source[p.index+1:]
	buf := make([]byte, 0, p.index+len(text)+len(rest))
	buf = append(buf, p.source[:p.index]...)
	buf = append(buf, text...)
	buf = append(buf, rest...)
	p.source = buf
	p.curr = p.at(p.index)
}
