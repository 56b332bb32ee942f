package main

import "fmt"

// Config holds the customization tables of a Parser. The zero value is
// not usable; start from DefaultConfig.
type Config struct {
	// TypeModifiers are qualifier keywords accepted before a type name.
	TypeModifiers []string
	// TypeNames are the built-in type names. Parsing a typedef appends
	// to the parser's own copy of this list.
	TypeNames []string
	// Operators is the binary operator list in scan order. Longer
	// operators must come before their prefixes ("==" before "=");
	// ValidateOperators checks this.
	Operators []string
	// Precedence maps each operator to its binding strength. Higher
	// binds tighter.
	Precedence map[string]int
	// Escapes are the characters accepted after a backslash in char and
	// string literals, beyond \xHH and octal \NNN.
	Escapes map[byte]bool
}

// DefaultConfig returns the tables for the supported C dialect.
func DefaultConfig() Config {
	return Config{
		TypeModifiers: []string{
			"const", "static", "extern", "unsigned", "signed", "long", "short", "volatile",
		},
		TypeNames: []string{
			"void", "char", "int", "float", "double",
		},
		Operators: []string{
			"<<=", ">>=",
			"==", "!=", "<=", ">=", "&&", "||", "<<", ">>",
			"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
			"=", "<", ">", "+", "-", "*", "/", "%", "&", "|", "^",
		},
		Precedence: map[string]int{
			"=": 1, "+=": 1, "-=": 1, "*=": 1, "/=": 1, "%=": 1,
			"<<=": 1, ">>=": 1, "&=": 1, "|=": 1, "^=": 1,
			"||": 2,
			"&&": 3,
			"|":  4,
			"^":  5,
			"&":  6,
			"==": 7, "!=": 7,
			"<": 8, ">": 8, "<=": 8, ">=": 8,
			"<<": 9, ">>": 9,
			"+": 10, "-": 10,
			"*": 11, "/": 11, "%": 11,
		},
		Escapes: map[byte]bool{
			'n': true, 't': true, 'r': true, '0': true, '\\': true,
			'\'': true, '"': true, 'a': true, 'b': true, 'f': true, 'v': true,
		},
	}
}

// ValidateOperators rejects operator lists where a longer operator
// appears after one of its own prefixes. Such a list would make the
// scanner match "=" inside "==" and never see the longer operator.
func ValidateOperators(operators []string) error {
	for i, shorter := range operators {
		for _, longer := range operators[i+1:] {
			if len(longer) > len(shorter) && longer[:len(shorter)] == shorter {
				return fmt.Errorf("operator %q is shadowed by earlier prefix %q", longer, shorter)
			}
		}
	}
	return nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isFloatChar accepts the characters of a decimal number body.
func isFloatChar(c byte) bool {
	return isDigit(c) || c == '.'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isOctDigit(c byte) bool {
	return '0' <= c && c <= '7'
}

func isIdentifierStart(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isIdentifierBody(c byte) bool {
	return isIdentifierStart(c) || isDigit(c)
}

// isIllegalChar reports characters the cursor refuses outside of raw
// string/comment content: non-printable, non-space, or non-ASCII.
func isIllegalChar(c byte) bool {
	if c == 0 || isSpace(c) {
		return false
	}
	return c < 0x20 || c > 0x7E
}

// isIdentifierWord reports whether s is shaped like an identifier, which
// makes lookahead enforce a word boundary after a match.
func isIdentifierWord(s string) bool {
	if len(s) == 0 || !isIdentifierStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentifierBody(s[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func hexValue(c byte) int {
	switch {
	case isDigit(c):
		return int(c - '0')
	default:
		return int(lower(c)-'a') + 10
	}
}
