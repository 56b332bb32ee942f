package main

import "strings"

// NodeKind identifies the variant of a syntax tree node.
//
// Number literal kinds compose textually: an "l"/"L" suffix prepends
// "Long", a following "u"/"U" prepends "Unsigned", so "1LU" has kind
// UnsignedLongNumberLiteral. Declaration kinds gain a "Global" prefix at
// the top level and a "For" prefix when used as a for-loop init.
type NodeKind string

const (
	KindProgram NodeKind = "Program"

	// Top-level items
	KindIncludeStatement   NodeKind = "IncludeStatement"
	KindPredefineStatement NodeKind = "PredefineStatement"

	// Declarations and definitions
	KindType                 NodeKind = "Type"
	KindDeclaration          NodeKind = "Declaration"
	KindParameterDeclaration NodeKind = "ParameterDeclaration"
	KindTypeDefinition       NodeKind = "TypeDefinition"
	KindVariableDeclaration  NodeKind = "VariableDeclaration"
	KindVariableDefinition   NodeKind = "VariableDefinition"
	KindArrayDeclaration     NodeKind = "ArrayDeclaration"
	KindArrayDefinition      NodeKind = "ArrayDefinition"
	KindFunctionDeclaration  NodeKind = "FunctionDeclaration"
	KindFunctionDefinition   NodeKind = "FunctionDefinition"

	// Statements
	KindIfStatement         NodeKind = "IfStatement"
	KindWhileStatement      NodeKind = "WhileStatement"
	KindDoWhileStatement    NodeKind = "DoWhileStatement"
	KindForStatement        NodeKind = "ForStatement"
	KindReturnStatement     NodeKind = "ReturnStatement"
	KindBreakStatement      NodeKind = "BreakStatement"
	KindContinueStatement   NodeKind = "ContinueStatement"
	KindExpressionStatement NodeKind = "ExpressionStatement"
	KindBlockStatement      NodeKind = "BlockStatement"
	KindInlineStatement     NodeKind = "InlineStatement"

	// Expressions
	KindBinaryExpression      NodeKind = "BinaryExpression"
	KindIndexExpression       NodeKind = "IndexExpression"
	KindCallExpression        NodeKind = "CallExpression"
	KindParenthesesExpression NodeKind = "ParenthesesExpression"
	KindIdentifier            NodeKind = "Identifier"

	// Literals
	KindNumberLiteral      NodeKind = "NumberLiteral"
	KindFloatNumberLiteral NodeKind = "FloatNumberLiteral"
	KindHexNumberLiteral   NodeKind = "HexNumberLiteral"
	KindOctNumberLiteral   NodeKind = "OctNumberLiteral"
	KindCharLiteral        NodeKind = "CharLiteral"
	KindStringLiteral      NodeKind = "StringLiteral"
	KindArrayLiteral       NodeKind = "ArrayLiteral"

	// Comments
	KindBlockComment  NodeKind = "BlockComment"
	KindInlineComment NodeKind = "InlineComment"
)

// Node is a syntax tree node. Kind and Position are set on every node;
// the remaining fields are populated per kind and mirror the serialized
// field names (see ast_json.go for the kind-to-field mapping).
type Node struct {
	Kind     NodeKind
	Position int

	// Program, BlockStatement, InlineStatement
	Body []*Node

	// IfStatement, WhileStatement, DoWhileStatement, ForStatement,
	// FunctionDefinition
	BodyStmt *Node
	ElseBody *Node

	// Control flow
	Condition *Node
	Init      *Node
	Step      *Node
	Label     *Node

	// Declarations and definitions
	Identifier *Node
	Type       *Node
	Parameters []*Node
	Length     []*Node
	Value      *Node

	// Type nodes
	Name      string
	Modifiers []string

	// Expressions
	Expression *Node
	Left       *Node
	Right      *Node
	Op         string
	Callee     *Node
	Arguments  []*Node
	Array      *Node
	Indexes    []*Node

	// PredefineStatement: distinguishes "#define F(a) ..." with an empty
	// or present list from "#define F ..." with no list at all.
	HasArguments bool

	// IncludeStatement
	File string

	// Literal text (number/char/string literals) and comment content
	Text    string
	Content string

	// ArrayLiteral entries
	Elements []*Node
}

// isDeclarationKind reports whether k belongs to the declaration family
// (identifier + type payload), including Global/For prefixed forms.
func isDeclarationKind(k NodeKind) bool {
	s := string(k)
	return strings.HasSuffix(s, "Declaration") || strings.HasSuffix(s, "Definition")
}

// isArrayKind reports whether k carries a length payload.
func isArrayKind(k NodeKind) bool {
	return strings.Contains(string(k), "Array") && k != KindArrayLiteral
}

// isLiteralKind reports whether k is a literal, including the composed
// Long/Unsigned number forms.
func isLiteralKind(k NodeKind) bool {
	return strings.HasSuffix(string(k), "Literal")
}
