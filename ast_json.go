package main

import "encoding/json"

// MarshalJSON serializes a node with the kind-specific field set the
// downstream consumers expect. Optional expressions serialize as null,
// list-valued fields as arrays, except the arguments of a #define with
// no parameter list, which are null. Keys come out alphabetically
// ordered, which keeps output deterministic.
func (n *Node) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"kind":     n.Kind,
		"position": n.Position,
	}
	switch n.Kind {
	case KindProgram, KindBlockStatement, KindInlineStatement:
		m["body"] = nodeList(n.Body)
	case KindIncludeStatement:
		m["file"] = n.File
	case KindPredefineStatement:
		m["identifier"] = n.Identifier
		if n.HasArguments {
			m["arguments"] = nodeList(n.Arguments)
		} else {
			m["arguments"] = nil
		}
		m["value"] = n.Value
	case KindType:
		m["name"] = n.Name
		m["modifiers"] = stringList(n.Modifiers)
	case KindIdentifier:
		m["name"] = n.Name
	case KindIfStatement:
		m["condition"] = n.Condition
		m["body"] = n.BodyStmt
		m["elseBody"] = n.ElseBody
	case KindWhileStatement, KindDoWhileStatement:
		m["condition"] = n.Condition
		m["body"] = n.BodyStmt
	case KindForStatement:
		m["init"] = n.Init
		m["condition"] = n.Condition
		m["step"] = n.Step
		m["body"] = n.BodyStmt
	case KindReturnStatement:
		m["value"] = n.Value
	case KindBreakStatement, KindContinueStatement:
		m["label"] = n.Label
	case KindExpressionStatement:
		m["expression"] = n.Expression
	case KindBinaryExpression:
		m["op"] = n.Op
		m["left"] = n.Left
		m["right"] = n.Right
	case KindIndexExpression:
		m["array"] = n.Array
		m["indexes"] = nodeList(n.Indexes)
	case KindCallExpression:
		m["callee"] = n.Callee
		m["arguments"] = nodeList(n.Arguments)
	case KindParenthesesExpression:
		m["expression"] = n.Expression
	case KindFunctionDeclaration:
		m["identifier"] = n.Identifier
		m["type"] = n.Type
		m["parameters"] = nodeList(n.Parameters)
	case KindFunctionDefinition:
		m["identifier"] = n.Identifier
		m["type"] = n.Type
		m["parameters"] = nodeList(n.Parameters)
		m["body"] = n.BodyStmt
	case KindDeclaration, KindParameterDeclaration, KindTypeDefinition:
		m["identifier"] = n.Identifier
		m["type"] = n.Type
	case KindArrayLiteral:
		m["value"] = nodeList(n.Elements)
	case KindBlockComment, KindInlineComment:
		m["content"] = n.Content
	default:
		switch {
		case isLiteralKind(n.Kind):
			m["value"] = n.Text
		case isDeclarationKind(n.Kind):
			// Variable/array declarations and definitions, with their
			// Global and For prefixed forms.
			m["identifier"] = n.Identifier
			m["type"] = n.Type
			if isArrayKind(n.Kind) {
				m["length"] = nodeList(n.Length)
			}
			if hasValuePayload(n.Kind) {
				m["value"] = n.Value
			}
		}
	}
	return json.Marshal(m)
}

// hasValuePayload reports whether a declaration-family kind carries an
// initializer.
func hasValuePayload(k NodeKind) bool {
	switch k {
	case KindVariableDefinition, KindArrayDefinition,
		"GlobalVariableDefinition", "GlobalArrayDefinition",
		"ForVariableDefinition":
		return true
	}
	return false
}

// nodeList keeps empty node lists serializing as [] instead of null.
// Nil entries stay null; an unsized array dimension is one.
func nodeList(nodes []*Node) []*Node {
	if nodes == nil {
		return []*Node{}
	}
	return nodes
}

func stringList(strs []string) []string {
	if strs == nil {
		return []string{}
	}
	return strs
}

// MarshalTree renders a whole tree as JSON, indented unless compact is
// set.
func MarshalTree(root *Node, compact bool) ([]byte, error) {
	if compact {
		return json.Marshal(root)
	}
	return json.MarshalIndent(root, "", "  ")
}
