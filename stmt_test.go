// Statement parser tests: control flow, bodies, local declarations,
// and the multi-declarator comma handling.

package main

import (
	"testing"

	"github.com/nalgeon/be"
)

// firstStatement parses a function wrapping src and returns the first
// statement of its block body.
func firstStatement(t *testing.T, src string) *Node {
	t.Helper()
	program := mustParse(t, "int main() { "+src+" }")
	body := program.Body[0].BodyStmt
	be.Equal(t, body.Kind, KindBlockStatement)
	be.True(t, len(body.Body) > 0)
	return body.Body[0]
}

func TestIfWithInlineBodies(t *testing.T) {
	statement := firstStatement(t, "if (a) b(); else c();")
	be.Equal(t, statement.Kind, KindIfStatement)
	be.Equal(t, statement.Condition.Kind, KindIdentifier)
	be.Equal(t, statement.Condition.Name, "a")

	body := statement.BodyStmt
	be.Equal(t, body.Kind, KindInlineStatement)
	be.Equal(t, len(body.Body), 1)
	be.Equal(t, body.Body[0].Kind, KindExpressionStatement)
	call := body.Body[0].Expression
	be.Equal(t, call.Kind, KindCallExpression)
	be.Equal(t, call.Callee.Name, "b")
	be.Equal(t, len(call.Arguments), 0)

	elseBody := statement.ElseBody
	be.Equal(t, elseBody.Kind, KindInlineStatement)
	be.Equal(t, elseBody.Body[0].Expression.Callee.Name, "c")
}

func TestIfWithoutElse(t *testing.T) {
	statement := firstStatement(t, "if (a) b();")
	be.Equal(t, statement.ElseBody, (*Node)(nil))
}

func TestIfWithBlockBody(t *testing.T) {
	statement := firstStatement(t, "if (a) { b(); c(); }")
	be.Equal(t, statement.BodyStmt.Kind, KindBlockStatement)
	be.Equal(t, len(statement.BodyStmt.Body), 2)
}

func TestIfEmptyInlineBody(t *testing.T) {
	statement := firstStatement(t, "if (a) ; else b();")
	be.Equal(t, statement.BodyStmt.Kind, KindInlineStatement)
	be.Equal(t, len(statement.BodyStmt.Body), 0)
	be.True(t, statement.ElseBody != nil)
}

func TestIfMissingConditionFails(t *testing.T) {
	msg := parseFails(t, "int main() { if () x(); }")
	be.Equal(t, msg, "Line number 1: Expect if condition")
}

func TestIfDirectlyFollowedByElseFails(t *testing.T) {
	msg := parseFails(t, "int main() { if (a) else b(); }")
	be.Equal(t, msg, "Line number 1: Expect if body statement")
}

func TestWhileStatement(t *testing.T) {
	statement := firstStatement(t, "while (i < 10) { work(); }")
	be.Equal(t, statement.Kind, KindWhileStatement)
	be.Equal(t, statement.Condition.Kind, KindBinaryExpression)
	be.Equal(t, statement.BodyStmt.Kind, KindBlockStatement)
}

func TestDoWhileStatement(t *testing.T) {
	statement := firstStatement(t, "do work(); while (i < 10);")
	be.Equal(t, statement.Kind, KindDoWhileStatement)
	be.Equal(t, statement.BodyStmt.Kind, KindInlineStatement)
	be.Equal(t, statement.Condition.Op, "<")
}

func TestForWithDeclarationInit(t *testing.T) {
	statement := firstStatement(t, "for (int i = 0; i < 10; i = i + 1) { }")
	be.Equal(t, statement.Kind, KindForStatement)
	be.Equal(t, statement.Init.Kind, NodeKind("ForVariableDefinition"))
	be.Equal(t, statement.Init.Identifier.Name, "i")
	be.Equal(t, statement.Init.Value.Text, "0")
	be.Equal(t, statement.Condition.Op, "<")
	be.Equal(t, statement.Step.Op, "=")
	be.Equal(t, statement.BodyStmt.Kind, KindBlockStatement)
	be.Equal(t, len(statement.BodyStmt.Body), 0)
}

func TestForWithBareDeclarationInit(t *testing.T) {
	statement := firstStatement(t, "for (int i; i < 10; i = i + 1) ;")
	be.Equal(t, statement.Init.Kind, NodeKind("ForVariableDeclaration"))
}

func TestForWithExpressionInit(t *testing.T) {
	statement := firstStatement(t, "for (i = 0; i < 10; i = i + 1) ;")
	be.Equal(t, statement.Init.Kind, KindExpressionStatement)
	be.Equal(t, statement.Init.Expression.Op, "=")
}

func TestReturnWithValue(t *testing.T) {
	statement := firstStatement(t, "return x + 1;")
	be.Equal(t, statement.Kind, KindReturnStatement)
	be.Equal(t, statement.Value.Op, "+")
}

func TestBareReturn(t *testing.T) {
	statement := firstStatement(t, "return;")
	be.Equal(t, statement.Value, (*Node)(nil))
}

func TestBreakAndContinue(t *testing.T) {
	statement := firstStatement(t, "break;")
	be.Equal(t, statement.Kind, KindBreakStatement)
	be.Equal(t, statement.Label, (*Node)(nil))

	statement = firstStatement(t, "continue;")
	be.Equal(t, statement.Kind, KindContinueStatement)
}

func TestBreakWithLabel(t *testing.T) {
	statement := firstStatement(t, "break outer;")
	be.Equal(t, statement.Label.Name, "outer")
}

func TestLocalVariableDefinition(t *testing.T) {
	statement := firstStatement(t, "int y = x * 2;")
	be.Equal(t, statement.Kind, KindVariableDefinition)
	be.Equal(t, statement.Identifier.Name, "y")
	be.Equal(t, statement.Type.Name, "int")
	be.Equal(t, statement.Value.Op, "*")
}

func TestLocalArrayDeclaration(t *testing.T) {
	statement := firstStatement(t, "char buf[16];")
	be.Equal(t, statement.Kind, KindArrayDeclaration)
	be.Equal(t, len(statement.Length), 1)
	be.Equal(t, statement.Length[0].Text, "16")
}

func TestUnsizedArrayHasNullLength(t *testing.T) {
	statement := firstStatement(t, "int v[] = {1, 2};")
	be.Equal(t, statement.Kind, KindArrayDefinition)
	be.Equal(t, len(statement.Length), 1)
	be.Equal(t, statement.Length[0], (*Node)(nil))
	be.Equal(t, statement.Value.Kind, KindArrayLiteral)
}

func TestExpressionStatement(t *testing.T) {
	statement := firstStatement(t, "x = x + 1;")
	be.Equal(t, statement.Kind, KindExpressionStatement)
	be.Equal(t, statement.Expression.Op, "=")
}

func TestIffyIsNotIf(t *testing.T) {
	statement := firstStatement(t, "iffy = 1;")
	be.Equal(t, statement.Kind, KindExpressionStatement)
	be.Equal(t, statement.Expression.Left.Name, "iffy")
}

func TestWhileyIsNotWhile(t *testing.T) {
	statement := firstStatement(t, "whiley();")
	be.Equal(t, statement.Kind, KindExpressionStatement)
	be.Equal(t, statement.Expression.Callee.Name, "whiley")
}

func TestMultiDeclarator(t *testing.T) {
	program := mustParse(t, "int main() { int a, b = 1; }")
	body := program.Body[0].BodyStmt.Body
	be.Equal(t, len(body), 2)
	be.Equal(t, body[0].Kind, KindVariableDeclaration)
	be.Equal(t, body[0].Identifier.Name, "a")
	be.Equal(t, body[1].Kind, KindVariableDefinition)
	be.Equal(t, body[1].Identifier.Name, "b")
	be.Equal(t, body[1].Type.Name, "int")
	be.Equal(t, body[1].Value.Text, "1")
}

func TestMultiDeclaratorKeepsModifiers(t *testing.T) {
	program := mustParse(t, "static int a, b;")
	be.Equal(t, len(program.Body), 2)
	be.Equal(t, program.Body[1].Type.Name, "int")
	be.Equal(t, program.Body[1].Type.Modifiers, []string{"static"})
}

func TestModifierOnlyDeclaration(t *testing.T) {
	// With no registered type name, the last modifier becomes the type.
	statement := firstStatement(t, "unsigned x;")
	be.Equal(t, statement.Type.Name, "unsigned")
	be.Equal(t, len(statement.Type.Modifiers), 0)
}

func TestUnsignedLongPromotion(t *testing.T) {
	statement := firstStatement(t, "unsigned long x = 1L;")
	be.Equal(t, statement.Type.Name, "long")
	be.Equal(t, statement.Type.Modifiers, []string{"unsigned"})
	be.Equal(t, statement.Value.Kind, NodeKind("LongNumberLiteral"))
}

func TestNestedBlocks(t *testing.T) {
	statement := firstStatement(t, "while (a) { if (b) { c(); } }")
	inner := statement.BodyStmt.Body[0]
	be.Equal(t, inner.Kind, KindIfStatement)
	be.Equal(t, inner.BodyStmt.Kind, KindBlockStatement)
}
