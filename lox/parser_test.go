package lox

import (
	"strings"
	"testing"
)

func parseProgram(t *testing.T, input string) *Program {
	t.Helper()
	p := newParser(input)
	program, errs := p.ParseProgram()
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return program
}

func parseErrors(t *testing.T, input string) []error {
	t.Helper()
	p := newParser(input)
	_, errs := p.ParseProgram()
	if len(errs) == 0 {
		t.Fatalf("expected parse errors, got none")
	}
	return errs
}

func TestParserArithmeticPrecedence(t *testing.T) {
	program := parseProgram(t, `1 + 2 * 3;`)
	stmt := program.Statements[0].(*ExprStmt)
	add, ok := stmt.Expr.(*BinaryExpr)
	if !ok || add.Operator != tokenPlus {
		t.Fatalf("expected + at root, got %T", stmt.Expr)
	}
	mul, ok := add.Right.(*BinaryExpr)
	if !ok || mul.Operator != tokenAsterisk {
		t.Fatalf("expected * on the right of +, got %T", add.Right)
	}
}

func TestParserComparisonBindsTighterThanEquality(t *testing.T) {
	program := parseProgram(t, `a == b < c;`)
	stmt := program.Statements[0].(*ExprStmt)
	eq, ok := stmt.Expr.(*BinaryExpr)
	if !ok || eq.Operator != tokenEQ {
		t.Fatalf("expected == at root, got %T", stmt.Expr)
	}
	if lt, ok := eq.Right.(*BinaryExpr); !ok || lt.Operator != tokenLT {
		t.Fatalf("expected < nested under ==, got %T", eq.Right)
	}
}

func TestParserLogicalPrecedence(t *testing.T) {
	// or binds looser than and
	program := parseProgram(t, `a or b and c;`)
	stmt := program.Statements[0].(*ExprStmt)
	or, ok := stmt.Expr.(*LogicalExpr)
	if !ok || or.Operator != tokenOr {
		t.Fatalf("expected or at root, got %T", stmt.Expr)
	}
	if and, ok := or.Right.(*LogicalExpr); !ok || and.Operator != tokenAnd {
		t.Fatalf("expected and nested under or, got %T", or.Right)
	}
}

func TestParserAssignmentRightAssociative(t *testing.T) {
	program := parseProgram(t, `a = b = 2;`)
	stmt := program.Statements[0].(*ExprStmt)
	outer, ok := stmt.Expr.(*AssignExpr)
	if !ok || outer.Name != "a" {
		t.Fatalf("expected assignment to a, got %T", stmt.Expr)
	}
	inner, ok := outer.Value.(*AssignExpr)
	if !ok || inner.Name != "b" {
		t.Fatalf("expected nested assignment to b, got %T", outer.Value)
	}
}

func TestParserPropertyAssignment(t *testing.T) {
	program := parseProgram(t, `obj.field = 1;`)
	stmt := program.Statements[0].(*ExprStmt)
	set, ok := stmt.Expr.(*SetExpr)
	if !ok || set.Property != "field" {
		t.Fatalf("expected SetExpr on field, got %T", stmt.Expr)
	}
}

func TestParserInvalidAssignmentTarget(t *testing.T) {
	errs := parseErrors(t, `1 + 2 = 3;`)
	if !strings.Contains(errs[0].Error(), "invalid assignment target") {
		t.Fatalf("unexpected error: %v", errs[0])
	}
}

func TestParserTernary(t *testing.T) {
	program := parseProgram(t, `a ? b : c ? d : e;`)
	stmt := program.Statements[0].(*ExprStmt)
	outer, ok := stmt.Expr.(*TernaryExpr)
	if !ok {
		t.Fatalf("expected ternary, got %T", stmt.Expr)
	}
	if _, ok := outer.Else.(*TernaryExpr); !ok {
		t.Fatalf("expected right-nested ternary in else, got %T", outer.Else)
	}
}

func TestParserCallArguments(t *testing.T) {
	program := parseProgram(t, `f(1, g(2), "x");`)
	stmt := program.Statements[0].(*ExprStmt)
	call, ok := stmt.Expr.(*CallExpr)
	if !ok {
		t.Fatalf("expected call, got %T", stmt.Expr)
	}
	if len(call.Args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(call.Args))
	}
	if _, ok := call.Args[1].(*CallExpr); !ok {
		t.Fatalf("expected nested call argument, got %T", call.Args[1])
	}
}

func TestParserForDesugarsToWhile(t *testing.T) {
	program := parseProgram(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	block, ok := program.Statements[0].(*BlockStmt)
	if !ok {
		t.Fatalf("expected enclosing block, got %T", program.Statements[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("expected initializer and loop, got %d statements", len(block.Statements))
	}
	if _, ok := block.Statements[0].(*VarStmt); !ok {
		t.Fatalf("expected var initializer, got %T", block.Statements[0])
	}
	loop, ok := block.Statements[1].(*WhileStmt)
	if !ok {
		t.Fatalf("expected while loop, got %T", block.Statements[1])
	}
	body, ok := loop.Body.(*BlockStmt)
	if !ok || len(body.Statements) != 2 {
		t.Fatalf("expected body block with increment appended, got %T", loop.Body)
	}
	if _, ok := body.Statements[1].(*ExprStmt); !ok {
		t.Fatalf("expected increment as trailing expression statement, got %T", body.Statements[1])
	}
}

func TestParserForWithEmptyClauses(t *testing.T) {
	program := parseProgram(t, `for (;;) break;`)
	loop, ok := program.Statements[0].(*WhileStmt)
	if !ok {
		t.Fatalf("expected bare while, got %T", program.Statements[0])
	}
	cond, ok := loop.Condition.(*BoolLiteral)
	if !ok || !cond.Value {
		t.Fatalf("expected constant true condition, got %T", loop.Condition)
	}
}

func TestParserClassDeclaration(t *testing.T) {
	program := parseProgram(t, `
class Point {
  init(x, y) {
    this.x = x;
    this.y = y;
  }
  sum() {
    return this.x + this.y;
  }
}`)
	class, ok := program.Statements[0].(*ClassStmt)
	if !ok {
		t.Fatalf("expected class statement, got %T", program.Statements[0])
	}
	if class.Name != "Point" || len(class.Methods) != 2 {
		t.Fatalf("unexpected class shape: %s with %d methods", class.Name, len(class.Methods))
	}
	if class.Methods[0].Name != "init" || len(class.Methods[0].Params) != 2 {
		t.Fatalf("unexpected init method: %+v", class.Methods[0])
	}
}

func TestParserDuplicateParameter(t *testing.T) {
	errs := parseErrors(t, `fun f(a, a) { return a; }`)
	if !strings.Contains(errs[0].Error(), "duplicate parameter") {
		t.Fatalf("unexpected error: %v", errs[0])
	}
}

func TestParserRecoversAcrossStatements(t *testing.T) {
	// Two separately broken statements produce two errors, and the valid
	// statement between them still parses.
	p := newParser("var = 1;\nvar ok = 2;\nprint ;\n")
	program, errs := p.ParseProgram()
	if len(errs) != 2 {
		t.Fatalf("expected 2 parse errors, got %d: %v", len(errs), errs)
	}
	if len(program.Statements) != 1 {
		t.Fatalf("expected the valid statement to survive, got %d", len(program.Statements))
	}
	if vs, ok := program.Statements[0].(*VarStmt); !ok || vs.Name != "ok" {
		t.Fatalf("unexpected surviving statement: %#v", program.Statements[0])
	}
}

func TestParserMissingSemicolon(t *testing.T) {
	errs := parseErrors(t, `var x = 1`)
	if !strings.Contains(errs[0].Error(), `";"`) {
		t.Fatalf("unexpected error: %v", errs[0])
	}
}

func TestParserDanglingElse(t *testing.T) {
	program := parseProgram(t, `if (a) if (b) print 1; else print 2;`)
	outer := program.Statements[0].(*IfStmt)
	if outer.Else != nil {
		t.Fatalf("else should bind to the inner if")
	}
	inner, ok := outer.Then.(*IfStmt)
	if !ok || inner.Else == nil {
		t.Fatalf("inner if should carry the else branch")
	}
}
