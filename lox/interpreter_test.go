package lox

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCompileReportsLexErrors(t *testing.T) {
	engine := NewEngine(Config{})
	_, err := engine.Compile(`var x = 1.;`)
	if err == nil {
		t.Fatalf("expected compile error")
	}
	var le *LexError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LexError, got %T: %v", err, err)
	}
}

func TestCompileReportsParseErrors(t *testing.T) {
	engine := NewEngine(Config{})
	_, err := engine.Compile(`var = 1;`)
	if err == nil {
		t.Fatalf("expected compile error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
}

func TestLexErrorsWinOverParseErrors(t *testing.T) {
	// The bad character also derails the parser; the lexical fault is the
	// root cause and must be the one reported.
	engine := NewEngine(Config{})
	_, err := engine.Compile(`var x = 1 $ 2;`)
	if err == nil {
		t.Fatalf("expected compile error")
	}
	if !strings.Contains(err.Error(), "lex error") {
		t.Fatalf("expected a lex error, got: %v", err)
	}
}

func TestCompileCollectsMultipleErrors(t *testing.T) {
	engine := NewEngine(Config{})
	_, err := engine.Compile("var = 1;\nprint ;\n")
	if err == nil {
		t.Fatalf("expected compile error")
	}
	if strings.Count(err.Error(), "parse error") != 2 {
		t.Fatalf("expected two parse errors in: %v", err)
	}
}

func TestScriptRunsIndependently(t *testing.T) {
	var out bytes.Buffer
	engine := NewEngine(Config{Stdout: &out})
	script, err := engine.Compile(`var n = 1; print n;`)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	// Each run gets a fresh global scope, so a second run cannot see the
	// first one's bindings.
	if _, err := script.Run(context.Background()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if _, err := script.Run(context.Background()); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if out.String() != "1\n1\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestSessionPersistsState(t *testing.T) {
	engine := NewEngine(Config{Stdout: new(bytes.Buffer)})
	sess := engine.NewSession()
	ctx := context.Background()

	if _, err := sess.Eval(ctx, `var count = 0;`); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if _, err := sess.Eval(ctx, `fun bump() { count = count + 1; return count; }`); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if _, err := sess.Eval(ctx, `bump();`); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	val, err := sess.Eval(ctx, `bump();`)
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if val.Number() != 2 {
		t.Fatalf("expected 2, got %s", val.String())
	}

	if got, ok := sess.Lookup("count"); !ok || got.Number() != 2 {
		t.Fatalf("expected count=2 in session globals")
	}
}

func TestSessionReset(t *testing.T) {
	engine := NewEngine(Config{Stdout: new(bytes.Buffer)})
	sess := engine.NewSession()
	ctx := context.Background()

	if _, err := sess.Eval(ctx, `var a = 1;`); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	sess.Reset()
	if _, err := sess.Eval(ctx, `a;`); err == nil {
		t.Fatalf("expected undefined variable after reset")
	}
	if len(sess.Globals()) != 0 {
		t.Fatalf("expected empty globals after reset, got %v", sess.Globals())
	}
}

func TestSessionBind(t *testing.T) {
	engine := NewEngine(Config{Stdout: new(bytes.Buffer)})
	sess := engine.NewSession()
	sess.Bind("answer", NewNumber(42))
	val, err := sess.Eval(context.Background(), `return answer;`)
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if val.Number() != 42 {
		t.Fatalf("expected 42, got %s", val.String())
	}
}

func TestSessionEvalLastValue(t *testing.T) {
	engine := NewEngine(Config{Stdout: new(bytes.Buffer)})
	sess := engine.NewSession()
	val, err := sess.Eval(context.Background(), `1 + 2;`)
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if val.Number() != 3 {
		t.Fatalf("expected 3, got %s", val.String())
	}
}

func TestRecursionLimit(t *testing.T) {
	engine := NewEngine(Config{Stdout: new(bytes.Buffer), RecursionLimit: 8})
	_, err := engine.Interpret(context.Background(), `
fun loop(n) { return loop(n + 1); }
loop(0);`)
	if err == nil {
		t.Fatalf("expected recursion error")
	}
	var re *RuntimeError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
	if !strings.Contains(re.Message, "recursion depth exceeded (limit 8)") {
		t.Fatalf("unexpected message: %s", re.Message)
	}
}

func TestStepQuota(t *testing.T) {
	engine := NewEngine(Config{Stdout: new(bytes.Buffer), StepQuota: 100})
	_, err := engine.Interpret(context.Background(), `while (true) {}`)
	if !errors.Is(err, errStepQuotaExceeded) {
		t.Fatalf("expected step quota error, got %v", err)
	}
}

func TestContextCancellation(t *testing.T) {
	engine := NewEngine(Config{Stdout: new(bytes.Buffer)})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := engine.Interpret(ctx, `while (true) {}`)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRuntimeErrorRendersCodeFrame(t *testing.T) {
	engine := NewEngine(Config{Stdout: new(bytes.Buffer)})
	_, err := engine.Interpret(context.Background(), "var a = 1;\nb = 2;\n")
	if err == nil {
		t.Fatalf("expected error")
	}
	var re *RuntimeError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
	if !strings.Contains(re.CodeFrame, "b = 2;") {
		t.Fatalf("code frame should quote the offending line: %q", re.CodeFrame)
	}
}

func TestCompileErrorNeverRuns(t *testing.T) {
	var out bytes.Buffer
	engine := NewEngine(Config{Stdout: &out})
	_, err := engine.Interpret(context.Background(), `print "side effect"; var = broken;`)
	if err == nil {
		t.Fatalf("expected compile error")
	}
	if out.Len() != 0 {
		t.Fatalf("an erroneous program must not execute, printed %q", out.String())
	}
}
