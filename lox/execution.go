package lox

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Execution is the state of one script run: the call stack for error
// reporting, the loop depth for break checking, and the run's budgets.
type Execution struct {
	engine       *Engine
	script       *Script
	ctx          context.Context
	out          io.Writer
	quota        int
	recursionCap int
	steps        int
	callStack    []callFrame
	loopDepth    int
}

type callFrame struct {
	Function string
	Pos      Position
}

var (
	errLoopBreak         = errors.New("loop break")
	errStepQuotaExceeded = errors.New("step quota exceeded")
)

func (exec *Execution) step() error {
	exec.steps++
	if exec.quota > 0 && exec.steps > exec.quota {
		return fmt.Errorf("%w (%d)", errStepQuotaExceeded, exec.quota)
	}
	if exec.ctx != nil {
		select {
		case <-exec.ctx.Done():
			return exec.ctx.Err()
		default:
		}
	}
	return nil
}

func (exec *Execution) errorAt(pos Position, format string, args ...any) error {
	message := fmt.Sprintf(format, args...)

	frames := make([]StackFrame, 0, len(exec.callStack)+1)
	if len(exec.callStack) > 0 {
		// First frame: where the error occurred, inside the current function.
		current := exec.callStack[len(exec.callStack)-1]
		frames = append(frames, StackFrame{Function: current.Function, Pos: pos})
		// Remaining frames: where each enclosing call was made from.
		for i := len(exec.callStack) - 1; i >= 0; i-- {
			frames = append(frames, StackFrame(exec.callStack[i]))
		}
	} else {
		frames = append(frames, StackFrame{Function: "<script>", Pos: pos})
	}

	codeFrame := ""
	if exec.script != nil {
		codeFrame = formatCodeFrame(exec.script.source, pos)
	}
	return &RuntimeError{Message: message, CodeFrame: codeFrame, Frames: frames}
}

func (exec *Execution) pushFrame(function string, pos Position) error {
	if exec.recursionCap > 0 && len(exec.callStack) >= exec.recursionCap {
		return exec.errorAt(pos, "recursion depth exceeded (limit %d)", exec.recursionCap)
	}
	exec.callStack = append(exec.callStack, callFrame{Function: function, Pos: pos})
	return nil
}

func (exec *Execution) popFrame() {
	if len(exec.callStack) == 0 {
		return
	}
	exec.callStack = exec.callStack[:len(exec.callStack)-1]
}

func (exec *Execution) evalStatements(stmts []Statement, env *Env) (Value, bool, error) {
	result := NewNil()
	for _, stmt := range stmts {
		if err := exec.step(); err != nil {
			return NewNil(), false, err
		}
		val, returned, err := exec.evalStatement(stmt, env)
		if err != nil {
			return NewNil(), false, err
		}
		if returned {
			return val, true, nil
		}
		result = val
	}
	return result, false, nil
}

func (exec *Execution) evalStatement(stmt Statement, env *Env) (Value, bool, error) {
	switch s := stmt.(type) {
	case *ExprStmt:
		val, err := exec.evalExpression(s.Expr, env)
		return val, false, err
	case *PrintStmt:
		val, err := exec.evalExpression(s.Expr, env)
		if err != nil {
			return NewNil(), false, err
		}
		fmt.Fprintln(exec.out, val.String())
		return NewNil(), false, nil
	case *VarStmt:
		val := NewNil()
		if s.Initializer != nil {
			var err error
			val, err = exec.evalExpression(s.Initializer, env)
			if err != nil {
				return NewNil(), false, err
			}
		}
		if !env.Define(s.Name, val) {
			return NewNil(), false, exec.errorAt(s.Pos(), "variable %q already declared in this scope", s.Name)
		}
		return NewNil(), false, nil
	case *FunctionStmt:
		fn := &Function{Name: s.Name, Params: s.Params, Body: s.Body, Pos: s.Pos(), Env: env}
		if !env.Define(s.Name, NewFunction(fn)) {
			return NewNil(), false, exec.errorAt(s.Pos(), "variable %q already declared in this scope", s.Name)
		}
		return NewNil(), false, nil
	case *ClassStmt:
		return exec.evalClassStatement(s, env)
	case *BlockStmt:
		val, returned, err := exec.evalStatements(s.Statements, newEnv(env))
		if err != nil {
			return NewNil(), false, err
		}
		return val, returned, nil
	case *IfStmt:
		condition, err := exec.evalExpression(s.Condition, env)
		if err != nil {
			return NewNil(), false, err
		}
		if condition.Truthy() {
			return exec.evalStatement(s.Then, env)
		}
		if s.Else != nil {
			return exec.evalStatement(s.Else, env)
		}
		return NewNil(), false, nil
	case *WhileStmt:
		return exec.evalWhileStatement(s, env)
	case *ReturnStmt:
		if s.Value == nil {
			return NewNil(), true, nil
		}
		val, err := exec.evalExpression(s.Value, env)
		if err != nil {
			return NewNil(), false, err
		}
		return val, true, nil
	case *BreakStmt:
		if exec.loopDepth == 0 {
			return NewNil(), false, exec.errorAt(s.Pos(), "break used outside of loop")
		}
		return NewNil(), false, errLoopBreak
	default:
		return NewNil(), false, exec.errorAt(stmt.Pos(), "unsupported statement")
	}
}

func (exec *Execution) evalWhileStatement(stmt *WhileStmt, env *Env) (Value, bool, error) {
	exec.loopDepth++
	defer func() {
		exec.loopDepth--
	}()

	for {
		if err := exec.step(); err != nil {
			return NewNil(), false, err
		}
		condition, err := exec.evalExpression(stmt.Condition, env)
		if err != nil {
			return NewNil(), false, err
		}
		if !condition.Truthy() {
			return NewNil(), false, nil
		}
		val, returned, err := exec.evalStatement(stmt.Body, env)
		if err != nil {
			if errors.Is(err, errLoopBreak) {
				return NewNil(), false, nil
			}
			return NewNil(), false, err
		}
		if returned {
			return val, true, nil
		}
	}
}

func (exec *Execution) evalClassStatement(stmt *ClassStmt, env *Env) (Value, bool, error) {
	def := &ClassDef{Name: stmt.Name, Methods: make(map[string]*Function), Pos: stmt.Pos()}
	for _, method := range stmt.Methods {
		def.Methods[method.Name] = &Function{
			Name:   method.Name,
			Params: method.Params,
			Body:   method.Body,
			Pos:    method.Pos(),
			Env:    env,
		}
	}
	if !env.Define(stmt.Name, NewClass(def)) {
		return NewNil(), false, exec.errorAt(stmt.Pos(), "variable %q already declared in this scope", stmt.Name)
	}
	return NewNil(), false, nil
}
