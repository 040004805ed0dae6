package lox

import (
	"context"
	"io"
	"os"
)

// Config controls where print writes and how far a run may go.
type Config struct {
	// Stdout receives print output. Defaults to os.Stdout.
	Stdout io.Writer
	// StepQuota bounds the number of statements and loop iterations a run
	// may execute. Zero means unbounded.
	StepQuota int
	// RecursionLimit bounds call depth. Zero picks the default.
	RecursionLimit int
}

const defaultRecursionLimit = 1000

// Engine compiles and runs scripts. An Engine is safe for concurrent use;
// each run keeps its state in its own Execution.
type Engine struct {
	config Config
}

func NewEngine(cfg Config) *Engine {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.RecursionLimit <= 0 {
		cfg.RecursionLimit = defaultRecursionLimit
	}
	return &Engine{config: cfg}
}

// Script is a compiled program. Compilation guarantees the source lexed and
// parsed cleanly; only runtime errors remain possible.
type Script struct {
	engine  *Engine
	program *Program
	source  string
}

// Compile lexes and parses source. Lex errors win over parse errors: a
// malformed token fails the compile even when the parser also stumbled over
// the tokens around it.
func (e *Engine) Compile(source string) (*Script, error) {
	p := newParser(source)
	program, parseErrors := p.ParseProgram()
	if lexErrors := p.l.Errors(); len(lexErrors) > 0 {
		return nil, combineErrors(lexErrors)
	}
	if len(parseErrors) > 0 {
		return nil, combineErrors(parseErrors)
	}
	return &Script{engine: e, program: program, source: source}, nil
}

// Program exposes the parsed syntax tree, for tools that inspect scripts
// without running them.
func (s *Script) Program() *Program {
	return s.program
}

// Run executes the script in a fresh global scope. The result is the value
// of a top-level return, or of the last top-level statement.
func (s *Script) Run(ctx context.Context) (Value, error) {
	return s.run(ctx, newEnv(nil))
}

func (s *Script) run(ctx context.Context, globals *Env) (Value, error) {
	exec := &Execution{
		engine:       s.engine,
		script:       s,
		ctx:          ctx,
		out:          s.engine.config.Stdout,
		quota:        s.engine.config.StepQuota,
		recursionCap: s.engine.config.RecursionLimit,
	}
	val, _, err := exec.evalStatements(s.program.Statements, globals)
	if err != nil {
		return NewNil(), err
	}
	return val, nil
}

// Interpret compiles and runs source in one step.
func (e *Engine) Interpret(ctx context.Context, source string) (Value, error) {
	script, err := e.Compile(source)
	if err != nil {
		return NewNil(), err
	}
	return script.Run(ctx)
}

// Session keeps a global scope alive across evaluations, so a REPL can build
// state one line at a time.
type Session struct {
	engine  *Engine
	globals *Env
}

func (e *Engine) NewSession() *Session {
	return &Session{engine: e, globals: newEnv(nil)}
}

func (sess *Session) Eval(ctx context.Context, source string) (Value, error) {
	script, err := sess.engine.Compile(source)
	if err != nil {
		return NewNil(), err
	}
	return script.run(ctx, sess.globals)
}

// Globals lists the names declared at the session's top level.
func (sess *Session) Globals() []string {
	return sess.globals.Names()
}

// Lookup reads a global by name.
func (sess *Session) Lookup(name string) (Value, bool) {
	return sess.globals.Get(name)
}

// Bind sets a global unconditionally, replacing any existing binding. Hosts
// use it to inject values a script did not declare itself.
func (sess *Session) Bind(name string, val Value) {
	sess.globals.bind(name, val)
}

// Reset discards every binding the session has accumulated.
func (sess *Session) Reset() {
	sess.globals = newEnv(nil)
}
